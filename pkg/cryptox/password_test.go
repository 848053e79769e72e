package cryptox

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	pepperPath := filepath.Join(os.TempDir(), "forum-test-pepper")
	SetPepperPath(pepperPath)

	os.Remove(pepperPath)
	defer os.Remove(pepperPath)

	os.Exit(m.Run())
}

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"simple password", "IceCold"},
		{"complex password", "P@ssw0rd!#$%^&*()"},
		{"long password", strings.Repeat("a", 100)},
		{"empty password", ""},
		{"unicode password", "密码🔒"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password)
			require.NoError(t, err)

			// PHC format: $argon2id$v=19$m=X,t=Y,p=Z$salt$hash
			parts := strings.Split(hash, "$")
			require.Len(t, parts, 6)
			require.Equal(t, "argon2id", parts[1])
			require.Equal(t, "v=19", parts[2])
			require.NotEmpty(t, parts[4])
			require.NotEmpty(t, parts[5])
		})
	}

	t.Run("same password hashes differently", func(t *testing.T) {
		a, err := HashPassword("IceCold")
		require.NoError(t, err)
		b, err := HashPassword("IceCold")
		require.NoError(t, err)
		require.NotEqual(t, a, b, "salts must differ")
	})
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("IceCold")
	require.NoError(t, err)

	t.Run("accepts correct password", func(t *testing.T) {
		require.NoError(t, VerifyPassword("IceCold", hash))
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		require.ErrorIs(t, VerifyPassword("icecold", hash), ErrHashMismatch)
	})

	t.Run("rejects malformed hash", func(t *testing.T) {
		require.ErrorIs(t, VerifyPassword("IceCold", "$md5$nope"), ErrInvalidHash)
		require.ErrorIs(t, VerifyPassword("IceCold", ""), ErrInvalidHash)
	})

	t.Run("rejects tampered salt", func(t *testing.T) {
		parts := strings.Split(hash, "$")
		parts[4] = "AAAAAAAAAAAAAAAAAAAAAA"
		require.ErrorIs(t, VerifyPassword("IceCold", strings.Join(parts, "$")), ErrHashMismatch)
	})
}
