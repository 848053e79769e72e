package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/wizardchad/forum/internal/forum/store"
	"github.com/wizardchad/forum/internal/forum/store/drivers/sqlite"
	"github.com/wizardchad/forum/pkg/cryptox"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	pepperPath := filepath.Join(os.TempDir(), "forum-service-test-pepper")
	cryptox.SetPepperPath(pepperPath)

	os.Remove(pepperPath)
	defer os.Remove(pepperPath)

	os.Exit(m.Run())
}

// newTestStore opens a migrated sqlite store backed by a throwaway file so
// concurrent tests exercise the same locking behaviour as production.
func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(sqlite.DSN(filepath.Join(t.TempDir(), "forum.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}
