package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUserServiceRegister(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := &UserService{Store: newTestStore(t)}

	t.Run("creates a user with a hashed password", func(t *testing.T) {
		user, err := svc.Register(ctx, "alice", "IceCold123")
		require.NoError(t, err)
		require.NotEmpty(t, user.ID)
		require.Equal(t, "alice", user.Username)
		require.NotEqual(t, "IceCold123", user.PasswordHash)
		require.False(t, user.CreatedAt.IsZero())
	})

	t.Run("rejects duplicate usernames", func(t *testing.T) {
		_, err := svc.Register(ctx, "bob", "password1")
		require.NoError(t, err)

		_, err = svc.Register(ctx, "bob", "password2")
		require.ErrorIs(t, err, ErrUsernameTaken)
	})

	t.Run("rejects empty username", func(t *testing.T) {
		_, err := svc.Register(ctx, "", "password1")
		require.ErrorIs(t, err, ErrUsernameRequired)
	})

	t.Run("rejects usernames over the limit", func(t *testing.T) {
		_, err := svc.Register(ctx, strings.Repeat("a", MaxUsernameLen+1), "password1")
		require.ErrorIs(t, err, ErrUsernameTooLong)
	})

	t.Run("accepts usernames at the limit", func(t *testing.T) {
		_, err := svc.Register(ctx, strings.Repeat("a", MaxUsernameLen), "password1")
		require.NoError(t, err)
	})

	t.Run("rejects empty password", func(t *testing.T) {
		_, err := svc.Register(ctx, "carol", "")
		require.ErrorIs(t, err, ErrPasswordRequired)
	})

	t.Run("user count reflects successful registrations", func(t *testing.T) {
		count, err := svc.Store.Users().CountUsers(ctx)
		require.NoError(t, err)
		require.Equal(t, int64(3), count)
	})
}

func TestUserServiceAuthenticate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := &UserService{Store: newTestStore(t)}

	registered, err := svc.Register(ctx, "alice", "IceCold123")
	require.NoError(t, err)

	t.Run("valid credentials return the user", func(t *testing.T) {
		user, err := svc.Authenticate(ctx, "alice", "IceCold123")
		require.NoError(t, err)
		require.Equal(t, registered.ID, user.ID)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "alice", "wrong")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unknown username is rejected the same way", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "nobody", "IceCold123")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestUserServiceUpdateProfile(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := &UserService{Store: newTestStore(t)}

	user, err := svc.Register(ctx, "alice", "IceCold123")
	require.NoError(t, err)

	t.Run("sets profile fields", func(t *testing.T) {
		updated, err := svc.UpdateProfile(ctx, user.ID, "Alice", "I like forums", "Go, SQL")
		require.NoError(t, err)
		require.Equal(t, "Alice", updated.DisplayName)
		require.Equal(t, "I like forums", updated.AboutMe)
		require.Equal(t, "Go, SQL", updated.Skillset)
	})

	t.Run("empty fields keep their stored values", func(t *testing.T) {
		updated, err := svc.UpdateProfile(ctx, user.ID, "", "", "Rust")
		require.NoError(t, err)
		require.Equal(t, "Alice", updated.DisplayName)
		require.Equal(t, "I like forums", updated.AboutMe)
		require.Equal(t, "Rust", updated.Skillset)
	})
}

func TestUserServiceChangePassword(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	svc := &UserService{Store: newTestStore(t)}

	user, err := svc.Register(ctx, "alice", "original")
	require.NoError(t, err)

	t.Run("requires the current password", func(t *testing.T) {
		err := svc.ChangePassword(ctx, user.ID, "wrong", "updated")
		require.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("rotates the password", func(t *testing.T) {
		require.NoError(t, svc.ChangePassword(ctx, user.ID, "original", "updated"))

		_, err := svc.Authenticate(ctx, "alice", "original")
		require.ErrorIs(t, err, ErrInvalidCredentials)

		_, err = svc.Authenticate(ctx, "alice", "updated")
		require.NoError(t, err)
	})
}
