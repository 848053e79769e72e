package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/wizardchad/forum/internal/forum/domain"
	"github.com/wizardchad/forum/internal/forum/store"
	"github.com/wizardchad/forum/pkg/cryptox"
	"github.com/wizardchad/forum/pkg/idx"
)

type UserService struct {
	Store store.Store
}

// Register creates a new account and returns the stored record.
func (s *UserService) Register(ctx context.Context, username, password string) (domain.User, error) {
	username = strings.TrimSpace(username)

	switch {
	case username == "":
		return domain.User{}, ErrUsernameRequired
	case utf8.RuneCountInString(username) > MaxUsernameLen:
		return domain.User{}, ErrUsernameTooLong
	case password == "":
		return domain.User{}, ErrPasswordRequired
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, fmt.Errorf("hashing password: %w", err)
	}

	u := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		PasswordHash: hash,
	}

	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrUsernameTaken
		}
		return domain.User{}, fmt.Errorf("creating user: %w", err)
	}

	// Re-read to pick up database-assigned timestamps.
	return s.Store.Users().GetUserByID(ctx, u.ID)
}

// Authenticate verifies username/password and returns the matching user.
// Unknown usernames and wrong passwords are indistinguishable to the caller.
func (s *UserService) Authenticate(ctx context.Context, username, password string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, fmt.Errorf("loading user: %w", err)
	}

	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrHashMismatch) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, fmt.Errorf("verifying password: %w", err)
	}

	return u, nil
}

// GetUserByID fetches a user by id.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, userID)
}

// UpdateProfile sets the user's profile fields and returns the updated
// record. Empty inputs leave the stored value unchanged.
func (s *UserService) UpdateProfile(ctx context.Context, userID, displayName, aboutMe, skillset string) (domain.User, error) {
	current, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}

	if displayName == "" {
		displayName = current.DisplayName
	}
	if aboutMe == "" {
		aboutMe = current.AboutMe
	}
	if skillset == "" {
		skillset = current.Skillset
	}

	if err := s.Store.Users().UpdateProfile(ctx, userID, displayName, aboutMe, skillset); err != nil {
		return domain.User{}, fmt.Errorf("updating profile: %w", err)
	}

	return s.Store.Users().GetUserByID(ctx, userID)
}

// ChangePassword verifies the current password before storing a new hash.
func (s *UserService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	if newPassword == "" {
		return ErrPasswordRequired
	}

	u, err := s.Store.Users().GetUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := cryptox.VerifyPassword(currentPassword, u.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrHashMismatch) {
			return ErrInvalidCredentials
		}
		return fmt.Errorf("verifying password: %w", err)
	}

	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hashing password: %w", err)
	}

	return s.Store.Users().UpdatePasswordHash(ctx, userID, hash)
}
