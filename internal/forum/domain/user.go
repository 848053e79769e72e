package domain

import "time"

// User is a registered user's durable profile record.
type User struct {
	ID           string
	Username     string
	PasswordHash string // argon2id PHC encoded
	DisplayName  string
	AboutMe      string
	Skillset     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Name returns the display name, falling back to the username when no
// display name is set.
func (u User) Name() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Username
}
