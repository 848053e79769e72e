package store

import (
	"context"
	"errors"

	"github.com/wizardchad/forum/internal/forum/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement it. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users
	Posts() Posts
	Concentrate() Concentrate

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST Commit() or Rollback() the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, committing when fn returns
	// nil and rolling back otherwise. Prefer this over Tx directly.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases the underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It exposes the same repositories plus
// Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsername is used during login and registration.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by the app via ULID).
	CreateUser(ctx context.Context, u domain.User) error

	// UpdateProfile mutates display_name/about_me/skillset and bumps
	// updated_at.
	UpdateProfile(ctx context.Context, userID, displayName, aboutMe, skillset string) error

	// UpdatePasswordHash sets the password_hash (argon2id) and bumps
	// updated_at.
	UpdatePasswordHash(ctx context.Context, userID, newHash string) error

	// DeleteUser removes a user. Their posts cascade per schema.
	DeleteUser(ctx context.Context, userID string) error

	// CountUsers returns the total number of users.
	CountUsers(ctx context.Context) (int64, error)
}

type Posts interface {
	// CreatePost inserts a post row. Threads carry a title and no thread
	// id; replies the inverse.
	CreatePost(ctx context.Context, p domain.Post) error

	// GetThreadByID returns a thread (never a reply) with creator names.
	GetThreadByID(ctx context.Context, id string) (domain.ThreadInfo, error)

	// ListThreads returns threads newest-first with creator names.
	ListThreads(ctx context.Context, offset, limit int64) ([]domain.ThreadInfo, error)

	// CountThreads returns the total number of threads.
	CountThreads(ctx context.Context) (int64, error)

	// ListReplies returns a thread's replies oldest-first with creator
	// names. A negative limit returns all of them.
	ListReplies(ctx context.Context, threadID string, offset, limit int64) ([]domain.ReplyInfo, error)

	// GetReplyByID returns a reply (never a thread) with creator names.
	GetReplyByID(ctx context.Context, id string) (domain.ReplyInfo, error)

	// DeleteThread removes a thread and all of its replies.
	DeleteThread(ctx context.Context, threadID string) error
}

type Concentrate interface {
	// Count returns the current concentration counter value.
	Count(ctx context.Context) (int64, error)

	// Increment atomically adds 1 to the counter and returns the new
	// value. The read-modify-write is a single statement at the storage
	// layer so concurrent increments never lose an update.
	Increment(ctx context.Context) (int64, error)
}
