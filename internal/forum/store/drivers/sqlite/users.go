package sqlite

import (
	"context"
	"database/sql"

	"github.com/wizardchad/forum/internal/forum/domain"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, username, password_hash, display_name, about_me, skillset, created_at, updated_at`

func scanUser(row *sql.Row) (domain.User, error) {
	var (
		u                              domain.User
		displayName, aboutMe, skillset sql.NullString
	)

	err := row.Scan(
		&u.ID,
		&u.Username,
		&u.PasswordHash,
		&displayName,
		&aboutMe,
		&skillset,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}

	u.DisplayName = mapNullString(displayName)
	u.AboutMe = mapNullString(aboutMe)
	u.Skillset = mapNullString(skillset)
	return u, nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		`select `+userColumns+` from users where id = ?`, id))
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	return scanUser(r.db.QueryRowContext(ctx,
		`select `+userColumns+` from users where username = ?`, username))
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	_, err := r.db.ExecContext(ctx, `
		insert into users (id, username, password_hash, display_name, about_me, skillset)
		values (?, ?, ?, ?, ?, ?)`,
		u.ID,
		u.Username,
		u.PasswordHash,
		mapStringNull(u.DisplayName),
		mapStringNull(u.AboutMe),
		mapStringNull(u.Skillset),
	)
	return mapConstraint(err)
}

func (r *usersRepo) UpdateProfile(ctx context.Context, userID, displayName, aboutMe, skillset string) error {
	_, err := r.db.ExecContext(ctx, `
		update users
		set display_name = ?, about_me = ?, skillset = ?, updated_at = current_timestamp
		where id = ?`,
		mapStringNull(displayName),
		mapStringNull(aboutMe),
		mapStringNull(skillset),
		userID,
	)
	return err
}

func (r *usersRepo) UpdatePasswordHash(ctx context.Context, userID, newHash string) error {
	_, err := r.db.ExecContext(ctx, `
		update users
		set password_hash = ?, updated_at = current_timestamp
		where id = ?`,
		newHash, userID,
	)
	return err
}

func (r *usersRepo) DeleteUser(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, `delete from users where id = ?`, userID)
	return err
}

func (r *usersRepo) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `select count(*) from users`).Scan(&count)
	return count, err
}
