package sqlite

import "context"

type concentrateRepo struct {
	db dbtx
}

func (r *concentrateRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`select times_pressed from concentrate where id = 1`).Scan(&count)
	if err != nil {
		return 0, mapNotFound(err)
	}
	return count, nil
}

func (r *concentrateRepo) Increment(ctx context.Context) (int64, error) {
	// Single-statement read-modify-write; concurrent increments serialize
	// inside sqlite instead of racing in application code.
	var count int64
	err := r.db.QueryRowContext(ctx, `
		update concentrate
		set times_pressed = times_pressed + 1
		where id = 1
		returning times_pressed`).Scan(&count)
	if err != nil {
		return 0, mapNotFound(err)
	}
	return count, nil
}
