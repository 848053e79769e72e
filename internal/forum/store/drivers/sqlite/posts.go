package sqlite

import (
	"context"
	"database/sql"

	"github.com/wizardchad/forum/internal/forum/domain"
)

type postsRepo struct {
	db dbtx
}

func (r *postsRepo) CreatePost(ctx context.Context, p domain.Post) error {
	_, err := r.db.ExecContext(ctx, `
		insert into posts (id, content, thread_title, thread_id, creator_id)
		values (?, ?, ?, ?, ?)`,
		p.ID,
		p.Content,
		mapStringNull(p.ThreadTitle),
		mapStringNull(p.ThreadID),
		p.CreatorID,
	)
	return mapConstraint(err)
}

const threadInfoQuery = `
	select
		posts.id,
		posts.thread_title,
		posts.content,
		posts.creator_id,
		users.username,
		users.display_name,
		posts.created_at,
		posts.updated_at
	from posts
	join users on users.id = posts.creator_id
	where posts.thread_id is null`

func scanThreadInfo(scan func(dest ...any) error) (domain.ThreadInfo, error) {
	var (
		t           domain.ThreadInfo
		title       sql.NullString
		displayName sql.NullString
	)

	err := scan(
		&t.ID,
		&title,
		&t.Content,
		&t.CreatorID,
		&t.CreatorUsername,
		&displayName,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return domain.ThreadInfo{}, err
	}

	t.Title = mapNullString(title)
	t.CreatorDisplayName = mapNullString(displayName)
	return t, nil
}

func (r *postsRepo) GetThreadByID(ctx context.Context, id string) (domain.ThreadInfo, error) {
	row := r.db.QueryRowContext(ctx, threadInfoQuery+` and posts.id = ?`, id)

	t, err := scanThreadInfo(row.Scan)
	if err != nil {
		return domain.ThreadInfo{}, mapNotFound(err)
	}
	return t, nil
}

func (r *postsRepo) ListThreads(ctx context.Context, offset, limit int64) ([]domain.ThreadInfo, error) {
	rows, err := r.db.QueryContext(ctx,
		threadInfoQuery+` order by posts.created_at desc, posts.id desc limit ? offset ?`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	threads := []domain.ThreadInfo{}
	for rows.Next() {
		t, err := scanThreadInfo(rows.Scan)
		if err != nil {
			return nil, err
		}
		threads = append(threads, t)
	}
	return threads, rows.Err()
}

func (r *postsRepo) CountThreads(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx,
		`select count(*) from posts where thread_id is null`).Scan(&count)
	return count, err
}

const replyInfoQuery = `
	select
		posts.id,
		posts.thread_id,
		posts.content,
		posts.creator_id,
		users.username,
		users.display_name,
		posts.created_at,
		posts.updated_at
	from posts
	join users on users.id = posts.creator_id
	where posts.thread_id is not null`

func scanReplyInfo(scan func(dest ...any) error) (domain.ReplyInfo, error) {
	var (
		reply       domain.ReplyInfo
		displayName sql.NullString
	)

	err := scan(
		&reply.ID,
		&reply.ThreadID,
		&reply.Content,
		&reply.CreatorID,
		&reply.CreatorUsername,
		&displayName,
		&reply.CreatedAt,
		&reply.UpdatedAt,
	)
	if err != nil {
		return domain.ReplyInfo{}, err
	}

	reply.CreatorDisplayName = mapNullString(displayName)
	return reply, nil
}

func (r *postsRepo) ListReplies(ctx context.Context, threadID string, offset, limit int64) ([]domain.ReplyInfo, error) {
	rows, err := r.db.QueryContext(ctx,
		replyInfoQuery+` and posts.thread_id = ? order by posts.created_at, posts.id limit ? offset ?`,
		threadID, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	replies := []domain.ReplyInfo{}
	for rows.Next() {
		reply, err := scanReplyInfo(rows.Scan)
		if err != nil {
			return nil, err
		}
		replies = append(replies, reply)
	}
	return replies, rows.Err()
}

func (r *postsRepo) GetReplyByID(ctx context.Context, id string) (domain.ReplyInfo, error) {
	row := r.db.QueryRowContext(ctx, replyInfoQuery+` and posts.id = ?`, id)

	reply, err := scanReplyInfo(row.Scan)
	if err != nil {
		return domain.ReplyInfo{}, mapNotFound(err)
	}
	return reply, nil
}

func (r *postsRepo) DeleteThread(ctx context.Context, threadID string) error {
	// Replies cascade via the thread_id foreign key.
	_, err := r.db.ExecContext(ctx,
		`delete from posts where id = ? and thread_id is null`, threadID)
	return err
}
