package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/wizardchad/forum/internal/forum/domain"
	"github.com/wizardchad/forum/internal/forum/store"
	"github.com/wizardchad/forum/pkg/idx"
)

type PostService struct {
	Store store.Store
}

// ThreadPage is one page of the thread listing.
type ThreadPage struct {
	Threads []domain.ThreadInfo
	Total   int64
}

// CreateThread validates and stores a new thread, returning it with the
// creator's names attached.
func (s *PostService) CreateThread(ctx context.Context, creatorID, title, content string) (domain.ThreadInfo, error) {
	title = strings.TrimSpace(title)

	switch {
	case title == "":
		return domain.ThreadInfo{}, ErrTitleRequired
	case utf8.RuneCountInString(title) > MaxTitleLen:
		return domain.ThreadInfo{}, ErrTitleTooLong
	case strings.TrimSpace(content) == "":
		return domain.ThreadInfo{}, ErrContentRequired
	case utf8.RuneCountInString(content) > MaxContentLen:
		return domain.ThreadInfo{}, ErrContentTooLong
	}

	p := domain.Post{
		ID:          idx.New().String(),
		Content:     content,
		ThreadTitle: title,
		CreatorID:   creatorID,
	}

	if err := s.Store.Posts().CreatePost(ctx, p); err != nil {
		return domain.ThreadInfo{}, fmt.Errorf("creating thread: %w", err)
	}

	return s.Store.Posts().GetThreadByID(ctx, p.ID)
}

// ListThreads returns one page of threads, newest first, plus the total
// count for pagination.
func (s *PostService) ListThreads(ctx context.Context, offset, limit int64) (ThreadPage, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	threads, err := s.Store.Posts().ListThreads(ctx, offset, limit)
	if err != nil {
		return ThreadPage{}, fmt.Errorf("listing threads: %w", err)
	}

	total, err := s.Store.Posts().CountThreads(ctx)
	if err != nil {
		return ThreadPage{}, fmt.Errorf("counting threads: %w", err)
	}

	return ThreadPage{Threads: threads, Total: total}, nil
}

// GetThread returns a thread and all of its replies, oldest reply first.
// Returns store.ErrNotFound for unknown or reply IDs.
func (s *PostService) GetThread(ctx context.Context, threadID string) (domain.ThreadInfo, []domain.ReplyInfo, error) {
	thread, err := s.Store.Posts().GetThreadByID(ctx, threadID)
	if err != nil {
		return domain.ThreadInfo{}, nil, err
	}

	replies, err := s.Store.Posts().ListReplies(ctx, threadID, 0, -1)
	if err != nil {
		return domain.ThreadInfo{}, nil, fmt.Errorf("listing replies: %w", err)
	}

	return thread, replies, nil
}

// CreateReply validates and stores a reply to an existing thread.
func (s *PostService) CreateReply(ctx context.Context, creatorID, threadID, content string) (domain.ReplyInfo, error) {
	switch {
	case strings.TrimSpace(content) == "":
		return domain.ReplyInfo{}, ErrContentRequired
	case utf8.RuneCountInString(content) > MaxContentLen:
		return domain.ReplyInfo{}, ErrContentTooLong
	}

	// The thread must exist and actually be a thread.
	if _, err := s.Store.Posts().GetThreadByID(ctx, threadID); err != nil {
		return domain.ReplyInfo{}, err
	}

	p := domain.Post{
		ID:        idx.New().String(),
		Content:   content,
		ThreadID:  threadID,
		CreatorID: creatorID,
	}

	if err := s.Store.Posts().CreatePost(ctx, p); err != nil {
		return domain.ReplyInfo{}, fmt.Errorf("creating reply: %w", err)
	}

	return s.Store.Posts().GetReplyByID(ctx, p.ID)
}

// DeleteThread removes a thread and its replies. Only the creator may
// delete a thread; the ownership check and the delete share a transaction.
func (s *PostService) DeleteThread(ctx context.Context, requesterID, threadID string) error {
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		thread, err := tx.Posts().GetThreadByID(ctx, threadID)
		if err != nil {
			return err
		}

		if thread.CreatorID != requesterID {
			return ErrNotThreadCreator
		}

		return tx.Posts().DeleteThread(ctx, threadID)
	})
}
