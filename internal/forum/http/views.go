package http

import (
	"time"

	"github.com/wizardchad/forum/internal/forum/domain"
)

// UserView is the public shape of an account. The password hash never
// leaves the domain layer.
type UserView struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name,omitempty"`
	AboutMe     string    `json:"about_me,omitempty"`
	Skillset    string    `json:"skillset,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func newUserView(u domain.User) UserView {
	return UserView{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		AboutMe:     u.AboutMe,
		Skillset:    u.Skillset,
		CreatedAt:   u.CreatedAt,
	}
}

type ThreadView struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	CreatorID   string    `json:"creator_id"`
	CreatorName string    `json:"creator_name"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func newThreadView(t domain.ThreadInfo) ThreadView {
	return ThreadView{
		ID:          t.ID,
		Title:       t.Title,
		Content:     t.Content,
		CreatorID:   t.CreatorID,
		CreatorName: t.CreatorName(),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

type ReplyView struct {
	ID          string    `json:"id"`
	ThreadID    string    `json:"thread_id"`
	Content     string    `json:"content"`
	CreatorID   string    `json:"creator_id"`
	CreatorName string    `json:"creator_name"`
	CreatedAt   time.Time `json:"created_at"`
}

func newReplyView(r domain.ReplyInfo) ReplyView {
	return ReplyView{
		ID:          r.ID,
		ThreadID:    r.ThreadID,
		Content:     r.Content,
		CreatorID:   r.CreatorID,
		CreatorName: r.CreatorName(),
		CreatedAt:   r.CreatedAt,
	}
}
