package domain

import "time"

// Post is a forum post, either a thread or a reply. A post with an empty
// ThreadID is a thread; otherwise it is a reply to that thread.
type Post struct {
	ID          string
	Content     string
	CreatorID   string
	ThreadID    string // empty for threads
	ThreadTitle string // empty for replies
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsThread reports whether the post starts a thread.
func (p Post) IsThread() bool { return p.ThreadID == "" }

// ThreadInfo is a thread joined with its creator's names, shaped for
// listings and thread pages.
type ThreadInfo struct {
	ID                 string
	Title              string
	Content            string
	CreatorID          string
	CreatorUsername    string
	CreatorDisplayName string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// CreatorName returns the creator's display name, or username if unset.
func (t ThreadInfo) CreatorName() string {
	if t.CreatorDisplayName != "" {
		return t.CreatorDisplayName
	}
	return t.CreatorUsername
}

// ReplyInfo is a reply joined with its creator's names. ThreadID is carried
// so live-update consumers can tell which thread the reply belongs to.
type ReplyInfo struct {
	ID                 string
	ThreadID           string
	Content            string
	CreatorID          string
	CreatorUsername    string
	CreatorDisplayName string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// CreatorName returns the creator's display name, or username if unset.
func (r ReplyInfo) CreatorName() string {
	if r.CreatorDisplayName != "" {
		return r.CreatorDisplayName
	}
	return r.CreatorUsername
}
