package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxPostTitleLength mirrors the title column width in the posts table.
const MaxPostTitleLength = 500

// Post represents an article written by a user. Content is optional;
// a nil Content serializes as JSON null.
type Post struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Title     string    `json:"title"`
	Content   *string   `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewPost creates a new Post owned by the given user. The title is
// trimmed before validation; content is passed through untouched.
// The referenced user is not checked for existence here; that is the
// job of the posts.user_id foreign key at the storage layer.
// Returns FieldViolations if validation fails.
func NewPost(userID uuid.UUID, title string, content *string) (*Post, error) {
	now := time.Now().UTC()
	post := &Post{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     strings.TrimSpace(title),
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := post.Validate(); err != nil {
		return nil, err
	}

	return post, nil
}

// Revise replaces the post's title and content and refreshes the update
// timestamp.
func (p *Post) Revise(title string, content *string) error {
	updated := *p
	updated.Title = strings.TrimSpace(title)
	updated.Content = content

	if err := updated.Validate(); err != nil {
		return err
	}

	updated.UpdatedAt = time.Now().UTC()
	*p = updated
	return nil
}

// Validate checks if the Post has valid data. Returns FieldViolations
// naming every failing field, or nil if the post is valid.
func (p *Post) Validate() error {
	var violations FieldViolations

	if p.ID == uuid.Nil {
		violations.Add("id", "cannot be empty")
	}

	if p.UserID == uuid.Nil {
		violations.Add("user_id", "cannot be empty")
	}

	if p.Title == "" {
		violations.Add("title", "cannot be empty")
	} else if len(p.Title) > MaxPostTitleLength {
		violations.Add("title", "cannot exceed 500 characters")
	}

	return violations.ErrOrNil()
}
