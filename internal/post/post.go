package post

import (
	"context"
	"errors"
	"time"
)

var ErrInvalidContent = errors.New("invalid post content")

// Post is a board entry. Posts are insert-only; nothing in this
// application mutates or deletes them.
type Post struct {
	ID        string    `bson:"_id"`
	Content   string    `bson:"content"`
	Nickname  string    `bson:"nickname"`
	UserID    string    `bson:"user_id"`
	CreatedAt time.Time `bson:"created_at"`
}

// Repository stores board posts.
type Repository interface {
	Create(ctx context.Context, p Post) error
	ListRecent(ctx context.Context, limit int) ([]Post, error)
}
