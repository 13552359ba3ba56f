package post

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"noteboard/internal/session"
)

const (
	// MaxContentLength bounds a single post, in runes.
	MaxContentLength = 500

	recentLimit = 50
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates the content and stores a new post attributed to
// the given identity.
func (s *Service) Create(
	ctx context.Context,
	ident session.Identity,
	content string,
) error {

	content = strings.TrimSpace(content)
	if content == "" {
		return fmt.Errorf("%w: content is required", ErrInvalidContent)
	}
	if utf8.RuneCountInString(content) > MaxContentLength {
		return fmt.Errorf("%w: content exceeds %d characters", ErrInvalidContent, MaxContentLength)
	}

	p := Post{
		ID:        uuid.NewString(),
		Content:   content,
		Nickname:  ident.Nickname,
		UserID:    ident.UserID,
		CreatedAt: time.Now().UTC(),
	}

	return s.repo.Create(ctx, p)
}

// Recent returns the newest posts first, for board display.
func (s *Service) Recent(ctx context.Context) ([]Post, error) {
	return s.repo.ListRecent(ctx, recentLimit)
}
