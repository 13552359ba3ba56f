package user

import (
	"context"
	"errors"
	"time"
)

var ErrDuplicateID = errors.New("user id already exists")

// User is the stored identity record. ID doubles as the document key,
// chosen by the registrant and immutable after creation.
type User struct {
	ID           string    `bson:"_id"`
	PasswordHash string    `bson:"password_hash"`
	HashVersion  string    `bson:"hash_version"`
	Nickname     string    `bson:"nickname"`
	Organization string    `bson:"organization"`
	CreatedAt    time.Time `bson:"created_at"`
}

// Directory is the repository of User records, keyed by id.
// FindByID returns the full record including the password hash;
// only the auth service may look at that field.
type Directory interface {
	Exists(ctx context.Context, id string) (bool, error)
	Create(ctx context.Context, u User) error
	FindByID(ctx context.Context, id string) (*User, error)
}
