package user

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

const collectionName = "users"

type MongoDirectory struct {
	coll *mongo.Collection
}

// NewMongoDirectory creates a Mongo-backed user directory over the
// "users" collection. The user id is stored as _id, so uniqueness is
// enforced by the collection's primary key: a concurrent duplicate
// registration fails at insert time even when both requests passed
// the Exists pre-check.
func NewMongoDirectory(db *mongo.Database) *MongoDirectory {
	return &MongoDirectory{coll: db.Collection(collectionName)}
}

func (d *MongoDirectory) Exists(ctx context.Context, id string) (bool, error) {
	err := d.coll.FindOne(ctx, bson.M{"_id": id}).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("users: lookup %q: %w", id, err)
	}
	return true, nil
}

func (d *MongoDirectory) Create(ctx context.Context, u User) error {
	_, err := d.coll.InsertOne(ctx, u)
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("users: %w", ErrDuplicateID)
	}
	if err != nil {
		return fmt.Errorf("users: insert %q: %w", u.ID, err)
	}
	return nil
}

func (d *MongoDirectory) FindByID(ctx context.Context, id string) (*User, error) {
	var u User
	err := d.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil // not found
	}
	if err != nil {
		return nil, fmt.Errorf("users: decode %q: %w", id, err)
	}
	return &u, nil
}
