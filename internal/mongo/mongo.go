package mongo

import (
	"context"
	"time"

	gomongo "go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

type Client struct {
	*gomongo.Client
	db *gomongo.Database
}

// New connects to MongoDB and verifies the connection with a short ping.
func New(uri, database string) (*Client, error) {

	client, err := gomongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}

	return &Client{Client: client, db: client.Database(database)}, nil

}

func (c *Client) Database() *gomongo.Database {
	return c.db
}

func (c *Client) Close(ctx context.Context) error {
	return c.Disconnect(ctx)
}
