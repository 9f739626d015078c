package storage

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/carson-networks/finance-server/internal/config"
)

const connectTimeout = 10 * time.Second

type Storage struct {
	client *mongo.Client
	Repositories
}

// NewStorage connects to the configured MongoDB database.
func NewStorage(ctx context.Context, env *config.Config) (*Storage, error) {
	return Connect(ctx, env.MongoURI, env.MongoDatabase)
}

func Connect(ctx context.Context, uri, database string) (*Storage, error) {
	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return &Storage{
		client:       client,
		Repositories: NewRepositories(NewMongoDatabase(client.Database(database))),
	}, nil
}

// Ping checks the store is reachable.
func (s *Storage) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Storage) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
