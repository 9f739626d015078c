package storage

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FindOptions narrows a Find call. Zero values mean "not set".
type FindOptions struct {
	Skip  int64
	Limit int64
	Sort  bson.D
}

// Cursor iterates a result set.
type Cursor interface {
	Next(ctx context.Context) bool
	Decode(val any) error
	Err() error
	Close(ctx context.Context) error
}

// Collection is the subset of the document store the repository needs.
//
//go:generate mockery --name Collection --inpackage
type Collection interface {
	Find(ctx context.Context, filter bson.D, opts FindOptions) (Cursor, error)
	InsertOne(ctx context.Context, document any) (any, error)
	ReplaceOne(ctx context.Context, filter bson.D, replacement any) (int64, error)
	DeleteOne(ctx context.Context, filter bson.D) (int64, error)
	DeleteMany(ctx context.Context, filter bson.D) (int64, error)
	CountDocuments(ctx context.Context, filter bson.D) (int64, error)
}

// Database hands out collections by name.
type Database interface {
	Collection(name string) Collection
}

type mongoDatabase struct {
	db *mongo.Database
}

// NewMongoDatabase adapts a driver database to Database.
func NewMongoDatabase(db *mongo.Database) Database {
	return &mongoDatabase{db: db}
}

func (d *mongoDatabase) Collection(name string) Collection {
	return &mongoCollection{coll: d.db.Collection(name)}
}

type mongoCollection struct {
	coll *mongo.Collection
}

var _ Collection = (*mongoCollection)(nil)

func (c *mongoCollection) Find(ctx context.Context, filter bson.D, opts FindOptions) (Cursor, error) {
	findOpts := options.Find()
	if opts.Skip > 0 {
		findOpts.SetSkip(opts.Skip)
	}
	if opts.Limit > 0 {
		findOpts.SetLimit(opts.Limit)
	}
	if len(opts.Sort) > 0 {
		findOpts.SetSort(opts.Sort)
	}

	cursor, err := c.coll.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, err
	}
	if cursor == nil {
		return nil, nil
	}
	return cursor, nil
}

func (c *mongoCollection) InsertOne(ctx context.Context, document any) (any, error) {
	res, err := c.coll.InsertOne(ctx, document)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return primitive.NilObjectID, nil
	}
	return res.InsertedID, nil
}

func (c *mongoCollection) ReplaceOne(ctx context.Context, filter bson.D, replacement any) (int64, error) {
	res, err := c.coll.ReplaceOne(ctx, filter, replacement, options.Replace().SetUpsert(false))
	if err != nil {
		return 0, err
	}
	if res == nil {
		return 0, nil
	}
	return res.MatchedCount, nil
}

func (c *mongoCollection) DeleteOne(ctx context.Context, filter bson.D) (int64, error) {
	res, err := c.coll.DeleteOne(ctx, filter)
	if err != nil {
		return 0, err
	}
	if res == nil {
		return 0, nil
	}
	return res.DeletedCount, nil
}

func (c *mongoCollection) DeleteMany(ctx context.Context, filter bson.D) (int64, error) {
	res, err := c.coll.DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}
	if res == nil {
		return 0, nil
	}
	return res.DeletedCount, nil
}

func (c *mongoCollection) CountDocuments(ctx context.Context, filter bson.D) (int64, error) {
	return c.coll.CountDocuments(ctx, filter)
}
