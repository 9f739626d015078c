package storage

import (
	"context"
	"math"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/carson-networks/finance-server/internal/apperrors"
)

// IRepository is the generic persistence contract over one collection.
//
//go:generate mockery --name IRepository --inpackage
type IRepository[T any] interface {
	// GetByID returns nil, nil when no record matches.
	GetByID(ctx context.Context, id string) (*T, error)
	// FirstOrDefault returns nil, nil when no record matches.
	FirstOrDefault(ctx context.Context, filter bson.D) (*T, error)
	Find(ctx context.Context, filter bson.D) ([]*T, error)
	GetAll(ctx context.Context) ([]*T, error)
	// Count counts matches; a nil filter counts everything.
	Count(ctx context.Context, filter bson.D) (int64, error)
	Exists(ctx context.Context, filter bson.D) (bool, error)
	Add(ctx context.Context, entity *T) (*T, error)
	Update(ctx context.Context, entity *T) (*T, error)
	Delete(ctx context.Context, id string) (bool, error)
	DeleteMany(ctx context.Context, filter bson.D) (int64, error)
	FindWithPagination(ctx context.Context, filter bson.D, sort bson.D, pageNumber, pageSize int) ([]*T, error)
}

// Repository implements IRepository for any document type whose pointer
// satisfies Document.
type Repository[T any, PT interface {
	*T
	Document
}] struct {
	name       string
	collection Collection
}

// NewRepository binds a repository to a collection. name is used in errors.
func NewRepository[T any, PT interface {
	*T
	Document
}](name string, collection Collection) *Repository[T, PT] {
	return &Repository[T, PT]{name: name, collection: collection}
}

func (r *Repository[T, PT]) GetByID(ctx context.Context, id string) (*T, error) {
	if id == "" {
		return nil, apperrors.InvalidArgument("%s: id is required", r.name)
	}
	return r.first(ctx, ResolveID(id).Filter())
}

func (r *Repository[T, PT]) FirstOrDefault(ctx context.Context, filter bson.D) (*T, error) {
	if filter == nil {
		return nil, apperrors.InvalidArgument("%s: filter is required", r.name)
	}
	return r.first(ctx, filter)
}

func (r *Repository[T, PT]) Find(ctx context.Context, filter bson.D) ([]*T, error) {
	if filter == nil {
		return nil, apperrors.InvalidArgument("%s: filter is required", r.name)
	}
	cursor, err := r.collection.Find(ctx, filter, FindOptions{})
	if err != nil {
		return nil, r.storeError("Find", err)
	}
	return r.collect(ctx, cursor)
}

func (r *Repository[T, PT]) GetAll(ctx context.Context) ([]*T, error) {
	cursor, err := r.collection.Find(ctx, bson.D{}, FindOptions{})
	if err != nil {
		return nil, r.storeError("GetAll", err)
	}
	return r.collect(ctx, cursor)
}

func (r *Repository[T, PT]) Count(ctx context.Context, filter bson.D) (int64, error) {
	if filter == nil {
		filter = bson.D{}
	}
	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, r.storeError("Count", err)
	}
	return count, nil
}

func (r *Repository[T, PT]) Exists(ctx context.Context, filter bson.D) (bool, error) {
	if filter == nil {
		return false, apperrors.InvalidArgument("%s: filter is required", r.name)
	}
	found, err := r.first(ctx, filter)
	if err != nil {
		return false, err
	}
	return found != nil, nil
}

// Add inserts entity and writes the store-assigned id back onto it.
func (r *Repository[T, PT]) Add(ctx context.Context, entity *T) (*T, error) {
	if entity == nil {
		return nil, apperrors.InvalidArgument("%s: entity is required", r.name)
	}
	insertedID, err := r.collection.InsertOne(ctx, entity)
	if err != nil {
		return nil, r.storeError("Add", err)
	}
	if oid, ok := insertedID.(primitive.ObjectID); ok && !oid.IsZero() {
		PT(entity).SetObjectID(oid)
	}
	return entity, nil
}

// Update replaces the stored document addressed by the entity's own id. It
// never inserts.
func (r *Repository[T, PT]) Update(ctx context.Context, entity *T) (*T, error) {
	if entity == nil {
		return nil, apperrors.InvalidArgument("%s: entity is required", r.name)
	}
	id := PT(entity).DocumentID()
	if id == "" {
		return nil, apperrors.InvalidArgument("%s: entity id is required", r.name)
	}

	matched, err := r.collection.ReplaceOne(ctx, ResolveID(id).Filter(), entity)
	if err != nil {
		return nil, r.storeError("Update", err)
	}
	if matched == 0 {
		return nil, apperrors.NotFound(r.name, id)
	}
	return entity, nil
}

// Delete reports whether a document was actually removed.
func (r *Repository[T, PT]) Delete(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, apperrors.InvalidArgument("%s: id is required", r.name)
	}
	deleted, err := r.collection.DeleteOne(ctx, ResolveID(id).Filter())
	if err != nil {
		return false, r.storeError("Delete", err)
	}
	return deleted > 0, nil
}

func (r *Repository[T, PT]) DeleteMany(ctx context.Context, filter bson.D) (int64, error) {
	if filter == nil {
		return 0, apperrors.InvalidArgument("%s: filter is required", r.name)
	}
	deleted, err := r.collection.DeleteMany(ctx, filter)
	if err != nil {
		return 0, r.storeError("DeleteMany", err)
	}
	return deleted, nil
}

// FindWithPagination returns page pageNumber (1-based) of size pageSize
// ordered by sort.
func (r *Repository[T, PT]) FindWithPagination(ctx context.Context, filter bson.D, sort bson.D, pageNumber, pageSize int) ([]*T, error) {
	if filter == nil {
		return nil, apperrors.InvalidArgument("%s: filter is required", r.name)
	}
	if pageNumber < 1 {
		return nil, apperrors.InvalidArgument("%s: pageNumber must be at least 1", r.name)
	}
	if pageSize < 1 {
		return nil, apperrors.InvalidArgument("%s: pageSize must be at least 1", r.name)
	}
	if int64(pageNumber-1) > math.MaxInt64/int64(pageSize) {
		return nil, apperrors.InvalidArgument("%s: page %d of size %d is out of range", r.name, pageNumber, pageSize)
	}

	cursor, err := r.collection.Find(ctx, filter, FindOptions{
		Skip:  int64(pageNumber-1) * int64(pageSize),
		Limit: int64(pageSize),
		Sort:  sort,
	})
	if err != nil {
		return nil, r.storeError("FindWithPagination", err)
	}
	return r.collect(ctx, cursor)
}

func (r *Repository[T, PT]) first(ctx context.Context, filter bson.D) (*T, error) {
	cursor, err := r.collection.Find(ctx, filter, FindOptions{Limit: 1})
	if err != nil {
		return nil, r.storeError("FirstOrDefault", err)
	}
	rows, err := r.collect(ctx, cursor)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// collect drains cursor. A nil cursor is an empty result.
func (r *Repository[T, PT]) collect(ctx context.Context, cursor Cursor) ([]*T, error) {
	rows := make([]*T, 0)
	if cursor == nil {
		return rows, nil
	}
	defer func() { _ = cursor.Close(ctx) }()

	for cursor.Next(ctx) {
		row := new(T)
		if err := cursor.Decode(row); err != nil {
			return nil, r.storeError("Decode", err)
		}
		rows = append(rows, row)
	}
	if err := cursor.Err(); err != nil {
		return nil, r.storeError("Cursor", err)
	}
	return rows, nil
}

func (r *Repository[T, PT]) storeError(op string, err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return apperrors.AlreadyExists(r.name + " already exists")
	}
	return apperrors.Internal(r.name+"."+op, err)
}
