package storage

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/carson-networks/finance-server/internal/apperrors"
)

var _ IRepository[CategoryDocument] = (*MockIRepository[CategoryDocument])(nil)

type sliceCursor struct {
	rows    []CategoryDocument
	pos     int
	closed  bool
	failErr error
}

func (c *sliceCursor) Next(context.Context) bool {
	if c.pos >= len(c.rows) {
		return false
	}
	c.pos++
	return true
}

func (c *sliceCursor) Decode(val any) error {
	doc, ok := val.(*CategoryDocument)
	if !ok {
		return errors.New("unexpected decode target")
	}
	*doc = c.rows[c.pos-1]
	return nil
}

func (c *sliceCursor) Err() error { return c.failErr }
func (c *sliceCursor) Close(context.Context) error { c.closed = true; return nil }

type findCall struct {
	filter bson.D
	opts   FindOptions
}

type fakeCollection struct {
	cursor     Cursor
	findErr    error
	finds      []findCall
	insertedID any
	insertErr  error
	inserted   []any
	matched    int64
	replaced   []bson.D
	deleted    int64
	deletes    []bson.D
	count      int64
	counted    []bson.D
}

func (f *fakeCollection) Find(_ context.Context, filter bson.D, opts FindOptions) (Cursor, error) {
	f.finds = append(f.finds, findCall{filter: filter, opts: opts})
	return f.cursor, f.findErr
}

func (f *fakeCollection) InsertOne(_ context.Context, document any) (any, error) {
	f.inserted = append(f.inserted, document)
	return f.insertedID, f.insertErr
}

func (f *fakeCollection) ReplaceOne(_ context.Context, filter bson.D, _ any) (int64, error) {
	f.replaced = append(f.replaced, filter)
	return f.matched, nil
}

func (f *fakeCollection) DeleteOne(_ context.Context, filter bson.D) (int64, error) {
	f.deletes = append(f.deletes, filter)
	return f.deleted, nil
}

func (f *fakeCollection) DeleteMany(_ context.Context, filter bson.D) (int64, error) {
	f.deletes = append(f.deletes, filter)
	return f.deleted, nil
}

func (f *fakeCollection) CountDocuments(_ context.Context, filter bson.D) (int64, error) {
	f.counted = append(f.counted, filter)
	return f.count, nil
}

func newTestRepository(coll *fakeCollection) *Repository[CategoryDocument, *CategoryDocument] {
	return NewRepository[CategoryDocument]("category", coll)
}

func categoryRow(key, name string) CategoryDocument {
	return CategoryDocument{DocumentKey: DocumentKey{Key: key}, Name: name, Kind: "Gasto", OwnerID: "user-1"}
}

// -- GetByID tests --

func TestGetByID_ObjectIDPath(t *testing.T) {
	oid := primitive.NewObjectID()
	row := CategoryDocument{DocumentKey: DocumentKey{ObjectID: oid}, Name: "Food"}
	coll := &fakeCollection{cursor: &sliceCursor{rows: []CategoryDocument{row}}}

	found, err := newTestRepository(coll).GetByID(context.Background(), oid.Hex())

	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Food", found.Name)
	assert.Equal(t, bson.D{{Key: "_id", Value: oid}}, coll.finds[0].filter)
	assert.Equal(t, int64(1), coll.finds[0].opts.Limit)
}

func TestGetByID_PlainKeyPath(t *testing.T) {
	coll := &fakeCollection{cursor: &sliceCursor{rows: []CategoryDocument{categoryRow("fixture-1", "Rent")}}}

	found, err := newTestRepository(coll).GetByID(context.Background(), "fixture-1")

	require.NoError(t, err)
	assert.Equal(t, "fixture-1", found.DocumentID())
	assert.Equal(t, bson.D{{Key: "key", Value: "fixture-1"}}, coll.finds[0].filter)
}

func TestGetByID_Absent(t *testing.T) {
	coll := &fakeCollection{cursor: &sliceCursor{}}

	found, err := newTestRepository(coll).GetByID(context.Background(), "missing")

	assert.NoError(t, err)
	assert.Nil(t, found)
}

func TestGetByID_EmptyIDFailsBeforeStore(t *testing.T) {
	coll := &fakeCollection{}

	_, err := newTestRepository(coll).GetByID(context.Background(), "")

	assert.True(t, apperrors.Is(err, apperrors.KindInvalidArgument))
	assert.Empty(t, coll.finds)
}

// -- Find tests --

func TestFind_NilCursorIsEmpty(t *testing.T) {
	coll := &fakeCollection{}

	rows, err := newTestRepository(coll).Find(context.Background(), bson.D{})

	assert.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestFind_ClosesCursor(t *testing.T) {
	cursor := &sliceCursor{rows: []CategoryDocument{categoryRow("a", "A"), categoryRow("b", "B")}}
	coll := &fakeCollection{cursor: cursor}

	rows, err := newTestRepository(coll).Find(context.Background(), bson.D{{Key: "ownerId", Value: "user-1"}})

	require.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.True(t, cursor.closed)
}

func TestFind_NilFilter(t *testing.T) {
	coll := &fakeCollection{}

	_, err := newTestRepository(coll).Find(context.Background(), nil)

	assert.True(t, apperrors.Is(err, apperrors.KindInvalidArgument))
	assert.Empty(t, coll.finds)
}

func TestFind_StoreErrorIsInternal(t *testing.T) {
	coll := &fakeCollection{findErr: errors.New("connection reset")}

	_, err := newTestRepository(coll).Find(context.Background(), bson.D{})

	assert.True(t, apperrors.Is(err, apperrors.KindInternal))
}

func TestFind_CursorErrorIsInternal(t *testing.T) {
	coll := &fakeCollection{cursor: &sliceCursor{failErr: errors.New("cursor killed")}}

	_, err := newTestRepository(coll).GetAll(context.Background())

	assert.True(t, apperrors.Is(err, apperrors.KindInternal))
}

// -- Count / Exists tests --

func TestCount_NilFilterCountsAll(t *testing.T) {
	coll := &fakeCollection{count: 7}

	count, err := newTestRepository(coll).Count(context.Background(), nil)

	assert.NoError(t, err)
	assert.Equal(t, int64(7), count)
	assert.Equal(t, bson.D{}, coll.counted[0])
}

func TestExists(t *testing.T) {
	coll := &fakeCollection{cursor: &sliceCursor{rows: []CategoryDocument{categoryRow("a", "A")}}}
	exists, err := newTestRepository(coll).Exists(context.Background(), bson.D{})
	assert.NoError(t, err)
	assert.True(t, exists)

	coll = &fakeCollection{cursor: &sliceCursor{}}
	exists, err = newTestRepository(coll).Exists(context.Background(), bson.D{})
	assert.NoError(t, err)
	assert.False(t, exists)
}

// -- Add tests --

func TestAdd_AssignsObjectID(t *testing.T) {
	oid := primitive.NewObjectID()
	coll := &fakeCollection{insertedID: oid}
	doc := &CategoryDocument{Name: "Food"}

	added, err := newTestRepository(coll).Add(context.Background(), doc)

	require.NoError(t, err)
	assert.Equal(t, oid.Hex(), added.DocumentID())
	assert.Len(t, coll.inserted, 1)
}

func TestAdd_NilEntity(t *testing.T) {
	coll := &fakeCollection{}

	_, err := newTestRepository(coll).Add(context.Background(), nil)

	assert.True(t, apperrors.Is(err, apperrors.KindInvalidArgument))
	assert.Empty(t, coll.inserted)
}

func TestAdd_DuplicateKeyIsAlreadyExists(t *testing.T) {
	coll := &fakeCollection{insertErr: mongo.WriteException{
		WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key error"}},
	}}

	_, err := newTestRepository(coll).Add(context.Background(), &CategoryDocument{Name: "Food"})

	assert.True(t, apperrors.Is(err, apperrors.KindAlreadyExists))
}

// -- Update tests --

func TestUpdate_Replaces(t *testing.T) {
	coll := &fakeCollection{matched: 1}
	doc := categoryRow("fixture-1", "Renamed")

	updated, err := newTestRepository(coll).Update(context.Background(), &doc)

	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, bson.D{{Key: "key", Value: "fixture-1"}}, coll.replaced[0])
}

func TestUpdate_NoMatchIsNotFound(t *testing.T) {
	coll := &fakeCollection{matched: 0}
	doc := CategoryDocument{DocumentKey: DocumentKey{ObjectID: primitive.NewObjectID()}}

	_, err := newTestRepository(coll).Update(context.Background(), &doc)

	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
}

func TestUpdate_MissingID(t *testing.T) {
	coll := &fakeCollection{}

	_, err := newTestRepository(coll).Update(context.Background(), &CategoryDocument{})

	assert.True(t, apperrors.Is(err, apperrors.KindInvalidArgument))
	assert.Empty(t, coll.replaced)
}

// -- Delete tests --

func TestDelete_ReportsOutcome(t *testing.T) {
	coll := &fakeCollection{deleted: 1}
	deleted, err := newTestRepository(coll).Delete(context.Background(), "fixture-1")
	assert.NoError(t, err)
	assert.True(t, deleted)

	coll = &fakeCollection{deleted: 0}
	deleted, err = newTestRepository(coll).Delete(context.Background(), "fixture-1")
	assert.NoError(t, err)
	assert.False(t, deleted)
}

func TestDeleteMany_ReturnsCount(t *testing.T) {
	coll := &fakeCollection{deleted: 3}

	count, err := newTestRepository(coll).DeleteMany(context.Background(), bson.D{{Key: "ownerId", Value: "user-1"}})

	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

// -- FindWithPagination tests --

func TestFindWithPagination_SkipAndLimit(t *testing.T) {
	coll := &fakeCollection{cursor: &sliceCursor{}}
	sort := bson.D{{Key: "occurredAt", Value: -1}}

	_, err := newTestRepository(coll).FindWithPagination(context.Background(), bson.D{}, sort, 3, 20)

	require.NoError(t, err)
	assert.Equal(t, FindOptions{Skip: 40, Limit: 20, Sort: sort}, coll.finds[0].opts)
}

func TestFindWithPagination_RejectsBadPage(t *testing.T) {
	coll := &fakeCollection{}
	repo := newTestRepository(coll)

	_, err := repo.FindWithPagination(context.Background(), bson.D{}, nil, 0, 10)
	assert.True(t, apperrors.Is(err, apperrors.KindInvalidArgument))

	_, err = repo.FindWithPagination(context.Background(), bson.D{}, nil, 1, 0)
	assert.True(t, apperrors.Is(err, apperrors.KindInvalidArgument))

	assert.Empty(t, coll.finds)
}

func TestFindWithPagination_SkipOverflow(t *testing.T) {
	coll := &fakeCollection{cursor: &sliceCursor{}}
	repo := newTestRepository(coll)

	_, err := repo.FindWithPagination(context.Background(), bson.D{}, nil, math.MaxInt64/10, 100)

	assert.True(t, apperrors.Is(err, apperrors.KindInvalidArgument))
	assert.Empty(t, coll.finds)
}

func TestFindWithPagination_LargestSkip(t *testing.T) {
	coll := &fakeCollection{cursor: &sliceCursor{}}
	pageSize := 1 << 20
	pageNumber := int(math.MaxInt64/int64(pageSize)) + 1

	_, err := newTestRepository(coll).FindWithPagination(context.Background(), bson.D{}, nil, pageNumber, pageSize)

	require.NoError(t, err)
	assert.Equal(t, int64(pageNumber-1)*int64(pageSize), coll.finds[0].opts.Skip)
	assert.Positive(t, coll.finds[0].opts.Skip)
}
