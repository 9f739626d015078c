//go:build integration

package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/carson-networks/finance-server/internal/apperrors"
)

func newIntegrationStorage(t *testing.T) *Storage {
	t.Helper()
	ctx := context.Background()

	container, err := mongodb.Run(ctx, "mongo:7", mongodb.WithReplicaSet("rs0"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(context.Background()) })

	uri, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	store, err := Connect(ctx, uri, "finanzas_test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close(context.Background()) })
	return store
}

func TestIntegration_CategoryRoundTrip(t *testing.T) {
	store := newIntegrationStorage(t)
	ctx := context.Background()

	added, err := store.Categories.Add(ctx, &CategoryDocument{Name: "Food", Kind: "Gasto", OwnerID: "user-1"})
	require.NoError(t, err)
	id := added.DocumentID()
	_, err = primitive.ObjectIDFromHex(id)
	require.NoError(t, err)

	found, err := store.Categories.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Food", found.Name)

	found.Name = "Groceries"
	_, err = store.Categories.Update(ctx, found)
	require.NoError(t, err)

	count, err := store.Categories.Count(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	deleted, err := store.Categories.Delete(ctx, id)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = store.Categories.Delete(ctx, id)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestIntegration_PlainKeyFixture(t *testing.T) {
	store := newIntegrationStorage(t)
	ctx := context.Background()

	_, err := store.Categories.Add(ctx, &CategoryDocument{DocumentKey: DocumentKey{Key: "fixture-1"}, Name: "Rent", Kind: "Gasto", OwnerID: "user-1"})
	require.NoError(t, err)

	found, err := store.Categories.GetByID(ctx, "fixture-1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "fixture-1", found.DocumentID())

	_, err = store.Categories.Update(ctx, &CategoryDocument{DocumentKey: DocumentKey{Key: "nope"}, Name: "x"})
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
}

func TestIntegration_PaginationAndTransaction(t *testing.T) {
	store := newIntegrationStorage(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		_, err := store.Transactions.Add(ctx, &TransactionDocument{OwnerID: "user-1", Kind: "Gasto"})
		require.NoError(t, err)
	}

	page, err := store.Transactions.FindWithPagination(ctx, bson.D{{Key: FieldOwnerID, Value: "user-1"}}, bson.D{{Key: FieldObjectID, Value: 1}}, 2, 2)
	require.NoError(t, err)
	assert.Len(t, page, 2)

	err = store.RunInTransaction(ctx, func(txCtx context.Context) error {
		_, err := store.Transactions.DeleteMany(txCtx, bson.D{{Key: FieldOwnerID, Value: "user-1"}})
		require.NoError(t, err)
		return apperrors.NotFound("user", "user-1")
	})
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))

	count, err := store.Transactions.Count(ctx, bson.D{{Key: FieldOwnerID, Value: "user-1"}})
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
}
