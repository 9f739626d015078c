package transaction

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/finance-server/internal/apperrors"
	"github.com/carson-networks/finance-server/internal/credential"
	"github.com/carson-networks/finance-server/internal/handlers/v1/apiutil"
	"github.com/carson-networks/finance-server/internal/model"
)

var handlerNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

// mockTransactionService is a mock for every transaction service interface.
type mockTransactionService struct {
	mock.Mock
}

func (m *mockTransactionService) ListPage(ctx context.Context, userID string, pageNumber, pageSize int) (*model.TransactionPage, error) {
	args := m.Called(ctx, userID, pageNumber, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TransactionPage), args.Error(1)
}

func (m *mockTransactionService) GetByID(ctx context.Context, id, userID string) (*model.Transaction, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transaction), args.Error(1)
}

func (m *mockTransactionService) Create(ctx context.Context, tx model.Transaction) (*model.Transaction, error) {
	args := m.Called(ctx, tx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transaction), args.Error(1)
}

func (m *mockTransactionService) Update(ctx context.Context, id string, tx model.Transaction, userID string) (*model.Transaction, error) {
	args := m.Called(ctx, id, tx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Transaction), args.Error(1)
}

func (m *mockTransactionService) Delete(ctx context.Context, id, userID string) error {
	return m.Called(ctx, id, userID).Error(0)
}

// newTestAPI registers the handlers against a humatest API and returns it
// with a bearer header for user-1.
func newTestAPI(t *testing.T, svc *mockTransactionService) (humatest.TestAPI, string) {
	t.Helper()
	tokens, err := credential.NewTokenIssuer("test-signing-key", "", "", time.Hour)
	require.NoError(t, err)
	token, err := tokens.Issue(model.User{ID: "user-1", Username: "alice", Role: model.RoleUser})
	require.NoError(t, err)

	_, api := humatest.New(t)
	api.UseMiddleware(apiutil.Authenticate(api, tokens))

	create := NewCreateTransactionHandler(svc)
	create.now = func() time.Time { return handlerNow }
	create.Register(api)
	update := NewUpdateTransactionHandler(svc)
	update.now = func() time.Time { return handlerNow }
	update.Register(api)
	NewListTransactionsHandler(svc).Register(api)
	return api, "Authorization: Bearer " + token
}

func sampleTransaction() model.Transaction {
	return model.Transaction{
		ID:          "t1",
		Kind:        model.KindExpense,
		Amount:      decimal.RequireFromString("42.5"),
		Description: "Groceries",
		CategoryID:  "cat-1",
		OccurredAt:  handlerNow.Add(-time.Hour),
		OwnerID:     "user-1",
	}
}

// -- parseTransactionBody unit tests --

func TestParseTransactionBody_ValidInput(t *testing.T) {
	tx, err := parseTransactionBody(TransactionBody{
		Kind:       "Gasto",
		Amount:     "123.45",
		CategoryID: "cat-1",
		OccurredAt: "2025-01-15T10:30:00Z",
	}, "user-1", handlerNow)

	require.NoError(t, err)
	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("123.45")))
	assert.Equal(t, "user-1", tx.OwnerID)
	assert.True(t, tx.OccurredAt.Equal(time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)))
}

func TestParseTransactionBody_DefaultsDateToNow(t *testing.T) {
	tx, err := parseTransactionBody(TransactionBody{Kind: "Gasto", Amount: "1", CategoryID: "cat-1"}, "user-1", handlerNow)

	require.NoError(t, err)
	assert.True(t, tx.OccurredAt.Equal(handlerNow))
}

func TestParseTransactionBody_InvalidFields(t *testing.T) {
	_, err := parseTransactionBody(TransactionBody{Amount: "lots", CategoryID: "cat-1"}, "user-1", handlerNow)
	assert.Error(t, err)

	_, err = parseTransactionBody(TransactionBody{Amount: "1", OccurredAt: "yesterday"}, "user-1", handlerNow)
	assert.Error(t, err)
}

// -- HTTP tests --

func TestCreateTransaction_Success(t *testing.T) {
	svc := &mockTransactionService{}
	api, auth := newTestAPI(t, svc)

	svc.On("Create", mock.Anything, mock.MatchedBy(func(tx model.Transaction) bool {
		return tx.OwnerID == "user-1" && tx.Amount.Equal(decimal.RequireFromString("42.50")) && tx.CategoryID == "cat-1"
	})).Return(func() *model.Transaction { tx := sampleTransaction(); return &tx }(), nil)

	resp := api.Post("/v1/transactions", auth, map[string]any{
		"kind":       "Gasto",
		"amount":     "42.50",
		"categoryId": "cat-1",
		"occurredAt": "2025-06-01T11:00:00Z",
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	assert.Contains(t, resp.Body.String(), `"amount":"42.5"`)
	svc.AssertExpectations(t)
}

func TestCreateTransaction_InvalidAmount(t *testing.T) {
	svc := &mockTransactionService{}
	api, auth := newTestAPI(t, svc)

	resp := api.Post("/v1/transactions", auth, map[string]any{
		"kind":       "Gasto",
		"amount":     "not-a-number",
		"categoryId": "cat-1",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateTransaction_ValidationError(t *testing.T) {
	svc := &mockTransactionService{}
	api, auth := newTestAPI(t, svc)

	svc.On("Create", mock.Anything, mock.Anything).
		Return(nil, apperrors.Validation(map[string][]string{"amount": {"amount must be greater than zero."}}))

	resp := api.Post("/v1/transactions", auth, map[string]any{
		"kind":       "Gasto",
		"amount":     "0",
		"categoryId": "cat-1",
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Contains(t, resp.Body.String(), "amount must be greater than zero.")
}

func TestCreateTransaction_RequiresToken(t *testing.T) {
	svc := &mockTransactionService{}
	api, _ := newTestAPI(t, svc)

	resp := api.Post("/v1/transactions", map[string]any{"kind": "Gasto", "amount": "1", "categoryId": "cat-1"})

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestListTransactions_Paging(t *testing.T) {
	svc := &mockTransactionService{}
	api, auth := newTestAPI(t, svc)

	svc.On("ListPage", mock.Anything, "user-1", 2, 10).Return(&model.TransactionPage{
		Transactions: []model.Transaction{sampleTransaction()},
		Total:        11,
		PageNumber:   2,
		PageSize:     10,
	}, nil)

	resp := api.Get("/v1/transactions?page=2&pageSize=10", auth)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"total":11`)
	svc.AssertExpectations(t)
}

func TestListTransactions_Defaults(t *testing.T) {
	svc := &mockTransactionService{}
	api, auth := newTestAPI(t, svc)

	svc.On("ListPage", mock.Anything, "user-1", 1, 20).Return(&model.TransactionPage{PageNumber: 1, PageSize: 20}, nil)

	resp := api.Get("/v1/transactions", auth)

	assert.Equal(t, http.StatusOK, resp.Code)
	svc.AssertExpectations(t)
}

func TestGetTransaction_NotOwned(t *testing.T) {
	svc := &mockTransactionService{}
	api, auth := newTestAPI(t, svc)

	svc.On("GetByID", mock.Anything, "t1", "user-1").Return(nil, apperrors.NotFound("transaction", "t1"))

	assert.Equal(t, http.StatusNotFound, api.Get("/v1/transactions/t1", auth).Code)
}

func TestReplaceTransaction_NoContent(t *testing.T) {
	svc := &mockTransactionService{}
	api, auth := newTestAPI(t, svc)

	svc.On("Update", mock.Anything, "t1", mock.Anything, "user-1").Return(func() *model.Transaction { tx := sampleTransaction(); return &tx }(), nil)

	resp := api.Put("/v1/transactions/t1", auth, map[string]any{
		"kind":       "Gasto",
		"amount":     "10",
		"categoryId": "cat-1",
	})

	assert.Equal(t, http.StatusNoContent, resp.Code)
}

func TestDeleteTransaction(t *testing.T) {
	svc := &mockTransactionService{}
	api, auth := newTestAPI(t, svc)

	svc.On("Delete", mock.Anything, "t1", "user-1").Return(nil)

	assert.Equal(t, http.StatusNoContent, api.Delete("/v1/transactions/t1", auth).Code)
}
