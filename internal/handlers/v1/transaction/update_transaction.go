package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/v1/apiutil"
	"github.com/carson-networks/finance-server/internal/model"
)

// ReplaceTransactionInput is the Huma input for PUT /v1/transactions/{id}.
type ReplaceTransactionInput struct {
	ID   string `path:"id" doc:"Transaction id"`
	Body TransactionBody
}

// DeleteTransactionInput is the Huma input for DELETE /v1/transactions/{id}.
type DeleteTransactionInput struct {
	ID string `path:"id" doc:"Transaction id"`
}

// transactionWriter is the interface for replacing and deleting
// transactions.
type transactionWriter interface {
	Update(ctx context.Context, id string, tx model.Transaction, userID string) (*model.Transaction, error)
	Delete(ctx context.Context, id, userID string) error
}

// UpdateTransactionHandler handles PUT and DELETE /v1/transactions/{id}.
type UpdateTransactionHandler struct {
	TransactionService transactionWriter
	now                func() time.Time
}

// NewUpdateTransactionHandler creates a new UpdateTransactionHandler.
func NewUpdateTransactionHandler(svc transactionWriter) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{TransactionService: svc, now: time.Now}
}

// Register registers the replace and delete endpoints with the Huma API.
func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "replace-transaction",
		Method:        http.MethodPut,
		Path:          "/v1/transactions/{id}",
		Summary:       "Replace transaction",
		Description:   "Replaces every field of a transaction owned by the caller.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusNoContent,
	}, h.replace)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-transaction",
		Method:        http.MethodDelete,
		Path:          "/v1/transactions/{id}",
		Summary:       "Delete transaction",
		Description:   "Deletes a transaction owned by the caller.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusNoContent,
	}, h.delete)
}

func (h *UpdateTransactionHandler) replace(ctx context.Context, input *ReplaceTransactionInput) (*struct{}, error) {
	userID, err := apiutil.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}

	tx, err := parseTransactionBody(input.Body, userID, h.now())
	if err != nil {
		return nil, err
	}

	if _, err := h.TransactionService.Update(ctx, input.ID, tx, userID); err != nil {
		return nil, apiutil.ToHumaError(err, "failed to update transaction")
	}
	return nil, nil
}

func (h *UpdateTransactionHandler) delete(ctx context.Context, input *DeleteTransactionInput) (*struct{}, error) {
	userID, err := apiutil.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}

	if err := h.TransactionService.Delete(ctx, input.ID, userID); err != nil {
		return nil, apiutil.ToHumaError(err, "failed to delete transaction")
	}
	return nil, nil
}
