package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/handlers/v1/apiutil"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/model"
	"github.com/carson-networks/finance-server/internal/service"
)

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	Page     int `query:"page" minimum:"1" default:"1" doc:"1-based page number"`
	PageSize int `query:"pageSize" minimum:"1" maximum:"100" default:"20" doc:"Transactions per page"`
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Transactions []Transaction `json:"transactions" doc:"Page of transactions, newest first"`
	Total        int64         `json:"total" doc:"Total transactions owned by the caller"`
	Page         int           `json:"page" doc:"Page number returned"`
	PageSize     int           `json:"pageSize" doc:"Page size used"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// GetTransactionInput addresses one transaction.
type GetTransactionInput struct {
	ID string `path:"id" doc:"Transaction id"`
}

// transactionReader is the interface for reading transactions.
type transactionReader interface {
	ListPage(ctx context.Context, userID string, pageNumber, pageSize int) (*model.TransactionPage, error)
	GetByID(ctx context.Context, id, userID string) (*model.Transaction, error)
}

// ListTransactionsHandler handles GET /v1/transactions and
// GET /v1/transactions/{id}.
type ListTransactionsHandler struct {
	TransactionService transactionReader
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionReader) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the read endpoints with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transactions",
		Summary:     "List transactions",
		Description: "Returns a page of the caller's transactions, newest first.",
		Tags:        []string{"Transactions"},
	}, h.list)

	huma.Register(api, huma.Operation{
		OperationID: "get-transaction",
		Method:      http.MethodGet,
		Path:        "/v1/transactions/{id}",
		Summary:     "Get transaction",
		Description: "Returns one transaction owned by the caller.",
		Tags:        []string{"Transactions"},
	}, h.get)
}

func (h *ListTransactionsHandler) list(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	userID, err := apiutil.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}
	pageSize := input.PageSize
	if pageSize == 0 {
		pageSize = service.DefaultPageSize
	}

	logData := logging.GetLogData(ctx)
	stopTimer := logData.AddTiming("listTransactionsMs")
	page, err := h.TransactionService.ListPage(ctx, userID, input.Page, pageSize)
	stopTimer()
	if err != nil {
		return nil, apiutil.ToHumaError(err, "failed to list transactions")
	}
	logData.AddData("transactionCount", len(page.Transactions))

	resp := ListTransactionsResponseBody{
		Transactions: make([]Transaction, len(page.Transactions)),
		Total:        page.Total,
		Page:         page.PageNumber,
		PageSize:     page.PageSize,
	}
	for i, tx := range page.Transactions {
		resp.Transactions[i] = fromModel(tx)
	}

	return &ListTransactionsOutput{Body: resp}, nil
}

func (h *ListTransactionsHandler) get(ctx context.Context, input *GetTransactionInput) (*TransactionOutput, error) {
	userID, err := apiutil.RequireUserID(ctx)
	if err != nil {
		return nil, err
	}

	tx, err := h.TransactionService.GetByID(ctx, input.ID, userID)
	if err != nil {
		return nil, apiutil.ToHumaError(err, "failed to get transaction")
	}
	return &TransactionOutput{Body: fromModel(*tx)}, nil
}
