package transaction

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/model"
)

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID          string `json:"id" doc:"Transaction id"`
	Kind        string `json:"kind" enum:"Ingreso,Gasto" doc:"Ingreso (income) or Gasto (expense)"`
	Amount      string `json:"amount" doc:"Decimal amount"`
	Description string `json:"description" doc:"Free-text description"`
	CategoryID  string `json:"categoryId" doc:"Category id"`
	OccurredAt  string `json:"occurredAt" doc:"RFC3339 date the transaction happened"`
	OwnerID     string `json:"ownerId" doc:"Owning user id"`
}

// TransactionBody is the request body for creating or replacing a
// transaction.
type TransactionBody struct {
	Kind        string `json:"kind" required:"true" doc:"Ingreso (income) or Gasto (expense)"`
	Amount      string `json:"amount" required:"true" doc:"Decimal amount, greater than zero"`
	Description string `json:"description,omitempty" doc:"Free-text description, at most 200 characters"`
	CategoryID  string `json:"categoryId" required:"true" doc:"Category id"`
	OccurredAt  string `json:"occurredAt,omitempty" doc:"RFC3339 date, defaults to now"`
}

// TransactionOutput wraps a single transaction.
type TransactionOutput struct {
	Body Transaction
}

// parseTransactionBody converts the API body to a domain transaction owned
// by ownerID. Shape errors are 400s; business rules are left to the service.
func parseTransactionBody(body TransactionBody, ownerID string, now time.Time) (model.Transaction, error) {
	amount, err := decimal.NewFromString(body.Amount)
	if err != nil {
		return model.Transaction{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	occurredAt := now
	if body.OccurredAt != "" {
		occurredAt, err = time.Parse(time.RFC3339, body.OccurredAt)
		if err != nil {
			return model.Transaction{}, huma.NewError(http.StatusBadRequest, "invalid occurredAt", err)
		}
	}

	return model.Transaction{
		Kind:        model.Kind(body.Kind),
		Amount:      amount,
		Description: body.Description,
		CategoryID:  body.CategoryID,
		OccurredAt:  occurredAt,
		OwnerID:     ownerID,
	}, nil
}

func fromModel(tx model.Transaction) Transaction {
	return Transaction{
		ID:          tx.ID,
		Kind:        string(tx.Kind),
		Amount:      tx.Amount.String(),
		Description: tx.Description,
		CategoryID:  tx.CategoryID,
		OccurredAt:  tx.OccurredAt.Format(time.RFC3339),
		OwnerID:     tx.OwnerID,
	}
}
