// Package model holds the domain types shared by the validation, service and
// handler layers.
package model

import (
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/shopspring/decimal"
)

// Kind is the direction of money for a category or transaction. The values
// are the ones persisted in the store.
type Kind string

const (
	KindIncome  Kind = "Ingreso"
	KindExpense Kind = "Gasto"
)

// Role is a user's authorization role.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "usuario"
)

type Category struct {
	ID      string `json:"id"`
	Name    string `json:"name" validate:"required,max=50"`
	Kind    Kind   `json:"kind" validate:"required,oneof=Ingreso Gasto"`
	OwnerID string `json:"ownerId" validate:"required"`
}

// CategoryPatch is a partial update. Unset fields keep their stored value.
type CategoryPatch struct {
	Name omit.Val[string]
	Kind omit.Val[Kind]
}

type Transaction struct {
	ID          string          `json:"id"`
	Kind        Kind            `json:"kind" validate:"required,oneof=Ingreso Gasto"`
	Amount      decimal.Decimal `json:"amount" validate:"-"`
	Description string          `json:"description" validate:"max=200"`
	CategoryID  string          `json:"categoryId" validate:"required"`
	OccurredAt  time.Time       `json:"occurredAt" validate:"-"`
	OwnerID     string          `json:"ownerId" validate:"required"`
}

// TransactionPage is one page of a user's transactions, newest first.
type TransactionPage struct {
	Transactions []Transaction
	Total        int64
	PageNumber   int
	PageSize     int
}

type User struct {
	ID                 string `json:"id"`
	Username           string `json:"username" validate:"required,min=3,max=50,username"`
	PasswordCredential string `json:"passwordCredential" validate:"required"`
	Active             bool   `json:"active"`
	Role               Role   `json:"role" validate:"required,oneof=admin usuario"`
}
