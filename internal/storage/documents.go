package storage

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CategoriesCollection   = "categories"
	TransactionsCollection = "transactions"
	UsersCollection        = "users"
)

// Document is implemented by pointers to every persisted type.
type Document interface {
	DocumentID() string
	SetObjectID(oid primitive.ObjectID)
}

type CategoryDocument struct {
	DocumentKey `bson:",inline"`
	Name        string `bson:"name"`
	Kind        string `bson:"kind"`
	OwnerID     string `bson:"ownerId"`
}

type TransactionDocument struct {
	DocumentKey `bson:",inline"`
	Kind        string               `bson:"kind"`
	Amount      primitive.Decimal128 `bson:"amount"`
	Description string               `bson:"description"`
	CategoryID  string               `bson:"categoryId"`
	OccurredAt  time.Time            `bson:"occurredAt"`
	OwnerID     string               `bson:"ownerId"`
}

type UserDocument struct {
	DocumentKey        `bson:",inline"`
	Username           string `bson:"username"`
	PasswordCredential string `bson:"passwordCredential"`
	Active             bool   `bson:"active"`
	Role               string `bson:"role"`
}

var (
	_ Document = (*CategoryDocument)(nil)
	_ Document = (*TransactionDocument)(nil)
	_ Document = (*UserDocument)(nil)
)
