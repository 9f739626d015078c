package service

import (
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/carson-networks/finance-server/internal/apperrors"
	"github.com/carson-networks/finance-server/internal/model"
	"github.com/carson-networks/finance-server/internal/storage"
)

func transactionToDocument(tx model.Transaction) (*storage.TransactionDocument, error) {
	amount, err := primitive.ParseDecimal128(tx.Amount.String())
	if err != nil {
		return nil, apperrors.Validation(map[string][]string{
			"amount": {"amount must have at most 34 significant digits."},
		})
	}
	doc := &storage.TransactionDocument{
		Kind:        string(tx.Kind),
		Amount:      amount,
		Description: tx.Description,
		CategoryID:  tx.CategoryID,
		OccurredAt:  tx.OccurredAt.UTC(),
		OwnerID:     tx.OwnerID,
	}
	doc.SetDocumentID(tx.ID)
	return doc, nil
}

func transactionFromDocument(doc *storage.TransactionDocument) (model.Transaction, error) {
	amount, err := decimal.NewFromString(doc.Amount.String())
	if err != nil {
		return model.Transaction{}, apperrors.Internal("transaction.amount", err)
	}
	return model.Transaction{
		ID:          doc.DocumentID(),
		Kind:        model.Kind(doc.Kind),
		Amount:      amount,
		Description: doc.Description,
		CategoryID:  doc.CategoryID,
		OccurredAt:  doc.OccurredAt,
		OwnerID:     doc.OwnerID,
	}, nil
}

func transactionsFromDocuments(docs []*storage.TransactionDocument) ([]model.Transaction, error) {
	out := make([]model.Transaction, 0, len(docs))
	for _, doc := range docs {
		tx, err := transactionFromDocument(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, tx)
	}
	return out, nil
}
