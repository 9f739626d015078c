package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/carson-networks/finance-server/internal/apperrors"
	"github.com/carson-networks/finance-server/internal/model"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/validation"
)

const (
	transactionEntity = "transaction"

	DefaultPageSize = 20
	MaxPageSize     = 100
)

// newestFirst orders transactions by date, then by id for a stable order
// among equal dates.
var newestFirst = bson.D{
	{Key: storage.FieldOccurredAt, Value: -1},
	{Key: storage.FieldObjectID, Value: -1},
}

// TransactionService handles transaction business logic.
type TransactionService struct {
	transactions storage.IRepository[storage.TransactionDocument]
	categories   storage.IRepository[storage.CategoryDocument]
	validator    *validation.TransactionValidator
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage, clock validation.Clock) *TransactionService {
	return &TransactionService{
		transactions: store.Transactions,
		categories:   store.Categories,
		validator:    validation.NewTransactionValidator(clock),
	}
}

// GetAll returns every transaction owned by userID.
func (s *TransactionService) GetAll(ctx context.Context, userID string) ([]model.Transaction, error) {
	if userID == "" {
		return nil, apperrors.InvalidArgument("userID is required")
	}
	return s.find(ctx, bson.D{storage.OwnedBy(userID)})
}

// GetByUser returns the transactions recorded by userID.
func (s *TransactionService) GetByUser(ctx context.Context, userID string) ([]model.Transaction, error) {
	return s.GetAll(ctx, userID)
}

// GetByCategory returns the transactions filed under categoryID.
func (s *TransactionService) GetByCategory(ctx context.Context, categoryID string) ([]model.Transaction, error) {
	if categoryID == "" {
		return nil, apperrors.InvalidArgument("categoryID is required")
	}
	return s.find(ctx, bson.D{{Key: storage.FieldCategoryID, Value: categoryID}})
}

// GetByID returns the transaction if it exists and belongs to userID.
func (s *TransactionService) GetByID(ctx context.Context, id, userID string) (*model.Transaction, error) {
	if id == "" || userID == "" {
		return nil, apperrors.InvalidArgument("id and userID are required")
	}
	doc, err := s.transactions.FirstOrDefault(ctx, storage.ResolveID(id).With(storage.OwnedBy(userID)))
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, apperrors.NotFound(transactionEntity, id)
	}
	tx, err := transactionFromDocument(doc)
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

// ListPage returns one page of userID's transactions, newest first, with the
// total count.
func (s *TransactionService) ListPage(ctx context.Context, userID string, pageNumber, pageSize int) (*model.TransactionPage, error) {
	if userID == "" {
		return nil, apperrors.InvalidArgument("userID is required")
	}
	if pageNumber < 1 || pageSize < 1 {
		return nil, apperrors.InvalidArgument("pageNumber and pageSize must be at least 1")
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	filter := bson.D{storage.OwnedBy(userID)}

	total, err := s.transactions.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	docs, err := s.transactions.FindWithPagination(ctx, filter, newestFirst, pageNumber, pageSize)
	if err != nil {
		return nil, err
	}
	txs, err := transactionsFromDocuments(docs)
	if err != nil {
		return nil, err
	}
	return &model.TransactionPage{
		Transactions: txs,
		Total:        total,
		PageNumber:   pageNumber,
		PageSize:     pageSize,
	}, nil
}

// Create validates and inserts a transaction. The category must exist and
// belong to the same owner.
func (s *TransactionService) Create(ctx context.Context, tx model.Transaction) (*model.Transaction, error) {
	if errs := s.validator.Validate(tx); !errs.Valid() {
		return nil, apperrors.Validation(errs.ByField())
	}
	doc, err := transactionToDocument(tx)
	if err != nil {
		return nil, err
	}
	if err := s.checkCategory(ctx, tx.CategoryID, tx.OwnerID); err != nil {
		return nil, err
	}

	doc.ClearID()
	added, err := s.transactions.Add(ctx, doc)
	if err != nil {
		return nil, err
	}
	created, err := transactionFromDocument(added)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update fully replaces the transaction. The stored owner is always userID.
func (s *TransactionService) Update(ctx context.Context, id string, tx model.Transaction, userID string) (*model.Transaction, error) {
	if id == "" || userID == "" {
		return nil, apperrors.InvalidArgument("id and userID are required")
	}
	tx.ID = id
	tx.OwnerID = userID
	if errs := s.validator.Validate(tx); !errs.Valid() {
		return nil, apperrors.Validation(errs.ByField())
	}

	doc, err := transactionToDocument(tx)
	if err != nil {
		return nil, err
	}

	existing, err := s.transactions.FirstOrDefault(ctx, storage.ResolveID(id).With(storage.OwnedBy(userID)))
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperrors.NotFound(transactionEntity, id)
	}
	if err := s.checkCategory(ctx, tx.CategoryID, userID); err != nil {
		return nil, err
	}

	// Keep the stored identifiers so a key-addressed record keeps its key.
	doc.DocumentKey = existing.DocumentKey
	updated, err := s.transactions.Update(ctx, doc)
	if err != nil {
		return nil, err
	}
	result, err := transactionFromDocument(updated)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Delete removes the transaction if userID owns it.
func (s *TransactionService) Delete(ctx context.Context, id, userID string) error {
	if id == "" || userID == "" {
		return apperrors.InvalidArgument("id and userID are required")
	}
	exists, err := s.transactions.Exists(ctx, storage.ResolveID(id).With(storage.OwnedBy(userID)))
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.NotFound(transactionEntity, id)
	}

	deleted, err := s.transactions.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.NotFound(transactionEntity, id)
	}
	return nil
}

func (s *TransactionService) find(ctx context.Context, filter bson.D) ([]model.Transaction, error) {
	docs, err := s.transactions.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	return transactionsFromDocuments(docs)
}

func (s *TransactionService) checkCategory(ctx context.Context, categoryID, ownerID string) error {
	exists, err := s.categories.Exists(ctx, storage.ResolveID(categoryID).With(storage.OwnedBy(ownerID)))
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.Validation(map[string][]string{
			"categoryId": {"categoryId must reference an existing category."},
		})
	}
	return nil
}
