package service

import (
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/finance-server/internal/credential"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/validation"
)

// Service holds all business logic services.
type Service struct {
	Category    *CategoryService
	Transaction *TransactionService
	User        *UserService
}

// NewService creates a new Service with the given storage. Multi-document
// units of work go through units; a nil units uses store directly.
func NewService(store *storage.Storage, units storage.Transactor, tokens *credential.TokenIssuer, logger *logrus.Logger) *Service {
	user := NewUserService(store, credential.NewPasswordHasher(credential.DefaultParams), tokens, logger)
	if units != nil {
		user.transactor = units
	}

	return &Service{
		Category:    NewCategoryService(store),
		Transaction: NewTransactionService(store, validation.SystemClock{}),
		User:        user,
	}
}
