package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/carson-networks/finance-server/internal/apperrors"
	"github.com/carson-networks/finance-server/internal/credential"
	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/model"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/validation"
)

// MinPasswordLength is the shortest password Register accepts.
const MinPasswordLength = 8

const (
	userEntity = "user"

	invalidCredentialsMessage = "invalid username or password"
)

// UserService handles registration, login and account lifecycle.
type UserService struct {
	users        storage.IRepository[storage.UserDocument]
	categories   storage.IRepository[storage.CategoryDocument]
	transactions storage.IRepository[storage.TransactionDocument]
	transactor   storage.Transactor
	hasher       *credential.PasswordHasher
	tokens       *credential.TokenIssuer
	validator    *validation.UserValidator
	logger       *logrus.Logger
}

// NewUserService creates a new UserService.
func NewUserService(store *storage.Storage, hasher *credential.PasswordHasher, tokens *credential.TokenIssuer, logger *logrus.Logger) *UserService {
	return &UserService{
		users:        store.Users,
		categories:   store.Categories,
		transactions: store.Transactions,
		transactor:   store,
		hasher:       hasher,
		tokens:       tokens,
		validator:    validation.NewUserValidator(),
		logger:       logger,
	}
}

func normalizeUsername(username string) string {
	return strings.ToLower(strings.TrimSpace(username))
}

func byUsername(username string) bson.D {
	return bson.D{{Key: storage.FieldUsername, Value: username}}
}

// Register creates an inactive user. An empty role defaults to usuario.
func (s *UserService) Register(ctx context.Context, username, password string, role model.Role) (*model.User, error) {
	username = normalizeUsername(username)
	if username == "" || password == "" {
		return nil, apperrors.InvalidArgument("username and password are required")
	}
	if role == "" {
		role = model.RoleUser
	}
	role = model.Role(strings.ToLower(string(role)))

	// Shape is checked before the store lookup and the KDF run. The raw
	// password stands in for the credential until it is hashed.
	user := model.User{
		Username:           username,
		PasswordCredential: password,
		Active:             false,
		Role:               role,
	}
	errs := s.validator.Validate(user)
	if utf8.RuneCountInString(password) < MinPasswordLength {
		errs = append(errs, validation.FieldError{
			Field:   "password",
			Message: fmt.Sprintf("password must be at least %d characters.", MinPasswordLength),
		})
	}
	if !errs.Valid() {
		return nil, apperrors.Validation(errs.ByField())
	}

	exists, err := s.users.Exists(ctx, byUsername(username))
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.AlreadyExists("user already exists")
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return nil, apperrors.Internal("user.Register.Hash", err)
	}
	user.PasswordCredential = hashed

	added, err := s.users.Add(ctx, userToDocument(user))
	if err != nil {
		return nil, err
	}
	created := userFromDocument(added)
	return &created, nil
}

// Login returns a signed token. Unknown users, inactive users and wrong
// passwords all produce the same error.
func (s *UserService) Login(ctx context.Context, username, password string) (string, error) {
	username = normalizeUsername(username)
	if username == "" || password == "" {
		return "", apperrors.InvalidArgument("username and password are required")
	}

	doc, err := s.users.FirstOrDefault(ctx, byUsername(username))
	if err != nil {
		return "", err
	}

	entry := s.logger.WithField("username", username)
	switch {
	case doc == nil:
		entry.Info("UserService.Login.unknownUser")
		return "", apperrors.Unauthorized(invalidCredentialsMessage)
	case !doc.Active:
		entry.Info("UserService.Login.inactiveUser")
		return "", apperrors.Unauthorized(invalidCredentialsMessage)
	case !s.hasher.Verify(password, doc.PasswordCredential):
		entry.Info("UserService.Login.badPassword")
		return "", apperrors.Unauthorized(invalidCredentialsMessage)
	}

	token, err := s.tokens.Issue(userFromDocument(doc))
	if err != nil {
		return "", apperrors.Internal("user.Login.Issue", err)
	}
	return token, nil
}

// IsActive reports whether username exists and is active.
func (s *UserService) IsActive(ctx context.Context, username string) (bool, error) {
	username = normalizeUsername(username)
	if username == "" {
		return false, apperrors.InvalidArgument("username is required")
	}
	doc, err := s.users.FirstOrDefault(ctx, byUsername(username))
	if err != nil {
		return false, err
	}
	return doc != nil && doc.Active, nil
}

// SetActive activates or deactivates username.
func (s *UserService) SetActive(ctx context.Context, username string, active bool) error {
	username = normalizeUsername(username)
	if username == "" {
		return apperrors.InvalidArgument("username is required")
	}
	doc, err := s.users.FirstOrDefault(ctx, byUsername(username))
	if err != nil {
		return err
	}
	if doc == nil {
		return apperrors.NotFound(userEntity, username)
	}
	doc.Active = active
	_, err = s.users.Update(ctx, doc)
	return err
}

// DeleteAccount removes userID together with its transactions and
// categories in one unit of work.
func (s *UserService) DeleteAccount(ctx context.Context, userID string) error {
	if userID == "" {
		return apperrors.InvalidArgument("userID is required")
	}
	owned := bson.D{storage.OwnedBy(userID)}

	logData := logging.GetLogData(ctx)
	return s.transactor.RunInTransaction(ctx, func(txCtx context.Context) error {
		stop := logData.AddToExistingTiming("deleteAccountStorageMs")
		removed, err := s.transactions.DeleteMany(txCtx, owned)
		stop()
		if err != nil {
			return err
		}
		logData.AddData("deletedTransactions", removed)

		stop = logData.AddToExistingTiming("deleteAccountStorageMs")
		removed, err = s.categories.DeleteMany(txCtx, owned)
		stop()
		if err != nil {
			return err
		}
		logData.AddData("deletedCategories", removed)

		stop = logData.AddToExistingTiming("deleteAccountStorageMs")
		deleted, err := s.users.Delete(txCtx, userID)
		stop()
		if err != nil {
			return err
		}
		if !deleted {
			return apperrors.NotFound(userEntity, userID)
		}
		return nil
	})
}
