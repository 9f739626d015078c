package validation

import (
	"github.com/go-playground/validator/v10"

	"github.com/carson-networks/finance-server/internal/model"
)

// CategoryValidator checks name, kind and owner.
type CategoryValidator struct {
	engine *validator.Validate
}

func NewCategoryValidator() *CategoryValidator {
	return &CategoryValidator{engine: newEngine()}
}

func (v *CategoryValidator) Validate(category model.Category) Errors {
	return structErrors(v.engine, category)
}

// TransactionValidator also checks amount and date, sampling the clock on
// each call.
type TransactionValidator struct {
	engine *validator.Validate
	clock  Clock
}

func NewTransactionValidator(clock Clock) *TransactionValidator {
	if clock == nil {
		clock = SystemClock{}
	}
	return &TransactionValidator{engine: newEngine(), clock: clock}
}

func (v *TransactionValidator) Validate(tx model.Transaction) Errors {
	errs := structErrors(v.engine, tx)

	if !tx.Amount.IsPositive() {
		errs.add("amount", "amount must be greater than zero.")
	}

	switch {
	case tx.OccurredAt.IsZero():
		errs.add("occurredAt", "occurredAt is required.")
	case tx.OccurredAt.After(v.clock.Now()):
		errs.add("occurredAt", "occurredAt must not be in the future.")
	}

	return errs
}

// UserValidator checks username shape, credential presence and role.
type UserValidator struct {
	engine *validator.Validate
}

func NewUserValidator() *UserValidator {
	return &UserValidator{engine: newEngine()}
}

func (v *UserValidator) Validate(user model.User) Errors {
	return structErrors(v.engine, user)
}
