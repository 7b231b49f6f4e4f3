package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/expenselab/expense-keeper/internal/logger"
	"github.com/expenselab/expense-keeper/internal/store"
	"github.com/expenselab/expense-keeper/models"
)

// requiredFields is the ordered set of create fields whose absence fails
// validation. The order is fixed because it determines the order of names in
// the error message.
var requiredFields = []string{"title", "amount", "category"}

// updatableFields is the allowlist of keys a client may send in an update
// body. Anything else, including "id" and "user", is rejected outright.
var updatableFields = map[string]bool{
	"title":       true,
	"amount":      true,
	"category":    true,
	"description": true,
	"date":        true,
}

// expenseService is the concrete implementation of [ExpenseService]. All
// persistence is delegated to an [store.ExpenseRepository]; the injected
// [OwnershipPolicy] decides whether operations are pinned to the caller.
type expenseService struct {
	repository store.ExpenseRepository
	policy     OwnershipPolicy
	logger     *logger.Logger
}

// NewExpenseService constructs an [ExpenseService] over the given repository
// with the given ownership policy.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewExpenseService(repository store.ExpenseRepository, policy OwnershipPolicy, logger *logger.Logger) ExpenseService {
	return &expenseService{
		repository: repository,
		policy:     policy,
		logger:     logger,
	}
}

// Create validates the required fields and persists a new expense owned
// according to the service's policy.
//
// A zero value counts as missing: empty title or category, zero amount. When
// any required field is missing the returned [*MissingFieldsError] lists the
// absent names in the fixed order title, amount, category.
func (s *expenseService) Create(ctx context.Context, input models.ExpenseInput, userID int64) (models.Expense, error) {
	log := logger.FromContext(ctx)

	var missing []string
	for _, field := range requiredFields {
		switch field {
		case "title":
			if input.Title == "" {
				missing = append(missing, field)
			}
		case "amount":
			if input.Amount == 0 {
				missing = append(missing, field)
			}
		case "category":
			if input.Category == "" {
				missing = append(missing, field)
			}
		}
	}

	if len(missing) > 0 {
		log.Warn().Strs("missing_fields", missing).Msg("expense creation rejected: required fields missing")
		return models.Expense{}, &MissingFieldsError{Fields: missing}
	}

	expense, err := s.repository.CreateExpense(ctx, input, s.policy.Scope(userID))
	if err != nil {
		log.Err(err).Msg("expense creation ended with error")
		return models.Expense{}, fmt.Errorf("expense creation ended with error: %w", err)
	}

	log.Info().Str("expense_id", expense.ID).Msg("expense created successfully")
	return expense, nil
}

// List returns every expense visible to the caller, in store-native order.
func (s *expenseService) List(ctx context.Context, userID int64) ([]models.Expense, error) {
	log := logger.FromContext(ctx)

	expenses, err := s.repository.GetAllExpenses(ctx, s.policy.Scope(userID))
	if err != nil {
		log.Err(err).Msg("listing expenses ended with error")
		return nil, fmt.Errorf("listing expenses ended with error: %w", err)
	}

	return expenses, nil
}

// GetByID returns the expense matching id within the caller's scope, or
// [store.ErrExpenseNotFound]; another user's record is indistinguishable
// from a missing one.
func (s *expenseService) GetByID(ctx context.Context, id string, userID int64) (models.Expense, error) {
	log := logger.FromContext(ctx)

	expense, err := s.repository.GetExpenseByID(ctx, id, s.policy.Scope(userID))
	if err != nil {
		log.Warn().Err(err).Str("expense_id", id).Msg("expense lookup failed")
		return models.Expense{}, err
	}

	return expense, nil
}

// Update applies a partial update. The body's key set is validated before
// any store access: an empty body or any key outside the allowlist fails
// with [ErrInvalidUpdateParams] regardless of whether the target exists.
func (s *expenseService) Update(ctx context.Context, id string, body map[string]json.RawMessage, userID int64) (models.Expense, error) {
	log := logger.FromContext(ctx)

	if len(body) == 0 {
		log.Warn().Str("expense_id", id).Msg("expense update rejected: empty body")
		return models.Expense{}, ErrInvalidUpdateParams
	}
	for key := range body {
		if !updatableFields[key] {
			log.Warn().Str("expense_id", id).Str("field", key).Msg("expense update rejected: field not allowed")
			return models.Expense{}, ErrInvalidUpdateParams
		}
	}

	patch, err := decodePatch(body)
	if err != nil {
		log.Warn().Err(err).Str("expense_id", id).Msg("expense update rejected: malformed field value")
		return models.Expense{}, err
	}

	expense, err := s.repository.UpdateExpense(ctx, id, patch, s.policy.Scope(userID))
	if err != nil {
		log.Warn().Err(err).Str("expense_id", id).Msg("expense update failed")
		return models.Expense{}, err
	}

	log.Info().Str("expense_id", id).Msg("expense updated successfully")
	return expense, nil
}

// Delete removes the expense matching id within the caller's scope.
func (s *expenseService) Delete(ctx context.Context, id string, userID int64) error {
	log := logger.FromContext(ctx)

	if err := s.repository.DeleteExpense(ctx, id, s.policy.Scope(userID)); err != nil {
		log.Warn().Err(err).Str("expense_id", id).Msg("expense deletion failed")
		return err
	}

	log.Info().Str("expense_id", id).Msg("expense deleted successfully")
	return nil
}

// Search returns the caller's expenses whose title or category contains
// query case-insensitively. A blank query behaves exactly like List; no
// matches is an empty result, never an error.
func (s *expenseService) Search(ctx context.Context, query string, userID int64) ([]models.Expense, error) {
	log := logger.FromContext(ctx)

	query = strings.TrimSpace(query)

	expenses, err := s.repository.SearchExpenses(ctx, query, s.policy.Scope(userID))
	if err != nil {
		log.Err(err).Str("query", query).Msg("expense search ended with error")
		return nil, fmt.Errorf("expense search ended with error: %w", err)
	}

	return expenses, nil
}

// decodePatch converts an allowlisted raw body into a typed patch. Keys are
// already known to be allowlisted; only value shapes can fail here.
func decodePatch(body map[string]json.RawMessage) (models.ExpensePatch, error) {
	var patch models.ExpensePatch

	for key, raw := range body {
		var err error
		switch key {
		case "title":
			patch.Title = new(string)
			err = json.Unmarshal(raw, patch.Title)
		case "amount":
			patch.Amount = new(float64)
			err = json.Unmarshal(raw, patch.Amount)
		case "category":
			patch.Category = new(string)
			err = json.Unmarshal(raw, patch.Category)
		case "description":
			patch.Description = new(string)
			err = json.Unmarshal(raw, patch.Description)
		case "date":
			patch.Date = new(models.Date)
			err = json.Unmarshal(raw, patch.Date)
		}
		if err != nil {
			return models.ExpensePatch{}, fmt.Errorf("invalid value for field %q: %w", key, err)
		}
	}

	return patch, nil
}
