package service

import (
	"context"
	"encoding/json"

	"github.com/expenselab/expense-keeper/models"
)

// ExpenseService implements the expense operations behind the HTTP surface.
// The userID argument is the authenticated identity bound by the auth gate;
// how strictly it constrains each operation is decided by the
// [OwnershipPolicy] the service was wired with, so the open route variant
// reuses the same implementation.
type ExpenseService interface {
	Create(ctx context.Context, input models.ExpenseInput, userID int64) (models.Expense, error)
	List(ctx context.Context, userID int64) ([]models.Expense, error)
	GetByID(ctx context.Context, id string, userID int64) (models.Expense, error)
	Update(ctx context.Context, id string, body map[string]json.RawMessage, userID int64) (models.Expense, error)
	Delete(ctx context.Context, id string, userID int64) error
	Search(ctx context.Context, query string, userID int64) ([]models.Expense, error)
}

// AuthService handles account registration, credential verification, and the
// JWT token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error)
	Login(ctx context.Context, creds models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}
