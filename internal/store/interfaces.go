package store

import (
	"context"

	"github.com/expenselab/expense-keeper/models"
)

// OwnerScope restricts expense operations to records owned by a single user.
// The zero value applies no restriction: reads see every record and newly
// created records carry no owner. The scoped form pins every WHERE clause to
// UserID and stamps it on inserts, so an ownership mismatch surfaces exactly
// like a missing record.
type OwnerScope struct {
	// UserID is the owner every operation is pinned to when Enforced.
	UserID int64

	// Enforced reports whether the scope restricts operations at all.
	Enforced bool
}

// ScopedTo builds an OwnerScope pinned to the given user.
func ScopedTo(userID int64) OwnerScope {
	return OwnerScope{UserID: userID, Enforced: true}
}

// ExpenseRepository provides atomic single-row operations over the expenses
// table. No operation spans more than one row; concurrent updates to the
// same expense race with last-write-wins semantics.
type ExpenseRepository interface {
	CreateExpense(ctx context.Context, input models.ExpenseInput, scope OwnerScope) (models.Expense, error)
	GetAllExpenses(ctx context.Context, scope OwnerScope) ([]models.Expense, error)
	GetExpenseByID(ctx context.Context, id string, scope OwnerScope) (models.Expense, error)
	UpdateExpense(ctx context.Context, id string, patch models.ExpensePatch, scope OwnerScope) (models.Expense, error)
	DeleteExpense(ctx context.Context, id string, scope OwnerScope) error
	SearchExpenses(ctx context.Context, query string, scope OwnerScope) ([]models.Expense, error)
}

// UserRepository provides account persistence for the credential-issuing
// endpoints.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}
