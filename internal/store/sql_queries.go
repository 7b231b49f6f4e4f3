package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/expenselab/expense-keeper/models"
)

// expenseColumns is the canonical column order used by every expense query
// and by scanExpense.
var expenseColumns = []string{"id", "user_id", "title", "amount", "category", "description", "expense_date"}

// psql is the statement builder configured for PostgreSQL placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// ownerCondition translates an OwnerScope into a WHERE fragment. An
// unenforced scope contributes nothing, so the open service variant sees
// every row.
func ownerCondition(scope OwnerScope) sq.Sqlizer {
	if !scope.Enforced {
		return nil
	}
	return sq.Eq{"user_id": scope.UserID}
}

// withOwner appends the ownership condition to a select builder when the
// scope is enforced.
func withOwner(b sq.SelectBuilder, scope OwnerScope) sq.SelectBuilder {
	if cond := ownerCondition(scope); cond != nil {
		b = b.Where(cond)
	}
	return b
}

// buildInsertExpenseQuery builds the INSERT for a new expense. The owner
// column is NULL when the scope is not enforced. All columns come back via
// RETURNING so the caller receives the canonical stored representation.
func buildInsertExpenseQuery(id string, input models.ExpenseInput, scope OwnerScope) (string, []any, error) {
	var userID any
	if scope.Enforced {
		userID = scope.UserID
	}

	var date any
	if input.Date != nil {
		date = input.Date.Time
	}

	query, args, err := psql.Insert("expenses").
		Columns(expenseColumns...).
		Values(id, userID, input.Title, input.Amount, input.Category, input.Description, date).
		Suffix("RETURNING " + returningColumns()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSelectExpensesQuery builds the owner-scoped listing query. When
// textQuery is non-empty an additional case-insensitive substring filter on
// title OR category is applied. No explicit ORDER BY: callers get store-native
// order.
func buildSelectExpensesQuery(textQuery string, scope OwnerScope) (string, []any, error) {
	b := psql.Select(expenseColumns...).From("expenses")
	b = withOwner(b, scope)

	if textQuery != "" {
		pattern := "%" + textQuery + "%"
		b = b.Where(sq.Or{
			sq.ILike{"title": pattern},
			sq.ILike{"category": pattern},
		})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSelectExpenseByIDQuery builds the single-record lookup, scoped to the
// owner so that another user's record is indistinguishable from a missing one.
func buildSelectExpenseByIDQuery(id string, scope OwnerScope) (string, []any, error) {
	b := psql.Select(expenseColumns...).From("expenses").Where(sq.Eq{"id": id})
	b = withOwner(b, scope)

	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateExpenseQuery builds a partial UPDATE from the non-nil patch
// fields, filtered by id and ownership, returning the new row state. An
// all-nil patch cannot produce a valid statement and fails upfront.
func buildUpdateExpenseQuery(id string, patch models.ExpensePatch, scope OwnerScope) (string, []any, error) {
	if patch.IsEmpty() {
		return "", nil, fmt.Errorf("%w: update patch carries no fields", ErrBuildingSQLQuery)
	}

	b := psql.Update("expenses")

	if patch.Title != nil {
		b = b.Set("title", *patch.Title)
	}
	if patch.Amount != nil {
		b = b.Set("amount", *patch.Amount)
	}
	if patch.Category != nil {
		b = b.Set("category", *patch.Category)
	}
	if patch.Description != nil {
		b = b.Set("description", *patch.Description)
	}
	if patch.Date != nil {
		b = b.Set("expense_date", patch.Date.Time)
	}

	b = b.Where(sq.Eq{"id": id})
	if cond := ownerCondition(scope); cond != nil {
		b = b.Where(cond)
	}

	query, args, err := b.Suffix("RETURNING " + returningColumns()).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildDeleteExpenseQuery builds the owner-scoped single-record delete.
func buildDeleteExpenseQuery(id string, scope OwnerScope) (string, []any, error) {
	b := psql.Delete("expenses").Where(sq.Eq{"id": id})
	if cond := ownerCondition(scope); cond != nil {
		b = b.Where(cond)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func returningColumns() string {
	return strings.Join(expenseColumns, ", ")
}
