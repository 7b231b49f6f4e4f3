package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/expenselab/expense-keeper/internal/logger"
	"github.com/expenselab/expense-keeper/internal/utils"
	"github.com/expenselab/expense-keeper/models"
)

// expenseRepository is the PostgreSQL-backed implementation of
// [ExpenseRepository]. It executes all expense CRUD and search operations
// against the "expenses" table using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced with
// structured fields (expense_id, user_id, query text).
type expenseRepository struct {
	*DB
	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

// NewExpenseRepository constructs an [ExpenseRepository] backed by the
// provided database connection and logger. Record identifiers are generated
// locally as time-ordered UUIDs rather than by the database.
func NewExpenseRepository(db *DB, logger *logger.Logger) ExpenseRepository {
	logger.Debug().Msg("creating expense repository")
	return &expenseRepository{
		DB:     db,
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}
}

// scanner matches both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanExpense reads one row in expenseColumns order. The nullable owner and
// date columns go through sql.Null* intermediates because NULL cannot be
// scanned into the model's pointer fields directly.
func scanExpense(row scanner) (models.Expense, error) {
	var (
		e      models.Expense
		userID sql.NullInt64
		date   sql.NullTime
	)

	if err := row.Scan(&e.ID, &userID, &e.Title, &e.Amount, &e.Category, &e.Description, &date); err != nil {
		return models.Expense{}, err
	}

	if userID.Valid {
		e.UserID = &userID.Int64
	}
	if date.Valid {
		e.Date = &models.Date{Time: date.Time}
	}

	return e, nil
}

// CreateExpense inserts a new expense and returns the canonical stored row.
// The owner column is stamped from scope; the open variant stores NULL.
func (r *expenseRepository) CreateExpense(ctx context.Context, input models.ExpenseInput, scope OwnerScope) (models.Expense, error) {
	log := logger.FromContext(ctx)

	id := r.ids.Generate()
	query, args, err := buildInsertExpenseQuery(id, input, scope)
	if err != nil {
		log.Err(err).Str("func", "expenseRepository.CreateExpense").Msg("failed to build insert query")
		return models.Expense{}, err
	}

	row := r.DB.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "expenseRepository.CreateExpense").Msg("failed to execute insert")
		return models.Expense{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	expense, err := scanExpense(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Error().Str("func", "expenseRepository.CreateExpense").Msg("insert returned no row")
			return models.Expense{}, ErrExpenseNotSaved
		}
		log.Err(err).Str("func", "expenseRepository.CreateExpense").Msg("failed to scan inserted expense")
		return models.Expense{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return expense, nil
}

// GetAllExpenses returns every expense visible within scope, in store-native
// order. The result is an empty (non-nil) slice when nothing matches.
func (r *expenseRepository) GetAllExpenses(ctx context.Context, scope OwnerScope) ([]models.Expense, error) {
	return r.selectExpenses(ctx, "", scope)
}

// SearchExpenses returns expenses within scope whose title or category
// contains query case-insensitively. A blank query behaves exactly like
// GetAllExpenses.
func (r *expenseRepository) SearchExpenses(ctx context.Context, query string, scope OwnerScope) ([]models.Expense, error) {
	return r.selectExpenses(ctx, query, scope)
}

func (r *expenseRepository) selectExpenses(ctx context.Context, textQuery string, scope OwnerScope) ([]models.Expense, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectExpensesQuery(textQuery, scope)
	if err != nil {
		log.Err(err).Str("func", "expenseRepository.selectExpenses").Msg("failed to build select query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "expenseRepository.selectExpenses").
			Int64("user_id", scope.UserID).
			Msg("failed to execute query for listing expenses")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	expenses := make([]models.Expense, 0, 20)

	for rows.Next() {
		expense, scanErr := scanExpense(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "expenseRepository.selectExpenses").
				Int64("user_id", scope.UserID).
				Msg("failed to scan expense row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		expenses = append(expenses, expense)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "expenseRepository.selectExpenses").
			Int64("user_id", scope.UserID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return expenses, nil
}

// GetExpenseByID retrieves a single expense matching both id and scope.
// A record owned by another user yields [ErrExpenseNotFound], the same as a
// nonexistent id.
func (r *expenseRepository) GetExpenseByID(ctx context.Context, id string, scope OwnerScope) (models.Expense, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectExpenseByIDQuery(id, scope)
	if err != nil {
		log.Err(err).Str("func", "expenseRepository.GetExpenseByID").Msg("failed to build select query")
		return models.Expense{}, err
	}

	row := r.DB.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "expenseRepository.GetExpenseByID").
			Str("expense_id", id).
			Msg("failed to execute query for getting expense")
		return models.Expense{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	expense, err := scanExpense(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Expense{}, ErrExpenseNotFound
		}
		log.Err(err).
			Str("func", "expenseRepository.GetExpenseByID").
			Str("expense_id", id).
			Msg("failed to scan expense row")
		return models.Expense{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return expense, nil
}

// UpdateExpense applies the non-nil patch fields to the expense matching id
// and scope and returns the updated row. Returns [ErrExpenseNotFound] when
// no row matches.
func (r *expenseRepository) UpdateExpense(ctx context.Context, id string, patch models.ExpensePatch, scope OwnerScope) (models.Expense, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateExpenseQuery(id, patch, scope)
	if err != nil {
		log.Err(err).Str("func", "expenseRepository.UpdateExpense").Msg("failed to build update query")
		return models.Expense{}, err
	}

	row := r.DB.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "expenseRepository.UpdateExpense").
			Str("expense_id", id).
			Msg("failed to execute update")
		return models.Expense{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	expense, err := scanExpense(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Expense{}, ErrExpenseNotFound
		}
		log.Err(err).
			Str("func", "expenseRepository.UpdateExpense").
			Str("expense_id", id).
			Msg("failed to scan updated expense")
		return models.Expense{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return expense, nil
}

// DeleteExpense removes the expense matching id and scope. Returns
// [ErrExpenseNotFound] when no row was deleted.
func (r *expenseRepository) DeleteExpense(ctx context.Context, id string, scope OwnerScope) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteExpenseQuery(id, scope)
	if err != nil {
		log.Err(err).Str("func", "expenseRepository.DeleteExpense").Msg("failed to build delete query")
		return err
	}

	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "expenseRepository.DeleteExpense").
			Str("expense_id", id).
			Msg("failed to execute delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "expenseRepository.DeleteExpense").Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrExpenseNotFound
	}

	return nil
}
