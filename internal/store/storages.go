package store

import "github.com/expenselab/expense-keeper/internal/logger"

// Storages bundles all repositories sharing the single database handle.
type Storages struct {
	UserRepository    UserRepository
	ExpenseRepository ExpenseRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:    NewUserRepository(db, logger),
		ExpenseRepository: NewExpenseRepository(db, logger),
	}
}
