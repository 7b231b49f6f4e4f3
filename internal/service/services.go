package service

import (
	"github.com/expenselab/expense-keeper/internal/config"
	"github.com/expenselab/expense-keeper/internal/logger"
	"github.com/expenselab/expense-keeper/internal/store"
)

// Services bundles everything the HTTP layer depends on. Both expense
// services run over the same repository; they differ only in ownership
// policy. OpenExpenseService backs the optional unauthenticated route set
// and is only mounted when the server config enables it.
type Services struct {
	AuthService        AuthService
	ExpenseService     ExpenseService
	OpenExpenseService ExpenseService
}

func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService:        NewAuthService(storages.UserRepository, cfg, logger),
		ExpenseService:     NewExpenseService(storages.ExpenseRepository, OwnerScoped{}, logger),
		OpenExpenseService: NewExpenseService(storages.ExpenseRepository, Unscoped{}, logger),
	}
}
