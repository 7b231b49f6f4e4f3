package service

import "github.com/expenselab/expense-keeper/internal/store"

// OwnershipPolicy decides how an authenticated identity constrains expense
// operations. It is selected at wiring time: the canonical route set uses
// [OwnerScoped], the open (legacy) route set uses [Unscoped]. Keeping the
// policy injectable lets one service implementation serve both route
// variants.
type OwnershipPolicy interface {
	// Scope translates the caller's user ID into the store-level filter
	// applied to every lookup, update, delete, and create.
	Scope(userID int64) store.OwnerScope
}

// OwnerScoped pins every operation to the authenticated user: records are
// created with the user as owner and lookups never see other users' records.
type OwnerScoped struct{}

func (OwnerScoped) Scope(userID int64) store.OwnerScope {
	return store.ScopedTo(userID)
}

// Unscoped applies no ownership restriction. Records are created without an
// owner and every lookup sees all records.
type Unscoped struct{}

func (Unscoped) Scope(int64) store.OwnerScope {
	return store.OwnerScope{}
}
