// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"lifecycle/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// LifecycleRepoFactory provides access to lifecycle config repository within a transaction.
	LifecycleRepoFactory interface {
		LifecycleConfigRepository() ports.LifecycleConfigRepository
	}

	// ExpenseRepoFactory provides access to expense repository within a transaction.
	ExpenseRepoFactory interface {
		ExpenseRepository() ports.ExpenseRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// LifecycleUoW manages transactions for commands that read an order and
	// write its lifecycle configuration.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().Get(ctx, orderID)
	//   cfg, err := uow.LifecycleConfigRepository().Get(ctx, orderID)
	//   // ... edit cfg
	//
	//   err = uow.Commit(ctx)
	LifecycleUoW interface {
		TxManager
		OrderRepoFactory
		LifecycleRepoFactory
	}

	// LifecycleUoWFactory creates new lifecycle unit of work instances.
	LifecycleUoWFactory interface {
		Create() LifecycleUoW
	}

	// ExpenseUoW manages transactions for appending to the expense ledger.
	ExpenseUoW interface {
		TxManager
		OrderRepoFactory
		ExpenseRepoFactory
	}

	// ExpenseUoWFactory creates new expense unit of work instances.
	ExpenseUoWFactory interface {
		Create() ExpenseUoW
	}
)
