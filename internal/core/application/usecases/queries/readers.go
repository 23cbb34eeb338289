// Package queries contains read operations of the order lifecycle service.
// Snapshot style queries load aggregates through repositories and recompute
// every derived figure on each call; list style queries read rows directly.
package queries

import (
	"lifecycle/internal/core/ports"
)

type (
	// Reader gives queries access to repositories without a transaction.
	Reader interface {
		OrderRepository() ports.OrderRepository
		LifecycleConfigRepository() ports.LifecycleConfigRepository
		ExpenseRepository() ports.ExpenseRepository
	}

	// ReaderFactory creates a Reader per query.
	ReaderFactory interface {
		Create() Reader
	}
)
