// Package expense implements the expense ledger of an order.
//
// An Expense is a dated, categorised spend recorded against one order.
// Expenses are append-only: once recorded they are never edited or removed
// by this service.
//
// Categories are grouped into two buckets, purchase and execution, that are
// compared against the purchase and execution budgets of the order. The
// grouping is an explicit, versioned BucketMapping so that a change in the
// accounting rule never silently re-labels historic spend.
package expense
