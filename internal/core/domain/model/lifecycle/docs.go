// Package lifecycle models the fulfillment lifecycle configuration of a sales order.
//
// The package includes:
//   - AmountSpec: "X% of order value" or "a fixed amount", resolved on demand
//   - Status: the seven fulfillment stages and the transition table between them
//   - Milestone: a scheduled partial payment with a paid/pending flag
//   - Config: the per-order aggregate holding budgets, milestones and status
//
// Config is an immutable value. Every edit (Configure, Transition, milestone
// edits) returns a new Config and leaves the receiver untouched, so callers
// persist the returned value explicitly. Computed figures (targets, actuals,
// profit) are never stored here; they are derived on read by the domain services.
package lifecycle
