// Package order holds the read model of a sales order as seen by the
// lifecycle engine.
//
// Orders are owned by the sales module. The lifecycle service registers a
// copy of the fields it needs (number, customer, order value, currency) and
// never changes them afterwards. The order value is the base against which
// percentage budgets and payment milestones are resolved.
//
// Key business rules:
//   - Orders must have a valid unique identifier and a non-empty order number
//   - The order value (total amount) is a non-negative decimal
//   - The currency is an ISO-4217 code and defaults to INR
package order
