// Package services provides domain services that derive the financial view of
// an order from its lifecycle configuration and expense ledger.
//
// The package includes:
//   - MilestoneScheduler: resolves payment milestones against the order value
//   - ProfitCalculator: computes targets, actuals, profit, margin and savings
//   - SnapshotBuilder: combines both into the full snapshot of one order
//   - FoldDashboard: aggregates many snapshots by lifecycle status
//
// Every result is recomputed from its inputs on each call. Nothing here is
// cached or persisted, so a snapshot can never go stale after an expense or a
// configuration change.
package services
