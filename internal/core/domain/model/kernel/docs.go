// Package kernel provides the shared primitives of the order lifecycle domain.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Currency: An ISO-4217 currency code attached to order values
//   - Amount helpers: validation of non-negative monetary amounts
//
// Monetary values are github.com/shopspring/decimal values everywhere in the domain;
// floats are never used for money.
package kernel
