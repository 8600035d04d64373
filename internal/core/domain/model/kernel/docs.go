// Package kernel provides core domain primitives shared by every aggregate
// in the food-ordering system.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//   - Price: a positive monetary amount backed by arbitrary-precision decimals
//
// These primitives enforce domain invariants at construction time and are
// immutable, making them safe for concurrent use.
package kernel
