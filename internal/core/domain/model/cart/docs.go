// Package cart contains the cart aggregate: a user's mutable pre-order
// basket of (food, quantity) lines.
//
// The cart stores references and quantities only. Prices, availability,
// and subtotals are never persisted with the cart; they are computed at
// read time against the live catalog, so a cart always reflects current
// catalog state. Adding a food already present merges into the existing
// line instead of inserting a duplicate row.
package cart
