// Package food contains the catalog item entity. The catalog is mutable at
// any time by staff, so everything downstream (cart reads, order placement)
// re-reads current price and availability rather than trusting cached data.
package food
