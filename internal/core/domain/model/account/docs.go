// Package account contains the user entity and its verification lifecycle.
//
// A user is created unverified with a one-time code and an expiry. The code
// can be presented exactly once: a successful match before the expiry flips
// the verified flag (a one-way transition) and clears the code. Unverified
// users cannot add to a cart or place orders.
package account
