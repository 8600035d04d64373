package http

import (
	"time"

	"github.com/shopspring/decimal"
)

// Error is the wire shape for every non-2xx response.
type Error struct {
	Code             int               `json:"code"`
	Message          string            `json:"message"`
	UnavailableItems []UnavailableItem `json:"unavailable_items,omitempty"`
}

// UnavailableItem identifies a cart entry that blocked checkout.
// Name is empty when the menu item no longer exists.
type UnavailableItem struct {
	FoodID string `json:"food_id"`
	Name   string `json:"name,omitempty"`
}

// SignUpRequest is the request body for account registration.
// Either email or phone must be present. ReferralCode, when set,
// is the ID of an existing user.
type SignUpRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	ReferralCode string `json:"referral_code"`
}

// SignUpResponse returns the new account ID together with the one-time
// verification code.
type SignUpResponse struct {
	UserID           string `json:"user_id"`
	VerificationCode string `json:"verification_code"`
}

// VerifyRequest is the request body for account verification.
type VerifyRequest struct {
	UserID string `json:"user_id"`
	Code   string `json:"code"`
}

// Profile is the public view of an account. The verification code is
// never exposed here.
type Profile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateFoodRequest is the request body for adding a menu item.
type CreateFoodRequest struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
}

// CreateFoodResponse returns the ID of the created menu item.
type CreateFoodResponse struct {
	FoodID string `json:"food_id"`
}

// UpdateFoodRequest is the request body for a partial menu item update.
// Absent fields keep their current value.
type UpdateFoodRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Category    *string          `json:"category"`
	Available   *bool            `json:"available"`
}

// Food is the wire shape of a menu item.
type Food struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Available   bool            `json:"available"`
}

// AddCartItemRequest is the request body for adding a menu item to a cart.
// Quantity defaults to one when omitted.
type AddCartItemRequest struct {
	UserID   string `json:"user_id"`
	FoodID   string `json:"food_id"`
	Quantity *int   `json:"quantity"`
}

// AddCartItemResponse returns the ID of the affected cart line.
type AddCartItemResponse struct {
	LineID string `json:"line_id"`
}

// CartLine is one cart entry priced at the current menu price.
type CartLine struct {
	LineID    string          `json:"line_id"`
	FoodID    string          `json:"food_id"`
	FoodName  string          `json:"food_name"`
	Category  string          `json:"category"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Available bool            `json:"available"`
}

// Cart is the wire shape of a user's cart.
type Cart struct {
	UserID           string          `json:"user_id"`
	Lines            []CartLine      `json:"lines"`
	Total            decimal.Decimal `json:"total"`
	UnavailableCount int             `json:"unavailable_count"`
}

// PlaceOrderRequest is the request body for checkout.
type PlaceOrderRequest struct {
	UserID string `json:"user_id"`
}

// UpdateOrderStatusRequest is the request body for an order status change.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// CancelOrderRequest is the request body for an owner-initiated cancel.
type CancelOrderRequest struct {
	UserID string `json:"user_id"`
}

// OrderLine is one order entry at its frozen checkout price.
// FoodName is empty when the menu item has since been deleted.
type OrderLine struct {
	FoodID   string          `json:"food_id"`
	FoodName string          `json:"food_name,omitempty"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

// Order is the wire shape of a placed order. Listings omit Lines.
type Order struct {
	ID        string          `json:"id"`
	UserID    string          `json:"user_id"`
	Total     decimal.Decimal `json:"total"`
	Status    string          `json:"status"`
	Lines     []OrderLine     `json:"lines,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
}
