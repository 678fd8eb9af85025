package service

import "errors"

// Checkout failure reasons. The texts are externally observable (they reach
// API clients verbatim) and must stay stable.
var (
	ErrCartEmptyOrNotFound  = errors.New("cart empty or not found")
	ErrCartWithoutCustomer  = errors.New("cart has no valid associated customer")
	ErrItemsOutOfStock      = errors.New("items out of stock")
	ErrPaymentNotAuthorized = errors.New("payment not authorized")
	ErrStockCommitFailed    = errors.New("error committing stock")
)

// successMessage is the message carried by a successful CheckoutOutcome.
const successMessage = "checkout completed successfully"
