// Package ports defines the collaborator contracts the checkout core consumes.
// The orchestrator depends on these abstractions, never on a concrete
// transport or store, so adapters can be swapped freely (in-memory for tests,
// remote services in production).
package ports

import (
	"context"
	"errors"

	"github.com/jcmexdev/ecommerce-checkout/internal/checkout/core/domain/entity"
	"github.com/shopspring/decimal"
)

var (
	// ErrCustomerNotFound is returned by CustomerReader when no customer
	// exists for the given id.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrCartNotFound is returned by CartReader when no cart matches the
	// (cartID, customer) pair.
	ErrCartNotFound = errors.New("cart not found")
)

type CustomerReader interface {
	FindByID(ctx context.Context, id string) (*entity.Customer, error)
}

// CartReader looks up a cart by id scoped to its owning customer. A cart
// owned by a different customer is reported as not found.
type CartReader interface {
	FindByIDAndCustomer(ctx context.Context, cartID string, customer *entity.Customer) (*entity.Cart, error)
}

// InventoryGateway is the external stock system. Both calls take the parallel
// product-id and quantity sequences derived from the cart lines.
// A nil result with a nil error is possible and is treated by callers the
// same as a failed result.
type InventoryGateway interface {
	CheckAvailability(ctx context.Context, productIDs []string, quantities []int) (*entity.StockAvailability, error)
	CommitDecrement(ctx context.Context, productIDs []string, quantities []int) (*entity.StockCommit, error)
}

// PaymentGateway is the external payment processor. Cancel is
// fire-and-forget from the core's perspective; its failure is logged by the
// caller but never surfaced.
type PaymentGateway interface {
	Authorize(ctx context.Context, customerID string, amount decimal.Decimal) (*entity.PaymentAuthorization, error)
	Cancel(ctx context.Context, customerID, transactionID string) error
}

// CheckoutService is the inbound port exposed to the HTTP layer.
type CheckoutService interface {
	FinalizeCheckout(ctx context.Context, cartID, customerID string) (entity.CheckoutOutcome, error)
}
