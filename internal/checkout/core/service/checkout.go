// Package service owns the checkout orchestration: load and validate the
// entities, check stock, price the cart, then run the payment/stock saga with
// its single compensating step.
package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/jcmexdev/ecommerce-checkout/internal/checkout/core/domain/entity"
	"github.com/jcmexdev/ecommerce-checkout/internal/checkout/core/ports"
	"github.com/jcmexdev/ecommerce-checkout/internal/checkout/core/pricing"
	"github.com/jcmexdev/ecommerce-checkout/internal/coordinator"
	"github.com/jcmexdev/ecommerce-checkout/internal/coordinator/sagalog"
)

// Checkout finalizes carts against two autonomous external systems with no
// shared transaction. Correctness rests on step ordering: payment is never
// authorized before stock is confirmed available, stock is never committed
// before payment is authorized, and an authorized payment is cancelled when
// the subsequent commit fails.
type Checkout struct {
	customers ports.CustomerReader
	carts     ports.CartReader
	inventory ports.InventoryGateway
	payments  ports.PaymentGateway
	sagaLog   sagalog.Repository // nil-safe: transitions are not persisted if nil
}

var _ ports.CheckoutService = (*Checkout)(nil)

func NewCheckout(
	customers ports.CustomerReader,
	carts ports.CartReader,
	inventory ports.InventoryGateway,
	payments ports.PaymentGateway,
	sagaLog sagalog.Repository,
) *Checkout {
	return &Checkout{
		customers: customers,
		carts:     carts,
		inventory: inventory,
		payments:  payments,
		sagaLog:   sagaLog,
	}
}

// FinalizeCheckout runs the end-to-end sequence for one cart. Every step is a
// hard gate: the first failure aborts the remaining steps and is terminal for
// this request; nothing is retried. On failure the outcome carries the
// failure reason and the error is returned for the transport layer to map.
func (s *Checkout) FinalizeCheckout(ctx context.Context, cartID, customerID string) (entity.CheckoutOutcome, error) {
	customer, err := s.customers.FindByID(ctx, customerID)
	if err != nil {
		return failure(err), err
	}

	cart, err := s.carts.FindByIDAndCustomer(ctx, cartID, customer)
	if err != nil && !errors.Is(err, ports.ErrCartNotFound) {
		return failure(err), err
	}
	if cart == nil || len(cart.Lines) == 0 {
		return failure(ErrCartEmptyOrNotFound), ErrCartEmptyOrNotFound
	}
	// Ownership is validated after emptiness; the order decides which
	// failure reason the caller sees.
	if cart.Customer == nil {
		return failure(ErrCartWithoutCustomer), ErrCartWithoutCustomer
	}

	productIDs, quantities := cart.ProductIDsAndQuantities()

	availability, err := s.inventory.CheckAvailability(ctx, productIDs, quantities)
	if err != nil || availability == nil || !availability.Available {
		if err != nil {
			slog.WarnContext(ctx, "stock availability check errored",
				"cart_id", cartID, "error", err)
		}
		return failure(ErrItemsOutOfStock), ErrItemsOutOfStock
	}

	total := pricing.TotalCost(cart)

	authorize := NewAuthorizePaymentStep(s.payments, customer.ID, total)
	commit := NewCommitStockStep(s.inventory, productIDs, quantities)

	// The cart ID doubles as the saga ID so log rows join with business data.
	saga := coordinator.NewOrchestrator(
		cartID,
		sagaPayload(cartID, customerID, total.String()),
		[]coordinator.Step{authorize, commit},
		s.sagaLog,
	)
	if err := saga.Start(ctx); err != nil {
		return failure(err), err
	}

	slog.InfoContext(ctx, "checkout completed",
		"cart_id", cartID, "customer_id", customerID,
		"total", total.String(), "transaction_id", authorize.TransactionID())

	return entity.CheckoutOutcome{
		Success:       true,
		TransactionID: authorize.TransactionID(),
		Message:       successMessage,
	}, nil
}

func failure(err error) entity.CheckoutOutcome {
	return entity.CheckoutOutcome{Success: false, Message: err.Error()}
}

func sagaPayload(cartID, customerID, total string) string {
	b, err := json.Marshal(map[string]string{
		"cart_id":     cartID,
		"customer_id": customerID,
		"total":       total,
	})
	if err != nil {
		return ""
	}
	return string(b)
}
