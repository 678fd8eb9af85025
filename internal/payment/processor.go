// Package payment is an in-process payment processor implementing
// ports.PaymentGateway. Authorizations are held in memory keyed by
// transaction id until captured or cancelled.
package payment

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/jcmexdev/ecommerce-checkout/internal/checkout/core/domain/entity"
	"github.com/jcmexdev/ecommerce-checkout/internal/checkout/core/ports"
	"github.com/shopspring/decimal"
)

type authorization struct {
	customerID string
	amount     decimal.Decimal
}

type Processor struct {
	mu sync.Mutex
	// declineAbove rejects authorizations above this amount; zero means no
	// limit. Useful for exercising the declined path locally.
	declineAbove   decimal.Decimal
	authorizations map[string]authorization
}

var _ ports.PaymentGateway = (*Processor)(nil)

func NewProcessor(declineAbove decimal.Decimal) *Processor {
	return &Processor{
		declineAbove:   declineAbove,
		authorizations: make(map[string]authorization),
	}
}

// Authorize creates a payment authorization for the amount. A declined
// authorization carries no transaction id, so there is nothing to cancel.
func (p *Processor) Authorize(ctx context.Context, customerID string, amount decimal.Decimal) (*entity.PaymentAuthorization, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.declineAbove.IsPositive() && amount.GreaterThan(p.declineAbove) {
		slog.InfoContext(ctx, "payment declined",
			"customer_id", customerID, "amount", amount.String(), "limit", p.declineAbove.String())
		return &entity.PaymentAuthorization{Authorized: false}, nil
	}

	txID := uuid.NewString()
	p.authorizations[txID] = authorization{customerID: customerID, amount: amount}
	slog.InfoContext(ctx, "payment authorized",
		"customer_id", customerID, "amount", amount.String(), "transaction_id", txID)

	return &entity.PaymentAuthorization{Authorized: true, TransactionID: txID}, nil
}

// Cancel voids a previously created authorization. Cancelling an unknown
// transaction is not an error: the compensation caller only cares that no
// authorization remains outstanding afterwards.
func (p *Processor) Cancel(ctx context.Context, customerID, transactionID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, exists := p.authorizations[transactionID]; !exists {
		slog.WarnContext(ctx, "no authorization to cancel",
			"customer_id", customerID, "transaction_id", transactionID)
		return nil
	}

	delete(p.authorizations, transactionID)
	slog.InfoContext(ctx, "payment cancelled",
		"customer_id", customerID, "transaction_id", transactionID)
	return nil
}

// Outstanding reports whether a transaction id still has an authorization on
// file.
func (p *Processor) Outstanding(transactionID string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, exists := p.authorizations[transactionID]
	return exists
}
