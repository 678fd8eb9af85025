package service

import (
	"context"

	"github.com/jcmexdev/ecommerce-checkout/internal/checkout/core/domain/entity"
	"github.com/jcmexdev/ecommerce-checkout/internal/checkout/core/ports"
	"github.com/shopspring/decimal"
)

// --- AuthorizePaymentStep ---

// AuthorizePaymentStep authorizes the priced total with the payment gateway.
// Its compensation cancels the authorization, but only when the gateway
// actually handed back a transaction id; with no id there is nothing to undo.
type AuthorizePaymentStep struct {
	gateway    ports.PaymentGateway
	customerID string
	amount     decimal.Decimal
	auth       *entity.PaymentAuthorization
}

func NewAuthorizePaymentStep(gateway ports.PaymentGateway, customerID string, amount decimal.Decimal) *AuthorizePaymentStep {
	return &AuthorizePaymentStep{
		gateway:    gateway,
		customerID: customerID,
		amount:     amount,
	}
}

func (s *AuthorizePaymentStep) Name() string { return "Authorize_Payment_Step" }

func (s *AuthorizePaymentStep) Execute(ctx context.Context) error {
	auth, err := s.gateway.Authorize(ctx, s.customerID, s.amount)
	// A transport error, a missing result and a declined authorization all
	// collapse to the same terminal failure for this request.
	if err != nil || auth == nil || !auth.Authorized {
		return ErrPaymentNotAuthorized
	}
	s.auth = auth
	return nil
}

func (s *AuthorizePaymentStep) Compensate(ctx context.Context) error {
	if s.auth == nil || s.auth.TransactionID == "" {
		return nil
	}
	return s.gateway.Cancel(ctx, s.customerID, s.auth.TransactionID)
}

// TransactionID returns the id of the successful authorization, or "" if the
// step has not executed successfully.
func (s *AuthorizePaymentStep) TransactionID() string {
	if s.auth == nil {
		return ""
	}
	return s.auth.TransactionID
}

// --- CommitStockStep ---

// CommitStockStep commits the stock decrement for the cart's items. It is the
// last forward action; a committed decrement is never undone by this saga, so
// its compensation is a no-op.
type CommitStockStep struct {
	gateway    ports.InventoryGateway
	productIDs []string
	quantities []int
}

func NewCommitStockStep(gateway ports.InventoryGateway, productIDs []string, quantities []int) *CommitStockStep {
	return &CommitStockStep{
		gateway:    gateway,
		productIDs: productIDs,
		quantities: quantities,
	}
}

func (s *CommitStockStep) Name() string { return "Commit_Stock_Step" }

func (s *CommitStockStep) Execute(ctx context.Context) error {
	res, err := s.gateway.CommitDecrement(ctx, s.productIDs, s.quantities)
	if err != nil || res == nil || !res.Success {
		return ErrStockCommitFailed
	}
	return nil
}

func (s *CommitStockStep) Compensate(ctx context.Context) error {
	return nil
}
