package service

import (
	"context"

	"github.com/jcmexdev/ecommerce-checkout/internal/checkout/core/domain/entity"
	"github.com/shopspring/decimal"
)

// MockCustomerReader implements ports.CustomerReader for testing
type MockCustomerReader struct {
	Customer *entity.Customer
	Err      error
}

func (m *MockCustomerReader) FindByID(_ context.Context, _ string) (*entity.Customer, error) {
	return m.Customer, m.Err
}

// MockCartReader implements ports.CartReader for testing
type MockCartReader struct {
	Cart *entity.Cart
	Err  error
}

func (m *MockCartReader) FindByIDAndCustomer(_ context.Context, _ string, _ *entity.Customer) (*entity.Cart, error) {
	return m.Cart, m.Err
}

// MockInventoryGateway implements ports.InventoryGateway and records calls
type MockInventoryGateway struct {
	Availability    *entity.StockAvailability
	AvailabilityErr error
	Commit          *entity.StockCommit
	CommitErr       error

	CheckCalls   int
	CommitCalls  int
	CommittedIDs []string
	CommittedQty []int
}

func (m *MockInventoryGateway) CheckAvailability(_ context.Context, _ []string, _ []int) (*entity.StockAvailability, error) {
	m.CheckCalls++
	return m.Availability, m.AvailabilityErr
}

func (m *MockInventoryGateway) CommitDecrement(_ context.Context, ids []string, qty []int) (*entity.StockCommit, error) {
	m.CommitCalls++
	m.CommittedIDs = ids
	m.CommittedQty = qty
	return m.Commit, m.CommitErr
}

// MockPaymentGateway implements ports.PaymentGateway and records calls
type MockPaymentGateway struct {
	Auth      *entity.PaymentAuthorization
	AuthErr   error
	CancelErr error

	AuthorizeCalls   int
	AuthorizedAmount decimal.Decimal
	CancelCalls      int
	CancelledTxID    string
}

func (m *MockPaymentGateway) Authorize(_ context.Context, _ string, amount decimal.Decimal) (*entity.PaymentAuthorization, error) {
	m.AuthorizeCalls++
	m.AuthorizedAmount = amount
	return m.Auth, m.AuthErr
}

func (m *MockPaymentGateway) Cancel(_ context.Context, _, transactionID string) error {
	m.CancelCalls++
	m.CancelledTxID = transactionID
	return m.CancelErr
}
