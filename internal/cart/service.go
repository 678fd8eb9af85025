// Package cart is the cart-lookup collaborator backed by an in-memory store.
package cart

import (
	"context"
	"sync"

	"github.com/jcmexdev/ecommerce-checkout/internal/checkout/core/domain/entity"
	"github.com/jcmexdev/ecommerce-checkout/internal/checkout/core/ports"
)

type Service struct {
	mu    sync.RWMutex
	carts map[string]*entity.Cart
}

var _ ports.CartReader = (*Service)(nil)

func NewService() *Service {
	return &Service{carts: make(map[string]*entity.Cart)}
}

// Add registers a cart, replacing any previous cart with the same id.
func (s *Service) Add(c *entity.Cart) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[c.ID] = c
}

// FindByIDAndCustomer returns the cart only if it belongs to the customer.
// A cart without an owner is returned as-is: detecting that condition is the
// orchestrator's validation, not the lookup's.
func (s *Service) FindByIDAndCustomer(ctx context.Context, cartID string, customer *entity.Customer) (*entity.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, exists := s.carts[cartID]
	if !exists {
		return nil, ports.ErrCartNotFound
	}
	if c.Customer != nil && customer != nil && c.Customer.ID != customer.ID {
		return nil, ports.ErrCartNotFound
	}
	return c, nil
}
