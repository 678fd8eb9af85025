// Package customer is the customer-lookup collaborator: an in-memory record
// store with an optional Redis cache-aside layer in front of it.
package customer

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/jcmexdev/ecommerce-checkout/internal/checkout/core/domain/entity"
	"github.com/jcmexdev/ecommerce-checkout/internal/checkout/core/ports"
	"github.com/jcmexdev/ecommerce-checkout/internal/pkg/cache"
)

const (
	cacheOperation = "customer"
	cacheTTL       = 15 * time.Minute
)

type Service struct {
	mu        sync.RWMutex
	customers map[string]entity.Customer
	cache     cache.Cache // nil-safe: lookups go straight to the store if nil
}

var _ ports.CustomerReader = (*Service)(nil)

func NewService(c cache.Cache) *Service {
	return &Service{
		customers: make(map[string]entity.Customer),
		cache:     c,
	}
}

// Add registers a customer record.
func (s *Service) Add(customer entity.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers[customer.ID] = customer
}

// FindByID resolves a customer, preferring the cache. Cache failures are
// logged and fall through to the store; a stale cache never blocks a lookup.
func (s *Service) FindByID(ctx context.Context, id string) (*entity.Customer, error) {
	if hit := s.fromCache(ctx, id); hit != nil {
		return hit, nil
	}

	s.mu.RLock()
	customer, exists := s.customers[id]
	s.mu.RUnlock()
	if !exists {
		return nil, ports.ErrCustomerNotFound
	}

	s.toCache(ctx, &customer)
	return &customer, nil
}

func (s *Service) fromCache(ctx context.Context, id string) *entity.Customer {
	if s.cache == nil {
		return nil
	}

	raw, err := s.cache.Get(ctx, s.cache.GenerateKey(cacheOperation, id))
	if err != nil {
		slog.WarnContext(ctx, "customer cache read failed", "customer_id", id, "error", err)
		return nil
	}
	if raw == "" {
		return nil
	}

	var customer entity.Customer
	if err := json.Unmarshal([]byte(raw), &customer); err != nil {
		slog.WarnContext(ctx, "customer cache entry corrupt", "customer_id", id, "error", err)
		return nil
	}
	return &customer
}

func (s *Service) toCache(ctx context.Context, customer *entity.Customer) {
	if s.cache == nil {
		return
	}

	raw, err := json.Marshal(customer)
	if err != nil {
		return
	}
	key := s.cache.GenerateKey(cacheOperation, customer.ID)
	if err := s.cache.Set(ctx, key, string(raw), cacheTTL); err != nil {
		slog.WarnContext(ctx, "customer cache write failed", "customer_id", customer.ID, "error", err)
	}
}
