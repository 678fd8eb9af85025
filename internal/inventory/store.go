// Package inventory is an in-process stock system implementing
// ports.InventoryGateway. The availability check and the decrement commit are
// each atomic under one mutex, which is the serialization contract the
// checkout orchestrator relies on.
package inventory

import (
	"context"
	"log/slog"
	"sync"

	"github.com/jcmexdev/ecommerce-checkout/internal/checkout/core/domain/entity"
	"github.com/jcmexdev/ecommerce-checkout/internal/checkout/core/ports"
)

type stockItem struct {
	name     string
	quantity int
}

type Store struct {
	mu    sync.Mutex
	stock map[string]stockItem
}

var _ ports.InventoryGateway = (*Store)(nil)

func NewStore() *Store {
	return &Store{stock: make(map[string]stockItem)}
}

// Add registers a product with an initial quantity, replacing any previous
// entry for the same id.
func (s *Store) Add(productID, name string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stock[productID] = stockItem{name: name, quantity: quantity}
}

// Quantity reports the current stock level of a product.
func (s *Store) Quantity(productID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stock[productID].quantity
}

// CheckAvailability verifies every requested line can be covered. Unknown
// products and short stock both land in the unavailable list; the overall
// flag is true only when that list is empty.
func (s *Store) CheckAvailability(ctx context.Context, productIDs []string, quantities []int) (*entity.StockAvailability, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var unavailable []entity.UnavailableItem
	for i, id := range productIDs {
		item, exists := s.stock[id]
		if !exists || item.quantity < quantities[i] {
			slog.InfoContext(ctx, "product unavailable",
				"product_id", id, "available", item.quantity, "requested", quantities[i])
			unavailable = append(unavailable, entity.UnavailableItem{ProductID: id, Name: item.name})
		}
	}

	return &entity.StockAvailability{
		Available:   len(unavailable) == 0,
		Unavailable: unavailable,
	}, nil
}

// CommitDecrement decrements stock for every line, all-or-nothing. A line
// that can no longer be covered fails the whole commit without touching any
// quantity.
func (s *Store) CommitDecrement(ctx context.Context, productIDs []string, quantities []int) (*entity.StockCommit, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, id := range productIDs {
		item, exists := s.stock[id]
		if !exists || item.quantity < quantities[i] {
			slog.WarnContext(ctx, "stock commit rejected",
				"product_id", id, "available", item.quantity, "requested", quantities[i])
			return &entity.StockCommit{Success: false}, nil
		}
	}

	for i, id := range productIDs {
		item := s.stock[id]
		item.quantity -= quantities[i]
		s.stock[id] = item
	}

	return &entity.StockCommit{Success: true}, nil
}
