package customer

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/jcmexdev/ecommerce-checkout/internal/checkout/core/domain/entity"
	"github.com/jcmexdev/ecommerce-checkout/internal/checkout/core/ports"
	"github.com/jcmexdev/ecommerce-checkout/internal/pkg/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindByID_WithoutCache(t *testing.T) {
	svc := NewService(nil)
	svc.Add(entity.Customer{ID: "cust-1", Name: "Ana", Tier: entity.TierGold})

	got, err := svc.FindByID(context.Background(), "cust-1")

	require.NoError(t, err)
	assert.Equal(t, "Ana", got.Name)
	assert.Equal(t, entity.TierGold, got.Tier)
}

func TestFindByID_NotFound(t *testing.T) {
	svc := NewService(nil)

	got, err := svc.FindByID(context.Background(), "missing")

	assert.ErrorIs(t, err, ports.ErrCustomerNotFound)
	assert.Nil(t, got)
}

func TestFindByID_PopulatesCache(t *testing.T) {
	mr := miniredis.RunT(t)
	c := cache.NewRedisCache(mr.Addr(), "checkout-service")
	svc := NewService(c)
	svc.Add(entity.Customer{ID: "cust-1", Name: "Ana", Tier: entity.TierSilver})

	_, err := svc.FindByID(context.Background(), "cust-1")
	require.NoError(t, err)

	raw, err := mr.Get("checkout-service:customer:cust-1")
	require.NoError(t, err)
	var cached entity.Customer
	require.NoError(t, json.Unmarshal([]byte(raw), &cached))
	assert.Equal(t, entity.TierSilver, cached.Tier)
}

func TestFindByID_ServesFromCache(t *testing.T) {
	mr := miniredis.RunT(t)
	c := cache.NewRedisCache(mr.Addr(), "checkout-service")
	svc := NewService(c)

	// Only the cache knows this customer; a hit proves the store was skipped.
	cached, _ := json.Marshal(entity.Customer{ID: "cust-2", Name: "Bruno", Tier: entity.TierStandard})
	require.NoError(t, mr.Set("checkout-service:customer:cust-2", string(cached)))

	got, err := svc.FindByID(context.Background(), "cust-2")

	require.NoError(t, err)
	assert.Equal(t, "Bruno", got.Name)
}

func TestFindByID_CorruptCacheEntryFallsThrough(t *testing.T) {
	mr := miniredis.RunT(t)
	c := cache.NewRedisCache(mr.Addr(), "checkout-service")
	svc := NewService(c)
	svc.Add(entity.Customer{ID: "cust-3", Name: "Carla"})
	require.NoError(t, mr.Set("checkout-service:customer:cust-3", "{not json"))

	got, err := svc.FindByID(context.Background(), "cust-3")

	require.NoError(t, err)
	assert.Equal(t, "Carla", got.Name)
}
