// Package pricing computes the total cost of a cart: product subtotal with
// volume discount plus weight-tiered shipping with customer-tier exemptions.
// Pure computation, no collaborators, no state.
package pricing

import (
	"github.com/jcmexdev/ecommerce-checkout/internal/checkout/core/domain/entity"
	"github.com/shopspring/decimal"
)

var (
	discountUpperThreshold = decimal.NewFromInt(1000)
	discountLowerThreshold = decimal.NewFromInt(500)
	discountUpperFactor    = decimal.NewFromFloat(0.80)
	discountLowerFactor    = decimal.NewFromFloat(0.90)

	rateHeavy  = decimal.NewFromInt(7)
	rateMedium = decimal.NewFromInt(4)
	rateLight  = decimal.NewFromInt(2)

	silverFactor = decimal.NewFromFloat(0.5)
)

// TotalCost prices the cart: exact decimal subtotal, volume discount and
// shipping. The caller guarantees the cart has lines and an owning customer.
func TotalCost(cart *entity.Cart) decimal.Decimal {
	productTotal := decimal.Zero
	weightTotal := 0

	for _, line := range cart.Lines {
		qty := decimal.NewFromInt(int64(line.Quantity))
		productTotal = productTotal.Add(line.Product.Price.Mul(qty))
		weightTotal += line.Product.Weight * line.Quantity
	}

	// Highest tier wins, never cumulative. Both thresholds are inclusive.
	switch {
	case productTotal.GreaterThanOrEqual(discountUpperThreshold):
		productTotal = productTotal.Mul(discountUpperFactor)
	case productTotal.GreaterThanOrEqual(discountLowerThreshold):
		productTotal = productTotal.Mul(discountLowerFactor)
	}

	return productTotal.Add(ShippingCost(weightTotal, cart.Customer.Tier))
}

// ShippingCost computes the shipping charge for a total weight and customer
// tier. The 4-per-unit tier is inclusive at weight 10 and 50; weights of 5
// and below ship free regardless of tier.
func ShippingCost(weightTotal int, tier entity.CustomerTier) decimal.Decimal {
	weight := decimal.NewFromInt(int64(weightTotal))

	base := decimal.Zero
	switch {
	case weightTotal > 50:
		base = rateHeavy.Mul(weight)
	case weightTotal >= 10:
		base = rateMedium.Mul(weight)
	case weightTotal > 5:
		base = rateLight.Mul(weight)
	}

	switch tier {
	case entity.TierGold:
		return decimal.Zero
	case entity.TierSilver:
		return base.Mul(silverFactor)
	default:
		return base
	}
}
