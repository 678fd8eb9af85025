package entity

import "github.com/shopspring/decimal"

type Product struct {
	ID          string
	Name        string
	Description string
	// Price is the unit price in currency units. Exact decimal so that
	// discount arithmetic never accumulates binary float drift.
	Price decimal.Decimal
	// Weight is the unit weight in integer shipping units.
	Weight int
	// Category tags the product for catalog purposes; pricing ignores it.
	Category string
}
