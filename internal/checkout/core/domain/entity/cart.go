package entity

import "time"

// CartLine pairs a product with a positive quantity.
type CartLine struct {
	Product  *Product
	Quantity int
}

// Cart is the transient input of one checkout. The core only reads it;
// carts are created and mutated elsewhere.
type Cart struct {
	ID string
	// Customer may be nil. A cart without an owner is rejected during
	// checkout validation, it is not an invalid entity by itself.
	Customer  *Customer
	Lines     []CartLine
	CreatedAt time.Time
}

// ProductIDsAndQuantities derives the parallel sequences handed to the
// inventory collaborator, preserving line order.
func (c *Cart) ProductIDsAndQuantities() ([]string, []int) {
	ids := make([]string, len(c.Lines))
	qtys := make([]int, len(c.Lines))
	for i, line := range c.Lines {
		ids[i] = line.Product.ID
		qtys[i] = line.Quantity
	}
	return ids, qtys
}
