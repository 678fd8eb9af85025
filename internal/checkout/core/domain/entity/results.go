package entity

// UnavailableItem identifies a product the inventory service could not cover.
type UnavailableItem struct {
	ProductID string
	Name      string
}

// StockAvailability is the inventory service's answer to an availability check.
type StockAvailability struct {
	Available   bool
	Unavailable []UnavailableItem
}

// PaymentAuthorization is the payment service's answer to an authorize call.
// TransactionID is set only when an authorization was actually created;
// cancellation is skipped when it is empty because there is nothing to cancel.
type PaymentAuthorization struct {
	Authorized    bool
	TransactionID string
}

// StockCommit is the inventory service's answer to a decrement commit.
type StockCommit struct {
	Success bool
}

// CheckoutOutcome is the terminal result of one checkout attempt.
type CheckoutOutcome struct {
	Success       bool
	TransactionID string
	Message       string
}
