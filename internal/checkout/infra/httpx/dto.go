package httpx

type CheckoutRequest struct {
	CartID     string `json:"cart_id"`
	CustomerID string `json:"customer_id"`
}

type CheckoutResponse struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transaction_id,omitempty"`
	Message       string `json:"message"`
}

type CheckoutLogResponse struct {
	SagaID        string `json:"saga_id"`
	Status        string `json:"status"`
	CurrentStep   string `json:"current_step,omitempty"`
	ErrorMessages string `json:"error_messages"`
	TraceID       string `json:"trace_id,omitempty"`
	UpdatedAt     string `json:"updated_at"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
