package httpx

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jcmexdev/ecommerce-checkout/internal/checkout/core/ports"
	"github.com/jcmexdev/ecommerce-checkout/internal/checkout/core/service"
	"github.com/jcmexdev/ecommerce-checkout/internal/coordinator/sagalog"
)

// Handler exposes the checkout orchestration over HTTP.
type Handler struct {
	checkout ports.CheckoutService
	sagaLog  sagalog.Reader // nil-safe: the log endpoint 404s if nil
}

// NewHandler wires the handler with the checkout service and the saga log
// reader. logReader may be nil when no log store is configured.
func NewHandler(checkout ports.CheckoutService, logReader sagalog.Reader) *Handler {
	return &Handler{
		checkout: checkout,
		sagaLog:  logReader,
	}
}

// FinalizeCheckout runs one checkout attempt for the (cart, customer) pair.
func (h *Handler) FinalizeCheckout(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", err.Error())
		return
	}

	if req.CartID == "" || req.CustomerID == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "cart_id and customer_id are required")
		return
	}

	slog.InfoContext(r.Context(), "finalizing checkout",
		"cart_id", req.CartID, "customer_id", req.CustomerID)

	outcome, err := h.checkout.FinalizeCheckout(r.Context(), req.CartID, req.CustomerID)
	if err != nil {
		writeJSON(w, statusForError(err), CheckoutResponse{
			Success: false,
			Message: outcome.Message,
		})
		return
	}

	writeJSON(w, http.StatusOK, CheckoutResponse{
		Success:       outcome.Success,
		TransactionID: outcome.TransactionID,
		Message:       outcome.Message,
	})
}

// GetCheckoutLog returns the latest saga log entry for a cart's checkout.
func (h *Handler) GetCheckoutLog(w http.ResponseWriter, r *http.Request) {
	cartID := chi.URLParam(r, "cartID")
	if cartID == "" {
		writeError(w, http.StatusBadRequest, "cart_id_required", "")
		return
	}

	if h.sagaLog == nil {
		writeError(w, http.StatusNotFound, "checkout_log_disabled", "no saga log store configured")
		return
	}

	entry, err := h.sagaLog.GetLatest(r.Context(), cartID)
	if err != nil {
		writeError(w, http.StatusNotFound, "checkout_log_not_found", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, CheckoutLogResponse{
		SagaID:        entry.SagaID,
		Status:        string(entry.Status),
		CurrentStep:   entry.CurrentStep,
		ErrorMessages: entry.ErrorMessages,
		TraceID:       entry.TraceID,
		UpdatedAt:     entry.UpdatedAt.Format(time.RFC3339Nano),
	})
}

// statusForError maps checkout failures to HTTP statuses. Lookup failures are
// 404; every invalid-state gate is a conflict with the current system state.
func statusForError(err error) int {
	switch {
	case errors.Is(err, ports.ErrCustomerNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrCartEmptyOrNotFound),
		errors.Is(err, service.ErrCartWithoutCustomer),
		errors.Is(err, service.ErrItemsOutOfStock),
		errors.Is(err, service.ErrPaymentNotAuthorized),
		errors.Is(err, service.ErrStockCommitFailed):
		return http.StatusConflict
	default:
		return http.StatusBadGateway
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorResponse{
		Error:   code,
		Message: msg,
	})
}
