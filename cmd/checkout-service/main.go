package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/jcmexdev/ecommerce-checkout/internal/cart"
	"github.com/jcmexdev/ecommerce-checkout/internal/checkout/core/domain/entity"
	"github.com/jcmexdev/ecommerce-checkout/internal/checkout/core/service"
	"github.com/jcmexdev/ecommerce-checkout/internal/checkout/infra/httpx"
	"github.com/jcmexdev/ecommerce-checkout/internal/coordinator/sagalog/sqlite"
	"github.com/jcmexdev/ecommerce-checkout/internal/customer"
	"github.com/jcmexdev/ecommerce-checkout/internal/inventory"
	"github.com/jcmexdev/ecommerce-checkout/internal/payment"
	"github.com/jcmexdev/ecommerce-checkout/internal/pkg/cache"
	"github.com/jcmexdev/ecommerce-checkout/internal/pkg/telemetry"
	"github.com/shopspring/decimal"
)

func main() {
	telemetry.InitLogger()
	ctx := context.Background()

	shutdown, err := telemetry.SetupTracer(ctx, "checkout-service")
	if err != nil {
		log.Fatalf("could not initialise tracing: %v", err)
	}
	defer func() { _ = shutdown(context.Background()) }()

	dbPath := getEnv("SAGA_DB_PATH", "./data/checkout.db")
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		log.Fatalf("could not create saga log directory: %v", err)
	}
	sagaRepo, err := sqlite.Open(dbPath)
	if err != nil {
		log.Fatalf("could not open saga log store: %v", err)
	}
	defer sagaRepo.Close()

	var customerCache cache.Cache
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		customerCache = cache.NewRedisCache(addr, "checkout-service")
		slog.Info("customer cache enabled", "redis_addr", addr)
	}

	customers := customer.NewService(customerCache)
	carts := cart.NewService()
	stock := inventory.NewStore()
	payments := payment.NewProcessor(paymentDeclineLimit())
	seed(customers, carts, stock)

	checkout := service.NewCheckout(customers, carts, stock, payments, sagaRepo)

	handler := httpx.NewHandler(checkout, sagaRepo)
	router := httpx.NewRouter(handler)

	httpAddr := getEnv("HTTP_ADDR", ":8080")
	slog.Info("checkout service running", "addr", httpAddr)
	if err := http.ListenAndServe(httpAddr, router); err != nil {
		log.Fatalf("http server failed: %v", err)
	}
}

// seed loads a small fixture set so the service is usable out of the box.
func seed(customers *customer.Service, carts *cart.Service, stock *inventory.Store) {
	gold := entity.Customer{ID: "cust_1", Name: "Ana Gold", Address: "Rua A 1", Tier: entity.TierGold}
	silver := entity.Customer{ID: "cust_2", Name: "Bruno Silver", Address: "Rua B 2", Tier: entity.TierSilver}
	standard := entity.Customer{ID: "cust_3", Name: "Carla Standard", Address: "Rua C 3", Tier: entity.TierStandard}
	customers.Add(gold)
	customers.Add(silver)
	customers.Add(standard)

	keyboard := &entity.Product{ID: "prod_1", Name: "Keyboard", Price: decimal.NewFromInt(500), Weight: 10, Category: "ELECTRONICS"}
	monitor := &entity.Product{ID: "prod_2", Name: "Monitor", Price: decimal.NewFromInt(600), Weight: 20, Category: "ELECTRONICS"}
	book := &entity.Product{ID: "prod_3", Name: "Novel", Price: decimal.NewFromInt(100), Weight: 5, Category: "BOOKS"}

	stock.Add(keyboard.ID, keyboard.Name, 15)
	stock.Add(monitor.ID, monitor.Name, 10)
	stock.Add(book.ID, book.Name, 0)

	carts.Add(&entity.Cart{
		ID:       "cart_1",
		Customer: &standard,
		Lines: []entity.CartLine{
			{Product: keyboard, Quantity: 1},
			{Product: monitor, Quantity: 1},
		},
	})
	carts.Add(&entity.Cart{
		ID:       "cart_2",
		Customer: &gold,
		Lines: []entity.CartLine{
			{Product: book, Quantity: 1},
		},
	})
}

func paymentDeclineLimit() decimal.Decimal {
	raw := os.Getenv("PAYMENT_DECLINE_LIMIT")
	if raw == "" {
		return decimal.Zero
	}
	limit, err := decimal.NewFromString(raw)
	if err != nil {
		log.Fatalf("invalid PAYMENT_DECLINE_LIMIT %q: %v", raw, err)
	}
	return limit
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
