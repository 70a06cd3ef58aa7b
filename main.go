package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/example/storefront/modules/api"
	"github.com/example/storefront/modules/cart"
	"github.com/example/storefront/modules/catalog"
	"github.com/example/storefront/modules/checkout"
	"github.com/example/storefront/modules/notifier"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
)

const shutdownTimeout = 30 * time.Second

func main() {
	log.Println("=== Storefront ===")

	// Create mono application
	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// Register modules; dependents are wired via their declared
	// dependencies.
	app.Register(cart.NewModule())
	app.Register(catalog.NewModule())
	app.Register(checkout.NewModule())
	app.Register(notifier.NewModule())
	app.Register(api.NewModule())

	// Start application
	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	printStartupInfo()

	// Graceful shutdown
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

func printStartupInfo() {
	log.Println("")
	log.Println("Application started successfully!")
	log.Println("")
	log.Println("HTTP endpoints (default :3000):")
	log.Println("  GET    /api/v1/products           - Product listing")
	log.Println("  GET    /api/v1/products/top       - Top-rated products")
	log.Println("  GET    /api/v1/products/:id       - Product detail")
	log.Println("  GET    /api/v1/cart               - Cart with display totals")
	log.Println("  POST   /api/v1/cart/items         - Add product to cart")
	log.Println("  PUT    /api/v1/cart/items/:id     - Set line item quantity")
	log.Println("  DELETE /api/v1/cart/items/:id     - Remove line item")
	log.Println("  DELETE /api/v1/cart               - Clear cart")
	log.Println("  POST   /api/v1/cart/toggle        - Toggle cart sidebar")
	log.Println("  POST   /api/v1/checkout           - Start simulated checkout")
	log.Println("")
	log.Println("NATS services are also available, e.g.:")
	log.Println("  nats request services.cart.get '{}'")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}
