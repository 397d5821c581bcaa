// main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-ecommerce-console/config"
	"go-ecommerce-console/console"
	"go-ecommerce-console/controllers"
	"go-ecommerce-console/middleware"
	"go-ecommerce-console/models"
	"go-ecommerce-console/routes"
	"go-ecommerce-console/shop"
	"go-ecommerce-console/utils"

	"github.com/gorilla/mux"
)

func main() {
	cfg, err := config.Load(os.Getenv("SHOP_CONFIG"))
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := utils.NewLogger("shop", cfg.App.LogLevel, cfg.App.LogFile)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("shop stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	items, err := cfg.CatalogItems()
	if err != nil {
		return err
	}
	if items == nil {
		items = shop.DefaultItems()
	}
	catalog, err := shop.NewCatalog(items)
	if err != nil {
		return fmt.Errorf("build catalog: %w", err)
	}

	ledger := shop.NewLedger(cfg.Shop.LedgerCapacity)

	sinks, cleanup := auditSinks(ctx, cfg, logger)
	defer cleanup()
	checkout := shop.NewCheckout(ledger, logger, sinks...)

	switch cfg.App.Mode {
	case config.ModeHTTP:
		return serveHTTP(ctx, cfg, logger, catalog, ledger, checkout)
	default:
		app := console.NewApp(console.Options{
			Catalog:  catalog,
			Cart:     models.NewCart(cfg.Shop.CartCapacity),
			Checkout: checkout,
			Ledger:   ledger,
			In:       os.Stdin,
			Out:      os.Stdout,
			Currency: cfg.Shop.CurrencySymbol,
		})
		if err := app.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	}
}

// auditSinks builds the file audit log plus the optional Mongo archive and
// e-mail notifier. Optional sinks that fail to start are skipped with a
// warning.
func auditSinks(ctx context.Context, cfg config.Config, logger *slog.Logger) ([]shop.AuditSink, func()) {
	sinks := []shop.AuditSink{shop.NewFileAuditLog(cfg.Shop.AuditLog)}
	cleanup := func() {}

	if cfg.Mongo.URI != "" {
		client, err := utils.ConnectDB(ctx, cfg.Mongo.URI)
		if err != nil {
			logger.Warn("order archive disabled", "error", err)
		} else {
			sinks = append(sinks, utils.NewOrderArchive(client, cfg.Mongo.Database, cfg.Mongo.Collection))
			cleanup = func() {
				if err := client.Disconnect(context.Background()); err != nil {
					logger.Warn("disconnect mongo", "error", err)
				}
			}
		}
	}

	if cfg.Email.APIToken != "" {
		es, err := utils.NewEmailService(cfg.Email.Provider, cfg.Email.APIToken, cfg.Email.Sender, cfg.Email.NotifyTo, cfg.Shop.CurrencySymbol)
		if err != nil {
			logger.Warn("order notifications disabled", "error", err)
		} else {
			sinks = append(sinks, es)
		}
	}
	return sinks, cleanup
}

func serveHTTP(ctx context.Context, cfg config.Config, logger *slog.Logger, catalog *shop.Catalog, ledger *shop.Ledger, checkout *shop.Checkout) error {
	utils.JwtKey = []byte(cfg.HTTP.JWTSecret)
	if cfg.HTTP.OperatorPasswordHash == "" {
		logger.Warn("no operator password hash configured, order history endpoints are unreachable")
	}

	sessions := shop.NewSessions(cfg.Shop.CartCapacity)

	// Set up the router
	router := mux.NewRouter()
	routes.RegisterRoutes(router,
		controllers.NewSessionController(sessions, cfg.HTTP.TokenTTL, cfg.HTTP.OperatorUser, cfg.HTTP.OperatorPasswordHash),
		controllers.NewProductController(catalog),
		controllers.NewCartController(sessions, catalog),
		controllers.NewOrderController(sessions, checkout, ledger, logger.With("component", "http")),
	)
	router.Use(middleware.Logging(logger.With("component", "http")))
	router.Use(middleware.MetricsMiddleware)

	srv := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		fmt.Printf("Server is running on %s\n", cfg.HTTP.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
