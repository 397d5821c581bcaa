package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"go-ecommerce-console/models"
	"go-ecommerce-console/shop"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/shopspring/decimal"
)

const (
	ModeConsole = "console"
	ModeHTTP    = "http"

	envPrefix = "SHOP_"
)

// ItemSeed is one catalog entry as written in the config file.
type ItemSeed struct {
	ID    string `koanf:"id"`
	Name  string `koanf:"name"`
	Price string `koanf:"price"`
}

type Config struct {
	App struct {
		Mode     string `koanf:"mode"`
		LogLevel string `koanf:"log_level"`
		LogFile  string `koanf:"log_file"`
	} `koanf:"app"`

	Shop struct {
		CartCapacity   int    `koanf:"cart_capacity"`
		LedgerCapacity int    `koanf:"ledger_capacity"`
		AuditLog       string `koanf:"audit_log"`
		CurrencySymbol string `koanf:"currency_symbol"`
	} `koanf:"shop"`

	Catalog []ItemSeed `koanf:"catalog"`

	HTTP struct {
		Addr                 string        `koanf:"addr"`
		JWTSecret            string        `koanf:"jwt_secret"`
		TokenTTL             time.Duration `koanf:"token_ttl"`
		OperatorUser         string        `koanf:"operator_user"`
		OperatorPasswordHash string        `koanf:"operator_password_hash"`
	} `koanf:"http"`

	Mongo struct {
		URI        string `koanf:"uri"`
		Database   string `koanf:"database"`
		Collection string `koanf:"collection"`
	} `koanf:"mongo"`

	Email struct {
		Provider string `koanf:"provider"`
		APIToken string `koanf:"api_token"`
		Sender   string `koanf:"sender"`
		NotifyTo string `koanf:"notify_to"`
	} `koanf:"email"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"app.mode":             ModeConsole,
		"app.log_level":        "warn",
		"shop.cart_capacity":   models.DefaultCartCapacity,
		"shop.ledger_capacity": shop.DefaultLedgerCapacity,
		"shop.audit_log":       "orders.log",
		"shop.currency_symbol": "₱",
		"http.addr":            ":8000",
		"http.token_ttl":       "24h",
		"http.operator_user":   "admin",
		"mongo.database":       "ecommerce",
		"mongo.collection":     "order_audit",
		"email.provider":       "postmark",
	}
}

// Load reads configuration from defaults, an optional YAML file at path and
// SHOP_* environment variables, in that order. A .env file in the working
// directory is merged into the environment first; a missing one is fine. Nested keys use a double
// underscore, e.g. SHOP_SHOP__AUDIT_LOG or SHOP_HTTP__JWT_SECRET.
func Load(path string) (Config, error) {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	k := koanf.New(".")
	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return Config{}, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("load %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(s, envPrefix)
		s = strings.ReplaceAll(s, "__", ".")
		return strings.ToLower(s)
	}), nil); err != nil {
		return Config{}, fmt.Errorf("env overlay: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.App.Mode {
	case ModeConsole, ModeHTTP:
	default:
		return fmt.Errorf("app.mode must be %q or %q, got %q", ModeConsole, ModeHTTP, c.App.Mode)
	}
	if c.Shop.CartCapacity <= 0 {
		return fmt.Errorf("shop.cart_capacity must be positive")
	}
	if c.Shop.LedgerCapacity <= 0 {
		return fmt.Errorf("shop.ledger_capacity must be positive")
	}
	if c.Shop.AuditLog == "" {
		return fmt.Errorf("shop.audit_log required")
	}
	if c.App.Mode == ModeHTTP && c.HTTP.JWTSecret == "" {
		return fmt.Errorf("http.jwt_secret required in http mode")
	}
	if _, err := c.CatalogItems(); err != nil {
		return err
	}
	return nil
}

// CatalogItems converts the configured seeds. It returns nil when the
// catalog section is empty so callers can fall back to the built-in seed.
func (c Config) CatalogItems() ([]models.Item, error) {
	if len(c.Catalog) == 0 {
		return nil, nil
	}
	items := make([]models.Item, 0, len(c.Catalog))
	for i, seed := range c.Catalog {
		price, err := decimal.NewFromString(seed.Price)
		if err != nil {
			return nil, fmt.Errorf("catalog[%d].price: %w", i, err)
		}
		item, err := models.NewItem(seed.ID, seed.Name, price)
		if err != nil {
			return nil, fmt.Errorf("catalog[%d]: %w", i, err)
		}
		items = append(items, item)
	}
	return items, nil
}
