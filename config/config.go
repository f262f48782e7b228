package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// ChargePolicy decides what a partially owned cart is charged.
type ChargePolicy string

// PayoutPolicy decides what an external-payout refund leaves behind.
type PayoutPolicy string

const (
	ChargeFullCart ChargePolicy = "full-cart"
	ChargeNetNew   ChargePolicy = "net-new"

	PayoutNoop          PayoutPolicy = "noop"
	PayoutPendingLedger PayoutPolicy = "pending-ledger"
)

type Config struct {
	AppEnv   string
	LogLevel string
	Port     string

	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string

	JWTSecret   string
	TokenTTL    time.Duration
	AdminAPIKey string

	TaxRate      decimal.Decimal
	ChargePolicy ChargePolicy
	PayoutPolicy PayoutPolicy

	RedisAddr    string
	KafkaBrokers []string
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		AppEnv:      getEnv("APP_ENV", "dev"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      getEnv("DB_NAME", "gameverse"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		TokenTTL:    getEnvDuration("TOKEN_TTL", 24*time.Hour),
		AdminAPIKey: os.Getenv("ADMIN_API_KEY"),
		RedisAddr:   os.Getenv("REDIS_ADDR"),
	}

	rate, err := decimal.NewFromString(getEnv("TAX_RATE", "0.16"))
	if err != nil || rate.IsNegative() {
		return Config{}, fmt.Errorf("invalid TAX_RATE %q", os.Getenv("TAX_RATE"))
	}
	cfg.TaxRate = rate

	switch p := ChargePolicy(getEnv("CHARGE_POLICY", string(ChargeFullCart))); p {
	case ChargeFullCart, ChargeNetNew:
		cfg.ChargePolicy = p
	default:
		return Config{}, fmt.Errorf("invalid CHARGE_POLICY %q", p)
	}

	switch p := PayoutPolicy(getEnv("PAYOUT_POLICY", string(PayoutNoop))); p {
	case PayoutNoop, PayoutPendingLedger:
		cfg.PayoutPolicy = p
	default:
		return Config{}, fmt.Errorf("invalid PAYOUT_POLICY %q", p)
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}

	if cfg.JWTSecret == "" {
		return Config{}, fmt.Errorf("JWT_SECRET is not set")
	}
	return cfg, nil
}

// DSN returns DATABASE_URL when set, otherwise a key/value Postgres DSN.
func (c Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort,
	)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
