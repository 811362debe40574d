package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	DBSource string
	Port     string
	Seed     bool

	// TaxRate applies to every payment created through the derived-tax
	// path. Process-wide, never a per-order parameter.
	TaxRate decimal.Decimal
}

func LoadConfig() *Config {
	// .env is optional; real env vars win either way
	_ = godotenv.Load()

	taxRate, err := decimal.NewFromString(getEnv("TAX_RATE", "0.08"))
	if err != nil {
		log.Fatalf("invalid TAX_RATE: %v", err)
	}

	return &Config{
		DBSource: getEnv("DB_SOURCE", "restaurant.db"),
		Port:     getEnv("PORT", "8000"),
		Seed:     getEnv("SEED", "false") == "true",
		TaxRate:  taxRate,
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
