package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Config holds all configuration for the application
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	JWTSecret  string
	Port       string
	Env        string

	// Whole-number referral commission percentage applied when a referred
	// user invests.
	ReferralCommissionRate int

	// When true, creating an investment also writes a ledger transaction.
	// Off by default: the investment-creation route historically did not
	// log a transaction while the generic transaction endpoint did.
	LedgerOnInvest bool

	// When true, non-admin API requests are refused.
	MaintenanceMode bool
}

// LoadConfig loads configuration from environment variables. A missing .env
// file is not fatal; values may come from the process environment.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "loans"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		Port:       getEnv("PORT", "8080"),
		Env:        getEnv("ENV", "development"),

		ReferralCommissionRate: getEnvInt("REFERRAL_COMMISSION_RATE", 2),
		LedgerOnInvest:         getEnvBool("LEDGER_ON_INVEST", false),
		MaintenanceMode:        getEnvBool("MAINTENANCE_MODE", false),
	}

	return config, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
