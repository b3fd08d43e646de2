// internal/infrastructure/config/config.go
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion string
	LogLevel   string

	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// MongoDB
	MongoURI            string
	MongoDB             string
	MongoUser           string
	MongoPassword       string
	MongoAppName        string
	MongoMaxPoolSize    uint64
	MongoMinPoolSize    uint64
	MongoConnectTimeout time.Duration

	// PostgreSQL tour catalog
	PostgresURI    string
	MigrationsPath string
	RunMigrations  bool

	// Gmail
	GmailClientID     string
	GmailClientSecret string
	GmailRefreshToken string
	MailFrom          string

	// Object storage
	StorageBucket string

	// Checkout service
	CheckoutServiceURL    string
	CheckoutServiceToken  string
	CheckoutWebhookSecret string
	CheckoutNotifyTimeout time.Duration
	CheckoutPollInterval  time.Duration

	// Auth
	JWTSecret string

	// RabbitMQ
	RabbitMQURL string

	// Booking
	BookingRefPrefix string
	DefaultTourID    string
	WizardSessionTTL time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		AppVersion:   getEnv("APP_VERSION", "1.0.0"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		Port:         getEnv("PORT", "8080"),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,

		MongoURI:            getEnv("MONGODB_DSN", "mongodb://localhost:27017"),
		MongoDB:             getEnv("MONGO_DB", "recharge"),
		MongoUser:           getEnv("MONGO_USER", ""),
		MongoPassword:       getEnv("MONGO_PASSWORD", ""),
		MongoAppName:        getEnv("MONGO_APP_NAME", "recharge-travels-service"),
		MongoMaxPoolSize:    getEnvAsUint("MONGO_MAX_POOL_SIZE", 100),
		MongoMinPoolSize:    getEnvAsUint("MONGO_MIN_POOL_SIZE", 0),
		MongoConnectTimeout: getEnvAsDuration("MONGO_CONNECT_TIMEOUT", 10*time.Second),

		PostgresURI:    getEnv("POSTGRES_DSN", ""),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "file://migrations"),
		RunMigrations:  getEnvAsBool("RUN_MIGRATIONS", true),

		GmailClientID:     getEnv("GMAIL_CLIENT_ID", ""),
		GmailClientSecret: getEnv("GMAIL_CLIENT_SECRET", ""),
		GmailRefreshToken: getEnv("GMAIL_REFRESH_TOKEN", ""),
		MailFrom:          getEnv("MAIL_FROM", "Recharge Travels <bookings@rechargetravels.com>"),

		StorageBucket: getEnv("STORAGE_BUCKET", ""),

		CheckoutServiceURL:    getEnv("CHECKOUT_SERVICE_URL", "http://localhost:9090"),
		CheckoutServiceToken:  getEnv("CHECKOUT_SERVICE_TOKEN", ""),
		CheckoutWebhookSecret: getEnv("CHECKOUT_WEBHOOK_SECRET", ""),
		CheckoutNotifyTimeout: getEnvAsDuration("CHECKOUT_NOTIFY_TIMEOUT", 10*time.Second),
		CheckoutPollInterval:  getEnvAsDuration("CHECKOUT_POLL_INTERVAL", 500*time.Millisecond),

		JWTSecret: getEnv("JWT_SECRET", ""),

		RabbitMQURL: getEnv("RABBITMQ_URL", ""),

		BookingRefPrefix: getEnv("BOOKING_REF_PREFIX", "RT"),
		DefaultTourID:    getEnv("DEFAULT_TOUR_ID", "default-tour"),
		WizardSessionTTL: getEnvAsDuration("WIZARD_SESSION_TTL", 2*time.Hour),
	}

	return config, nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsUint treats negative values as unset
func getEnvAsUint(key string, defaultValue uint64) uint64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseUint(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := strings.ToLower(getEnv(key, ""))
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsDuration accepts Go duration strings ("10s", "500ms")
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
