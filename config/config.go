package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Catalog storage: "memory" or "mongo".
	CatalogBackend string `mapstructure:"CATALOG_BACKEND"`
	DatabaseURL    string `mapstructure:"DATABASE_URL"`
	DatabaseName   string `mapstructure:"DATABASE_NAME"`

	// Client store: "memory" or "redis".
	StoreBackend  string `mapstructure:"STORE_BACKEND"`
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisStoreDB  int    `mapstructure:"REDIS_STORE_DB"`
	RedisOTPDB    int    `mapstructure:"REDIS_OTP_DB"`
	RedisQueueDB  int    `mapstructure:"REDIS_QUEUE_DB"`

	// Booking reminders run on the Redis queue; they are off with the memory store.
	ReminderLead time.Duration `mapstructure:"REMINDER_LEAD"`
	Timezone     string        `mapstructure:"TIMEZONE"`

	// Empty disables the broker; events are logged instead.
	NATSURL string `mapstructure:"NATS_URL"`

	JWTSecret         string        `mapstructure:"JWT_SECRET"`
	AdminEmail        string        `mapstructure:"ADMIN_EMAIL"`
	AdminPasswordHash string        `mapstructure:"ADMIN_PASSWORD_HASH"`
	OTPEndpoint       string        `mapstructure:"OTP_ENDPOINT"`
	OTPTTL            time.Duration `mapstructure:"OTP_TTL"`
	HTTPClientTimeout time.Duration `mapstructure:"HTTP_CLIENT_TIMEOUT"`

	// Payment gateway. An empty key uses the local development gateway.
	StripeKey            string `mapstructure:"STRIPE_KEY"`
	StripePublishableKey string `mapstructure:"STRIPE_PUBLISHABLE_KEY"`
	PaymentCurrency      string `mapstructure:"PAYMENT_CURRENCY"`
}

var AppConfig Config

func LoadConfig() {
	// A .env file is optional; real environment variables take precedence.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	setDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	v.SetDefault("CATALOG_BACKEND", "memory")
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("DATABASE_NAME", "findmylocal")
	v.SetDefault("STORE_BACKEND", "memory")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_STORE_DB", 0)
	v.SetDefault("REDIS_OTP_DB", 2)
	v.SetDefault("REDIS_QUEUE_DB", 3)
	v.SetDefault("REMINDER_LEAD", "1h")
	v.SetDefault("TIMEZONE", "Asia/Kolkata")
	v.SetDefault("NATS_URL", "")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("ADMIN_EMAIL", "admin@findmylocal.com")
	v.SetDefault("ADMIN_PASSWORD_HASH", "")
	v.SetDefault("OTP_ENDPOINT", "")
	v.SetDefault("OTP_TTL", "5m")
	v.SetDefault("HTTP_CLIENT_TIMEOUT", "10s")
	v.SetDefault("STRIPE_KEY", "")
	v.SetDefault("STRIPE_PUBLISHABLE_KEY", "")
	v.SetDefault("PAYMENT_CURRENCY", "inr")
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
