package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	JWTKey    string
	SaltRound int

	EmailSender string
	Password    string // SMTP Password
	AdminEmail  string // receives contact form notifications

	PaymentApiURL    string // Sandbox gateway base URL
	PaymentApiKey    string
	PaymentSecretKey string
	PaymentQRImage   string // static QR fallback when the gateway is not configured
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	// Initialize AppConfig with values from environment variables
	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		EmailSender: getEnv("EMAIL_SENDER", "defaultSecret"),
		Password:    getEnv("PASSWORD", "defaultSecret"),
		AdminEmail:  getEnv("ADMIN_EMAIL", ""),

		PaymentApiURL:    getEnv("PAYMENT_API_URL", ""),
		PaymentApiKey:    getEnv("PAYMENT_API_KEY", ""),
		PaymentSecretKey: getEnv("PAYMENT_SECRET_KEY", ""),
		PaymentQRImage:   getEnv("PAYMENT_QR_IMAGE", "/qr-code.png"),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.PaymentApiURL == "" {
		log.Println("Warning: PAYMENT_API_URL not set. Checkout will fall back to QR payments.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
