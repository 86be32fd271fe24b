package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config centralises all environment configuration for the salon backend.
type Config struct {
	ServerPort  string
	DatabaseURL string

	RazorpayKeyID     string
	RazorpayKeySecret string

	SMTPHost  string
	SMTPPort  int
	EmailUser string
	EmailPass string

	RabbitURL  string // optional; empty disables the receipt queue
	CORSOrigin string
	LogLevel   string
}

func Load() *Config {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	return &Config{
		ServerPort:        getEnv("PORT", "5000"),
		DatabaseURL:       getEnv("DATABASE_URL", "host=localhost port=5432 user=postgres password=postgres dbname=h2o_salon sslmode=disable"),
		RazorpayKeyID:     os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
		SMTPHost:          getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:          getEnvInt("SMTP_PORT", 587),
		EmailUser:         os.Getenv("EMAIL_USER"),
		EmailPass:         os.Getenv("EMAIL_PASS"),
		RabbitURL:         os.Getenv("RABBIT_URL"),
		CORSOrigin:        getEnv("CORS_ORIGIN", "https://h2osalon.vercel.app"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}

func getEnvInt(key string, def int) int {
	val := os.Getenv(key)
	if val == "" {
		return def
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return def
	}
	return n
}
