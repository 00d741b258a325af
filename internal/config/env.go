package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr string
	GinMode string

	DBDSN string

	UpstreamBaseURL string
	UpstreamToken   string

	SmsGatewayURL string
	SmsGatewayKey string

	JWTSecret string
}

// LoadEnv reads configuration from the environment, with a .env overlay for
// local development. Missing optional values fall back to dev defaults.
func LoadEnv() Env {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: could not load .env: %v", err)
	}

	get := func(key, fallback string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return fallback
		}
		return v
	}

	return Env{
		AppAddr:         get("APP_ADDR", ":8080"),
		GinMode:         get("GIN_MODE", ""),
		DBDSN:           get("DB_DSN", "root:@tcp(127.0.0.1:3306)/tourdesk?parseTime=true&loc=UTC&charset=utf8mb4&timeout=5s"),
		UpstreamBaseURL: get("UPSTREAM_BASE_URL", "http://localhost:4000/api"),
		UpstreamToken:   get("UPSTREAM_TOKEN", ""),
		SmsGatewayURL:   get("SMS_GATEWAY_URL", ""),
		SmsGatewayKey:   get("SMS_GATEWAY_KEY", ""),
		JWTSecret:       get("JWT_SECRET", "dev-secret-change-me"),
	}
}
