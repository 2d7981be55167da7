package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from environment variables. A .env file in
// the working directory is loaded first if present; real environment
// variables win over .env entries (godotenv does not override them).
//
// Recognized variables:
//
//	RUN_ADDRESS                    HTTP bind address
//	DATABASE_URL                   PostgreSQL DSN
//	SECRET_KEY                     JWT HMAC secret
//	TOKEN_ISSUER                   iss claim value
//	ACCESS_TOKEN_VALIDITY_MINUTES  access token lifetime, minutes
//	BCRYPT_COST                    bcrypt work factor
//	FRONTEND_URL                   base URL for reset links
//	SMTP_HOST, SMTP_PORT, SMTP_USERNAME, SMTP_PASSWORD
//	SMTP_FROM_EMAIL, SMTP_FROM_NAME
func parseEnv(config *Config) {
	_ = godotenv.Load()

	setString := func(key string, dst *string) {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			*dst = v
		}
	}

	setString("RUN_ADDRESS", &config.EndpointAddrHTTP)
	setString("DATABASE_URL", &config.DatabaseDSN)
	setString("SECRET_KEY", &config.SecretKey)
	setString("TOKEN_ISSUER", &config.TokenIssuer)
	setString("FRONTEND_URL", &config.FrontendURL)
	setString("SMTP_HOST", &config.SMTPHost)
	setString("SMTP_PORT", &config.SMTPPort)
	setString("SMTP_USERNAME", &config.SMTPUsername)
	setString("SMTP_PASSWORD", &config.SMTPPassword)
	setString("SMTP_FROM_EMAIL", &config.SMTPFromEmail)
	setString("SMTP_FROM_NAME", &config.SMTPFromName)

	if v, ok := os.LookupEnv("ACCESS_TOKEN_VALIDITY_MINUTES"); ok && v != "" {
		if minutes, err := strconv.Atoi(v); err == nil {
			config.AccessTokenValidityDuration = time.Duration(minutes) * time.Minute
		}
	}

	if v, ok := os.LookupEnv("BCRYPT_COST"); ok && v != "" {
		if cost, err := strconv.Atoi(v); err == nil {
			config.BcryptCost = cost
		}
	}
}
