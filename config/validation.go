package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks if the configuration meets the requirements for the
// current environment. Development and Test tolerate gaps that the dev
// defaults fill in; CI and Production do not.
func ValidateConfig(cfg *Config) error {
	env := GetEnvironment()

	var errors []string

	required := map[string]string{
		"SERVER_PORT": cfg.ServerPort,
		"DB_HOST":     cfg.DBHost,
		"DB_PORT":     cfg.DBPort,
		"JWT_SECRET":  cfg.JWTSecret,
	}

	if env == CI || env == Production {
		required["DB_USER"] = cfg.DBUser
		required["DB_PASSWORD"] = cfg.DBPassword
		required["DB_NAME"] = cfg.DBName
		required["DB_SSL_MODE"] = cfg.DBSSLMode
	}

	for name, value := range required {
		if value == "" {
			errors = append(errors, fmt.Sprintf("required configuration %s is not set", name))
		}
	}

	if env == Production && cfg.JWTSecret == "dev-secret" {
		errors = append(errors, "jwt_secret must not use the development default in production")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return nil
}
