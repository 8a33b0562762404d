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

// ValidateConfig checks that the loaded configuration is usable in the
// current environment. Development and Test get permissive defaults;
// Production must have every secret present.
func ValidateConfig(cfg *Config) error {
	env := GetEnvironment()

	var errors []string

	if cfg.JWTSecret == "" {
		if env == Production {
			errors = append(errors, "jwt_secret secret is required")
		} else {
			errors = append(errors, "JWT_SECRET environment variable is required")
		}
	}

	if cfg.ServerPort == "" {
		errors = append(errors, "server port is required")
	}
	if cfg.AWSRegion == "" {
		errors = append(errors, "AWS region is required")
	}
	if cfg.BedrockModelID == "" {
		errors = append(errors, "Bedrock model id is required")
	}

	if env == Production {
		required := map[string]string{
			"db_host":     cfg.DBHost,
			"db_port":     cfg.DBPort,
			"db_user":     cfg.DBUser,
			"db_password": cfg.DBPassword,
			"db_name":     cfg.DBName,
			"redis_host":  cfg.RedisHost,
			"redis_port":  cfg.RedisPort,
		}
		for name, value := range required {
			if value == "" {
				errors = append(errors, fmt.Sprintf("required secret %s is not set", name))
			}
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return nil
}
