package config

import (
	"os"
)

// Environment names the runtime mode the service was started in. It decides
// where configuration comes from: env vars with defaults everywhere except
// Production, which reads Docker secrets.
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	CI          Environment = "ci"
	Production  Environment = "production"
)

// GetEnvironment resolves the runtime environment. A truthy CI variable wins
// over ENV so pipeline runs never pick up a developer's local setting.
func GetEnvironment() Environment {
	if os.Getenv("CI") == "true" {
		return CI
	}

	switch os.Getenv("ENV") {
	case "production":
		return Production
	case "test":
		return Test
	case "development":
		return Development
	default:
		return Development
	}
}

// IsDevelopment reports whether the service runs in development mode.
func IsDevelopment() bool {
	return GetEnvironment() == Development
}

// IsTest reports whether the service runs under ENV=test.
func IsTest() bool {
	return GetEnvironment() == Test
}

// IsProduction reports whether the service runs in production mode.
func IsProduction() bool {
	return GetEnvironment() == Production
}
