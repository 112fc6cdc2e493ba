package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	DBDriver       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	JWTSecret      string
	JWTAlgorithm   string
	AccessTokenTTL time.Duration
	GinMode        string
	Port           string
}

// Load reads configuration from the environment. Token settings are
// required at process start: a missing secret or an unparseable TTL is
// a startup error, not something to fall back from.
func Load() (*Config, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	ttlMinutes, err := strconv.Atoi(getEnv("ACCESS_TOKEN_EXPIRE_MINUTES", "30"))
	if err != nil || ttlMinutes <= 0 {
		return nil, fmt.Errorf("ACCESS_TOKEN_EXPIRE_MINUTES must be a positive integer")
	}

	driver := getEnv("DB_DRIVER", "postgres")
	if driver != "postgres" && driver != "mysql" {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (expected postgres or mysql)", driver)
	}

	return &Config{
		DBDriver:       driver,
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", defaultDBPort(driver)),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     getEnv("DB_PASSWORD", "postgres"),
		DBName:         getEnv("DB_NAME", "blog"),
		JWTSecret:      secret,
		JWTAlgorithm:   getEnv("JWT_ALGORITHM", "HS256"),
		AccessTokenTTL: time.Duration(ttlMinutes) * time.Minute,
		GinMode:        getEnv("GIN_MODE", "debug"),
		Port:           getEnv("PORT", "8080"),
	}, nil
}

func defaultDBPort(driver string) string {
	if driver == "mysql" {
		return "3306"
	}
	return "5432"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
