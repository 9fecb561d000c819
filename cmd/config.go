package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// config holds every setting read from the environment.
type config struct {
	AppHost   string
	AppPort   string
	LogLevel  string
	LogFormat string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	KafkaBrokers []string
	KafkaTopic   string

	JWTSecretKey string
	JWTExpSecond int

	TokenCacheTTLSecond int
	BcryptCost          int
}

// postgresDSN builds the PostgreSQL connection URL.
func (c *config) postgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDB)
}

// parseConfig loads environment variables from a file and returns the
// application, database, Redis, Kafka, logging, and JWT configuration.
// Variables already present in the environment win over the file.
func parseConfig(path string) (*config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	var err error
	getInt := func(key, defaultValue string) int {
		if err != nil {
			return 0
		}
		var v int
		if v, err = strconv.Atoi(getEnv(key, defaultValue)); err != nil {
			err = fmt.Errorf("invalid %s: %w", key, err)
		}
		return v
	}

	cfg := &config{
		// Application config
		AppHost:   getEnv("APP_HOST", "localhost"),
		AppPort:   getEnv("APP_PORT", "8080"),
		LogLevel:  getEnv("APP_LOG_LEVEL", "info"),
		LogFormat: getEnv("APP_LOG_FORMAT", "json"),

		// PostgreSQL config
		PGHost:         getEnv("POSTGRES_HOST", "localhost"),
		PGPort:         getInt("POSTGRES_PORT", "5432"),
		PGUser:         getEnv("POSTGRES_USER", "user"),
		PGPassword:     getEnv("POSTGRES_PASSWORD", "password"),
		PGDB:           getEnv("POSTGRES_DB", "database"),
		PGMaxOpenConns: getInt("POSTGRES_MAX_OPEN_CONNS", "16"),
		PGMaxIdleConns: getInt("POSTGRES_MAX_IDLE_CONNS", "8"),

		// Redis config
		RedisHost:         getEnv("REDIS_HOST", "localhost"),
		RedisPort:         getInt("REDIS_PORT", "6379"),
		RedisDB:           getInt("REDIS_DB", "0"),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		RedisPoolSize:     getInt("REDIS_POOL_SIZE", "10"),
		RedisMinIdleConns: getInt("REDIS_MIN_IDLE_CONNS", "2"),

		// Kafka config, publishing is disabled without brokers
		KafkaTopic: getEnv("KAFKA_TOPIC", "identity-events"),

		// JWT config
		JWTSecretKey: getEnv("JWT_SECRET_KEY", "my_super_secret_key"),
		JWTExpSecond: getInt("JWT_EXP_SECOND", "3600"),

		TokenCacheTTLSecond: getInt("TOKEN_CACHE_TTL_SECOND", "300"),
		BcryptCost:          getInt("BCRYPT_COST", "12"),
	}
	if err != nil {
		return nil, err
	}

	for _, b := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if b = strings.TrimSpace(b); b != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
		}
	}

	return cfg, nil
}
