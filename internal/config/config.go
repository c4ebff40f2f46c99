package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	ServerAddr      string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// CSV destinations. The mirror path is optional; empty disables it.
	OutputCSVPath string
	MirrorCSVPath string

	FetchInterval   time.Duration
	HTTPTimeout     time.Duration
	FetchMaxRetries int

	// Kafka publishing configuration.
	KafkaEnabled bool
	KafkaBrokers []string
	KafkaTopic   string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := parseDuration("SHUTDOWN_TIMEOUT", "10s")
	if err != nil {
		return nil, err
	}

	fetchIntervalMin, err := parsePositiveInt("FETCH_INTERVAL_MINUTES", 30)
	if err != nil {
		return nil, err
	}

	httpTimeoutSec, err := parsePositiveInt("HTTP_TIMEOUT_SECONDS", 15)
	if err != nil {
		return nil, err
	}

	maxRetries, err := parseNonNegativeInt("FETCH_MAX_RETRIES", 3)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		ServerAddr:      envOrDefault("SERVER_ADDRESS", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		OutputCSVPath: envOrDefault("OUTPUT_CSV_PATH", "output/marine_forecast.csv"),
		MirrorCSVPath: os.Getenv("MIRROR_CSV_PATH"),

		FetchInterval:   time.Duration(fetchIntervalMin) * time.Minute,
		HTTPTimeout:     time.Duration(httpTimeoutSec) * time.Second,
		FetchMaxRetries: maxRetries,

		KafkaEnabled: os.Getenv("KAFKA_ENABLED") == "true",
		KafkaBrokers: parseBrokers(envOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaTopic:   envOrDefault("KAFKA_TOPIC", "marine-forecasts"),
	}

	if cfg.KafkaEnabled && len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_ENABLED is true but KAFKA_BROKERS is empty")
	}
	if cfg.KafkaEnabled && cfg.KafkaTopic == "" {
		return nil, errors.New("KAFKA_ENABLED is true but KAFKA_TOPIC is empty")
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// parseBrokers splits a comma-separated broker list, dropping empty entries.
func parseBrokers(raw string) []string {
	var brokers []string
	for _, b := range strings.Split(raw, ",") {
		if b = strings.TrimSpace(b); b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

func parseDuration(key, fallback string) (time.Duration, error) {
	d, err := time.ParseDuration(envOrDefault(key, fallback))
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s: must be a positive duration", key)
	}
	return d, nil
}

func parsePositiveInt(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s: must be a positive integer", key)
	}
	return n, nil
}

func parseNonNegativeInt(key string, fallback int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid %s: must be zero or a positive integer", key)
	}
	return n, nil
}
