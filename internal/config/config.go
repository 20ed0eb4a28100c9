package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Env     string
	Port    int
	WebRoot string
	// OTLP collector target, e.g. "localhost:4317". Empty disables tracing.
	OTLPEndpoint string
}

func Load() Config {
	env := getEnv("APP_ENV", "dev")
	port := getEnvInt("PORT", 3000)
	webRoot := getEnv("WEB_ROOT", ".")
	otlp := getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	return Config{
		Env:          env,
		Port:         port,
		WebRoot:      webRoot,
		OTLPEndpoint: otlp,
	}
}

func WithTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		num, err := strconv.Atoi(v)

		if err != nil {
			fmt.Println(err)
			return fallback
		}

		return num
	}
	return fallback
}
