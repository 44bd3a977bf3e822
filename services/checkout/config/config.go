package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	AppEnv        string
	StoreBackend  string
	RedisURL      string
	KafkaBrokers  string
	CheckoutTopic string

	UseMediatedInvocation bool
	SidecarBaseURL        string
	CartAppID             string
	CartServiceURL        string
	InvokeTimeout         time.Duration
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return Config{
		Port:          getEnv("PORT", "8083"),
		AppEnv:        getEnv("APP_ENV", "development"),
		StoreBackend:  getEnv("STORE_BACKEND", "redis"),
		RedisURL:      getEnv("REDIS_URL", "redis://localhost:6379"),
		KafkaBrokers:  getEnv("KAFKA_BROKERS", "localhost:9092"),
		CheckoutTopic: getEnv("CHECKOUT_TOPIC", "checkout.completed.v1"),

		UseMediatedInvocation: getBool("USE_MEDIATED_INVOCATION", true),
		SidecarBaseURL:        getEnv("SIDECAR_BASE_URL", "http://localhost:3500"),
		CartAppID:             getEnv("CART_APP_ID", "cart-service"),
		CartServiceURL:        getEnv("CART_SERVICE_URL", "http://localhost:8082"),
		InvokeTimeout:         getDuration("INVOKE_TIMEOUT", 5*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Invalid %s=%q, using default %t", key, value, fallback)
		return fallback
	}
	return b
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Invalid %s=%q, using default %s", key, value, fallback)
		return fallback
	}
	return d
}
