package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	AppEnv        string
	StoreBackend  string
	RedisURL      string
	CartTTL       time.Duration
	KafkaBrokers  string
	CheckoutTopic string
	ConsumerGroup string
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return Config{
		Port:          getEnv("PORT", "8082"),
		AppEnv:        getEnv("APP_ENV", "development"),
		StoreBackend:  getEnv("STORE_BACKEND", "redis"),
		RedisURL:      getEnv("REDIS_URL", "redis://localhost:6379"),
		CartTTL:       getDuration("CART_TTL", 7*24*time.Hour),
		KafkaBrokers:  getEnv("KAFKA_BROKERS", "localhost:9092"),
		CheckoutTopic: getEnv("CHECKOUT_TOPIC", "checkout.completed.v1"),
		ConsumerGroup: getEnv("CONSUMER_GROUP", "cart-service"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
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
