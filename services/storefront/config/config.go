package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port   string
	AppEnv string

	UseMediatedInvocation bool
	SidecarBaseURL        string
	InvokeTimeout         time.Duration

	ProductsAppID string
	CartAppID     string
	CheckoutAppID string

	ProductsServiceURL string
	CartServiceURL     string
	CheckoutServiceURL string
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return Config{
		Port:   getEnv("PORT", "8080"),
		AppEnv: getEnv("APP_ENV", "development"),

		UseMediatedInvocation: getBool("USE_MEDIATED_INVOCATION", true),
		SidecarBaseURL:        getEnv("SIDECAR_BASE_URL", "http://localhost:3500"),
		InvokeTimeout:         getDuration("INVOKE_TIMEOUT", 5*time.Second),

		ProductsAppID: getEnv("PRODUCTS_APP_ID", "products-service"),
		CartAppID:     getEnv("CART_APP_ID", "cart-service"),
		CheckoutAppID: getEnv("CHECKOUT_APP_ID", "checkout-service"),

		ProductsServiceURL: getEnv("PRODUCTS_SERVICE_URL", "http://localhost:8081"),
		CartServiceURL:     getEnv("CART_SERVICE_URL", "http://localhost:8082"),
		CheckoutServiceURL: getEnv("CHECKOUT_SERVICE_URL", "http://localhost:8083"),
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
