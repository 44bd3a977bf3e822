package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vedantpatel1997/dapr-storefront/pkg/logger"
	"github.com/vedantpatel1997/dapr-storefront/pkg/pubsub"
	"github.com/vedantpatel1997/dapr-storefront/pkg/store"
	"github.com/vedantpatel1997/dapr-storefront/services/cart/config"
	"github.com/vedantpatel1997/dapr-storefront/services/cart/routes"
	cartsvc "github.com/vedantpatel1997/dapr-storefront/services/cart/services"
	"github.com/vedantpatel1997/dapr-storefront/services/cart/subscriber"
)

func main() {
	cfg := config.Load()

	logger.Initialize(cfg.AppEnv)
	defer logger.Sync()

	var st store.Store
	if cfg.StoreBackend == "memory" {
		st = store.NewMemoryStore()
		logger.Log.Warn("Using in-memory store; carts will not survive a restart")
	} else {
		redisStore, err := store.NewRedisStore("statestore", cfg.RedisURL, cfg.CartTTL)
		if err != nil {
			logger.Log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisStore.Close()
		st = redisStore
	}

	bus := pubsub.NewKafkaBus(cfg.KafkaBrokers)
	defer bus.Close()

	svc := cartsvc.NewCartService(st)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		if err := subscriber.Run(ctx, bus, cfg.CheckoutTopic, cfg.ConsumerGroup, svc); err != nil {
			logger.Log.Error("Checkout subscriber stopped", zap.Error(err))
		}
	}()

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(logger.RequestLogger(), gin.Recovery())
	routes.RegisterCartRoutes(router, svc, cfg.CheckoutTopic)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Log.Info("Cart service is running", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("Server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Log.Info("Shutting down gracefully")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Fatal("Shutdown error", zap.Error(err))
	}
}
