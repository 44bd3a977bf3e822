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

	"github.com/vedantpatel1997/dapr-storefront/pkg/invoke"
	"github.com/vedantpatel1997/dapr-storefront/pkg/logger"
	"github.com/vedantpatel1997/dapr-storefront/pkg/pubsub"
	"github.com/vedantpatel1997/dapr-storefront/pkg/store"
	"github.com/vedantpatel1997/dapr-storefront/services/checkout/config"
	"github.com/vedantpatel1997/dapr-storefront/services/checkout/routes"
	checkoutsvc "github.com/vedantpatel1997/dapr-storefront/services/checkout/services"
)

func main() {
	cfg := config.Load()

	logger.Initialize(cfg.AppEnv)
	defer logger.Sync()

	var st store.Store
	if cfg.StoreBackend == "memory" {
		st = store.NewMemoryStore()
		logger.Log.Warn("Using in-memory store; orders will not survive a restart")
	} else {
		redisStore, err := store.NewRedisStore("statestore", cfg.RedisURL, 0)
		if err != nil {
			logger.Log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer redisStore.Close()
		st = redisStore
	}

	bus := pubsub.NewKafkaBus(cfg.KafkaBrokers)
	defer bus.Close()

	var resolver invoke.Resolver
	if cfg.UseMediatedInvocation {
		resolver = invoke.MediatedResolver{SidecarBaseURL: cfg.SidecarBaseURL}
	} else {
		resolver = invoke.DirectResolver{Routes: map[string]string{
			cfg.CartAppID: cfg.CartServiceURL,
		}}
	}
	invoker := invoke.NewHTTPClient(resolver, cfg.InvokeTimeout)

	svc := checkoutsvc.NewCheckoutService(invoker, st, bus, cfg.CheckoutTopic, cfg.CartAppID)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(logger.RequestLogger(), gin.Recovery())
	routes.RegisterCheckoutRoutes(router, svc, cfg.CheckoutTopic)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Log.Info("Checkout service is running", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatal("Server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Log.Info("Shutting down gracefully")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Fatal("Shutdown error", zap.Error(err))
	}
}
