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
	"github.com/vedantpatel1997/dapr-storefront/services/storefront/clients"
	"github.com/vedantpatel1997/dapr-storefront/services/storefront/config"
	"github.com/vedantpatel1997/dapr-storefront/services/storefront/routes"
)

func main() {
	cfg := config.Load()

	logger.Initialize(cfg.AppEnv)
	defer logger.Sync()

	var resolver invoke.Resolver
	if cfg.UseMediatedInvocation {
		resolver = invoke.MediatedResolver{SidecarBaseURL: cfg.SidecarBaseURL}
	} else {
		resolver = invoke.DirectResolver{Routes: map[string]string{
			cfg.ProductsAppID: cfg.ProductsServiceURL,
			cfg.CartAppID:     cfg.CartServiceURL,
			cfg.CheckoutAppID: cfg.CheckoutServiceURL,
		}}
	}
	invoker := invoke.NewHTTPClient(resolver, cfg.InvokeTimeout)
	downstream := clients.NewDownstream(invoker, cfg.ProductsAppID, cfg.CartAppID, cfg.CheckoutAppID)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(logger.RequestLogger(), gin.Recovery())
	routes.RegisterStorefrontRoutes(router, downstream)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Log.Info("Storefront is running",
			zap.String("port", cfg.Port),
			zap.Bool("mediated_invocation", cfg.UseMediatedInvocation),
		)
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
