package connection

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/AbdelliBrahim0/DashboardAdmin/config"
	"github.com/AbdelliBrahim0/DashboardAdmin/controller/giftcode"
	"github.com/AbdelliBrahim0/DashboardAdmin/controller/merchant"
	"github.com/AbdelliBrahim0/DashboardAdmin/controller/stats"
	"github.com/AbdelliBrahim0/DashboardAdmin/controller/transaction"
	"github.com/AbdelliBrahim0/DashboardAdmin/controller/user"
	"github.com/AbdelliBrahim0/DashboardAdmin/logger"
	"github.com/AbdelliBrahim0/DashboardAdmin/metrics"
	"github.com/AbdelliBrahim0/DashboardAdmin/middleware"
	"github.com/AbdelliBrahim0/DashboardAdmin/services"
)

const shutdownTimeout = 10 * time.Second

// NewRouter wires middleware and every controller on a fresh engine.
func NewRouter(cfg *config.Config, svc *services.Services, log *logger.Logger, m *metrics.Metrics) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Metrics(m))

	if len(cfg.CORSAllowOrigins) == 0 {
		router.Use(cors.Default())
	} else {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowOrigins = cfg.CORSAllowOrigins
		router.Use(cors.New(corsConfig))
	}

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Api is running!"})
	})
	router.GET("/metrics", gin.WrapH(m.Handler()))

	user.UserController(router, svc.Users)
	user.RecentUsersController(router, svc.Users)
	merchant.MerchantController(router, svc.Merchants)
	transaction.TransactionController(router, svc.Transactions)
	giftcode.GiftCodeController(router, svc.GiftCodes)
	stats.StatsController(router, svc.Stats)

	return router
}

// Bootstrap opens the configured store and builds the services on top of it.
// The caller owns the returned store.
func Bootstrap(ctx context.Context, cfg *config.Config, log *logger.Logger, m *metrics.Metrics) (*services.Services, func() error, error) {
	st, err := OpenStore(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}
	instrumented := metrics.InstrumentStore(st, m)
	return services.New(instrumented, log, m), instrumented.Close, nil
}

// StartServer serves the API on cfg.Port until ctx is cancelled, then drains
// in-flight requests.
func StartServer(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	m := metrics.New()
	svc, closeStore, err := Bootstrap(ctx, cfg, log, m)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Error(err, "closing store")
		}
	}()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           NewRouter(cfg, svc, log, m),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.With("port", cfg.Port, "env", cfg.AppEnv, "store", cfg.StoreDriver).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
