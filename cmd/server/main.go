package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/smarthub/hubfare/internal/catalog"
	"github.com/smarthub/hubfare/internal/config"
	"github.com/smarthub/hubfare/internal/httpx"
	"github.com/smarthub/hubfare/internal/logging"
	"github.com/smarthub/hubfare/internal/providers"
	"github.com/smarthub/hubfare/internal/service"
)

func main() {

	// Loading config
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	// Reference data is read once and shared read-only by every request
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 30*time.Second)
	cat, err := catalog.Open(loadCtx, cfg.CatalogFile, cfg.CatalogDSN)
	cancelLoad()
	if err != nil {
		log.Fatal("load catalog", zap.Error(err))
	}
	log.Info("catalog loaded",
		zap.Int("airports", len(cat.Airports())),
		zap.Int("hubs", len(cat.Hubs())))

	kiwi := providers.NewKiwi(cfg)
	if !kiwi.Configured() {
		log.Info("kiwi api key missing, dated searches are simulated")
	}

	engine := service.NewEngine(cat)
	bridge := service.NewBridge(kiwi, cat, cfg.ProviderTimeout, log)

	root := httpx.NewRouter(engine, bridge, httpx.RouterOptions{
		CORSOrigins:    cfg.CORSOrigins,
		StreamInterval: cfg.StreamInterval,
		Logger:         log,
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           root,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      0,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr))
		var err error
		if cfg.TLSCertFile != "" && cfg.TLSKeyFile != "" {
			log.Info("tls enabled")
			err = srv.ListenAndServeTLS(cfg.TLSCertFile, cfg.TLSKeyFile)
		} else {
			err = srv.ListenAndServe()
		}
		if !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("listen", zap.Error(err))
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown", zap.Error(err))
	}
}
