package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"autocomply/internal/audit"
	"autocomply/internal/casefile"
	casehandler "autocomply/internal/casefile/handler"
	"autocomply/internal/decision"
	decisionhandler "autocomply/internal/decision/handler"
	decisionmetrics "autocomply/internal/decision/metrics"
	"autocomply/internal/decision/store"
	"autocomply/internal/platform/config"
	"autocomply/internal/platform/httpserver"
	"autocomply/internal/platform/logger"
	platformredis "autocomply/internal/platform/redis"
	"autocomply/internal/regulatory"
	reghandler "autocomply/internal/regulatory/handler"
	regmetrics "autocomply/internal/regulatory/metrics"
	httptransport "autocomply/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Business logic lives in internal services packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	sources := regulatory.Seed()
	if cfg.CatalogPath != "" {
		loaded, err := regulatory.LoadFile(cfg.CatalogPath)
		if err != nil {
			log.Error("catalogue load failed", "path", cfg.CatalogPath, "error", err)
			os.Exit(1)
		}
		sources = loaded
	}
	catalog := regulatory.NewCatalog(sources)

	decisionLog, closeLog, err := openDecisionLog(cfg)
	if err != nil {
		log.Error("decision log init failed", "backend", cfg.Store, "error", err)
		os.Exit(1)
	}
	if closeLog != nil {
		defer closeLog()
	}

	auditPub := audit.NewPublisher(audit.NewInMemoryStore())

	decisionService := decision.NewService(
		decision.NewChecklists(time.Now),
		catalog,
		decisionLog,
		auditPub,
		log,
		decisionmetrics.New(),
	)
	caseService := casefile.NewService(decisionLog, catalog, auditPub, log)
	searchService := regulatory.NewService(catalog, log, regmetrics.New())

	router := httptransport.NewRouter(log, httptransport.Handlers{
		Decision:   decisionhandler.New(decisionService, log),
		Case:       casehandler.New(caseService, log),
		Regulatory: reghandler.New(searchService, log),
	})

	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting autocomply", "addr", cfg.Addr, "store", cfg.Store, "catalog_sources", catalog.Len())

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
		os.Exit(1)
	}
}

// openDecisionLog selects the decision log backend from configuration.
func openDecisionLog(cfg config.Server) (decision.Log, func() error, error) {
	switch cfg.Store {
	case config.StoreSQLite:
		log, err := store.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return log, log.Close, nil
	case config.StorePostgres:
		log, err := store.OpenPostgres(cfg.PostgresDSN)
		if err != nil {
			return nil, nil, err
		}
		return log, log.Close, nil
	case config.StoreRedis:
		client, err := platformredis.New(cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		if client == nil {
			return nil, nil, fmt.Errorf("AUTOCOMPLY_REDIS_URL is required for the redis store")
		}
		return store.NewRedisLog(client.Client), client.Close, nil
	default:
		return store.NewInMemoryLog(), nil, nil
	}
}
