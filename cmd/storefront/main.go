package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/freshmarket/storefront/internal/cart"
	"github.com/freshmarket/storefront/internal/catalog"
	"github.com/freshmarket/storefront/internal/config"
	"github.com/freshmarket/storefront/internal/events"
	"github.com/freshmarket/storefront/internal/httpserver"
	"github.com/freshmarket/storefront/internal/kvstore"
	"github.com/freshmarket/storefront/internal/logging"
	"github.com/freshmarket/storefront/internal/order"
	"github.com/freshmarket/storefront/internal/search"
	"github.com/freshmarket/storefront/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logger := logging.New(cfg.LogLevel)

	store, closeStore, err := openStore(cfg)
	if err != nil {
		log.Fatalf("store init error: %v", err)
	}

	var pub events.Publisher = events.Nop{}
	if cfg.KafkaAddress != "" {
		pub = events.NewProducer(cfg.KafkaAddress)
	}

	provider := catalog.NewProvider()
	cartSvc := cart.NewService(store, pub)
	orderRepo := order.NewRepo(store)
	orderSvc := order.NewService(orderRepo, cartSvc, pub)
	sessions := session.NewManager(store, pub)

	var searchClient *search.Client
	if cfg.ESURL != "" {
		searchClient, err = search.NewClient(cfg.ESURL, cfg.ESUser, cfg.ESPassword, cfg.ESIndex)
		if err != nil {
			log.Fatalf("elasticsearch init error: %v", err)
		}
		idxCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err = searchClient.IndexCatalog(idxCtx, provider.Products())
		cancel()
		if err != nil {
			log.Fatalf("catalog index error: %v", err)
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(httpserver.RequestLogger(logger))

	httpserver.Register(e, &httpserver.Deps{
		AuthHandler:    &httpserver.AuthHTTP{Sessions: sessions, Secret: []byte(cfg.JWTSecret)},
		CatalogHandler: &httpserver.CatalogHTTP{Catalog: provider, Search: searchClient},
		CartHandler:    &httpserver.CartHTTP{Svc: cartSvc, Catalog: provider},
		OrderHandler:   &httpserver.OrderHTTP{Svc: orderSvc, Repo: orderRepo, Sessions: sessions},
		JWTSecret:      []byte(cfg.JWTSecret),
	})

	srv := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		logger.Info("server starting", "addr", cfg.HTTPAddr, "store", cfg.StoreDriver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if err := pub.Close(); err != nil {
		logger.Error("producer close error", "error", err)
	}
	if closeStore != nil {
		if err := closeStore(); err != nil {
			logger.Error("store close error", "error", err)
		}
	}
}

func openStore(cfg *config.Config) (kvstore.Store, func() error, error) {
	switch cfg.StoreDriver {
	case "memory":
		return kvstore.NewMemory(), nil, nil
	case "sqlite":
		s, err := kvstore.NewSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case "postgres":
		s, err := kvstore.NewPostgres(cfg.PostgresDSN())
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case "redis":
		s, err := kvstore.NewRedis(cfg.RedisURL)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}
}
