package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"github.com/Adewale-tech/telex-dictionary-agent/internal/a2a"
	"github.com/Adewale-tech/telex-dictionary-agent/internal/agent"
	"github.com/Adewale-tech/telex-dictionary-agent/internal/api"
	"github.com/Adewale-tech/telex-dictionary-agent/internal/auth"
	"github.com/Adewale-tech/telex-dictionary-agent/internal/cache"
	"github.com/Adewale-tech/telex-dictionary-agent/internal/config"
	"github.com/Adewale-tech/telex-dictionary-agent/internal/dictionary"
	"github.com/Adewale-tech/telex-dictionary-agent/internal/logging"
	"github.com/Adewale-tech/telex-dictionary-agent/internal/mcp"
	"github.com/Adewale-tech/telex-dictionary-agent/internal/repository"
	tlsutil "github.com/Adewale-tech/telex-dictionary-agent/internal/tls"
	"github.com/Adewale-tech/telex-dictionary-agent/pkg/models"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the A2A webhook server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := logging.NewLogger(cfg.Log.Level)
	logger.Info("starting dictionary agent", "agent", cfg.Agent.Name, "version", Version)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	baseURL := cfg.Server.BaseURL
	if baseURL == "" {
		scheme := "http"
		if cfg.TLS.Enable {
			scheme = "https"
		}
		baseURL = fmt.Sprintf("%s://%s", scheme, addr)
	}

	// Lookup cache: Redis when configured, in-process otherwise.
	var store cache.Store
	if cfg.Cache.RedisAddr != "" {
		store, err = cache.NewRedisStore(cache.RedisOptions{
			Addr:     cfg.Cache.RedisAddr,
			Password: cfg.Cache.RedisPassword,
			DB:       cfg.Cache.RedisDB,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize Redis cache: %w", err)
		}
		logger.Info("Redis cache connected", "addr", cfg.Cache.RedisAddr)
	} else {
		store = cache.NewMemoryStore()
		logger.Info("using in-process lookup cache")
	}
	defer store.Close()

	// Dictionary client with read-through cache.
	var dict dictionary.Client = dictionary.NewHTTPClient(cfg.Dictionary.BaseURL, cfg.Dictionary.Timeout)
	dict = dictionary.NewCachedClient(dict, store, cfg.Cache.TTL)

	ag := agent.New(cfg.Agent.Name, dict, logger)

	// Lookup history: Postgres when enabled, otherwise discarded.
	var lookups repository.LookupStore = repository.NewNoopLookupStore()
	if cfg.DB.Enable {
		dbPool, err := initDatabase(ctx, cfg, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer dbPool.Close()
		lookups = repository.NewPostgresLookupStore(dbPool)
		logger.Info("lookup history database connected")
	}

	a2aHandler := a2a.NewHandler(ag, cfg.Agent.Version, lookups, logger)
	manifest := models.NewDictionaryManifest(cfg.Agent.Name, cfg.Agent.Description, cfg.Agent.Version, baseURL)
	apiHandler := api.NewHandler(a2aHandler, ag, lookups, manifest, Version, logger)

	authz, err := auth.New(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize auth: %w", err)
	}

	// Create Echo server
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(otelecho.Middleware("telex-dictionary-agent"))

	// Public agent surface
	e.GET("/", apiHandler.HandleRoot)
	e.GET("/health", apiHandler.HandleHealth)
	e.GET("/info", apiHandler.HandleInfo)
	e.GET("/.well-known/agent.json", apiHandler.HandleManifest)
	e.POST("/a2a/message", apiHandler.HandleA2AMessage)
	e.POST("/test", apiHandler.HandleTest)

	// History REST API, behind optional bearer auth
	apiGroup := e.Group("/api/v1")
	apiGroup.Use(echo.WrapMiddleware(authz.RequireAuth))
	apiGroup.GET("/lookups/recent", apiHandler.HandleRecentLookups)
	apiGroup.GET("/lookups/popular", apiHandler.HandlePopularLookups)

	// MCP tool surface
	mcpServer := mcp.NewServer(cfg.Agent.Name, cfg.Agent.Version, dict)
	mcpHandlers := http.NewServeMux()
	mcp.MountHTTPHandlers(mcpHandlers, mcpServer.GetMCPServer())
	e.Any("/mcp", echo.WrapHandler(mcpHandlers))
	e.Any("/mcp/*", echo.WrapHandler(mcpHandlers))

	logger.Info("handlers mounted", "webhook", "/a2a/message", "manifest", "/.well-known/agent.json")

	server := &http.Server{
		Addr:         addr,
		Handler:      e,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown handling
	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("server starting", "address", addr, "tls", cfg.TLS.Enable)
		if cfg.TLS.Enable {
			if cfg.TLS.CertFile == "" || cfg.TLS.KeyFile == "" {
				serverErrors <- fmt.Errorf("TLS enabled but cert/key file not provided")
				return
			}
			if _, err := os.Stat(cfg.TLS.CertFile); os.IsNotExist(err) {
				if len(cfg.TLS.Hostnames) > 0 {
					if err := tlsutil.GenerateSelfSignedCert(cfg.TLS.CertFile, cfg.TLS.KeyFile, cfg.TLS.Hostnames); err != nil {
						logger.Error("failed to generate self-signed cert", "error", err)
					}
				}
			}
			serverErrors <- server.ListenAndServeTLS(cfg.TLS.CertFile, cfg.TLS.KeyFile)
		} else {
			serverErrors <- server.ListenAndServe()
		}
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
	case sig := <-shutdown:
		logger.Info("shutdown signal received", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server shutdown error", "error", err)
			if err := server.Close(); err != nil {
				logger.Error("server close error", "error", err)
			}
		}

		logger.Info("server stopped gracefully")
	}

	return nil
}

func initDatabase(ctx context.Context, cfg *config.Config, logger *logging.Logger) (*pgxpool.Pool, error) {
	logger.Debug("initializing database connection")

	connStr := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.DB.Host, cfg.DB.Port, cfg.DB.User, cfg.DB.Password, cfg.DB.Name, cfg.DB.SSLMode,
	)

	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}
