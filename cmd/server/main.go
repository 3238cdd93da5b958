package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"github.com/Yvaloski/MyDeskApp/internal/config"
	"github.com/Yvaloski/MyDeskApp/internal/handler"
	"github.com/Yvaloski/MyDeskApp/internal/middleware"
	"github.com/Yvaloski/MyDeskApp/internal/mimetypes"
	"github.com/Yvaloski/MyDeskApp/internal/repository/postgres"
	"github.com/Yvaloski/MyDeskApp/internal/service/desktop"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Setup structured logging (debug defaults on outside prod)
	logLevel := slog.LevelInfo
	if cfg.Debug {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
	)

	// Create pgx connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected")

	// Ensure the partitioned items table exists (idempotent)
	tables := postgres.NewTableNames(cfg.TablePrefix)
	if err := postgres.EnsureSchema(ctx, pool, tables); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	// Create the item store
	store := postgres.NewItemStore(&postgres.StoreConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	})

	// Load the embedded MIME registry
	mimeRegistry, err := mimetypes.NewRegistry()
	if err != nil {
		log.Fatalf("Failed to load MIME registry: %v", err)
	}

	// Create services and handlers
	itemService := desktop.NewItemService(store, mimeRegistry, logger)
	itemHandler := handler.NewItemHandler(itemService, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", itemHandler.HealthCheck)

	// Item routes
	mux.HandleFunc("GET /items", itemHandler.ListItems)
	mux.HandleFunc("GET /items/directory", itemHandler.GetDirectory)
	mux.HandleFunc("GET /items/directory/{parentId}", itemHandler.GetDirectory)
	mux.HandleFunc("GET /items/files/{fileId}/download", itemHandler.DownloadFile)
	mux.HandleFunc("GET /items/{id}", itemHandler.GetItem)
	mux.HandleFunc("POST /items/folders", itemHandler.CreateFolder)
	mux.HandleFunc("POST /items/files/create", itemHandler.CreateFile)
	mux.HandleFunc("POST /items/files", itemHandler.UploadFile)
	mux.HandleFunc("PATCH /items/{id}/position", itemHandler.UpdatePosition)
	mux.HandleFunc("PATCH /items/{id}/rename", itemHandler.RenameItem)
	mux.HandleFunc("PATCH /items/{id}/move", itemHandler.MoveItem)
	mux.HandleFunc("DELETE /items/{id}", itemHandler.DeleteItem)

	// Build middleware chain
	var root http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → Recovery → RequestLogger → Routes
	root = middleware.RequestLogger(logger)(root)
	root = middleware.Recovery(logger)(root)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	root = corsHandler.Handler(root)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      root,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	logger.Info("listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
