package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/Yvaloski/MyDeskApp/internal/config"
	desktopSvc "github.com/Yvaloski/MyDeskApp/internal/domain/services/desktop"
	"github.com/Yvaloski/MyDeskApp/internal/mimetypes"
	"github.com/Yvaloski/MyDeskApp/internal/repository/postgres"
	"github.com/Yvaloski/MyDeskApp/internal/service/desktop"
)

func main() {
	// Parse command-line flags
	schemaOnly := flag.Bool("schema-only", false, "Only set up schema, don't seed demo items")
	clearData := flag.Bool("clear-data", false, "Clear all items before seeding")
	flag.Parse()

	// Load .env file
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// SAFETY: Prevent destructive operations in production
	if cfg.Environment == "prod" && *clearData {
		log.Fatalf("BLOCKED: cannot run --clear-data in production environment")
	}

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Create database connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	tables := postgres.NewTableNames(cfg.TablePrefix)
	if err := postgres.EnsureSchema(ctx, pool, tables); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}
	logger.Info("schema ready", "table", tables.Items, "environment", cfg.Environment)

	if *clearData {
		if err := postgres.ClearItems(ctx, pool, tables); err != nil {
			log.Fatalf("Failed to clear items: %v", err)
		}
		logger.Info("items cleared")
	}

	if *schemaOnly {
		return
	}

	store := postgres.NewItemStore(&postgres.StoreConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	})

	mimeRegistry, err := mimetypes.NewRegistry()
	if err != nil {
		log.Fatalf("Failed to load MIME registry: %v", err)
	}

	items := desktop.NewItemService(store, mimeRegistry, logger)

	if err := seedDemoDesktop(ctx, items); err != nil {
		log.Fatalf("Failed to seed demo desktop: %v", err)
	}
	logger.Info("demo desktop seeded")
}

// seedDemoDesktop creates a small sample tree: two desktop folders with
// a nested folder and a couple of files, plus a root-level readme.
func seedDemoDesktop(ctx context.Context, items desktopSvc.ItemService) error {
	docs, err := items.CreateFolder(ctx, &desktopSvc.CreateFolderRequest{Name: "Documents", X: 40, Y: 40})
	if err != nil {
		return err
	}

	pictures, err := items.CreateFolder(ctx, &desktopSvc.CreateFolderRequest{Name: "Pictures", X: 40, Y: 160})
	if err != nil {
		return err
	}

	notes, err := items.CreateFolder(ctx, &desktopSvc.CreateFolderRequest{Name: "Notes", ParentID: &docs.ID})
	if err != nil {
		return err
	}

	files := []struct {
		name    string
		parent  *string
		content string
		x, y    float64
	}{
		{name: "readme.txt", parent: nil, content: "Welcome to your desktop.\n", x: 160, y: 40},
		{name: "todo.md", parent: &notes.ID, content: "- [ ] try drag and drop\n"},
		{name: "vacation.txt", parent: &pictures.ID, content: "photo list placeholder\n"},
	}

	for _, f := range files {
		req := &desktopSvc.CreateFileRequest{
			Name:     f.name,
			ParentID: f.parent,
			Content:  []byte(f.content),
			X:        f.x,
			Y:        f.y,
		}
		if _, err := items.CreateFile(ctx, req); err != nil {
			return err
		}
	}

	return nil
}
