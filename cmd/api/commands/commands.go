package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/spf13/cobra"

	"github.com/gospelarchive/core/internal/adapters/repository"
	"github.com/gospelarchive/core/internal/domain/entities"
	"github.com/gospelarchive/core/internal/infrastructure/config"
	"github.com/gospelarchive/core/internal/infrastructure/logger"
	"github.com/gospelarchive/core/internal/infrastructure/server"
	"github.com/gospelarchive/core/internal/infrastructure/storage"
	"github.com/gospelarchive/core/internal/ports"
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the Gospel Archive API server",
		Long:  "Start the Gospel Archive API server with all configured routes and middleware",
		Run: func(cmd *cobra.Command, args []string) {
			runServer()
		},
	}
}

// NewMigrateCommand creates the migrate command with subcommands
func NewMigrateCommand() *cobra.Command {
	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration commands",
		Long:  "Manage document table migrations for the postgres storage driver (up, down, version)",
	}

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Run all up migrations",
		Run: func(cmd *cobra.Command, args []string) {
			runMigration("up")
		},
	})

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Run all down migrations",
		Run: func(cmd *cobra.Command, args []string) {
			runMigration("down")
		},
	})

	migrateCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print current migration version",
		Run: func(cmd *cobra.Command, args []string) {
			showMigrationVersion()
		},
	})

	return migrateCmd
}

// NewContentCommand creates the content management command
func NewContentCommand() *cobra.Command {
	contentCmd := &cobra.Command{
		Use:   "content",
		Short: "Document management commands",
		Long:  "Seed and export the persisted site documents",
	}

	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Write the built-in default documents to storage",
		Run: func(cmd *cobra.Command, args []string) {
			force, _ := cmd.Flags().GetBool("force")
			seedContent(force)
		},
	}
	seedCmd.Flags().Bool("force", false, "Overwrite documents that already exist")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Print the stored documents as JSON",
		Run: func(cmd *cobra.Command, args []string) {
			exportContent()
		},
	}

	contentCmd.AddCommand(seedCmd)
	contentCmd.AddCommand(exportCmd)
	return contentCmd
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print Gospel Archive version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Gospel Archive v1.0.0")
		},
	}
}

func runServer() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	store, err := storage.New(cfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize storage", "error", err)
	}
	defer store.Close()

	srv, err := server.New(cfg, store, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize server", "error", err)
	}

	appLogger.Info("Starting Gospel Archive API server",
		"port", cfg.Server.Port,
		"storage_driver", cfg.Storage.Driver,
		"environment", cfg.App.Environment,
	)

	go func() {
		if err := srv.Start(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
			appLogger.Info("Server stopped", "reason", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Graceful shutdown failed", "error", err)
	}
}

func runMigration(direction string) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Storage.Driver != "postgres" {
		log.Fatalf("Migrations only apply to the postgres storage driver (current: %s)", cfg.Storage.Driver)
	}

	store, err := storage.NewPostgres(cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer store.Close()

	driver, err := postgres.WithInstance(store.DB().DB, &postgres.Config{})
	if err != nil {
		log.Fatalf("Failed to create migration driver: %v", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		"file://migrations",
		"postgres",
		driver,
	)
	if err != nil {
		log.Fatalf("Failed to create migration instance: %v", err)
	}

	switch direction {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	}

	if err != nil && err != migrate.ErrNoChange {
		log.Fatalf("Migration failed: %v", err)
	}

	if err == migrate.ErrNoChange {
		fmt.Println("No migrations to run")
	} else {
		fmt.Printf("Migration %s completed successfully\n", direction)
	}
}

func showMigrationVersion() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Storage.Driver != "postgres" {
		log.Fatalf("Migrations only apply to the postgres storage driver (current: %s)", cfg.Storage.Driver)
	}

	store, err := storage.NewPostgres(cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer store.Close()

	driver, err := postgres.WithInstance(store.DB().DB, &postgres.Config{})
	if err != nil {
		log.Fatalf("Failed to create migration driver: %v", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		log.Fatalf("Failed to create migration instance: %v", err)
	}

	version, dirty, err := m.Version()
	if err != nil && err != migrate.ErrNilVersion {
		log.Fatalf("Failed to read migration version: %v", err)
	}

	fmt.Printf("Version: %d, Dirty: %t\n", version, dirty)
}

func seedContent(force bool) {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	store, err := storage.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	repo := repository.NewDocumentRepository(store, appLogger)

	// Loads fall back to defaults, so probe the raw key to detect existing data.
	if !force {
		if _, err := store.Get(ctx, ports.SiteContentKey); err == nil {
			log.Fatal("Documents already exist; use --force to overwrite")
		}
	}

	if err := repo.SaveSiteContent(ctx, entities.DefaultSiteContent()); err != nil {
		log.Fatalf("Failed to seed site content: %v", err)
	}
	if err := repo.SavePosts(ctx, entities.DefaultPosts()); err != nil {
		log.Fatalf("Failed to seed posts: %v", err)
	}

	fmt.Println("Seeded default documents")
}

func exportContent() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer appLogger.Sync()

	store, err := storage.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	repo := repository.NewDocumentRepository(store, appLogger)

	export := map[string]interface{}{
		"siteContent": repo.LoadSiteContent(ctx),
		"sitePosts":   repo.LoadPosts(ctx),
	}

	out, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode documents: %v", err)
	}

	fmt.Println(string(out))
}
