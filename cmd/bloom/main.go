package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/bloomwell/bloom/internal/api"
	"github.com/bloomwell/bloom/internal/config"
	"github.com/bloomwell/bloom/internal/db"
	"github.com/bloomwell/bloom/internal/demo"
	"github.com/bloomwell/bloom/internal/insight"
	"github.com/bloomwell/bloom/internal/store"
)

func main() {
	configPath := flag.String("config", config.DefaultConfigPath, "path to the YAML config file")
	seedDemo := flag.Bool("seed-demo", false, "populate an empty database with demo records")
	demoSeed := flag.Int64("demo-seed", 1, "seed for the demo record generator")
	flag.Parse()

	if err := run(*configPath, *seedDemo, *demoSeed); err != nil {
		log.Fatal(err)
	}
}

func run(configPath string, seedDemo bool, demoSeed int64) error {
	cfg, err := config.LoadFromFile(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	location := mustLoadLocation(cfg.Timezone)

	database, err := db.OpenSQLite(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	recordStore := store.NewStore(db.NewBlobRepository(database))
	if err := recordStore.SeedDefaultResources(); err != nil {
		return fmt.Errorf("seeding resources: %w", err)
	}
	if seedDemo {
		if err := demo.Seed(recordStore, demoSeed, time.Now().In(location)); err != nil {
			return fmt.Errorf("seeding demo data: %w", err)
		}
		log.Printf("demo data seeded (seed %d)", demoSeed)
	}

	insights := insight.NewClient(cfg.Insights.APIKey, cfg.Insights.Model)
	if !insights.Enabled() {
		log.Println("insights running in offline mode, set OPENAI_API_KEY to enable the assistant")
	}

	handler := api.NewHandler(recordStore, insights, location)

	app := fiber.New(fiber.Config{
		AppName:               "Bloom",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	port := strconv.Itoa(cfg.Server.Port)
	log.Printf("Bloom listening on http://0.0.0.0:%s (db: %s, tz: %s)", port, cfg.Database.Path, location.String())
	if err := app.Listen(":" + port); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	return nil
}

func mustLoadLocation(name string) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("invalid timezone %q, falling back to UTC", name)
		return time.UTC
	}
	return location
}
