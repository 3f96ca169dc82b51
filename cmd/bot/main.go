package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/diegoclair/staff-desk-bot/internal/config"
	"github.com/diegoclair/staff-desk-bot/internal/database"
	"github.com/diegoclair/staff-desk-bot/internal/domain/service"
	"github.com/diegoclair/staff-desk-bot/internal/handlers"
	"github.com/diegoclair/staff-desk-bot/internal/messenger"
	"github.com/diegoclair/staff-desk-bot/internal/spreadsheet"
	"github.com/diegoclair/staff-desk-bot/migrator/sqlite"
	"github.com/joho/godotenv"
	"github.com/slack-go/slack"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Println("Running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	reports, err := spreadsheet.NewReports(cfg.ReportsDir)
	if err != nil {
		log.Fatalf("Failed to prepare reports directory: %v", err)
	}

	slackClient := slack.New(cfg.SlackBotToken)

	services := service.NewInstance(service.Options{
		DataManager:  database.NewInstance(db),
		Messenger:    messenger.New(slackClient),
		Directory:    spreadsheet.NewDirectory(cfg.StaffDirectoryPath),
		Catalog:      spreadsheet.NewCatalog(cfg.EquipmentCatalogPath),
		Reports:      reports,
		Location:     cfg.Location(),
		ReminderDay:  cfg.Weekday(),
		ReminderHour: cfg.ReminderHour,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go services.Bot.Run(ctx)

	services.Scheduler.Start()
	defer services.Scheduler.Stop()

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handlers.NewRouter(handlers.New(services.Bot, cfg.SlackSigningSecret)),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	shutdownCtx, stop := context.WithTimeout(context.Background(), 30*time.Second)
	defer stop()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped")
}
