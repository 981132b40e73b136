package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rent_notification_bot/internal/app"
	domainTelegram "rent_notification_bot/internal/domain/telegram"
	"rent_notification_bot/internal/infra/config"
	idb "rent_notification_bot/internal/infra/database"
	"rent_notification_bot/internal/infra/logger"
	"rent_notification_bot/internal/infra/msgraph"
	"rent_notification_bot/internal/infra/scheduler"
	itelegram "rent_notification_bot/internal/infra/telegram"

	"gopkg.in/telebot.v3"
)

func main() {
	fmt.Println("Rent Notification Bot starting...")

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "FATAL: Could not load application configuration: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg)
	mainLogger := logger.Log.WithField("component", "main")
	mainLogger.Infof("Configuration loaded. LogLevel: %s, Environment: %s, Workbook: %s",
		cfg.LogLevel, cfg.Environment, cfg.WorkbookPath)

	// Initialize Database Connection
	db, err := idb.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		mainLogger.Fatalf("FATAL: Could not connect to database: %v", err)
	}
	defer db.Close()
	mainLogger.Info("Database connection established successfully.")

	// Initialize Repositories
	jobRepo := idb.NewPostgresJobRepository(db)
	mainLogger.Info("Invoice job repository initialized.")

	graphClient := msgraph.NewClient(context.Background(),
		cfg.AzureClientID, cfg.AzureTenantID, cfg.AzureRefreshToken, cfg.WorkbookPath)
	contractRepo := msgraph.NewContractRepository(graphClient, cfg.ContractsSheet, time.Local)
	mainLogger.Info("Contract repository initialized.")

	// Initialize Telegram client (optional: expiry warnings fall back to logs)
	var telegramClient domainTelegram.Client
	if cfg.TelegramToken != "" {
		pref := telebot.Settings{Token: cfg.TelegramToken}
		bot, err := telebot.NewBot(pref)
		if err != nil {
			mainLogger.Fatalf("FATAL: Could not create Telegram bot: %v", err)
		}
		telegramClient = itelegram.NewTelebotAdapter(bot)
		mainLogger.Info("Telegram client initialized.")
	} else {
		mainLogger.Warn("TELEGRAM_BOT_TOKEN not set; expiry warnings will only be logged.")
	}

	// Initialize Services
	invoiceService := app.NewInvoiceCheckService(contractRepo, jobRepo,
		logger.Log.WithField("component", "invoice_check"))
	credentialService := app.NewCredentialCheckService(cfg.AzureTokenDate, telegramClient,
		cfg.TelegramChatID, logger.Log.WithField("component", "token_check"))
	mainLogger.Info("Application services initialized.")

	// Initialize Scheduler
	rentScheduler := scheduler.NewRentScheduler(
		invoiceService,
		credentialService,
		logger.Log.WithField("component", "scheduler"),
		cfg.CronSpecInvoiceCheck,
		cfg.CronSpecTokenCheck,
	)
	rentScheduler.Start()

	mainLogger.Info("Application setup complete. Scheduler is running.")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit // Block until a signal is received

	mainLogger.Info("Shutting down application...")
	rentScheduler.Stop()
	// db.Close() is handled by defer
	mainLogger.Info("Application shut down gracefully.")
}
