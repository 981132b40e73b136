package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// DefaultWorkbookPath is the OneDrive path of the rent workbook.
const DefaultWorkbookPath = "/TJM/Real Estate/TJM_RENT_v2.xlsx"

// AppConfig holds all configuration for the application
type AppConfig struct {
	DatabaseURL string

	AzureClientID     string
	AzureTenantID     string
	AzureRefreshToken string
	AzureTokenDate    string // issuance date of the refresh token (YYYY-MM-DD), optional

	WorkbookPath   string
	ContractsSheet string

	TelegramToken  string // optional; expiry warnings are logged when unset
	TelegramChatID int64

	LogLevel    string
	Environment string

	CronSpecInvoiceCheck string
	CronSpecTokenCheck   string
}

// Load reads configuration from environment variables and .env file (if present).
func Load() (*AppConfig, error) {
	// Attempt to load .env file. Errors are ignored if the file doesn't exist.
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	cfg.AzureClientID = os.Getenv("AZURE_CLIENT_ID")
	if cfg.AzureClientID == "" {
		return nil, fmt.Errorf("AZURE_CLIENT_ID is not set")
	}
	cfg.AzureTenantID = os.Getenv("AZURE_TENANT_ID")
	if cfg.AzureTenantID == "" {
		return nil, fmt.Errorf("AZURE_TENANT_ID is not set")
	}
	cfg.AzureRefreshToken = os.Getenv("AZURE_REFRESH_TOKEN")
	if cfg.AzureRefreshToken == "" {
		return nil, fmt.Errorf("AZURE_REFRESH_TOKEN is not set")
	}

	// Optional: when absent the expiry guard reports "not configured" and
	// performs no check.
	cfg.AzureTokenDate = os.Getenv("AZURE_TOKEN_DATE")

	cfg.WorkbookPath = os.Getenv("ONEDRIVE_FILE_PATH")
	if cfg.WorkbookPath == "" {
		cfg.WorkbookPath = DefaultWorkbookPath
	}
	cfg.ContractsSheet = os.Getenv("CONTRACTS_SHEET")
	if cfg.ContractsSheet == "" {
		cfg.ContractsSheet = "Contracts"
	}

	cfg.TelegramToken = os.Getenv("TELEGRAM_BOT_TOKEN")
	chatIDStr := os.Getenv("TELEGRAM_CHAT_ID")
	if chatIDStr != "" {
		var err error
		cfg.TelegramChatID, err = strconv.ParseInt(chatIDStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
		}
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info" // Default log level
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development" // Default environment
	}

	cfg.CronSpecInvoiceCheck = os.Getenv("CRON_SPEC_INVOICE_CHECK")
	if cfg.CronSpecInvoiceCheck == "" {
		cfg.CronSpecInvoiceCheck = "0 8 * * *" // Default: 8:00 AM daily
	}
	cfg.CronSpecTokenCheck = os.Getenv("CRON_SPEC_TOKEN_CHECK")
	if cfg.CronSpecTokenCheck == "" {
		cfg.CronSpecTokenCheck = "30 8 * * *" // Default: 8:30 AM daily
	}

	return cfg, nil
}
