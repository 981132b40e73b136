package scheduler

import (
	"context"
	"time"

	"rent_notification_bot/internal/app"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// RentScheduler wires the two daily checks onto cron schedules: the invoice
// due-date sweep and the credential expiry check.
type RentScheduler struct {
	cronEngine           *cron.Cron
	invoiceService       app.InvoiceCheckService
	credentialService    app.CredentialCheckService
	logger               *logrus.Entry
	cronSpecInvoiceCheck string
	cronSpecTokenCheck   string
}

func NewRentScheduler(
	invoiceService app.InvoiceCheckService,
	credentialService app.CredentialCheckService,
	logger *logrus.Entry,
	cronSpecInvoiceCheck string, // e.g., "0 8 * * *" (8:00 AM daily)
	cronSpecTokenCheck string, // e.g., "30 8 * * *" (8:30 AM daily)
) *RentScheduler {
	return &RentScheduler{
		cronEngine:           cron.New(cron.WithLocation(time.Local)), // Use server's local time for cron
		invoiceService:       invoiceService,
		credentialService:    credentialService,
		logger:               logger,
		cronSpecInvoiceCheck: cronSpecInvoiceCheck,
		cronSpecTokenCheck:   cronSpecTokenCheck,
	}
}

func (s *RentScheduler) Start() {
	s.logger.Info("Starting rent scheduler...")

	// Daily invoice due-date check
	_, err := s.cronEngine.AddFunc(s.cronSpecInvoiceCheck, func() {
		s.logger.Info("Cron job triggered for daily invoice check.")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		if err := s.invoiceService.RunDailyCheck(ctx); err != nil {
			s.logger.WithError(err).Error("Error during daily invoice check")
		}
	})
	if err != nil {
		s.logger.Fatalf("FATAL: Could not add invoice check cron job: %v", err)
	}

	// Daily credential expiry check
	_, err = s.cronEngine.AddFunc(s.cronSpecTokenCheck, func() {
		s.logger.Info("Cron job triggered for token expiry check.")
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		if err := s.credentialService.RunExpiryCheck(ctx); err != nil {
			s.logger.WithError(err).Error("Error during token expiry check")
		}
	})
	if err != nil {
		s.logger.Fatalf("FATAL: Could not add token expiry cron job: %v", err)
	}

	s.cronEngine.Start()
	s.logger.Info("Rent scheduler started with jobs.")
}

func (s *RentScheduler) Stop() {
	s.logger.Info("Stopping rent scheduler...")
	ctx := s.cronEngine.Stop() // Stops the scheduler from adding new jobs, waits for running jobs.
	<-ctx.Done()               // Wait for graceful shutdown
	s.logger.Info("Rent scheduler gracefully stopped.")
}
