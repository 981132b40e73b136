// internal/app/invoice_service.go
package app

import (
	"context"
	"fmt"
	"time"

	"rent_notification_bot/internal/domain/billing"
	"rent_notification_bot/internal/domain/contract"
	"rent_notification_bot/internal/domain/invoicejob"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// InvoiceCheckService runs the daily due-date sweep over the Contracts sheet.
type InvoiceCheckService interface {
	// RunDailyCheck reads the contract rows, classifies every tenant against
	// today's date, and enqueues a single downstream invoice job when at
	// least one tenant is due soon. A returned error is fatal for the run:
	// no partial results are produced.
	RunDailyCheck(ctx context.Context) error
}

// InvoiceCheckServiceImpl implements the InvoiceCheckService interface.
type InvoiceCheckServiceImpl struct {
	contractRepo contract.Repository
	jobRepo      invoicejob.Repository
	logger       *logrus.Entry
}

func NewInvoiceCheckService(
	cr contract.Repository,
	jr invoicejob.Repository,
	logger *logrus.Entry,
) *InvoiceCheckServiceImpl {
	return &InvoiceCheckServiceImpl{
		contractRepo: cr,
		jobRepo:      jr,
		logger:       logger,
	}
}

func (s *InvoiceCheckServiceImpl) RunDailyCheck(ctx context.Context) error {
	today := billing.DateOnly(time.Now())
	s.logger.WithField("date", today.Format("2006-01-02")).Info("Reading Contracts from workbook")

	records, err := s.contractRepo.ListContracts(ctx)
	if err != nil {
		return fmt.Errorf("failed to load contract records: %w", err)
	}
	if len(records) == 0 {
		s.logger.Info("No data in Contracts sheet. Done.")
		return nil
	}
	s.logger.Infof("Found %d tenant(s) in workbook", len(records))

	assessments := billing.Classify(records, today)
	s.logAssessments(assessments)

	if !billing.AnyDueSoon(assessments) {
		s.logger.Info("No invoices due soon. Done.")
		return nil
	}
	s.logger.Infof("%d tenant(s) due soon — enqueuing invoice job", billing.CountDueSoon(assessments))

	// One job for the whole batch. The downstream worker re-derives the
	// due-soon set itself rather than receiving it in the payload.
	job := &invoicejob.Job{
		ID:     uuid.New(),
		Task:   invoicejob.TaskDescription,
		Status: invoicejob.StatusPending,
	}
	if err := s.jobRepo.Enqueue(ctx, job); err != nil {
		return fmt.Errorf("failed to enqueue invoice job: %w", err)
	}
	s.logger.WithField("job_id", job.ID).Info("Invoice job enqueued")
	return nil
}

// logAssessments emits one line per tenant for operator visibility. The
// lines carry no control-flow significance.
func (s *InvoiceCheckServiceImpl) logAssessments(assessments []billing.Assessment) {
	for _, a := range assessments {
		logCtx := s.logger.WithField("tenant", a.TenantName).WithField("property_id", a.PropertyID)
		switch a.Status {
		case billing.StatusSkipped:
			logCtx.Infof("%s: %s, skipping", a.TenantName, a.SkipReason)
		case billing.StatusDueSoon:
			logCtx.Infof("%s: due %s (%d days away) — INVOICE NEEDED",
				a.TenantName, a.NextDue.Format("2006-01-02"), a.DaysAway)
		default:
			logCtx.Infof("%s: next due %s (%d days away)",
				a.TenantName, a.NextDue.Format("2006-01-02"), a.DaysAway)
		}
	}
}
