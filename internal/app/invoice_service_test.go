package app

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"rent_notification_bot/internal/domain/contract"
	"rent_notification_bot/internal/domain/invoicejob"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeContractRepo struct {
	records []contract.Record
	err     error
}

func (f *fakeContractRepo) ListContracts(_ context.Context) ([]contract.Record, error) {
	return f.records, f.err
}

type fakeJobRepo struct {
	enqueued []*invoicejob.Job
}

func (f *fakeJobRepo) Enqueue(_ context.Context, j *invoicejob.Job) error {
	f.enqueued = append(f.enqueued, j)
	return nil
}

func (f *fakeJobRepo) GetByID(_ context.Context, _ uuid.UUID) (*invoicejob.Job, error) {
	return nil, fmt.Errorf("not implemented")
}

func (f *fakeJobRepo) ListPending(_ context.Context) ([]*invoicejob.Job, error) {
	return f.enqueued, nil
}

func (f *fakeJobRepo) MarkPickedUp(_ context.Context, _ uuid.UUID) error {
	return nil
}

func testLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}

func dueSoonRecord() contract.Record {
	// 25 days into a 4-week cycle: next due in 3 days, inside the default
	// notification window.
	start := time.Now().AddDate(0, 0, -25)
	return contract.Record{
		PropertyID:    "Gunter_1",
		TenantName:    "Jane Doe",
		ContactEmail:  "jane@example.com",
		BillingCycle:  contract.CycleFourWeek,
		Active:        true,
		ContractStart: &start,
		NotifyDays:    contract.DefaultNotifyDays,
	}
}

func notYetDueRecord() contract.Record {
	// 10 days into a 4-week cycle: next due in 18 days.
	start := time.Now().AddDate(0, 0, -10)
	return contract.Record{
		PropertyID:    "Celina",
		TenantName:    "Bob",
		ContactEmail:  "bob@example.com",
		BillingCycle:  contract.CycleFourWeek,
		Active:        true,
		ContractStart: &start,
		NotifyDays:    contract.DefaultNotifyDays,
	}
}

func TestRunDailyCheckEnqueuesOneJobForBatch(t *testing.T) {
	jobs := &fakeJobRepo{}
	svc := NewInvoiceCheckService(
		&fakeContractRepo{records: []contract.Record{dueSoonRecord(), dueSoonRecord(), notYetDueRecord()}},
		jobs,
		testLogger(),
	)

	err := svc.RunDailyCheck(context.Background())
	require.NoError(t, err)

	// Two tenants due soon, still exactly one job for the whole batch.
	require.Len(t, jobs.enqueued, 1)
	job := jobs.enqueued[0]
	assert.Equal(t, invoicejob.TaskDescription, job.Task)
	assert.Equal(t, invoicejob.StatusPending, job.Status)
	assert.NotEqual(t, uuid.Nil, job.ID)
}

func TestRunDailyCheckNoJobWhenNothingDue(t *testing.T) {
	jobs := &fakeJobRepo{}
	svc := NewInvoiceCheckService(
		&fakeContractRepo{records: []contract.Record{notYetDueRecord()}},
		jobs,
		testLogger(),
	)

	require.NoError(t, svc.RunDailyCheck(context.Background()))
	assert.Empty(t, jobs.enqueued)
}

func TestRunDailyCheckNoJobWhenSheetEmpty(t *testing.T) {
	jobs := &fakeJobRepo{}
	svc := NewInvoiceCheckService(&fakeContractRepo{}, jobs, testLogger())

	require.NoError(t, svc.RunDailyCheck(context.Background()))
	assert.Empty(t, jobs.enqueued)
}

func TestRunDailyCheckPropagatesStoreError(t *testing.T) {
	jobs := &fakeJobRepo{}
	svc := NewInvoiceCheckService(
		&fakeContractRepo{err: fmt.Errorf("required column missing")},
		jobs,
		testLogger(),
	)

	err := svc.RunDailyCheck(context.Background())
	require.Error(t, err)
	// Fatal input errors abort the whole run with no partial output.
	assert.Empty(t, jobs.enqueued)
}

func TestRunDailyCheckSkippedTenantsDoNotTrigger(t *testing.T) {
	inactive := dueSoonRecord()
	inactive.Active = false
	noEmail := dueSoonRecord()
	noEmail.ContactEmail = ""
	passThrough := dueSoonRecord()
	passThrough.BillingCycle = contract.CyclePassThrough

	jobs := &fakeJobRepo{}
	svc := NewInvoiceCheckService(
		&fakeContractRepo{records: []contract.Record{inactive, noEmail, passThrough}},
		jobs,
		testLogger(),
	)

	require.NoError(t, svc.RunDailyCheck(context.Background()))
	assert.Empty(t, jobs.enqueued)
}
