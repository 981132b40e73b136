package msgraph

import (
	"context"
	"testing"
	"time"

	"rent_notification_bot/internal/domain/contract"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWorkbook struct {
	rows [][]any
	err  error
}

func (f *fakeWorkbook) UsedRange(_ context.Context, _ string) ([][]any, error) {
	return f.rows, f.err
}

func fullHeader() []any {
	return []any{"Property_ID", "Tenant_Name", "Contact_Email", "Billing_Cycle", "Active", "Contract_Start", "Contract_End", "Notify_Days"}
}

func TestListContractsMapsRows(t *testing.T) {
	wb := &fakeWorkbook{rows: [][]any{
		fullHeader(),
		{"Gunter_1", "Jane Doe", "jane@example.com", "4-week", "TRUE", float64(45658), "2026-12-31", float64(5)},
	}}
	repo := NewContractRepository(wb, "Contracts", time.UTC)

	records, err := repo.ListContracts(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "Gunter_1", rec.PropertyID)
	assert.Equal(t, "Jane Doe", rec.TenantName)
	assert.Equal(t, "jane@example.com", rec.ContactEmail)
	assert.Equal(t, contract.CycleFourWeek, rec.BillingCycle)
	assert.True(t, rec.Active)
	assert.Equal(t, 5, rec.NotifyDays)
	require.NotNil(t, rec.ContractStart)
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), *rec.ContractStart)
	require.NotNil(t, rec.ContractEnd)
	assert.Equal(t, time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC), *rec.ContractEnd)
}

func TestListContractsHeaderOrderIsFree(t *testing.T) {
	wb := &fakeWorkbook{rows: [][]any{
		{"Active", "Billing_Cycle", "Contact_Email", "Tenant_Name", "Property_ID"},
		{"true", "monthly", "bob@example.com", "Bob", "Celina"},
	}}
	repo := NewContractRepository(wb, "Contracts", time.UTC)

	records, err := repo.ListContracts(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Celina", records[0].PropertyID)
	assert.Equal(t, contract.CycleMonthly, records[0].BillingCycle)
	assert.True(t, records[0].Active)
}

func TestListContractsMissingRequiredColumn(t *testing.T) {
	wb := &fakeWorkbook{rows: [][]any{
		{"Property_ID", "Tenant_Name", "Contact_Email", "Billing_Cycle"}, // no Active
		{"Gunter_1", "Jane Doe", "jane@example.com", "monthly"},
	}}
	repo := NewContractRepository(wb, "Contracts", time.UTC)

	_, err := repo.ListContracts(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingColumn)
	assert.Contains(t, err.Error(), "Active")
}

func TestListContractsEmptySheet(t *testing.T) {
	for _, rows := range [][][]any{nil, {fullHeader()}} {
		wb := &fakeWorkbook{rows: rows}
		repo := NewContractRepository(wb, "Contracts", time.UTC)

		records, err := repo.ListContracts(context.Background())
		require.NoError(t, err)
		assert.Empty(t, records)
	}
}

func TestListContractsRaggedRowDefaults(t *testing.T) {
	// Rows shorter than the header behave as if the trailing cells were
	// absent: dates missing, notify days defaulted, inactive.
	wb := &fakeWorkbook{rows: [][]any{
		fullHeader(),
		{"WolfeCity_1", "Carol"},
	}}
	repo := NewContractRepository(wb, "Contracts", time.UTC)

	records, err := repo.ListContracts(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.False(t, rec.Active)
	assert.Empty(t, rec.ContactEmail)
	assert.Nil(t, rec.ContractStart)
	assert.Nil(t, rec.ContractEnd)
	assert.Equal(t, contract.DefaultNotifyDays, rec.NotifyDays)
}
