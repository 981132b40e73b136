package msgraph

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"rent_notification_bot/internal/domain/billing"
	"rent_notification_bot/internal/domain/contract"
)

// Custom errors
var ErrMissingColumn = fmt.Errorf("required column missing from Contracts sheet")

// requiredColumns must all be present in the header row; a missing one is a
// configuration error that aborts the run.
var requiredColumns = []string{"Property_ID", "Tenant_Name", "Contact_Email", "Billing_Cycle", "Active"}

// WorkbookReader is the slice of the Graph client the repository needs.
type WorkbookReader interface {
	UsedRange(ctx context.Context, sheet string) ([][]any, error)
}

// ContractRepository reads contract records from the Contracts worksheet.
// The header row maps column names to positions, so column order in the
// workbook is free to change.
type ContractRepository struct {
	workbook WorkbookReader
	sheet    string
	loc      *time.Location
}

func NewContractRepository(workbook WorkbookReader, sheet string, loc *time.Location) *ContractRepository {
	if loc == nil {
		loc = time.Local
	}
	return &ContractRepository{workbook: workbook, sheet: sheet, loc: loc}
}

func (r *ContractRepository) ListContracts(ctx context.Context) ([]contract.Record, error) {
	rows, err := r.workbook.UsedRange(ctx, r.sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s sheet: %w", r.sheet, err)
	}
	if len(rows) < 2 {
		return []contract.Record{}, nil
	}

	col := headerIndex(rows[0])
	for _, name := range requiredColumns {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}

	records := make([]contract.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, r.recordFromRow(row, col))
	}
	return records, nil
}

func (r *ContractRepository) recordFromRow(row []any, col map[string]int) contract.Record {
	rec := contract.Record{
		PropertyID:   cellString(cellAt(row, col, "Property_ID")),
		TenantName:   cellString(cellAt(row, col, "Tenant_Name")),
		ContactEmail: cellString(cellAt(row, col, "Contact_Email")),
		BillingCycle: contract.BillingCycle(cellString(cellAt(row, col, "Billing_Cycle"))),
		Active:       contract.ParseActive(cellAt(row, col, "Active")),
		NotifyDays:   contract.ParseNotifyDays(cellAt(row, col, "Notify_Days")),
	}
	if start, ok := billing.CellToDate(cellAt(row, col, "Contract_Start"), r.loc); ok {
		rec.ContractStart = &start
	}
	if end, ok := billing.CellToDate(cellAt(row, col, "Contract_End"), r.loc); ok {
		rec.ContractEnd = &end
	}
	return rec
}

func headerIndex(header []any) map[string]int {
	col := make(map[string]int, len(header))
	for i, h := range header {
		name := cellString(h)
		if name != "" {
			col[name] = i
		}
	}
	return col
}

// cellAt returns the raw cell for a named column, or nil when the column is
// absent or the row is ragged.
func cellAt(row []any, col map[string]int, name string) any {
	idx, ok := col[name]
	if !ok || idx >= len(row) {
		return nil
	}
	return row[idx]
}

func cellString(cell any) string {
	switch v := cell.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		if v {
			return "true"
		}
		return "false"
	}
	return ""
}
