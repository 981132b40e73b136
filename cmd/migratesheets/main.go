// Command migratesheets is a one-time migration that restructures the rent
// workbook: it creates a Properties sheet and remaps the Contracts sheet to
// the wider A-R layout. Run once by hand, then disable.
package main

import (
	"context"
	"fmt"
	"os"

	"rent_notification_bot/internal/infra/config"
	"rent_notification_bot/internal/infra/msgraph"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var propertiesHeaders = []any{
	"Property_ID", "Property_Type", "Address", "City", "State", "ZIP", "Broker", "Notes",
}

var propertiesRows = [][]any{
	{"Board_304L", "billboard", "US 75 Northbound", "Sherman", "TX", "", "Reiss", ""},
	{"Board_304R", "billboard", "US 75 Northbound", "Sherman", "TX", "", "Reiss", ""},
	{"Board_305L", "billboard", "US 75 Southbound", "Sherman", "TX", "", "Reiss", ""},
	{"Board_305R", "billboard", "US 75 Southbound", "Sherman", "TX", "", "Reiss", ""},
	{"Board_TomBean", "billboard", "7816 W Highway 11", "Tom Bean", "TX", "75489", "", ""},
	{"Gunter_1", "rent_house", "105 N 5th St", "Gunter", "TX", "75058", "", ""},
	{"Leonard_1", "apartment", "", "Leonard", "TX", "", "", "Apartment"},
	{"WolfeCity_1", "rent_house", "", "Wolfe City", "TX", "", "", "Electric utility tracked"},
	{"WolfeCity_2", "rent_house", "", "Wolfe City", "TX", "", "", ""},
	{"TomBean_1", "nnn_lease", "", "Tom Bean", "TX", "", "", "Utility pass-through only"},
	{"Gainesville_1", "rent_house", "", "Gainesville", "TX", "", "", ""},
	{"Celina", "rent_house", "", "Celina", "TX", "", "", "Month-to-month"},
}

var newContractsHeaders = []any{
	"Property_ID", "Tenant_Name", "Contact_Name", "Contact_Email", "Contact_Phone",
	"Mailing_Address", "Mailing_City", "Mailing_State", "Mailing_ZIP",
	"Monthly_Rent", "Billing_Cycle", "Contract_Start", "Contract_End",
	"Active", "Notify_Days", "Vinyl_Required", "Vinyl_Contact", "Notes",
}

// columnRemap maps old Contracts column index -> new column index.
// Old B (Property_Type) is dropped: it moved to the Properties sheet.
var columnRemap = map[int]int{
	0:  0,  // Property_ID
	2:  1,  // Tenant_Name
	12: 3,  // Email -> Contact_Email
	3:  9,  // Monthly_Rent
	4:  10, // Billing_Cycle
	5:  11, // Contract_Start
	6:  12, // Contract_End
	7:  13, // Active
	8:  14, // Notify_Days
	9:  15, // Vinyl_Required
	10: 16, // Vinyl_Contact
	11: 17, // Notes
}

const oldColumnCount = 13 // A-M

func main() {
	_ = godotenv.Load()
	log := logrus.New()

	clientID := os.Getenv("AZURE_CLIENT_ID")
	tenantID := os.Getenv("AZURE_TENANT_ID")
	refreshToken := os.Getenv("AZURE_REFRESH_TOKEN")
	if clientID == "" || tenantID == "" || refreshToken == "" {
		log.Fatal("Missing Azure credentials. Need AZURE_CLIENT_ID, AZURE_TENANT_ID, AZURE_REFRESH_TOKEN")
	}
	filePath := os.Getenv("ONEDRIVE_FILE_PATH")
	if filePath == "" {
		filePath = config.DefaultWorkbookPath
	}

	ctx := context.Background()
	client := msgraph.NewClient(ctx, clientID, tenantID, refreshToken, filePath)

	if err := migrate(ctx, client, log); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Info("Migration complete.")
}

func migrate(ctx context.Context, client *msgraph.Client, log *logrus.Logger) error {
	// 1. Read the old Contracts layout before touching anything.
	oldRows, err := client.UsedRange(ctx, "Contracts")
	if err != nil {
		return fmt.Errorf("failed to read Contracts sheet: %w", err)
	}
	if len(oldRows) == 0 {
		return fmt.Errorf("contracts sheet is empty, nothing to migrate")
	}

	// 2. Create the Properties sheet and fill it in.
	if err := client.AddSheet(ctx, "Properties"); err != nil {
		// Likely already exists from an earlier attempt; keep going.
		log.Warnf("Could not add Properties sheet (may already exist): %v", err)
	}
	propValues := append([][]any{propertiesHeaders}, propertiesRows...)
	propRange := fmt.Sprintf("A1:%s%d", columnLetter(len(propertiesHeaders)), len(propValues))
	if err := client.UpdateRange(ctx, "Properties", propRange, propValues); err != nil {
		return fmt.Errorf("failed to write Properties sheet: %w", err)
	}
	log.Infof("Properties sheet written (%d rows).", len(propertiesRows))

	// 3. Remap Contracts data rows into the new A-R layout.
	newValues := [][]any{newContractsHeaders}
	for _, oldRow := range oldRows[1:] {
		newRow := make([]any, len(newContractsHeaders))
		for i := range newRow {
			newRow[i] = ""
		}
		for oldIdx, newIdx := range columnRemap {
			if oldIdx < len(oldRow) && oldRow[oldIdx] != nil {
				newRow[newIdx] = oldRow[oldIdx]
			}
		}
		newValues = append(newValues, newRow)
	}

	// 4. Clear the old extent, then write the new layout.
	clearRange := fmt.Sprintf("A1:%s%d", columnLetter(oldColumnCount), len(oldRows))
	if err := client.ClearRange(ctx, "Contracts", clearRange); err != nil {
		return fmt.Errorf("failed to clear old Contracts layout: %w", err)
	}
	writeRange := fmt.Sprintf("A1:%s%d", columnLetter(len(newContractsHeaders)), len(newValues))
	if err := client.UpdateRange(ctx, "Contracts", writeRange, newValues); err != nil {
		return fmt.Errorf("failed to write new Contracts layout: %w", err)
	}
	log.Infof("Contracts sheet restructured (%d data rows).", len(newValues)-1)
	return nil
}

// columnLetter converts a 1-based column number to its letter (A-Z range is
// plenty for both layouts).
func columnLetter(n int) string {
	return string(rune('A' + n - 1))
}
