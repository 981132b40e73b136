// Command graphsetup performs the one-time Microsoft Graph delegated auth
// setup via the device code flow. It prints the refresh token and issuance
// date to record as AZURE_REFRESH_TOKEN and AZURE_TOKEN_DATE.
//
// Prerequisite: the Azure app registration must have "Allow public client
// flows" enabled.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"rent_notification_bot/internal/infra/msgraph"

	"github.com/joho/godotenv"
	"golang.org/x/oauth2"
)

func main() {
	_ = godotenv.Load()

	clientID := os.Getenv("AZURE_CLIENT_ID")
	tenantID := os.Getenv("AZURE_TENANT_ID")
	if clientID == "" || tenantID == "" {
		fmt.Fprintln(os.Stderr, "Error: AZURE_CLIENT_ID and AZURE_TENANT_ID must be set.")
		fmt.Fprintln(os.Stderr, "Example:")
		fmt.Fprintln(os.Stderr, "  AZURE_CLIENT_ID=xxx AZURE_TENANT_ID=yyy go run ./cmd/graphsetup")
		os.Exit(1)
	}

	conf := &oauth2.Config{
		ClientID: clientID,
		Endpoint: oauth2.Endpoint{
			DeviceAuthURL: fmt.Sprintf("https://login.microsoftonline.com/%s/oauth2/v2.0/devicecode", tenantID),
			TokenURL:      fmt.Sprintf("https://login.microsoftonline.com/%s/oauth2/v2.0/token", tenantID),
		},
		Scopes: msgraph.Scopes,
	}

	ctx := context.Background()

	fmt.Println("Requesting device code...")
	deviceAuth, err := conf.DeviceAuth(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Device code request failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nGo to %s and enter the code: %s\n", deviceAuth.VerificationURI, deviceAuth.UserCode)
	fmt.Println("Waiting for sign-in to complete...")

	token, err := conf.DeviceAccessToken(ctx, deviceAuth)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Authentication failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\nAuthentication successful. Record these values:")
	fmt.Printf("\n  AZURE_REFRESH_TOKEN=%s\n", token.RefreshToken)
	fmt.Printf("  AZURE_TOKEN_DATE=%s\n", time.Now().Format("2006-01-02"))
	fmt.Println("\nThe refresh token is valid for 90 days; the bot warns 14 days before expiry.")
}
