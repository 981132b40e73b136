package msgraph

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/oauth2"
)

const (
	graphBase       = "https://graph.microsoft.com/v1.0"
	tokenURLPattern = "https://login.microsoftonline.com/%s/oauth2/v2.0/token"
)

// Scopes requested for the delegated workbook/mail access.
var Scopes = []string{"Files.ReadWrite", "User.Read", "Mail.Send", "offline_access"}

// Client talks to the Microsoft Graph workbook API for a single Excel file
// in the signed-in user's OneDrive. Authentication is the refresh-token
// grant; the oauth2 transport keeps the access token fresh across calls.
type Client struct {
	http     *http.Client
	filePath string
}

// NewClient builds a workbook client for the given Azure AD app and file path.
func NewClient(ctx context.Context, clientID, tenantID, refreshToken, filePath string) *Client {
	conf := &oauth2.Config{
		ClientID: clientID,
		Endpoint: oauth2.Endpoint{
			TokenURL: fmt.Sprintf(tokenURLPattern, tenantID),
		},
		Scopes: Scopes,
	}
	ts := conf.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})
	return &Client{
		http:     oauth2.NewClient(ctx, ts),
		filePath: filePath,
	}
}

// workbookURL addresses the workbook by drive path. Path segments are
// escaped individually so the separating slashes survive.
func (c *Client) workbookURL() string {
	segments := strings.Split(c.filePath, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return graphBase + "/me/drive/root:" + strings.Join(segments, "/") + ":/workbook"
}

func (c *Client) request(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.workbookURL()+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build Graph request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("graph request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		text, _ := io.ReadAll(res.Body)
		return fmt.Errorf("graph API error (%d): %s", res.StatusCode, string(text))
	}
	if res.StatusCode == http.StatusNoContent || out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode Graph response: %w", err)
	}
	return nil
}

type rangeResponse struct {
	Values [][]any `json:"values"`
}

// UsedRange returns the populated cell values of a worksheet, header row
// included. An empty sheet yields no rows.
func (c *Client) UsedRange(ctx context.Context, sheet string) ([][]any, error) {
	var rr rangeResponse
	path := fmt.Sprintf("/worksheets('%s')/usedRange", url.PathEscape(sheet))
	if err := c.request(ctx, http.MethodGet, path, nil, &rr); err != nil {
		return nil, err
	}
	return rr.Values, nil
}

// UpdateRange writes a rectangular block of values at an A1-style address.
func (c *Client) UpdateRange(ctx context.Context, sheet, address string, values [][]any) error {
	path := fmt.Sprintf("/worksheets('%s')/range(address='%s')", url.PathEscape(sheet), address)
	body := map[string]any{"values": values}
	return c.request(ctx, http.MethodPatch, path, body, nil)
}

// ClearRange clears cell contents at an A1-style address.
func (c *Client) ClearRange(ctx context.Context, sheet, address string) error {
	path := fmt.Sprintf("/worksheets('%s')/range(address='%s')/clear", url.PathEscape(sheet), address)
	body := map[string]any{"applyTo": "Contents"}
	return c.request(ctx, http.MethodPost, path, body, nil)
}

// AddSheet creates a new worksheet in the workbook.
func (c *Client) AddSheet(ctx context.Context, name string) error {
	body := map[string]any{"name": name}
	return c.request(ctx, http.MethodPost, "/worksheets/add", body, nil)
}

// ListSheets returns the names of all worksheets in the workbook.
func (c *Client) ListSheets(ctx context.Context) ([]string, error) {
	var out struct {
		Value []struct {
			Name string `json:"name"`
		} `json:"value"`
	}
	if err := c.request(ctx, http.MethodGet, "/worksheets", nil, &out); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(out.Value))
	for _, ws := range out.Value {
		names = append(names, ws.Name)
	}
	return names, nil
}
