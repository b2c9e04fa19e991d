// Package gsheets is a small values client over the Google Sheets v4 API.
// Every cell is read and written as a plain string.
package gsheets

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"action-plan-assistant/pkg/googleauth"
)

const (
	valueInputRaw  = "RAW"
	insertRowsMode = "INSERT_ROWS"
)

var ErrMissingSpreadsheetID = errors.New("gsheets: spreadsheet id is required")

// Client reads and writes ranges of one spreadsheet.
type Client struct {
	service       *sheets.Service
	spreadsheetID string
}

// NewClientFromCredentialsFile creates a client authenticated by googleauth.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath, tokenPath, spreadsheetID string) (*Client, error) {
	opt, err := googleauth.ClientOption(ctx, credentialsPath, tokenPath)
	if err != nil {
		return nil, err
	}
	return newClient(ctx, spreadsheetID, opt)
}

// NewClientFromHTTP creates a client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client, spreadsheetID string) (*Client, error) {
	return newClient(ctx, spreadsheetID, option.WithHTTPClient(httpClient))
}

func newClient(ctx context.Context, spreadsheetID string, opts ...option.ClientOption) (*Client, error) {
	if spreadsheetID == "" {
		return nil, ErrMissingSpreadsheetID
	}
	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return &Client{service: svc, spreadsheetID: spreadsheetID}, nil
}

// Read returns the rows of rng. Trailing empty cells are omitted by the API,
// so rows may be shorter than the range width.
func (c *Client) Read(ctx context.Context, rng string) ([][]string, error) {
	res, err := c.service.Spreadsheets.Values.Get(c.spreadsheetID, rng).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("gsheets: read %s: %w", rng, err)
	}

	rows := make([][]string, len(res.Values))
	for i, row := range res.Values {
		rows[i] = make([]string, len(row))
		for j, cell := range row {
			rows[i][j] = fmt.Sprint(cell)
		}
	}
	return rows, nil
}

// Append adds rows after the last row of the table in rng and returns the updated range.
func (c *Client) Append(ctx context.Context, rng string, rows [][]string) (string, error) {
	res, err := c.service.Spreadsheets.Values.Append(c.spreadsheetID, rng, toValueRange(rows)).
		ValueInputOption(valueInputRaw).
		InsertDataOption(insertRowsMode).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("gsheets: append %s: %w", rng, err)
	}
	if res.Updates == nil {
		return "", nil
	}
	return res.Updates.UpdatedRange, nil
}

// Update overwrites rng with rows.
func (c *Client) Update(ctx context.Context, rng string, rows [][]string) error {
	_, err := c.service.Spreadsheets.Values.Update(c.spreadsheetID, rng, toValueRange(rows)).
		ValueInputOption(valueInputRaw).
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("gsheets: update %s: %w", rng, err)
	}
	return nil
}

// Clear empties the cells of rng, keeping the rows.
func (c *Client) Clear(ctx context.Context, rng string) error {
	if _, err := c.service.Spreadsheets.Values.Clear(c.spreadsheetID, rng, &sheets.ClearValuesRequest{}).Context(ctx).Do(); err != nil {
		return fmt.Errorf("gsheets: clear %s: %w", rng, err)
	}
	return nil
}

// EnsureSheet adds the tab when missing and writes header to its first row.
func (c *Client) EnsureSheet(ctx context.Context, title string, header []string) error {
	ss, err := c.service.Spreadsheets.Get(c.spreadsheetID).Fields("sheets.properties.title").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("gsheets: get spreadsheet: %w", err)
	}
	for _, s := range ss.Sheets {
		if s.Properties != nil && s.Properties.Title == title {
			return nil
		}
	}

	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{Properties: &sheets.SheetProperties{Title: title}},
		}},
	}
	if _, err := c.service.Spreadsheets.BatchUpdate(c.spreadsheetID, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("gsheets: add sheet %s: %w", title, err)
	}
	return c.Update(ctx, fmt.Sprintf("%s!A1", title), [][]string{header})
}

func toValueRange(rows [][]string) *sheets.ValueRange {
	values := make([][]interface{}, len(rows))
	for i, row := range rows {
		values[i] = make([]interface{}, len(row))
		for j, cell := range row {
			values[i][j] = cell
		}
	}
	return &sheets.ValueRange{Values: values}
}
