// Package gsheet is a ledger backend on a Google Sheets spreadsheet:
// one sheet per record kind, mirroring the flat-file column layout.
// Useful to keep the ledger visible from a phone; the local CSV backend
// stays the canonical format.
package gsheet

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"fintrack/internal/core"
	"fintrack/internal/ledger"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"
)

type Client struct {
	svc           *gsheet.Service
	spreadsheetID string
	incomeSheet   string
	expenseSheet  string
}

var _ ledger.Store = (*Client)(nil)

// NewFromEnv creates a Sheets-backed store from environment variables.
// Required: GOOGLE_SPREADSHEET_ID. Auth comes from
// GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE or
// GOOGLE_APPLICATION_CREDENTIALS. Sheet names default to "Income" and
// "Expenses" (GOOGLE_INCOME_SHEET_NAME / GOOGLE_EXPENSE_SHEET_NAME).
func NewFromEnv(ctx context.Context) (*Client, error) {
	spreadsheetID := strings.TrimSpace(os.Getenv("GOOGLE_SPREADSHEET_ID"))
	if spreadsheetID == "" {
		return nil, errors.New("missing GOOGLE_SPREADSHEET_ID")
	}

	incomeSheet := strings.TrimSpace(os.Getenv("GOOGLE_INCOME_SHEET_NAME"))
	if incomeSheet == "" {
		incomeSheet = "Income"
	}
	expenseSheet := strings.TrimSpace(os.Getenv("GOOGLE_EXPENSE_SHEET_NAME"))
	if expenseSheet == "" {
		expenseSheet = "Expenses"
	}

	svc, err := newSheetsService(ctx)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}

	return &Client{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		incomeSheet:   incomeSheet,
		expenseSheet:  expenseSheet,
	}, nil
}

// newSheetsService builds a Sheets service from service-account
// credentials found in the environment.
func newSheetsService(ctx context.Context) (*gsheet.Service, error) {
	inlineJSON := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"))
	credFile := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE"))
	if inlineJSON == "" && credFile == "" {
		credFile = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}

	var credentialsJSON []byte
	switch {
	case inlineJSON != "":
		credentialsJSON = []byte(inlineJSON)
	case credFile != "":
		data, err := os.ReadFile(credFile)
		if err != nil {
			return nil, fmt.Errorf("read service account file: %w", err)
		}
		credentialsJSON = data
	default:
		return nil, errors.New("missing service account credentials (set GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE, or GOOGLE_APPLICATION_CREDENTIALS)")
	}

	return gsheet.NewService(ctx,
		goption.WithCredentialsJSON(credentialsJSON),
		goption.WithScopes(gsheet.SpreadsheetsScope))
}

func (c *Client) LoadIncomes(ctx context.Context) ([]core.Income, error) {
	rows, err := c.readRows(ctx, c.incomeSheet, "A2:C", 3)
	if err != nil {
		return nil, err
	}

	incomes := make([]core.Income, 0, len(rows))
	for _, row := range rows {
		date, err := core.ParseDate(row[0])
		if err != nil {
			slog.WarnContext(ctx, "Skipping income row with unparsable date",
				"sheet", c.incomeSheet, "value", row[0])
			continue
		}
		cents, err := core.ParseCents(row[2])
		if err != nil {
			slog.WarnContext(ctx, "Skipping income row with unparsable amount",
				"sheet", c.incomeSheet, "value", row[2])
			continue
		}
		incomes = append(incomes, core.Income{
			Date:   date,
			Source: row[1],
			Amount: core.Money{Cents: cents},
		})
	}
	return incomes, nil
}

func (c *Client) LoadExpenses(ctx context.Context) ([]core.Expense, error) {
	rows, err := c.readRows(ctx, c.expenseSheet, "A2:D", 4)
	if err != nil {
		return nil, err
	}

	expenses := make([]core.Expense, 0, len(rows))
	for _, row := range rows {
		date, err := core.ParseDate(row[0])
		if err != nil {
			slog.WarnContext(ctx, "Skipping expense row with unparsable date",
				"sheet", c.expenseSheet, "value", row[0])
			continue
		}
		cents, err := core.ParseCents(row[3])
		if err != nil {
			slog.WarnContext(ctx, "Skipping expense row with unparsable amount",
				"sheet", c.expenseSheet, "value", row[3])
			continue
		}
		expenses = append(expenses, core.Expense{
			Date:     date,
			Category: core.Category(row[1]),
			Item:     row[2],
			Amount:   core.Money{Cents: cents},
		})
	}
	return expenses, nil
}

func (c *Client) SaveIncomes(ctx context.Context, incomes []core.Income) error {
	values := [][]any{{"Date", "Source", "Amount"}}
	for _, in := range incomes {
		values = append(values, []any{in.Date.String(), in.Source, in.Amount.String()})
	}
	return c.writeRows(ctx, c.incomeSheet, "A:C", values)
}

func (c *Client) SaveExpenses(ctx context.Context, expenses []core.Expense) error {
	values := [][]any{{"Date", "Category", "Item", "Amount"}}
	for _, ex := range expenses {
		values = append(values, []any{ex.Date.String(), string(ex.Category), ex.Item, ex.Amount.String()})
	}
	return c.writeRows(ctx, c.expenseSheet, "A:D", values)
}

// readRows fetches the data range and normalizes each row to the
// expected width; the per-field parsers decide what survives.
func (c *Client) readRows(ctx context.Context, sheet, rng string, fields int) ([][]string, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, sheet+"!"+rng).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("read range %s!%s: %w", sheet, rng, err)
	}

	var rows [][]string
	for _, raw := range resp.Values {
		// The API omits trailing empty cells; pad so the parsers can
		// judge the row, and drop anything past the column set.
		row := make([]string, fields)
		for i := 0; i < fields && i < len(raw); i++ {
			row[i] = strings.TrimSpace(fmt.Sprint(raw[i]))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// writeRows clears the column range and writes header plus rows, the
// spreadsheet equivalent of a full-file rewrite.
func (c *Client) writeRows(ctx context.Context, sheet, rng string, values [][]any) error {
	fullRange := sheet + "!" + rng

	if _, err := c.svc.Spreadsheets.Values.Clear(c.spreadsheetID, fullRange, &gsheet.ClearValuesRequest{}).
		Context(ctx).Do(); err != nil {
		return fmt.Errorf("clear range %s: %w", fullRange, err)
	}

	vr := &gsheet.ValueRange{Values: values}
	if _, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, sheet+"!A1", vr).
		ValueInputOption("RAW").Context(ctx).Do(); err != nil {
		return fmt.Errorf("write range %s: %w", fullRange, err)
	}

	slog.DebugContext(ctx, "Sheet rewritten", "sheet", sheet, "rows", len(values)-1)
	return nil
}
