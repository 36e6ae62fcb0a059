// Package csvfile is the flat-file ledger backend and the stable
// persistence contract: one CSV file per record kind, a fixed header
// row, ISO-8601 dates and plain decimal amounts.
package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"fintrack/internal/core"
)

const (
	incomeFile  = "income.csv"
	expenseFile = "expenses.csv"
)

var (
	incomeHeader  = []string{"Date", "Source", "Amount"}
	expenseHeader = []string{"Date", "Category", "Item", "Amount"}
)

// Store persists the ledger as two CSV files under a data directory.
type Store struct {
	dir string
}

func New(dir string) *Store {
	return &Store{dir: dir}
}

// IncomePath returns the income file location.
func (s *Store) IncomePath() string {
	return filepath.Join(s.dir, incomeFile)
}

// ExpensePath returns the expense file location.
func (s *Store) ExpensePath() string {
	return filepath.Join(s.dir, expenseFile)
}

func (s *Store) LoadIncomes(ctx context.Context) ([]core.Income, error) {
	rows, err := s.readRows(ctx, s.IncomePath(), len(incomeHeader))
	if err != nil {
		return nil, err
	}

	incomes := make([]core.Income, 0, len(rows))
	for _, row := range rows {
		date, err := core.ParseDate(row[0])
		if err != nil {
			slog.WarnContext(ctx, "Skipping income row with unparsable date",
				"path", s.IncomePath(), "value", row[0])
			continue
		}
		cents, err := core.ParseCents(row[2])
		if err != nil {
			slog.WarnContext(ctx, "Skipping income row with unparsable amount",
				"path", s.IncomePath(), "value", row[2])
			continue
		}
		// Values are trusted as-is on load; only entry validates.
		incomes = append(incomes, core.Income{
			Date:   date,
			Source: row[1],
			Amount: core.Money{Cents: cents},
		})
	}
	return incomes, nil
}

func (s *Store) LoadExpenses(ctx context.Context) ([]core.Expense, error) {
	rows, err := s.readRows(ctx, s.ExpensePath(), len(expenseHeader))
	if err != nil {
		return nil, err
	}

	expenses := make([]core.Expense, 0, len(rows))
	for _, row := range rows {
		date, err := core.ParseDate(row[0])
		if err != nil {
			slog.WarnContext(ctx, "Skipping expense row with unparsable date",
				"path", s.ExpensePath(), "value", row[0])
			continue
		}
		cents, err := core.ParseCents(row[3])
		if err != nil {
			slog.WarnContext(ctx, "Skipping expense row with unparsable amount",
				"path", s.ExpensePath(), "value", row[3])
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

func (s *Store) SaveIncomes(ctx context.Context, incomes []core.Income) error {
	rows := make([][]string, 0, len(incomes))
	for _, in := range incomes {
		rows = append(rows, []string{in.Date.String(), in.Source, in.Amount.String()})
	}
	return s.writeRows(ctx, s.IncomePath(), incomeHeader, rows)
}

func (s *Store) SaveExpenses(ctx context.Context, expenses []core.Expense) error {
	rows := make([][]string, 0, len(expenses))
	for _, ex := range expenses {
		rows = append(rows, []string{ex.Date.String(), string(ex.Category), ex.Item, ex.Amount.String()})
	}
	return s.writeRows(ctx, s.ExpensePath(), expenseHeader, rows)
}

// readRows reads all data rows with the expected field count. A missing
// file is not an error. A file that cannot be read past some point
// yields the rows parsed so far: the tolerant-read contract recovers
// locally instead of surfacing load failures.
func (s *Store) readRows(ctx context.Context, path string, fields int) ([][]string, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		slog.WarnContext(ctx, "Ledger file unreadable, treating as empty",
			"path", path, "error", err)
		return nil, nil
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	// Header row. An empty file reads as an empty sequence.
	if _, err := reader.Read(); err != nil {
		return nil, nil
	}

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			slog.WarnContext(ctx, "Ledger file unparsable past this point, keeping rows read so far",
				"path", path, "rows", len(rows), "error", err)
			break
		}
		if len(record) != fields {
			slog.WarnContext(ctx, "Skipping row with unexpected field count",
				"path", path, "fields", len(record), "expected", fields)
			continue
		}
		rows = append(rows, append([]string(nil), record...))
	}
	return rows, nil
}

// writeRows rewrites the whole file atomically: the rows go to a temp
// file in the same directory which is then renamed over the target, so
// readers never observe a half-written file.
func (s *Store) writeRows(ctx context.Context, path string, header []string, rows [][]string) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	writer := csv.NewWriter(tmp)
	if err := writer.Write(header); err != nil {
		tmp.Close()
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			tmp.Close()
			return fmt.Errorf("write row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("flush rows: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace %s: %w", filepath.Base(path), err)
	}

	slog.DebugContext(ctx, "Ledger file rewritten", "path", path, "rows", len(rows))
	return nil
}
