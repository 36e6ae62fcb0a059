// Package sqlite is a ledger backend on a local SQLite database. It
// keeps the same full-overwrite save semantics as the flat-file
// backend: every save replaces the table contents in one transaction.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"fintrack/internal/core"

	_ "modernc.org/sqlite"
)

type Store struct {
	db *sql.DB
}

func New(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) LoadIncomes(ctx context.Context) ([]core.Income, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT date, source, amount_cents FROM incomes ORDER BY date, id`)
	if err != nil {
		return nil, fmt.Errorf("query incomes: %w", err)
	}
	defer rows.Close()

	var incomes []core.Income
	for rows.Next() {
		var dateStr, source string
		var cents int64
		if err := rows.Scan(&dateStr, &source, &cents); err != nil {
			return nil, fmt.Errorf("scan income row: %w", err)
		}
		date, err := core.ParseDate(dateStr)
		if err != nil {
			// Trust-on-load: an unreadable date drops the row, it
			// never fails the load.
			continue
		}
		incomes = append(incomes, core.Income{
			Date:   date,
			Source: source,
			Amount: core.Money{Cents: cents},
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate incomes: %w", err)
	}
	return incomes, nil
}

func (s *Store) LoadExpenses(ctx context.Context) ([]core.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT date, category, item, amount_cents FROM expenses ORDER BY date, id`)
	if err != nil {
		return nil, fmt.Errorf("query expenses: %w", err)
	}
	defer rows.Close()

	var expenses []core.Expense
	for rows.Next() {
		var dateStr, category, item string
		var cents int64
		if err := rows.Scan(&dateStr, &category, &item, &cents); err != nil {
			return nil, fmt.Errorf("scan expense row: %w", err)
		}
		date, err := core.ParseDate(dateStr)
		if err != nil {
			continue
		}
		expenses = append(expenses, core.Expense{
			Date:     date,
			Category: core.Category(category),
			Item:     item,
			Amount:   core.Money{Cents: cents},
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expenses: %w", err)
	}
	return expenses, nil
}

func (s *Store) SaveIncomes(ctx context.Context, incomes []core.Income) error {
	return s.replace(ctx, "incomes", func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO incomes (date, source, amount_cents) VALUES (?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("prepare insert: %w", err)
		}
		defer stmt.Close()
		for _, in := range incomes {
			if _, err := stmt.ExecContext(ctx, in.Date.String(), in.Source, in.Amount.Cents); err != nil {
				return fmt.Errorf("insert income: %w", err)
			}
		}
		return nil
	})
}

func (s *Store) SaveExpenses(ctx context.Context, expenses []core.Expense) error {
	return s.replace(ctx, "expenses", func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO expenses (date, category, item, amount_cents) VALUES (?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("prepare insert: %w", err)
		}
		defer stmt.Close()
		for _, ex := range expenses {
			if _, err := stmt.ExecContext(ctx, ex.Date.String(), string(ex.Category), ex.Item, ex.Amount.Cents); err != nil {
				return fmt.Errorf("insert expense: %w", err)
			}
		}
		return nil
	})
}

// replace clears the table and refills it inside one transaction, so a
// failed save leaves the previous contents in place.
func (s *Store) replace(ctx context.Context, table string, fill func(*sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
		return fmt.Errorf("clear %s: %w", table, err)
	}
	if err := fill(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit %s: %w", table, err)
	}
	return nil
}
