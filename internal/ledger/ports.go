// Package ledger defines the storage ports for the two record
// sequences. Backends live in subpackages; all of them share the same
// contract: a missing or unreadable store reads as empty (tolerant
// read), and a save rewrites the full sequence so the persisted state
// always matches the in-memory one at the moment of the call.
package ledger

import (
	"context"

	"fintrack/internal/core"
)

type (
	IncomeStore interface {
		// LoadIncomes reads every persisted income record. A store
		// that does not exist yet yields an empty slice, not an error.
		LoadIncomes(ctx context.Context) ([]core.Income, error)
		// SaveIncomes overwrites the store with the full sequence.
		SaveIncomes(ctx context.Context, incomes []core.Income) error
	}

	ExpenseStore interface {
		LoadExpenses(ctx context.Context) ([]core.Expense, error)
		SaveExpenses(ctx context.Context, expenses []core.Expense) error
	}

	// Store is the combined port the recorder and the HTTP layer use.
	Store interface {
		IncomeStore
		ExpenseStore
	}
)

// LoadLedger reads both sequences into a ledger snapshot.
func LoadLedger(ctx context.Context, s Store) (core.Ledger, error) {
	incomes, err := s.LoadIncomes(ctx)
	if err != nil {
		return core.Ledger{}, err
	}
	expenses, err := s.LoadExpenses(ctx)
	if err != nil {
		return core.Ledger{}, err
	}
	return core.Ledger{Incomes: incomes, Expenses: expenses}, nil
}
