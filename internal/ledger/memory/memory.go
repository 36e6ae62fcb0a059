// Package memory is an in-memory ledger store for tests and ephemeral
// runs. Nothing survives a restart.
package memory

import (
	"context"
	"sync"

	"fintrack/internal/core"
)

type Store struct {
	mu       sync.Mutex
	incomes  []core.Income
	expenses []core.Expense
}

func New() *Store {
	return &Store{}
}

// NewWith seeds the store with existing sequences.
func NewWith(incomes []core.Income, expenses []core.Expense) *Store {
	return &Store{
		incomes:  append([]core.Income(nil), incomes...),
		expenses: append([]core.Expense(nil), expenses...),
	}
}

func (s *Store) LoadIncomes(_ context.Context) ([]core.Income, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Income(nil), s.incomes...), nil
}

func (s *Store) SaveIncomes(_ context.Context, incomes []core.Income) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.incomes = append([]core.Income(nil), incomes...)
	return nil
}

func (s *Store) LoadExpenses(_ context.Context) ([]core.Expense, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Expense(nil), s.expenses...), nil
}

func (s *Store) SaveExpenses(_ context.Context, expenses []core.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses = append([]core.Expense(nil), expenses...)
	return nil
}
