// Package recorder validates and appends single transactions, and is
// the one place that mutates the ledger store.
package recorder

import (
	"context"
	"fmt"
	"log/slog"

	"fintrack/internal/amqp"
	"fintrack/internal/core"
	"fintrack/internal/ledger"
)

// EventPublisher receives a best-effort event after every successful
// append. *amqp.Client satisfies it; tests use fakes.
type EventPublisher interface {
	PublishTransactionRecorded(ctx context.Context, msg amqp.TransactionRecorded) error
}

type Recorder struct {
	store  ledger.Store
	events EventPublisher
}

// New creates a recorder. events may be nil when no broker is
// configured.
func New(store ledger.Store, events EventPublisher) *Recorder {
	return &Recorder{store: store, events: events}
}

// Ledger loads a fresh snapshot of both sequences. Every interaction
// reloads from storage; there is no cross-request cache to go stale.
func (r *Recorder) Ledger(ctx context.Context) (core.Ledger, error) {
	return ledger.LoadLedger(ctx, r.store)
}

// RecordIncome validates the record, appends it to the income sequence
// and persists the full sequence. On a validation failure nothing
// changes. On a save failure the error surfaces to the caller; the
// failed append is simply dropped with the in-memory snapshot, since
// the next interaction reloads from storage anyway.
func (r *Recorder) RecordIncome(ctx context.Context, in core.Income) error {
	if err := in.Validate(); err != nil {
		return fmt.Errorf("validate income: %w", err)
	}

	incomes, err := r.store.LoadIncomes(ctx)
	if err != nil {
		return fmt.Errorf("load incomes: %w", err)
	}
	incomes = append(incomes, in)

	if err := r.store.SaveIncomes(ctx, incomes); err != nil {
		return fmt.Errorf("save incomes: %w", err)
	}

	slog.InfoContext(ctx, "Income recorded",
		"source", in.Source,
		"amount_cents", in.Amount.Cents,
		"date", in.Date.String(),
		"count", len(incomes))

	r.publish(ctx, amqp.NewIncomeRecorded(in))
	return nil
}

// RecordExpense is the expense-side twin of RecordIncome. The category
// is expected to be defaulted (core.CategoryOf) before the call.
func (r *Recorder) RecordExpense(ctx context.Context, ex core.Expense) error {
	if err := ex.Validate(); err != nil {
		return fmt.Errorf("validate expense: %w", err)
	}

	expenses, err := r.store.LoadExpenses(ctx)
	if err != nil {
		return fmt.Errorf("load expenses: %w", err)
	}
	expenses = append(expenses, ex)

	if err := r.store.SaveExpenses(ctx, expenses); err != nil {
		return fmt.Errorf("save expenses: %w", err)
	}

	slog.InfoContext(ctx, "Expense recorded",
		"item", ex.Item,
		"category", string(ex.Category),
		"amount_cents", ex.Amount.Cents,
		"date", ex.Date.String(),
		"count", len(expenses))

	r.publish(ctx, amqp.NewExpenseRecorded(ex))
	return nil
}

// publish sends the event if a publisher is configured. A broker
// failure is logged and swallowed: the record is already persisted.
func (r *Recorder) publish(ctx context.Context, msg amqp.TransactionRecorded) {
	if r.events == nil {
		return
	}
	if err := r.events.PublishTransactionRecorded(ctx, msg); err != nil {
		slog.ErrorContext(ctx, "Failed to publish transaction event",
			"kind", msg.Kind, "error", err)
	}
}
