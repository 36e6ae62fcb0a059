package amqp

import (
	"encoding/json"
	"time"

	"fintrack/internal/core"
)

const (
	KindIncome  = "income"
	KindExpense = "expense"
)

// TransactionRecorded announces a successfully persisted record.
// Consumers get enough to mirror the entry without re-reading the
// ledger files.
type TransactionRecorded struct {
	Kind        string    `json:"kind"`
	Date        string    `json:"date"`
	Label       string    `json:"label"`
	Category    string    `json:"category,omitempty"`
	AmountCents int64     `json:"amount_cents"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewIncomeRecorded builds the event for an income entry.
func NewIncomeRecorded(in core.Income) TransactionRecorded {
	return TransactionRecorded{
		Kind:        KindIncome,
		Date:        in.Date.String(),
		Label:       in.Source,
		AmountCents: in.Amount.Cents,
		Timestamp:   time.Now(),
	}
}

// NewExpenseRecorded builds the event for an expense entry.
func NewExpenseRecorded(ex core.Expense) TransactionRecorded {
	return TransactionRecorded{
		Kind:        KindExpense,
		Date:        ex.Date.String(),
		Label:       ex.Item,
		Category:    string(ex.Category),
		AmountCents: ex.Amount.Cents,
		Timestamp:   time.Now(),
	}
}

// ToJSON converts the event to JSON bytes.
func (m TransactionRecorded) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// TransactionRecordedFromJSON decodes an event from JSON bytes.
func TransactionRecordedFromJSON(data []byte) (TransactionRecorded, error) {
	var msg TransactionRecorded
	if err := json.Unmarshal(data, &msg); err != nil {
		return TransactionRecorded{}, err
	}
	return msg, nil
}
