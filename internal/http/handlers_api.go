package http

import (
	"encoding/json"
	"net/http"

	"fintrack/internal/core"
)

type (
	summaryResponse struct {
		TotalIncomeCents  int64 `json:"total_income_cents"`
		TotalExpenseCents int64 `json:"total_expense_cents"`
		BalanceCents      int64 `json:"balance_cents"`
		// nil when total income is zero and the ratio is undefined.
		BalanceRatio *float64 `json:"balance_ratio,omitempty"`
	}

	breakdownEntry struct {
		Category    string `json:"category"`
		AmountCents int64  `json:"amount_cents"`
	}

	monthlyEntry struct {
		Month        core.Month `json:"month"`
		IncomeCents  int64      `json:"income_cents"`
		ExpenseCents int64      `json:"expense_cents"`
	}
)

// handleSummary serves the headline totals projection.
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	snapshot, ok := s.loadForAPI(w, r)
	if !ok {
		return
	}

	totals := core.Summarize(snapshot)
	resp := summaryResponse{
		TotalIncomeCents:  totals.Income.Cents,
		TotalExpenseCents: totals.Expense.Cents,
		BalanceCents:      totals.Balance.Cents,
	}
	if ratio, defined := totals.BalanceRatio(); defined {
		resp.BalanceRatio = &ratio
	}

	writeJSON(w, resp)
}

// handleBreakdown serves the expenses-by-category projection.
func (s *Server) handleBreakdown(w http.ResponseWriter, r *http.Request) {
	snapshot, ok := s.loadForAPI(w, r)
	if !ok {
		return
	}

	entries := make([]breakdownEntry, 0)
	for _, group := range core.BreakdownByCategory(snapshot.Expenses) {
		entries = append(entries, breakdownEntry{
			Category:    string(group.Category),
			AmountCents: group.Amount.Cents,
		})
	}
	writeJSON(w, entries)
}

// handleMonthly serves the calendar-month time series.
func (s *Server) handleMonthly(w http.ResponseWriter, r *http.Request) {
	snapshot, ok := s.loadForAPI(w, r)
	if !ok {
		return
	}

	entries := make([]monthlyEntry, 0)
	for _, bucket := range core.MonthlyBreakdown(snapshot.Incomes, snapshot.Expenses) {
		entries = append(entries, monthlyEntry{
			Month:        bucket.Month,
			IncomeCents:  bucket.Income.Cents,
			ExpenseCents: bucket.Expense.Cents,
		})
	}
	writeJSON(w, entries)
}

func (s *Server) loadForAPI(w http.ResponseWriter, r *http.Request) (core.Ledger, bool) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return core.Ledger{}, false
	}

	snapshot, err := s.rec.Ledger(r.Context())
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Ledger load failed for API read", "error", err)
		snapshot = core.Ledger{}
	}
	return snapshot, true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(v)
}
