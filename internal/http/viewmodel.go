package http

import (
	"encoding/json"
	"fmt"
	"html/template"

	"fintrack/internal/core"
)

type (
	// DashboardView is everything the dashboard template needs: headline
	// metrics, chart payloads and the two history tables.
	DashboardView struct {
		TotalIncome  string
		TotalExpense string
		Balance      string
		// BalanceNegative flags the balance card for inverse styling.
		BalanceNegative bool
		// RatioDefined is false with zero income; the template then
		// omits the percentage instead of showing 0%.
		RatioDefined bool
		RatioPercent string

		Categories []core.Category
		Today      string

		Breakdown    []CategoryEntry
		Monthly      []MonthEntry
		HasBreakdown bool
		HasMonthly   bool
		// JSON payloads handed to the charting script.
		BreakdownJSON template.JS
		MonthlyJSON   template.JS

		Incomes  []IncomeRow
		Expenses []ExpenseRow

		Flash string
		Error string
	}

	CategoryEntry struct {
		Category string  `json:"category"`
		Amount   float64 `json:"amount"`
	}

	MonthEntry struct {
		Month   string  `json:"month"`
		Income  float64 `json:"income"`
		Expense float64 `json:"expense"`
	}

	IncomeRow struct {
		Date   string
		Source string
		Amount string
	}

	ExpenseRow struct {
		Date     string
		Category string
		Item     string
		Amount   string
	}
)

// buildDashboardView derives the full view model from a ledger
// snapshot. Pure apart from JSON encoding.
func buildDashboardView(l core.Ledger) (DashboardView, error) {
	totals := core.Summarize(l)

	view := DashboardView{
		TotalIncome:     totals.Income.String(),
		TotalExpense:    totals.Expense.String(),
		Balance:         totals.Balance.String(),
		BalanceNegative: totals.Balance.Cents < 0,
		Categories:      core.Categories(),
		// Chart payloads encode as [] rather than null on an empty
		// ledger.
		Breakdown: []CategoryEntry{},
		Monthly:   []MonthEntry{},
	}

	if ratio, ok := totals.BalanceRatio(); ok {
		view.RatioDefined = true
		view.RatioPercent = fmt.Sprintf("%.2f%%", ratio*100)
	}

	for _, group := range core.BreakdownByCategory(l.Expenses) {
		view.Breakdown = append(view.Breakdown, CategoryEntry{
			Category: string(group.Category),
			Amount:   group.Amount.Units(),
		})
	}
	view.HasBreakdown = len(view.Breakdown) > 0

	for _, bucket := range core.MonthlyBreakdown(l.Incomes, l.Expenses) {
		view.Monthly = append(view.Monthly, MonthEntry{
			Month:   bucket.Month.String(),
			Income:  bucket.Income.Units(),
			Expense: bucket.Expense.Units(),
		})
	}
	view.HasMonthly = len(view.Monthly) > 0

	breakdownJSON, err := json.Marshal(view.Breakdown)
	if err != nil {
		return DashboardView{}, fmt.Errorf("encode breakdown: %w", err)
	}
	monthlyJSON, err := json.Marshal(view.Monthly)
	if err != nil {
		return DashboardView{}, fmt.Errorf("encode monthly series: %w", err)
	}
	view.BreakdownJSON = template.JS(breakdownJSON)
	view.MonthlyJSON = template.JS(monthlyJSON)

	for _, in := range core.IncomesByDateDesc(l.Incomes) {
		view.Incomes = append(view.Incomes, IncomeRow{
			Date:   in.Date.String(),
			Source: in.Source,
			Amount: in.Amount.String(),
		})
	}
	for _, ex := range core.ExpensesByDateDesc(l.Expenses) {
		view.Expenses = append(view.Expenses, ExpenseRow{
			Date:     ex.Date.String(),
			Category: string(ex.Category),
			Item:     ex.Item,
			Amount:   ex.Amount.String(),
		})
	}

	return view, nil
}
