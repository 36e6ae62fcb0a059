package core

import "sort"

type (
	// Totals is the headline summary for a ledger snapshot.
	Totals struct {
		Income  Money
		Expense Money
		Balance Money
	}

	// CategoryAmount is the spend summed over one expense category.
	CategoryAmount struct {
		Category Category
		Amount   Money
	}

	// MonthAmount carries the income and expense sums for one calendar
	// month. A month present on only one side reports zero on the
	// other.
	MonthAmount struct {
		Month   Month
		Income  Money
		Expense Money
	}
)

// Summarize computes total income, total expenses and their balance.
// An empty ledger yields all zeros.
func Summarize(l Ledger) Totals {
	var t Totals
	for _, in := range l.Incomes {
		t.Income = t.Income.Add(in.Amount)
	}
	for _, ex := range l.Expenses {
		t.Expense = t.Expense.Add(ex.Amount)
	}
	t.Balance = t.Income.Sub(t.Expense)
	return t
}

// BalanceRatio returns balance/income and whether the ratio is defined.
// With zero income the ratio is undefined, not 0%, so callers can omit
// it instead of showing a misleading figure.
func (t Totals) BalanceRatio() (float64, bool) {
	if t.Income.Cents <= 0 {
		return 0, false
	}
	return float64(t.Balance.Cents) / float64(t.Income.Cents), true
}

// BreakdownByCategory groups expenses by category and sums each group.
// The result is ordered by category name so renders are stable; the
// grouping itself is independent of input order.
func BreakdownByCategory(expenses []Expense) []CategoryAmount {
	sums := make(map[Category]Money)
	for _, e := range expenses {
		sums[e.Category] = sums[e.Category].Add(e.Amount)
	}

	out := make([]CategoryAmount, 0, len(sums))
	for cat, amount := range sums {
		out = append(out, CategoryAmount{Category: cat, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Category < out[j].Category
	})
	return out
}

// MonthlyBreakdown buckets both sequences by calendar month and sums
// each side per bucket. The result covers the union of months present
// in either sequence, ascending, with zero for the absent side.
func MonthlyBreakdown(incomes []Income, expenses []Expense) []MonthAmount {
	buckets := make(map[Month]*MonthAmount)
	bucket := func(m Month) *MonthAmount {
		if b, ok := buckets[m]; ok {
			return b
		}
		b := &MonthAmount{Month: m}
		buckets[m] = b
		return b
	}

	for _, in := range incomes {
		b := bucket(MonthOf(in.Date))
		b.Income = b.Income.Add(in.Amount)
	}
	for _, ex := range expenses {
		b := bucket(MonthOf(ex.Date))
		b.Expense = b.Expense.Add(ex.Amount)
	}

	out := make([]MonthAmount, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Month.Before(out[j].Month)
	})
	return out
}

// IncomesByDateDesc returns a copy of the incomes sorted newest first,
// for the history table.
func IncomesByDateDesc(incomes []Income) []Income {
	out := append([]Income(nil), incomes...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date.Time)
	})
	return out
}

// ExpensesByDateDesc returns a copy of the expenses sorted newest first.
func ExpensesByDateDesc(expenses []Expense) []Expense {
	out := append([]Expense(nil), expenses...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date.Time)
	})
	return out
}
