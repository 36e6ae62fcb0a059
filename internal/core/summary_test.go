package core

import (
	"math/rand"
	"testing"
	"time"
)

func TestSummarizeEmptyLedger(t *testing.T) {
	totals := Summarize(Ledger{})
	if totals.Income.Cents != 0 || totals.Expense.Cents != 0 || totals.Balance.Cents != 0 {
		t.Fatalf("empty ledger should summarize to zeros, got %+v", totals)
	}
	if _, ok := totals.BalanceRatio(); ok {
		t.Fatalf("balance ratio should be undefined with zero income")
	}
	if got := BreakdownByCategory(nil); len(got) != 0 {
		t.Fatalf("expected empty breakdown, got %v", got)
	}
	if got := MonthlyBreakdown(nil, nil); len(got) != 0 {
		t.Fatalf("expected empty monthly series, got %v", got)
	}
}

func TestSummarizeScenario(t *testing.T) {
	ledger := Ledger{
		Incomes: []Income{
			{Date: NewDate(2024, 1, 15), Source: "Salary", Amount: Money{Cents: 5000000}},
		},
		Expenses: []Expense{
			{Date: NewDate(2024, 1, 20), Category: CategoryFood, Item: "Groceries", Amount: Money{Cents: 200000}},
			{Date: NewDate(2024, 2, 5), Category: CategoryFood, Item: "Dining", Amount: Money{Cents: 100000}},
		},
	}

	totals := Summarize(ledger)
	if totals.Income.Cents != 5000000 || totals.Expense.Cents != 300000 || totals.Balance.Cents != 4700000 {
		t.Fatalf("unexpected totals: %+v", totals)
	}
	ratio, ok := totals.BalanceRatio()
	if !ok {
		t.Fatalf("balance ratio should be defined")
	}
	if ratio != 0.94 {
		t.Fatalf("expected ratio 0.94, got %v", ratio)
	}

	breakdown := BreakdownByCategory(ledger.Expenses)
	if len(breakdown) != 1 {
		t.Fatalf("expected one category, got %v", breakdown)
	}
	if breakdown[0].Category != CategoryFood || breakdown[0].Amount.Cents != 300000 {
		t.Fatalf("unexpected breakdown: %+v", breakdown[0])
	}

	monthly := MonthlyBreakdown(ledger.Incomes, ledger.Expenses)
	want := []MonthAmount{
		{Month: Month{Year: 2024, Month: time.January}, Income: Money{Cents: 5000000}, Expense: Money{Cents: 200000}},
		{Month: Month{Year: 2024, Month: time.February}, Income: Money{Cents: 0}, Expense: Money{Cents: 100000}},
	}
	if len(monthly) != len(want) {
		t.Fatalf("expected %d months, got %v", len(want), monthly)
	}
	for i := range want {
		if monthly[i] != want[i] {
			t.Fatalf("month %d: expected %+v, got %+v", i, want[i], monthly[i])
		}
	}
}

func TestSummarizeAdditive(t *testing.T) {
	ledger := Ledger{
		Incomes: []Income{
			{Date: NewDate(2024, 3, 1), Source: "Salary", Amount: Money{Cents: 1000}},
		},
	}
	before := Summarize(ledger)

	ledger.Expenses = append(ledger.Expenses, Expense{
		Date: NewDate(2024, 3, 2), Category: CategoryHealth, Item: "Pharmacy", Amount: Money{Cents: 250},
	})
	after := Summarize(ledger)

	if after.Income != before.Income {
		t.Fatalf("income total changed by expense append")
	}
	if after.Expense.Cents != before.Expense.Cents+250 {
		t.Fatalf("expense total should grow by the appended amount")
	}
	if after.Balance.Cents != before.Balance.Cents-250 {
		t.Fatalf("balance should shrink by the appended amount")
	}
}

func TestMonthlyBreakdownOrderIndependent(t *testing.T) {
	var incomes []Income
	var expenses []Expense
	for i := 0; i < 24; i++ {
		incomes = append(incomes, Income{
			Date: NewDate(2022+i%3, 1+i%12, 1+i), Source: "Work", Amount: Money{Cents: int64(100 + i)},
		})
		expenses = append(expenses, Expense{
			Date: NewDate(2022+i%2, 1+i%12, 1+i), Category: CategoryOther, Item: "Misc", Amount: Money{Cents: int64(50 + i)},
		})
	}
	want := MonthlyBreakdown(incomes, expenses)

	rng := rand.New(rand.NewSource(42))
	rng.Shuffle(len(incomes), func(i, j int) { incomes[i], incomes[j] = incomes[j], incomes[i] })
	rng.Shuffle(len(expenses), func(i, j int) { expenses[i], expenses[j] = expenses[j], expenses[i] })
	got := MonthlyBreakdown(incomes, expenses)

	if len(got) != len(want) {
		t.Fatalf("shuffled input changed bucket count: %d != %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("bucket %d differs after shuffle: %+v != %+v", i, got[i], want[i])
		}
	}

	for i := 1; i < len(got); i++ {
		if !got[i-1].Month.Before(got[i].Month) {
			t.Fatalf("series not strictly ascending at %d: %v, %v", i, got[i-1].Month, got[i].Month)
		}
	}
}

func TestBreakdownByCategoryGroups(t *testing.T) {
	expenses := []Expense{
		{Date: NewDate(2024, 1, 1), Category: CategoryFood, Item: "a", Amount: Money{Cents: 100}},
		{Date: NewDate(2024, 1, 2), Category: CategoryHousing, Item: "b", Amount: Money{Cents: 900}},
		{Date: NewDate(2024, 2, 3), Category: CategoryFood, Item: "c", Amount: Money{Cents: 50}},
	}
	got := BreakdownByCategory(expenses)
	if len(got) != 2 {
		t.Fatalf("expected 2 categories, got %v", got)
	}
	// Ordered by category name: Food before Housing.
	if got[0].Category != CategoryFood || got[0].Amount.Cents != 150 {
		t.Fatalf("unexpected first group: %+v", got[0])
	}
	if got[1].Category != CategoryHousing || got[1].Amount.Cents != 900 {
		t.Fatalf("unexpected second group: %+v", got[1])
	}
}

func TestHistoryOrdering(t *testing.T) {
	incomes := []Income{
		{Date: NewDate(2024, 1, 1), Source: "a", Amount: Money{Cents: 1}},
		{Date: NewDate(2024, 3, 1), Source: "b", Amount: Money{Cents: 1}},
		{Date: NewDate(2024, 2, 1), Source: "c", Amount: Money{Cents: 1}},
	}
	sorted := IncomesByDateDesc(incomes)
	if sorted[0].Source != "b" || sorted[1].Source != "c" || sorted[2].Source != "a" {
		t.Fatalf("unexpected order: %+v", sorted)
	}
	// Input must stay untouched.
	if incomes[0].Source != "a" {
		t.Fatalf("input slice mutated")
	}
}
