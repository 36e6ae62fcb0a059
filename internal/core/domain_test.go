package core

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestDateValidate(t *testing.T) {
	cases := []struct {
		d  Date
		ok bool
	}{
		{NewDate(2024, 1, 1), true},
		{NewDate(2024, 12, 31), true},
		{Date{Time: time.Time{}}, false}, // zero time
	}
	for i, tc := range cases {
		err := tc.d.Validate()
		if tc.ok && err != nil {
			t.Fatalf("case %d expected ok, got %v", i, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestDateRoundTrip(t *testing.T) {
	d := NewDate(2024, 2, 29)
	parsed, err := ParseDate(d.String())
	if err != nil {
		t.Fatalf("parse %q: %v", d.String(), err)
	}
	if !parsed.Equal(d.Time) {
		t.Fatalf("round trip changed date: %v != %v", parsed, d)
	}
	if _, err := ParseDate("not-a-date"); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}

func TestCategoryOf(t *testing.T) {
	if got := CategoryOf(""); got != CategoryOther {
		t.Fatalf("empty category should default to Other, got %q", got)
	}
	if got := CategoryOf("  "); got != CategoryOther {
		t.Fatalf("blank category should default to Other, got %q", got)
	}
	if got := CategoryOf("Food"); got != CategoryFood {
		t.Fatalf("expected Food, got %q", got)
	}
	if err := Category("Quantum").Validate(); !errors.Is(err, ErrUnknownCategory) {
		t.Fatalf("expected ErrUnknownCategory, got %v", err)
	}
	for _, c := range Categories() {
		if err := c.Validate(); err != nil {
			t.Fatalf("fixed category %q should validate, got %v", c, err)
		}
	}
}

func TestIncomeValidate(t *testing.T) {
	good := Income{Date: NewDate(2024, 1, 1), Source: "Salary", Amount: Money{Cents: 100}}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	cases := []struct {
		in      Income
		wantErr error
	}{
		{Income{Date: Date{}, Source: "Salary", Amount: Money{Cents: 1}}, ErrInvalidDate},
		{Income{Date: NewDate(2024, 1, 1), Source: "", Amount: Money{Cents: 1}}, ErrEmptySource},
		{Income{Date: NewDate(2024, 1, 1), Source: "   ", Amount: Money{Cents: 1}}, ErrEmptySource},
		{Income{Date: NewDate(2024, 1, 1), Source: "Salary", Amount: Money{Cents: 0}}, ErrInvalidAmount},
		{Income{Date: NewDate(2024, 1, 1), Source: "Salary", Amount: Money{Cents: -5}}, ErrInvalidAmount},
		{Income{Date: NewDate(2024, 1, 1), Source: strings.Repeat("x", 201), Amount: Money{Cents: 1}}, ErrTextTooLong},
	}
	for i, tc := range cases {
		if err := tc.in.Validate(); !errors.Is(err, tc.wantErr) {
			t.Fatalf("case %d expected %v, got %v", i, tc.wantErr, err)
		}
	}
}

func TestExpenseValidate(t *testing.T) {
	good := Expense{Date: NewDate(2024, 1, 1), Category: CategoryFood, Item: "Groceries", Amount: Money{Cents: 100}}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	cases := []struct {
		in      Expense
		wantErr error
	}{
		{Expense{Date: Date{}, Category: CategoryFood, Item: "a", Amount: Money{Cents: 1}}, ErrInvalidDate},
		{Expense{Date: NewDate(2024, 1, 1), Category: CategoryFood, Item: "", Amount: Money{Cents: 1}}, ErrEmptyItem},
		{Expense{Date: NewDate(2024, 1, 1), Category: "Nope", Item: "a", Amount: Money{Cents: 1}}, ErrUnknownCategory},
		{Expense{Date: NewDate(2024, 1, 1), Category: CategoryFood, Item: "a", Amount: Money{Cents: 0}}, ErrInvalidAmount},
		{Expense{Date: NewDate(2024, 1, 1), Category: CategoryFood, Item: strings.Repeat("x", 201), Amount: Money{Cents: 1}}, ErrTextTooLong},
	}
	for i, tc := range cases {
		if err := tc.in.Validate(); !errors.Is(err, tc.wantErr) {
			t.Fatalf("case %d expected %v, got %v", i, tc.wantErr, err)
		}
	}
}

func TestIsValidationError(t *testing.T) {
	for _, sentinel := range []error{
		ErrInvalidDate, ErrInvalidAmount, ErrEmptySource,
		ErrEmptyItem, ErrUnknownCategory, ErrTextTooLong,
	} {
		if !IsValidationError(sentinel) {
			t.Fatalf("%v should classify as validation error", sentinel)
		}
	}
	if IsValidationError(errors.New("disk full")) {
		t.Fatalf("arbitrary error should not classify as validation error")
	}
}
