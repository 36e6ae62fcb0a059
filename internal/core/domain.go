package core

import (
	"errors"
	"strings"
	"time"
)

const (
	CategoryHousing        Category = "Housing"
	CategoryFood           Category = "Food"
	CategoryTransportation Category = "Transportation"
	CategoryEntertainment  Category = "Entertainment"
	CategoryHealth         Category = "Health"
	CategoryShopping       Category = "Shopping"
	CategoryUtilities      Category = "Utilities"
	CategoryDebt           Category = "Debt"
	CategoryEducation      Category = "Education"
	CategoryGifts          Category = "Gifts/Donations"
	CategoryInvestments    Category = "Investments"
	CategoryOther          Category = "Other"
)

type (
	// Category is one of the fixed expense categories. Membership is
	// checked when a record is entered, never when one is loaded from
	// storage, so pre-existing files with out-of-range values keep
	// working.
	Category string

	Date struct {
		time.Time
	}

	Money struct {
		Cents int64
	}

	// Income is a single income entry.
	Income struct {
		Date   Date
		Source string
		Amount Money
	}

	// Expense is a single expense entry.
	Expense struct {
		Date     Date
		Category Category
		Item     string
		Amount   Money
	}

	// Ledger is the pair of append-only record sequences the whole
	// application works on. Insertion order carries no meaning.
	Ledger struct {
		Incomes  []Income
		Expenses []Expense
	}
)

var (
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrEmptySource     = errors.New("empty income source")
	ErrEmptyItem       = errors.New("empty expense item")
	ErrUnknownCategory = errors.New("unknown expense category")
	ErrTextTooLong     = errors.New("text too long (max 200 characters)")
)

// Categories returns the fixed expense category set in display order.
func Categories() []Category {
	return []Category{
		CategoryHousing, CategoryFood, CategoryTransportation,
		CategoryEntertainment, CategoryHealth, CategoryShopping,
		CategoryUtilities, CategoryDebt, CategoryEducation,
		CategoryGifts, CategoryInvestments, CategoryOther,
	}
}

// CategoryOf maps free-form input to a Category. An empty value falls
// back to Other; everything else is passed through for Validate to judge.
func CategoryOf(s string) Category {
	s = strings.TrimSpace(s)
	if s == "" {
		return CategoryOther
	}
	return Category(s)
}

func (c Category) Validate() error {
	for _, known := range Categories() {
		if c == known {
			return nil
		}
	}
	return ErrUnknownCategory
}

// NewDate creates a Date from year, month, day in UTC.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses the round-trippable 2006-01-02 encoding used by the
// persistence layer and the entry form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{Time: t}, nil
}

// String returns the date in its persisted 2006-01-02 form.
func (d Date) String() string {
	return d.Format("2006-01-02")
}

func (d Date) Validate() error {
	if d.IsZero() {
		return ErrInvalidDate
	}
	return nil
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (i Income) Validate() error {
	if err := i.Date.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(i.Source) == "" {
		return ErrEmptySource
	}
	if len(i.Source) > 200 {
		return ErrTextTooLong
	}
	return i.Amount.Validate()
}

func (e Expense) Validate() error {
	if err := e.Date.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(e.Item) == "" {
		return ErrEmptyItem
	}
	if len(e.Item) > 200 {
		return ErrTextTooLong
	}
	if err := e.Category.Validate(); err != nil {
		return err
	}
	return e.Amount.Validate()
}

// IsValidationError reports whether err came from record validation, as
// opposed to a storage failure. Handlers use this to pick between an
// inline form message and a hard error.
func IsValidationError(err error) bool {
	for _, sentinel := range []error{
		ErrInvalidDate, ErrInvalidAmount, ErrEmptySource,
		ErrEmptyItem, ErrUnknownCategory, ErrTextTooLong,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
