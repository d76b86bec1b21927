package transaction

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Type represents the direction of a transaction (income or expense).
// Amounts are always positive; direction is carried here.
type Type string

const (
	TypeIncome  Type = "income"
	TypeExpense Type = "expense"
)

func (t Type) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Frequency describes how often a transaction recurs. It is stored as
// entered and never expanded into future occurrences.
type Frequency string

const (
	FrequencyOneTime Frequency = "one-time"
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
	FrequencyCustom  Frequency = "custom"
)

func (f Frequency) Valid() bool {
	switch f {
	case FrequencyOneTime, FrequencyDaily, FrequencyWeekly, FrequencyMonthly, FrequencyYearly, FrequencyCustom:
		return true
	}

	return false
}

// Category is a transaction category. The set is closed; values outside
// it are rejected at validation time.
type Category string

const (
	CategorySalary        Category = "Salary"
	CategoryFreelance     Category = "Freelance"
	CategoryInvestment    Category = "Investment"
	CategoryFood          Category = "Food"
	CategoryTransport     Category = "Transport"
	CategoryEntertainment Category = "Entertainment"
	CategoryShopping      Category = "Shopping"
	CategoryHealthcare    Category = "Healthcare"
	CategoryEducation     Category = "Education"
	CategoryOther         Category = "Other"
	CategoryBonus         Category = "Bonus"
	CategoryGift          Category = "Gift"
	CategoryRefund        Category = "Refund"
	CategoryRent          Category = "Rent"
	CategoryUtilities     Category = "Utilities"
)

// Categories lists every accepted category.
var Categories = []Category{
	CategorySalary,
	CategoryFreelance,
	CategoryInvestment,
	CategoryFood,
	CategoryTransport,
	CategoryEntertainment,
	CategoryShopping,
	CategoryHealthcare,
	CategoryEducation,
	CategoryOther,
	CategoryBonus,
	CategoryGift,
	CategoryRefund,
	CategoryRent,
	CategoryUtilities,
}

var categorySet = func() map[Category]struct{} {
	m := make(map[Category]struct{}, len(Categories))
	for _, c := range Categories {
		m[c] = struct{}{}
	}

	return m
}()

func (c Category) Valid() bool {
	_, ok := categorySet[c]
	return ok
}

// MaxTitleLength is the upper bound on transaction titles.
const MaxTitleLength = 50

// Transaction represents a single recorded income or expense event.
type Transaction struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID // set from the authenticated caller at creation, immutable
	Title       string
	Amount      decimal.Decimal
	Date        time.Time
	Category    Category
	Type        Type
	Frequency   Frequency
	Description string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// Validate checks the field constraints shared by create and replace,
// reporting the first unmet constraint as a *ValidationError.
func (tx *Transaction) Validate() error {
	if tx.Title == "" {
		return &ValidationError{Field: "title", Reason: "title is required"}
	}

	if len([]rune(tx.Title)) > MaxTitleLength {
		return &ValidationError{Field: "title", Reason: "title cannot be more than 50 characters"}
	}

	if !tx.Amount.IsPositive() {
		return &ValidationError{Field: "amount", Reason: "amount must be greater than zero"}
	}

	if tx.Category == "" {
		return &ValidationError{Field: "category", Reason: "category is required"}
	}

	if !tx.Category.Valid() {
		return &ValidationError{Field: "category", Reason: "unknown category"}
	}

	if tx.Date.IsZero() {
		return &ValidationError{Field: "date", Reason: "date is required"}
	}

	if !tx.Type.Valid() {
		return &ValidationError{Field: "type", Reason: "type must be income or expense"}
	}

	if !tx.Frequency.Valid() {
		return &ValidationError{Field: "frequency", Reason: "unknown frequency"}
	}

	return nil
}
