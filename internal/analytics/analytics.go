// Package analytics computes financial summaries over a transaction
// snapshot. All functions are pure: they expect validated input and
// never touch storage.
package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/spendwise/spendwise/internal/transaction"
)

// Summary holds the derived totals for one owner's transactions.
// Expenses are reported as a non-negative magnitude; only Balance can
// go negative.
type Summary struct {
	TotalIncome       decimal.Decimal
	TotalExpenses     decimal.Decimal
	Balance           decimal.Decimal
	TotalTransactions int
	TotalTurnover     decimal.Decimal
	CategoryIncome    map[transaction.Category]decimal.Decimal
	CategoryExpense   map[transaction.Category]decimal.Decimal
}

// Summarize computes the full summary for a snapshot. Categories with no
// records in a subset are absent from that subset's map, never present
// with value zero. An empty snapshot yields zero totals and empty maps.
func Summarize(txs []*transaction.Transaction) Summary {
	s := Summary{
		CategoryIncome:  make(map[transaction.Category]decimal.Decimal),
		CategoryExpense: make(map[transaction.Category]decimal.Decimal),
	}

	for _, tx := range txs {
		switch tx.Type {
		case transaction.TypeIncome:
			s.TotalIncome = s.TotalIncome.Add(tx.Amount)
			s.CategoryIncome[tx.Category] = s.CategoryIncome[tx.Category].Add(tx.Amount)
		case transaction.TypeExpense:
			s.TotalExpenses = s.TotalExpenses.Add(tx.Amount)
			s.CategoryExpense[tx.Category] = s.CategoryExpense[tx.Category].Add(tx.Amount)
		}
	}

	s.TotalTransactions = len(txs)
	s.Balance = s.TotalIncome.Sub(s.TotalExpenses)
	s.TotalTurnover = s.TotalIncome.Add(s.TotalExpenses)

	return s
}

// IncomeShare reports income as a percentage of total turnover, for
// progress-style indicators. Zero turnover yields 0 rather than a
// division error; the result is capped at 100.
func (s Summary) IncomeShare() float64 {
	if s.TotalTurnover.IsZero() {
		return 0
	}

	share, _ := s.TotalIncome.
		Div(s.TotalTurnover).
		Mul(decimal.NewFromInt(100)).
		Float64()

	if share > 100 {
		return 100
	}

	return share
}
