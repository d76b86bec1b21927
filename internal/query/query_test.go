package query_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendwise/spendwise/internal/query"
	"github.com/spendwise/spendwise/internal/transaction"
)

func fixture() []*transaction.Transaction {
	day := func(d int) time.Time {
		return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
	}

	return []*transaction.Transaction{
		{
			ID:       uuid.New(),
			Title:    "Food run",
			Amount:   decimal.RequireFromString("45.20"),
			Date:     day(3),
			Category: transaction.CategoryFood,
			Type:     transaction.TypeExpense,
		},
		{
			ID:       uuid.New(),
			Title:    "Monthly salary",
			Amount:   decimal.NewFromInt(2500),
			Date:     day(1),
			Category: transaction.CategorySalary,
			Type:     transaction.TypeIncome,
		},
		{
			ID:       uuid.New(),
			Title:    "Bus pass",
			Amount:   decimal.NewFromInt(30),
			Date:     day(5),
			Category: transaction.CategoryTransport,
			Type:     transaction.TypeExpense,
		},
		{
			ID:       uuid.New(),
			Title:    "Side project",
			Amount:   decimal.NewFromInt(400),
			Date:     day(3),
			Category: transaction.CategoryFreelance,
			Type:     transaction.TypeIncome,
		},
	}
}

func titles(txs []*transaction.Transaction) []string {
	out := make([]string, len(txs))
	for i, tx := range txs {
		out[i] = tx.Title
	}

	return out
}

func TestApply_TypeFilter(t *testing.T) {
	got := query.Apply(fixture(), query.Filter{Type: "income"})

	require.Len(t, got, 2)
	for _, tx := range got {
		assert.Equal(t, transaction.TypeIncome, tx.Type)
	}
}

func TestApply_AllPassesEverything(t *testing.T) {
	txs := fixture()

	assert.Len(t, query.Apply(txs, query.Filter{Type: query.All, Category: query.All}), len(txs))
	assert.Len(t, query.Apply(txs, query.Filter{}), len(txs), "zero filter behaves like all")
}

func TestApply_Search(t *testing.T) {
	txs := fixture()

	// Case-insensitive substring of the title.
	got := query.Apply(txs, query.Filter{Search: "foo"})
	require.Len(t, got, 1)
	assert.Equal(t, "Food run", got[0].Title)

	// Also matches against the category name.
	got = query.Apply(txs, query.Filter{Search: "transp"})
	require.Len(t, got, 1)
	assert.Equal(t, "Bus pass", got[0].Title)

	got = query.Apply(txs, query.Filter{Search: "no such thing"})
	assert.Empty(t, got)
}

func TestApply_PredicatesAreANDed(t *testing.T) {
	txs := fixture()

	got := query.Apply(txs, query.Filter{Type: "expense", Search: "foo"})
	require.Len(t, got, 1)
	assert.Equal(t, "Food run", got[0].Title)

	// Search matches an income record, but the type filter excludes it.
	got = query.Apply(txs, query.Filter{Type: "expense", Search: "salary"})
	assert.Empty(t, got)
}

func TestApply_CategoryFilter(t *testing.T) {
	got := query.Apply(fixture(), query.Filter{Category: "Food"})

	require.Len(t, got, 1)
	assert.Equal(t, transaction.CategoryFood, got[0].Category)
}

func TestOrder_ByAmount(t *testing.T) {
	txs := fixture()

	got := query.Order(txs, query.Sort{Key: query.KeyAmount, Direction: query.Asc})
	assert.Equal(t, []string{"Bus pass", "Food run", "Side project", "Monthly salary"}, titles(got))
}

func TestOrder_ToggleReversesExactly(t *testing.T) {
	txs := fixture()

	srt := query.Sort{Key: query.KeyAmount, Direction: query.Asc}
	asc := query.Order(txs, srt)

	srt = srt.Toggle(query.KeyAmount)
	assert.Equal(t, query.Desc, srt.Direction)

	desc := query.Order(txs, srt)

	require.Len(t, desc, len(asc))
	for i := range asc {
		assert.Same(t, asc[i], desc[len(desc)-1-i])
	}
}

func TestOrder_TieBreakIsDeterministic(t *testing.T) {
	txs := fixture()

	// Two records share day 3; repeated sorts must agree regardless of
	// input order.
	a := query.Order(txs, query.Sort{Key: query.KeyDate, Direction: query.Asc})

	reversed := []*transaction.Transaction{txs[3], txs[2], txs[1], txs[0]}
	b := query.Order(reversed, query.Sort{Key: query.KeyDate, Direction: query.Asc})

	assert.Equal(t, titles(a), titles(b))
}

func TestOrder_DoesNotMutateInput(t *testing.T) {
	txs := fixture()
	before := titles(txs)

	query.Order(txs, query.Sort{Key: query.KeyTitle, Direction: query.Asc})

	assert.Equal(t, before, titles(txs))
}

func TestSort_Toggle(t *testing.T) {
	s := query.DefaultSort
	assert.Equal(t, query.Sort{Key: query.KeyDate, Direction: query.Desc}, s)

	// Same key flips direction both ways.
	s = s.Toggle(query.KeyDate)
	assert.Equal(t, query.Sort{Key: query.KeyDate, Direction: query.Asc}, s)

	s = s.Toggle(query.KeyDate)
	assert.Equal(t, query.Sort{Key: query.KeyDate, Direction: query.Desc}, s)

	// A new key resets to ascending.
	s = s.Toggle(query.KeyAmount)
	assert.Equal(t, query.Sort{Key: query.KeyAmount, Direction: query.Asc}, s)
}

func TestKey_Valid(t *testing.T) {
	for _, k := range []query.Key{
		query.KeyTitle, query.KeyAmount, query.KeyType,
		query.KeyFrequency, query.KeyCategory, query.KeyDate,
	} {
		assert.True(t, k.Valid(), "key %s", k)
	}

	assert.False(t, query.Key("owner").Valid())
	assert.False(t, query.Key("").Valid())
}
