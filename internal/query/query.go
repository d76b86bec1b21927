// Package query filters, searches, and sorts a transaction snapshot for
// display. All functions are pure and leave the input slice untouched.
package query

import (
	"slices"
	"strings"

	"github.com/spendwise/spendwise/internal/transaction"
)

// All is the wildcard value for the type and category filters.
const All = "all"

// Filter selects the transactions to show. Zero values behave like All
// with an empty search, so the zero Filter passes everything.
type Filter struct {
	Type     string // All, "income" or "expense"
	Category string // All or a category name
	Search   string // case-insensitive substring of title or category
}

func (f Filter) matches(tx *transaction.Transaction) bool {
	if f.Type != "" && f.Type != All && f.Type != string(tx.Type) {
		return false
	}

	if f.Category != "" && f.Category != All && f.Category != string(tx.Category) {
		return false
	}

	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(tx.Title), needle) &&
			!strings.Contains(strings.ToLower(string(tx.Category)), needle) {
			return false
		}
	}

	return true
}

// Apply returns the transactions passing all three predicates.
func Apply(txs []*transaction.Transaction, f Filter) []*transaction.Transaction {
	var out []*transaction.Transaction

	for _, tx := range txs {
		if f.matches(tx) {
			out = append(out, tx)
		}
	}

	return out
}

// Key names a sortable transaction field.
type Key string

const (
	KeyTitle     Key = "title"
	KeyAmount    Key = "amount"
	KeyType      Key = "type"
	KeyFrequency Key = "frequency"
	KeyCategory  Key = "category"
	KeyDate      Key = "date"
)

func (k Key) Valid() bool {
	switch k {
	case KeyTitle, KeyAmount, KeyType, KeyFrequency, KeyCategory, KeyDate:
		return true
	}

	return false
}

// Direction is the sort direction.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Sort combines a key and a direction.
type Sort struct {
	Key       Key
	Direction Direction
}

// DefaultSort is the list view default: newest first.
var DefaultSort = Sort{Key: KeyDate, Direction: Desc}

// Toggle returns the sort resulting from selecting key k: the same key
// flips direction, a new key starts ascending.
func (s Sort) Toggle(k Key) Sort {
	if s.Key == k && s.Direction == Asc {
		return Sort{Key: k, Direction: Desc}
	}

	return Sort{Key: k, Direction: Asc}
}

// Order returns a sorted copy of the snapshot. Dates compare as points
// in time, amounts numerically, everything else lexically. Ties break
// on id so descending is always the exact reverse of ascending.
func Order(txs []*transaction.Transaction, s Sort) []*transaction.Transaction {
	out := slices.Clone(txs)

	slices.SortFunc(out, func(a, b *transaction.Transaction) int {
		c := compare(a, b, s.Key)
		if c == 0 {
			c = strings.Compare(a.ID.String(), b.ID.String())
		}

		if s.Direction == Desc {
			c = -c
		}

		return c
	})

	return out
}

func compare(a, b *transaction.Transaction, k Key) int {
	switch k {
	case KeyTitle:
		return strings.Compare(a.Title, b.Title)
	case KeyAmount:
		return a.Amount.Cmp(b.Amount)
	case KeyType:
		return strings.Compare(string(a.Type), string(b.Type))
	case KeyFrequency:
		return strings.Compare(string(a.Frequency), string(b.Frequency))
	case KeyCategory:
		return strings.Compare(string(a.Category), string(b.Category))
	default:
		return a.Date.Compare(b.Date)
	}
}
