// Package importer turns uploaded statement files into transaction
// payloads. Parsed rows go through the same validation as manual
// creation; the importer only handles shape and encoding.
package importer

import (
	"fmt"
	"io"

	"github.com/spendwise/spendwise/internal/transaction"
)

// Format names a supported file format.
type Format string

const (
	FormatCSV Format = "csv"
)

type Importer interface {
	Parse(r io.Reader) ([]transaction.CreateParams, error)
}

// RowError reports a parse failure with the 1-based data row it
// occurred on.
type RowError struct {
	Row int
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }
