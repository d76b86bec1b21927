package importer

import (
	"fmt"
	"io"

	"github.com/spendwise/spendwise/internal/transaction"
)

type Service struct {
	csvImporter Importer
}

// NewService wires the known format parsers.
func NewService(csvImporter Importer) *Service {
	return &Service{csvImporter: csvImporter}
}

func (s *Service) Import(format Format, r io.Reader) ([]transaction.CreateParams, error) {
	var imp Importer

	switch format {
	case FormatCSV:
		imp = s.csvImporter
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}

	return imp.Parse(r)
}
