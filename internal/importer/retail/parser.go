package retail

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	enc "github.com/jmarques/retailingest/internal/encoding"
	"github.com/jmarques/retailingest/internal/staging"
)

// header is the required column layout of the export, in order. A file with
// a different shape aborts the whole load; there is no per-row recovery.
var header = []string{"BillNo", "Itemname", "Quantity", "Date", "Price", "CustomerID", "Country"}

// Parser stages semicolon-delimited retail exports. Fields are kept as raw
// text; typing happens in Transform.
type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) (*staging.Batch, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detect encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.Comma = ';'
	reader.LazyQuotes = true
	// FieldsPerRecord is left at 0 so the header fixes the width and any
	// row with a different column count fails the read.

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	if len(rows) == 0 {
		return nil, errors.New("empty file: missing header row")
	}

	if err := checkHeader(rows[0]); err != nil {
		return nil, err
	}

	records := make([]staging.Record, 0, len(rows)-1)

	for _, row := range rows[1:] {
		records = append(records, staging.Record{
			BillNo:     row[0],
			Itemname:   row[1],
			Quantity:   row[2],
			Date:       row[3],
			Price:      row[4],
			CustomerID: row[5],
			Country:    row[6],
		})
	}

	return staging.NewBatch(records), nil
}

func checkHeader(row []string) error {
	if len(row) != len(header) {
		return fmt.Errorf("header has %d columns, expected %d (%s)",
			len(row), len(header), strings.Join(header, ";"))
	}

	for i, want := range header {
		if strings.TrimSpace(row[i]) != want {
			return fmt.Errorf("header column %d: got %q, expected %q", i+1, row[i], want)
		}
	}

	return nil
}
