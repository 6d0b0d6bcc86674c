package retail

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jmarques/retailingest/internal/staging"
	"github.com/jmarques/retailingest/internal/transaction"
)

// dateLayout matches the export's timestamp format, e.g. "01.12.2010 08:26".
const dateLayout = "02.01.2006 15:04"

// Transform types every staged record. The batch is all-or-nothing: the
// first malformed record aborts the transform with nothing produced, which
// keeps a bad file from half-loading.
func (p *Parser) Transform(batch *staging.Batch) ([]transaction.CreateParams, error) {
	records, err := batch.Records()
	if err != nil {
		return nil, err
	}

	params := make([]transaction.CreateParams, 0, len(records))

	for i, rec := range records {
		cp, err := transformRecord(rec)
		if err != nil {
			// File line number, counting the header as line 1.
			return nil, fmt.Errorf("line %d: %w", i+2, err)
		}

		params = append(params, cp)
	}

	return params, nil
}

func transformRecord(rec staging.Record) (transaction.CreateParams, error) {
	quantity, err := parseQuantity(rec.Quantity)
	if err != nil {
		return transaction.CreateParams{}, fmt.Errorf("quantity %q: %w", rec.Quantity, err)
	}

	date, err := time.Parse(dateLayout, rec.Date)
	if err != nil {
		return transaction.CreateParams{}, fmt.Errorf("date %q: expected DD.MM.YYYY HH:MM", rec.Date)
	}

	cents, err := parsePrice(rec.Price)
	if err != nil {
		return transaction.CreateParams{}, fmt.Errorf("price %q: %w", rec.Price, err)
	}

	// BillNo and CustomerID are copied verbatim, never parsed as numbers.
	return transaction.CreateParams{
		BillNo:     rec.BillNo,
		Itemname:   rec.Itemname,
		Quantity:   quantity,
		Date:       date,
		PriceCents: cents,
		CustomerID: rec.CustomerID,
		Country:    rec.Country,
	}, nil
}

// parseQuantity maps the empty string to NULL and anything else to an
// integer. A non-numeric, non-empty value is an error.
func parseQuantity(s string) (*int64, error) {
	if s == "" {
		return nil, nil
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil, errors.New("not an integer")
	}

	return &n, nil
}
