package transaction

import (
	"fmt"
	"time"
)

// Transaction is one line of a retail bill as persisted in the destination
// table. BillNo and CustomerID stay text on purpose: real exports mix
// numeric bills with credit notes like "C536379" that do not survive a
// numeric cast.
type Transaction struct {
	ID         int64
	BillNo     string
	Itemname   string
	Quantity   *int64 // nil when the source field was empty
	Date       time.Time
	PriceCents int64 // fixed-point, 2 fractional digits
	CustomerID string
	Country    string
}

// CreateParams carries one transformed record into the store.
type CreateParams struct {
	BillNo     string
	Itemname   string
	Quantity   *int64
	Date       time.Time
	PriceCents int64
	CustomerID string
	Country    string
}

// FormatPrice renders cents as the decimal string stored in NUMERIC(10,2).
// 255 -> "2.55", -50 -> "-0.50".
func FormatPrice(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}

	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
