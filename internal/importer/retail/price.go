package retail

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// parsePrice parses a comma-decimal price string into cents, rounded to two
// fractional digits. "2,55" -> 255, "0,00" -> 0. Every comma is replaced
// with a period before parsing, so thousands separators are not accepted.
func parsePrice(s string) (int64, error) {
	clean := strings.ReplaceAll(s, ",", ".")

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, errors.New("not a number")
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}
