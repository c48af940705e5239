package commandcenter

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Percent is a percentage figure: a growth assumption, an allocation
// share, or a return on investment.
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}

// factor returns the exact multiplier (1 + p/100) applied to a price.
func (p Percent) factor() decimal.Decimal {
	return decimal.NewFromFloat(float64(p)).Div(newDecimal(100)).Add(newDecimal(1))
}
