package analytics

import (
	"fmt"
	"math"
	"strings"
)

const marginClamp = 999.0

// MarginPercent computes (price-cost)/price as a percentage. A zero
// price yields 0, and the result is clamped to [-999, 999] so bad
// input can never produce an unbounded or non-finite display value.
func MarginPercent(price, cost float64) float64 {
	price = finiteOrZero(price)
	cost = finiteOrZero(cost)
	if price == 0 {
		return 0
	}
	pct := (price - cost) / price * 100
	if pct > marginClamp {
		return marginClamp
	}
	if pct < -marginClamp {
		return -marginClamp
	}
	return pct
}

// Money renders a whole-dollar amount with comma grouping, e.g. "$58,340".
// This is the summary/KPI convention; per-row amounts use MoneyExact.
func Money(n float64) string {
	n = finiteOrZero(n)
	rounded := int64(math.Round(n))
	neg := rounded < 0
	if neg {
		rounded = -rounded
	}
	s := groupThousands(fmt.Sprintf("%d", rounded))
	if neg {
		return "-$" + s
	}
	return "$" + s
}

// MoneyExact renders a 2-decimal amount with comma grouping, e.g. "$1,234.56".
func MoneyExact(n float64) string {
	n = finiteOrZero(n)
	neg := n < 0
	if neg {
		n = -n
	}
	s := fmt.Sprintf("%.2f", n)
	parts := strings.SplitN(s, ".", 2)
	out := groupThousands(parts[0]) + "." + parts[1]
	if neg {
		return "-$" + out
	}
	return "$" + out
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func finiteOrZero(n float64) float64 {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}
