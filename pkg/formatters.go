package pkg

import (
	"fmt"
	"strings"
	"time"
)

const timestampLayout = "2006-01-02 15:04:05"

// FormatTimestamp renders a timestamp in the "YYYY-MM-DD HH:mm:ss" shape used
// by the callback routes.
func FormatTimestamp(t time.Time) string {
	return t.Format(timestampLayout)
}

// FormatCurrencyBRL renders a monetary value in pt-BR notation (R$ 1.234,56).
func FormatCurrencyBRL(value float64) string {
	s := fmt.Sprintf("%.2f", value)

	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	parts := strings.SplitN(s, ".", 2)
	intPart, decPart := parts[0], parts[1]

	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	out := "R$ " + b.String() + "," + decPart
	if neg {
		out = "-" + out
	}
	return out
}
