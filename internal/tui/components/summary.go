package components

import (
	"fmt"
	"strconv"
	"strings"
)

// ItemSummary describes the filtered item list for its footer line.
type ItemSummary struct {
	Loaded     int
	Matching   int
	TotalPrice int
	Filter     string
}

// View renders the summary.
func (s ItemSummary) View() string {
	var b strings.Builder
	if strings.TrimSpace(s.Filter) != "" {
		fmt.Fprintf(&b, "%s of %s items match %q", Thousands(s.Matching), Thousands(s.Loaded), s.Filter)
	} else {
		fmt.Fprintf(&b, "%s items", Thousands(s.Loaded))
	}
	fmt.Fprintf(&b, " | total %s", Thousands(s.TotalPrice))
	return b.String()
}

// Thousands formats n with comma separators.
func Thousands(n int) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	digits := strconv.Itoa(n)
	if len(digits) <= 3 {
		return sign + digits
	}

	var b strings.Builder
	b.WriteString(sign)
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > len(sign) {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
