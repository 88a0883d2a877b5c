package components

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestItemSummaryView(t *testing.T) {
	t.Parallel()

	t.Run("renders totals without filter", func(t *testing.T) {
		t.Parallel()
		view := ItemSummary{Loaded: 2000, Matching: 2000, TotalPrice: 1234567}.View()
		require.Equal(t, "2,000 items | total 1,234,567", view)
	})

	t.Run("renders match count with filter", func(t *testing.T) {
		t.Parallel()
		view := ItemSummary{Loaded: 1000, Matching: 12, TotalPrice: 300, Filter: "books"}.View()
		require.Equal(t, `12 of 1,000 items match "books" | total 300`, view)
	})
}

func TestThousands(t *testing.T) {
	t.Parallel()

	cases := map[int]string{
		0:        "0",
		999:      "999",
		1000:     "1,000",
		12345:    "12,345",
		123456:   "123,456",
		-9876543: "-9,876,543",
	}
	for in, want := range cases {
		require.Equal(t, want, Thousands(in), in)
	}
}
