package product

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testCatalog() *Catalog {
	return New(
		[]Entry{
			{ID: "alseit_25", Price: 870000, Purchase: 566500},
			{ID: "alseit_40", Price: 1300000, Purchase: 646500},
			{ID: "elbrus_100", Price: 0, Purchase: 0},
		},
		[]string{"alseit_25"},
		50000, 100000,
	)
}

func TestLookup(t *testing.T) {
	c := testCatalog()

	e, ok := c.Lookup("alseit_40")
	require.True(t, ok)
	require.Equal(t, 1300000.0, e.Price)
	require.Equal(t, 646500.0, e.Purchase)

	_, ok = c.Lookup("alseit_999")
	require.False(t, ok, "unknown model is a normal miss, not an error")
}

func TestZeroPriceMeansUnpriced(t *testing.T) {
	c := testCatalog()
	e, ok := c.Lookup("elbrus_100")
	require.True(t, ok)
	require.False(t, e.Priced())
}

func TestDeductionTiers(t *testing.T) {
	c := testCatalog()

	require.Equal(t, TierLow, c.Tier("alseit_25"))
	require.Equal(t, 50000.0, c.DeductionFor("alseit_25"))

	require.Equal(t, TierHigh, c.Tier("alseit_40"))
	require.Equal(t, 100000.0, c.DeductionFor("alseit_40"))

	// Неизвестная модель формально относится к высокой ступени,
	// но до вычета дело не дойдёт — Lookup вернёт промах раньше.
	require.Equal(t, TierHigh, c.Tier("alseit_999"))
}
