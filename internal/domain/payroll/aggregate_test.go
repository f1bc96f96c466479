package payroll

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Spok95/alseit-payroll/internal/domain/product"
	"github.com/Spok95/alseit-payroll/internal/domain/sales"
)

func testAggregator() *Aggregator {
	calc := calcWith([]product.Entry{
		{ID: "X", Price: 1000000, Purchase: 600000},
		{ID: "elbrus_100", Price: 0, Purchase: 0},
	}, nil)
	return NewAggregator(calc, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func testRoster() Roster {
	return Roster{
		Managers:   []string{"Alice", "Bob"},
		FixedRoles: []string{"developer"},
		Base: map[string]float64{
			RopColumn:   200000,
			"developer": 300000,
			"Alice":     150000,
			"Bob":       150000,
		},
	}
}

func day(d int) time.Time { return time.Date(2025, 8, d, 0, 0, 0, 0, time.UTC) }

func TestAggregateGroupsByDateAndOrder(t *testing.T) {
	agg := testAggregator()
	txs := []sales.Transaction{
		{Order: "1", Date: day(1), Product: "X", Quantity: 1, Manager: "Alice"},
		{Order: "1", Date: day(1), Product: "X", Quantity: 1, Manager: "Bob"},
		{Order: "2", Date: day(2), Product: "X", Quantity: 1, Manager: "Alice"},
	}

	ledger, _, report := agg.Aggregate(txs, testRoster())
	require.Equal(t, 3, report.Processed)
	require.Len(t, ledger, 2)

	first := ledger[0]
	require.Equal(t, "1", first.Order)
	require.InDelta(t, 18000, first.ROPBonus, 1e-6) // 9 000 с каждой строки заказа
	require.InDelta(t, 45000, first.Managers["Alice"], 1e-6)
	require.InDelta(t, 45000, first.Managers["Bob"], 1e-6)
}

func TestAggregateUnknownManagerKeepsROPShare(t *testing.T) {
	agg := testAggregator()
	txs := []sales.Transaction{
		{Order: "1", Date: day(1), Product: "X", Quantity: 1, Manager: "Чужой"},
	}

	ledger, _, report := agg.Aggregate(txs, testRoster())
	require.Len(t, ledger, 1)
	require.InDelta(t, 9000, ledger[0].ROPBonus, 1e-6)
	require.Empty(t, ledger[0].Managers, "бонус неизвестного менеджера теряется")
	require.Len(t, report.Issues, 1)
}

func TestAggregateSkipsUnpricedAndUnknownProducts(t *testing.T) {
	agg := testAggregator()
	txs := []sales.Transaction{
		{Order: "1", Date: day(1), Product: "elbrus_100", Quantity: 1, Manager: "Alice"},
		{Order: "2", Date: day(1), Product: "нет_такого", Quantity: 1, Manager: "Alice"},
		{Order: "3", Date: day(1), Product: "", Quantity: 1, Manager: "Alice"},
	}

	ledger, summary, report := agg.Aggregate(txs, testRoster())
	require.Empty(t, ledger)
	require.Equal(t, 0, report.Processed)
	require.Equal(t, 3, report.Skipped)

	// В сводке только оклады: бонусов не появилось.
	for _, line := range summary {
		require.Equal(t, 0.0, line.Bonus, "role=%s", line.Role)
	}
}

func TestAggregateSummaryOrderAndContent(t *testing.T) {
	agg := testAggregator()
	txs := []sales.Transaction{
		{Order: "1", Date: day(1), Product: "X", Quantity: 1, Manager: "Alice"},
	}

	_, summary, _ := agg.Aggregate(txs, testRoster())
	require.Len(t, summary, 5) // РОП, developer, Alice, Bob, итог

	require.Equal(t, RopLabel, summary[0].Role)
	require.InDelta(t, 209000, summary[0].Total, 1e-6)

	require.Equal(t, "developer", summary[1].Role)
	require.Equal(t, 300000.0, summary[1].Total)
	require.Equal(t, 0.0, summary[1].Bonus)

	require.Equal(t, "Alice", summary[2].Role)
	require.InDelta(t, 195000, summary[2].Total, 1e-6)

	require.Equal(t, "Bob", summary[3].Role)
	require.Equal(t, 150000.0, summary[3].Total) // только оклад

	require.Equal(t, TotalLabel, summary[4].Role)
}

func TestAggregateDropsZeroTotalLines(t *testing.T) {
	agg := testAggregator()
	roster := Roster{
		Managers: []string{"Alice", "Ghost"},
		Base:     map[string]float64{"Alice": 100000},
	}
	txs := []sales.Transaction{
		{Order: "1", Date: day(1), Product: "X", Quantity: 1, Manager: "Alice"},
	}

	_, summary, _ := agg.Aggregate(txs, roster)
	for _, line := range summary {
		require.NotEqual(t, "Ghost", line.Role, "нулевой итог не попадает в сводку")
	}
}

func TestAggregateReconciliation(t *testing.T) {
	agg := testAggregator()
	txs := []sales.Transaction{
		{Order: "1", Date: day(1), Product: "X", Quantity: 1, Manager: "Alice"},
		{Order: "1", Date: day(1), Product: "X", Quantity: 2, Manager: "Bob"},
		{Order: "7", Date: day(3), Product: "X", Quantity: 1, Manager: "Чужой"},
	}

	_, summary, _ := agg.Aggregate(txs, testRoster())
	require.True(t, Reconcile(summary))

	sum := 0.0
	for _, line := range summary[:len(summary)-1] {
		sum += line.Total
	}
	require.Equal(t, sum, summary[len(summary)-1].Total, "итог сходится точно, без допусков")
}

func TestAggregateIdempotent(t *testing.T) {
	agg := testAggregator()
	txs := []sales.Transaction{
		{Order: "2", Date: day(2), Product: "X", Quantity: 1, Manager: "Bob"},
		{Order: "1", Date: day(1), Product: "X", Quantity: 1, Manager: "Alice"},
		{Order: "1", Date: day(1), Product: "X", Quantity: 3, Manager: "Alice"},
	}

	ledger1, summary1, report1 := agg.Aggregate(txs, testRoster())
	ledger2, summary2, report2 := agg.Aggregate(txs, testRoster())

	require.Equal(t, ledger1, ledger2)
	require.Equal(t, summary1, summary2)
	require.Equal(t, report1, report2)
}

func TestAggregateEmptyPeriod(t *testing.T) {
	agg := testAggregator()

	ledger, summary, report := agg.Aggregate(nil, Roster{Base: map[string]float64{}})
	require.Empty(t, ledger)
	require.Equal(t, 0, report.Processed)
	require.Len(t, summary, 1)
	require.Equal(t, TotalLabel, summary[0].Role)
	require.Equal(t, 0.0, summary[0].Total)
}

func TestReconcileRejectsTamperedSummary(t *testing.T) {
	summary := []SummaryLine{
		{Role: "Alice", Total: 100},
		{Role: TotalLabel, Total: 150},
	}
	require.False(t, Reconcile(summary))
	require.False(t, Reconcile(nil))
}
