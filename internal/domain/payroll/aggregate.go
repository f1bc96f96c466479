package payroll

import (
	"log/slog"
	"sort"
	"time"

	"github.com/Spok95/alseit-payroll/internal/domain/sales"
)

// Aggregator сворачивает продажи периода в ведомость и сводку.
// Расчёт детерминированный: одинаковый вход даёт байт-в-байт одинаковый
// результат, потому что ведомость сортируется, а строки сводки идут в
// фиксированном порядке ростера. Прошлую ведомость вызывающий код
// замещает целиком — повторный прогон ничего не задваивает.
type Aggregator struct {
	calc *Calculator
	log  *slog.Logger
}

func NewAggregator(calc *Calculator, log *slog.Logger) *Aggregator {
	return &Aggregator{calc: calc, log: log}
}

type groupKey struct {
	date  time.Time
	order string
}

// Aggregate обрабатывает все строки периода. Проблемная строка попадает в
// отчёт и пропускается — один кривой заказ не должен ронять весь расчёт,
// таблицы ведутся руками.
func (a *Aggregator) Aggregate(txs []sales.Transaction, roster Roster) ([]LedgerEntry, []SummaryLine, RunReport) {
	groups := make(map[groupKey]*LedgerEntry)
	var keys []groupKey
	var report RunReport

	for _, tx := range txs {
		if tx.Product == "" {
			report.Skipped++
			report.Issues = append(report.Issues, RowIssue{Order: tx.Order, Reason: "пустое название модели"})
			continue
		}

		res, ok := a.calc.Compute(tx)
		if !ok {
			report.Skipped++
			report.Issues = append(report.Issues, RowIssue{Order: tx.Order, Reason: "модель не в каталоге или без цены: " + tx.Product})
			a.log.Warn("sale skipped", "order", tx.Order, "product", tx.Product)
			continue
		}
		report.Processed++

		key := groupKey{date: tx.Date, order: tx.Order}
		entry, exists := groups[key]
		if !exists {
			entry = &LedgerEntry{Date: tx.Date, Order: tx.Order, Managers: map[string]float64{}}
			groups[key] = entry
			keys = append(keys, key)
		}

		// 1% РОП идёт в общий пул с каждой продажи, чей бы заказ ни был.
		entry.ROPBonus += res.ROPBonus

		if roster.HasManager(tx.Manager) {
			entry.Managers[tx.Manager] += res.ManagerBonus
		} else {
			// Бонус менеджера теряется, пул РОП уже учтён.
			report.Issues = append(report.Issues, RowIssue{Order: tx.Order, Reason: "менеджер не найден в ведомости: " + tx.Manager})
			a.log.Warn("manager not in roster", "order", tx.Order, "manager", tx.Manager)
		}
	}

	sort.Slice(keys, func(i, j int) bool {
		if !keys[i].date.Equal(keys[j].date) {
			return keys[i].date.Before(keys[j].date)
		}
		return keys[i].order < keys[j].order
	})

	ledger := make([]LedgerEntry, 0, len(keys))
	for _, k := range keys {
		ledger = append(ledger, *groups[k])
	}

	summary := a.buildSummary(ledger, roster)
	if !Reconcile(summary) {
		// Ошибка реализации, не данных: числа всё равно отдаём, но громко.
		a.log.Error("payroll summary failed reconciliation")
	}
	return ledger, summary, report
}

// buildSummary собирает сводку: пул РОП, фиксированные оклады, менеджеры,
// итоговая строка. Строка попадает в сводку только при итоге больше нуля.
func (a *Aggregator) buildSummary(ledger []LedgerEntry, roster Roster) []SummaryLine {
	var summary []SummaryLine

	ropBonus := 0.0
	for _, e := range ledger {
		ropBonus += e.ROPBonus
	}
	ropBase := roster.BaseFor(RopColumn)
	if ropBase+ropBonus > 0 {
		summary = append(summary, SummaryLine{Role: RopLabel, Base: ropBase, Bonus: ropBonus, Total: ropBase + ropBonus})
	}

	for _, role := range roster.FixedRoles {
		base := roster.BaseFor(role)
		if base > 0 {
			summary = append(summary, SummaryLine{Role: role, Base: base, Total: base})
		}
	}

	for _, m := range roster.Managers {
		bonus := 0.0
		for _, e := range ledger {
			bonus += e.Managers[m]
		}
		base := roster.BaseFor(m)
		if base+bonus > 0 {
			summary = append(summary, SummaryLine{Role: m, Base: base, Bonus: bonus, Total: base + bonus})
		}
	}

	// Итог считается в том же порядке и тем же представлением, что и
	// строки выше — сверка обязана сходиться точно, без допусков.
	var total SummaryLine
	total.Role = TotalLabel
	for _, line := range summary {
		total.Base += line.Base
		total.Bonus += line.Bonus
		total.Total += line.Total
	}
	return append(summary, total)
}

// Reconcile проверяет сводку: сумма итогов всех строк, кроме последней,
// должна точно совпадать с итоговой строкой.
func Reconcile(summary []SummaryLine) bool {
	if len(summary) == 0 {
		return false
	}
	last := summary[len(summary)-1]
	if last.Role != TotalLabel {
		return false
	}
	sum := 0.0
	for _, line := range summary[:len(summary)-1] {
		sum += line.Total
	}
	return sum == last.Total
}
