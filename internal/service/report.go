package service

import (
	"fmt"
	"strings"

	"github.com/Spok95/alseit-payroll/internal/domain/payroll"
)

// renderUpdateReport — сообщение после пересчёта: только бонусы,
// оклады в него не входят.
func renderUpdateReport(summary []payroll.SummaryLine, report payroll.RunReport) string {
	var b strings.Builder
	b.WriteString("✅ Salary обновлена: оклады + продажи по дням записаны\n")
	b.WriteString("📊 Сводка бонусов сохранена в лист 'сводка_бонусов'\n\n")
	b.WriteString("💰 ИТОГОВЫЕ БОНУСЫ:\n")

	totalBonuses := 0.0
	for _, line := range summary {
		if line.Role == payroll.TotalLabel || line.Bonus == 0 {
			continue
		}
		fmt.Fprintf(&b, "👤 %s: %s тенге\n", line.Role, formatMoney(line.Bonus))
		totalBonuses += line.Bonus
	}
	fmt.Fprintf(&b, "🎯 ОБЩАЯ СУММА БОНУСОВ: %s тенге\n", formatMoney(totalBonuses))

	// Потерянный бонус неизвестного менеджера — тоже проблемная строка,
	// хотя из расчёта она не выпала: показываем все проблемы, не только
	// пропуски.
	if len(report.Issues) > 0 {
		fmt.Fprintf(&b, "\n⚠️ Проблемных строк: %d\n", len(report.Issues))
		for _, issue := range report.Issues {
			fmt.Fprintf(&b, "  • заказ %s: %s\n", issue.Order, issue.Reason)
		}
	}
	return b.String()
}

// renderLastRun — отчёт о сохранённом прогоне из аудита.
func renderLastRun(run payroll.Run, lines []payroll.SummaryLine) string {
	var b strings.Builder
	b.WriteString("📒 ПОСЛЕДНИЙ ПРОГОН:\n")
	fmt.Fprintf(&b, "🕒 %s\n", run.StartedAt.Format("02.01.2006 15:04"))
	fmt.Fprintf(&b, "Строк посчитано: %d, пропущено: %d\n\n", run.Processed, run.Skipped)
	for _, line := range lines {
		if line.Role == payroll.TotalLabel {
			continue
		}
		fmt.Fprintf(&b, "👤 %s: %s тенге\n", line.Role, formatMoney(line.Total))
	}
	fmt.Fprintf(&b, "💰 ОБЩАЯ СУММА: %s тенге", formatMoney(run.TotalPayout))
	return b.String()
}

// renderFullSummary — полная ведомость: оклад, бонусы и итого по каждому.
func renderFullSummary(summary []payroll.SummaryLine) string {
	var b strings.Builder
	b.WriteString("💰 ПОЛНАЯ СВОДКА ПО ЗАРПЛАТАМ:\n\n")

	var totalBase, totalBonus, totalAll float64
	for _, line := range summary {
		if line.Role == payroll.TotalLabel {
			continue
		}
		fmt.Fprintf(&b, "👤 %s:\n", line.Role)
		fmt.Fprintf(&b, "   💼 Оклад: %s тенге\n", formatMoney(line.Base))
		if line.Bonus > 0 {
			fmt.Fprintf(&b, "   🎯 Бонусы: %s тенге\n", formatMoney(line.Bonus))
		}
		fmt.Fprintf(&b, "   💰 Итого: %s тенге\n\n", formatMoney(line.Total))
		totalBase += line.Base
		totalBonus += line.Bonus
		totalAll += line.Total
	}

	b.WriteString("📊 ОБЩИЕ СУММЫ:\n")
	fmt.Fprintf(&b, "💼 Всего окладов: %s тенге\n", formatMoney(totalBase))
	fmt.Fprintf(&b, "🎯 Всего бонусов: %s тенге\n", formatMoney(totalBonus))
	fmt.Fprintf(&b, "💰 ОБЩАЯ СУММА: %s тенге", formatMoney(totalAll))
	return b.String()
}

// formatMoney — 1234567.8 -> "1,234,568", как в старых отчётах.
func formatMoney(v float64) string {
	neg := v < 0
	s := fmt.Sprintf("%.0f", v)
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}
