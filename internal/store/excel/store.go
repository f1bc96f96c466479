// Package excel — хранилище поверх рабочей книги бизнеса (Alseit.xlsx):
// лист продаж читается, лист зарплаты и сводка замещаются целиком.
package excel

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Spok95/alseit-payroll/internal/domain/payroll"
	"github.com/Spok95/alseit-payroll/internal/domain/sales"
	"github.com/Spok95/alseit-payroll/internal/store"
)

const dateLayout = "02.01.2006"

type Options struct {
	Path         string
	SalesSheet   string // «продажи»
	SalarySheet  string // «зарплата»
	SummarySheet string // «сводка_бонусов»
	DeliveryPay  float64
	DeliveryShop float64
	FixedRoles   []string // колонки с окладом без бонусов
	CacheTTL     time.Duration
}

type Store struct {
	opts  Options
	cache *sheetCache
	log   *slog.Logger

	// Книга — один файл на диске, запись сериализуем.
	mu sync.Mutex
}

func New(opts Options, log *slog.Logger) *Store {
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 5 * time.Minute
	}
	return &Store{opts: opts, cache: newSheetCache(opts.CacheTTL), log: log}
}

func (s *Store) sheetRows(sheet string) ([][]string, error) {
	if rows, ok := s.cache.get(s.opts.Path, sheet); ok {
		return rows, nil
	}
	f, err := excelize.OpenFile(s.opts.Path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	s.cache.set(s.opts.Path, sheet, rows)
	return rows, nil
}

// LoadSales читает лист продаж. Кривые значения приводятся к безопасным
// умолчаниям прямо здесь: дальше движок работает с нормализованными
// строками.
func (s *Store) LoadSales(_ context.Context) ([]sales.Transaction, error) {
	rows, err := s.sheetRows(s.opts.SalesSheet)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, nil // пустой период — валидное состояние
	}

	cols := resolveColumns(rows[0])
	out := make([]sales.Transaction, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if emptyRow(row) {
			continue
		}
		var tx sales.Transaction

		idx, ok := cols["order"]
		tx.Order = cell(row, idx, ok)

		idx, ok = cols["date"]
		if raw := cell(row, idx, ok); raw != "" {
			if d, err := time.Parse(dateLayout, raw); err == nil {
				tx.Date = d
			}
		}

		idx, ok = cols["product"]
		tx.Product = cell(row, idx, ok)

		idx, ok = cols["quantity"]
		tx.Quantity = sales.Quantity(cell(row, idx, ok))

		idx, ok = cols["price"]
		tx.UnitPrice = sales.Money(cell(row, idx, ok))

		idx, ok = cols["purchase"]
		tx.UnitPurchase = sales.Money(cell(row, idx, ok))

		idx, ok = cols["payment"]
		tx.Payment = sales.ParsePayment(cell(row, idx, ok))

		idx, ok = cols["delivery"]
		tx.Delivery, tx.DeliveryCost = sales.ParseDelivery(cell(row, idx, ok), s.opts.DeliveryPay, s.opts.DeliveryShop)

		idx, ok = cols["access"]
		tx.Accessories = sales.Money(cell(row, idx, ok))

		idx, ok = cols["manager"]
		tx.Manager = cell(row, idx, ok)

		out = append(out, tx)
	}
	return out, nil
}

// LoadRoster разбирает заголовок листа зарплаты и строку окладов
// (order = 0). Колонки, не являющиеся служебными и не входящие в список
// фиксированных ролей, считаются менеджерами — в порядке листа.
func (s *Store) LoadRoster(_ context.Context) (payroll.Roster, error) {
	rows, err := s.sheetRows(s.opts.SalarySheet)
	if err != nil {
		return payroll.Roster{}, err
	}
	if len(rows) == 0 {
		return payroll.Roster{}, store.ErrNoRoster
	}

	fixed := map[string]struct{}{}
	for _, role := range s.opts.FixedRoles {
		fixed[role] = struct{}{}
	}

	header := rows[0]
	roster := payroll.Roster{Base: map[string]float64{}}
	orderCol := -1
	for idx, raw := range header {
		name := strings.TrimSpace(raw)
		switch {
		case name == "":
		case strings.EqualFold(name, "date"):
		case strings.EqualFold(name, "order"):
			orderCol = idx
		case name == payroll.RopColumn:
		default:
			if _, ok := fixed[name]; ok {
				roster.FixedRoles = append(roster.FixedRoles, name)
			} else {
				roster.Managers = append(roster.Managers, name)
			}
		}
	}
	if len(roster.Managers) == 0 && len(roster.FixedRoles) == 0 {
		return payroll.Roster{}, store.ErrNoRoster
	}

	base := baseRow(rows, orderCol)
	if base != nil {
		for idx, raw := range header {
			name := strings.TrimSpace(raw)
			if name == "" || strings.EqualFold(name, "date") || strings.EqualFold(name, "order") {
				continue
			}
			roster.Base[name] = sales.Money(cell(base, idx, true))
		}
	}
	return roster, nil
}

// baseRow находит строку окладов: order == 0, иначе первая строка данных.
func baseRow(rows [][]string, orderCol int) []string {
	if len(rows) < 2 {
		return nil
	}
	if orderCol >= 0 {
		for _, row := range rows[1:] {
			if cell(row, orderCol, true) == "0" {
				return row
			}
		}
	}
	return rows[1]
}

// ReplaceLedger переписывает лист зарплаты и сводку заново, остальные
// листы книги не трогает. Лист продаж не изменяется: движок транзакции
// не мутирует.
func (s *Store) ReplaceLedger(_ context.Context, ledger []payroll.LedgerEntry, summary []payroll.SummaryLine, roster payroll.Roster) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := excelize.OpenFile(s.opts.Path)
	if err != nil {
		return fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := recreateSheet(f, s.opts.SalarySheet); err != nil {
		return err
	}
	if err := recreateSheet(f, s.opts.SummarySheet); err != nil {
		return err
	}

	// Заголовок: date, order, пул РОП, фиксированные роли, менеджеры.
	header := []interface{}{"date", "order", payroll.RopColumn}
	for _, role := range roster.FixedRoles {
		header = append(header, role)
	}
	for _, m := range roster.Managers {
		header = append(header, m)
	}
	if err := writeRow(f, s.opts.SalarySheet, 1, header); err != nil {
		return err
	}

	// Строка окладов — сигнальный order = 0.
	base := []interface{}{"", 0, roster.BaseFor(payroll.RopColumn)}
	for _, role := range roster.FixedRoles {
		base = append(base, roster.BaseFor(role))
	}
	for _, m := range roster.Managers {
		base = append(base, roster.BaseFor(m))
	}
	if err := writeRow(f, s.opts.SalarySheet, 2, base); err != nil {
		return err
	}

	for i, entry := range ledger {
		row := []interface{}{formatDate(entry.Date), entry.Order, entry.ROPBonus}
		for range roster.FixedRoles {
			row = append(row, 0) // явный ноль, не пустая ячейка
		}
		for _, m := range roster.Managers {
			row = append(row, entry.Managers[m])
		}
		if err := writeRow(f, s.opts.SalarySheet, 3+i, row); err != nil {
			return err
		}
	}

	if err := writeRow(f, s.opts.SummarySheet, 1, []interface{}{"Тип", "Оклад", "Бонусы", "Итого"}); err != nil {
		return err
	}
	for i, line := range summary {
		row := []interface{}{line.Role, line.Base, line.Bonus, line.Total}
		if err := writeRow(f, s.opts.SummarySheet, 2+i, row); err != nil {
			return err
		}
	}

	if err := f.Save(); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	s.cache.invalidate(s.opts.Path)
	return nil
}

// RenameEmployee переименовывает сотрудника в заголовке ведомости и во
// всех ячейках менеджера на листе продаж.
func (s *Store) RenameEmployee(_ context.Context, oldName, newName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := excelize.OpenFile(s.opts.Path)
	if err != nil {
		return fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	salaryRows, err := f.GetRows(s.opts.SalarySheet)
	if err != nil || len(salaryRows) == 0 {
		return store.ErrNoRoster
	}
	found := false
	for idx, raw := range salaryRows[0] {
		if strings.TrimSpace(raw) == oldName {
			cellName, err := excelize.CoordinatesToCellName(idx+1, 1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(s.opts.SalarySheet, cellName, newName); err != nil {
				return err
			}
			found = true
			break
		}
	}
	if !found {
		return store.ErrEmployeeNotFound
	}

	salesRows, err := f.GetRows(s.opts.SalesSheet)
	if err == nil && len(salesRows) > 0 {
		cols := resolveColumns(salesRows[0])
		if mIdx, ok := cols["manager"]; ok {
			for rowIdx, row := range salesRows[1:] {
				if cell(row, mIdx, true) != oldName {
					continue
				}
				cellName, err := excelize.CoordinatesToCellName(mIdx+1, rowIdx+2)
				if err != nil {
					return err
				}
				if err := f.SetCellValue(s.opts.SalesSheet, cellName, newName); err != nil {
					return err
				}
			}
		}
	}

	if err := f.Save(); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	s.cache.invalidate(s.opts.Path)
	s.log.Info("employee renamed", "old", oldName, "new", newName)
	return nil
}

func recreateSheet(f *excelize.File, name string) error {
	if idx, err := f.GetSheetIndex(name); err == nil && idx >= 0 {
		if err := f.DeleteSheet(name); err != nil {
			return fmt.Errorf("delete sheet %q: %w", name, err)
		}
	}
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("create sheet %q: %w", name, err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cellName, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cellName, &values)
}

func formatDate(d time.Time) string {
	if d.IsZero() {
		return ""
	}
	return d.Format(dateLayout)
}

func emptyRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
