package store

import (
	"context"
	"errors"

	"github.com/Spok95/alseit-payroll/internal/domain/payroll"
	"github.com/Spok95/alseit-payroll/internal/domain/sales"
)

var (
	// ErrNoRoster — лист зарплаты пуст или нечитаем: считать нечего,
	// это жёсткая ошибка в отличие от проблем в отдельных строках.
	ErrNoRoster = errors.New("roster is empty or unreadable")

	// ErrEmployeeNotFound — сотрудника нет в ведомости (переименование).
	ErrEmployeeNotFound = errors.New("employee not found")
)

// SalesReader отдаёт продажи периода. Движок не знает, откуда они:
// книга Excel, база, что угодно с такой же формой строк.
type SalesReader interface {
	LoadSales(ctx context.Context) ([]sales.Transaction, error)
}

// RosterReader отдаёт состав ведомости и оклады из строки с order = 0.
type RosterReader interface {
	LoadRoster(ctx context.Context) (payroll.Roster, error)
}

// LedgerWriter замещает прошлую ведомость целиком. Никакого дописывания:
// повторный прогон по тем же данным обязан дать тот же результат.
type LedgerWriter interface {
	ReplaceLedger(ctx context.Context, ledger []payroll.LedgerEntry, summary []payroll.SummaryLine, roster payroll.Roster) error
}

// Store — всё, что нужно сервису расчёта от хранилища.
type Store interface {
	SalesReader
	RosterReader
	LedgerWriter
}
