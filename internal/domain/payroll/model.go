package payroll

import "time"

// RopColumn — служебная колонка листа зарплаты с общим пулом РОП:
// 1% со всех продаж идёт туда независимо от того, чей был заказ.
const RopColumn = "employee ROP"

// TotalLabel — подпись итоговой строки сводки.
const TotalLabel = "ОБЩАЯ СУММА"

// RopLabel — подпись строки пула РОП в сводке.
const RopLabel = "ROP сотрудники"

// Rates — процентные ставки расчёта. Задаются конфигурацией один раз.
type Rates struct {
	Manager  float64 // доля менеджера от бонусной базы, 0.05
	ROP      float64 // доля РОП, 0.01
	BankTax  float64 // комиссия при оплате через банк, 0.12
	SalesTax float64 // налог с оборота, 0.04
}

// BonusResult — результат расчёта по одной продаже. Отрицательная прибыль
// допустима: продажа в минус — значимый факт, а не ошибка.
type BonusResult struct {
	ManagerBonus float64
	ROPBonus     float64
	NetProfit    float64
}

// Roster — состав листа зарплаты: кто менеджер, кто на фиксированном
// окладе и оклады из строки с order = 0.
type Roster struct {
	Managers   []string           // колонки менеджеров в порядке листа
	FixedRoles []string           // developer, assistant и т.п. — без бонусов
	Base       map[string]float64 // оклады, ключи — имена колонок и RopColumn
}

// HasManager сообщает, есть ли такая колонка менеджера в ведомости.
func (r Roster) HasManager(name string) bool {
	for _, m := range r.Managers {
		if m == name {
			return true
		}
	}
	return false
}

// BaseFor — оклад по колонке (0, если строки окладов нет или колонка пуста).
func (r Roster) BaseFor(name string) float64 { return r.Base[name] }

// LedgerEntry — строка ведомости за один заказ одного дня. Колонки
// менеджеров разреженные: отсутствие в Managers означает 0, а не null —
// при записи в лист незадействованные сотрудники получают явный ноль.
type LedgerEntry struct {
	Date     time.Time
	Order    string
	ROPBonus float64
	Managers map[string]float64
}

// SummaryLine — строка сводки по сотруднику/роли.
type SummaryLine struct {
	Role  string
	Base  float64
	Bonus float64
	Total float64
}

// RowIssue — причина, по которой строка продаж не попала в расчёт.
type RowIssue struct {
	Order  string
	Reason string
}

// RunReport — итог прогона: сколько строк посчитали, сколько и почему
// пропустили. Заменяет «print и дальше» из ручного процесса: вызывающий
// код видит каждую проблемную строку.
type RunReport struct {
	Processed int
	Skipped   int
	Issues    []RowIssue
}
