package product

// DeductionTier — класс вычета доставки для котла.
type DeductionTier string

const (
	TierLow  DeductionTier = "low"  // мини 12-20 и alseit 25-30
	TierHigh DeductionTier = "high" // остальные модели
)

// Entry — одна позиция каталога: розничная и закупочная цена за единицу.
// Price == 0 означает «цена ещё не назначена»: такая позиция не участвует
// в расчёте бонусов и прибыли.
type Entry struct {
	ID       string
	Price    float64
	Purchase float64
}

// Priced сообщает, можно ли считать бонусы по этой позиции.
func (e Entry) Priced() bool { return e.Price > 0 }
