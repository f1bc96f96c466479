package product

// Catalog — неизменяемый справочник котлов. Собирается один раз на старте
// из конфигурации и дальше только читается, поэтому безопасен для
// параллельного использования без блокировок.
type Catalog struct {
	entries map[string]Entry
	lowTier map[string]struct{}
	lowAmt  float64
	highAmt float64
}

// New собирает каталог. lowDeduction — список моделей с пониженным вычетом,
// lowAmount/highAmount — фиксированные суммы вычета по ступеням.
func New(entries []Entry, lowDeduction []string, lowAmount, highAmount float64) *Catalog {
	c := &Catalog{
		entries: make(map[string]Entry, len(entries)),
		lowTier: make(map[string]struct{}, len(lowDeduction)),
		lowAmt:  lowAmount,
		highAmt: highAmount,
	}
	for _, e := range entries {
		c.entries[e.ID] = e
	}
	for _, id := range lowDeduction {
		c.lowTier[id] = struct{}{}
	}
	return c
}

// Lookup возвращает позицию каталога. Отсутствие — штатная ситуация
// (снятые с производства модели встречаются в реальных данных),
// вызывающий код просто пропускает такую строку.
func (c *Catalog) Lookup(id string) (Entry, bool) {
	e, ok := c.entries[id]
	return e, ok
}

// Tier возвращает ступень вычета модели. Ступень — статическое свойство
// котла и не зависит ни от способа доставки, ни от суммы сделки.
func (c *Catalog) Tier(id string) DeductionTier {
	if _, ok := c.lowTier[id]; ok {
		return TierLow
	}
	return TierHigh
}

// DeductionFor — фиксированный вычет доставки для расчёта бонусной базы.
func (c *Catalog) DeductionFor(id string) float64 {
	if c.Tier(id) == TierLow {
		return c.lowAmt
	}
	return c.highAmt
}

// Len — количество позиций (для логов на старте).
func (c *Catalog) Len() int { return len(c.entries) }
