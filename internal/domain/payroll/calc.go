package payroll

import (
	"github.com/Spok95/alseit-payroll/internal/domain/product"
	"github.com/Spok95/alseit-payroll/internal/domain/sales"
)

// Calculator считает бонусы и прибыль по одной продаже. Чистая функция
// над каталогом и ставками, без побочных эффектов.
type Calculator struct {
	catalog *product.Catalog
	rates   Rates
}

func NewCalculator(catalog *product.Catalog, rates Rates) *Calculator {
	return &Calculator{catalog: catalog, rates: rates}
}

// Compute возвращает (результат, true) либо (нули, false), если строка не
// участвует в расчёте: модель не найдена в каталоге или цена ещё не
// назначена. Это штатный пропуск, не ошибка.
//
// Схема расчёта:
//   - бонус менеджера: (сумма продажи - фиксированный вычет по модели) * 5%
//   - бонус РОП: та же база * 1%
//   - прибыль: сумма - 12% (если банк) - 4% налог - бонус менеджера -
//     закупка - аксессуары
//
// Вычет по модели уменьшает только бонусную базу: из прибыли он отдельно
// не вычитается. Способ доставки и его стоимость на расчёт не влияют.
func (c *Calculator) Compute(tx sales.Transaction) (BonusResult, bool) {
	entry, ok := c.catalog.Lookup(tx.Product)
	if !ok || !entry.Priced() {
		return BonusResult{}, false
	}

	qty := tx.Quantity
	if qty <= 0 {
		qty = 1
	}

	unitPrice := entry.Price
	if tx.UnitPrice > 0 {
		unitPrice = tx.UnitPrice
	}
	unitPurchase := entry.Purchase
	if tx.UnitPurchase > 0 {
		unitPurchase = tx.UnitPurchase
	}

	totalPrice := unitPrice * float64(qty)
	totalPurchase := unitPurchase * float64(qty)

	base := totalPrice - c.catalog.DeductionFor(tx.Product)
	managerBonus := base * c.rates.Manager
	ropBonus := base * c.rates.ROP

	profit := totalPrice
	if tx.Payment == sales.PayBank {
		profit -= totalPrice * c.rates.BankTax
	}
	profit -= totalPrice * c.rates.SalesTax
	profit -= managerBonus
	profit -= totalPurchase
	profit -= tx.Accessories

	return BonusResult{
		ManagerBonus: managerBonus,
		ROPBonus:     ropBonus,
		NetProfit:    profit,
	}, true
}
