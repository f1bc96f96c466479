package sales

import (
	"strconv"
	"strings"
)

// Варианты написания из реальных таблиц. Всё нераспознанное считаем
// наличными — это единственный документированный fallback.
var (
	cashWords = map[string]struct{}{
		"нал": {}, "наличные": {}, "наличка": {}, "cash": {},
	}
	bankWords = map[string]struct{}{
		"банк": {}, "банковский": {}, "карта": {}, "bank": {}, "card": {},
		"kaspi_pay": {}, "kaspi_magazine": {},
	}
)

// ParsePayment сводит свободный текст из колонки оплаты к enum.
// Функция тотальна: любой вход даёт валидный результат.
func ParsePayment(raw string) PaymentMethod {
	s := strings.ToLower(strings.TrimSpace(raw))
	if _, ok := bankWords[s]; ok {
		return PayBank
	}
	if _, ok := cashWords[s]; ok {
		return PayCash
	}
	return PayCash
}

// ParseDelivery разбирает колонку доставки: «пэй» и «магазин» — фиксированные
// тарифы, число — явная сумма, всё остальное — без доставки.
func ParseDelivery(raw string, payRate, shopRate float64) (DeliveryMode, float64) {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch s {
	case "":
		return DeliveryNone, 0
	case "пэй":
		return DeliveryPay, payRate
	case "магазин":
		return DeliveryShop, shopRate
	}
	if v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64); err == nil {
		return DeliveryAmount, v
	}
	return DeliveryNone, 0
}

// Money приводит значение ячейки к сумме: мусор и пустота — это 0,
// таблицы ведутся руками и ошибки в них ожидаемы.
func Money(raw string) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0
	}
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}

// Quantity приводит количество: пустота, мусор и неположительные
// значения дают 1 — одна единица по умолчанию.
func Quantity(raw string) int {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 1
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil || v <= 0 {
		return 1
	}
	return int(v)
}
