package excel

import "strings"

// Синонимы заголовков листа продаж: книгу ведут руками и колонки
// называют кто как привык.
var columnAliases = map[string][]string{
	"date":     {"date", "дата"},
	"order":    {"order", "заказ", "номер_заказа"},
	"product":  {"boiler_name", "name_boiler", "товар", "наименование", "продукт"},
	"quantity": {"quantity", "количество", "кол-во"},
	"price":    {"price", "сумма", "стоимость", "total", "amount"},
	"purchase": {"purchase", "закупка"},
	"payment":  {"payment_method", "оплата"},
	"delivery": {"delivery", "доставка"},
	"access":   {"accessories", "аксессуары"},
	"manager":  {"manager", "менеджер"},
}

// resolveColumns сопоставляет заголовок листа логическим именам колонок.
// Возвращает индекс колонки по логическому имени; отсутствующие колонки
// в карту не попадают.
func resolveColumns(header []string) map[string]int {
	out := map[string]int{}
	for idx, raw := range header {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "" {
			continue
		}
		for logical, aliases := range columnAliases {
			if _, taken := out[logical]; taken {
				continue
			}
			for _, a := range aliases {
				if name == a {
					out[logical] = idx
					break
				}
			}
		}
	}
	return out
}

// cell безопасно достаёт значение: короткие строки Excel — это пустые хвосты.
func cell(row []string, idx int, ok bool) string {
	if !ok || idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
