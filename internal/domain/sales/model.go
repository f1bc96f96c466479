package sales

import "time"

// PaymentMethod — закрытый перечень способов оплаты. Любая строка из
// внешних данных сводится к одному из двух значений через ParsePayment.
type PaymentMethod string

const (
	PayCash PaymentMethod = "cash"
	PayBank PaymentMethod = "bank"
)

// DeliveryMode — способ доставки из листа продаж. Влияет только на
// справочную колонку delivery_cost, но не на расчёт бонусов.
type DeliveryMode string

const (
	DeliveryNone   DeliveryMode = "none"
	DeliveryPay    DeliveryMode = "pay"    // «пэй»
	DeliveryShop   DeliveryMode = "shop"   // «магазин», самовывоз
	DeliveryAmount DeliveryMode = "amount" // сумма указана явно
)

// Transaction — одна строка листа продаж после нормализации.
type Transaction struct {
	Order        string
	Date         time.Time
	Product      string
	Quantity     int
	UnitPrice    float64 // 0 — берём цену из каталога
	UnitPurchase float64 // 0 — берём закупку из каталога
	Payment      PaymentMethod
	Delivery     DeliveryMode
	DeliveryCost float64
	Accessories  float64
	Manager      string
}
