package config

import "github.com/spf13/viper"

type CatalogItem struct {
	ID       string  `mapstructure:"id"`
	Price    float64 `mapstructure:"price"`
	Purchase float64 `mapstructure:"purchase"`
}

type Config struct {
	App struct {
		Env      string
		Timezone string
	} `mapstructure:"app"`

	Telegram struct {
		Token       string
		AdminChatID int64 `mapstructure:"admin_chat_id"`
	} `mapstructure:"telegram"`

	HTTP struct {
		Addr string
	} `mapstructure:"http"`

	Postgres struct {
		DSN string
	} `mapstructure:"postgres"`

	Metrics struct {
		Enabled bool
	} `mapstructure:"metrics"`

	Excel struct {
		Path            string
		SalesSheet      string `mapstructure:"sales_sheet"`
		SalarySheet     string `mapstructure:"salary_sheet"`
		SummarySheet    string `mapstructure:"summary_sheet"`
		CacheTTLSeconds int    `mapstructure:"cache_ttl_seconds"`
	} `mapstructure:"excel"`

	Payroll struct {
		ManagerRate          float64  `mapstructure:"manager_rate"`
		RopRate              float64  `mapstructure:"rop_rate"`
		BankTaxRate          float64  `mapstructure:"bank_tax_rate"`
		SalesTaxRate         float64  `mapstructure:"sales_tax_rate"`
		LowDeduction         float64  `mapstructure:"low_deduction"`
		HighDeduction        float64  `mapstructure:"high_deduction"`
		DeliveryPay          float64  `mapstructure:"delivery_pay"`
		DeliveryShop         float64  `mapstructure:"delivery_shop"`
		LowDeductionProducts []string `mapstructure:"low_deduction_products"`
		FixedRoles           []string `mapstructure:"fixed_roles"`
	} `mapstructure:"payroll"`

	// Прайс котлов: грузится один раз на старте, дальше только чтение.
	Catalog []CatalogItem `mapstructure:"catalog"`
}

func Load(path string) (Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("APP")
	v.AutomaticEnv()

	// Ставки и имена листов почти никогда не меняются — зашиты умолчаниями.
	v.SetDefault("payroll.manager_rate", 0.05)
	v.SetDefault("payroll.rop_rate", 0.01)
	v.SetDefault("payroll.bank_tax_rate", 0.12)
	v.SetDefault("payroll.sales_tax_rate", 0.04)
	v.SetDefault("payroll.low_deduction", 50000)
	v.SetDefault("payroll.high_deduction", 100000)
	v.SetDefault("payroll.delivery_pay", 55000)
	v.SetDefault("payroll.delivery_shop", 4700)
	v.SetDefault("excel.sales_sheet", "продажи")
	v.SetDefault("excel.salary_sheet", "зарплата")
	v.SetDefault("excel.summary_sheet", "сводка_бонусов")
	v.SetDefault("excel.cache_ttl_seconds", 300)

	var c Config
	if err := v.ReadInConfig(); err != nil {
		return c, err
	}
	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}
	return c, nil
}
