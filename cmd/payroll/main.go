package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/Spok95/alseit-payroll/internal/config"
	"github.com/Spok95/alseit-payroll/internal/domain/payroll"
	"github.com/Spok95/alseit-payroll/internal/domain/product"
	"github.com/Spok95/alseit-payroll/internal/infra/db"
	httpx "github.com/Spok95/alseit-payroll/internal/infra/http"
	"github.com/Spok95/alseit-payroll/internal/infra/logger"
	"github.com/Spok95/alseit-payroll/internal/infra/notify"
	"github.com/Spok95/alseit-payroll/internal/service"
	"github.com/Spok95/alseit-payroll/internal/store/excel"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/subosito/gotenv"
)

func runMigrations(dsn string, log *slog.Logger) error {
	sqlDB, err := goose.OpenDBWithDriver("postgres", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = sqlDB.Close() }()
	return goose.Up(sqlDB, "migrations")
}

func main() {
	_ = gotenv.Load()

	cfg, err := config.Load("config/example.yaml")
	if err != nil {
		panic(err)
	}

	log := logger.New(cfg.App.Env)

	if err := runMigrations(cfg.Postgres.DSN, log); err != nil {
		log.Error("migrations failed", "err", err)
		return
	}
	log.Info("migrations applied")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := db.Connect(ctx, cfg.Postgres.DSN)
	if err != nil {
		log.Error("db connect failed", "err", err)
		return
	}
	defer pool.Close()
	log.Info("db connected")

	// Каталог собирается один раз и дальше только читается.
	entries := make([]product.Entry, 0, len(cfg.Catalog))
	for _, item := range cfg.Catalog {
		entries = append(entries, product.Entry{ID: item.ID, Price: item.Price, Purchase: item.Purchase})
	}
	catalog := product.New(entries, cfg.Payroll.LowDeductionProducts, cfg.Payroll.LowDeduction, cfg.Payroll.HighDeduction)
	log.Info("catalog loaded", "products", catalog.Len())

	rates := payroll.Rates{
		Manager:  cfg.Payroll.ManagerRate,
		ROP:      cfg.Payroll.RopRate,
		BankTax:  cfg.Payroll.BankTaxRate,
		SalesTax: cfg.Payroll.SalesTaxRate,
	}
	agg := payroll.NewAggregator(payroll.NewCalculator(catalog, rates), log)

	st := excel.New(excel.Options{
		Path:         cfg.Excel.Path,
		SalesSheet:   cfg.Excel.SalesSheet,
		SalarySheet:  cfg.Excel.SalarySheet,
		SummarySheet: cfg.Excel.SummarySheet,
		DeliveryPay:  cfg.Payroll.DeliveryPay,
		DeliveryShop: cfg.Payroll.DeliveryShop,
		FixedRoles:   cfg.Payroll.FixedRoles,
		CacheTTL:     time.Duration(cfg.Excel.CacheTTLSeconds) * time.Second,
	}, log)

	notifier, err := notify.New(cfg.Telegram.Token, cfg.Telegram.AdminChatID, log)
	if err != nil {
		log.Error("telegram init failed", "err", err)
		return
	}
	if notifier == nil {
		log.Info("telegram notifications disabled")
	}

	svc := service.New(st, st, payroll.NewRepo(pool), agg, log, notifier)

	srv := httpx.New(cfg.HTTP.Addr, cfg.Metrics.Enabled, svc)
	go func() {
		if err := srv.Start(); err != nil && err.Error() != "http: Server closed" {
			log.Error("http server error", "err", err)
		}
	}()
	log.Info("HTTP server started", "addr", cfg.HTTP.Addr)

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	log.Info("graceful shutdown complete")
}
