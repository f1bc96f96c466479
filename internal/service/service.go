// Package service — оркестрация расчёта: книга -> движок -> книга,
// аудит прогона и доставка отчёта.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/Spok95/alseit-payroll/internal/domain/payroll"
	"github.com/Spok95/alseit-payroll/internal/infra/metrics"
	"github.com/Spok95/alseit-payroll/internal/infra/notify"
	"github.com/Spok95/alseit-payroll/internal/store"
)

// Renamer — переименование сотрудника в хранилище (умеет только Excel).
type Renamer interface {
	RenameEmployee(ctx context.Context, oldName, newName string) error
}

// RunAudit — аудит прогонов (Postgres). Может отсутствовать.
type RunAudit interface {
	SaveRun(ctx context.Context, run payroll.Run, summary []payroll.SummaryLine) (int64, error)
	LastRun(ctx context.Context) (*payroll.Run, error)
	RunLines(ctx context.Context, runID int64) ([]payroll.SummaryLine, error)
}

// ErrNoAudit — аудит прогонов не настроен (сервис собран без Postgres).
var ErrNoAudit = errors.New("run audit is not configured")

type Service struct {
	store   store.Store
	renamer Renamer
	runs    RunAudit
	agg     *payroll.Aggregator
	log     *slog.Logger
	notify  *notify.Notifier
}

func New(st store.Store, renamer Renamer, runs RunAudit, agg *payroll.Aggregator, log *slog.Logger, n *notify.Notifier) *Service {
	return &Service{store: st, renamer: renamer, runs: runs, agg: agg, log: log, notify: n}
}

// UpdateSalary — полный пересчёт: читает продажи и ведомость, замещает
// лист зарплаты и сводку, пишет аудит и возвращает текст отчёта.
// Повторный вызов по тем же данным даёт тот же результат.
func (s *Service) UpdateSalary(ctx context.Context) (string, error) {
	started := time.Now()

	roster, err := s.store.LoadRoster(ctx)
	if err != nil {
		metrics.RunErrorsTotal.Inc()
		return "", fmt.Errorf("load roster: %w", err)
	}
	txs, err := s.store.LoadSales(ctx)
	if err != nil {
		metrics.RunErrorsTotal.Inc()
		return "", fmt.Errorf("load sales: %w", err)
	}

	ledger, summary, report := s.agg.Aggregate(txs, roster)
	metrics.RowsSkippedTotal.Add(float64(report.Skipped))

	if err := s.store.ReplaceLedger(ctx, ledger, summary, roster); err != nil {
		metrics.RunErrorsTotal.Inc()
		return "", fmt.Errorf("replace ledger: %w", err)
	}

	if s.runs != nil {
		run := payroll.Run{
			StartedAt:   started,
			Processed:   report.Processed,
			Skipped:     report.Skipped,
			TotalPayout: grandTotal(summary),
		}
		if _, err := s.runs.SaveRun(ctx, run, summary); err != nil {
			// Аудит не должен блокировать выплату зарплаты.
			s.log.Error("save run failed", "err", err)
		}
	}

	metrics.RunsTotal.Inc()
	metrics.RunDuration.Observe(time.Since(started).Seconds())
	s.log.Info("salary updated",
		"processed", report.Processed,
		"skipped", report.Skipped,
		"orders", len(ledger),
		"total", grandTotal(summary),
	)

	msg := renderUpdateReport(summary, report)
	s.notify.Send(msg)
	return msg, nil
}

// SalarySummary — полная сводка (оклад + бонусы + итого) без записи.
func (s *Service) SalarySummary(ctx context.Context) (string, error) {
	roster, err := s.store.LoadRoster(ctx)
	if err != nil {
		return "", fmt.Errorf("load roster: %w", err)
	}
	txs, err := s.store.LoadSales(ctx)
	if err != nil {
		return "", fmt.Errorf("load sales: %w", err)
	}
	_, summary, _ := s.agg.Aggregate(txs, roster)
	return renderFullSummary(summary), nil
}

// LastRun — отчёт о последнем сохранённом прогоне из аудита.
func (s *Service) LastRun(ctx context.Context) (string, error) {
	if s.runs == nil {
		return "", ErrNoAudit
	}
	run, err := s.runs.LastRun(ctx)
	if err != nil {
		return "", fmt.Errorf("load last run: %w", err)
	}
	if run == nil {
		return "📒 Прогонов ещё не было", nil
	}
	lines, err := s.runs.RunLines(ctx, run.ID)
	if err != nil {
		return "", fmt.Errorf("load run lines: %w", err)
	}
	return renderLastRun(*run, lines), nil
}

// RenameEmployee — переименование в книге (ведомость + лист продаж).
func (s *Service) RenameEmployee(ctx context.Context, oldName, newName string) error {
	if s.renamer == nil {
		return store.ErrEmployeeNotFound
	}
	return s.renamer.RenameEmployee(ctx, oldName, newName)
}

func grandTotal(summary []payroll.SummaryLine) float64 {
	if len(summary) == 0 {
		return 0
	}
	return summary[len(summary)-1].Total
}
