// Package memory — хранилище в памяти для тестов сервиса.
package memory

import (
	"context"
	"sync"

	"github.com/Spok95/alseit-payroll/internal/domain/payroll"
	"github.com/Spok95/alseit-payroll/internal/domain/sales"
	"github.com/Spok95/alseit-payroll/internal/store"
)

type Store struct {
	mu     sync.RWMutex
	sales  []sales.Transaction
	roster payroll.Roster

	Ledger   []payroll.LedgerEntry
	Summary  []payroll.SummaryLine
	Replaced int // сколько раз замещали ведомость
}

func New(txs []sales.Transaction, roster payroll.Roster) *Store {
	return &Store{sales: txs, roster: roster}
}

func (s *Store) LoadSales(_ context.Context) ([]sales.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]sales.Transaction, len(s.sales))
	copy(out, s.sales)
	return out, nil
}

func (s *Store) LoadRoster(_ context.Context) (payroll.Roster, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.roster.Base) == 0 && len(s.roster.Managers) == 0 {
		return payroll.Roster{}, store.ErrNoRoster
	}
	return s.roster, nil
}

func (s *Store) ReplaceLedger(_ context.Context, ledger []payroll.LedgerEntry, summary []payroll.SummaryLine, _ payroll.Roster) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Ledger = ledger
	s.Summary = summary
	s.Replaced++
	return nil
}
