package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Spok95/alseit-payroll/internal/store"
)

// Payroll — то, что серверу нужно от сервиса расчёта.
type Payroll interface {
	UpdateSalary(ctx context.Context) (string, error)
	SalarySummary(ctx context.Context) (string, error)
	LastRun(ctx context.Context) (string, error)
	RenameEmployee(ctx context.Context, oldName, newName string) error
}

type Server struct {
	srv *http.Server
}

func New(addr string, exposeMetrics bool, svc Payroll) *Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	if exposeMetrics {
		mux.Handle("/metrics", promhttp.Handler())
	}

	// Пересчёт зарплаты: замещает ведомость и возвращает текст отчёта.
	mux.HandleFunc("POST /payroll/run", func(w http.ResponseWriter, r *http.Request) {
		report, err := svc.UpdateSalary(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeText(w, report)
	})

	// Сводка без записи — только чтение и расчёт.
	mux.HandleFunc("GET /payroll/summary", func(w http.ResponseWriter, r *http.Request) {
		report, err := svc.SalarySummary(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeText(w, report)
	})

	// Последний сохранённый прогон из аудита.
	mux.HandleFunc("GET /payroll/last-run", func(w http.ResponseWriter, r *http.Request) {
		report, err := svc.LastRun(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeText(w, report)
	})

	mux.HandleFunc("POST /payroll/rename", func(w http.ResponseWriter, r *http.Request) {
		oldName := r.URL.Query().Get("old")
		newName := r.URL.Query().Get("new")
		if oldName == "" || newName == "" {
			http.Error(w, "old and new query params are required", http.StatusBadRequest)
			return
		}
		if err := svc.RenameEmployee(r.Context(), oldName, newName); err != nil {
			writeError(w, err)
			return
		}
		writeText(w, "OK")
	})

	return &Server{srv: &http.Server{Addr: addr, Handler: mux}}
}

func writeText(w http.ResponseWriter, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(text))
}

func writeError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, store.ErrNoRoster):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, store.ErrEmployeeNotFound):
		code = http.StatusNotFound
	}
	http.Error(w, err.Error(), code)
}

func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
