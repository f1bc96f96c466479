package payroll

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Run — запись аудита одного прогона расчёта.
type Run struct {
	ID          int64
	StartedAt   time.Time
	Processed   int
	Skipped     int
	TotalPayout float64
}

type Repo struct{ pool *pgxpool.Pool }

func NewRepo(pool *pgxpool.Pool) *Repo { return &Repo{pool: pool} }

// SaveRun пишет прогон и строки его сводки одной транзакцией.
func (r *Repo) SaveRun(ctx context.Context, run Run, summary []SummaryLine) (int64, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var id int64
	if err := tx.QueryRow(ctx, `
		INSERT INTO payroll_runs (started_at, processed, skipped, total_payout)
		VALUES ($1,$2,$3,$4)
		RETURNING id
	`, run.StartedAt, run.Processed, run.Skipped, run.TotalPayout).Scan(&id); err != nil {
		return 0, err
	}

	for _, line := range summary {
		if _, err := tx.Exec(ctx, `
			INSERT INTO payroll_run_lines (run_id, role, base, bonus, total)
			VALUES ($1,$2,$3,$4,$5)
		`, id, line.Role, line.Base, line.Bonus, line.Total); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return id, nil
}

// LastRun возвращает последний прогон (nil, nil — прогонов ещё не было).
func (r *Repo) LastRun(ctx context.Context) (*Run, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, started_at, processed, skipped, total_payout
		FROM payroll_runs
		ORDER BY started_at DESC, id DESC
		LIMIT 1
	`)
	var run Run
	if err := row.Scan(&run.ID, &run.StartedAt, &run.Processed, &run.Skipped, &run.TotalPayout); err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &run, nil
}

// RunLines возвращает сводку сохранённого прогона.
func (r *Repo) RunLines(ctx context.Context, runID int64) ([]SummaryLine, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT role, base, bonus, total
		FROM payroll_run_lines
		WHERE run_id = $1
		ORDER BY id
	`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []SummaryLine
	for rows.Next() {
		var line SummaryLine
		if err := rows.Scan(&line.Role, &line.Base, &line.Bonus, &line.Total); err != nil {
			return nil, err
		}
		out = append(out, line)
	}
	return out, rows.Err()
}
