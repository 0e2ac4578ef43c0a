// Package sqlite provides a SQLite-backed run report store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/louisbranch/randomness/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/randomness/internal/platform/timeouts"
	"github.com/louisbranch/randomness/internal/storage"
	"github.com/louisbranch/randomness/internal/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store persists run reports in SQLite.
type Store struct {
	sqlDB *sql.DB
	now   func() time.Time
}

var _ storage.ReportStore = (*Store)(nil)

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a SQLite report store and applies embedded migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=%d&_synchronous=NORMAL",
		cleanPath, timeouts.StoreBusy.Milliseconds())
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlitemigrate.ApplyMigrations(ctx, sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB, now: time.Now}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// AppendRunReport inserts one report with its pawn tallies.
func (s *Store) AppendRunReport(ctx context.Context, report storage.RunReport) (storage.RunReport, error) {
	if err := ctx.Err(); err != nil {
		return storage.RunReport{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.RunReport{}, fmt.Errorf("storage is not configured")
	}
	if report.Players <= 0 {
		return storage.RunReport{}, fmt.Errorf("players must be greater than zero")
	}
	if report.Games <= 0 {
		return storage.RunReport{}, fmt.Errorf("games must be greater than zero")
	}
	if report.CreatedAt.IsZero() {
		report.CreatedAt = s.now()
	}
	report.CreatedAt = fromMillis(toMillis(report.CreatedAt))

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return storage.RunReport{}, fmt.Errorf("begin append run report: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(
		ctx,
		`INSERT INTO run_reports (seed, players, games, questions, average, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		report.Seed,
		report.Players,
		report.Games,
		report.Questions,
		report.Average,
		toMillis(report.CreatedAt),
	)
	if err != nil {
		return storage.RunReport{}, fmt.Errorf("insert run report: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return storage.RunReport{}, fmt.Errorf("run report id: %w", err)
	}
	for seat, tally := range report.Pawns {
		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO run_report_pawns (report_id, seat, name, wins, exits)
			 VALUES (?, ?, ?, ?, ?)`,
			id,
			seat,
			tally.Name,
			tally.Wins,
			tally.Exits,
		); err != nil {
			return storage.RunReport{}, fmt.Errorf("insert pawn tally %s: %w", tally.Name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return storage.RunReport{}, fmt.Errorf("commit run report: %w", err)
	}
	report.ID = id
	return report, nil
}

// GetRunReport returns one report by ID.
func (s *Store) GetRunReport(ctx context.Context, id int64) (storage.RunReport, error) {
	if err := ctx.Err(); err != nil {
		return storage.RunReport{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.RunReport{}, fmt.Errorf("storage is not configured")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, seed, players, games, questions, average, created_at
		   FROM run_reports
		  WHERE id = ?`,
		id,
	)
	report, err := scanReport(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.RunReport{}, storage.ErrNotFound
		}
		return storage.RunReport{}, fmt.Errorf("get run report: %w", err)
	}
	if report.Pawns, err = s.pawnTallies(ctx, report.ID); err != nil {
		return storage.RunReport{}, err
	}
	return report, nil
}

// ListRunReports returns up to limit reports, newest first.
func (s *Store) ListRunReports(ctx context.Context, limit int) ([]storage.RunReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than zero")
	}

	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT id, seed, players, games, questions, average, created_at
		   FROM run_reports
		  ORDER BY created_at DESC, id DESC
		  LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list run reports: %w", err)
	}
	reports := make([]storage.RunReport, 0, limit)
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("scan run report: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, fmt.Errorf("iterate run reports: %w", err)
	}
	_ = rows.Close()

	for i := range reports {
		if reports[i].Pawns, err = s.pawnTallies(ctx, reports[i].ID); err != nil {
			return nil, err
		}
	}
	return reports, nil
}

func (s *Store) pawnTallies(ctx context.Context, reportID int64) ([]storage.PawnTally, error) {
	rows, err := s.sqlDB.QueryContext(
		ctx,
		`SELECT name, wins, exits
		   FROM run_report_pawns
		  WHERE report_id = ?
		  ORDER BY seat ASC`,
		reportID,
	)
	if err != nil {
		return nil, fmt.Errorf("list pawn tallies: %w", err)
	}
	defer rows.Close()

	var tallies []storage.PawnTally
	for rows.Next() {
		var tally storage.PawnTally
		if err := rows.Scan(&tally.Name, &tally.Wins, &tally.Exits); err != nil {
			return nil, fmt.Errorf("scan pawn tally: %w", err)
		}
		tallies = append(tallies, tally)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate pawn tallies: %w", err)
	}
	return tallies, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReport(row rowScanner) (storage.RunReport, error) {
	var report storage.RunReport
	var createdAt int64
	if err := row.Scan(
		&report.ID,
		&report.Seed,
		&report.Players,
		&report.Games,
		&report.Questions,
		&report.Average,
		&createdAt,
	); err != nil {
		return storage.RunReport{}, err
	}
	report.CreatedAt = fromMillis(createdAt)
	return report, nil
}
