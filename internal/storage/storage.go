package storage

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// RunReport is one recorded simulation run.
type RunReport struct {
	ID        int64
	Seed      int64
	Players   int
	Games     int
	Questions int
	Average   float64
	Pawns     []PawnTally
	CreatedAt time.Time
}

// PawnTally is one pawn's wins and exits within a run.
type PawnTally struct {
	Name  string
	Wins  int
	Exits int
}

// ReportStore persists run reports.
type ReportStore interface {
	// AppendRunReport stores report and returns it with ID and CreatedAt set.
	AppendRunReport(ctx context.Context, report RunReport) (RunReport, error)
	GetRunReport(ctx context.Context, id int64) (RunReport, error)
	// ListRunReports returns up to limit reports, newest first.
	ListRunReports(ctx context.Context, limit int) ([]RunReport, error)
}
