package usecase

import (
	"context"
	"io"
	"time"
)

// ImportReport summarizes one CSV import run
type ImportReport struct {
	Total    int           `json:"total"`
	Created  int           `json:"created"`
	Merged   int           `json:"merged"`
	Skipped  int           `json:"skipped"`
	Failed   int           `json:"failed"`
	Duration time.Duration `json:"duration"`
}

// ImportUsecase loads historical observations.
type ImportUsecase interface {
	// Import reads CSV rows from r. Bad rows are counted, never fatal.
	Import(ctx context.Context, r io.Reader) (*ImportReport, error)
}
