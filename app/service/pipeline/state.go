package pipeline

import (
	"time"

	"corpintel/app/service/collector"
)

type Stage string

const (
	StageCollector Stage = "data_collector"
	StageAnalyst   Stage = "analyst"
	StageReport    Stage = "report_generator"
)

// Record is the flat state threaded through a single pipeline run. Each
// field is filled exactly once by its owning stage and never retracted;
// the record is discarded after the report is produced.
type Record struct {
	RunID    string
	ThreadID string
	Company  string

	News  []collector.Article
	Stock *collector.StockQuote

	Analysis    string
	RiskFactors []string
	RiskLevel   string

	FinalReport string

	CurrentStage Stage
	Error        string

	StartedAt time.Time
}

// shouldContinue is the single branch of the workflow: advance while no
// stage recorded an error, otherwise stop.
func (r *Record) shouldContinue() bool {
	return r.Error == ""
}
