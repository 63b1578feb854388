package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"corpintel/app/config"
	"corpintel/app/service/analyst"
	"corpintel/app/service/collector"

	"github.com/google/uuid"
	"github.com/samber/do"
)

type Collector interface {
	Collect(ctx context.Context, company string) ([]collector.Article, *collector.StockQuote)
}

type Analyst interface {
	Analyze(ctx context.Context, company string, articles []collector.Article, quote *collector.StockQuote) *analyst.Analysis
}

type Service struct {
	cfg          *config.Config
	collectorSvc Collector
	analystSvc   Analyst
}

func New(di *do.Injector) (*Service, error) {
	return &Service{
		cfg:          do.MustInvoke[*config.Config](di),
		collectorSvc: do.MustInvoke[*collector.Service](di),
		analystSvc:   do.MustInvoke[*analyst.Service](di),
	}, nil
}

// Run executes the collect -> analyze -> report workflow for a company.
// Each stage advances only while no error is recorded; the report stage
// renders whatever the record holds, so the result always carries a
// non-empty report.
func (s *Service) Run(ctx context.Context, company, threadID string) *Record {
	record := &Record{
		RunID:     uuid.NewString(),
		ThreadID:  threadID,
		Company:   company,
		StartedAt: time.Now(),
	}

	slog.Info("Starting intelligence run",
		"run_id", record.RunID,
		"thread_id", record.ThreadID,
		"company", company,
	)

	s.runCollector(ctx, record)

	if record.shouldContinue() {
		s.runAnalyst(ctx, record)
	}

	s.runReport(record)

	slog.Info("Intelligence run finished",
		"run_id", record.RunID,
		"stage", record.CurrentStage,
		"duration", time.Since(record.StartedAt),
	)

	return record
}

func (s *Service) runCollector(ctx context.Context, record *Record) {
	record.CurrentStage = StageCollector

	articles, quote := s.collectorSvc.Collect(ctx, record.Company)
	record.News = articles
	record.Stock = quote

	// live-source failures are masked by simulated data, so the only
	// error this stage can hit is the run being cancelled
	if err := ctx.Err(); err != nil {
		record.Error = fmt.Sprintf("data collection interrupted: %v", err)
		return
	}

	slog.Info("Collected company data",
		"run_id", record.RunID,
		"articles", len(articles),
		"stock_source", stockSource(quote),
	)
}

func (s *Service) runAnalyst(ctx context.Context, record *Record) {
	record.CurrentStage = StageAnalyst

	analysis := s.analystSvc.Analyze(ctx, record.Company, record.News, record.Stock)
	record.Analysis = analysis.Summary
	record.RiskFactors = analysis.Risk.Factors
	record.RiskLevel = analysis.Risk.Level

	slog.Info("Analyzed company data",
		"run_id", record.RunID,
		"risk_factors", len(record.RiskFactors),
		"risk_level", record.RiskLevel,
	)
}

func (s *Service) runReport(record *Record) {
	record.CurrentStage = StageReport
	record.FinalReport = renderReport(record)
}

func stockSource(quote *collector.StockQuote) string {
	if quote == nil {
		return "none"
	}
	return quote.DataSource
}
