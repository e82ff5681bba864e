// Package audit runs the full pipeline for one site: collect the
// signal record, score it, generate findings and attach the package
// recommendation. The CLI and the HTTP API both drive audits through
// this package.
package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/webatelier/siteaudit/internal/models"
	"github.com/webatelier/siteaudit/pkg/findings"
	"github.com/webatelier/siteaudit/pkg/recommend"
	"github.com/webatelier/siteaudit/pkg/scoring"
)

// Collector produces the signal record for a URL. Implemented by
// pkg/collector; tests substitute a stub.
type Collector interface {
	Collect(ctx context.Context, url string) (*models.AnalysisDetails, error)
}

// Engine binds a collector to the pure scoring pipeline.
type Engine struct {
	collector Collector
	now       func() time.Time
}

// NewEngine builds an engine. now may be nil and defaults to wall time;
// tests pin it to keep freshness rules deterministic.
func NewEngine(collector Collector, now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{collector: collector, now: now}
}

// Run audits one site end to end. The URL must be reachable; business
// and locale must be valid.
func (e *Engine) Run(ctx context.Context, url string, business models.BusinessType, locale models.Locale) (*models.AuditResult, error) {
	if !business.Valid() {
		return nil, fmt.Errorf("unknown business type %q", business)
	}
	if !locale.Valid() {
		return nil, fmt.Errorf("unknown locale %q", locale)
	}

	details, err := e.collector.Collect(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("collect %s: %w", url, err)
	}

	now := e.now()
	return Evaluate(details, url, business, locale, now), nil
}

// Evaluate runs the pure half of the pipeline over an already-collected
// record. It never fails: the record is fully defaulted by contract.
func Evaluate(details *models.AnalysisDetails, url string, business models.BusinessType, locale models.Locale, now time.Time) *models.AuditResult {
	refYear := now.Year()
	scores := scoring.Score(details, refYear)
	found := findings.Generate(details, business, locale, refYear, findings.NewRunIDs())

	return &models.AuditResult{
		ID:             uuid.NewString(),
		URL:            url,
		BusinessType:   business,
		Locale:         locale,
		Details:        *details,
		Scores:         scores,
		Findings:       found,
		Recommendation: recommend.Narrative(scores, business, locale),
		GeneratedAt:    now.UTC(),
	}
}
