package panelmatch

import (
	"time"

	"go.uber.org/zap"

	"github.com/panel-entreprises/panelmatch/internal/metrics"
)

// Matching defaults. NeutralScore is returned for every company when no
// criterion is selected: an empty requirement list carries no
// disqualification signal.
const (
	DefaultMinScore   = 60
	DefaultMaxResults = 10
	NeutralScore      = 80
)

// Options tune one matching run. Zero values mean the defaults.
type Options struct {
	// MinScore excludes companies scoring below it. <=0 means
	// DefaultMinScore.
	MinScore int
	// MaxResults caps the shortlist length. <=0 means DefaultMaxResults.
	MaxResults int
}

func (o Options) normalized() Options {
	if o.MinScore <= 0 {
		o.MinScore = DefaultMinScore
	}
	if o.MaxResults <= 0 {
		o.MaxResults = DefaultMaxResults
	}
	return o
}

// Engine ranks companies against tender selection criteria. It holds no
// state besides its logger: concurrent Match calls are independent as long
// as the caller does not mutate the inputs mid-call.
type Engine struct {
	logger *zap.Logger
}

// NewEngine creates a match engine. A nil logger disables logging.
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{logger: logger}
}

// Match scores every company against every selected criterion and returns
// the filtered, ranked, diversity-aware shortlist. The inputs are never
// mutated; for fixed inputs the output is identical across calls.
func (e *Engine) Match(companies []Company, criteria []Criterion, opts Options) []MatchResult {
	opts = opts.normalized()
	start := time.Now()
	metrics.MatchRequestsTotal.Inc()

	selected := make([]Criterion, 0, len(criteria))
	for _, criterion := range criteria {
		if criterion.Selected {
			selected = append(selected, criterion)
		}
	}

	e.logger.Info("matching companies",
		zap.Int("companies", len(companies)),
		zap.Int("criteria", len(criteria)),
		zap.Int("selected_criteria", len(selected)),
		zap.Int("min_score", opts.MinScore),
		zap.Int("max_results", opts.MaxResults),
	)

	if len(selected) == 0 {
		e.logger.Warn("no criteria selected, returning neutral scores")
		return e.finish(e.neutralResults(companies), start)
	}

	matches := make([]MatchResult, 0, len(companies))
	for i := range companies {
		matches = append(matches, e.scoreCompany(&companies[i], selected))
	}
	metrics.MatchCompaniesScoredTotal.Add(float64(len(matches)))

	results := selectResults(matches, opts.MinScore, opts.MaxResults)

	if len(results) > 0 {
		e.logger.Info("matching complete",
			zap.Int("matched", len(results)),
			zap.String("top_match", results[0].Name),
			zap.Int("top_score", results[0].Score),
			zap.Int("lowest_score", results[len(results)-1].Score),
		)
	} else {
		e.logger.Info("matching complete", zap.Int("matched", 0))
	}

	return e.finish(results, start)
}

// scoreCompany aggregates one company's criterion scores and applies the
// completeness bonus. A panic while scoring (malformed record) is recovered
// into the fallback score so one bad row never aborts the batch.
func (e *Engine) scoreCompany(company *Company, selected []Criterion) (result MatchResult) {
	defer func() {
		if r := recover(); r != nil {
			metrics.MatchScoringFailuresTotal.Inc()
			e.logger.Error("company scoring failed",
				zap.String("company", company.Name),
				zap.Any("panic", r),
			)
			result = MatchResult{
				Company:      *company,
				Score:        fallbackScore,
				MatchDetails: map[string]int{"Erreur de calcul": fallbackScore},
				Selected:     false,
			}
		}
	}()

	score, details := aggregate(company, selected)
	score = min(100, score+bonus(company))

	return MatchResult{
		Company:      *company,
		Score:        score,
		MatchDetails: details,
		Selected:     true,
	}
}

// neutralResults returns every company with the neutral score, in input
// order. Filtering and truncation do not apply: without criteria there is
// nothing to rank by.
func (e *Engine) neutralResults(companies []Company) []MatchResult {
	results := make([]MatchResult, 0, len(companies))
	for i := range companies {
		results = append(results, MatchResult{
			Company:      companies[i],
			Score:        NeutralScore,
			MatchDetails: map[string]int{},
			Selected:     true,
		})
	}
	return results
}

func (e *Engine) finish(results []MatchResult, start time.Time) []MatchResult {
	metrics.MatchDuration.Observe(time.Since(start).Seconds())
	metrics.MatchResultsReturned.Observe(float64(len(results)))
	return results
}
