package application

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/supplyai/matchengine/infrastructure/checks"
	"github.com/supplyai/matchengine/infrastructure/scalar"
	"github.com/supplyai/matchengine/internal/domain"
	"github.com/supplyai/matchengine/internal/ports"
)

// Score bounds. The additive weights sum to at most the upper bound under
// the default rubric, but clamping remains a defensive invariant.
const (
	minScore = 0
	maxScore = 100
)

// Engine matches a request against a set of candidate offers, producing a
// ranked list of explainable scores. It is a pure function of its inputs:
// stateless, side-effect-free apart from observational logging and
// metrics, and safe for concurrent calls.
type Engine struct {
	// checks holds the rubric in evaluation order; the material gate is
	// always first.
	checks  []ports.Check
	logger  zerolog.Logger
	metrics ports.MetricsCollector
	tracer  trace.Tracer
}

// NewEngine builds an engine from the given rubric configuration. The
// logger is the engine's only diagnostics channel; there is no hidden
// global state. A nil metrics collector disables metrics.
func NewEngine(cfg Config, logger zerolog.Logger, metrics ports.MetricsCollector) (*Engine, error) {
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("engine config validation failed: %w", err)
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}

	parser := scalar.NewParser(logger)

	material, err := checks.NewMaterialCheck("material", cfg.Rubric.MaterialWeight)
	if err != nil {
		return nil, err
	}
	purity, err := checks.NewPurityCheck("purity", cfg.Rubric.PurityWeight, parser)
	if err != nil {
		return nil, err
	}
	quantity, err := checks.NewQuantityCheck("quantity", cfg.Rubric.QuantityWeight, parser)
	if err != nil {
		return nil, err
	}
	technical, err := checks.NewTechnicalCheck("technical", cfg.Rubric.TechnicalWeight, cfg.Rubric.TechnicalPerItem)
	if err != nil {
		return nil, err
	}

	return &Engine{
		checks:  []ports.Check{material, purity, quantity, technical},
		logger:  logger.With().Str("component", "match_engine").Logger(),
		metrics: metrics,
		tracer:  otel.Tracer("match-engine"),
	}, nil
}

// scoreOutcome is the scorer's internal result for one candidate.
type scoreOutcome struct {
	score    int
	comments []string
	// exclude marks a material mismatch: a genuine non-candidate that is
	// dropped from ranked output entirely.
	exclude bool
}

// Score applies the rubric to one candidate and returns the clamped score
// with its ordered rationale. Comments appear in check order: material,
// purity, quantity, technical — unless the material gate short-circuits.
func (e *Engine) Score(ctx context.Context, candidate, request domain.Record) (int, []string) {
	out := e.scoreOne(ctx, candidate, request)
	return out.score, out.comments
}

func (e *Engine) scoreOne(ctx context.Context, candidate, request domain.Record) scoreOutcome {
	total := 0
	var comments []string

	for _, check := range e.checks {
		result := check.Evaluate(ctx, candidate, request)
		comments = append(comments, result.Comments...)
		if result.Halt {
			// The gate zeroes the whole score; later checks never run and
			// never append comments.
			return scoreOutcome{score: minScore, comments: comments, exclude: result.Exclude}
		}
		total += result.Points
	}

	return scoreOutcome{score: clamp(total), comments: comments}
}

// Rank scores every candidate against the request and returns results
// sorted by descending score, ties preserving input order. Material
// mismatches are dropped from the output entirely; all other zero-score
// results are retained as explained rows. When nothing survives filtering
// a single sentinel "no matches" result is returned instead of an empty
// list.
//
// candidates must be an ordered sequence of record-shaped values and
// request a record-shaped value; anything else fails with
// domain.ErrCandidatesNotSequence or domain.ErrRequestNotRecord. A
// non-record element inside the sequence is skipped with a logged warning,
// never an error.
func (e *Engine) Rank(ctx context.Context, candidates, request any) ([]domain.MatchResult, error) {
	ctx, span := e.tracer.Start(ctx, "Engine.Rank",
		trace.WithAttributes(attribute.String("engine.operation", "rank")),
	)
	defer span.End()

	start := time.Now()

	seq, req, err := e.validateInputs(candidates, request)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	e.logger.Info().
		Str("material", req.Material()).
		Int("candidates", len(seq)).
		Msg("ranking candidates")

	results, rejected, skipped := e.scoreAll(ctx, seq, req)

	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })

	e.metrics.RecordLatency("rank", time.Since(start), map[string]string{"component": "engine"})
	e.metrics.RecordCounter("candidates_scored", float64(len(seq)-skipped), nil)
	if skipped > 0 {
		e.metrics.RecordCounter("candidates_skipped", float64(skipped), nil)
	}
	span.SetAttributes(
		attribute.Int("engine.candidates", len(seq)),
		attribute.Int("engine.results", len(results)),
	)

	if len(results) == 0 {
		e.logNearMisses(req, rejected)
		e.logger.Info().Msg("no suitable matches found for the requested order")
		return []domain.MatchResult{domain.NewNoMatchResult(req)}, nil
	}

	e.metrics.RecordHistogram("best_score", float64(results[0].Score), nil)
	e.logger.Info().
		Int("matches", len(results)).
		Int("best_score", results[0].Score).
		Msg("ranking complete")
	return results, nil
}

// validateInputs enforces the top-level shape contract shared by Rank and
// RankSharded.
func (e *Engine) validateInputs(candidates, request any) ([]any, domain.Record, error) {
	seq, ok := domain.AsSequence(candidates)
	if !ok {
		return nil, nil, fmt.Errorf("%w: got %T", domain.ErrCandidatesNotSequence, candidates)
	}
	req, ok := domain.AsRecord(request)
	if !ok {
		return nil, nil, fmt.Errorf("%w: got %T", domain.ErrRequestNotRecord, request)
	}
	return seq, req, nil
}

// scoreAll scores the sequence in input order, returning retained results,
// the material labels of excluded candidates, and the count of skipped
// malformed elements.
func (e *Engine) scoreAll(ctx context.Context, seq []any, req domain.Record) ([]domain.MatchResult, []string, int) {
	results := make([]domain.MatchResult, 0, len(seq))
	var rejected []string
	skipped := 0

	for i, item := range seq {
		cand, ok := domain.AsRecord(item)
		if !ok {
			skipped++
			e.logger.Warn().
				Int("index", i).
				Str("type", fmt.Sprintf("%T", item)).
				Msg("skipping candidate: not a record")
			continue
		}

		out := e.scoreOne(ctx, cand, req)
		if out.exclude && out.score == 0 {
			rejected = append(rejected, cand.Material())
			continue
		}
		results = append(results, domain.MatchResult{
			Candidate: cand,
			Score:     out.score,
			Comments:  out.comments,
		})
	}

	return results, rejected, skipped
}

func clamp(score int) int {
	if score < minScore {
		return minScore
	}
	if score > maxScore {
		return maxScore
	}
	return score
}
