package application

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/supplyai/matchengine/internal/domain"
)

// RankSharded is Rank for large candidate sets: candidates are scored
// concurrently across at most shards workers, then merged back into the
// exact order Rank would produce. Sharding is safe because the engine
// holds no shared mutable state; results are written into per-index slots
// so no ordering information is lost.
//
// The output is identical to Rank for the same inputs, including sort
// stability, filtering and the sentinel result.
func (e *Engine) RankSharded(ctx context.Context, candidates, request any, shards int) ([]domain.MatchResult, error) {
	seq, req, err := e.validateInputs(candidates, request)
	if err != nil {
		return nil, err
	}
	if shards <= 1 || len(seq) <= 1 {
		return e.Rank(ctx, candidates, request)
	}

	type slot struct {
		outcome scoreOutcome
		cand    domain.Record
		valid   bool
	}
	slots := make([]slot, len(seq))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(shards)
	for i, item := range seq {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			cand, ok := domain.AsRecord(item)
			if !ok {
				e.logger.Warn().
					Int("index", i).
					Str("type", fmt.Sprintf("%T", item)).
					Msg("skipping candidate: not a record")
				return nil
			}
			slots[i] = slot{outcome: e.scoreOne(gctx, cand, req), cand: cand, valid: true}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Sequential merge in input order keeps tie-breaking identical to the
	// single-threaded path.
	results := make([]domain.MatchResult, 0, len(seq))
	var rejected []string
	for _, s := range slots {
		if !s.valid {
			continue
		}
		if s.outcome.exclude && s.outcome.score == 0 {
			rejected = append(rejected, s.cand.Material())
			continue
		}
		results = append(results, domain.MatchResult{
			Candidate: s.cand,
			Score:     s.outcome.score,
			Comments:  s.outcome.comments,
		})
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })

	if len(results) == 0 {
		e.logNearMisses(req, rejected)
		return []domain.MatchResult{domain.NewNoMatchResult(req)}, nil
	}
	return results, nil
}
