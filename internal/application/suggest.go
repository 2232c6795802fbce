package application

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/cases"

	"github.com/supplyai/matchengine/internal/domain"
)

// maxSuggestDistance is the edit distance under which a rejected material
// counts as a near miss of the requested one.
const maxSuggestDistance = 2

// logNearMisses emits a diagnostic when every candidate was rejected by
// the material gate: rejected materials within a small edit distance of
// the requested material are likely typos or labeling variants worth a
// human look. This is an observation only; it never affects scoring or
// output.
func (e *Engine) logNearMisses(req domain.Record, rejected []string) {
	suggestions := nearMissMaterials(req.Material(), rejected)
	if len(suggestions) == 0 {
		return
	}
	e.logger.Info().
		Str("material", req.Material()).
		Strs("near_misses", suggestions).
		Msg("no matches, but some rejected materials are close to the requested one")
}

// nearMissMaterials returns the deduplicated, sorted subset of rejected
// material labels within maxSuggestDistance of requested, compared after
// case folding and trimming.
func nearMissMaterials(requested string, rejected []string) []string {
	folder := cases.Fold()
	want := folder.String(strings.TrimSpace(requested))
	if want == "" {
		return nil
	}

	seen := make(map[string]struct{})
	var out []string
	for _, label := range rejected {
		trimmed := strings.TrimSpace(label)
		folded := folder.String(trimmed)
		if folded == "" || folded == want {
			continue
		}
		if levenshtein.ComputeDistance(want, folded) > maxSuggestDistance {
			continue
		}
		if _, dup := seen[folded]; dup {
			continue
		}
		seen[folded] = struct{}{}
		out = append(out, trimmed)
	}
	sort.Strings(out)
	return out
}
