// Package predicate supplies contradiction predicates for the conflict
// resolver: a built-in phrase-pair matcher and a yaegi-interpreted loader for
// caller-supplied Go predicates.
package predicate

import (
	"strings"

	"github.com/xab-mack/quorum/internal/config"
	"github.com/xab-mack/quorum/internal/engine"
	"github.com/xab-mack/quorum/internal/model"
)

// Phrases builds a predicate from mutually exclusive phrase pairs: it fires
// when one finding matches one side of a pair and the other finding matches
// the opposite side. Matching is case-insensitive over title and rationale.
func Phrases(pairs []config.Pair) engine.Predicate {
	if len(pairs) == 0 {
		return nil
	}
	return func(a, b model.Finding) bool {
		ta, tb := findingText(a), findingText(b)
		for _, p := range pairs {
			pa, pb := strings.ToLower(p.A), strings.ToLower(p.B)
			if strings.Contains(ta, pa) && strings.Contains(tb, pb) {
				return true
			}
		}
		return false
	}
}

// Combine fires when any of the given predicates fires. Nil entries are
// skipped; an all-nil combination yields nil.
func Combine(preds ...engine.Predicate) engine.Predicate {
	var active []engine.Predicate
	for _, p := range preds {
		if p != nil {
			active = append(active, p)
		}
	}
	switch len(active) {
	case 0:
		return nil
	case 1:
		return active[0]
	}
	return func(a, b model.Finding) bool {
		for _, p := range active {
			if p(a, b) {
				return true
			}
		}
		return false
	}
}

func findingText(f model.Finding) string {
	return strings.ToLower(f.Title + "\n" + f.Rationale)
}
