// Package engine implements the consensus pipeline: normalize, group by
// location, filter by relevance, vote, resolve conflicts, rank. One run
// consumes one finite finding set; no state survives between runs.
package engine

import (
	"context"

	"github.com/xab-mack/quorum/internal/model"
)

type Options struct {
	Context model.ProjectContext
	// Tolerance is the line window for same-location grouping; 0 means
	// exact line match.
	Tolerance int
	// Predicate detects contradictions between group members. Nil disables
	// conflict detection.
	Predicate Predicate
	// Resolutions adjudicate previously disputed groups.
	Resolutions []model.Resolution
	// Suppressions are operator exclusion rules applied after the
	// relevance filter.
	Suppressions []Suppression
}

type Engine struct {
	opts Options
}

func New(opts Options) *Engine { return &Engine{opts: opts} }

// Result carries everything one run produced: every group (prioritized,
// disputed, and excluded alike), the malformed-record side channel, and
// normalization stats. Report assembly is a separate, rendering-side step.
type Result struct {
	Context model.ProjectContext
	Groups  []*model.FindingGroup
	Errors  []model.RecordError
	Stats   NormalizeStats
}

// Run executes the pipeline over the raw batches. The stages run strictly in
// order with no feedback: only normalization fans out, everything after needs
// the full finding set. The only error conditions are context cancellation
// and the duplicate (id, source) invariant; malformed records land on the
// side channel instead.
func (e *Engine) Run(ctx context.Context, batches []model.Batch) (*Result, error) {
	findings, recErrs, stats, err := normalizeBatches(ctx, batches)
	if err != nil {
		return nil, err
	}

	groups := groupFindings(findings, e.opts.Tolerance)
	filterRelevance(groups, e.opts.Context)
	applySuppressions(groups, e.opts.Suppressions)
	for _, g := range groups {
		if g.Excluded {
			continue
		}
		g.Consensus = vote(g, e.opts.Predicate)
	}
	applyResolutions(groups, e.opts.Resolutions)
	rankGroups(groups)

	return &Result{
		Context: e.opts.Context,
		Groups:  groups,
		Errors:  recErrs,
		Stats:   stats,
	}, nil
}
