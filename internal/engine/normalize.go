package engine

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/xab-mack/quorum/internal/model"
)

// ErrDuplicateFinding signals a violated input invariant: two records share
// the same (id, source) pair. Merging them would corrupt the agreement
// matrix, so the run aborts instead.
var ErrDuplicateFinding = errors.New("duplicate (id, source) pair in input")

// NormalizeStats summarizes what the normalizer did to one run's input.
type NormalizeStats struct {
	Records   int // raw records seen
	Malformed int // rejected to the error side channel
	Defaulted int // records with substituted severity or confidence
}

type batchResult struct {
	findings  []model.Finding
	errs      []model.RecordError
	defaulted int
}

// normalizeBatches converts raw batches into canonical findings. Batches are
// independent, so they fan out one goroutine each and fan back in before
// grouping. Output order follows batch input order, keeping runs
// deterministic regardless of scheduling.
func normalizeBatches(ctx context.Context, batches []model.Batch) ([]model.Finding, []model.RecordError, NormalizeStats, error) {
	results := make([]batchResult, len(batches))
	var wg sync.WaitGroup
	for i, b := range batches {
		wg.Add(1)
		go func(i int, b model.Batch) {
			defer wg.Done()
			results[i] = normalizeBatch(b)
		}(i, b)
	}
	wg.Wait()
	if err := ctx.Err(); err != nil {
		return nil, nil, NormalizeStats{}, err
	}

	var stats NormalizeStats
	var findings []model.Finding
	var errs []model.RecordError
	seen := map[string]bool{}
	for i, r := range results {
		stats.Records += len(batches[i].Records)
		stats.Malformed += len(r.errs)
		stats.Defaulted += r.defaulted
		errs = append(errs, r.errs...)
		for _, f := range r.findings {
			key := f.Source + "\x00" + f.ID
			if seen[key] {
				return nil, nil, stats, fmt.Errorf("%w: id=%q source=%q", ErrDuplicateFinding, f.ID, f.Source)
			}
			seen[key] = true
			findings = append(findings, f)
		}
	}
	return findings, errs, stats, nil
}

func normalizeBatch(b model.Batch) batchResult {
	var out batchResult
	for _, raw := range b.Records {
		f, defaulted, err := normalizeRecord(raw)
		if err != nil {
			out.errs = append(out.errs, model.RecordError{
				Batch:  b.Name,
				Source: raw.Source,
				ID:     raw.ID,
				Reason: err.Error(),
			})
			continue
		}
		if defaulted {
			out.defaulted++
		}
		out.findings = append(out.findings, f)
	}
	return out
}

// normalizeRecord maps one raw record onto the canonical Finding. Missing
// severity or confidence is substituted (MEDIUM, LOW); a record without title
// or source is malformed and rejected.
func normalizeRecord(raw model.RawFinding) (model.Finding, bool, error) {
	if raw.Title == "" {
		return model.Finding{}, false, errors.New("missing title")
	}
	if raw.Source == "" {
		return model.Finding{}, false, errors.New("missing source")
	}
	sev, sevKnown := model.ParseSeverity(raw.Severity)
	conf, confKnown := model.ParseConfidence(raw.Confidence)
	line := raw.Line
	if line < 0 {
		line = 0
	}
	return model.Finding{
		ID:                 raw.ID,
		Source:             raw.Source,
		Location:           model.Location{Artifact: filepath.ToSlash(raw.Artifact), Line: line},
		Title:              raw.Title,
		Severity:           sev,
		DeclaredConfidence: conf,
		Category:           raw.Category,
		Rationale:          raw.Rationale,
		Remediation:        raw.Remediation,
	}, !sevKnown || !confKnown, nil
}
