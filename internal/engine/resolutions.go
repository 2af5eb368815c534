package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/xab-mack/quorum/internal/model"
)

// LoadResolutions reads an adjudication ledger written by a previous
// invocation (or by hand). A missing path yields no resolutions.
func LoadResolutions(path string) ([]model.Resolution, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read resolutions: %w", err)
	}
	var out []model.Resolution
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parse resolutions %s: %w", path, err)
	}
	for i, r := range out {
		if r.GroupKey == "" {
			return nil, fmt.Errorf("resolutions %s: entry %d has no groupKey", path, i)
		}
		if r.Verdict != model.VerdictConfirmed && r.Verdict != model.VerdictFalsePositive {
			return nil, fmt.Errorf("resolutions %s: entry %d has verdict %q", path, i, r.Verdict)
		}
	}
	return out, nil
}

// WriteResolutionStubs writes one pending entry per still-disputed group so
// an adjudicator can fill in verdicts and feed the file back to the next run.
func WriteResolutionStubs(path string, groups []*model.FindingGroup) error {
	var stubs []model.Resolution
	for _, g := range groups {
		if g.Consensus == model.ConsensusDisputed {
			stubs = append(stubs, model.Resolution{GroupKey: g.Key})
		}
	}
	sort.Slice(stubs, func(i, j int) bool { return stubs[i].GroupKey < stubs[j].GroupKey })
	data, err := json.MarshalIndent(stubs, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
