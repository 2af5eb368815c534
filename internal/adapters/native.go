package adapters

import (
	"encoding/json"

	"github.com/xab-mack/quorum/internal/model"
)

// Native batch schema: the analyzer names itself once and lists findings.
type nativeBatch struct {
	Analyzer string `json:"analyzer"`
	Findings []struct {
		ID          string `json:"id"`
		Artifact    string `json:"artifact"`
		Line        int    `json:"line"`
		Title       string `json:"title"`
		Severity    string `json:"severity"`
		Confidence  string `json:"confidence"`
		Category    string `json:"category"`
		Rationale   string `json:"rationale"`
		Remediation string `json:"remediation"`
	} `json:"findings"`
}

func parseNative(raw []byte) ([]model.RawFinding, error) {
	var b nativeBatch
	if err := json.Unmarshal(raw, &b); err != nil {
		return nil, err
	}
	out := make([]model.RawFinding, 0, len(b.Findings))
	for _, f := range b.Findings {
		out = append(out, model.RawFinding{
			ID:          f.ID,
			Source:      b.Analyzer,
			Artifact:    f.Artifact,
			Line:        f.Line,
			Title:       f.Title,
			Severity:    f.Severity,
			Confidence:  f.Confidence,
			Category:    f.Category,
			Rationale:   f.Rationale,
			Remediation: f.Remediation,
		})
	}
	return out, nil
}
