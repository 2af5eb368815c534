package adapters

import (
	"encoding/json"
	"fmt"

	"github.com/xab-mack/quorum/internal/model"
)

// Review schema: LLM code-review output, a bare array of findings with float
// confidence and error/warning/info severities.
type reviewFinding struct {
	ID         string  `json:"id"`
	Reviewer   string  `json:"reviewer"`
	File       string  `json:"file"`
	Line       int     `json:"line"`
	Severity   string  `json:"severity"` // error|warning|info|nitpick
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"` // 0..1
	Message    string  `json:"message"`
	Suggestion string  `json:"suggestion"`
}

func parseReview(raw []byte) ([]model.RawFinding, error) {
	var list []reviewFinding
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, err
	}
	out := make([]model.RawFinding, 0, len(list))
	for i, r := range list {
		id := r.ID
		if id == "" {
			id = fmt.Sprintf("review-%d", i)
		}
		out = append(out, model.RawFinding{
			ID:          id,
			Source:      r.Reviewer,
			Artifact:    r.File,
			Line:        r.Line,
			Title:       r.Message,
			Severity:    reviewSeverity(r.Severity),
			Confidence:  reviewConfidence(r.Confidence),
			Category:    r.Category,
			Rationale:   r.Message,
			Remediation: r.Suggestion,
		})
	}
	return out, nil
}

func reviewSeverity(s string) string {
	switch s {
	case "error":
		return "HIGH"
	case "warning":
		return "MEDIUM"
	case "info", "nitpick":
		return "LOW"
	}
	return ""
}

func reviewConfidence(c float64) string {
	switch {
	case c >= 0.8:
		return "HIGH"
	case c >= 0.5:
		return "MEDIUM"
	case c > 0:
		return "LOW"
	}
	return ""
}
