package adapters

import (
	"encoding/json"
	"fmt"

	"github.com/xab-mack/quorum/internal/model"
)

// SARIF 2.1.0 (simplified). The tool driver name becomes the finding source;
// the result level maps onto severity, properties may carry the rest.
type sarifLog struct {
	Runs []struct {
		Tool struct {
			Driver struct {
				Name string `json:"name"`
			} `json:"driver"`
		} `json:"tool"`
		Results []struct {
			RuleID  string `json:"ruleId"`
			Level   string `json:"level"`
			Message struct {
				Text string `json:"text"`
			} `json:"message"`
			Locations []struct {
				PhysicalLocation struct {
					ArtifactLocation struct {
						URI string `json:"uri"`
					} `json:"artifactLocation"`
					Region struct {
						StartLine int `json:"startLine"`
					} `json:"region"`
				} `json:"physicalLocation"`
			} `json:"locations"`
			Properties struct {
				Confidence  string `json:"confidence"`
				Category    string `json:"category"`
				Rationale   string `json:"rationale"`
				Remediation string `json:"remediation"`
			} `json:"properties"`
		} `json:"results"`
	} `json:"runs"`
}

func parseSARIF(raw []byte) ([]model.RawFinding, error) {
	var log sarifLog
	if err := json.Unmarshal(raw, &log); err != nil {
		return nil, err
	}
	var out []model.RawFinding
	for _, run := range log.Runs {
		source := run.Tool.Driver.Name
		for i, r := range run.Results {
			artifact := ""
			line := 0
			if len(r.Locations) > 0 {
				artifact = r.Locations[0].PhysicalLocation.ArtifactLocation.URI
				line = r.Locations[0].PhysicalLocation.Region.StartLine
			}
			id := r.RuleID
			if id == "" {
				id = fmt.Sprintf("result-%d", i)
			}
			out = append(out, model.RawFinding{
				ID:          id,
				Source:      source,
				Artifact:    artifact,
				Line:        line,
				Title:       r.Message.Text,
				Severity:    sarifLevelSeverity(r.Level),
				Confidence:  r.Properties.Confidence,
				Category:    r.Properties.Category,
				Rationale:   r.Properties.Rationale,
				Remediation: r.Properties.Remediation,
			})
		}
	}
	return out, nil
}

func sarifLevelSeverity(level string) string {
	switch level {
	case "error":
		return "HIGH"
	case "warning":
		return "MEDIUM"
	case "note", "none":
		return "LOW"
	}
	return ""
}
