package report

import (
	"encoding/json"

	"github.com/xab-mack/quorum/internal/model"
)

type sarif struct {
	Version string     `json:"version"`
	Schema  string     `json:"$schema"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool    sarifTool     `json:"tool"`
	Results []sarifResult `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}
type sarifDriver struct {
	Name string `json:"name"`
}

type sarifResult struct {
	RuleID     string         `json:"ruleId"`
	Level      string         `json:"level"`
	Message    sarifMessage   `json:"message"`
	Locations  []sarifLoc     `json:"locations"`
	Properties map[string]any `json:"properties,omitempty"`
}

type sarifMessage struct {
	Text string `json:"text"`
}
type sarifLoc struct {
	Physical sarifPhys `json:"physicalLocation"`
}
type sarifPhys struct {
	ArtifactLocation sarifArt    `json:"artifactLocation"`
	Region           sarifRegion `json:"region"`
}
type sarifArt struct {
	URI string `json:"uri"`
}
type sarifRegion struct {
	StartLine int `json:"startLine"`
}

// ToSARIF exports the prioritized sections as SARIF 2.1.0. Disputed and
// excluded groups are not results; they live only in the report tree.
func ToSARIF(r *Report) ([]byte, error) {
	var results []sarifResult
	for _, sec := range r.Sections {
		for _, g := range sec.Groups {
			level := "note"
			switch g.Priority {
			case model.PriorityCritical, model.PriorityHigh:
				level = "error"
			case model.PriorityMedium:
				level = "warning"
			}
			uri := g.Artifact
			if uri == "" {
				uri = g.Key
			}
			line := g.Line
			if line <= 0 {
				line = 1
			}
			results = append(results, sarifResult{
				RuleID:  g.Key,
				Level:   level,
				Message: sarifMessage{Text: g.Title},
				Locations: []sarifLoc{{Physical: sarifPhys{
					ArtifactLocation: sarifArt{URI: uri},
					Region:           sarifRegion{StartLine: line},
				}}},
				Properties: map[string]any{
					"consensus": g.Consensus,
					"priority":  g.Priority,
					"sources":   g.Sources,
				},
			})
		}
	}
	s := sarif{
		Version: "2.1.0",
		Schema:  "https://schemastore.azurewebsites.net/schemas/json/sarif-2.1.0-rtm.5.json",
		Runs:    []sarifRun{{Tool: sarifTool{Driver: sarifDriver{Name: "quorum"}}, Results: results}},
	}
	return json.MarshalIndent(s, "", "  ")
}
