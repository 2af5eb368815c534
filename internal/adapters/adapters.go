// Package adapters converts heterogeneous raw analyzer outputs into the
// canonical raw record shape. One adapter per upstream schema; later pipeline
// stages never branch on the producing format.
package adapters

import (
	"encoding/json"
	"fmt"

	"github.com/xab-mack/quorum/internal/model"
)

// Format identifies a supported raw analyzer output schema.
type Format string

const (
	FormatNative Format = "native"
	FormatSARIF  Format = "sarif"
	FormatReview Format = "review"
)

// Parse converts one raw analyzer output document into raw finding records.
func Parse(format Format, raw []byte) ([]model.RawFinding, error) {
	switch format {
	case FormatNative:
		return parseNative(raw)
	case FormatSARIF:
		return parseSARIF(raw)
	case FormatReview:
		return parseReview(raw)
	default:
		return nil, fmt.Errorf("adapters: unsupported format %q", format)
	}
}

// Detect sniffs the schema of a raw document. SARIF logs carry a "runs" key,
// native batches a "findings" key, review output is a bare JSON array.
func Detect(raw []byte) (Format, error) {
	var probe struct {
		Runs     json.RawMessage `json:"runs"`
		Findings json.RawMessage `json:"findings"`
	}
	if err := json.Unmarshal(raw, &probe); err == nil {
		if len(probe.Runs) > 0 {
			return FormatSARIF, nil
		}
		if len(probe.Findings) > 0 {
			return FormatNative, nil
		}
	}
	var arr []json.RawMessage
	if err := json.Unmarshal(raw, &arr); err == nil {
		return FormatReview, nil
	}
	return "", fmt.Errorf("adapters: unrecognized input schema")
}
