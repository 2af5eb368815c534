package model

import "strings"

type Severity string

const (
	SeverityLow      Severity = "LOW"
	SeverityMedium   Severity = "MEDIUM"
	SeverityHigh     Severity = "HIGH"
	SeverityCritical Severity = "CRITICAL"
)

// ParseSeverity maps free-form analyzer severities onto the ordered enum.
// Unknown values default to MEDIUM (fail soft, never drop a finding).
func ParseSeverity(s string) (Severity, bool) {
	switch Severity(normalizeEnum(s)) {
	case SeverityLow:
		return SeverityLow, true
	case SeverityMedium:
		return SeverityMedium, true
	case SeverityHigh:
		return SeverityHigh, true
	case SeverityCritical:
		return SeverityCritical, true
	}
	return SeverityMedium, false
}

var severityOrder = map[Severity]int{
	SeverityLow:      1,
	SeverityMedium:   2,
	SeverityHigh:     3,
	SeverityCritical: 4,
}

func SeverityGTE(a, b Severity) bool { return severityOrder[a] >= severityOrder[b] }

// Confidence is an analyzer's self-reported confidence, independent of the
// consensus confidence computed downstream.
type Confidence string

const (
	ConfidenceLow    Confidence = "LOW"
	ConfidenceMedium Confidence = "MEDIUM"
	ConfidenceHigh   Confidence = "HIGH"
)

// ParseConfidence defaults unknown values to LOW.
func ParseConfidence(s string) (Confidence, bool) {
	switch Confidence(normalizeEnum(s)) {
	case ConfidenceLow:
		return ConfidenceLow, true
	case ConfidenceMedium:
		return ConfidenceMedium, true
	case ConfidenceHigh:
		return ConfidenceHigh, true
	}
	return ConfidenceLow, false
}

// Consensus is the derived trust level for a group of findings.
type Consensus string

const (
	ConsensusConfirmed     Consensus = "CONFIRMED"
	ConsensusLikely        Consensus = "LIKELY"
	ConsensusInvestigate   Consensus = "INVESTIGATE"
	ConsensusDisputed      Consensus = "DISPUTED"
	ConsensusFalsePositive Consensus = "FALSE_POSITIVE"
)

var consensusOrder = map[Consensus]int{
	ConsensusFalsePositive: 0,
	ConsensusInvestigate:   1,
	ConsensusLikely:        2,
	ConsensusConfirmed:     3,
}

// ConsensusRank orders the non-disputed labels for monotonicity checks.
// DISPUTED has no rank; it is a state, not a strength.
func ConsensusRank(c Consensus) int { return consensusOrder[c] }

type Priority string

const (
	PriorityCritical Priority = "CRITICAL_PRIORITY"
	PriorityHigh     Priority = "HIGH_PRIORITY"
	PriorityMedium   Priority = "MEDIUM_PRIORITY"
	PriorityLow      Priority = "LOW_PRIORITY"
	PriorityInfo     Priority = "INFO"
	// PriorityNone marks groups that route to the disputes or exclusion
	// sections instead of a priority bucket.
	PriorityNone Priority = ""
)

var priorityOrder = map[Priority]int{
	PriorityCritical: 5,
	PriorityHigh:     4,
	PriorityMedium:   3,
	PriorityLow:      2,
	PriorityInfo:     1,
	PriorityNone:     0,
}

func PriorityGTE(a, b Priority) bool { return priorityOrder[a] >= priorityOrder[b] }

// ParsePriority recognizes bucket names for CLI gates. Short aliases
// (critical, high, ...) are accepted alongside the canonical labels.
func ParsePriority(s string) (Priority, bool) {
	switch normalizeEnum(s) {
	case "CRITICAL_PRIORITY", "CRITICAL":
		return PriorityCritical, true
	case "HIGH_PRIORITY", "HIGH":
		return PriorityHigh, true
	case "MEDIUM_PRIORITY", "MEDIUM":
		return PriorityMedium, true
	case "LOW_PRIORITY", "LOW":
		return PriorityLow, true
	case "INFO":
		return PriorityInfo, true
	}
	return PriorityNone, false
}

// Buckets lists the priority buckets in report order.
func Buckets() []Priority {
	return []Priority{PriorityCritical, PriorityHigh, PriorityMedium, PriorityLow, PriorityInfo}
}

func normalizeEnum(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Location points into the audited artifact. Line 0 means the finding carries
// no line information and groups at artifact granularity.
type Location struct {
	Artifact string `json:"artifact"`
	Line     int    `json:"line,omitempty"`
}

// Finding is one normalized report of a potential issue from one analyzer.
type Finding struct {
	ID                 string     `json:"id"`
	Source             string     `json:"source"`
	Location           Location   `json:"location"`
	Title              string     `json:"title"`
	Severity           Severity   `json:"severity"`
	DeclaredConfidence Confidence `json:"declaredConfidence"`
	Category           string     `json:"category,omitempty"`
	Rationale          string     `json:"rationale,omitempty"`
	Remediation        string     `json:"remediation,omitempty"`
}

// RawFinding is the pre-normalization record shape adapters emit. Enum fields
// stay strings here; the normalizer applies defaults and validation.
type RawFinding struct {
	ID          string `json:"id"`
	Source      string `json:"source"`
	Artifact    string `json:"artifact"`
	Line        int    `json:"line"`
	Title       string `json:"title"`
	Severity    string `json:"severity"`
	Confidence  string `json:"confidence"`
	Category    string `json:"category"`
	Rationale   string `json:"rationale"`
	Remediation string `json:"remediation"`
}

// Batch is one analyzer's raw output after adapter parsing, still
// un-normalized. Name identifies the input (file path, stream tag) for the
// error side channel.
type Batch struct {
	Name    string
	Records []RawFinding
}

// RecordError reports a raw record that could not be normalized. These travel
// on the side channel next to the report and are never fatal to the run.
type RecordError struct {
	Batch  string `json:"batch,omitempty"`
	Source string `json:"source,omitempty"`
	ID     string `json:"id,omitempty"`
	Reason string `json:"reason"`
}

// FindingGroup unifies findings that describe the same location or subject.
// Groups are created once during grouping and only annotated afterwards,
// never split or merged.
type FindingGroup struct {
	Key             string    `json:"key"`
	Artifact        string    `json:"artifact,omitempty"`
	Line            int       `json:"line,omitempty"`
	Members         []Finding `json:"members"`
	Consensus       Consensus `json:"consensus,omitempty"`
	Priority        Priority  `json:"priority,omitempty"`
	Excluded        bool      `json:"excluded,omitempty"`
	ExclusionReason string    `json:"exclusionReason,omitempty"`
}

// MaxSeverity is the group severity: worst case over members, never averaged.
func (g *FindingGroup) MaxSeverity() Severity {
	max := SeverityLow
	for _, f := range g.Members {
		if SeverityGTE(f.Severity, max) {
			max = f.Severity
		}
	}
	return max
}

// Sources returns the distinct analyzer sources in first-seen order.
func (g *FindingGroup) Sources() []string {
	seen := map[string]bool{}
	var out []string
	for _, f := range g.Members {
		if !seen[f.Source] {
			seen[f.Source] = true
			out = append(out, f.Source)
		}
	}
	return out
}

// ContextType classifies the audited project's domain.
type ContextType string

const (
	ContextSaaS          ContextType = "SAAS"
	ContextEcommerce     ContextType = "ECOMMERCE"
	ContextHealthcare    ContextType = "HEALTHCARE"
	ContextSocialUGC     ContextType = "SOCIAL_UGC"
	ContextStaticContent ContextType = "STATIC_CONTENT"
	ContextAIML          ContextType = "AI_ML"
	ContextGeneral       ContextType = "GENERAL"
)

// ProjectContext is the external classification used for relevance filtering.
// An empty category set means every category is in scope.
type ProjectContext struct {
	Type               ContextType
	RelevantCategories map[string]struct{}
}

// InScope reports whether a finding category is relevant to this context.
func (c ProjectContext) InScope(category string) bool {
	if len(c.RelevantCategories) == 0 {
		return true
	}
	_, ok := c.RelevantCategories[category]
	return ok
}

type Verdict string

const (
	VerdictConfirmed     Verdict = "CONFIRMED"
	VerdictFalsePositive Verdict = "FALSE_POSITIVE"
)

// Resolution is an external adjudication of a disputed group. The engine
// never picks a side on its own.
type Resolution struct {
	GroupKey  string  `json:"groupKey"`
	Verdict   Verdict `json:"verdict"`
	Reasoning string  `json:"reasoning"`
}
