package model

import "testing"

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		in        string
		want      Severity
		wantKnown bool
	}{
		{"CRITICAL", SeverityCritical, true},
		{"high", SeverityHigh, true},
		{" Medium ", SeverityMedium, true},
		{"low", SeverityLow, true},
		{"", SeverityMedium, false},
		{"blocker", SeverityMedium, false},
	}
	for _, tt := range tests {
		got, known := ParseSeverity(tt.in)
		if got != tt.want || known != tt.wantKnown {
			t.Errorf("ParseSeverity(%q) = %s, %v; want %s, %v", tt.in, got, known, tt.want, tt.wantKnown)
		}
	}
}

func TestParseConfidence(t *testing.T) {
	tests := []struct {
		in        string
		want      Confidence
		wantKnown bool
	}{
		{"HIGH", ConfidenceHigh, true},
		{"medium", ConfidenceMedium, true},
		{"", ConfidenceLow, false},
		{"certain", ConfidenceLow, false},
	}
	for _, tt := range tests {
		got, known := ParseConfidence(tt.in)
		if got != tt.want || known != tt.wantKnown {
			t.Errorf("ParseConfidence(%q) = %s, %v; want %s, %v", tt.in, got, known, tt.want, tt.wantKnown)
		}
	}
}

func TestSeverityGTE(t *testing.T) {
	if !SeverityGTE(SeverityCritical, SeverityHigh) {
		t.Error("CRITICAL < HIGH")
	}
	if SeverityGTE(SeverityLow, SeverityMedium) {
		t.Error("LOW >= MEDIUM")
	}
	if !SeverityGTE(SeverityMedium, SeverityMedium) {
		t.Error("MEDIUM < MEDIUM")
	}
}

func TestConsensusRankOrdering(t *testing.T) {
	order := []Consensus{ConsensusFalsePositive, ConsensusInvestigate, ConsensusLikely, ConsensusConfirmed}
	for i := 1; i < len(order); i++ {
		if ConsensusRank(order[i-1]) >= ConsensusRank(order[i]) {
			t.Errorf("%s should rank below %s", order[i-1], order[i])
		}
	}
}

func TestParsePriorityAliases(t *testing.T) {
	tests := []struct {
		in   string
		want Priority
		ok   bool
	}{
		{"critical", PriorityCritical, true},
		{"CRITICAL_PRIORITY", PriorityCritical, true},
		{"info", PriorityInfo, true},
		{"urgent", PriorityNone, false},
	}
	for _, tt := range tests {
		got, ok := ParsePriority(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParsePriority(%q) = %s, %v", tt.in, got, ok)
		}
	}
}

func TestGroupMaxSeverity(t *testing.T) {
	g := &FindingGroup{Members: []Finding{
		{Source: "a", Severity: SeverityLow},
		{Source: "b", Severity: SeverityCritical},
		{Source: "c", Severity: SeverityMedium},
	}}
	if got := g.MaxSeverity(); got != SeverityCritical {
		t.Errorf("MaxSeverity = %s, want CRITICAL", got)
	}
}

func TestGroupSourcesDistinctOrdered(t *testing.T) {
	g := &FindingGroup{Members: []Finding{
		{Source: "b"}, {Source: "a"}, {Source: "b"}, {Source: "c"},
	}}
	got := g.Sources()
	want := []string{"b", "a", "c"}
	if len(got) != len(want) {
		t.Fatalf("Sources = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Sources = %v, want %v", got, want)
		}
	}
}

func TestProjectContextInScope(t *testing.T) {
	open := ProjectContext{Type: ContextGeneral}
	if !open.InScope("whatever") {
		t.Error("empty category set must keep everything in scope")
	}
	scoped := ProjectContext{
		Type:               ContextEcommerce,
		RelevantCategories: map[string]struct{}{"checkout": {}},
	}
	if !scoped.InScope("checkout") || scoped.InScope("seo") {
		t.Error("scoped context filtering wrong")
	}
}
