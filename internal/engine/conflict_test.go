package engine

import (
	"strings"
	"testing"

	"github.com/xab-mack/quorum/internal/model"
)

func TestConflictedSkipsSameSource(t *testing.T) {
	g := &model.FindingGroup{Members: []model.Finding{
		member("a", model.ConfidenceLow),
		member("a", model.ConfidenceHigh),
	}}
	always := func(x, y model.Finding) bool { return true }
	if conflicted(g, always) {
		t.Fatal("one analyzer contradicted itself")
	}
}

func TestConflictedNilPredicate(t *testing.T) {
	g := &model.FindingGroup{Members: []model.Finding{
		member("a", model.ConfidenceLow),
		member("b", model.ConfidenceLow),
	}}
	if conflicted(g, nil) {
		t.Fatal("nil predicate fired")
	}
}

func TestConflictedPredicateBothDirections(t *testing.T) {
	// Fires only in one argument order; the plumbing must try both.
	pred := func(a, b model.Finding) bool {
		return strings.Contains(a.Rationale, "never empty") && strings.Contains(b.Rationale, "out-of-bounds")
	}
	claim := member("a", model.ConfidenceLow)
	claim.Rationale = "array never empty here"
	counter := member("b", model.ConfidenceLow)
	counter.Rationale = "possible out-of-bounds access"

	for _, members := range [][]model.Finding{{claim, counter}, {counter, claim}} {
		g := &model.FindingGroup{Members: members}
		if !conflicted(g, pred) {
			t.Fatal("contradiction missed in one member order")
		}
	}
}

func TestApplyResolutions(t *testing.T) {
	tests := []struct {
		name          string
		verdict       model.Verdict
		wantConsensus model.Consensus
		wantExcluded  bool
	}{
		{"confirmed", model.VerdictConfirmed, model.ConsensusConfirmed, false},
		{"false_positive", model.VerdictFalsePositive, model.ConsensusFalsePositive, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &model.FindingGroup{Key: "cart.ts:42", Consensus: model.ConsensusDisputed}
			applyResolutions([]*model.FindingGroup{g}, []model.Resolution{{
				GroupKey: "cart.ts:42", Verdict: tt.verdict, Reasoning: "manual review",
			}})
			if g.Consensus != tt.wantConsensus {
				t.Errorf("consensus = %s, want %s", g.Consensus, tt.wantConsensus)
			}
			if g.Excluded != tt.wantExcluded {
				t.Errorf("excluded = %v, want %v", g.Excluded, tt.wantExcluded)
			}
		})
	}
}

func TestApplyResolutionsIgnoresUndisputed(t *testing.T) {
	g := &model.FindingGroup{Key: "a.ts:1", Consensus: model.ConsensusConfirmed}
	applyResolutions([]*model.FindingGroup{g}, []model.Resolution{{
		GroupKey: "a.ts:1", Verdict: model.VerdictFalsePositive, Reasoning: "nope",
	}})
	if g.Consensus != model.ConsensusConfirmed || g.Excluded {
		t.Fatal("resolution touched an undisputed group")
	}
}
