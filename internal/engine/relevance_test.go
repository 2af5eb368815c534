package engine

import (
	"testing"

	"github.com/xab-mack/quorum/internal/model"
)

func ecommerceContext() model.ProjectContext {
	return model.ProjectContext{
		Type: model.ContextEcommerce,
		RelevantCategories: map[string]struct{}{
			"checkout": {}, "payments": {}, "pci": {},
		},
	}
}

func categorized(source, category string) model.Finding {
	f := member(source, model.ConfidenceLow)
	f.Category = category
	return f
}

func TestFilterRelevanceExcludesOutOfScope(t *testing.T) {
	g := &model.FindingGroup{Key: "home.ts:3", Members: []model.Finding{
		categorized("legal", "ai-disclosure"),
	}}
	filterRelevance([]*model.FindingGroup{g}, ecommerceContext())
	if !g.Excluded {
		t.Fatal("out-of-scope group not excluded")
	}
	if g.ExclusionReason == "" {
		t.Fatal("exclusion has no reason")
	}
	if len(g.Members) != 1 {
		t.Fatal("excluded group lost members; exclusions must stay auditable")
	}
}

func TestFilterRelevancePartialKeepsGroup(t *testing.T) {
	g := &model.FindingGroup{Key: "checkout.ts:15", Members: []model.Finding{
		categorized("legal", "ai-disclosure"),
		categorized("sec", "checkout"),
	}}
	filterRelevance([]*model.FindingGroup{g}, ecommerceContext())
	if g.Excluded {
		t.Fatal("group with one in-scope member was excluded")
	}
}

func TestFilterRelevanceGeneralKeepsEverything(t *testing.T) {
	g := &model.FindingGroup{Key: "k", Members: []model.Finding{
		categorized("legal", "ai-disclosure"),
	}}
	filterRelevance([]*model.FindingGroup{g}, model.ProjectContext{Type: model.ContextGeneral})
	if g.Excluded {
		t.Fatal("GENERAL context excluded a group")
	}
}

func TestFilterRelevanceIdempotent(t *testing.T) {
	g := &model.FindingGroup{Key: "home.ts:3", Members: []model.Finding{
		categorized("legal", "ai-disclosure"),
	}}
	pctx := ecommerceContext()
	filterRelevance([]*model.FindingGroup{g}, pctx)
	first := g.ExclusionReason
	filterRelevance([]*model.FindingGroup{g}, pctx)
	if g.ExclusionReason != first {
		t.Fatalf("exclusion reason changed on re-run: %q vs %q", first, g.ExclusionReason)
	}
}

func TestApplySuppressions(t *testing.T) {
	tests := []struct {
		name string
		rule Suppression
		want bool
	}{
		{"category_match", Suppression{Category: "checkout", Reason: "accepted"}, true},
		{"artifact_prefix", Suppression{Artifact: "legacy/", Reason: "frozen code"}, true},
		{"both_must_match", Suppression{Category: "payments", Artifact: "legacy/", Reason: "x"}, false},
		{"empty_rule_never_matches", Suppression{Reason: "bad rule"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &model.FindingGroup{
				Key:      "legacy/cart.ts:2",
				Artifact: "legacy/cart.ts",
				Members:  []model.Finding{categorized("sec", "checkout")},
			}
			applySuppressions([]*model.FindingGroup{g}, []Suppression{tt.rule})
			if g.Excluded != tt.want {
				t.Errorf("excluded = %v, want %v", g.Excluded, tt.want)
			}
		})
	}
}
