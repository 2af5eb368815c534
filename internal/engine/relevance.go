package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/xab-mack/quorum/internal/model"
)

// Suppression is an operator-supplied exclusion rule. Reason is mandatory so
// the exclusion table stays auditable.
type Suppression struct {
	Category string `json:"category,omitempty" yaml:"category,omitempty"`
	Artifact string `json:"artifact,omitempty" yaml:"artifact,omitempty"`
	Reason   string `json:"reason" yaml:"reason"`
}

// filterRelevance marks groups excluded when no member category is in scope
// for the project context. A single in-scope member keeps the whole group.
// Excluded groups are retained for the exclusion table, never deleted.
func filterRelevance(groups []*model.FindingGroup, pctx model.ProjectContext) {
	for _, g := range groups {
		if g.Excluded {
			continue
		}
		relevant := false
		for _, f := range g.Members {
			if pctx.InScope(f.Category) {
				relevant = true
				break
			}
		}
		if !relevant {
			g.Excluded = true
			g.ExclusionReason = fmt.Sprintf(
				"no member category relevant to %s context (categories: %s)",
				pctx.Type, strings.Join(memberCategories(g), ", "))
		}
	}
}

// applySuppressions marks groups matching an operator suppression rule.
// A rule matches on category (any member) and/or artifact path prefix; empty
// fields match everything, so a rule must set at least one.
func applySuppressions(groups []*model.FindingGroup, rules []Suppression) {
	for _, g := range groups {
		if g.Excluded {
			continue
		}
		for _, r := range rules {
			if r.Category == "" && r.Artifact == "" {
				continue
			}
			if r.Artifact != "" && !strings.HasPrefix(g.Artifact, r.Artifact) {
				continue
			}
			if r.Category != "" && !groupHasCategory(g, r.Category) {
				continue
			}
			g.Excluded = true
			g.ExclusionReason = "suppressed: " + r.Reason
			break
		}
	}
}

func groupHasCategory(g *model.FindingGroup, category string) bool {
	for _, f := range g.Members {
		if strings.EqualFold(f.Category, category) {
			return true
		}
	}
	return false
}

func memberCategories(g *model.FindingGroup) []string {
	seen := map[string]bool{}
	var out []string
	for _, f := range g.Members {
		c := f.Category
		if c == "" {
			c = "(none)"
		}
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	sort.Strings(out)
	return out
}
