package engine

import "github.com/xab-mack/quorum/internal/model"

// Predicate decides whether two findings assert mutually exclusive claims
// about the same location. Natural-language contradiction detection has no
// closed form, so the judgment is supplied by the caller; the engine only
// provides the plumbing around it.
type Predicate func(a, b model.Finding) bool

// conflicted runs the predicate over every pair of members from distinct
// sources. One analyzer does not contradict itself.
func conflicted(g *model.FindingGroup, pred Predicate) bool {
	if pred == nil {
		return false
	}
	for i := 0; i < len(g.Members); i++ {
		for j := i + 1; j < len(g.Members); j++ {
			a, b := g.Members[i], g.Members[j]
			if a.Source == b.Source {
				continue
			}
			if pred(a, b) || pred(b, a) {
				return true
			}
		}
	}
	return false
}

// applyResolutions applies external adjudications to disputed groups.
// CONFIRMED verdicts send the group back through ranking; FALSE_POSITIVE
// verdicts exclude it with the adjudicator's reasoning. Resolutions for
// unknown or undisputed groups are ignored.
func applyResolutions(groups []*model.FindingGroup, resolutions []model.Resolution) {
	if len(resolutions) == 0 {
		return
	}
	byKey := make(map[string]model.Resolution, len(resolutions))
	for _, r := range resolutions {
		byKey[r.GroupKey] = r
	}
	for _, g := range groups {
		if g.Consensus != model.ConsensusDisputed {
			continue
		}
		r, ok := byKey[g.Key]
		if !ok {
			continue
		}
		switch r.Verdict {
		case model.VerdictConfirmed:
			g.Consensus = model.ConsensusConfirmed
		case model.VerdictFalsePositive:
			g.Consensus = model.ConsensusFalsePositive
			g.Excluded = true
			g.ExclusionReason = "resolved as false positive: " + r.Reasoning
		}
	}
}
