package engine

import "github.com/xab-mack/quorum/internal/model"

// vote computes the consensus confidence for one group. Pure function of the
// group's members and the conflict predicate: recomputing on the same input
// yields the same label.
//
// Rules, first match wins:
//  1. contradiction between members -> DISPUTED
//  2. two or more distinct agreeing sources -> CONFIRMED
//  3. one source declaring HIGH -> LIKELY
//  4. one source declaring LOW or MEDIUM -> INVESTIGATE
func vote(g *model.FindingGroup, pred Predicate) model.Consensus {
	if conflicted(g, pred) {
		return model.ConsensusDisputed
	}
	if len(g.Sources()) >= 2 {
		return model.ConsensusConfirmed
	}
	if maxDeclared(g) == model.ConfidenceHigh {
		return model.ConsensusLikely
	}
	return model.ConsensusInvestigate
}

// maxDeclared is the strongest self-reported confidence among members. A
// single source may contribute several merged findings; the strongest claim
// carries the group.
func maxDeclared(g *model.FindingGroup) model.Confidence {
	max := model.ConfidenceLow
	rank := map[model.Confidence]int{
		model.ConfidenceLow:    1,
		model.ConfidenceMedium: 2,
		model.ConfidenceHigh:   3,
	}
	for _, f := range g.Members {
		if rank[f.DeclaredConfidence] > rank[max] {
			max = f.DeclaredConfidence
		}
	}
	return max
}
