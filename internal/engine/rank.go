package engine

import "github.com/xab-mack/quorum/internal/model"

// priorityMatrix is the fixed (severity, consensus) -> priority lookup.
// DISPUTED and FALSE_POSITIVE groups never receive a bucket; they route to
// the disputes and exclusion sections instead.
var priorityMatrix = map[model.Severity]map[model.Consensus]model.Priority{
	model.SeverityCritical: {
		model.ConsensusConfirmed:   model.PriorityCritical,
		model.ConsensusLikely:      model.PriorityCritical,
		model.ConsensusInvestigate: model.PriorityHigh,
	},
	model.SeverityHigh: {
		model.ConsensusConfirmed:   model.PriorityCritical,
		model.ConsensusLikely:      model.PriorityHigh,
		model.ConsensusInvestigate: model.PriorityMedium,
	},
	model.SeverityMedium: {
		model.ConsensusConfirmed:   model.PriorityHigh,
		model.ConsensusLikely:      model.PriorityMedium,
		model.ConsensusInvestigate: model.PriorityLow,
	},
	model.SeverityLow: {
		model.ConsensusConfirmed:   model.PriorityMedium,
		model.ConsensusLikely:      model.PriorityLow,
		model.ConsensusInvestigate: model.PriorityInfo,
	},
}

// Rank resolves the priority bucket for a (severity, consensus) pair. The
// second return is false outside the matrix domain.
func Rank(sev model.Severity, c model.Consensus) (model.Priority, bool) {
	row, ok := priorityMatrix[sev]
	if !ok {
		return model.PriorityNone, false
	}
	p, ok := row[c]
	return p, ok
}

// rankGroups assigns buckets to every voted, non-excluded group.
func rankGroups(groups []*model.FindingGroup) {
	for _, g := range groups {
		if g.Excluded || g.Consensus == model.ConsensusDisputed || g.Consensus == model.ConsensusFalsePositive {
			g.Priority = model.PriorityNone
			continue
		}
		if p, ok := Rank(g.MaxSeverity(), g.Consensus); ok {
			g.Priority = p
		}
	}
}
