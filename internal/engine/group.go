package engine

import (
	"sort"
	"strconv"

	"github.com/xab-mack/quorum/internal/model"
	"github.com/xab-mack/quorum/internal/util"
)

// groupFindings partitions findings into location groups. Findings at the
// same artifact whose lines sit within the tolerance window merge via an
// interval-merge pass per artifact (sort once, O(n log n)); findings without
// a location group under a synthesized category+title key.
func groupFindings(findings []model.Finding, tolerance int) []*model.FindingGroup {
	if tolerance < 0 {
		tolerance = 0
	}

	var located []model.Finding
	bySubject := map[string]*model.FindingGroup{}
	var order []*model.FindingGroup

	for _, f := range findings {
		if f.Location.Artifact != "" {
			located = append(located, f)
			continue
		}
		key := "subject:" + util.Fingerprint(f.Category, f.Title)
		g, ok := bySubject[key]
		if !ok {
			g = &model.FindingGroup{Key: key}
			bySubject[key] = g
			order = append(order, g)
		}
		g.Members = append(g.Members, f)
	}

	// Stable sort keeps input order for equal (artifact, line), so member
	// insertion order stays reproducible.
	sort.SliceStable(located, func(i, j int) bool {
		a, b := located[i].Location, located[j].Location
		if a.Artifact != b.Artifact {
			return a.Artifact < b.Artifact
		}
		return a.Line < b.Line
	})

	var cur *model.FindingGroup
	prevArtifact := ""
	prevLine := 0
	for _, f := range located {
		loc := f.Location
		newRun := cur == nil ||
			loc.Artifact != prevArtifact ||
			(loc.Line == 0) != (prevLine == 0) ||
			(loc.Line > 0 && loc.Line-prevLine > tolerance)
		if newRun {
			key := loc.Artifact
			if loc.Line > 0 {
				key = loc.Artifact + ":" + strconv.Itoa(loc.Line)
			}
			cur = &model.FindingGroup{Key: key, Artifact: loc.Artifact, Line: loc.Line}
			order = append(order, cur)
		}
		cur.Members = append(cur.Members, f)
		prevArtifact = loc.Artifact
		prevLine = loc.Line
	}

	sort.SliceStable(order, func(i, j int) bool { return order[i].Key < order[j].Key })
	return order
}
