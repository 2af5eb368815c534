// Package report assembles annotated finding groups into the final report
// tree and renders it. The tree is the machine-readable contract; Markdown
// and SARIF renderings derive from it.
package report

import (
	"sort"

	"github.com/xab-mack/quorum/internal/model"
)

const (
	cellFlagged      = "flagged"
	cellContradicted = "contradicted"
)

type Report struct {
	Context   model.ContextType   `json:"context"`
	Summary   Summary             `json:"summary"`
	Sections  []Section           `json:"sections"`
	Disputes  []Group             `json:"disputes,omitempty"`
	Excluded  []Exclusion         `json:"excluded,omitempty"`
	Agreement Matrix              `json:"agreement"`
	Errors    []model.RecordError `json:"errors,omitempty"`
}

type Summary struct {
	TotalFindings int                    `json:"totalFindings"`
	Groups        int                    `json:"groups"`
	ByPriority    map[model.Priority]int `json:"byPriority"`
	Disputed      int                    `json:"disputed"`
	Excluded      int                    `json:"excluded"`
	Malformed     int                    `json:"malformed"`
}

// Group is one rendered finding group: every contributing source cited once.
type Group struct {
	Key       string          `json:"key"`
	Artifact  string          `json:"artifact,omitempty"`
	Line      int             `json:"line,omitempty"`
	Title     string          `json:"title"`
	Severity  model.Severity  `json:"severity"`
	Consensus model.Consensus `json:"consensus"`
	Priority  model.Priority  `json:"priority,omitempty"`
	Sources   []string        `json:"sources"`
	Members   []model.Finding `json:"members"`
}

type Section struct {
	Priority model.Priority `json:"priority"`
	Groups   []Group        `json:"groups"`
}

type Exclusion struct {
	Key     string   `json:"key"`
	Title   string   `json:"title"`
	Sources []string `json:"sources"`
	Reason  string   `json:"reason"`
}

// Matrix is the agreement matrix: one row per group, one column per source,
// each cell flagged, contradicted, or empty.
type Matrix struct {
	Sources []string    `json:"sources"`
	Rows    []MatrixRow `json:"rows"`
}

type MatrixRow struct {
	Key   string   `json:"key"`
	Cells []string `json:"cells"`
}

// Assemble builds the report tree from the fully annotated group set.
// Ordering is fixed for byte-stable output: buckets in priority order, groups
// by severity descending then key ascending, matrix rows and exclusion table
// by key.
func Assemble(ctxType model.ContextType, groups []*model.FindingGroup, errs []model.RecordError) *Report {
	r := &Report{
		Context: ctxType,
		Summary: Summary{
			ByPriority: map[model.Priority]int{},
			Malformed:  len(errs),
			Groups:     len(groups),
		},
		Errors: errs,
	}

	buckets := map[model.Priority][]Group{}
	for _, g := range groups {
		r.Summary.TotalFindings += len(g.Members)
		view := groupView(g)
		switch {
		case g.Excluded:
			r.Summary.Excluded++
			r.Excluded = append(r.Excluded, Exclusion{
				Key:     g.Key,
				Title:   view.Title,
				Sources: view.Sources,
				Reason:  g.ExclusionReason,
			})
		case g.Consensus == model.ConsensusDisputed:
			r.Summary.Disputed++
			r.Disputes = append(r.Disputes, view)
		default:
			r.Summary.ByPriority[g.Priority]++
			buckets[g.Priority] = append(buckets[g.Priority], view)
		}
	}

	for _, p := range model.Buckets() {
		gs := buckets[p]
		if len(gs) == 0 {
			continue
		}
		sortGroups(gs)
		r.Sections = append(r.Sections, Section{Priority: p, Groups: gs})
	}
	sortGroups(r.Disputes)
	sort.Slice(r.Excluded, func(i, j int) bool { return r.Excluded[i].Key < r.Excluded[j].Key })
	r.Agreement = buildMatrix(groups)
	return r
}

func groupView(g *model.FindingGroup) Group {
	title := ""
	if len(g.Members) > 0 {
		title = g.Members[0].Title
	}
	return Group{
		Key:       g.Key,
		Artifact:  g.Artifact,
		Line:      g.Line,
		Title:     title,
		Severity:  g.MaxSeverity(),
		Consensus: g.Consensus,
		Priority:  g.Priority,
		Sources:   g.Sources(),
		Members:   g.Members,
	}
}

func sortGroups(gs []Group) {
	sort.Slice(gs, func(i, j int) bool {
		if gs[i].Severity != gs[j].Severity {
			return model.SeverityGTE(gs[i].Severity, gs[j].Severity)
		}
		return gs[i].Key < gs[j].Key
	})
}

func buildMatrix(groups []*model.FindingGroup) Matrix {
	sourceSet := map[string]bool{}
	for _, g := range groups {
		for _, s := range g.Sources() {
			sourceSet[s] = true
		}
	}
	sources := make([]string, 0, len(sourceSet))
	for s := range sourceSet {
		sources = append(sources, s)
	}
	sort.Strings(sources)

	col := make(map[string]int, len(sources))
	for i, s := range sources {
		col[s] = i
	}

	rows := make([]MatrixRow, 0, len(groups))
	for _, g := range groups {
		row := MatrixRow{Key: g.Key, Cells: make([]string, len(sources))}
		cell := cellFlagged
		if g.Consensus == model.ConsensusDisputed {
			cell = cellContradicted
		}
		for _, s := range g.Sources() {
			row.Cells[col[s]] = cell
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Key < rows[j].Key })
	return Matrix{Sources: sources, Rows: rows}
}
