package report

import (
	"fmt"
	"strings"

	"github.com/xab-mack/quorum/internal/model"
)

// ToMarkdown renders the report tree as Markdown. Purely derived from the
// tree, so identical input yields identical bytes.
func ToMarkdown(r *Report) string {
	var b strings.Builder
	b.WriteString("# Consensus Report\n\n")
	fmt.Fprintf(&b, "Project context: `%s`\n\n", r.Context)

	if r.Summary.TotalFindings == 0 {
		b.WriteString("No findings.\n")
		writeErrors(&b, r)
		return b.String()
	}

	b.WriteString("## Summary\n\n")
	b.WriteString("| Priority | Groups |\n|---|---|\n")
	for _, p := range model.Buckets() {
		fmt.Fprintf(&b, "| %s | %d |\n", p, r.Summary.ByPriority[p])
	}
	fmt.Fprintf(&b, "| DISPUTED | %d |\n", r.Summary.Disputed)
	fmt.Fprintf(&b, "| EXCLUDED | %d |\n", r.Summary.Excluded)
	fmt.Fprintf(&b, "\n%d findings in %d groups, %d malformed records.\n\n",
		r.Summary.TotalFindings, r.Summary.Groups, r.Summary.Malformed)

	for _, sec := range r.Sections {
		fmt.Fprintf(&b, "## %s (%d)\n\n", sec.Priority, len(sec.Groups))
		for _, g := range sec.Groups {
			writeGroup(&b, g)
		}
	}

	if len(r.Disputes) > 0 {
		b.WriteString("## Disputes\n\n")
		b.WriteString("Contradicting analyzers; needs external adjudication before ranking.\n\n")
		for _, g := range r.Disputes {
			writeGroup(&b, g)
		}
	}

	if len(r.Excluded) > 0 {
		b.WriteString("## False Positives (Excluded)\n\n")
		b.WriteString("| Group | Title | Sources | Reason |\n|---|---|---|---|\n")
		for _, e := range r.Excluded {
			fmt.Fprintf(&b, "| `%s` | %s | %s | %s |\n",
				e.Key, e.Title, strings.Join(e.Sources, ", "), e.Reason)
		}
		b.WriteString("\n")
	}

	if len(r.Agreement.Rows) > 0 {
		b.WriteString("## Agreement Matrix\n\n")
		fmt.Fprintf(&b, "| Group | %s |\n", strings.Join(r.Agreement.Sources, " | "))
		b.WriteString("|---|" + strings.Repeat("---|", len(r.Agreement.Sources)) + "\n")
		for _, row := range r.Agreement.Rows {
			cells := make([]string, len(row.Cells))
			for i, c := range row.Cells {
				if c == "" {
					c = "-"
				}
				cells[i] = c
			}
			fmt.Fprintf(&b, "| `%s` | %s |\n", row.Key, strings.Join(cells, " | "))
		}
		b.WriteString("\n")
	}

	writeErrors(&b, r)
	return b.String()
}

func writeGroup(b *strings.Builder, g Group) {
	loc := g.Artifact
	if g.Line > 0 {
		loc = fmt.Sprintf("%s:%d", g.Artifact, g.Line)
	}
	if loc == "" {
		loc = g.Key
	}
	fmt.Fprintf(b, "### %s — %s\n\n", loc, g.Title)
	fmt.Fprintf(b, "- Severity: %s\n- Consensus: %s\n", g.Severity, g.Consensus)
	if g.Priority != model.PriorityNone {
		fmt.Fprintf(b, "- Priority: %s\n", g.Priority)
	}
	fmt.Fprintf(b, "- Sources: %s\n", strings.Join(g.Sources, ", "))
	for _, m := range g.Members {
		if m.Rationale != "" {
			fmt.Fprintf(b, "- [%s] %s\n", m.Source, m.Rationale)
		}
		if m.Remediation != "" {
			fmt.Fprintf(b, "  - Remediation: %s\n", m.Remediation)
		}
	}
	b.WriteString("\n")
}

func writeErrors(b *strings.Builder, r *Report) {
	if len(r.Errors) == 0 {
		return
	}
	b.WriteString("## Normalization Errors\n\n")
	for _, e := range r.Errors {
		fmt.Fprintf(b, "- %s (batch=%s source=%s id=%s)\n", e.Reason, e.Batch, e.Source, e.ID)
	}
	b.WriteString("\n")
}
