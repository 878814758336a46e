package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/genome-annotator/internal/domain"
)

// severityOrder fixes how tallies are listed in rendered output.
var severityOrder = []domain.Severity{
	domain.SeverityRisk,
	domain.SeverityModerate,
	domain.SeverityNormal,
	domain.SeverityInfo,
	domain.SeverityNotAvailable,
}

// RenderMarkdown writes the report as a Markdown document: one section
// per category in registration order, then a summary that surfaces risk
// and moderate findings.
func RenderMarkdown(w io.Writer, r Report) error {
	var b strings.Builder

	b.WriteString("# Genome Annotation Report\n\n")
	fmt.Fprintf(&b, "- Run: `%s`\n", r.RunID)
	fmt.Fprintf(&b, "- Generated: %s\n", r.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintf(&b, "- Source: `%s`\n", r.Source)
	fmt.Fprintf(&b, "- Markers indexed: %d", r.Markers)
	if r.Malformed > 0 || r.Duplicates > 0 {
		fmt.Fprintf(&b, " (%d malformed rows skipped, %d duplicates ignored)", r.Malformed, r.Duplicates)
	}
	b.WriteString("\n\n")
	b.WriteString("This report is informational and is not medical advice.\n")

	for _, c := range r.Categories {
		renderCategory(&b, c)
	}

	renderSummary(&b, r)

	_, err := io.WriteString(w, b.String())
	return err
}

func renderCategory(b *strings.Builder, c CategoryReport) {
	fmt.Fprintf(b, "\n## %s\n\n", categoryTitle(c.Category))

	if len(c.Findings) > 0 {
		b.WriteString("| Marker | Gene | Genotype | Result | Interpretation |\n")
		b.WriteString("|---|---|---|---|---|\n")
		for _, f := range c.Findings {
			genotype := f.Genotype
			if genotype == "" {
				genotype = domain.NoCall
			}
			fmt.Fprintf(b, "| %s | %s | %s | %s | %s |\n",
				f.RSID, f.Gene, genotype, f.Severity, f.Description)
		}
	}

	for _, compound := range c.Compounds {
		fmt.Fprintf(b, "\n**%s**", compound.Name)
		if compound.Label != "" {
			fmt.Fprintf(b, " (%s)", compound.Label)
		}
		fmt.Fprintf(b, ": %s. %s\n", compound.Severity, compound.Description)
	}

	for _, score := range c.Scores {
		fmt.Fprintf(b, "\n**%s**: %s", score.Name, score.Level)
		if score.MarkersFound > 0 {
			fmt.Fprintf(b, " (%.0f%%, %d markers)", score.Percent, score.MarkersFound)
		}
		fmt.Fprintf(b, ". %s\n", score.Description)
	}

	b.WriteString("\n")
	var parts []string
	for _, severity := range severityOrder {
		if n := c.Counts[severity]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s: %d", severity, n))
		}
	}
	fmt.Fprintf(b, "_%s_\n", strings.Join(parts, ", "))
}

func renderSummary(b *strings.Builder, r Report) {
	b.WriteString("\n## Summary\n\n")

	risk := r.FindingsBySeverity(domain.SeverityRisk)
	moderate := r.FindingsBySeverity(domain.SeverityModerate)

	if len(risk) == 0 && len(moderate) == 0 {
		b.WriteString("No elevated findings.\n")
	}

	if len(risk) > 0 {
		b.WriteString("### Elevated findings\n\n")
		for _, f := range risk {
			fmt.Fprintf(b, "- **%s** (%s, %s): %s\n", f.RSID, f.Gene, categoryTitle(f.Category), f.Description)
		}
		b.WriteString("\n")
	}

	if len(moderate) > 0 {
		b.WriteString("### Moderate findings\n\n")
		for _, f := range moderate {
			fmt.Fprintf(b, "- **%s** (%s, %s): %s\n", f.RSID, f.Gene, categoryTitle(f.Category), f.Description)
		}
		b.WriteString("\n")
	}

	b.WriteString("### Statistics\n\n")
	totals := r.TotalCounts()
	for _, severity := range severityOrder {
		fmt.Fprintf(b, "- %s: %d\n", severity, totals[severity])
	}
}

// categoryTitle turns a category key like "carrier_status" into a
// heading like "Carrier Status".
func categoryTitle(category string) string {
	words := strings.FieldsFunc(category, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
