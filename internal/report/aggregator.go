// Package report groups findings into per-category reports and renders
// them for delivery.
package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/genome-annotator/internal/domain"
)

// CategoryReport collects everything resolved for one analysis category.
// Findings keep the definition order they were produced in.
type CategoryReport struct {
	Category  string                    `json:"category"`
	Findings  []domain.Finding          `json:"findings"`
	Counts    map[domain.Severity]int   `json:"counts"`
	Compounds []domain.CompoundResult   `json:"compounds,omitempty"`
	Scores    []domain.TraitScoreResult `json:"scores,omitempty"`
}

// Add appends a finding and updates the severity tally.
func (r *CategoryReport) Add(findings ...domain.Finding) {
	for _, f := range findings {
		r.Findings = append(r.Findings, f)
		r.Counts[f.Severity]++
	}
}

// Covered returns how many findings carried a usable call.
func (r *CategoryReport) Covered() int {
	n := 0
	for _, f := range r.Findings {
		if f.Covered() {
			n++
		}
	}
	return n
}

// Report is one complete annotation run over one genome file.
type Report struct {
	RunID       string           `json:"run_id"`
	GeneratedAt time.Time        `json:"generated_at"`
	Source      string           `json:"source"`
	Markers     int              `json:"markers"`
	Malformed   int              `json:"malformed_rows"`
	Duplicates  int              `json:"duplicate_rows"`
	Categories  []CategoryReport `json:"categories"`
}

// Aggregator assembles category reports in the order categories are
// opened, independent of finding severity.
type Aggregator struct {
	report Report
	index  map[string]int
	log    *logrus.Logger
}

// NewAggregator starts a report for one source file.
func NewAggregator(source string, logger *logrus.Logger) *Aggregator {
	return &Aggregator{
		report: Report{
			RunID:       uuid.NewString(),
			GeneratedAt: time.Now(),
			Source:      source,
		},
		index: make(map[string]int),
		log:   logger,
	}
}

// SetSourceStats records loader statistics on the report.
func (a *Aggregator) SetSourceStats(markers, malformed, duplicates int) {
	a.report.Markers = markers
	a.report.Malformed = malformed
	a.report.Duplicates = duplicates
}

func (a *Aggregator) category(name string) *CategoryReport {
	if i, ok := a.index[name]; ok {
		return &a.report.Categories[i]
	}
	a.index[name] = len(a.report.Categories)
	a.report.Categories = append(a.report.Categories, CategoryReport{
		Category: name,
		Counts:   make(map[domain.Severity]int),
	})
	return &a.report.Categories[len(a.report.Categories)-1]
}

// AddFindings appends findings to a category, creating the category
// section on first use.
func (a *Aggregator) AddFindings(category string, findings ...domain.Finding) {
	a.category(category).Add(findings...)
}

// AddCompound appends a compound result to its category.
func (a *Aggregator) AddCompound(result domain.CompoundResult) {
	r := a.category(result.Category)
	r.Compounds = append(r.Compounds, result)
}

// AddScore appends a trait score to its category.
func (a *Aggregator) AddScore(result domain.TraitScoreResult) {
	r := a.category(result.Category)
	r.Scores = append(r.Scores, result)
}

// Build finalizes and returns the report.
func (a *Aggregator) Build() Report {
	total, covered := 0, 0
	for _, c := range a.report.Categories {
		total += len(c.Findings)
		covered += c.Covered()
	}

	a.log.WithFields(logrus.Fields{
		"run_id":     a.report.RunID,
		"categories": len(a.report.Categories),
		"findings":   total,
		"covered":    covered,
	}).Info("Report assembled")

	return a.report
}

// FindingsBySeverity returns the report's findings carrying the given
// severity, in category then definition order.
func (r Report) FindingsBySeverity(severity domain.Severity) []domain.Finding {
	var out []domain.Finding
	for _, c := range r.Categories {
		for _, f := range c.Findings {
			if f.Severity == severity {
				out = append(out, f)
			}
		}
	}
	return out
}

// TotalCounts sums severity tallies across categories.
func (r Report) TotalCounts() map[domain.Severity]int {
	totals := make(map[domain.Severity]int)
	for _, c := range r.Categories {
		for severity, n := range c.Counts {
			totals[severity] += n
		}
	}
	return totals
}
