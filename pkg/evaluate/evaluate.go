// Package evaluate runs the scholarship catalog over a list of applicants.
package evaluate

import (
	"context"
	"log/slog"

	"github.com/macropower/scholar/pkg/applicant"
	"github.com/macropower/scholar/pkg/log"
	"github.com/macropower/scholar/pkg/rule"
)

// Result is the outcome of one rule for one applicant.
type Result struct {
	Scholarship string   `json:"scholarship"`
	Kind        string   `json:"kind"`
	Reasons     []string `json:"reasons"`
	Eligible    bool     `json:"eligible"`
}

// ApplicantReport holds every result for one applicant, in rule order.
type ApplicantReport struct {
	Name    string   `json:"applicant"`
	Results []Result `json:"results"`
}

// Report holds every applicant, in input order.
type Report struct {
	Applicants []ApplicantReport `json:"applicants"`
}

// Runner evaluates rules against applicants.
type Runner struct {
	applicants []*applicant.Applicant
	rules      []*rule.Rule
}

// NewRunner creates a [Runner]. Both slices are evaluated in the given order.
func NewRunner(applicants []*applicant.Applicant, rules []*rule.Rule) *Runner {
	return &Runner{
		applicants: applicants,
		rules:      rules,
	}
}

// Run evaluates each rule against each applicant, applicants in the outer
// loop.
func (r *Runner) Run(ctx context.Context) *Report {
	logger := log.WithContext(ctx)

	report := &Report{
		Applicants: make([]ApplicantReport, 0, len(r.applicants)),
	}

	for _, a := range r.applicants {
		ar := ApplicantReport{
			Name:    a.Name(),
			Results: make([]Result, 0, len(r.rules)),
		}

		for _, rl := range r.rules {
			eligible, reasons := rl.EvaluateContext(ctx, a)

			logger.Debug("evaluated scholarship",
				slog.String("applicant", a.Name()),
				slog.String("scholarship", rl.Name),
				slog.Bool("eligible", eligible),
			)

			ar.Results = append(ar.Results, Result{
				Scholarship: rl.Name,
				Kind:        rl.Kind.Slug(),
				Eligible:    eligible,
				Reasons:     reasons,
			})
		}

		report.Applicants = append(report.Applicants, ar)
	}

	logger.Debug("evaluation complete",
		slog.Int("applicants", len(r.applicants)),
		slog.Int("scholarships", len(r.rules)),
	)

	return report
}
