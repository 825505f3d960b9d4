package rule

import (
	"fmt"
	"slices"
	"sync"
)

// Thresholds used by the catalog.
const (
	AcademicExcellenceMinGPA = 3.8
	FinancialNeedMaxIncome   = 20000.0
	FinancialNeedMinGPA      = 3.0
	CommunityLeaderMinAwards = 1
)

var catalog = sync.OnceValue(func() []*Rule {
	return []*Rule{
		MustNew(AcademicExcellence,
			"Rewards a GPA at or above the excellence threshold.",
			Check{
				Condition: fmt.Sprintf("gpa >= %.1f", AcademicExcellenceMinGPA),
				Pass:      fmt.Sprintf("GPA meets academic excellence threshold (>= %.1f)", AcademicExcellenceMinGPA),
				Fail:      "GPA too low for academic excellence",
			},
		),
		MustNew(CommunityLeader,
			"Rewards leadership activities backed by at least one award.",
			Check{
				Condition: `extracurriculars.hasExtracurricular("volunteer") || ` +
					`extracurriculars.hasExtracurricular("student council")`,
				Pass: "Has leadership-related extracurriculars",
				Fail: "No leadership extracurriculars found",
			},
			Check{
				Condition: fmt.Sprintf("awards >= %d", CommunityLeaderMinAwards),
				Pass:      fmt.Sprintf("Has at least %d award", CommunityLeaderMinAwards),
				Fail:      "No awards",
			},
		),
		MustNew(FinancialNeed,
			"Supports low-income applicants in good academic standing.",
			Check{
				Condition: fmt.Sprintf("income < %.1f", FinancialNeedMaxIncome),
				Pass:      "Income below $20,000 threshold",
				Fail:      "Income exceeds $20,000 threshold",
			},
			Check{
				Condition: fmt.Sprintf("gpa >= %.1f", FinancialNeedMinGPA),
				Pass:      fmt.Sprintf("GPA meets minimum requirement (>= %.1f)", FinancialNeedMinGPA),
				Fail:      "GPA below minimum requirement",
			},
		),
	}
})

// Catalog returns every rule, in catalog order. Rules are compiled on first
// use and shared; callers must not modify them.
func Catalog() []*Rule {
	return slices.Clone(catalog())
}

// Get returns the catalog rule for kind.
func Get(kind Kind) (*Rule, error) {
	for _, r := range catalog() {
		if r.Kind == kind {
			return r, nil
		}
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
}

// Select returns the catalog rules for kinds, in catalog order regardless of
// the order of kinds. An empty selection returns the whole catalog.
func Select(kinds ...Kind) ([]*Rule, error) {
	if len(kinds) == 0 {
		return Catalog(), nil
	}

	for _, k := range kinds {
		if k >= kindCount {
			return nil, fmt.Errorf("%w: %s", ErrUnknownKind, k)
		}
	}

	out := make([]*Rule, 0, len(kinds))
	for _, r := range catalog() {
		if slices.Contains(kinds, r.Kind) {
			out = append(out, r)
		}
	}

	return out, nil
}
