package applicant

import (
	"slices"
	"strings"
)

// Applicant holds the attributes a scholarship rule may inspect. The zero
// value is an applicant with no name and no activities.
type Applicant struct {
	name             string
	extracurriculars []string
	gpa              float64
	income           float64
	awards           int
}

// New creates an [Applicant]. Each extracurricular is trimmed and lowercased;
// order and duplicates are preserved.
func New(name string, gpa, income float64, extracurriculars []string, awards int) *Applicant {
	normalized := make([]string, 0, len(extracurriculars))
	for _, e := range extracurriculars {
		normalized = append(normalized, normalize(e))
	}

	return &Applicant{
		name:             name,
		gpa:              gpa,
		income:           income,
		extracurriculars: normalized,
		awards:           awards,
	}
}

func (a *Applicant) Name() string { return a.name }
func (a *Applicant) GPA() float64 { return a.gpa }
func (a *Applicant) Income() float64 { return a.income }
func (a *Applicant) Awards() int { return a.awards }

// Extracurriculars returns a copy of the normalized activity names.
func (a *Applicant) Extracurriculars() []string {
	return slices.Clone(a.extracurriculars)
}

// HasExtracurricular reports whether keyword, lowercased, exactly matches one
// of the normalized activities.
func (a *Applicant) HasExtracurricular(keyword string) bool {
	return ContainsActivity(a.extracurriculars, keyword)
}

// Record returns the serializable form of a.
func (a *Applicant) Record() Record {
	return Record{
		Name:             a.name,
		GPA:              a.gpa,
		Income:           a.income,
		Extracurriculars: a.Extracurriculars(),
		Awards:           a.awards,
	}
}

// ContainsActivity implements the matching used by
// [Applicant.HasExtracurricular] over an already normalized list. The keyword
// is lowercased but not trimmed.
func ContainsActivity(normalized []string, keyword string) bool {
	return slices.Contains(normalized, strings.ToLower(keyword))
}

func normalize(activity string) string {
	return strings.ToLower(strings.TrimSpace(activity))
}

// Sample returns the built-in applicants, in display order.
func Sample() []*Applicant {
	return []*Applicant{
		New("Alice", 3.9, 18000, []string{"Volunteer", "Drama Club"}, 2),
		New("Bob", 3.5, 25000, []string{"Basketball"}, 0),
		New("Charlie", 3.2, 15000, []string{"Student Council"}, 1),
	}
}
