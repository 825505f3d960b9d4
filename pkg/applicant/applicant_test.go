package applicant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/scholar/pkg/applicant"
)

func TestNew(t *testing.T) {
	t.Parallel()

	a := applicant.New("Alice", 3.9, 18000, []string{"  Volunteer ", "Drama Club", "volunteer"}, 2)

	assert.Equal(t, "Alice", a.Name())
	assert.InDelta(t, 3.9, a.GPA(), 0)
	assert.InDelta(t, 18000.0, a.Income(), 0)
	assert.Equal(t, 2, a.Awards())
	assert.Equal(t, []string{"volunteer", "drama club", "volunteer"}, a.Extracurriculars())
}

func TestNew_AcceptsOutOfRangeValues(t *testing.T) {
	t.Parallel()

	a := applicant.New("", 7.5, -100, nil, -1)

	assert.InDelta(t, 7.5, a.GPA(), 0)
	assert.InDelta(t, -100.0, a.Income(), 0)
	assert.Equal(t, -1, a.Awards())
	assert.Empty(t, a.Extracurriculars())
}

func TestApplicant_Immutable(t *testing.T) {
	t.Parallel()

	input := []string{"Volunteer"}
	a := applicant.New("Alice", 3.9, 18000, input, 2)

	input[0] = "Basketball"
	got := a.Extracurriculars()
	got[0] = "chess"

	assert.Equal(t, []string{"volunteer"}, a.Extracurriculars())
	assert.True(t, a.HasExtracurricular("volunteer"))
}

func TestApplicant_HasExtracurricular(t *testing.T) {
	t.Parallel()

	a := applicant.New("Charlie", 3.2, 15000, []string{" Student Council ", "Drama Club"}, 1)

	tcs := map[string]struct {
		keyword string
		want    bool
	}{
		"exact match":                {keyword: "student council", want: true},
		"case insensitive":           {keyword: "STUDENT Council", want: true},
		"second entry":               {keyword: "drama club", want: true},
		"substring does not match":   {keyword: "council", want: false},
		"superstring does not match": {keyword: "student council president", want: false},
		"keyword is not trimmed":     {keyword: " student council", want: false},
		"missing activity":           {keyword: "volunteer", want: false},
		"empty keyword":              {keyword: "", want: false},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, a.HasExtracurricular(tc.keyword))
		})
	}
}

func TestSample(t *testing.T) {
	t.Parallel()

	as := applicant.Sample()
	require.Len(t, as, 3)

	names := make([]string, 0, len(as))
	for _, a := range as {
		names = append(names, a.Name())
	}

	assert.Equal(t, []string{"Alice", "Bob", "Charlie"}, names)
	assert.Equal(t, []string{"volunteer", "drama club"}, as[0].Extracurriculars())
	assert.True(t, as[2].HasExtracurricular("Student Council"))
}

func TestRecord_RoundTrip(t *testing.T) {
	t.Parallel()

	a := applicant.New("Bob", 3.5, 25000, []string{"Basketball"}, 0)
	b := a.Record().Applicant()

	assert.Equal(t, a, b)
}
