package rule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/scholar/pkg/applicant"
	"github.com/macropower/scholar/pkg/rule"
)

func mustGet(t *testing.T, kind rule.Kind) *rule.Rule {
	t.Helper()

	r, err := rule.Get(kind)
	require.NoError(t, err)

	return r
}

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		checks  []rule.Check
		wantErr error
		errMsg  string
	}{
		{
			name: "valid rule",
			checks: []rule.Check{
				{Condition: `awards >= 2`, Pass: "many awards", Fail: "few awards"},
			},
		},
		{
			name:    "no checks",
			wantErr: rule.ErrNoChecks,
		},
		{
			name: "invalid CEL expression",
			checks: []rule.Check{
				{Condition: `gpa.invalidFunction()`},
			},
			errMsg: "gpa.invalidFunction()",
		},
		{
			name: "non-bool condition",
			checks: []rule.Check{
				{Condition: `awards + 1`},
			},
			errMsg: "awards + 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r, err := rule.New(rule.CommunityLeader, "test", tt.checks...)

			switch {
			case tt.wantErr != nil:
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, r)

			case tt.errMsg != "":
				require.Error(t, err)
				assert.Nil(t, r)
				assert.Contains(t, err.Error(), tt.errMsg)

			default:
				require.NoError(t, err)
				require.NotNil(t, r)
				assert.Equal(t, "Community Leader", r.Name)
				assert.Len(t, r.Checks, len(tt.checks))
			}
		})
	}
}

func TestMustNew(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		rule.MustNew(rule.FinancialNeed, "broken", rule.Check{Condition: "path.invalidFunction()"})
	})
}

func TestRule_Evaluate_CustomChecks(t *testing.T) {
	t.Parallel()

	r := rule.MustNew(rule.CommunityLeader, "test",
		rule.Check{Condition: `awards >= 2`, Pass: "p1", Fail: "f1"},
		rule.Check{Condition: `name.startsWith("A")`, Pass: "p2", Fail: "f2"},
	)

	ok, reasons := r.Evaluate(applicant.New("Bob", 3.0, 0, nil, 5))
	assert.False(t, ok)
	assert.Equal(t, []string{"p1", "f2"}, reasons)

	ok, reasons = r.Evaluate(applicant.New("Ann", 3.0, 0, nil, 2))
	assert.True(t, ok)
	assert.Equal(t, []string{"p1", "p2"}, reasons)
}

func TestCatalog(t *testing.T) {
	t.Parallel()

	rs := rule.Catalog()
	require.Len(t, rs, 3)

	names := make([]string, 0, len(rs))
	for _, r := range rs {
		names = append(names, r.Name)
	}

	assert.Equal(t, []string{"Academic Excellence", "Community Leader", "Financial Need"}, names)

	// The returned slice is a copy.
	rs[0] = nil
	assert.NotNil(t, rule.Catalog()[0])
}

func TestSelect(t *testing.T) {
	t.Parallel()

	rs, err := rule.Select(rule.FinancialNeed, rule.AcademicExcellence)
	require.NoError(t, err)
	require.Len(t, rs, 2)
	assert.Equal(t, rule.AcademicExcellence, rs[0].Kind)
	assert.Equal(t, rule.FinancialNeed, rs[1].Kind)

	all, err := rule.Select()
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = rule.Select(rule.Kind(42))
	require.ErrorIs(t, err, rule.ErrUnknownKind)

	_, err = rule.Get(rule.Kind(42))
	require.ErrorIs(t, err, rule.ErrUnknownKind)
}

func TestAcademicExcellence(t *testing.T) {
	t.Parallel()

	r := mustGet(t, rule.AcademicExcellence)

	tcs := map[string]struct {
		reason string
		gpa    float64
		want   bool
	}{
		"just below": {gpa: 3.79, want: false, reason: "GPA too low for academic excellence"},
		"threshold":  {gpa: 3.8, want: true, reason: "GPA meets academic excellence threshold (>= 3.8)"},
		"perfect":    {gpa: 4.0, want: true, reason: "GPA meets academic excellence threshold (>= 3.8)"},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ok, reasons := r.Evaluate(applicant.New("A", tc.gpa, 0, nil, 0))
			assert.Equal(t, tc.want, ok)
			assert.Equal(t, []string{tc.reason}, reasons)
		})
	}
}

func TestCommunityLeader(t *testing.T) {
	t.Parallel()

	r := mustGet(t, rule.CommunityLeader)

	tcs := map[string]struct {
		activities []string
		want       []string
		awards     int
		eligible   bool
	}{
		"volunteer without awards": {
			activities: []string{"volunteer"},
			awards:     0,
			want:       []string{"Has leadership-related extracurriculars", "No awards"},
		},
		"student council with award": {
			activities: []string{"Student Council"},
			awards:     1,
			eligible:   true,
			want:       []string{"Has leadership-related extracurriculars", "Has at least 1 award"},
		},
		"awards without leadership": {
			activities: []string{"Basketball", "volunteering"},
			awards:     3,
			want:       []string{"No leadership extracurriculars found", "Has at least 1 award"},
		},
		"neither": {
			want: []string{"No leadership extracurriculars found", "No awards"},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ok, reasons := r.Evaluate(applicant.New("A", 3.0, 0, tc.activities, tc.awards))
			assert.Equal(t, tc.eligible, ok)
			assert.Equal(t, tc.want, reasons)
		})
	}
}

func TestFinancialNeed(t *testing.T) {
	t.Parallel()

	r := mustGet(t, rule.FinancialNeed)

	tcs := map[string]struct {
		want     []string
		income   float64
		gpa      float64
		eligible bool
	}{
		"low income and low gpa": {
			income: 19999,
			gpa:    2.9,
			want:   []string{"Income below $20,000 threshold", "GPA below minimum requirement"},
		},
		"low income and minimum gpa": {
			income:   19999,
			gpa:      3.0,
			eligible: true,
			want:     []string{"Income below $20,000 threshold", "GPA meets minimum requirement (>= 3.0)"},
		},
		"income at threshold": {
			income: 20000,
			gpa:    3.5,
			want:   []string{"Income exceeds $20,000 threshold", "GPA meets minimum requirement (>= 3.0)"},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			ok, reasons := r.Evaluate(applicant.New("A", tc.gpa, tc.income, nil, 0))
			assert.Equal(t, tc.eligible, ok)
			assert.Equal(t, tc.want, reasons)
		})
	}
}

func TestRule_Evaluate_Idempotent(t *testing.T) {
	t.Parallel()

	for _, a := range applicant.Sample() {
		for _, r := range rule.Catalog() {
			ok1, reasons1 := r.Evaluate(a)
			ok2, reasons2 := r.Evaluate(a)

			assert.Equal(t, ok1, ok2, "%s/%s", a.Name(), r.Name)
			assert.Equal(t, reasons1, reasons2, "%s/%s", a.Name(), r.Name)
		}
	}
}
