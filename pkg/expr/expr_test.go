package expr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/macropower/scholar/pkg/applicant"
	"github.com/macropower/scholar/pkg/expr"
)

func TestHasExtracurricular(t *testing.T) {
	t.Parallel()

	env := expr.MustNewEnvironment()
	a := applicant.New("Charlie", 3.2, 15000, []string{"Student Council", " Drama Club "}, 1)

	tests := []struct {
		name       string
		expression string
		expected   bool
	}{
		{
			name:       "exact match",
			expression: `extracurriculars.hasExtracurricular("student council")`,
			expected:   true,
		},
		{
			name:       "keyword case is ignored",
			expression: `extracurriculars.hasExtracurricular("Drama Club")`,
			expected:   true,
		},
		{
			name:       "substring does not match",
			expression: `extracurriculars.hasExtracurricular("council")`,
			expected:   false,
		},
		{
			name:       "keyword whitespace is kept",
			expression: `extracurriculars.hasExtracurricular("drama club ")`,
			expected:   false,
		},
		{
			name:       "combined with logical or",
			expression: `extracurriculars.hasExtracurricular("volunteer") || extracurriculars.hasExtracurricular("student council")`,
			expected:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			program, err := env.CompileBool(tt.expression)
			require.NoError(t, err)

			got, err := expr.EvalBool(program, expr.Activation(a))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestActivationVariables(t *testing.T) {
	t.Parallel()

	env := expr.MustNewEnvironment()
	a := applicant.New("Alice", 3.9, 18000, []string{"Volunteer"}, 2)

	tests := map[string]struct {
		expression string
		expected   bool
	}{
		"gpa threshold":     {expression: `gpa >= 3.8`, expected: true},
		"income threshold":  {expression: `income < 20000.0`, expected: true},
		"awards count":      {expression: `awards >= 1`, expected: true},
		"name":              {expression: `name == "Alice"`, expected: true},
		"list size":         {expression: `size(extracurriculars) == 1`, expected: true},
		"strings extension": {expression: `name.lowerAscii() == "alice"`, expected: true},
		"math extension":    {expression: `math.greatest(awards, 5) == 5`, expected: true},
		"failing condition": {expression: `gpa < 3.0`, expected: false},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			program, err := env.CompileBool(tt.expression)
			require.NoError(t, err)

			got, err := expr.EvalBool(program, expr.Activation(a))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestEnvironment_CompileErrors(t *testing.T) {
	t.Parallel()

	env := expr.MustNewEnvironment()

	tests := map[string]struct {
		expression string
		errIs      error
		errMsg     string
	}{
		"unknown variable": {
			expression: `major == "math"`,
			errMsg:     "compile expression",
		},
		"unknown function": {
			expression: `gpa.invalidFunction()`,
			errMsg:     "compile expression",
		},
		"empty expression": {
			expression: ``,
			errMsg:     "compile expression",
		},
		"non-bool result": {
			expression: `gpa * 2.0`,
			errIs:      expr.ErrNotBool,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			program, err := env.CompileBool(tt.expression)
			require.Error(t, err)
			assert.Nil(t, program)

			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
			} else {
				assert.Contains(t, err.Error(), tt.errMsg)
			}
		})
	}
}

func TestEnvironment_Compile(t *testing.T) {
	t.Parallel()

	env := expr.MustNewEnvironment()

	program, err := env.Compile(`gpa * 2.0`)
	require.NoError(t, err)

	_, err = expr.EvalBool(program, expr.Activation(applicant.New("Bob", 3.5, 25000, nil, 0)))
	require.ErrorIs(t, err, expr.ErrNotBool)
}

func TestEvalBool_MissingVariable(t *testing.T) {
	t.Parallel()

	env := expr.MustNewEnvironment()

	program, err := env.CompileBool(`awards >= 1`)
	require.NoError(t, err)

	_, err = expr.EvalBool(program, map[string]any{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "evaluate expression")
}
