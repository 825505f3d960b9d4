package rule

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/cel-go/cel"

	"github.com/macropower/scholar/pkg/applicant"
	"github.com/macropower/scholar/pkg/expr"
	"github.com/macropower/scholar/pkg/log"
)

var (
	ErrNoChecks = errors.New("rule has no checks")

	env = expr.MustNewEnvironment()
)

// Check is one sub-condition of a [Rule].
//
// Condition is a CEL expression that must return a boolean value, e.g.:
//   - gpa >= 3.8
//   - extracurriculars.hasExtracurricular("volunteer") || awards >= 2
//   - income < 20000.0
type Check struct {
	program cel.Program

	// Condition is the CEL expression evaluated against the applicant.
	Condition string `json:"condition"`
	// Pass is the reason reported when Condition holds.
	Pass string `json:"pass"`
	// Fail is the reason reported when Condition does not hold.
	Fail string `json:"fail"`
}

// Rule is a named scholarship eligibility predicate.
type Rule struct {
	Name    string   `json:"name"`
	Summary string   `json:"summary"`
	Checks  []*Check `json:"checks"`
	Kind    Kind     `json:"-"`
}

// New creates a rule and compiles every check condition.
func New(kind Kind, summary string, checks ...Check) (*Rule, error) {
	if len(checks) == 0 {
		return nil, fmt.Errorf("rule %q: %w", kind, ErrNoChecks)
	}

	r := &Rule{
		Kind:    kind,
		Name:    kind.String(),
		Summary: summary,
		Checks:  make([]*Check, 0, len(checks)),
	}

	for _, c := range checks {
		program, err := env.CompileBool(c.Condition)
		if err != nil {
			return nil, fmt.Errorf("rule %q: check %q: %w", kind, c.Condition, err)
		}

		c.program = program
		r.Checks = append(r.Checks, &c)
	}

	return r, nil
}

// MustNew creates a new rule and panics if there's an error.
func MustNew(kind Kind, summary string, checks ...Check) *Rule {
	r, err := New(kind, summary, checks...)
	if err != nil {
		panic(err)
	}

	return r
}

// Evaluate applies the rule to a. It returns whether a is eligible, and one
// reason per check, in check order.
func (r *Rule) Evaluate(a *applicant.Applicant) (bool, []string) {
	return r.EvaluateContext(context.Background(), a)
}

// EvaluateContext is [Rule.Evaluate] with a context for logging.
func (r *Rule) EvaluateContext(ctx context.Context, a *applicant.Applicant) (bool, []string) {
	vars := expr.Activation(a)
	eligible := true
	reasons := make([]string, 0, len(r.Checks))

	for _, c := range r.Checks {
		ok, err := expr.EvalBool(c.program, vars)
		if err != nil {
			// A failed evaluation counts as a check that does not hold.
			log.WithContext(ctx).Debug("check evaluation failed",
				slog.String("rule", r.Name),
				slog.String("condition", c.Condition),
				slog.Any("err", err),
			)
		}

		if ok {
			reasons = append(reasons, c.Pass)
		} else {
			reasons = append(reasons, c.Fail)
			eligible = false
		}
	}

	return eligible, reasons
}

func (r *Rule) String() string {
	return fmt.Sprintf("%s: %s", r.Kind.Slug(), r.Summary)
}
