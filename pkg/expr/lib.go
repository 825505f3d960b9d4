package expr

import (
	"reflect"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"
	"github.com/google/cel-go/ext"

	"github.com/macropower/scholar/pkg/applicant"
)

const (
	VarName             = "name"
	VarGPA              = "gpa"
	VarIncome           = "income"
	VarAwards           = "awards"
	VarExtracurriculars = "extracurriculars"
)

var stringSliceType = reflect.TypeFor[[]string]()

type lib struct{}

func (lib) CompileOptions() []cel.EnvOption {
	return []cel.EnvOption{
		ext.Math(),
		ext.Strings(),
		ext.Lists(),

		cel.Variable(VarName, cel.StringType),
		cel.Variable(VarGPA, cel.DoubleType),
		cel.Variable(VarIncome, cel.DoubleType),
		cel.Variable(VarAwards, cel.IntType),
		cel.Variable(VarExtracurriculars, cel.ListType(cel.StringType)),

		// `hasExtracurricular` reports whether the lowercased keyword exactly
		// matches a normalized activity.
		// Example: extracurriculars.hasExtracurricular("student council").
		cel.Function("hasExtracurricular",
			cel.MemberOverload("list_string_has_extracurricular_string",
				[]*cel.Type{cel.ListType(cel.StringType), cel.StringType}, cel.BoolType,
				cel.BinaryBinding(func(list, keyword ref.Val) ref.Val {
					native, err := list.ConvertToNative(stringSliceType)
					if err != nil {
						return types.NewErr("hasExtracurricular: invalid list: %v", err)
					}

					activities, ok := native.([]string)
					if !ok {
						return types.NewErr("hasExtracurricular: invalid list value")
					}

					kw, ok := keyword.Value().(string)
					if !ok {
						return types.NewErr("hasExtracurricular: invalid keyword value")
					}

					return types.Bool(applicant.ContainsActivity(activities, kw))
				}),
			),
		),
	}
}

func (lib) ProgramOptions() []cel.ProgramOption {
	return []cel.ProgramOption{}
}

// Activation returns the variables for evaluating an expression against a.
func Activation(a *applicant.Applicant) map[string]any {
	return map[string]any{
		VarName:             a.Name(),
		VarGPA:              a.GPA(),
		VarIncome:           a.Income(),
		VarAwards:           a.Awards(),
		VarExtracurriculars: a.Extracurriculars(),
	}
}
