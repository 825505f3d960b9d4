package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/macropower/scholar/pkg/applicant"
	"github.com/macropower/scholar/pkg/evaluate"
	"github.com/macropower/scholar/pkg/log"
	"github.com/macropower/scholar/pkg/report"
	"github.com/macropower/scholar/pkg/rule"
)

const (
	cmdName     = "scholar"
	cmdDesc     = `Evaluate applicants against the scholarship eligibility catalog.`
	cmdExamples = `  # Evaluate the built-in applicants:
  scholar

  # Evaluate applicants from a file:
  scholar --applicants ./applicants.yaml

  # Only evaluate some scholarships:
  scholar -s financial-need -s community-leader

  # Render a table, or machine-readable output:
  scholar -o table
  scholar -o json`
)

type RootArgs struct {
	LogLevel       string
	LogFormat      string
	Output         string
	ApplicantsPath string
	Scholarships   []string
}

func NewRootArgs() *RootArgs {
	return &RootArgs{}
}

func (ra *RootArgs) AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVar(&ra.LogLevel, "log-level", "info", fmt.Sprintf("Log level, one of: %s", log.AllLevels))
	cmd.PersistentFlags().
		StringVar(&ra.LogFormat, "log-format", "text", fmt.Sprintf("Log format, one of: %s", log.AllFormats))

	cmd.Flags().StringVarP(&ra.Output, "output", "o", string(report.FormatText),
		fmt.Sprintf("Output format, one of: %s", report.AllFormats))
	cmd.Flags().StringVar(&ra.ApplicantsPath, "applicants", "",
		"Path to an applicants YAML file, defaults to the built-in applicants")
	cmd.Flags().StringSliceVarP(&ra.Scholarships, "scholarship", "s", nil,
		fmt.Sprintf("Scholarships to evaluate, any of: %s", rule.Slugs()))

	must(cmd.MarkFlagFilename("applicants", "yaml", "yml"))

	must(cmd.RegisterFlagCompletionFunc("log-format",
		cobra.FixedCompletions(log.AllFormats, cobra.ShellCompDirectiveNoFileComp),
	))
	must(cmd.RegisterFlagCompletionFunc("log-level",
		cobra.FixedCompletions(log.AllLevels, cobra.ShellCompDirectiveNoFileComp),
	))
	must(cmd.RegisterFlagCompletionFunc("output",
		cobra.FixedCompletions(report.AllFormats, cobra.ShellCompDirectiveNoFileComp),
	))
	must(cmd.RegisterFlagCompletionFunc("scholarship", scholarshipCompletion))
}

func NewRootCmd() *cobra.Command {
	args := NewRootArgs()

	cmd := &cobra.Command{
		Use:               cmdName,
		Short:             cmdDesc,
		Example:           cmdExamples,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		PersistentPreRunE: setupLogging(args),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, args)
		},
	}

	args.AddFlags(cmd)
	cmd.AddCommand(NewRulesCmd(), NewSchemaCmd())

	bindEnvVars(cmd)

	return cmd
}

func setupLogging(ra *RootArgs) func(cmd *cobra.Command, _ []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		_, err := log.Setup(cmd.ErrOrStderr(), ra.LogLevel, ra.LogFormat)
		if err != nil {
			return fmt.Errorf("create log handler: %w", err)
		}

		return nil
	}
}

func scholarshipCompletion(_ *cobra.Command, _ []string, _ string) ([]cobra.Completion, cobra.ShellCompDirective) {
	completions := make([]cobra.Completion, 0, len(rule.AllKinds()))
	for _, k := range rule.AllKinds() {
		completions = append(completions, cobra.CompletionWithDesc(k.Slug(), k.String()))
	}

	return completions, cobra.ShellCompDirectiveNoFileComp
}

func run(cmd *cobra.Command, ra *RootArgs) error {
	format, err := report.ParseFormat(ra.Output)
	if err != nil {
		return fmt.Errorf("invalid argument for --output: %w", err)
	}

	kinds := make([]rule.Kind, 0, len(ra.Scholarships))
	for _, s := range ra.Scholarships {
		k, err := rule.ParseKind(s)
		if err != nil {
			return fmt.Errorf("invalid argument for --scholarship: %w", err)
		}

		kinds = append(kinds, k)
	}

	rules, err := rule.Select(kinds...)
	if err != nil {
		return fmt.Errorf("select scholarships: %w", err)
	}

	applicants := applicant.Sample()
	if ra.ApplicantsPath != "" {
		applicants, err = applicant.LoadFile(ra.ApplicantsPath)
		if err != nil {
			return fmt.Errorf("load applicants: %w", err)
		}
	}

	slog.Debug("parsed args",
		slog.String("output", string(format)),
		slog.String("applicants", ra.ApplicantsPath),
		slog.Any("scholarships", ra.Scholarships),
	)

	rep := evaluate.NewRunner(applicants, rules).Run(cmd.Context())

	var opts []report.Option
	if format == report.FormatText && isTerminal(cmd) {
		opts = append(opts, report.WithStyles(report.DefaultStyles()))
	}

	return report.Write(cmd.OutOrStdout(), rep, format, opts...) //nolint:wrapcheck // Already wrapped.
}

// isTerminal reports whether the command writes to an interactive terminal.
func isTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.OutOrStdout().(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd())) //nolint:gosec // G115: fd fits in int.
}
