package cli

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/macropower/scholar/pkg/applicant"
	"github.com/macropower/scholar/pkg/rule"
)

func NewRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the scholarship catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Slug", "Name", "Summary", "Conditions"})

			for _, r := range rule.Catalog() {
				conds := make([]string, 0, len(r.Checks))
				for _, c := range r.Checks {
					conds = append(conds, c.Condition)
				}

				t.AppendRow(table.Row{r.Kind.Slug(), r.Name, r.Summary, strings.Join(conds, "\n")})
			}

			t.Render()

			return nil
		},
	}
}

func NewSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON schema of the applicants file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			b, err := applicant.Schema()
			if err != nil {
				return err //nolint:wrapcheck // Already wrapped.
			}

			mustN(fmt.Fprintln(cmd.OutOrStdout(), string(b)))

			return nil
		},
	}
}
