package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/macropower/scholar/pkg/evaluate"
	"github.com/macropower/scholar/pkg/yaml"
)

type Format string

const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"

	VerdictEligible    = "ELIGIBLE"
	VerdictNotEligible = "NOT eligible"
)

var (
	ErrUnknownFormat = errors.New("unknown output format")

	AllFormats = []string{
		string(FormatText),
		string(FormatTable),
		string(FormatJSON),
		string(FormatYAML),
	}
)

func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(AllFormats, string(f)) {
		return f, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Styles decorate [FormatText] output.
type Styles struct {
	Applicant   lipgloss.Style
	Scholarship lipgloss.Style
	Eligible    lipgloss.Style
	NotEligible lipgloss.Style
	Reason      lipgloss.Style
}

// DefaultStyles returns the styles used on a terminal.
func DefaultStyles() *Styles {
	return &Styles{
		Applicant:   lipgloss.NewStyle().Bold(true),
		Scholarship: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Eligible:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
		NotEligible: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Reason:      lipgloss.NewStyle().Faint(true),
	}
}

type options struct {
	styles *Styles
}

type Option func(*options)

// WithStyles enables styled [FormatText] output. Without it, the text is
// written unstyled.
func WithStyles(s *Styles) Option {
	return func(o *options) {
		o.styles = s
	}
}

// Write renders report to w in format.
func Write(w io.Writer, report *evaluate.Report, format Format, opts ...Option) error {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	var err error

	switch format {
	case FormatText, "":
		err = writeText(w, report, o.styles)
	case FormatTable:
		writeTable(w, report)
	case FormatJSON:
		err = writeJSON(w, report)
	case FormatYAML:
		err = writeYAML(w, report)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if err != nil {
		return fmt.Errorf("write %s report: %w", format, err)
	}

	return nil
}

func verdict(eligible bool) string {
	if eligible {
		return VerdictEligible
	}

	return VerdictNotEligible
}

func writeText(w io.Writer, report *evaluate.Report, s *Styles) error {
	render := func(style lipgloss.Style, str string) string {
		if s == nil {
			return str
		}

		return style.Render(str)
	}

	var st Styles
	if s != nil {
		st = *s
	}

	for _, ar := range report.Applicants {
		_, err := fmt.Fprintf(w, "\nApplicant: %s\n", render(st.Applicant, ar.Name))
		if err != nil {
			return err //nolint:wrapcheck // Wrapped by Write.
		}

		for _, res := range ar.Results {
			vs := st.NotEligible
			if res.Eligible {
				vs = st.Eligible
			}

			_, err := fmt.Fprintf(w, "  %s: %s\n",
				render(st.Scholarship, res.Scholarship),
				render(vs, verdict(res.Eligible)),
			)
			if err != nil {
				return err //nolint:wrapcheck // Wrapped by Write.
			}

			for _, reason := range res.Reasons {
				_, err := fmt.Fprintf(w, "    - %s\n", render(st.Reason, reason))
				if err != nil {
					return err //nolint:wrapcheck // Wrapped by Write.
				}
			}
		}
	}

	return nil
}

func writeTable(w io.Writer, report *evaluate.Report) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Applicant", "Scholarship", "Verdict", "Reasons"})

	for i, ar := range report.Applicants {
		if i > 0 {
			t.AppendSeparator()
		}

		for _, res := range ar.Results {
			t.AppendRow(table.Row{
				ar.Name,
				res.Scholarship,
				verdict(res.Eligible),
				strings.Join(res.Reasons, "\n"),
			})
		}
	}

	t.Render()
}

func writeJSON(w io.Writer, report *evaluate.Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(report) //nolint:wrapcheck // Wrapped by Write.
}

func writeYAML(w io.Writer, report *evaluate.Report) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(report); err != nil {
		return err //nolint:wrapcheck // Wrapped by Write.
	}

	return enc.Close() //nolint:wrapcheck // Wrapped by Write.
}
