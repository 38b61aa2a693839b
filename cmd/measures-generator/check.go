package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"measures-generator/internal/diagnostic"
)

var checkCmd = &cobra.Command{
	Use:   "check [packages...]",
	Short: "Validate annotations and report diagnostics",
	Long:  `Load the given packages (or the patterns from measures.toml), resolve every annotated quantity and print the diagnostics. Exits with status 1 when any diagnostic is an error`,
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().Bool("no-warnings", false, "hide warnings")
	checkCmd.Flags().Bool("warnings-as-errors", false, "exit with status 1 on warnings too")
	checkCmd.Flags().Bool("suggest", true, "print suggestions attached to diagnostics")
}

func runCheck(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	noWarnings, err := cmd.Flags().GetBool("no-warnings")
	if err != nil {
		return err
	}

	strict, err := cmd.Flags().GetBool("warnings-as-errors")
	if err != nil {
		return err
	}

	suggest, err := cmd.Flags().GetBool("suggest")
	if err != nil {
		return err
	}

	a, err := s.analyzePatterns(cmd.Context(), args)
	if err != nil {
		return err
	}

	diags := a.diags
	if noWarnings {
		diags = withoutWarnings(diags)
	}

	p := printer{
		out:     cmd.OutOrStdout(),
		limit:   s.cfg.Generator.MaxDiagnostics,
		suggest: suggest,
	}
	p.print(diags)
	p.summary(a)

	if a.diags.HasErrors() || (strict && len(a.diags.Warnings()) > 0) {
		return exitError{code: 1}
	}

	return nil
}

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
	codeColor    = color.New(color.Faint)
	okColor      = color.New(color.FgGreen, color.Bold)
)

// printer renders diagnostics one per line:
//
//	file:line:col: error[code] si.Length IncludeUnits: message
//	    did you mean: Metre, Kilometre
type printer struct {
	out     io.Writer
	limit   int
	suggest bool
}

func (p printer) print(diags diagnostic.Diagnostics) {
	for i, d := range diags {
		if p.limit > 0 && i == p.limit {
			fmt.Fprintf(p.out, "... and %d more\n", len(diags)-p.limit)
			return
		}

		p.line(d)
	}
}

func (p printer) line(d diagnostic.Diagnostic) {
	var b strings.Builder

	if !d.Span.IsZero() {
		b.WriteString(d.Span.String())
		b.WriteString(": ")
	}

	b.WriteString(severityColor(d.Severity).Sprint(d.Severity.String()))

	if d.Code != "" {
		b.WriteString(codeColor.Sprintf("[%s]", d.Code))
	}

	b.WriteString(" ")

	if d.Type != "" {
		b.WriteString(d.Type)
		if d.Field != "" {
			b.WriteString(" " + d.Field)
		}

		b.WriteString(": ")
	}

	b.WriteString(d.Message)
	fmt.Fprintln(p.out, b.String())

	if p.suggest && len(d.Suggestions) > 0 {
		fmt.Fprintf(p.out, "    did you mean: %s\n", strings.Join(d.Suggestions, ", "))
	}
}

func (p printer) summary(a *analysis) {
	errs := len(a.diags.Errors())
	warns := len(a.diags.Warnings())

	res := a.result
	counts := fmt.Sprintf("%d units, %d scalars, %d vectors, %d vector groups",
		len(res.Units), len(res.Scalars), len(res.Vectors), len(res.VectorGroups))

	if errs == 0 && warns == 0 {
		fmt.Fprintf(p.out, "%s %s\n", okColor.Sprint("ok"), counts)
		return
	}

	fmt.Fprintf(p.out, "%s, %s: %s\n",
		errorColor.Sprintf("%d error(s)", errs),
		warningColor.Sprintf("%d warning(s)", warns),
		counts)
}

func withoutWarnings(diags diagnostic.Diagnostics) diagnostic.Diagnostics {
	out := make(diagnostic.Diagnostics, 0, len(diags))
	for _, d := range diags {
		if d.Severity != diagnostic.SeverityWarning {
			out = append(out, d)
		}
	}

	return out
}

func severityColor(s diagnostic.Severity) *color.Color {
	switch s {
	case diagnostic.SeverityError:
		return errorColor
	case diagnostic.SeverityWarning:
		return warningColor
	default:
		return infoColor
	}
}
