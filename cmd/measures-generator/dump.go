package main

import (
	"bufio"
	"os"

	"github.com/spf13/cobra"

	"measures-generator/internal/export"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [packages...]",
	Short: "Print the resolved quantities as YAML or MessagePack",
	Long:  `Resolve every annotated quantity of the given packages and write the resulting model, diagnostics included. Exits with status 1 when any diagnostic is an error, after the document was written`,
	RunE:  runDump,
}

func init() {
	dumpCmd.Flags().String("format", string(export.FormatYAML), "output format (yaml|msgpack)")
	dumpCmd.Flags().StringP("output", "o", "", "write to file instead of stdout")
}

func runDump(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	name, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}

	format, err := export.ParseFormat(name)
	if err != nil {
		return err
	}

	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	a, err := s.analyzePatterns(cmd.Context(), args)
	if err != nil {
		return err
	}

	doc := export.Build(a.result)
	doc.Diagnostics = export.Diagnostics(a.diags)

	out := cmd.OutOrStdout()

	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return err
		}
		defer f.Close()

		out = f
	}

	w := bufio.NewWriter(out)
	if err := export.Write(w, doc, format); err != nil {
		return err
	}

	if err := w.Flush(); err != nil {
		return err
	}

	s.log.Debug("document written", "format", format, "units", len(doc.Units), "scalars", len(doc.Scalars))

	if a.diags.HasErrors() {
		return exitError{code: 1}
	}

	return nil
}
