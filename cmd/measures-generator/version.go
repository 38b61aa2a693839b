package main

import (
	"encoding/json"
	"fmt"
	"runtime/debug"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Overridden at build time via -ldflags "-X main.version=...".
var (
	version   = "0.1.0-dev"
	gitCommit = ""
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show build information",
	RunE:  runVersion,
}

func init() {
	versionCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

type versionPayload struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	GoVersion string `json:"go_version,omitempty"`
}

func collectVersion() versionPayload {
	p := versionPayload{
		Tool:      "measures-generator",
		Version:   version,
		GitCommit: gitCommit,
	}

	if info, ok := debug.ReadBuildInfo(); ok {
		p.GoVersion = info.GoVersion

		if p.GitCommit == "" {
			for _, s := range info.Settings {
				if s.Key == "vcs.revision" {
					p.GitCommit = s.Value
				}
			}
		}
	}

	return p
}

func runVersion(cmd *cobra.Command, _ []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}

	p := collectVersion()
	out := cmd.OutOrStdout()

	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")

		return enc.Encode(p)
	case "pretty":
		fmt.Fprintf(out, "%s %s\n", color.New(color.Bold).Sprint(p.Tool), color.New(color.FgGreen).Sprint(p.Version))

		if p.GitCommit != "" {
			fmt.Fprintf(out, "  commit: %s\n", p.GitCommit)
		}

		if p.GoVersion != "" {
			fmt.Fprintf(out, "  go:     %s\n", p.GoVersion)
		}

		return nil
	default:
		return fmt.Errorf("unsupported format %q (must be pretty or json)", format)
	}
}
