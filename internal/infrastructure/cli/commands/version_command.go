package commands

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/tftio/prompter/internal/domain"
	"github.com/tftio/prompter/internal/version"
)

type versionInfo struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	BuildDate string `json:"build_date,omitempty"`
	GoVersion string `json:"go_version"`
}

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := versionInfo{
				Name:      domain.ProgramName,
				Version:   version.Version,
				Commit:    version.Commit,
				BuildDate: version.BuildDate,
				GoVersion: runtime.Version(),
			}
			if asJSON, _ := cmd.Flags().GetBool(flagJSON); asJSON {
				return writeJSON(cmd.OutOrStdout(), info)
			}
			return displayVersionInformation(cmd.OutOrStdout(), info)
		},
	}
	addFormatFlags(cmd, false)
	return cmd
}

// displayVersionInformation displays version information
func displayVersionInformation(out io.Writer, info versionInfo) error {
	fmt.Fprintf(out, "%s version %s\n", info.Name, info.Version)

	if info.Commit != "" {
		fmt.Fprintf(out, "Commit: %s\n", info.Commit)
	}

	if info.BuildDate != "" {
		fmt.Fprintf(out, "Built: %s\n", info.BuildDate)
	}

	fmt.Fprintf(out, "Go version: %s\n", info.GoVersion)

	return nil
}
