package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tftio/prompter/internal/version"
)

const (
	releaseChannelStable  = "stable"
	releaseChannelNightly = "nightly"
)

// NewUpdateCommand creates the update command
func NewUpdateCommand() *cobra.Command {
	var channel string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Show how to upgrade to the latest release",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if channel != releaseChannelStable && channel != releaseChannelNightly {
				return fmt.Errorf("unknown release channel %q (stable|nightly)", channel)
			}
			return displayUpdateInstructions(cmd.OutOrStdout(), channel)
		},
	}

	cmd.Flags().StringVar(&channel, "channel", releaseChannelStable, "Release channel (stable/nightly)")

	return cmd
}

// displayUpdateInstructions displays update instructions
func displayUpdateInstructions(out io.Writer, channel string) error {
	ref := "@latest"
	if channel == releaseChannelNightly {
		ref = "@main"
	}
	fmt.Fprintf(out, "Current version: %s\n", version.Version)
	fmt.Fprintf(out, "Release channel: %s\n", channel)
	fmt.Fprintln(out, "Update instructions:")
	fmt.Fprintln(out, "  1. Visit https://github.com/tftio/prompter/releases for the latest binary.")
	fmt.Fprintf(out, "  2. Or build from source: go install github.com/tftio/prompter/cmd/prompter%s\n", ref)
	fmt.Fprintln(out, "After updating, run 'prompter completions <shell> --install' to refresh completions.")

	return nil
}
