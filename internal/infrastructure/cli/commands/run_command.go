package commands

import (
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/tftio/prompter/internal/app"
	"github.com/tftio/prompter/internal/domain"
)

// RenderFlags are the flags shared by `run` and the root shorthand.
type RenderFlags struct {
	Separator  string
	PrePrompt  string
	PostPrompt string
	Config     string
}

// Register declares the render flags on cmd. Declaration order is the order
// completion scripts list them in.
func (f *RenderFlags) Register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.Separator, flagSeparator, "s", "", helpSeparator)
	flags.StringVarP(&f.PrePrompt, flagPrePrompt, "p", "", helpPrePrompt)
	flags.StringVarP(&f.PostPrompt, flagPostPrompt, "P", "", helpPostPrompt)
	flags.StringVarP(&f.Config, flagConfig, "c", "", helpConfig)
	_ = cmd.MarkFlagFilename(flagConfig)
}

// Request builds a render request. Only flags set on the command line
// override config values, so an explicit empty string disables a prompt.
func (f *RenderFlags) Request(cmd *cobra.Command, profiles []string) domain.RenderRequest {
	req := domain.RenderRequest{Profiles: profiles, Now: time.Now()}
	if cmd.Flags().Changed(flagSeparator) {
		req.Separator = &f.Separator
	}
	if cmd.Flags().Changed(flagPrePrompt) {
		req.PrePrompt = &f.PrePrompt
	}
	if cmd.Flags().Changed(flagPostPrompt) {
		req.PostPrompt = &f.PostPrompt
	}
	return req
}

// Render resolves profiles and writes the document to the command's output.
func (f *RenderFlags) Render(cmd *cobra.Command, container *app.Container, profiles []string, asJSON bool) error {
	result, err := container.Library(f.Config).Render(cmd.Context(), f.Request(cmd, profiles))
	if err != nil {
		if asJSON {
			return reportJSONError(cmd.ErrOrStderr(), err)
		}
		return err
	}
	if asJSON {
		return writeJSON(cmd.OutOrStdout(), result)
	}
	_, err = io.WriteString(cmd.OutOrStdout(), result.Output)
	return err
}

// NewRunCommand creates the run command.
func NewRunCommand(container *app.Container) *cobra.Command {
	var flags RenderFlags

	cmd := &cobra.Command{
		Use:   domain.RunCommandName + " <profiles>...",
		Short: "Render one or more profiles",
		Long: `Render one or more profiles to stdout.

Each profile's library files are emitted once, in depth-first order, between
the pre-prompt and the post-prompt.`,
		Args: cobra.MinimumNArgs(1),
		Annotations: map[string]string{
			argHelpAnnotation("profiles"): "Profile name(s) to render",
		},
		ValidArgsFunction: ProfileCompletion(container, -1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, _ := cmd.Flags().GetBool(flagJSON)
			return flags.Render(cmd, container, args, asJSON)
		},
	}
	cmd.Flags().SortFlags = false
	flags.Register(cmd)
	addFormatFlags(cmd, false)
	return cmd
}
