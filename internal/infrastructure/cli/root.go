package cli

import (
	"github.com/spf13/cobra"

	"github.com/tftio/prompter/internal/app"
	"github.com/tftio/prompter/internal/domain"
	"github.com/tftio/prompter/internal/infrastructure/cli/commands"
	"github.com/tftio/prompter/internal/infrastructure/completion/static"
	"github.com/tftio/prompter/internal/version"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// ErrAlreadyReported marks failures the command already printed.
var ErrAlreadyReported = commands.ErrAlreadyReported

// NewRootCmd wires the cobra root command.
func NewRootCmd(opts Options) *cobra.Command {
	return newRootCmd(app.BuildContainer(opts.Verbose))
}

func newRootCmd(container *app.Container) *cobra.Command {
	var flags commands.RenderFlags

	root := &cobra.Command{
		Use:     domain.ProgramName + " [profile]",
		Short:   "Compose prompts from a library of reusable markdown snippets",
		Long:    "prompter renders profiles, named sets of library files, into a single document.",
		Version: version.Version,
		Args:    cobra.MaximumNArgs(1),
		Annotations: map[string]string{
			static.ArgHelpAnnotation + "profile": "Profile to render (shorthand for run <profile>)",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			return flags.Render(cmd, container, args, false)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.Flags().SortFlags = false
	flags.Register(root)
	root.Flags().BoolP("version", "V", false, "Print version")
	root.SetVersionTemplate(domain.ProgramName + " {{.Version}}\n")
	root.ValidArgsFunction = commands.ProfileCompletion(container, 1)

	root.AddCommand(commands.NewRunCommand(container))
	root.AddCommand(commands.NewListCommand(container))
	root.AddCommand(commands.NewTreeCommand(container))
	root.AddCommand(commands.NewValidateCommand(container))
	root.AddCommand(commands.NewInitCommand(container))
	root.AddCommand(commands.NewCompletionsCommand(container))
	root.AddCommand(commands.NewDoctorCommand(container))
	root.AddCommand(commands.NewVersionCommand())
	root.AddCommand(commands.NewLicenseCommand())
	root.AddCommand(commands.NewUpdateCommand())
	return root
}
