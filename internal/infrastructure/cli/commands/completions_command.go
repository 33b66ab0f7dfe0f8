package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tftio/prompter/internal/app"
	"github.com/tftio/prompter/internal/domain"
	"github.com/tftio/prompter/internal/infrastructure/completion"
	"github.com/tftio/prompter/internal/infrastructure/completion/static"
)

// argHelpAnnotation keys the help text for a positional argument.
func argHelpAnnotation(name string) string {
	return static.ArgHelpAnnotation + name
}

// NewCompletionsCommand creates the completions command.
func NewCompletionsCommand(container *app.Container) *cobra.Command {
	var install, uninstall, force bool

	cmd := &cobra.Command{
		Use:   "completions <shell>",
		Short: "Generate shell completion scripts",
		Long: `Generate a completion script for the given shell.

Bash, zsh and fish scripts complete profile names by running
'prompter list' when you press TAB, honoring any --config on the line.

With --install the script is written to the shell's completion location and,
for bash and zsh, sourced from the rc file. --uninstall removes the rc entry
(the fish script itself, since fish has no rc entry).`,
		ValidArgs: domain.ShellNames(),
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Annotations: map[string]string{
			argHelpAnnotation("shell"): "Shell to generate completions for",
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			shell := domain.ParseShell(args[0])
			generator := completion.NewGenerator(cmd.Root(), container.Logger)
			switch {
			case install:
				return installCompletions(cmd, container, generator, shell, force)
			case uninstall:
				return uninstallCompletions(cmd, container, shell)
			default:
				return generator.Generate(cmd.OutOrStdout(), shell)
			}
		},
	}
	cmd.Flags().BoolVar(&install, flagInstall, false, "Install the script instead of printing it")
	cmd.Flags().BoolVar(&uninstall, flagUninstall, false, "Remove a previous --install")
	cmd.Flags().BoolVar(&force, flagForce, false, "Rewrite the rc entry even if present")
	cmd.MarkFlagsMutuallyExclusive(flagInstall, flagUninstall)
	return cmd
}

func installCompletions(cmd *cobra.Command, container *app.Container, generator *completion.Generator, shell domain.Shell, force bool) error {
	script, err := generator.Script(shell)
	if err != nil {
		return err
	}
	res, err := container.ShellIntegrator.Install(shell, script, force)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, renderOK(fmt.Sprintf("Installed %s completions: %s", res.Shell, res.ScriptPath)))
	switch {
	case res.RCFile == "":
		fmt.Fprintln(out, styleMuted.Render("fish loads it automatically in new sessions."))
	case res.RCUpdated:
		fmt.Fprintln(out, renderOK(fmt.Sprintf("Added source line to %s", res.RCFile)))
		fmt.Fprintf(out, "Restart your shell or run: source %s\n", res.RCFile)
	default:
		fmt.Fprintln(out, styleMuted.Render(fmt.Sprintf("%s already sources it.", res.RCFile)))
	}
	return nil
}

func uninstallCompletions(cmd *cobra.Command, container *app.Container, shell domain.Shell) error {
	res, err := container.ShellIntegrator.Uninstall(shell)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch {
	case res.RCFile == "" && res.ScriptUpdated:
		fmt.Fprintln(out, renderOK(fmt.Sprintf("Removed %s", res.ScriptPath)))
	case res.RCUpdated:
		fmt.Fprintln(out, renderOK(fmt.Sprintf("Removed source line from %s", res.RCFile)))
		fmt.Fprintln(out, styleMuted.Render(fmt.Sprintf("%s was kept; delete it if you no longer need it.", res.ScriptPath)))
	default:
		fmt.Fprintln(out, styleMuted.Render(fmt.Sprintf("%s completions were not installed.", res.Shell)))
	}
	return nil
}
