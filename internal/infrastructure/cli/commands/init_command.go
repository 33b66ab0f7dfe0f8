package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tftio/prompter/assets"
	"github.com/tftio/prompter/internal/app"
	"github.com/tftio/prompter/internal/infrastructure/config"
)

// NewInitCommand creates the init command to scaffold a starter configuration
// and library. Existing files are left untouched.
func NewInitCommand(container *app.Container) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a starter config and library",
		Long: `Create ~/.config/prompter/config.toml and a starter library under
~/.local/prompter/library. Files that already exist are never overwritten.

Afterwards run 'prompter doctor' to verify your setup.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loader := container.ConfigLoader(configPath)
			libraryDir := loader.LibraryDir(cmd.Context())
			result, err := config.Scaffold(loader.Path(), assets.DefaultConfigTOML, libraryDir, assets.DefaultLibrary())
			if err != nil {
				return fmt.Errorf("init: %w", err)
			}
			container.Logger.Debug("scaffolded", map[string]interface{}{
				"created": len(result.Created),
				"skipped": len(result.Skipped),
			})

			out := cmd.OutOrStdout()
			if handled, err := writeStructured(out, formatFromFlags(cmd), result); handled {
				return err
			}
			for _, path := range result.Created {
				fmt.Fprintln(out, renderOK("Created "+path))
			}
			for _, path := range result.Skipped {
				fmt.Fprintln(out, styleMuted.Render("Exists, skipped "+path))
			}
			fmt.Fprintln(out, "\nNext: run 'prompter list' to see the starter profiles.")
			return nil
		},
	}
	cmd.Flags().StringVarP(&configPath, flagConfig, "c", "", helpConfig)
	_ = cmd.MarkFlagFilename(flagConfig)
	addFormatFlags(cmd, false)
	return cmd
}
