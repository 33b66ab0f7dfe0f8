package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/tftio/prompter/internal/app"
)

// ProfileCompletion completes profile names for cobra-driven shells. Up to
// maxArgs positionals are completed; a negative maxArgs means no limit.
func ProfileCompletion(container *app.Container, maxArgs int) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return safeCompletion(func() ([]string, cobra.ShellCompDirective) {
			if maxArgs >= 0 && len(args) >= maxArgs {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			configPath, _ := cmd.Flags().GetString(flagConfig)
			names, err := container.Library(configPath).List(cmd.Context())
			if err != nil {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			var matches []string
			for _, name := range names {
				if strings.HasPrefix(name, toComplete) {
					matches = append(matches, name)
				}
			}
			return matches, cobra.ShellCompDirectiveNoFileComp
		})
	}
}

// safeCompletion shields the shell from panics in completion callbacks.
func safeCompletion(fn func() ([]string, cobra.ShellCompDirective)) (results []string, directive cobra.ShellCompDirective) {
	results = []string{}
	directive = cobra.ShellCompDirectiveNoFileComp
	defer func() {
		if r := recover(); r != nil {
			results = []string{}
			directive = cobra.ShellCompDirectiveNoFileComp
		}
	}()
	results, directive = fn()
	if results == nil {
		return []string{}, directive
	}
	return results, directive
}
