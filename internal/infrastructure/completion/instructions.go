package completion

import (
	"fmt"

	"github.com/tftio/prompter/internal/domain"
)

// RenderInstructions returns a commented banner describing how to activate the
// completion script for shell.
func RenderInstructions(shell domain.Shell, program string) string {
	var activate string
	switch shell {
	case domain.ShellBash:
		activate = fmt.Sprintf("#   source <(%s completions bash)\n", program)
	case domain.ShellZsh:
		activate = fmt.Sprintf("#   %[1]s completions zsh > ~/.zsh/completions/_%[1]s\n#   Ensure fpath includes ~/.zsh/completions\n", program)
	case domain.ShellFish:
		activate = fmt.Sprintf("#   %s completions fish | source\n", program)
	case domain.ShellPowerShell:
		activate = fmt.Sprintf("#   %s completions powershell | Out-String | Invoke-Expression\n", program)
	case domain.ShellElvish:
		activate = fmt.Sprintf("#   %s completions elvish | eval\n", program)
	default:
		activate = fmt.Sprintf("#   %s completions %s\n", program, shell)
	}
	return fmt.Sprintf("# Shell completion for %s\n#\n# To enable completions, add this to your shell config:\n#\n%s\n", program, activate)
}
