package completion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tftio/prompter/internal/domain"
)

func TestRenderInstructions(t *testing.T) {
	tests := []struct {
		shell domain.Shell
		want  string
	}{
		{domain.ShellBash, "#   source <(prompter completions bash)\n"},
		{domain.ShellZsh, "#   prompter completions zsh > ~/.zsh/completions/_prompter\n#   Ensure fpath includes ~/.zsh/completions\n"},
		{domain.ShellFish, "#   prompter completions fish | source\n"},
		{domain.ShellPowerShell, "#   prompter completions powershell | Out-String | Invoke-Expression\n"},
		{domain.ShellElvish, "#   prompter completions elvish | eval\n"},
		{domain.Shell("tcsh"), "#   prompter completions tcsh\n"},
	}
	for _, tt := range tests {
		t.Run(string(tt.shell), func(t *testing.T) {
			got := RenderInstructions(tt.shell, "prompter")
			assert.True(t, strings.HasPrefix(got, "# Shell completion for prompter\n#\n# To enable completions, add this to your shell config:\n#\n"))
			assert.Contains(t, got, tt.want)
			assert.True(t, strings.HasSuffix(got, "\n\n"), "banner ends with a blank line")
		})
	}
}

func TestRenderInstructionsEveryLineIsComment(t *testing.T) {
	for _, shell := range domain.KnownShells {
		banner := strings.TrimSuffix(RenderInstructions(shell, "prompter"), "\n\n")
		for _, line := range strings.Split(banner, "\n") {
			assert.True(t, strings.HasPrefix(line, "#"), "%s: %q", shell, line)
		}
	}
}
