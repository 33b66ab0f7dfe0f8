package commands

import "errors"

// Flag names shared across commands.
const (
	flagSeparator  = "separator"
	flagPrePrompt  = "pre-prompt"
	flagPostPrompt = "post-prompt"
	flagConfig     = "config"
	flagJSON       = "json"
	flagYAML       = "yaml"
	flagInstall    = "install"
	flagUninstall  = "uninstall"
	flagForce      = "force"
)

// Help text reused where the same flag appears on several commands.
const (
	helpSeparator  = "Separator between files (escape sequences like \\n are honored)"
	helpPrePrompt  = "Text prepended to the output (overrides config)"
	helpPostPrompt = "Text appended to the output (overrides config)"
	helpConfig     = "Path to config file"
)

// ErrAlreadyReported marks a failure whose details were already written to
// the output; callers should exit non-zero without printing it again.
var ErrAlreadyReported = errors.New("failure already reported")
