package domain

import (
	"path/filepath"
	"strings"
)

// Shell identifies a completion target. Any value outside the known set is
// carried through verbatim as an "other" shell.
type Shell string

const (
	ShellBash       Shell = "bash"
	ShellZsh        Shell = "zsh"
	ShellFish       Shell = "fish"
	ShellPowerShell Shell = "powershell"
	ShellElvish     Shell = "elvish"
)

// KnownShells lists the shells with a completion generator, in CLI order.
var KnownShells = []Shell{ShellBash, ShellZsh, ShellFish, ShellPowerShell, ShellElvish}

// ParseShell normalizes a shell name or path ("/bin/zsh" -> zsh).
func ParseShell(value string) Shell {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	name := strings.ToLower(filepath.Base(value))
	switch name {
	case "pwsh", "powershell.exe", "pwsh.exe":
		return ShellPowerShell
	}
	return Shell(name)
}

func (s Shell) String() string {
	return string(s)
}

// ShellNames returns the names of KnownShells.
func ShellNames() []string {
	names := make([]string, 0, len(KnownShells))
	for _, sh := range KnownShells {
		names = append(names, string(sh))
	}
	return names
}

// CompletionRequest is the context of a single completion script generation.
type CompletionRequest struct {
	Shell   Shell
	Program string
}

// ShellInstallResult describes install/uninstall outcomes.
type ShellInstallResult struct {
	Shell         Shell
	ScriptPath    string
	RCFile        string
	ScriptUpdated bool
	RCUpdated     bool
}

// ShellStatus captures current completion install state.
type ShellStatus struct {
	Shell        Shell
	ScriptPath   string
	RCFile       string
	ScriptExists bool
	LinePresent  bool
	Error        string
}

// Ready reports whether completions are installed and sourced.
func (s ShellStatus) Ready() bool {
	if s.Error != "" || !s.ScriptExists {
		return false
	}
	// fish autoloads from its completions directory; no rc line is needed.
	return s.RCFile == "" || s.LinePresent
}
