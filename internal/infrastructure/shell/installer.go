package shell

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mvdan.cc/sh/v3/syntax"

	"github.com/tftio/prompter/internal/domain"
	"github.com/tftio/prompter/internal/pkg/filesystem"
	"github.com/tftio/prompter/internal/ports"
)

// Installer writes generated completion scripts where each shell loads them.
type Installer struct {
	logger ports.Logger
	home   string
}

// NewInstaller builds a completion installer rooted at the user's home directory.
func NewInstaller(logger ports.Logger) *Installer {
	return &Installer{logger: logger, home: filesystem.UserHomeDir()}
}

// NewInstallerAt builds an installer rooted at home.
func NewInstallerAt(logger ports.Logger, home string) *Installer {
	return &Installer{logger: logger, home: home}
}

// Install writes script for shell and, for rc-driven shells, ensures the rc
// file sources it.
func (i *Installer) Install(shell domain.Shell, script []byte, force bool) (domain.ShellInstallResult, error) {
	scriptPath, rcFile := i.scriptPaths(shell)
	if scriptPath == "" {
		return domain.ShellInstallResult{}, fmt.Errorf("unsupported shell: %s", shell)
	}
	if err := os.MkdirAll(filepath.Dir(scriptPath), domain.DirectoryPermissions); err != nil {
		return domain.ShellInstallResult{}, err
	}
	if err := os.WriteFile(scriptPath, script, domain.FilePermissions); err != nil {
		return domain.ShellInstallResult{}, err
	}
	i.logger.Debug("wrote completion script", map[string]interface{}{"shell": string(shell), "path": scriptPath})

	result := domain.ShellInstallResult{
		Shell:         shell,
		ScriptPath:    scriptPath,
		RCFile:        rcFile,
		ScriptUpdated: true,
	}
	if rcFile == "" {
		return result, nil
	}

	line, err := i.sourceLine(scriptPath)
	if err != nil {
		return domain.ShellInstallResult{}, err
	}
	rcUpdated, err := ensureRCLine(rcFile, line, force)
	if err != nil {
		return domain.ShellInstallResult{}, err
	}
	result.RCUpdated = rcUpdated
	if !rcUpdated {
		i.logger.Info("rc file already sources completion script", map[string]interface{}{"rc": rcFile})
	}
	return result, nil
}

// Uninstall removes the sourcing line from the rc file (script retained as backup).
func (i *Installer) Uninstall(shell domain.Shell) (domain.ShellInstallResult, error) {
	scriptPath, rcFile := i.scriptPaths(shell)
	if scriptPath == "" {
		return domain.ShellInstallResult{}, fmt.Errorf("unsupported shell: %s", shell)
	}
	result := domain.ShellInstallResult{Shell: shell, ScriptPath: scriptPath, RCFile: rcFile}
	if rcFile == "" {
		err := os.Remove(scriptPath)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return domain.ShellInstallResult{}, err
		}
		result.ScriptUpdated = err == nil
		return result, nil
	}
	line, err := i.sourceLine(scriptPath)
	if err != nil {
		return domain.ShellInstallResult{}, err
	}
	updated, err := removeRCLine(rcFile, line)
	if err != nil {
		return domain.ShellInstallResult{}, err
	}
	result.RCUpdated = updated
	return result, nil
}

// Status reports current install state.
func (i *Installer) Status(shell domain.Shell) domain.ShellStatus {
	scriptPath, rcFile := i.scriptPaths(shell)
	status := domain.ShellStatus{
		Shell:      shell,
		ScriptPath: scriptPath,
		RCFile:     rcFile,
	}
	if scriptPath == "" {
		status.Error = fmt.Sprintf("unsupported shell: %s", shell)
		return status
	}

	if info, err := os.Stat(scriptPath); err == nil && info.Mode().IsRegular() {
		status.ScriptExists = true
	}
	if rcFile == "" {
		return status
	}

	line, err := i.sourceLine(scriptPath)
	if err != nil {
		status.Error = err.Error()
		return status
	}
	if contents, err := os.ReadFile(rcFile); err == nil {
		status.LinePresent = strings.Contains(string(contents), line)
	}
	return status
}

// DetectShell inspects the SHELL env var.
func (i *Installer) DetectShell() domain.Shell {
	return domain.ParseShell(os.Getenv("SHELL"))
}

func (i *Installer) scriptPaths(shell domain.Shell) (string, string) {
	dir := filepath.Join(i.home, ".config", domain.ProgramName, "completions")
	switch shell {
	case domain.ShellBash:
		return filepath.Join(dir, domain.ProgramName+".bash"), filepath.Join(i.home, ".bashrc")
	case domain.ShellZsh:
		return filepath.Join(dir, domain.ProgramName+".zsh"), filepath.Join(i.home, ".zshrc")
	case domain.ShellFish:
		return filepath.Join(i.home, ".config", "fish", "completions", domain.ProgramName+".fish"), ""
	default:
		return "", ""
	}
}

func ensureRCLine(path string, line string, force bool) (bool, error) {
	contents, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return false, err
	}
	if errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(path, []byte(headerComment()+line+"\n"), domain.FilePermissions); err != nil {
			return false, err
		}
		return true, nil
	}
	if strings.Contains(string(contents), line) && !force {
		return false, nil
	}
	lines := strings.Split(string(contents), "\n")
	var filtered []string
	for _, existing := range lines {
		if strings.Contains(existing, line) || existing == strings.TrimSuffix(headerComment(), "\n") {
			continue
		}
		filtered = append(filtered, existing)
	}
	final := strings.TrimRight(strings.Join(filtered, "\n"), "\n")
	if final != "" {
		final += "\n"
	}
	final += headerComment() + line + "\n"
	return true, os.WriteFile(path, []byte(final), domain.FilePermissions)
}

func removeRCLine(path string, line string) (bool, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	lines := strings.Split(string(contents), "\n")
	var filtered []string
	removed := false
	for _, existing := range lines {
		if strings.Contains(existing, line) {
			removed = true
			continue
		}
		if existing == strings.TrimSuffix(headerComment(), "\n") {
			continue
		}
		filtered = append(filtered, existing)
	}
	if !removed {
		return false, nil
	}
	final := strings.Join(filtered, "\n")
	if !strings.HasSuffix(final, "\n") {
		final += "\n"
	}
	return true, os.WriteFile(path, []byte(final), domain.FilePermissions)
}

func (i *Installer) sourceLine(scriptPath string) (string, error) {
	path, err := i.friendlyPath(scriptPath)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("[ -f %s ] && source %s", path, path), nil
}

// friendlyPath rewrites paths under home as $HOME/..., quoting the remainder
// for the shell.
func (i *Installer) friendlyPath(path string) (string, error) {
	if rel, err := filepath.Rel(i.home, path); err == nil && !strings.HasPrefix(rel, "..") {
		quoted, err := syntax.Quote(filepath.ToSlash(rel), syntax.LangBash)
		if err != nil {
			return "", err
		}
		return "$HOME/" + quoted, nil
	}
	return syntax.Quote(path, syntax.LangBash)
}

func headerComment() string {
	return "# Added by prompter completions --install\n"
}

var _ ports.ShellIntegrator = (*Installer)(nil)
