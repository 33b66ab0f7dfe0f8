// Package ports defines the interfaces (ports) between the application core and
// its adapters.
//
// The application layer (profile library, doctor) depends only on these
// abstractions; the infrastructure layer (TOML loader, shell installer, zap
// logger) provides the concrete implementations, wired in internal/app.
package ports

import (
	"context"

	"github.com/tftio/prompter/internal/domain"
)

// ConfigProvider loads the profile configuration.
// Implementations typically read from ~/.config/prompter/config.toml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
	// Path reports the file Load reads from, whether or not it exists.
	Path() string
}

// FileReader reads library files referenced by profiles.
type FileReader interface {
	ReadFile(path string) ([]byte, error)
	Exists(path string) bool
	IsDir(path string) bool
}

// ShellIntegrator installs generated completion scripts for a shell.
type ShellIntegrator interface {
	Install(shell domain.Shell, script []byte, force bool) (domain.ShellInstallResult, error)
	Uninstall(shell domain.Shell) (domain.ShellInstallResult, error)
	Status(shell domain.Shell) domain.ShellStatus
	DetectShell() domain.Shell
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stderr, files, nowhere).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
