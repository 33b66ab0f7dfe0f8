package app

import (
	"github.com/tftio/prompter/internal/application/doctor"
	"github.com/tftio/prompter/internal/application/library"
	"github.com/tftio/prompter/internal/infrastructure/config"
	"github.com/tftio/prompter/internal/infrastructure/shell"
	"github.com/tftio/prompter/internal/pkg/filesystem"
	"github.com/tftio/prompter/internal/pkg/logger"
	"github.com/tftio/prompter/internal/ports"
)

// Container wires up application services with infrastructure adapters.
// Config-bound services are built per call since --config is a per-command flag.
type Container struct {
	Logger          ports.Logger
	Files           ports.FileReader
	ShellIntegrator ports.ShellIntegrator
}

// BuildContainer constructs the dependency graph. Nothing here touches the
// config file, so commands such as completions work before init.
func BuildContainer(verbose bool) *Container {
	log := logger.New(verbose)
	return &Container{
		Logger:          log,
		Files:           filesystem.OS{},
		ShellIntegrator: shell.NewInstaller(log),
	}
}

// ConfigLoader returns the loader for configPath ("" selects the default).
func (c *Container) ConfigLoader(configPath string) *config.FileLoader {
	return config.NewFileLoader(configPath)
}

// Library returns the profile library service bound to configPath.
func (c *Container) Library(configPath string) *library.Service {
	return &library.Service{
		ConfigProvider: c.ConfigLoader(configPath),
		Files:          c.Files,
		Logger:         c.Logger,
	}
}

// Doctor returns the diagnostics service bound to configPath.
func (c *Container) Doctor(configPath string) *doctor.Service {
	return &doctor.Service{
		ConfigProvider:  c.ConfigLoader(configPath),
		Profiles:        c.Library(configPath),
		Files:           c.Files,
		ShellIntegrator: c.ShellIntegrator,
	}
}
