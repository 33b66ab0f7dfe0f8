package doctor

import (
	"context"
	"fmt"
	"strings"

	"github.com/tftio/prompter/internal/domain"
	"github.com/tftio/prompter/internal/ports"
	"github.com/tftio/prompter/internal/version"
)

// ProfileValidator checks that every configured profile resolves.
type ProfileValidator interface {
	List(ctx context.Context) ([]string, error)
	Validate(ctx context.Context) error
}

// Service runs environment diagnostics.
type Service struct {
	ConfigProvider  ports.ConfigProvider
	Profiles        ProfileValidator
	Files           ports.FileReader
	ShellIntegrator ports.ShellIntegrator
}

// Run executes checks and returns a report. Failures are recorded as checks,
// never returned.
func (s *Service) Run(ctx context.Context) domain.HealthReport {
	report := domain.HealthReport{Version: version.Version}

	path := s.ConfigProvider.Path()
	if !s.Files.Exists(path) {
		report.Checks = append(report.Checks,
			fail("Config file", fmt.Sprintf("not found: %s (run 'prompter init')", path)))
		report.Checks = append(report.Checks, s.completionCheck())
		return report
	}
	report.Checks = append(report.Checks, ok("Config file", path))

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		report.Checks = append(report.Checks, fail("Config syntax", err.Error()))
		report.Checks = append(report.Checks, s.completionCheck())
		return report
	}
	report.Checks = append(report.Checks, ok("Config syntax", "valid TOML"))

	if !s.Files.IsDir(cfg.LibraryDir) {
		report.Checks = append(report.Checks,
			fail("Library directory", fmt.Sprintf("not found: %s", cfg.LibraryDir)))
	} else {
		report.Checks = append(report.Checks, ok("Library directory", cfg.LibraryDir))
	}

	report.Checks = append(report.Checks, s.profilesCheck(ctx))
	report.Checks = append(report.Checks, s.completionCheck())
	return report
}

func (s *Service) profilesCheck(ctx context.Context) domain.HealthCheck {
	if err := s.Profiles.Validate(ctx); err != nil {
		return fail("Profiles", strings.ReplaceAll(err.Error(), "\n", "; "))
	}
	names, err := s.Profiles.List(ctx)
	if err != nil {
		return fail("Profiles", err.Error())
	}
	if len(names) == 0 {
		return warn("Profiles", "no profiles defined")
	}
	return ok("Profiles", fmt.Sprintf("%d profiles resolve", len(names)))
}

func (s *Service) completionCheck() domain.HealthCheck {
	if s.ShellIntegrator == nil {
		return warn("Shell completions", "shell installer unavailable")
	}
	shell := s.ShellIntegrator.DetectShell()
	if shell == "" {
		return warn("Shell completions", "could not detect shell (SHELL not set)")
	}
	status := s.ShellIntegrator.Status(shell)
	switch {
	case status.Error != "":
		return warn("Shell completions", status.Error)
	case status.ScriptExists && status.Ready():
		return ok("Shell completions", fmt.Sprintf("%s ready (%s)", shell, status.ScriptPath))
	default:
		return warn("Shell completions",
			fmt.Sprintf("not installed for %s (run 'prompter completions %s --install')", shell, shell))
	}
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
