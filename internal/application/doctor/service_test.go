package doctor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tftio/prompter/internal/domain"
)

type stubConfig struct {
	path string
	cfg  domain.Config
	err  error
}

func (s stubConfig) Load(context.Context) (domain.Config, error) { return s.cfg, s.err }
func (s stubConfig) Path() string                               { return s.path }

// stubFiles maps paths to "file" or "dir".
type stubFiles map[string]string

func (s stubFiles) ReadFile(string) ([]byte, error) { return nil, errors.New("unused") }
func (s stubFiles) Exists(path string) bool        { return s[path] == "file" }
func (s stubFiles) IsDir(path string) bool         { return s[path] == "dir" }

type stubProfiles struct {
	names []string
	err   error
}

func (s stubProfiles) List(context.Context) ([]string, error) { return s.names, nil }
func (s stubProfiles) Validate(context.Context) error         { return s.err }

type stubShell struct {
	shell  domain.Shell
	status domain.ShellStatus
}

func (s stubShell) Install(domain.Shell, []byte, bool) (domain.ShellInstallResult, error) {
	return domain.ShellInstallResult{}, nil
}
func (s stubShell) Uninstall(domain.Shell) (domain.ShellInstallResult, error) {
	return domain.ShellInstallResult{}, nil
}
func (s stubShell) Status(domain.Shell) domain.ShellStatus { return s.status }
func (s stubShell) DetectShell() domain.Shell              { return s.shell }

func checkByName(t *testing.T, report domain.HealthReport, name string) domain.HealthCheck {
	t.Helper()
	for _, check := range report.Checks {
		if check.Name == name {
			return check
		}
	}
	require.Failf(t, "missing check", "%s not in report", name)
	return domain.HealthCheck{}
}

func TestRunHealthy(t *testing.T) {
	svc := &Service{
		ConfigProvider: stubConfig{path: "/cfg.toml", cfg: domain.Config{LibraryDir: "/lib"}},
		Profiles:       stubProfiles{names: []string{"a", "b"}},
		Files:          stubFiles{"/cfg.toml": "file", "/lib": "dir"},
		ShellIntegrator: stubShell{shell: domain.ShellBash, status: domain.ShellStatus{
			Shell: domain.ShellBash, ScriptPath: "/x.bash", RCFile: "/rc", ScriptExists: true, LinePresent: true,
		}},
	}

	report := svc.Run(context.Background())
	assert.False(t, report.HasErrors())
	assert.Len(t, report.Checks, 5)
	for _, check := range report.Checks {
		assert.Equal(t, domain.HealthOK, check.Status, check.Name)
	}
	assert.Equal(t, "2 profiles resolve", checkByName(t, report, "Profiles").Details)
}

func TestRunMissingConfig(t *testing.T) {
	svc := &Service{
		ConfigProvider:  stubConfig{path: "/missing.toml"},
		Files:           stubFiles{},
		ShellIntegrator: stubShell{},
	}

	report := svc.Run(context.Background())
	assert.True(t, report.HasErrors())
	check := checkByName(t, report, "Config file")
	assert.Equal(t, domain.HealthError, check.Status)
	assert.Contains(t, check.Details, "prompter init")
	assert.Equal(t, domain.HealthWarn, checkByName(t, report, "Shell completions").Status)
}

func TestRunInvalidConfigAndProfiles(t *testing.T) {
	files := stubFiles{"/cfg.toml": "file"}
	broken := &Service{
		ConfigProvider: stubConfig{path: "/cfg.toml", err: errors.New("parse config: bad")},
		Files:          files,
	}
	report := broken.Run(context.Background())
	assert.Equal(t, domain.HealthError, checkByName(t, report, "Config syntax").Status)

	invalid := &Service{
		ConfigProvider: stubConfig{path: "/cfg.toml", cfg: domain.Config{LibraryDir: "/does/not/exist"}},
		Profiles:       stubProfiles{err: errors.Join(errors.New("profile a: x"), errors.New("profile b: y"))},
		Files:          files,
	}
	report = invalid.Run(context.Background())
	assert.Equal(t, domain.HealthError, checkByName(t, report, "Library directory").Status)
	profiles := checkByName(t, report, "Profiles")
	assert.Equal(t, domain.HealthError, profiles.Status)
	assert.Equal(t, "profile a: x; profile b: y", profiles.Details)
}

func TestRunLibraryPathIsAFile(t *testing.T) {
	svc := &Service{
		ConfigProvider: stubConfig{path: "/cfg.toml", cfg: domain.Config{LibraryDir: "/lib"}},
		Profiles:       stubProfiles{names: []string{"a"}},
		Files:          stubFiles{"/cfg.toml": "file", "/lib": "file"},
	}

	check := checkByName(t, svc.Run(context.Background()), "Library directory")
	assert.Equal(t, domain.HealthError, check.Status)
	assert.Equal(t, "not found: /lib", check.Details)
}

func TestCompletionCheckNotInstalled(t *testing.T) {
	svc := &Service{ShellIntegrator: stubShell{shell: domain.ShellZsh, status: domain.ShellStatus{Shell: domain.ShellZsh, RCFile: "/rc"}}}
	check := svc.completionCheck()
	assert.Equal(t, domain.HealthWarn, check.Status)
	assert.Contains(t, check.Details, "prompter completions zsh --install")
}
