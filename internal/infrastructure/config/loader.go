package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/tftio/prompter/internal/domain"
	"github.com/tftio/prompter/internal/pkg/filesystem"
	"github.com/tftio/prompter/internal/ports"
)

// ErrNotFound is returned when the configuration file does not exist.
var ErrNotFound = errors.New("config file not found")

// Top-level keys that are settings rather than profile tables.
const (
	keyLibrary    = "library"
	keyPrePrompt  = "pre_prompt"
	keyPostPrompt = "post_prompt"
	keyDependsOn  = "depends_on"
)

// FileLoader loads TOML profiles from ~/.config/prompter/config.toml
// (overridable via --config or PROMPTER_CONFIG).
type FileLoader struct {
	overridePath string
}

// NewFileLoader builds a new loader. An empty path selects the default resolution.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{overridePath: path}
}

// DefaultConfigPath is the configuration location when nothing overrides it.
func DefaultConfigPath() string {
	return filepath.Join(filesystem.UserHomeDir(), ".config", "prompter", "config.toml")
}

// DefaultLibraryDir is the library location when nothing overrides it.
func DefaultLibraryDir() string {
	return filepath.Join(filesystem.UserHomeDir(), ".local", "prompter", "library")
}

// Path implements ports.ConfigProvider.
func (l *FileLoader) Path() string {
	if l.overridePath != "" {
		return filesystem.ExpandPath(l.overridePath)
	}
	if custom := os.Getenv(domain.EnvConfig); custom != "" {
		return filesystem.ExpandPath(custom)
	}
	return DefaultConfigPath()
}

// Load implements ports.ConfigProvider.
func (l *FileLoader) Load(context.Context) (domain.Config, error) {
	path := l.Path()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Config{}, fmt.Errorf("%w: %s (run 'prompter init')", ErrNotFound, path)
		}
		return domain.Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return domain.Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.Path = path
	cfg.LibraryDir = resolveLibraryDir(cfg.LibraryDir, filepath.Dir(path))
	return cfg, nil
}

// LibraryDir returns the library directory of the loaded config, or the
// default resolution when the config cannot be loaded.
func (l *FileLoader) LibraryDir(ctx context.Context) string {
	if cfg, err := l.Load(ctx); err == nil {
		return cfg.LibraryDir
	}
	return resolveLibraryDir("", filepath.Dir(l.Path()))
}

// Parse decodes a TOML document into a Config. LibraryDir is left as written.
func Parse(data []byte) (domain.Config, error) {
	var raw map[string]interface{}
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return domain.Config{}, err
	}

	cfg := domain.Config{Profiles: make(map[string]domain.Profile)}
	var err error
	if cfg.LibraryDir, _, err = stringKey(raw, keyLibrary); err != nil {
		return domain.Config{}, err
	}
	if cfg.PrePrompt, cfg.HasPre, err = stringKey(raw, keyPrePrompt); err != nil {
		return domain.Config{}, err
	}
	if cfg.PostPrompt, cfg.HasPost, err = stringKey(raw, keyPostPrompt); err != nil {
		return domain.Config{}, err
	}

	if err := collectProfiles(nil, raw, cfg.Profiles); err != nil {
		return domain.Config{}, err
	}
	return cfg, nil
}

func collectProfiles(prefix []string, table map[string]interface{}, out map[string]domain.Profile) error {
	keys := make([]string, 0, len(table))
	for k := range table {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		sub, ok := table[key].(map[string]interface{})
		if !ok {
			continue
		}
		path := append(append([]string(nil), prefix...), key)
		name := strings.Join(path, ".")
		if deps, present := sub[keyDependsOn]; present {
			list, err := stringList(deps)
			if err != nil {
				return fmt.Errorf("profile %s: %s: %w", name, keyDependsOn, err)
			}
			out[name] = domain.Profile{Name: name, DependsOn: list}
		}
		if err := collectProfiles(path, sub, out); err != nil {
			return err
		}
	}
	return nil
}

func stringKey(raw map[string]interface{}, key string) (string, bool, error) {
	v, ok := raw[key]
	if !ok {
		return "", false, nil
	}
	s, ok := v.(string)
	if !ok {
		return "", false, fmt.Errorf("%s must be a string, got %T", key, v)
	}
	return s, true, nil
}

func stringList(v interface{}) ([]string, error) {
	items, ok := v.([]interface{})
	if !ok {
		return nil, fmt.Errorf("must be an array of strings, got %T", v)
	}
	out := make([]string, 0, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("entry %d must be a string, got %T", i, item)
		}
		out = append(out, s)
	}
	return out, nil
}

func resolveLibraryDir(configured, configDir string) string {
	if configured == "" {
		if env := os.Getenv(domain.EnvLibrary); env != "" {
			return filesystem.ExpandPath(env)
		}
		return DefaultLibraryDir()
	}
	expanded := filesystem.ExpandPath(configured)
	if filepath.IsAbs(expanded) {
		return expanded
	}
	return filepath.Join(configDir, expanded)
}

var _ ports.ConfigProvider = (*FileLoader)(nil)
