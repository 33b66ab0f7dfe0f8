package domain

// Config mirrors ~/.config/prompter/config.toml after decoding.
type Config struct {
	// Path is the file the configuration was read from.
	Path string
	// LibraryDir is the resolved directory holding profile files.
	LibraryDir string
	PrePrompt  string
	PostPrompt string
	HasPre     bool
	HasPost    bool
	Profiles   map[string]Profile
}

// Profile is a named list of dependencies. Entries ending in FileSuffix name
// library files; anything else names another profile.
type Profile struct {
	Name      string   `json:"name" yaml:"name"`
	DependsOn []string `json:"depends_on" yaml:"depends_on"`
}

// FileSuffix marks a dependency as a library file.
const FileSuffix = ".md"

// Lookup returns the named profile.
func (c Config) Lookup(name string) (Profile, bool) {
	p, ok := c.Profiles[name]
	return p, ok
}
