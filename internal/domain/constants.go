package domain

// File permissions constants
const (
	// DirectoryPermissions is the default permission for directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// FilePermissions is the permission for generated config, library and script files (rw-r--r--)
	FilePermissions = 0o644
)

// Program identity
const (
	// ProgramName is the declared name of the command grammar.
	ProgramName = "prompter"
	// RunCommandName is the subcommand whose arguments are profile names.
	RunCommandName = "run"
	// ListCommandName is the subcommand the emitted completion helpers invoke.
	ListCommandName = "list"
)

// Environment variables
const (
	EnvConfig  = "PROMPTER_CONFIG"
	EnvLibrary = "PROMPTER_LIBRARY"
	EnvDebug   = "PROMPTER_DEBUG"
)

// Rendering defaults
const (
	// DefaultSeparator is inserted between rendered library files.
	DefaultSeparator = "\n"
	// DefaultPrePrompt opens every rendered document unless overridden.
	DefaultPrePrompt = "You are an LLM coding agent. Here are invariants that you must adhere to. " +
		"Please respond with 'Got it' when you have studied these and understand them. " +
		"At that point, the operator will give you further instructions. " +
		"You are *not* to do anything to the contents of this directory until you have been " +
		"explicitly asked to, by the operator.\n\n"
	// DefaultPostPromptFormat closes every rendered document; it takes date, arch and os.
	DefaultPostPromptFormat = "\nToday is %s, and you are running on a %s/%s system.\n"
	// DateFormat is the layout used for the date in the default post-prompt.
	DateFormat = "2006-01-02"
)
