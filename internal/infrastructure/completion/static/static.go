// Package static renders fixed shell completion scripts from a cobra command
// tree. The scripts list flags, subcommands and positional placeholders known at
// build time; nothing in them is resolved dynamically.
//
// The block layout of every script is stable and is relied on by the
// augmenters in the parent completion package:
//   - bash: one `        <id>)` case arm per command, closed by a `            ;;` line
//   - zsh: one `'<name> -- <help>:_default'` spec per positional
//   - fish: `__fish_<program>_needs_command` / `__fish_<program>_using_subcommand` conditions
package static

import (
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/tftio/prompter/internal/domain"
)

// ErrUnsupportedShell is returned for shells without a generator.
var ErrUnsupportedShell = errors.New("unsupported shell")

// ArgHelpAnnotation prefixes a command annotation carrying help for a
// positional argument: Annotations[ArgHelpAnnotation+"profile"] = "...".
const ArgHelpAnnotation = "static.arg."

// Generate writes the static completion script for shell describing root.
func Generate(w io.Writer, shell domain.Shell, root *cobra.Command, program string) error {
	if program == "" {
		program = root.Name()
	}
	if shell == domain.ShellPowerShell {
		return root.GenPowerShellCompletionWithDesc(w)
	}

	tree := describe(root, program)
	var script string
	switch shell {
	case domain.ShellBash:
		script = bashScript(tree, program)
	case domain.ShellZsh:
		script = zshScript(tree, program)
	case domain.ShellFish:
		script = fishScript(tree, program)
	case domain.ShellElvish:
		script = elvishScript(tree, program)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedShell, shell)
	}
	_, err := io.WriteString(w, script)
	return err
}

// command is the shell-independent view of one cobra command.
type command struct {
	name  string
	id    string // "prompter", "prompter__run"
	path  []string
	short string
	flags []flagSpec
	args  []argSpec
	subs  []*command
}

type flagSpec struct {
	long      string
	short     string
	usage     string
	takesArg  bool
	filename  bool
	valueName string
}

type argSpec struct {
	name     string
	help     string
	required bool
	variadic bool
	values   []string
}

func (c *command) depth() int {
	return len(c.path) - 1
}

// walk visits c and its descendants in pre-order.
func (c *command) walk(fn func(*command)) {
	fn(c)
	for _, sub := range c.subs {
		sub.walk(fn)
	}
}

func describe(root *cobra.Command, program string) *command {
	root.InitDefaultHelpCmd()
	return describeCommand(root, []string{program})
}

func describeCommand(c *cobra.Command, path []string) *command {
	c.InitDefaultHelpFlag()

	out := &command{
		name:  path[len(path)-1],
		id:    Identifier(path...),
		path:  path,
		short: c.Short,
		args:  parseArgs(c),
	}

	c.LocalFlags().VisitAll(func(f *pflag.Flag) {
		if f.Hidden || f.Deprecated != "" {
			return
		}
		spec := flagSpec{
			long:     f.Name,
			short:    f.Shorthand,
			usage:    f.Usage,
			takesArg: f.NoOptDefVal == "",
		}
		if _, ok := f.Annotations[cobra.BashCompFilenameExt]; ok {
			spec.filename = true
		}
		if spec.takesArg {
			spec.valueName = strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
		}
		out.flags = append(out.flags, spec)
	})

	for _, sub := range c.Commands() {
		if !sub.IsAvailableCommand() && sub.Name() != "help" {
			continue
		}
		childPath := append(append([]string(nil), path...), sub.Name())
		out.subs = append(out.subs, describeCommand(sub, childPath))
	}
	return out
}

var useArg = regexp.MustCompile(`^([\[<])([A-Za-z0-9_-]+)(\.\.\.)?[\]>](\.\.\.)?$`)

// parseArgs reads positional arguments from the Use line:
// "[name]" is optional, "<name>" required, a "..." suffix makes it variadic.
func parseArgs(c *cobra.Command) []argSpec {
	fields := strings.Fields(c.Use)
	if len(fields) < 2 {
		return nil
	}
	var args []argSpec
	for _, field := range fields[1:] {
		m := useArg.FindStringSubmatch(field)
		if m == nil || m[2] == "flags" {
			continue
		}
		arg := argSpec{
			name:     m[2],
			help:     c.Annotations[ArgHelpAnnotation+m[2]],
			required: m[1] == "<",
			variadic: m[3] != "" || m[4] != "",
		}
		if !arg.variadic {
			arg.values = append(arg.values, c.ValidArgs...)
		}
		args = append(args, arg)
	}
	return args
}

// placeholder renders an argument the way usage lines show it: [PROFILE], <PROFILES>...
func (a argSpec) placeholder() string {
	name := strings.ToUpper(a.name)
	var s string
	if a.required {
		s = "<" + name + ">"
	} else {
		s = "[" + name + "]"
	}
	if a.variadic {
		s += "..."
	}
	return s
}

func (a argSpec) description() string {
	if a.help != "" {
		return a.help
	}
	return a.name
}

var nonIdent = regexp.MustCompile(`[^A-Za-z0-9_]`)

// Identifier joins a command path into the name used for case arms and
// function names: ["prompter", "run"] -> "prompter__run".
func Identifier(path ...string) string {
	parts := make([]string, len(path))
	for i, p := range path {
		parts[i] = nonIdent.ReplaceAllString(p, "_")
	}
	return strings.Join(parts, "__")
}
