package static

import (
	"fmt"
	"strings"
)

func fishScript(root *command, program string) string {
	var b strings.Builder
	fn := "__fish_" + root.id

	b.WriteString("# Print an optspec for argparse to handle cmd's options that are independent of any subcommand.\n")
	fmt.Fprintf(&b, "function %s_global_optspecs\n", fn)
	fmt.Fprintf(&b, "\tstring join \\n %s\n", strings.Join(fishOptspecs(root), " "))
	b.WriteString("end\n\n")

	fmt.Fprintf(&b, `function %[1]s_needs_command
	# Figure out if the current invocation already has a command.
	set -l cmd (commandline -opc)
	set -e cmd[1]
	argparse -s (%[1]s_global_optspecs) -- $cmd 2>/dev/null
	or return
	if set -q argv[1]
		# Also print the command, so this can be used to figure out what it is.
		echo $argv[1]
		return 1
	end
	return 0
end

function %[1]s_using_subcommand
	set -l cmd (%[1]s_needs_command)
	test -z "$cmd"
	and return 1
	contains -- $cmd[1] $argv
end

`, fn)

	root.walk(func(c *command) {
		cond := fishCondition(fn, c)
		for _, f := range c.flags {
			fmt.Fprintf(&b, "complete -c %s -n \"%s\"%s\n", program, cond, fishFlag(f))
		}
		for _, a := range c.args {
			if len(a.values) == 0 {
				continue
			}
			fmt.Fprintf(&b, "complete -c %s -n \"%s\" -f -a \"%s\" -d '%s'\n",
				program, cond, strings.Join(a.values, " "), fishEscape(a.description()))
		}
		for _, sub := range c.subs {
			fmt.Fprintf(&b, "complete -c %s -n \"%s\" -f -a \"%s\" -d '%s'\n",
				program, cond, sub.name, fishEscape(sub.short))
		}
	})
	return b.String()
}

// fishCondition selects the command a registration applies to. Commands below
// the first level also require their own name to have been typed.
func fishCondition(fn string, c *command) string {
	switch c.depth() {
	case 0:
		return fn + "_needs_command"
	case 1:
		return fn + "_using_subcommand " + c.name
	default:
		return fmt.Sprintf("%s_using_subcommand %s; and __fish_seen_subcommand_from %s", fn, c.path[1], c.name)
	}
}

func fishOptspecs(root *command) []string {
	specs := make([]string, 0, len(root.flags))
	for _, f := range root.flags {
		spec := f.long
		if f.short != "" {
			spec = f.short + "/" + f.long
		}
		if f.takesArg {
			spec += "="
		}
		specs = append(specs, spec)
	}
	return specs
}

func fishFlag(f flagSpec) string {
	var b strings.Builder
	if f.short != "" {
		fmt.Fprintf(&b, " -s %s", f.short)
	}
	fmt.Fprintf(&b, " -l %s -d '%s'", f.long, fishEscape(f.usage))
	if f.takesArg {
		b.WriteString(" -r")
		if f.filename {
			b.WriteString(" -F")
		}
	}
	return b.String()
}

var fishEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", " ")

func fishEscape(s string) string {
	return fishEscaper.Replace(s)
}
