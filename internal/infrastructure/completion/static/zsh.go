package static

import (
	"fmt"
	"strings"
)

func zshScript(root *command, program string) string {
	var b strings.Builder
	fn := "_" + root.id

	fmt.Fprintf(&b, "#compdef %s\n\nautoload -U is-at-least\n\n", program)
	fmt.Fprintf(&b, "%s() {\n", fn)
	b.WriteString(`    typeset -A opt_args
    typeset -a _arguments_options
    local ret=1

    if is-at-least 5.2; then
        _arguments_options=(-s -S -C)
    else
        _arguments_options=(-s -C)
    fi

    local context curcontext="$curcontext" state line
`)
	writeZshArguments(&b, root, "    ")
	b.WriteString("}\n\n")

	root.walk(func(c *command) {
		if len(c.subs) == 0 {
			return
		}
		fmt.Fprintf(&b, "(( $+functions[_%s_commands] )) ||\n", c.id)
		fmt.Fprintf(&b, "_%s_commands() {\n", c.id)
		b.WriteString("    local commands; commands=(\n")
		for _, sub := range c.subs {
			fmt.Fprintf(&b, "'%s:%s' \\\n", sub.name, zshEscape(sub.short))
		}
		b.WriteString("    )\n")
		fmt.Fprintf(&b, "    _describe -t commands '%s commands' commands \"$@\"\n", strings.Join(c.path, " "))
		b.WriteString("}\n")
	})

	fmt.Fprintf(&b, `
if [ "$funcstack[1]" = "%[1]s" ]; then
    %[1]s "$@"
else
    compdef %[1]s %[2]s
fi
`, fn, program)
	return b.String()
}

func writeZshArguments(b *strings.Builder, c *command, indent string) {
	if c.depth() == 0 {
		b.WriteString(indent)
	}
	b.WriteString("_arguments \"${_arguments_options[@]}\" : \\\n")
	for _, f := range c.flags {
		for _, spec := range zshFlagSpecs(f) {
			fmt.Fprintf(b, "'%s' \\\n", spec)
		}
	}
	for _, a := range c.args {
		fmt.Fprintf(b, "'%s' \\\n", zshArgSpec(a))
	}
	if len(c.subs) > 0 {
		fmt.Fprintf(b, "\":: :_%s_commands\" \\\n", c.id)
		fmt.Fprintf(b, "\"*::: :->%s\" \\\n", c.name)
	}
	b.WriteString("&& ret=0\n")
	if len(c.subs) == 0 {
		return
	}

	line := len(c.args) + 1
	fmt.Fprintf(b, "%scase $state in\n", indent)
	fmt.Fprintf(b, "%s(%s)\n", indent, c.name)
	fmt.Fprintf(b, "%s    words=($line[%d] \"${words[@]}\")\n", indent, line)
	fmt.Fprintf(b, "%s    (( CURRENT += 1 ))\n", indent)
	fmt.Fprintf(b, "%s    curcontext=\"${curcontext%%:*:*}:%s-command-$line[%d]:\"\n", indent, strings.Join(c.path, "-"), line)
	fmt.Fprintf(b, "%s    case $line[%d] in\n", indent, line)
	for _, sub := range c.subs {
		fmt.Fprintf(b, "%s        (%s)\n", indent, sub.name)
		writeZshArguments(b, sub, indent+"        ")
		b.WriteString(";;\n")
	}
	fmt.Fprintf(b, "%s    esac\n", indent)
	fmt.Fprintf(b, "%s;;\n", indent)
	fmt.Fprintf(b, "%sesac\n", indent)
}

func zshFlagSpecs(f flagSpec) []string {
	help := "[" + zshEscape(f.usage) + "]"
	action := ""
	if f.takesArg {
		completer := "_default"
		if f.filename {
			completer = "_files"
		}
		action = ":" + f.valueName + ":" + completer
	}

	var specs []string
	if f.short != "" {
		sep := ""
		if f.takesArg {
			sep = "+"
		}
		specs = append(specs, "-"+f.short+sep+help+action)
	}
	sep := ""
	if f.takesArg {
		sep = "="
	}
	specs = append(specs, "--"+f.long+sep+help+action)
	return specs
}

// zshArgSpec renders a positional: "::name -- help:_default" for optional,
// ":name -- help:_default" for required, "*::name -- help:_default" for variadic.
func zshArgSpec(a argSpec) string {
	prefix := ":"
	if !a.required {
		prefix = "::"
	}
	if a.variadic {
		prefix = "*::"
	}
	action := "_default"
	if len(a.values) > 0 {
		action = "(" + strings.Join(a.values, " ") + ")"
	}
	return fmt.Sprintf("%s%s -- %s:%s", prefix, a.name, zshEscape(a.description()), action)
}

var zshEscaper = strings.NewReplacer(
	`'`, `'\''`,
	`[`, `\[`,
	`]`, `\]`,
	`:`, `\:`,
	"\n", " ",
)

func zshEscape(s string) string {
	return zshEscaper.Replace(s)
}
