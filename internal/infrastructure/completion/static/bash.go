package static

import (
	"fmt"
	"strings"
)

func bashScript(root *command, program string) string {
	var b strings.Builder
	fn := "_" + root.id

	fmt.Fprintf(&b, "%s() {\n", fn)
	b.WriteString(`    local i cur prev opts cmd
    COMPREPLY=()
    if [[ "${BASH_VERSINFO[0]}" -ge 4 ]]; then
        cur="$2"
    else
        cur="${COMP_WORDS[COMP_CWORD]}"
    fi
    prev="$3"
    cmd=""
    opts=""

    for i in "${COMP_WORDS[@]:0:COMP_CWORD}"
    do
        case "${cmd},${i}" in
            ",$1")
`)
	fmt.Fprintf(&b, "                cmd=%q\n", root.id)
	b.WriteString("                ;;\n")

	root.walk(func(c *command) {
		for _, sub := range c.subs {
			fmt.Fprintf(&b, "            %s,%s)\n", c.id, sub.name)
			fmt.Fprintf(&b, "                cmd=%q\n", sub.id)
			b.WriteString("                ;;\n")
		}
	})

	b.WriteString(`            *)
                ;;
        esac
    done

    case "${cmd}" in
`)
	root.walk(func(c *command) {
		writeBashBlock(&b, c)
	})
	b.WriteString("    esac\n}\n\n")

	fmt.Fprintf(&b, `if [[ "${BASH_VERSINFO[0]}" -eq 4 && "${BASH_VERSINFO[1]}" -ge 4 || "${BASH_VERSINFO[0]}" -gt 4 ]]; then
    complete -F %[1]s -o nosort -o bashdefault -o default %[2]s
else
    complete -F %[1]s -o bashdefault -o default %[2]s
fi
`, fn, program)
	return b.String()
}

// writeBashBlock emits the case arm for one command. The arm opens with an
// 8-space "<id>)" line and closes with a 12-space ";;" line.
func writeBashBlock(b *strings.Builder, c *command) {
	fmt.Fprintf(b, "        %s)\n", c.id)
	fmt.Fprintf(b, "            opts=\"%s\"\n", strings.Join(bashWords(c), " "))
	fmt.Fprintf(b, "            if [[ ${cur} == -* || ${COMP_CWORD} -eq %d ]] ; then\n", c.depth()+1)
	b.WriteString("                COMPREPLY=( $(compgen -W \"${opts}\" -- \"${cur}\") )\n")
	b.WriteString("                return 0\n")
	b.WriteString("            fi\n")
	b.WriteString("            case \"${prev}\" in\n")
	for _, f := range c.flags {
		if !f.takesArg {
			continue
		}
		for _, name := range []string{"--" + f.long, shortName(f)} {
			if name == "" {
				continue
			}
			fmt.Fprintf(b, "                %s)\n", name)
			b.WriteString("                    COMPREPLY=($(compgen -f \"${cur}\"))\n")
			b.WriteString("                    return 0\n")
			b.WriteString("                    ;;\n")
		}
	}
	b.WriteString("                *)\n")
	b.WriteString("                    COMPREPLY=()\n")
	b.WriteString("                    ;;\n")
	b.WriteString("            esac\n")
	b.WriteString("            COMPREPLY=( $(compgen -W \"${opts}\" -- \"${cur}\") )\n")
	b.WriteString("            return 0\n")
	b.WriteString("            ;;\n")
}

// bashWords lists short flags, long flags, positional placeholders, then subcommands.
func bashWords(c *command) []string {
	var words []string
	for _, f := range c.flags {
		if s := shortName(f); s != "" {
			words = append(words, s)
		}
	}
	for _, f := range c.flags {
		words = append(words, "--"+f.long)
	}
	for _, a := range c.args {
		if len(a.values) > 0 {
			words = append(words, a.values...)
			continue
		}
		words = append(words, a.placeholder())
	}
	for _, sub := range c.subs {
		words = append(words, sub.name)
	}
	return words
}

func shortName(f flagSpec) string {
	if f.short == "" {
		return ""
	}
	return "-" + f.short
}
