package static

import (
	"fmt"
	"strings"
)

func elvishScript(root *command, program string) string {
	var b strings.Builder
	b.WriteString("\nuse builtin;\nuse str;\n\n")
	fmt.Fprintf(&b, "set edit:completion:arg-completer[%s] = {|@words|\n", program)
	b.WriteString(`    fn spaces {|n|
        builtin:repeat $n ' ' | str:join ''
    }
    fn cand {|text desc|
        edit:complex-candidate $text &display=$text' '(spaces (- 14 (wcswidth $text)))$desc
    }
`)
	fmt.Fprintf(&b, "    var command = '%s'\n", program)
	b.WriteString(`    for word $words[1..-1] {
        if (str:has-prefix $word '-') {
            break
        }
        set command = $command';'$word
    }
    var completions = [
`)
	root.walk(func(c *command) {
		fmt.Fprintf(&b, "        &'%s'= {\n", strings.Join(c.path, ";"))
		for _, f := range c.flags {
			if f.short != "" {
				fmt.Fprintf(&b, "            cand -%s '%s'\n", f.short, elvishEscape(f.usage))
			}
			fmt.Fprintf(&b, "            cand --%s '%s'\n", f.long, elvishEscape(f.usage))
		}
		for _, a := range c.args {
			for _, v := range a.values {
				fmt.Fprintf(&b, "            cand %s '%s'\n", v, elvishEscape(a.description()))
			}
		}
		for _, sub := range c.subs {
			fmt.Fprintf(&b, "            cand %s '%s'\n", sub.name, elvishEscape(sub.short))
		}
		b.WriteString("        }\n")
	})
	b.WriteString("    ]\n    $completions[$command]\n}\n")
	return b.String()
}

func elvishEscape(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "'", "''"), "\n", " ")
}
