package static

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"mvdan.cc/sh/v3/syntax"

	"github.com/tftio/prompter/internal/domain"
)

func testTree() *cobra.Command {
	root := &cobra.Command{
		Use:         "tool [item]",
		Annotations: map[string]string{ArgHelpAnnotation + "item": "Item to show"},
		Run:         func(*cobra.Command, []string) {},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.Flags().SortFlags = false
	root.Flags().StringP("config", "c", "", "Path to config file")
	_ = root.MarkFlagFilename("config")
	root.Flags().BoolP("quiet", "q", false, "Be quiet")

	get := &cobra.Command{
		Use:   "get <names>...",
		Short: "Fetch things",
		Run:   func(*cobra.Command, []string) {},
	}
	get.Flags().Bool("json", false, "Output as JSON")

	mode := &cobra.Command{
		Use:       "mode <kind>",
		Short:     "Pick a mode",
		ValidArgs: []string{"fast", "slow"},
		Run:       func(*cobra.Command, []string) {},
	}
	deep := &cobra.Command{Use: "deep", Short: "Nested command", Run: func(*cobra.Command, []string) {}}
	mode.AddCommand(deep)

	hidden := &cobra.Command{Use: "secret", Hidden: true, Run: func(*cobra.Command, []string) {}}
	root.AddCommand(get, mode, hidden)
	return root
}

func render(t *testing.T, shell domain.Shell) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, Generate(&buf, shell, testTree(), "tool"))
	return buf.String()
}

func TestIdentifier(t *testing.T) {
	assert.Equal(t, "tool", Identifier("tool"))
	assert.Equal(t, "tool__run", Identifier("tool", "run"))
	assert.Equal(t, "my_tool__sub_cmd", Identifier("my-tool", "sub.cmd"))
}

func TestParseArgs(t *testing.T) {
	tests := []struct {
		use  string
		want []argSpec
	}{
		{use: "x", want: nil},
		{use: "x [flags]", want: nil},
		{use: "x [item]", want: []argSpec{{name: "item"}}},
		{use: "x <item>", want: []argSpec{{name: "item", required: true}}},
		{use: "x <items>...", want: []argSpec{{name: "items", required: true, variadic: true}}},
		{use: "x [items...]", want: []argSpec{{name: "items", variadic: true}}},
		{use: "x <a> [b]", want: []argSpec{{name: "a", required: true}, {name: "b"}}},
	}
	for _, tt := range tests {
		t.Run(tt.use, func(t *testing.T) {
			assert.Equal(t, tt.want, parseArgs(&cobra.Command{Use: tt.use}))
		})
	}
}

func TestPlaceholder(t *testing.T) {
	assert.Equal(t, "[PROFILE]", argSpec{name: "profile"}.placeholder())
	assert.Equal(t, "<PROFILES>...", argSpec{name: "profiles", required: true, variadic: true}.placeholder())
}

func TestDescribeSkipsHiddenCommands(t *testing.T) {
	tree := describe(testTree(), "tool")
	var names []string
	for _, sub := range tree.subs {
		names = append(names, sub.name)
	}
	assert.Equal(t, []string{"get", "help", "mode"}, names)
	assert.Equal(t, []string{"config", "quiet", "help"}, longNames(tree.flags))
	assert.True(t, tree.flags[0].takesArg)
	assert.True(t, tree.flags[0].filename)
	assert.False(t, tree.flags[1].takesArg)
}

func longNames(flags []flagSpec) []string {
	out := make([]string, 0, len(flags))
	for _, f := range flags {
		out = append(out, f.long)
	}
	return out
}

func TestBashArmsHaveStableShape(t *testing.T) {
	script := render(t, domain.ShellBash)

	for _, id := range []string{"tool", "tool__get", "tool__help", "tool__mode", "tool__mode__deep"} {
		start := strings.Index(script, "\n        "+id+")\n")
		require.GreaterOrEqual(t, start, 0, id)
		assert.Contains(t, script[start:], "\n            ;;\n", id)
	}
	assert.Contains(t, script, `opts="-c -q -h --config --quiet --help [ITEM] get help mode"`)
	assert.Contains(t, script, `opts="-h --help --json <NAMES>..."`)
	assert.Contains(t, script, `opts="-h --help fast slow deep"`)
	assert.Contains(t, script, "            tool__mode,deep)\n                cmd=\"tool__mode__deep\"\n")
	assert.Contains(t, script, "complete -F _tool -o bashdefault -o default tool")
	assert.NotContains(t, script, "secret")

	_, err := syntax.NewParser(syntax.Variant(syntax.LangBash)).Parse(strings.NewReader(script), "")
	require.NoError(t, err)
}

func TestZshSpecs(t *testing.T) {
	script := render(t, domain.ShellZsh)

	assert.True(t, strings.HasPrefix(script, "#compdef tool\n"))
	assert.Contains(t, script, "'-c+[Path to config file]:CONFIG:_files' \\\n")
	assert.Contains(t, script, "'--config=[Path to config file]:CONFIG:_files' \\\n")
	assert.Contains(t, script, "'-q[Be quiet]' \\\n")
	assert.Contains(t, script, "'::item -- Item to show:_default' \\\n")
	assert.Contains(t, script, "'*::names -- names:_default' \\\n")
	assert.Contains(t, script, "':kind -- kind:(fast slow)' \\\n")
	assert.Contains(t, script, "_tool__mode_commands() {")
	assert.Contains(t, script, "compdef _tool tool")
}

func TestZshEscape(t *testing.T) {
	assert.Equal(t, `it'\''s \[a\]\: b c`, zshEscape("it's [a]: b\nc"))
}

func TestFishConditions(t *testing.T) {
	script := render(t, domain.ShellFish)

	assert.Contains(t, script, "string join \\n c/config= q/quiet h/help\n")
	assert.Contains(t, script, `complete -c tool -n "__fish_tool_needs_command" -s c -l config -d 'Path to config file' -r -F`)
	assert.Contains(t, script, `complete -c tool -n "__fish_tool_needs_command" -f -a "get" -d 'Fetch things'`)
	assert.Contains(t, script, `complete -c tool -n "__fish_tool_using_subcommand mode" -f -a "fast slow" -d 'kind'`)
	assert.Contains(t, script, `complete -c tool -n "__fish_tool_using_subcommand mode" -f -a "deep" -d 'Nested command'`)
	assert.Contains(t, script, `__fish_tool_using_subcommand mode; and __fish_seen_subcommand_from deep`)
}

func TestElvishCandidates(t *testing.T) {
	script := render(t, domain.ShellElvish)

	assert.Contains(t, script, "set edit:completion:arg-completer[tool] = {|@words|")
	assert.Contains(t, script, "        &'tool;mode'= {\n")
	assert.Contains(t, script, "            cand fast 'kind'\n")
	assert.Contains(t, script, "            cand --config 'Path to config file'\n")
}

func TestPowerShellUsesCobra(t *testing.T) {
	script := render(t, domain.ShellPowerShell)
	assert.Contains(t, script, "Register-ArgumentCompleter")
}

func TestUnsupportedShell(t *testing.T) {
	var buf bytes.Buffer
	err := Generate(&buf, domain.Shell("tcsh"), testTree(), "tool")
	require.ErrorIs(t, err, ErrUnsupportedShell)
	assert.Zero(t, buf.Len())
}
