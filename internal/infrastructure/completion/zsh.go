package completion

// Positional specs emitted by the static zsh generator for the root shorthand
// profile and run's profiles.
const (
	zshRootMarker = "::profile -- Profile to render (shorthand for run <profile>):"
	zshRunMarker  = "*::profiles -- Profile name(s) to render:"
	zshDefault    = "_default"
)

const zshHelpers = `
_{{id}}_config_value() {
    local idx=1
    local count=$#words
    while (( idx <= count )); do
        case ${words[idx]} in
            --config=*)
                echo ${words[idx]#--config=}
                return
                ;;
            --config|-c)
                (( idx++ ))
                if (( idx <= count )); then
                    echo ${words[idx]}
                fi
                return
                ;;
        esac
        (( idx++ ))
    done
}

_{{id}}_dynamic_profiles() {
    local cfg=$(_{{id}}_config_value)
    local -a profiles
    if [[ -n ${cfg} ]]; then
        profiles=(${(f)"$({{bin}} list --config ${cfg:q} 2>/dev/null)"})
    else
        profiles=(${(f)"$({{bin}} list 2>/dev/null)"})
    fi
    if (( ${#profiles} )); then
        compadd -a profiles
        return 0
    fi
    return 1
}
`

// zshDynamicCompleter names the completion function appended by zshHelpers.
func zshDynamicCompleter(program string) string {
	return expand("_{{id}}_dynamic_profiles", program)
}

func (a *Augmenter) zsh(script, program string) (string, error) {
	completer := zshDynamicCompleter(program)
	for _, marker := range []string{zshRootMarker, zshRunMarker} {
		patched, ok := ReplaceMarker(script, marker+zshDefault, marker+completer)
		if !ok {
			a.logger().Debug("zsh profile marker not found", map[string]interface{}{"marker": marker})
			continue
		}
		script = patched
	}
	return script + expand(zshHelpers, program), nil
}
