package completion

import (
	"github.com/tftio/prompter/internal/domain"
	"github.com/tftio/prompter/internal/infrastructure/completion/static"
)

// bashTerminator closes a top-level case arm in the generated bash script.
const bashTerminator = "\n            ;;\n"

// Static candidates offered alongside dynamic profile names. These mirror the
// root and run grammar; see TestBashOptsMatchGrammar.
const (
	bashRootOpts = "-s -p -P -c -V -h --separator --pre-prompt --post-prompt --config --version --help " +
		"completions doctor help init license list run tree update validate version"
	bashRunOpts = "-s -p -P -c -h --separator --pre-prompt --post-prompt --config --json --help"
)

const bashRootBlock = `        {{id}})
            opts="` + bashRootOpts + `"
            if [[ ${cur} == -* ]]; then
                COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
                return 0
            fi
            case "${prev}" in
                --config|-c)
                    COMPREPLY=( $(compgen -f -- "${cur}") )
                    return 0
                    ;;
                --separator|-s|--pre-prompt|-p|--post-prompt|-P)
                    return 0
                    ;;
            esac
            local profiles="$(__{{id}}_bash_list_profiles)"
            if [[ -n ${profiles} ]]; then
                COMPREPLY=( $(compgen -W "${opts} ${profiles}" -- "${cur}") )
            else
                COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
            fi
            return 0
            ;;
`

const bashRunBlock = `        {{id}}__run)
            opts="` + bashRunOpts + `"
            if [[ ${cur} == -* ]]; then
                COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
                return 0
            fi
            case "${prev}" in
                --config|-c)
                    COMPREPLY=( $(compgen -f -- "${cur}") )
                    return 0
                    ;;
                --separator|-s|--pre-prompt|-p|--post-prompt|-P)
                    return 0
                    ;;
            esac
            local profiles="$(__{{id}}_bash_list_profiles)"
            if [[ -n ${profiles} ]]; then
                COMPREPLY=( $(compgen -W "${profiles}" -- "${cur}") )
            fi
            return 0
            ;;
`

const bashHelpers = `
# Dynamic profile helpers appended by {{bin}}.
__{{id}}_bash_config_value() {
    local idx=1
    local total=${#COMP_WORDS[@]}
    while [[ ${idx} -lt ${total} ]]; do
        case "${COMP_WORDS[idx]}" in
            --config=*)
                echo "${COMP_WORDS[idx]#--config=}"
                return
                ;;
            --config|-c)
                ((idx++))
                if [[ ${idx} -lt ${total} && "${COMP_WORDS[idx]}" == "=" ]]; then
                    ((idx++))
                fi
                if [[ ${idx} -lt ${total} ]]; then
                    echo "${COMP_WORDS[idx]}"
                fi
                return
                ;;
        esac
        ((idx++))
    done
}

__{{id}}_bash_list_profiles() {
    local cfg="$(__{{id}}_bash_config_value)"
    if [[ -n "${cfg}" ]]; then
        {{bin}} list --config "${cfg}" 2>/dev/null
    else
        {{bin}} list 2>/dev/null
    fi
}
`

func bashAnchors(program string) []AnchorSpec {
	id := static.Identifier(program)
	run := static.Identifier(program, domain.RunCommandName)
	return []AnchorSpec{
		{
			Label:       id,
			Start:       "        " + id + ")",
			Terminator:  bashTerminator,
			Replacement: expand(bashRootBlock, program),
		},
		{
			Label:       run,
			Start:       "        " + run + ")",
			Terminator:  bashTerminator,
			Replacement: expand(bashRunBlock, program),
		},
	}
}

func (a *Augmenter) bash(script, program string) (string, error) {
	for _, spec := range bashAnchors(program) {
		patched, err := ReplaceBlock(script, spec)
		if err != nil {
			return "", err
		}
		a.logger().Debug("patched completion block", map[string]interface{}{"shell": "bash", "label": spec.Label})
		script = patched
	}
	return script + expand(bashHelpers, program), nil
}
