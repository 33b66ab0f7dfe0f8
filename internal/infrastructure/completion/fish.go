package completion

const fishHelpers = `
function __fish_{{id}}__config_arg
	set -l tokens (commandline -opc)
	set -e tokens[1]
	for idx in (seq (count $tokens))
		switch $tokens[$idx]
			case '--config=*'
				string replace -r -- '^--config=' '' $tokens[$idx]
				return
			case '--config' '-c'
				set -l next (math $idx + 1)
				if test $next -le (count $tokens)
					echo $tokens[$next]
				end
				return
		end
	end
end

function __fish_{{id}}__profiles
	set -l cfg (__fish_{{id}}__config_arg)
	if test -n "$cfg"
		{{bin}} list --config "$cfg" 2>/dev/null
	else
		{{bin}} list 2>/dev/null
	end
end

complete -c {{bin}} -n "__fish_{{id}}_needs_command" -f -a "(__fish_{{id}}__profiles)" -d 'Profile'
complete -c {{bin}} -n "__fish_{{id}}_using_subcommand run" -f -a "(__fish_{{id}}__profiles)" -d 'Profile'
`

func (a *Augmenter) fish(script, program string) (string, error) {
	return script + expand(fishHelpers, program), nil
}
