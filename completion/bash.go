package completion

import (
	"fmt"
	"strings"
)

// BashGenerator renders a bash completion function. Flag arguments are
// completed from FlagValues, file arguments through _filedir, and
// subcommands level by level from the command words seen on the line.
type BashGenerator struct{}

func (g *BashGenerator) Generate(programName string, data CompletionData) string {
	var script strings.Builder

	fmt.Fprintf(&script, `#!/bin/bash

function __%[1]s_completion() {
    local cur prev path
    _init_completion || return

    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    path=""

    for ((i=1; i < COMP_CWORD; i++)); do
        if [[ "${COMP_WORDS[i]}" != -* ]]; then
            path="${path:+$path }${COMP_WORDS[i]}"
        fi
    done

    case "${prev}" in`, programName)

	g.writeArgumentCases(&script, data.Flags, data.FlagValues)
	for _, cmd := range data.Commands {
		g.writeArgumentCases(&script, data.CommandFlags[cmd], data.FlagValues)
	}

	script.WriteString(`
    esac

    if [[ "$cur" == -* ]]; then
        local flags=(` + strings.Join(dashedNames(data.Flags), " ") + `)
        case "${path}" in`)

	for _, cmd := range data.Commands {
		flags := data.CommandFlags[cmd]
		if len(flags) == 0 {
			continue
		}
		fmt.Fprintf(&script, `
            %q)
                flags+=(%s)
                ;;`, cmd, strings.Join(dashedNames(flags), " "))
	}

	script.WriteString(`
        esac
        COMPREPLY=( $(compgen -W "${flags[*]}" -- "$cur") )
        return
    fi
`)

	parents, children := commandChildren(data.Commands)
	if len(parents) > 0 {
		script.WriteString(`
    case "${path}" in`)
		for _, parent := range parents {
			fmt.Fprintf(&script, `
        %q)
            COMPREPLY=( $(compgen -W %q -- "$cur") )
            ;;`, parent, strings.Join(children[parent], " "))
		}
		script.WriteString(`
    esac`)
	}

	fmt.Fprintf(&script, `
}

complete -F __%[1]s_completion %[1]s
`, programName)

	return script.String()
}

// writeArgumentCases emits one case arm per flag whose argument bash
// can complete. A duplicate arm for a flag listed on several commands
// is dead text; the first arm wins.
func (g *BashGenerator) writeArgumentCases(script *strings.Builder, flags []FlagPair, values map[string][]CompletionValue) {
	for _, flag := range flags {
		label := strings.Join(spellings(flag), "|")
		if label == "" {
			continue
		}
		if flag.Type == FlagTypeFile {
			fmt.Fprintf(script, `
        %s)
            _filedir
            return
            ;;`, label)
			continue
		}
		vals := values[flag.key()]
		if len(vals) == 0 {
			continue
		}
		words := make([]string, len(vals))
		for i, v := range vals {
			words[i] = v.Pattern
		}
		fmt.Fprintf(script, `
        %s)
            COMPREPLY=( $(compgen -W %q -- "$cur") )
            return
            ;;`, label, strings.Join(words, " "))
	}
}
