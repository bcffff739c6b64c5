package completion

import (
	"fmt"
	"strings"
)

// ZshGenerator renders a zsh completion function built on _arguments
// states. Flags carry both spellings, file arguments complete through
// _files and candidate values render as value lists. Flag completion
// below the first command level is name-only.
type ZshGenerator struct{}

func (g *ZshGenerator) Generate(programName string, data CompletionData) string {
	var script strings.Builder
	_, children := commandChildren(data.Commands)
	topLevel := children[""]

	fmt.Fprintf(&script, `#compdef %[1]s

__%[1]s_completion() {
    local curcontext="$curcontext" state line
    typeset -A opt_args

    _arguments -C`, programName)

	for _, flag := range data.Flags {
		script.WriteString(" \\\n        " + zshFlagSpec(flag, data.FlagValues[flag.key()]))
	}
	script.WriteString(" \\\n        '1: :->command' \\\n        '*:: :->args'\n")

	script.WriteString(`
    case $state in
        command)
            _values 'commands'`)
	for _, cmd := range topLevel {
		fmt.Fprintf(&script, " \\\n                \"%s[%s]\"", cmd, escapeZsh(data.CommandDescriptions[cmd]))
	}
	script.WriteString(`
            ;;
        args)
            case $words[1] in`)

	for _, cmd := range topLevel {
		flags := data.CommandFlags[cmd]
		kids := children[cmd]
		if len(flags) == 0 && len(kids) == 0 {
			continue
		}
		fmt.Fprintf(&script, `
                %s)
                    _arguments`, cmd)
		for _, flag := range flags {
			script.WriteString(" \\\n                        " + zshFlagSpec(flag, data.FlagValues[flag.key()]))
		}
		if len(kids) > 0 {
			fmt.Fprintf(&script, " \\\n                        \"1:subcommand:(%s)\"", strings.Join(kids, " "))
		}
		script.WriteString(`
                    ;;`)
	}

	fmt.Fprintf(&script, `
            esac
            ;;
    esac
}

__%[1]s_completion "$@"
`, programName)

	return script.String()
}

// zshFlagSpec renders one _arguments spec: exclusion list for paired
// spellings, bracketed description, and the argument action when one
// applies.
func zshFlagSpec(flag FlagPair, values []CompletionValue) string {
	action := ""
	switch {
	case flag.Type == FlagTypeFile:
		action = ":file:_files"
	case len(values) > 0:
		list := make([]string, len(values))
		for i, v := range values {
			if v.Description == "" {
				list[i] = v.Pattern
				continue
			}
			list[i] = v.Pattern + `\:` + strings.ReplaceAll(escapeZsh(v.Description), " ", `\ `)
		}
		action = ":value:(" + strings.Join(list, " ") + ")"
	}
	desc := escapeZsh(flag.Description)
	switch {
	case flag.Long != "" && flag.Short != "":
		return fmt.Sprintf(`"(-%[1]s --%[2]s)"{-%[1]s,--%[2]s}"[%[3]s]%[4]s"`, flag.Short, flag.Long, desc, action)
	case flag.Long != "":
		return fmt.Sprintf(`"--%s[%s]%s"`, flag.Long, desc, action)
	default:
		return fmt.Sprintf(`"-%s[%s]%s"`, flag.Short, desc, action)
	}
}
