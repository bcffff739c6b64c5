package completion

import (
	"fmt"
	"strings"
)

// FishGenerator renders fish complete commands, one per flag, command
// and candidate value. File-typed flags keep fish's default file
// completion; everything else passes -f.
type FishGenerator struct{}

func (g *FishGenerator) Generate(programName string, data CompletionData) string {
	var script strings.Builder
	fmt.Fprintf(&script, "# %s completions\n", programName)

	for _, flag := range data.Flags {
		g.writeFlag(&script, programName, "", flag, data.FlagValues[flag.key()])
	}

	for _, cmd := range data.Commands {
		desc := escapeFish(data.CommandDescriptions[cmd])
		if i := strings.LastIndex(cmd, " "); i >= 0 {
			fmt.Fprintf(&script,
				"complete -c %s -f -n '__fish_seen_subcommand_from %s' -a '%s' -d '%s'\n",
				programName, cmd[:i], cmd[i+1:], desc)
		} else {
			fmt.Fprintf(&script,
				"complete -c %s -f -n '__fish_use_subcommand' -a '%s' -d '%s'\n",
				programName, cmd, desc)
		}
	}

	for _, cmd := range data.Commands {
		for _, flag := range data.CommandFlags[cmd] {
			g.writeFlag(&script, programName, cmd, flag, data.FlagValues[flag.key()])
		}
	}

	return script.String()
}

// writeFlag emits the flag's complete command followed by one per
// candidate value. cmd scopes the flag to a command path, "" means
// global.
func (g *FishGenerator) writeFlag(script *strings.Builder, programName, cmd string, flag FlagPair, values []CompletionValue) {
	fmt.Fprintf(script, "complete -c %s", programName)
	if flag.Type != FlagTypeFile {
		script.WriteString(" -f")
	}
	if cmd != "" {
		fmt.Fprintf(script, " -n '__fish_seen_subcommand_from %s'", cmd)
	}
	script.WriteString(flagClause(flag))
	fmt.Fprintf(script, " -d '%s'\n", escapeFish(flag.Description))

	for _, val := range values {
		fmt.Fprintf(script, "complete -c %s -f", programName)
		if cmd != "" {
			fmt.Fprintf(script, " -n '__fish_seen_subcommand_from %s'", cmd)
		}
		fmt.Fprintf(script, " -n '__fish_seen_argument%s'", flagClause(flag))
		fmt.Fprintf(script, " -a '%s' -d '%s'\n", val.Pattern, escapeFish(val.Description))
	}
}

// flagClause renders the -l/-s selectors for the flag's spellings.
func flagClause(flag FlagPair) string {
	switch {
	case flag.Long != "" && flag.Short != "":
		return fmt.Sprintf(" -l %s -s %s", flag.Long, flag.Short)
	case flag.Short != "":
		return fmt.Sprintf(" -s %s", flag.Short)
	default:
		return fmt.Sprintf(" -l %s", flag.Long)
	}
}
