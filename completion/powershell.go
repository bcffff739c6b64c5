package completion

import (
	"fmt"
	"strings"
)

// PowerShellGenerator renders a Register-ArgumentCompleter script
// block. Commands and flags complete with descriptions, candidate
// values after their flag, subcommands after their parent command.
type PowerShellGenerator struct{}

func (g *PowerShellGenerator) Generate(programName string, data CompletionData) string {
	var script strings.Builder
	parents, children := commandChildren(data.Commands)

	fmt.Fprintf(&script, `Register-ArgumentCompleter -Native -CommandName %s -ScriptBlock {
    param($commandName, $wordToComplete, $cursorPosition)
    $commandElements = $wordToComplete -split "\s+"

    if ($wordToComplete -eq '') {
        @(`, programName)

	for _, cmd := range children[""] {
		writeResult(&script, "            ", cmd, cmd, "Command", data.CommandDescriptions[cmd])
	}

	script.WriteString(`
        )
        return
    }
`)

	g.writeValueBlocks(&script, data)

	script.WriteString(`
    $cmd = ""
    for ($i = 1; $i -lt $commandElements.Count; $i++) {
        if (!$commandElements[$i].StartsWith('-')) {
            $cmd = $commandElements[$i]
            break
        }
    }

    if ($wordToComplete.StartsWith('-')) {
        @(`)

	for _, flag := range data.Flags {
		writeFlagResults(&script, "            ", flag)
	}

	if hasCommandFlags(data) {
		script.WriteString(`
            switch ($cmd) {`)
		for _, cmd := range data.Commands {
			flags := data.CommandFlags[cmd]
			if len(flags) == 0 {
				continue
			}
			fmt.Fprintf(&script, `
                '%s' {`, cmd)
			for _, flag := range flags {
				writeFlagResults(&script, "                    ", flag)
			}
			script.WriteString(`
                }`)
		}
		script.WriteString(`
            }`)
	}

	script.WriteString(`
        )
        return
    }
`)

	var nested []string
	for _, parent := range parents {
		if parent != "" {
			nested = append(nested, parent)
		}
	}
	if len(nested) > 0 {
		script.WriteString(`
    switch ($cmd) {`)
		for _, parent := range nested {
			fmt.Fprintf(&script, `
        '%s' {
            @(`, parent)
			for _, child := range children[parent] {
				desc := data.CommandDescriptions[parent+" "+child]
				writeResult(&script, "                ", child, child, "Command", desc)
			}
			script.WriteString(`
            )
            return
        }`)
		}
		script.WriteString(`
    }`)
	}

	script.WriteString("\n}\n")
	return script.String()
}

// writeValueBlocks emits one early-return block per flag carrying
// candidate values, keyed on the exact word being completed.
func (g *PowerShellGenerator) writeValueBlocks(script *strings.Builder, data CompletionData) {
	seen := make(map[string]bool)
	emit := func(flag FlagPair) {
		key := flag.key()
		values := data.FlagValues[key]
		if key == "" || len(values) == 0 || seen[key] {
			return
		}
		seen[key] = true
		conds := make([]string, 0, 2)
		for _, name := range spellings(flag) {
			conds = append(conds, fmt.Sprintf("$wordToComplete -eq '%s'", name))
		}
		fmt.Fprintf(script, `
    if (%s) {
        @(`, strings.Join(conds, " -or "))
		for _, v := range values {
			writeResult(script, "            ", v.Pattern, v.Pattern, "ParameterValue", v.Description)
		}
		script.WriteString(`
        )
        return
    }
`)
	}
	for _, flag := range data.Flags {
		emit(flag)
	}
	for _, cmd := range data.Commands {
		for _, flag := range data.CommandFlags[cmd] {
			emit(flag)
		}
	}
}

func writeResult(script *strings.Builder, indent, completionText, listItem, resultType, desc string) {
	fmt.Fprintf(script, "\n%s[CompletionResult]::new('%s', '%s', [CompletionResultType]::%s, '%s')",
		indent, completionText, listItem, resultType, escapePowerShell(desc))
}

func writeFlagResults(script *strings.Builder, indent string, flag FlagPair) {
	for _, name := range spellings(flag) {
		writeResult(script, indent, name, strings.TrimLeft(name, "-"), "ParameterName", flag.Description)
	}
}

func hasCommandFlags(data CompletionData) bool {
	for _, cmd := range data.Commands {
		if len(data.CommandFlags[cmd]) > 0 {
			return true
		}
	}
	return false
}
