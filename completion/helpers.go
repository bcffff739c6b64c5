package completion

import "strings"

// spellings returns the flag's dashed forms, long first.
func spellings(f FlagPair) []string {
	var s []string
	if f.Long != "" {
		s = append(s, "--"+f.Long)
	}
	if f.Short != "" {
		s = append(s, "-"+f.Short)
	}
	return s
}

// dashedNames returns the dashed spellings of every flag, in order.
func dashedNames(flags []FlagPair) []string {
	var names []string
	for _, f := range flags {
		names = append(names, spellings(f)...)
	}
	return names
}

// commandChildren groups command paths by parent path. The "" parent
// holds the top-level commands. Parents are returned in order of first
// appearance; children keep the input order.
func commandChildren(commands []string) ([]string, map[string][]string) {
	children := make(map[string][]string)
	var parents []string
	for _, cmd := range commands {
		parent, child := "", cmd
		if i := strings.LastIndex(cmd, " "); i >= 0 {
			parent, child = cmd[:i], cmd[i+1:]
		}
		if _, seen := children[parent]; !seen {
			parents = append(parents, parent)
		}
		children[parent] = append(children[parent], child)
	}
	return parents, children
}

// escapeFish prepares text for a single-quoted fish string, where only
// backslash and the quote itself are special.
func escapeFish(desc string) string {
	desc = strings.ReplaceAll(desc, `\`, `\\`)
	return strings.ReplaceAll(desc, "'", `\'`)
}

// escapePowerShell prepares text for a single-quoted PowerShell string,
// where a quote is doubled and nothing else is special.
func escapePowerShell(desc string) string {
	return strings.ReplaceAll(desc, "'", "''")
}

// escapeZsh prepares text for the bracketed description slot of a
// double-quoted _arguments or _values spec.
func escapeZsh(desc string) string {
	desc = strings.ReplaceAll(desc, `[`, `\[`)
	desc = strings.ReplaceAll(desc, `]`, `\]`)
	return strings.ReplaceAll(desc, `"`, `\"`)
}
