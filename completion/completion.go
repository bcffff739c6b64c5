// Package completion renders shell completion scripts from a
// shell-independent description of a program's commands and flags, and
// knows where each supported shell expects user completions installed.
// The package has no view of the parsing API; callers flatten their
// declarations into a CompletionData and hand it to a Generator or a
// CompletionManager.
package completion

// Generator renders a completion script for one shell.
type Generator interface {
	Generate(programName string, data CompletionData) string
}

// GetGenerator returns the generator for the named shell. Unrecognized
// names fall back to bash.
func GetGenerator(shell string) Generator {
	switch shell {
	case "zsh":
		return &ZshGenerator{}
	case "fish":
		return &FishGenerator{}
	case "powershell":
		return &PowerShellGenerator{}
	default:
		return &BashGenerator{}
	}
}

// Shells lists the shells with dedicated generators.
func Shells() []string {
	return []string{"bash", "zsh", "fish", "powershell"}
}
