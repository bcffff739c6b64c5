package completion

// FlagType tells generators what, if anything, a flag's argument
// completes to.
type FlagType int

const (
	// FlagTypeStandalone marks a flag that takes no argument.
	FlagTypeStandalone FlagType = iota
	// FlagTypeValue marks a flag whose argument is free-form; any
	// FlagValues entry supplies its candidates.
	FlagTypeValue
	// FlagTypeFile marks a flag whose argument names a file. Shells
	// with a filesystem action complete it from disk.
	FlagTypeFile
)

// FlagPair is one flag in both of its spellings, without dashes. Long
// or Short may be empty, not both.
type FlagPair struct {
	Long        string
	Short       string
	Description string
	Type        FlagType
}

// key returns the FlagValues lookup key for the flag.
func (f FlagPair) key() string {
	if f.Long != "" {
		return f.Long
	}
	return f.Short
}

// CompletionValue is one candidate argument value.
type CompletionValue struct {
	Pattern     string
	Description string
}

// CompletionData is the shell-independent description of a program's
// grammar. Commands holds full command paths relative to the program
// name ("remote add"), in declaration order; CommandDescriptions and
// CommandFlags are keyed by those paths. FlagValues is keyed by the
// flag's long name, or its short name when no long form exists.
type CompletionData struct {
	Commands            []string
	CommandDescriptions map[string]string
	Flags               []FlagPair
	CommandFlags        map[string][]FlagPair
	FlagValues          map[string][]CompletionValue
}

// CompletionPaths names where one shell looks for user completion
// scripts on the current platform.
type CompletionPaths struct {
	// Primary is the preferred install directory.
	Primary string
	// Fallback is tried when Primary cannot be prepared.
	Fallback string
	// Extension is the file extension the shell requires, if any.
	Extension string
	// Comment documents the path choice.
	Comment string
}

// CompletionFileInfo holds a shell's completion file naming convention.
type CompletionFileInfo struct {
	// Prefix is prepended to the program name ("_" for zsh).
	Prefix string
	// Extension is appended to the program name (".fish", ".ps1").
	Extension string
	// Comment documents the convention.
	Comment string
}
