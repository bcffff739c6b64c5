package optree

// NewCmd builds a Command from configuration functions. Commands compose
// into trees through WithSubcommands; the root of the tree is handed to
// NewParser.
func NewCmd(configs ...ConfigureCommandFunc) Command {
	var cmd Command
	for _, config := range configs {
		config(&cmd)
	}
	return cmd
}

// Set applies further configuration functions to an existing command.
func (c *Command) Set(configs ...ConfigureCommandFunc) {
	for _, config := range configs {
		config(c)
	}
}

// WithName sets the name the command is matched by on the command line.
// The root command's name is only used in help output.
func WithName(name string) ConfigureCommandFunc {
	return func(command *Command) {
		command.Name = name
	}
}

// WithAbout sets the one-line summary shown in the parent's subcommand
// listing.
func WithAbout(about string) ConfigureCommandFunc {
	return func(command *Command) {
		command.About = about
	}
}

// WithCommandDescription sets the longer text shown in the command's own
// help output.
func WithCommandDescription(description string) ConfigureCommandFunc {
	return func(command *Command) {
		command.Description = description
	}
}

// WithOperands names the positional arguments in usage output, e.g.
// "FILE..." or "SRC DST".
func WithOperands(operands string) ConfigureCommandFunc {
	return func(command *Command) {
		command.Operands = operands
	}
}

// WithUsage overrides the generated usage line.
func WithUsage(usage string) ConfigureCommandFunc {
	return func(command *Command) {
		command.Usage = usage
	}
}

// WithCommandOptions sets the command's option table.
func WithCommandOptions(options ...Option) ConfigureCommandFunc {
	return func(command *Command) {
		command.Options = append(command.Options, options...)
	}
}

// WithSubcommands associates subcommands with a command.
func WithSubcommands(subcommands ...Command) ConfigureCommandFunc {
	return func(command *Command) {
		for i := 0; i < len(subcommands); i++ {
			command.Subcommands = append(command.Subcommands, subcommands[i])
		}
	}
}

// WithCallback sets the function run when parsing ends on this command.
func WithCallback(callback CommandFunc) ConfigureCommandFunc {
	return func(command *Command) {
		command.Callback = callback
	}
}
