package optree

import (
	"errors"
	"io"
	"strings"

	"github.com/iancoleman/strcase"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/optree/optree/types"
)

// Parse failure categories. The dispatch loop wraps these with the
// offending token so callers can match with errors.Is. The first failure
// aborts the whole parse; nothing after it is processed.
var (
	ErrUnknownOption      = errors.New("unknown option")
	ErrUnknownCommand     = errors.New("unknown command")
	ErrMissingArgument    = errors.New("option requires an argument")
	ErrUnwantedArgument   = errors.New("unwanted option-argument")
	ErrInvalidArgument    = errors.New("argument not valid")
	ErrArgumentOutOfRange = errors.New("value out of range")
	ErrExclusiveOptions   = errors.New("options are mutually exclusive")
)

// FlagAction selects the mutation applied to an option's Flag target
// every time the option is seen, before any argument handling.
type FlagAction int

const (
	// FlagSetTrue stores 1.
	FlagSetTrue FlagAction = iota
	// FlagSetFalse stores 0.
	FlagSetFalse
	// FlagIncrement adds 1, so repeated occurrences count up (-vvv).
	FlagIncrement
	// FlagDecrement subtracts 1.
	FlagDecrement
)

// CommandFunc is the handler invoked on the command a parse resolves to.
// It runs after the argument vector is exhausted, with the parser's
// cursor rewound to the start of the compacted operand vector.
type CommandFunc func(p *Parser, cmd *Command) error

// ConfigureParserFunc is used when building a Parser with NewParser.
type ConfigureParserFunc func(p *Parser, err *error)

// ConfigureOptionFunc is used when building an Option with NewOpt.
type ConfigureOptionFunc func(o *Option, err *error)

// ConfigureCommandFunc is used when building a Command with NewCmd.
type ConfigureCommandFunc func(c *Command)

// NameConversionFunc converts an option name to an environment variable
// name fragment.
type NameConversionFunc func(string) string

// Built-in conversion strategies
var (
	// ToKebabCase converts a string to kebab case "my-option-name"
	ToKebabCase = func(s string) string {
		return strcase.ToKebab(s)
	}

	// ToSnakeCase converts a string to snake case "my_option_name"
	ToSnakeCase = func(s string) string {
		return strcase.ToSnake(s)
	}

	// ToScreamingSnake converts a string to screaming snake case "MY_OPTION_NAME"
	ToScreamingSnake = func(s string) string {
		return strcase.ToScreamingSnake(s)
	}

	// ToLowerCase converts a string to lower case "myoptionname"
	ToLowerCase = func(s string) string {
		return strings.ToLower(s)
	}

	DefaultEnvNameConverter = ToScreamingSnake
)

// Option declares one recognizable option. Options live in a Command's
// ordered table; resolution scans the table sequentially and the first
// match wins, so declaration order is priority order.
type Option struct {
	// Short is the option's cluster character (0 = no short form).
	Short rune
	// Long is the option's --name (empty = no long form). At least one
	// of Short and Long must be set.
	Long string
	// ArgName declares whether and how the option takes an argument:
	// empty means no argument, "NAME" means a required argument, and
	// "[NAME]" (enclosed in brackets) means an optional argument which
	// binds only when attached to the option itself. The string is
	// displayed verbatim in help output.
	ArgName string
	// Kind selects the conversion applied to the argument. For list
	// options it is the element kind.
	Kind types.ValueKind
	// ListDelims turns the option into a list option: the argument is
	// split on any rune in this set before conversion.
	ListDelims string
	// Store receives the converted argument. It must be a pointer whose
	// type matches Kind exactly, or a pointer to a slice of that type
	// for list options.
	Store any
	// StoreCount receives a list option's element count (0 when the
	// option was seen without an argument). Only valid with Store on a
	// list option.
	StoreCount *int
	// Flag is mutated per FlagAction whenever the option is seen,
	// independent of any argument handling.
	Flag *int
	// FlagAction selects the Flag mutation. The zero value sets 1.
	FlagAction FlagAction
	// At most one callback may be set; which field is set determines the
	// calling convention.
	OnSeen    func()
	OnRaw     func(raw string)
	OnValue   func(v types.Value)
	OnList    func(values []types.Value)
	OnRawList func(items []string)
	// Group places the option in a mutual-exclusivity group. Within one
	// top-level parse, seeing two different options that share a
	// positive group fails. 0 means no group.
	Group int
	// Hidden excludes the option from help output.
	Hidden bool
	// Default is used as the argument when an optional-argument option
	// appears bare. It never applies to options absent from the vector.
	Default string
	// Description is the help text.
	Description string
}

// Command is one node of the command tree. The tree is declared as
// nested literals (or via NewCmd) and handed to NewParser, which freezes
// and validates it.
type Command struct {
	// Name is matched against non-option tokens (required; unique among
	// siblings). The root command's name is the program name shown in
	// usage lines.
	Name string
	// About is the one-line description shown in command listings.
	About string
	// Description is the long help text.
	Description string
	// Operands is the display string for the command's positional
	// arguments in usage lines, e.g. "FILE...".
	Operands string
	// Usage overrides the generated usage line when set.
	Usage string
	// Options is the ordered option table.
	Options []Option
	// Subcommands are matched against non-option tokens. A node with
	// subcommands accepts no operands: every non-option token must name
	// a subcommand.
	Subcommands []Command
	// Callback runs when a parse resolves to this command.
	Callback CommandFunc

	parent *Command
	path   string
}

// Parser owns a validated command tree and the toggles controlling how
// its argument vectors are read. A Parser parses one vector at a time;
// each Parse call starts a fresh session.
type Parser struct {
	root     *Command
	commands *orderedmap.OrderedMap[string, *Command]

	longOpts     bool
	attached     bool
	usageOnError bool
	envPrefix    string
	envConvert   NameConversionFunc
	helpConfig   HelpConfig

	stdout io.Writer
	stderr io.Writer
	exit   func(int)

	sess *session
}
