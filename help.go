package optree

import (
	"fmt"
	"io"
	"strings"

	"github.com/optree/optree/util"
)

// HelpConfig adjusts help rendering. The zero value detects the terminal
// width falling back to 80 columns, indents entries two spaces, and caps
// the label column at 28 columns.
type HelpConfig struct {
	// Width is the column help text wraps at. Zero means detect.
	Width int
	// Indent is the number of spaces entries are indented by.
	Indent int
	// GutterCap limits the label column; longer labels push their
	// description onto the next line.
	GutterCap int
	// Compact drops the blank lines between sections.
	Compact bool
}

func (hc HelpConfig) withDefaults(w io.Writer) HelpConfig {
	if hc.Width <= 0 {
		hc.Width = util.TerminalWidth(w, 80)
	}
	if hc.Indent <= 0 {
		hc.Indent = 2
	}
	if hc.GutterCap <= 0 {
		hc.GutterCap = 28
	}
	return hc
}

// PrintUsage writes the one-line usage for cmd. A nil cmd means the
// root.
func (p *Parser) PrintUsage(w io.Writer, cmd *Command) {
	if cmd == nil {
		cmd = p.root
	}
	fmt.Fprintln(w, "Usage: "+p.usageLine(cmd))
}

// PrintHelp writes full help for cmd: the usage line, the description,
// the subcommand listing, and the option table. A nil cmd means the
// root.
func (p *Parser) PrintHelp(w io.Writer, cmd *Command) {
	if cmd == nil {
		cmd = p.root
	}
	hc := p.helpConfig.withDefaults(w)
	indent := strings.Repeat(" ", hc.Indent)

	fmt.Fprintln(w, "Usage: "+p.usageLine(cmd))

	text := cmd.Description
	if text == "" {
		text = cmd.About
	}
	if text != "" {
		blank(w, hc)
		for _, line := range wrapText(text, hc.Width) {
			fmt.Fprintln(w, line)
		}
	}

	if len(cmd.Subcommands) > 0 {
		blank(w, hc)
		fmt.Fprintln(w, "Commands:")
		gutter := 0
		for i := range cmd.Subcommands {
			if n := len(cmd.Subcommands[i].Name); n > gutter {
				gutter = n
			}
		}
		for i := range cmd.Subcommands {
			sub := &cmd.Subcommands[i]
			if sub.About == "" {
				fmt.Fprintln(w, indent+sub.Name)
				continue
			}
			fmt.Fprintf(w, "%s%-*s  %s\n", indent, gutter, sub.Name, sub.About)
		}
	}

	gutter := 0
	type entry struct{ label, desc string }
	var entries []entry
	for i := range cmd.Options {
		opt := &cmd.Options[i]
		if opt.Hidden {
			continue
		}
		label := optionLabel(opt)
		if len(label) > gutter && len(label) <= hc.GutterCap {
			gutter = len(label)
		}
		entries = append(entries, entry{label, opt.Description})
	}
	if len(entries) > 0 {
		blank(w, hc)
		fmt.Fprintln(w, "Options:")
		for _, e := range entries {
			printEntry(w, hc, e.label, e.desc, gutter)
		}
	}
}

// usageLine enumerates the command's visible options, with the members
// of a mutual-exclusivity group folded into one alternation.
func (p *Parser) usageLine(cmd *Command) string {
	if cmd.Usage != "" {
		return cmd.Usage
	}
	var b strings.Builder
	b.WriteString(cmd.Path())
	rendered := make(map[int]bool)
	for i := range cmd.Options {
		opt := &cmd.Options[i]
		if opt.Hidden {
			continue
		}
		if opt.Group != 0 {
			if rendered[opt.Group] {
				continue
			}
			rendered[opt.Group] = true
			if g := groupUsage(cmd, opt.Group); g != "" {
				b.WriteString(" [" + g + "]")
			}
			continue
		}
		b.WriteString(" [" + usageToken(opt) + "]")
	}
	if len(cmd.Subcommands) > 0 {
		b.WriteString(" COMMAND")
	}
	if cmd.Operands != "" {
		b.WriteString(" " + cmd.Operands)
	}
	return b.String()
}

func groupUsage(cmd *Command, group int) string {
	var parts []string
	for i := range cmd.Options {
		opt := &cmd.Options[i]
		if opt.Group != group || opt.Hidden {
			continue
		}
		parts = append(parts, usageToken(opt))
	}
	return strings.Join(parts, "|")
}

// usageToken renders an option for the usage line: the short form when
// there is one, with the declared argument name appended verbatim.
func usageToken(opt *Option) string {
	name := "--" + opt.Long
	if opt.Short != 0 {
		name = "-" + string(opt.Short)
	}
	if opt.ArgName != "" {
		return name + " " + opt.ArgName
	}
	return name
}

// optionLabel renders the label column of the option table. Long-only
// options are padded where the short form would sit so long names line
// up.
func optionLabel(opt *Option) string {
	var b strings.Builder
	switch {
	case opt.Short != 0 && opt.Long != "":
		b.WriteString("-" + string(opt.Short) + ", --" + opt.Long)
	case opt.Short != 0:
		b.WriteString("-" + string(opt.Short))
	default:
		b.WriteString("    --" + opt.Long)
	}
	if opt.ArgName != "" {
		b.WriteString(" " + opt.ArgName)
	}
	return b.String()
}

func printEntry(w io.Writer, hc HelpConfig, label, desc string, gutter int) {
	indent := strings.Repeat(" ", hc.Indent)
	hang := hc.Indent + gutter + 2
	avail := hc.Width - hang
	if avail < 10 {
		avail = 10
	}
	lines := wrapText(desc, avail)
	if len(lines) == 0 {
		fmt.Fprintln(w, indent+label)
		return
	}
	if len(label) > gutter {
		fmt.Fprintln(w, indent+label)
		for _, line := range lines {
			fmt.Fprintln(w, strings.Repeat(" ", hang)+line)
		}
		return
	}
	fmt.Fprintf(w, "%s%-*s  %s\n", indent, gutter, label, lines[0])
	for _, line := range lines[1:] {
		fmt.Fprintln(w, strings.Repeat(" ", hang)+line)
	}
}

func blank(w io.Writer, hc HelpConfig) {
	if !hc.Compact {
		fmt.Fprintln(w)
	}
}

// wrapText greedily wraps words at the given width. A word longer than
// the width gets its own line rather than being split.
func wrapText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}
	return append(lines, line)
}

// HelpOption returns an option that prints help for the command being
// parsed to the regular output stream and exits with status 0, leaving
// the dispatch loop mid-token.
func (p *Parser) HelpOption(short rune, long string) Option {
	return Option{
		Short:       short,
		Long:        long,
		Description: "Print this help and exit",
		OnSeen: func() {
			p.PrintHelp(p.stdout, p.ActiveCommand())
			p.exit(0)
		},
	}
}

// EnableHelp appends the help option to every command in the tree. Call
// it after NewParser and before parsing.
func (p *Parser) EnableHelp(short rune, long string) {
	p.root.Walk(func(c *Command) bool {
		c.Options = append(c.Options, p.HelpOption(short, long))
		return true
	})
}

// HelpCommand returns a "help" subcommand that resolves its operands as
// a command chain and prints that command's help, so "prog help remote
// add" documents "prog remote add".
func HelpCommand() Command {
	return Command{
		Name:     "help",
		About:    "Print help for a command",
		Operands: "[COMMAND...]",
		Callback: func(p *Parser, cmd *Command) error {
			var names []string
			for {
				name, ok := p.Shift()
				if !ok {
					break
				}
				names = append(names, name)
			}
			target, err := p.Root().Resolve(names...)
			if err != nil {
				return err
			}
			p.PrintHelp(p.Stdout(), target)
			return nil
		},
	}
}
