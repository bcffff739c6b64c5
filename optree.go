// Copyright 2025, The optree Authors. All rights reserved.
// Use of this source code is governed by the MIT license
// which can be found in the LICENSE file.

// Package optree provides declarative command-line processing over a
// tree of commands.
//
// A program declares its interface as a Command tree: each command
// carries an option table and optionally subcommands, a callback, and
// help texts. Options are matched in long form ("--file x", "--file=x")
// and short form ("-f x", "-fx", "-xvf"), option-arguments are converted
// to a declared scalar kind or a delimited list of one, and results land
// in typed destinations or are handed to callbacks. Parsing descends the
// command tree one level at a time; tokens that name a subcommand hand
// the rest of the vector to that subcommand, and "--" turns everything
// after it into operands for the current level.
package optree

import (
	"fmt"
	"io"
	"os"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/optree/optree/parse"
	"github.com/optree/optree/types"
	"github.com/optree/optree/util"
)

// NewParser validates the command tree and returns a parser over it. The
// tree is frozen here: parent links and paths are wired once, and every
// option table is checked against its declared storage. The returned
// parser recognizes long options and attached option-arguments unless
// configuration functions say otherwise.
func NewParser(root *Command, configs ...ConfigureParserFunc) (*Parser, error) {
	if root == nil {
		return nil, fmt.Errorf("root command required")
	}
	p := &Parser{
		root:       root,
		commands:   orderedmap.New[string, *Command](),
		longOpts:   true,
		attached:   true,
		envConvert: DefaultEnvNameConverter,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		exit:       os.Exit,
	}

	var err error
	for _, config := range configs {
		config(p, &err)
		if err != nil {
			return nil, err
		}
	}
	if p.envConvert == nil {
		p.envConvert = DefaultEnvNameConverter
	}
	if err := p.initTree(); err != nil {
		return nil, err
	}
	return p, nil
}

// Parse processes an argument vector laid out like os.Args: slot 0 is
// the program name and parsing starts at slot 1. It returns the first
// failure: an unknown option or command, a missing, unwanted, or
// malformed option-argument, a mutual-exclusivity conflict, or whatever
// error the reached command's callback returned.
func (p *Parser) Parse(args []string) error {
	if len(args) == 0 {
		args = []string{p.root.Name}
	}
	s := newSession(p, args)
	p.sess = s
	return s.parseLevel(p.root)
}

// ParseString splits line the way a shell would and parses the result.
// The line holds arguments only, not the program name.
func (p *Parser) ParseString(line string) error {
	tokens, err := parse.Split(line)
	if err != nil {
		return err
	}
	return p.Parse(append([]string{p.root.Name}, tokens...))
}

// ParseWithDefaults parses args after injecting defaults for root-level
// options absent from the vector. Keys are long option names without
// dashes; values are option-arguments, or a boolean word for options
// that take none. Injected tokens go right after the program name, in
// option-table order, so anything the user typed still wins.
func (p *Parser) ParseWithDefaults(args []string, defaults map[string]string) error {
	if len(args) == 0 {
		args = []string{p.root.Name}
	}
	injected, err := p.defaultTokens(args[1:], defaults)
	if err != nil {
		return err
	}
	vec := make([]string, 0, len(args)+len(injected))
	vec = append(vec, args[0])
	vec = append(vec, injected...)
	vec = append(vec, args[1:]...)
	return p.Parse(vec)
}

// ParseStringWithDefaults is ParseString with injected defaults.
func (p *Parser) ParseStringWithDefaults(line string, defaults map[string]string) error {
	tokens, err := parse.Split(line)
	if err != nil {
		return err
	}
	return p.ParseWithDefaults(append([]string{p.root.Name}, tokens...), defaults)
}

// ParseOrExit parses like Parse but treats failure as fatal: the error
// is printed to the error stream, usage for the command being parsed
// follows when enabled, and the process exits with status 1.
func (p *Parser) ParseOrExit(args []string) {
	err := p.Parse(args)
	if err == nil {
		return
	}
	fmt.Fprintf(p.stderr, "%s: %v\n", p.root.Name, err)
	if p.usageOnError {
		p.PrintUsage(p.stderr, p.ActiveCommand())
	}
	p.exit(1)
}

// defaultTokens builds the tokens injected ahead of the user's
// arguments. Injection follows the root option table's order, not the
// map's, so repeated runs produce the same vector.
func (p *Parser) defaultTokens(args []string, defaults map[string]string) ([]string, error) {
	if len(defaults) == 0 {
		return nil, nil
	}
	for name := range defaults {
		if _, ok := p.root.Lookup(name); !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownOption, "--"+name)
		}
	}

	var injected []string
	used := make(map[string]bool, len(defaults))
	for i := range p.root.Options {
		opt := &p.root.Options[i]
		if opt.Long == "" || used[opt.Long] {
			continue
		}
		value, ok := defaults[opt.Long]
		if !ok {
			continue
		}
		used[opt.Long] = true
		if optionPresent(args, opt) {
			continue
		}
		switch {
		case !opt.takesArgument():
			v, err := util.Convert(value, types.KindBool)
			if err != nil {
				return nil, fmt.Errorf("default for --%s: %w", opt.Long, conversionError(opt, err))
			}
			if v.Bool() {
				injected = append(injected, "--"+opt.Long)
			}
		case opt.argumentOptional():
			// An optional argument is only ever read attached.
			if !p.attached {
				return nil, fmt.Errorf("default for --%s needs attached arguments", opt.Long)
			}
			injected = append(injected, "--"+opt.Long+"="+value)
		default:
			injected = append(injected, "--"+opt.Long, value)
		}
	}
	return injected, nil
}

// optionPresent reports whether the option already appears among the
// user's arguments. The scan is a heuristic: it recognizes "--name",
// "--name=...", and a lone "-x", but not a short option buried in a
// sequence. It stops at "--" since later tokens are operands.
func optionPresent(args []string, opt *Option) bool {
	long := "--" + opt.Long
	for _, tok := range args {
		if tok == "--" {
			break
		}
		if tok == long || strings.HasPrefix(tok, long+"=") {
			return true
		}
		if opt.Short != 0 && tok == "-"+string(opt.Short) {
			return true
		}
	}
	return false
}

// Operands returns the positional arguments collected by the last parse,
// in command-line order. Operands only accumulate on commands without
// subcommands.
func (p *Parser) Operands() []string {
	if p.sess == nil {
		return nil
	}
	return p.sess.operands
}

// Shift consumes and returns the next token. Inside an option callback
// it eats upcoming command-line tokens before the dispatch loop sees
// them; inside a command callback it walks the collected operands.
func (p *Parser) Shift() (string, bool) {
	if p.sess == nil {
		return "", false
	}
	return p.sess.cur.Shift()
}

// Unshift steps the cursor back one token, undoing a Shift so the
// dispatch loop or the next Shift sees that token again.
func (p *Parser) Unshift() (string, bool) {
	if p.sess == nil {
		return "", false
	}
	return p.sess.cur.Unshift()
}

// Root returns the root of the command tree.
func (p *Parser) Root() *Command {
	return p.root
}

// ActiveCommand returns the command the last parse reached, or the root
// before any parse. After a failed parse it names the level the failure
// happened on.
func (p *Parser) ActiveCommand() *Command {
	if p.sess == nil {
		return p.root
	}
	return p.sess.active
}

// FindCommand resolves a chain of subcommand names starting below the
// root, e.g. FindCommand("remote", "add").
func (p *Parser) FindCommand(names ...string) (*Command, error) {
	key := p.root.Name
	if len(names) > 0 {
		key += " " + strings.Join(names, " ")
	}
	if cmd, ok := p.commands.Get(key); ok {
		return cmd, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, strings.Join(names, " "))
}

// CommandPaths returns every command path in declaration order, root
// first.
func (p *Parser) CommandPaths() []string {
	paths := make([]string, 0, p.commands.Len())
	for pair := p.commands.Oldest(); pair != nil; pair = pair.Next() {
		paths = append(paths, pair.Key)
	}
	return paths
}

// Stdout returns the writer regular parser output goes to.
func (p *Parser) Stdout() io.Writer {
	return p.stdout
}

// Stderr returns the writer parser error output goes to.
func (p *Parser) Stderr() io.Writer {
	return p.stderr
}
