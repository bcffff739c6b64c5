package optree

import (
	"errors"
	"fmt"
	"strings"

	"github.com/optree/optree/parse"
	"github.com/optree/optree/types"
	"github.com/optree/optree/util"
)

// session holds the state of one Parse invocation. Every top-level Parse
// gets a fresh session; mutual-exclusivity claims and seen marks survive
// subcommand descent but never leak across parses.
type session struct {
	p        *Parser
	cur      *parse.Cursor
	operands []string
	groups   map[int]*Option
	seen     map[*Option]bool
	active   *Command
}

func newSession(p *Parser, args []string) *session {
	cur := parse.NewCursor(args)
	cur.Advance() // slot 0 is the program name
	return &session{
		p:      p,
		cur:    cur,
		groups: make(map[int]*Option),
		seen:   make(map[*Option]bool),
		active: p.root,
	}
}

// parseLevel walks the vector for one command level. Tokens starting
// with '-' and at least two characters long are options unless "--" was
// seen at this level; everything else is a subcommand name when the
// level has subcommands, and an operand otherwise. Descent is one-way:
// the remaining tokens are handed to the subcommand and this level never
// resumes.
func (s *session) parseLevel(cmd *Command) error {
	s.active = cmd
	operandsOnly := false

	for s.cur.InBounds() {
		tok := s.cur.Current()
		if !operandsOnly && len(tok) > 1 && tok[0] == '-' {
			switch {
			case tok == "--":
				operandsOnly = true
			case s.p.longOpts && strings.HasPrefix(tok, "--"):
				if err := s.longOption(cmd, tok); err != nil {
					return err
				}
			default:
				if err := s.shortSequence(cmd, tok); err != nil {
					return err
				}
			}
		} else if len(cmd.Subcommands) > 0 {
			sub := cmd.find(tok)
			if sub == nil {
				return fmt.Errorf("%w: %q", ErrUnknownCommand, tok)
			}
			if err := s.applyEnv(cmd); err != nil {
				return err
			}
			vec := s.cur.Args()
			next := append([]string{vec[0]}, vec[s.cur.Pos()+1:]...)
			s.cur.Reset(next, 1)
			return s.parseLevel(sub)
		} else {
			s.operands = append(s.operands, tok)
		}
		s.cur.Advance()
	}

	if err := s.applyEnv(cmd); err != nil {
		return err
	}

	// The level is done. Callbacks see the compacted vector of program
	// name plus operands through the shared cursor.
	out := append([]string{s.cur.Args()[0]}, s.operands...)
	s.cur.Reset(out, 0)
	if cmd.Callback != nil {
		return cmd.Callback(s.p, cmd)
	}
	return nil
}

// longOption handles one "--name" token. The option-argument may be
// attached with '=' when attachment is enabled; a required argument is
// otherwise taken verbatim from the next slot, and an optional one is
// never taken from the next slot.
func (s *session) longOption(cmd *Command, tok string) error {
	name := tok[2:]
	arg := ""
	has := false
	if s.p.attached {
		if i := strings.IndexByte(name, '='); i >= 0 {
			name, arg, has = name[:i], name[i+1:], true
		}
	}

	opt, ok := cmd.Lookup(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownOption, "--"+name)
	}
	if err := s.checkExclusive(opt); err != nil {
		return err
	}

	switch {
	case !opt.takesArgument():
		if has {
			return fmt.Errorf("%w: %q for %s", ErrUnwantedArgument, arg, opt)
		}
	case !has && !opt.argumentOptional():
		next, taken := s.cur.Take()
		if !taken {
			return fmt.Errorf("%w: %q", ErrMissingArgument, "--"+name)
		}
		arg, has = next, true
	}
	return s.execute(opt, arg, has)
}

// shortSequence handles one "-abc" token, matching character by
// character. A matched option that takes an argument consumes the rest
// of the sequence when attachment is enabled, or the next slot when the
// argument is required and nothing is attached; either way the sequence
// ends there.
func (s *session) shortSequence(cmd *Command, tok string) error {
	runes := []rune(tok[1:])
	for idx := 0; idx < len(runes); idx++ {
		opt, ok := cmd.LookupShort(runes[idx])
		if !ok {
			if len(runes) > 1 {
				return fmt.Errorf("%w: %q (in sequence %q)", ErrUnknownOption, "-"+string(runes[idx]), tok)
			}
			return fmt.Errorf("%w: %q", ErrUnknownOption, tok)
		}
		if err := s.checkExclusive(opt); err != nil {
			return err
		}
		if !opt.takesArgument() {
			if err := s.execute(opt, "", false); err != nil {
				return err
			}
			continue
		}

		rest := string(runes[idx+1:])
		if rest != "" {
			if !s.p.attached {
				return fmt.Errorf("%w: %q", ErrMissingArgument, "-"+string(runes[idx]))
			}
			return s.execute(opt, rest, true)
		}
		if opt.argumentOptional() {
			return s.execute(opt, "", false)
		}
		next, taken := s.cur.Take()
		if !taken {
			return fmt.Errorf("%w: %q", ErrMissingArgument, "-"+string(runes[idx]))
		}
		return s.execute(opt, next, true)
	}
	return nil
}

// checkExclusive claims the option's mutual-exclusivity group. The first
// matched option of a nonzero group owns it for the rest of the parse;
// repeating the same option is fine, a different one is a conflict.
func (s *session) checkExclusive(opt *Option) error {
	if opt.Group == 0 {
		return nil
	}
	if prev, ok := s.groups[opt.Group]; ok {
		if prev != opt {
			return fmt.Errorf("%w: %s and %s", ErrExclusiveOptions, prev, opt)
		}
		return nil
	}
	s.groups[opt.Group] = opt
	return nil
}

// execute runs a matched option: flag action, default substitution,
// conversion, storage, then the callback. A conversion failure aborts
// before anything is stored; the flag action has already happened by
// then, matching the match-time semantics of the flag cell.
func (s *session) execute(opt *Option, arg string, has bool) error {
	s.seen[opt] = true

	if opt.Flag != nil {
		switch opt.FlagAction {
		case FlagSetTrue:
			*opt.Flag = 1
		case FlagSetFalse:
			*opt.Flag = 0
		case FlagIncrement:
			*opt.Flag++
		case FlagDecrement:
			*opt.Flag--
		}
	}

	if !has && opt.Default != "" {
		arg, has = opt.Default, true
	}

	var scalar types.Value
	var list []types.Value
	if has && opt.Kind != types.KindNone {
		if opt.isList() {
			values, err := util.ConvertList(arg, opt.ListDelims, opt.Kind)
			if err != nil {
				return conversionError(opt, err)
			}
			list = values
			if opt.Store != nil {
				if err := util.StoreList(opt.Kind, values, opt.Store); err != nil {
					return err
				}
			}
		} else {
			v, err := util.Convert(arg, opt.Kind)
			if err != nil {
				return conversionError(opt, err)
			}
			scalar = v
			if opt.Store != nil {
				if err := util.Store(v, opt.Store); err != nil {
					return err
				}
			}
		}
	}
	if opt.StoreCount != nil {
		*opt.StoreCount = len(list)
	}

	switch {
	case opt.OnSeen != nil:
		opt.OnSeen()
	case opt.OnRaw != nil:
		opt.OnRaw(arg)
	case opt.OnValue != nil:
		opt.OnValue(scalar)
	case opt.OnList != nil:
		opt.OnList(list)
	case opt.OnRawList != nil:
		opt.OnRawList(util.SplitList(arg, opt.ListDelims))
	}
	return nil
}

func conversionError(opt *Option, err error) error {
	if errors.Is(err, types.ErrRange) {
		return fmt.Errorf("%w: %s: %w", ErrArgumentOutOfRange, opt, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrInvalidArgument, opt, err)
}
