package optree

import (
	"fmt"

	deque "github.com/ef-ds/deque/v2"
)

// Parent returns the command this node was declared under, or nil for
// the root. Parent links are populated once, when NewParser freezes the
// tree.
func (c *Command) Parent() *Command {
	return c.parent
}

// Path returns the space-joined command chain from the root to this
// node, e.g. "prog remote add".
func (c *Command) Path() string {
	return c.path
}

// Chain returns the commands from the root down to this node.
func (c *Command) Chain() []*Command {
	var chain []*Command
	for n := c; n != nil; n = n.parent {
		chain = append([]*Command{n}, chain...)
	}
	return chain
}

// Resolve descends from this node through the named subcommands and
// returns the node the chain ends on. Resolution scans each level's
// Subcommands in declaration order and the first exact name match wins.
// It never consults parser state, so it works before, during, and after
// a parse.
func (c *Command) Resolve(names ...string) (*Command, error) {
	node := c
	for _, name := range names {
		next := node.find(name)
		if next == nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
		}
		node = next
	}
	return node, nil
}

// Lookup returns the first option in this command's table with the given
// long name.
func (c *Command) Lookup(long string) (*Option, bool) {
	if long == "" {
		return nil, false
	}
	for i := range c.Options {
		if c.Options[i].Long == long {
			return &c.Options[i], true
		}
	}
	return nil, false
}

// LookupShort returns the first option in this command's table with the
// given short character.
func (c *Command) LookupShort(r rune) (*Option, bool) {
	if r == 0 {
		return nil, false
	}
	for i := range c.Options {
		if c.Options[i].Short == r {
			return &c.Options[i], true
		}
	}
	return nil, false
}

// Walk visits this node and every descendant breadth-first. Returning
// false from fn stops the traversal.
func (c *Command) Walk(fn func(*Command) bool) {
	var pending deque.Deque[*Command]
	pending.PushBack(c)
	for pending.Len() > 0 {
		node, _ := pending.PopFront()
		if !fn(node) {
			return
		}
		for i := range node.Subcommands {
			pending.PushBack(&node.Subcommands[i])
		}
	}
}

func (c *Command) find(name string) *Command {
	for i := range c.Subcommands {
		if c.Subcommands[i].Name == name {
			return &c.Subcommands[i]
		}
	}
	return nil
}

// initTree validates the declared tree, wires parent links and paths,
// and indexes every node by path. The tree belongs to the parser
// afterwards; declarations must not change once parsing starts.
func (p *Parser) initTree() error {
	return p.initCommand(p.root, nil, "")
}

func (p *Parser) initCommand(c *Command, parent *Command, prefix string) error {
	if c.Name == "" {
		return fmt.Errorf("command under %q needs a name", prefix)
	}
	c.parent = parent
	if prefix == "" {
		c.path = c.Name
	} else {
		c.path = prefix + " " + c.Name
	}
	if _, dup := p.commands.Get(c.path); dup {
		return fmt.Errorf("duplicate command %q", c.path)
	}
	p.commands.Set(c.path, c)
	for i := range c.Options {
		if err := c.Options[i].validate(); err != nil {
			return fmt.Errorf("command %q: %w", c.path, err)
		}
	}
	for i := range c.Subcommands {
		if err := p.initCommand(&c.Subcommands[i], c, c.path); err != nil {
			return err
		}
	}
	return nil
}
