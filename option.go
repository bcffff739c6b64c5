package optree

import (
	"fmt"
	"strings"

	"github.com/optree/optree/types"
	"github.com/optree/optree/util"
)

// String returns the option's display name: "-s, --long" when both
// forms exist, otherwise whichever form is declared. Error messages and
// help output use this form.
func (o *Option) String() string {
	var b strings.Builder
	if o.Short != 0 {
		b.WriteByte('-')
		b.WriteRune(o.Short)
	}
	if o.Long != "" {
		if o.Short != 0 {
			b.WriteString(", ")
		}
		b.WriteString("--")
		b.WriteString(o.Long)
	}
	return b.String()
}

// takesArgument reports whether the option declares a named argument.
func (o *Option) takesArgument() bool {
	return o.ArgName != ""
}

// argumentOptional reports whether the declared argument name is
// bracket-enclosed, which marks the argument optional.
func (o *Option) argumentOptional() bool {
	return strings.HasPrefix(o.ArgName, "[")
}

func (o *Option) isList() bool {
	return o.ListDelims != ""
}

func (o *Option) callbacks() int {
	n := 0
	if o.OnSeen != nil {
		n++
	}
	if o.OnRaw != nil {
		n++
	}
	if o.OnValue != nil {
		n++
	}
	if o.OnList != nil {
		n++
	}
	if o.OnRawList != nil {
		n++
	}
	return n
}

// validate enforces the declaration invariants. It runs once per option
// while NewParser freezes the tree, so misdeclarations surface at
// startup rather than mid-parse.
func (o *Option) validate() error {
	if o.Short == 0 && o.Long == "" {
		return fmt.Errorf("option needs a short or long name")
	}
	if strings.HasPrefix(o.ArgName, "[") != strings.HasSuffix(o.ArgName, "]") {
		return fmt.Errorf("option %s: unbalanced brackets in argument name %q", o, o.ArgName)
	}
	if o.ArgName == "[]" {
		return fmt.Errorf("option %s: optional argument needs a name", o)
	}
	if o.Group < 0 {
		return fmt.Errorf("option %s: group must not be negative", o)
	}
	if o.callbacks() > 1 {
		return fmt.Errorf("option %s: at most one callback may be set", o)
	}
	if !o.takesArgument() {
		switch {
		case o.Kind != types.KindNone:
			return fmt.Errorf("option %s: value kind declared but no argument name", o)
		case o.ListDelims != "":
			return fmt.Errorf("option %s: list delimiters declared but no argument name", o)
		case o.Store != nil || o.StoreCount != nil:
			return fmt.Errorf("option %s: storage declared but no argument name", o)
		case o.Default != "":
			return fmt.Errorf("option %s: default declared but no argument name", o)
		case o.OnRaw != nil || o.OnValue != nil || o.OnList != nil || o.OnRawList != nil:
			return fmt.Errorf("option %s: argument callback declared but no argument name", o)
		}
		return nil
	}
	if o.Default != "" && !o.argumentOptional() {
		return fmt.Errorf("option %s: default only applies to an optional argument", o)
	}
	if o.isList() && o.Kind == types.KindNone && (o.Store != nil || o.OnList != nil) {
		return fmt.Errorf("option %s: list option needs an element kind", o)
	}
	if o.OnValue != nil && o.isList() {
		return fmt.Errorf("option %s: scalar callback on a list option", o)
	}
	if o.OnValue != nil && o.Kind == types.KindNone {
		return fmt.Errorf("option %s: scalar callback needs a value kind", o)
	}
	if (o.OnList != nil || o.OnRawList != nil) && !o.isList() {
		return fmt.Errorf("option %s: list callback needs list delimiters", o)
	}
	if o.StoreCount != nil && (!o.isList() || o.Store == nil) {
		return fmt.Errorf("option %s: count storage needs a list option with storage", o)
	}
	if o.Store != nil {
		if o.Kind == types.KindNone {
			return fmt.Errorf("option %s: storage needs a value kind", o)
		}
		if err := util.ValidateStore(o.Kind, o.Store, o.isList()); err != nil {
			return fmt.Errorf("option %s: %w", o, err)
		}
	}
	return nil
}
