package optree

import "github.com/optree/optree/types"

// NewOpt builds an Option from configuration functions. It is a fluent
// alternative to declaring the struct literally; the result is validated
// together with the rest of the table when the parser is created.
func NewOpt(configs ...ConfigureOptionFunc) Option {
	var opt Option
	for _, config := range configs {
		config(&opt, nil)
	}
	return opt
}

// WithShort sets the single-character name the option is matched by in
// short-option sequences.
func WithShort(short rune) ConfigureOptionFunc {
	return func(opt *Option, err *error) {
		opt.Short = short
	}
}

// WithLong sets the long name the option is matched by after "--".
func WithLong(long string) ConfigureOptionFunc {
	return func(opt *Option, err *error) {
		opt.Long = long
	}
}

// WithRequiredArg declares that the option takes a mandatory
// option-argument, shown under the given name in help output.
func WithRequiredArg(name string) ConfigureOptionFunc {
	return func(opt *Option, err *error) {
		opt.ArgName = name
	}
}

// WithOptionalArg declares that the option takes an optional
// option-argument. The name is bracketed in help output.
func WithOptionalArg(name string) ConfigureOptionFunc {
	return func(opt *Option, err *error) {
		opt.ArgName = "[" + name + "]"
	}
}

// WithKind sets the type option-arguments are converted to.
func WithKind(kind types.ValueKind) ConfigureOptionFunc {
	return func(opt *Option, err *error) {
		opt.Kind = kind
	}
}

// WithListDelims makes the option-argument a list split on any of the
// given delimiter characters.
func WithListDelims(delims string) ConfigureOptionFunc {
	return func(opt *Option, err *error) {
		opt.ListDelims = delims
	}
}

// WithStore sets the typed destination the converted option-argument is
// written to. The pointer type must match the option's kind.
func WithStore(dst any) ConfigureOptionFunc {
	return func(opt *Option, err *error) {
		opt.Store = dst
	}
}

// WithStoreCount stores the number of list items alongside a list store.
func WithStoreCount(n *int) ConfigureOptionFunc {
	return func(opt *Option, err *error) {
		opt.StoreCount = n
	}
}

// WithFlag attaches an integer cell mutated by the given action every
// time the option is seen.
func WithFlag(cell *int, action FlagAction) ConfigureOptionFunc {
	return func(opt *Option, err *error) {
		opt.Flag = cell
		opt.FlagAction = action
	}
}

// WithGroup places the option in a mutual-exclusivity group. Options
// from the same nonzero group reject each other within one parse.
func WithGroup(group int) ConfigureOptionFunc {
	return func(opt *Option, err *error) {
		opt.Group = group
	}
}

// Hidden keeps the option out of help output.
func Hidden() ConfigureOptionFunc {
	return func(opt *Option, err *error) {
		opt.Hidden = true
	}
}

// WithDefault supplies the value substituted when an optional
// option-argument is omitted.
func WithDefault(value string) ConfigureOptionFunc {
	return func(opt *Option, err *error) {
		opt.Default = value
	}
}

// WithDescription sets the help text shown next to the option.
func WithDescription(desc string) ConfigureOptionFunc {
	return func(opt *Option, err *error) {
		opt.Description = desc
	}
}

// WithOnSeen registers a callback fired when the option matches,
// without any option-argument.
func WithOnSeen(fn func()) ConfigureOptionFunc {
	return func(opt *Option, err *error) {
		opt.OnSeen = fn
	}
}

// WithOnRaw registers a callback receiving the option-argument before
// conversion. The callback sees "" when an optional argument was omitted
// and no default applies.
func WithOnRaw(fn func(raw string)) ConfigureOptionFunc {
	return func(opt *Option, err *error) {
		opt.OnRaw = fn
	}
}

// WithOnValue registers a callback receiving the converted
// option-argument.
func WithOnValue(fn func(v types.Value)) ConfigureOptionFunc {
	return func(opt *Option, err *error) {
		opt.OnValue = fn
	}
}

// WithOnList registers a callback receiving the converted list items.
func WithOnList(fn func(values []types.Value)) ConfigureOptionFunc {
	return func(opt *Option, err *error) {
		opt.OnList = fn
	}
}

// WithOnRawList registers a callback receiving the split but unconverted
// list items.
func WithOnRawList(fn func(items []string)) ConfigureOptionFunc {
	return func(opt *Option, err *error) {
		opt.OnRawList = fn
	}
}
