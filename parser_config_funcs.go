package optree

import "io"

// WithLongOptions enables or disables long-option recognition. When
// disabled, tokens starting with "--" are treated as short-option
// sequences. Long options are enabled by default.
func WithLongOptions(enabled bool) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.longOpts = enabled
	}
}

// WithAttachedArguments enables or disables option-arguments attached to
// the option itself ("--file=x", "-fx"). When disabled, option-arguments
// are only accepted as the following command-line argument. Attachment
// is enabled by default.
func WithAttachedArguments(enabled bool) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.attached = enabled
	}
}

// WithUsageOnError makes ParseOrExit print the failing command's usage
// line to the error stream after the error message.
func WithUsageOnError(enabled bool) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.usageOnError = enabled
	}
}

// WithEnvPrefix switches on environment-variable fallback. After a level
// is parsed, options with a long name that were not seen on the command
// line are looked up as PREFIX_LONGNAME in the environment.
func WithEnvPrefix(prefix string) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.envPrefix = prefix
	}
}

// WithEnvNameConverter allows setting a custom name converter for
// environment variable names.
func WithEnvNameConverter(converter NameConversionFunc) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.envConvert = converter
	}
}

// WithHelpConfig adjusts help rendering.
func WithHelpConfig(config HelpConfig) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.helpConfig = config
	}
}

// WithStdout redirects regular parser output such as help text.
func WithStdout(w io.Writer) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.stdout = w
	}
}

// WithStderr redirects parser error output.
func WithStderr(w io.Writer) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.stderr = w
	}
}

// WithExitFunc replaces os.Exit for ParseOrExit and the help option.
func WithExitFunc(exit func(code int)) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.exit = exit
	}
}
