package optree

import (
	"strings"

	"github.com/optree/optree/completion"
	"github.com/optree/optree/types"
)

// GenerateCompletion renders a completion script for shell describing
// the parser's command tree. Unknown shells render bash.
func (p *Parser) GenerateCompletion(shell string) string {
	return completion.GetGenerator(shell).Generate(p.root.Name, p.completionData())
}

// SaveCompletion installs the completion script for shell into the
// shell's user completion directory.
func (p *Parser) SaveCompletion(shell string) error {
	cm, err := completion.NewCompletionManager(shell, p.root.Name)
	if err != nil {
		return err
	}
	cm.Accept(p.completionData())
	return cm.SaveCompletion()
}

// completionData flattens the command tree into the shell-independent
// completion model. Commands appear breadth-first as paths relative to
// the program name; hidden options are left out.
func (p *Parser) completionData() completion.CompletionData {
	data := completion.CompletionData{
		CommandDescriptions: map[string]string{},
		CommandFlags:        map[string][]completion.FlagPair{},
		FlagValues:          map[string][]completion.CompletionValue{},
	}
	data.Flags = completionFlags(p.root, data.FlagValues)
	prefix := p.root.Name + " "
	p.root.Walk(func(c *Command) bool {
		if c == p.root {
			return true
		}
		path := strings.TrimPrefix(c.Path(), prefix)
		data.Commands = append(data.Commands, path)
		if c.About != "" {
			data.CommandDescriptions[path] = c.About
		}
		if flags := completionFlags(c, data.FlagValues); len(flags) > 0 {
			data.CommandFlags[path] = flags
		}
		return true
	})
	return data
}

// completionFlags converts a command's visible options, recording value
// candidates for bool-typed arguments under the flag's primary name.
func completionFlags(c *Command, values map[string][]completion.CompletionValue) []completion.FlagPair {
	var flags []completion.FlagPair
	for i := range c.Options {
		opt := &c.Options[i]
		if opt.Hidden {
			continue
		}
		pair := completion.FlagPair{
			Long:        opt.Long,
			Description: opt.Description,
			Type:        completionFlagType(opt),
		}
		if opt.Short != 0 {
			pair.Short = string(opt.Short)
		}
		flags = append(flags, pair)
		if opt.takesArgument() && opt.Kind == types.KindBool {
			key := pair.Long
			if key == "" {
				key = pair.Short
			}
			values[key] = boolCandidates()
		}
	}
	return flags
}

// completionFlagType classifies an option for completion: options
// without arguments are standalone, FILE-flavored placeholders complete
// paths, everything else completes plain values.
func completionFlagType(opt *Option) completion.FlagType {
	if !opt.takesArgument() {
		return completion.FlagTypeStandalone
	}
	switch strings.ToUpper(strings.Trim(opt.ArgName, "[]")) {
	case "FILE", "PATH", "DIR", "DIRECTORY":
		return completion.FlagTypeFile
	}
	return completion.FlagTypeValue
}

func boolCandidates() []completion.CompletionValue {
	words := []string{"true", "false", "yes", "no", "on", "off", "enabled", "disabled"}
	vals := make([]completion.CompletionValue, 0, len(words))
	for _, w := range words {
		vals = append(vals, completion.CompletionValue{Pattern: w})
	}
	return vals
}
