package optree

import (
	"fmt"
	"os"

	"github.com/optree/optree/types"
	"github.com/optree/optree/util"
)

// applyEnv fills unseen options of one command level from the
// environment. It runs as parsing leaves the level, either by descending
// into a subcommand or by exhausting the vector, so command-line values
// always win. Only options with a long name participate; the variable
// name is the configured prefix joined to the converted long name, e.g.
// "--log-level" under prefix "APP" reads APP_LOG_LEVEL.
func (s *session) applyEnv(cmd *Command) error {
	if s.p.envPrefix == "" {
		return nil
	}
	for i := range cmd.Options {
		opt := &cmd.Options[i]
		if opt.Long == "" || s.seen[opt] {
			continue
		}
		name := s.p.envPrefix + "_" + s.p.envConvert(opt.Long)
		raw, ok := os.LookupEnv(name)
		if !ok {
			continue
		}
		if opt.Group != 0 {
			if _, taken := s.groups[opt.Group]; taken {
				continue
			}
		}

		if !opt.takesArgument() {
			// No argument to hand over, so the variable itself decides
			// whether the option counts as given.
			v, err := util.Convert(raw, types.KindBool)
			if err != nil {
				return fmt.Errorf("%s: %w", name, conversionError(opt, err))
			}
			if !v.Bool() {
				continue
			}
			if opt.Group != 0 {
				s.groups[opt.Group] = opt
			}
			if err := s.execute(opt, "", false); err != nil {
				return err
			}
			continue
		}

		if opt.Group != 0 {
			s.groups[opt.Group] = opt
		}
		if err := s.execute(opt, raw, true); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}
