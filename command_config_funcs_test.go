package optree

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/optree/optree/types"
)

func TestNewCmd(t *testing.T) {
	called := false
	cmd := NewCmd(
		WithName("serve"),
		WithAbout("Run the server"),
		WithCommandDescription("Runs the server in the foreground."),
		WithOperands("[ADDR]"),
		WithUsage("tool serve [ADDR]"),
		WithCommandOptions(
			NewOpt(WithShort('p'), WithLong("port"), WithRequiredArg("PORT"), WithKind(types.KindUint16)),
		),
		WithSubcommands(NewCmd(WithName("status"))),
		WithCallback(func(p *Parser, c *Command) error { called = true; return nil }),
	)

	assert.Equal(t, "serve", cmd.Name)
	assert.Equal(t, "Run the server", cmd.About)
	assert.Equal(t, "Runs the server in the foreground.", cmd.Description)
	assert.Equal(t, "[ADDR]", cmd.Operands)
	assert.Equal(t, "tool serve [ADDR]", cmd.Usage)
	assert.Len(t, cmd.Options, 1)
	assert.Len(t, cmd.Subcommands, 1)
	assert.Equal(t, "status", cmd.Subcommands[0].Name)

	assert.Nil(t, cmd.Callback(nil, nil))
	assert.True(t, called)
}

func TestCommand_Set(t *testing.T) {
	cmd := NewCmd(WithName("serve"))
	cmd.Set(WithAbout("Run the server"), WithCommandOptions(NewOpt(WithShort('v'))))
	assert.Equal(t, "Run the server", cmd.About)
	assert.Len(t, cmd.Options, 1)

	cmd.Set(WithCommandOptions(NewOpt(WithShort('q'))))
	assert.Len(t, cmd.Options, 2, "options accumulate across calls")
}

func TestNewCmd_ParsesLikeALiteral(t *testing.T) {
	var resolved string
	root := NewCmd(
		WithName("tool"),
		WithSubcommands(
			NewCmd(
				WithName("remote"),
				WithSubcommands(
					NewCmd(
						WithName("add"),
						WithCallback(func(p *Parser, c *Command) error {
							resolved = c.Path()
							return nil
						}),
					),
				),
			),
		),
	)
	p, err := NewParser(&root)
	assert.Nil(t, err)

	assert.Nil(t, p.Parse([]string{"tool", "remote", "add"}))
	assert.Equal(t, "tool remote add", resolved)
}
