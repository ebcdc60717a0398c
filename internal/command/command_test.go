// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"bytes"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoCommand struct {
	Command
	schema string
	args   []string
	ran    bool
}

func newEchoCommand(name string) *echoCommand {
	c := &echoCommand{Command: Command{Name: name, FlagSet: flag.NewFlagSet(name, flag.ContinueOnError)}}
	c.FlagSet().StringVar(&c.schema, "schema", "json", "wire schema")
	return c
}

func (c echoCommand) Name() string           { return c.Command.Name }
func (c echoCommand) FlagSet() *flag.FlagSet { return c.Command.FlagSet }

func (c *echoCommand) Parse(args []string) error {
	if err := c.FlagSet().Parse(args); err != nil {
		return err
	}
	c.args = c.FlagSet().Args()
	return nil
}

func (c *echoCommand) Run() error {
	c.ran = true
	return nil
}

func TestDispatchCommand(t *testing.T) {
	echo := newEchoCommand("echo")
	cmds := []CommandRunner{echo}

	require.NoError(t, DispatchCommand("echo", []string{"-schema", "msgpack", "capture.bin"}, cmds))
	assert.True(t, echo.ran)
	assert.Equal(t, "msgpack", echo.schema)
	assert.Equal(t, []string{"capture.bin"}, echo.args)

	assert.EqualError(t, DispatchCommand("nosuch", nil, cmds), "unknown command: nosuch")
}

func TestHelpCommand(t *testing.T) {
	called := false
	help := NewHelpCommand("help", func() { called = true })
	require.NoError(t, DispatchCommand("help", nil, []CommandRunner{help}))
	assert.True(t, called)
}

func TestPrintUsage(t *testing.T) {
	var buf bytes.Buffer
	cmds := []CommandRunner{NewHelpCommand("help", nil), newEchoCommand("echo")}
	PrintUsage(&buf, "Usage:\n\n", cmds)

	out := buf.String()
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "  echo\n")
	assert.Regexp(t, `-schema string\s+wire schema \(default: json\)`, out)
	assert.NotContains(t, out, "  help\n")
	assert.Contains(t, out, "Codec MimeType parameters:")
	assert.Regexp(t, `unrecognized=fail\|degrade\s+unrecognized payloads`, out)
}
