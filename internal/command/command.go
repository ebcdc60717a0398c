// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/boschglobal/dse.vicodec/pkg/mimetype"
)

type CommandRunner interface {
	Name() string
	FlagSet() *flag.FlagSet
	Parse([]string) error
	Run() error
}

type Command struct {
	Name    string
	FlagSet *flag.FlagSet
}

// PrintUsage writes usage, the options of each command and the codec
// MimeType parameters the commands build on.
func PrintUsage(w io.Writer, usage string, cmds []CommandRunner) {
	fmt.Fprint(w, usage)

	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "Commands:")
	for _, cmd := range cmds {
		if cmd.Name() == "help" {
			continue
		}
		fmt.Fprintf(tw, "  %s\n", cmd.Name())
		cmd.FlagSet().VisitAll(func(f *flag.Flag) {
			kind, usage := flag.UnquoteUsage(f)
			fmt.Fprintf(tw, "    -%s %s\t%s", f.Name, kind, usage)
			if f.DefValue != "" && f.DefValue != "false" && f.DefValue != "0" {
				fmt.Fprintf(tw, " (default: %s)", f.DefValue)
			}
			fmt.Fprintln(tw)
		})
	}
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "Codec MimeType parameters:")
	for _, p := range mimetype.Params {
		fmt.Fprintf(tw, "  %s=%s\t%s\n", p.Key, p.Values, p.Usage)
	}
	tw.Flush()
}

// DispatchCommand parses args with the named command and runs it.
func DispatchCommand(name string, args []string, cmds []CommandRunner) error {
	var cmd CommandRunner
	for _, c := range cmds {
		if c.Name() == name {
			cmd = c
			break
		}
	}
	if cmd == nil {
		return fmt.Errorf("unknown command: %s", name)
	}

	if err := cmd.Parse(args); err != nil {
		return err
	}
	slog.Debug(fmt.Sprintf("Running command: %s", cmd.Name()))
	cmd.FlagSet().Visit(func(f *flag.Flag) {
		slog.Debug(fmt.Sprintf("  %-10s: %s", f.Name, f.Value))
	})
	return cmd.Run()
}

// HelpCommand prints the tool usage with Usage.
type HelpCommand struct {
	Command
	Usage func()
}

func NewHelpCommand(name string, usage func()) *HelpCommand {
	return &HelpCommand{
		Command: Command{
			Name:    name,
			FlagSet: flag.NewFlagSet(name, flag.ExitOnError),
		},
		Usage: usage,
	}
}

func (c HelpCommand) Name() string {
	return c.Command.Name
}

func (c HelpCommand) FlagSet() *flag.FlagSet {
	return c.Command.FlagSet
}

func (c *HelpCommand) Parse(args []string) error {
	return c.FlagSet().Parse(args)
}

func (c *HelpCommand) Run() error {
	if c.Usage != nil {
		c.Usage()
	}
	return nil
}
