// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package convert

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/boschglobal/dse.vicodec/internal/app/capture"
	"github.com/boschglobal/dse.vicodec/internal/command"
	"github.com/boschglobal/dse.vicodec/pkg/vicodec"
)

type ConvertCommand struct {
	command.Command

	inFile  string
	outFile string
	schema  string
	lines   bool
	degrade bool
}

func NewConvertCommand(name string) *ConvertCommand {
	c := &ConvertCommand{
		Command: command.Command{
			Name:    name,
			FlagSet: flag.NewFlagSet(name, flag.ExitOnError),
		},
	}
	c.FlagSet().StringVar(&c.schema, "schema", "json", "output schema (json, msgpack or fbs)")
	c.FlagSet().BoolVar(&c.lines, "lines", false, "input file holds one JSON message per line")
	c.FlagSet().BoolVar(&c.degrade, "degrade", false, "keep unrecognized messages as generic messages")
	return c
}

func (c ConvertCommand) Name() string {
	return c.Command.Name
}

func (c ConvertCommand) FlagSet() *flag.FlagSet {
	return c.Command.FlagSet
}

func (c *ConvertCommand) Parse(args []string) error {
	err := c.FlagSet().Parse(args)
	if err != nil {
		return err
	}
	if c.FlagSet().NArg() != 2 {
		return fmt.Errorf("input and output file not specified")
	}
	c.inFile = c.FlagSet().Arg(0)
	c.outFile = c.FlagSet().Arg(1)
	return nil
}

func (c *ConvertCommand) Run() error {
	codec, err := vicodec.NewCodec(capture.MimeType(c.schema, c.degrade))
	if err != nil {
		return err
	}
	msgs, err := capture.Load(c.inFile, c.lines, codec)
	if err != nil {
		return err
	}
	buf, err := codec.Encode(msgs)
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.outFile, buf, 0o644); err != nil {
		return err
	}
	slog.Info(fmt.Sprintf("Converted %d messages: %s -> %s (%s)", len(msgs), c.inFile, c.outFile, c.schema))
	return nil
}
