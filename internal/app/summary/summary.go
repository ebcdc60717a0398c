// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package summary

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/boschglobal/dse.vicodec/internal/app/capture"
	"github.com/boschglobal/dse.vicodec/internal/command"
	"github.com/boschglobal/dse.vicodec/pkg/classify"
	"github.com/boschglobal/dse.vicodec/pkg/message"
	"github.com/boschglobal/dse.vicodec/pkg/mimetype"
	"github.com/boschglobal/dse.vicodec/pkg/vicodec"
)

type SummaryCommand struct {
	command.Command

	captureFile string
	long        bool
	lines       bool
	out         io.Writer
}

func NewSummaryCommand(name string) *SummaryCommand {
	c := &SummaryCommand{
		Command: command.Command{
			Name:    name,
			FlagSet: flag.NewFlagSet(name, flag.ExitOnError),
		},
		out: os.Stdout,
	}
	c.FlagSet().BoolVar(&c.long, "long", false, "list every message")
	c.FlagSet().BoolVar(&c.lines, "lines", false, "capture file holds one JSON message per line")
	return c
}

func (c SummaryCommand) Name() string {
	return c.Command.Name
}

func (c SummaryCommand) FlagSet() *flag.FlagSet {
	return c.Command.FlagSet
}

func (c *SummaryCommand) Parse(args []string) error {
	err := c.FlagSet().Parse(args)
	if err != nil {
		return err
	}
	if c.FlagSet().NArg() == 0 {
		return fmt.Errorf("capture file not specified")
	}
	c.captureFile = c.FlagSet().Arg(0)
	return nil
}

func (c *SummaryCommand) Run() error {
	codec, err := vicodec.NewCodec(capture.MimeType(mimetype.SchemaJson, true))
	if err != nil {
		return err
	}
	msgs, err := capture.Load(c.captureFile, c.lines, codec)
	if err != nil {
		return err
	}
	if c.long {
		if err := Long(c.out, codec, msgs); err != nil {
			return err
		}
	}
	Short(c.out, msgs)
	return nil
}

// Short writes the message count of each variant present in msgs.
func Short(w io.Writer, msgs []message.VehicleMessage) {
	count := map[message.Tag]int{}
	for _, msg := range msgs {
		count[msg.Tag()]++
	}
	for _, t := range classify.Priority {
		if n := count[t]; n > 0 {
			fmt.Fprintf(w, "%s: %d\n", t, n)
		}
	}
	fmt.Fprintf(w, "total: %d\n", len(msgs))
}

// Long writes one line per message: index, variant and JSON encoding.
func Long(w io.Writer, codec *vicodec.Codec, msgs []message.VehicleMessage) error {
	for i, msg := range msgs {
		buf, err := codec.Serialize(msg)
		if err != nil {
			return fmt.Errorf("message %d: %w", i, err)
		}
		fmt.Fprintf(w, "%d:%s:%s\n", i, msg.Tag(), buf)
	}
	return nil
}
