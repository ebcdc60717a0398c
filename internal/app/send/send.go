// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package send

import (
	"flag"
	"fmt"
	"log/slog"

	"github.com/boschglobal/dse.vicodec/internal/app/capture"
	"github.com/boschglobal/dse.vicodec/internal/command"
	"github.com/boschglobal/dse.vicodec/pkg/connection"
	"github.com/boschglobal/dse.vicodec/pkg/message"
	"github.com/boschglobal/dse.vicodec/pkg/relay"
	"github.com/boschglobal/dse.vicodec/pkg/vicodec"
)

type SendCommand struct {
	command.Command

	captureFile string
	uri         string
	name        string
	channel     string
	schema      string
	batch       int
	lines       bool

	// Connection overrides the Redis connection built from uri.
	Connection connection.Connection
}

func NewSendCommand(name string) *SendCommand {
	c := &SendCommand{
		Command: command.Command{
			Name:    name,
			FlagSet: flag.NewFlagSet(name, flag.ExitOnError),
		},
	}
	c.FlagSet().StringVar(&c.uri, "uri", "redis://localhost:6379", "redis connection uri")
	c.FlagSet().StringVar(&c.name, "name", "vehicle", "relay name, selects the redis lists")
	c.FlagSet().StringVar(&c.channel, "channel", "vehicle", "channel name")
	c.FlagSet().StringVar(&c.schema, "schema", "json", "wire schema (json, msgpack or fbs)")
	c.FlagSet().IntVar(&c.batch, "batch", 0, "messages per buffer (0 sends all in one buffer)")
	c.FlagSet().BoolVar(&c.lines, "lines", false, "capture file holds one JSON message per line")
	return c
}

func (c SendCommand) Name() string {
	return c.Command.Name
}

func (c SendCommand) FlagSet() *flag.FlagSet {
	return c.Command.FlagSet
}

func (c *SendCommand) Parse(args []string) error {
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

func (c *SendCommand) Run() error {
	codec, err := vicodec.NewCodec(capture.MimeType(c.schema, false) + ";name=" + c.name)
	if err != nil {
		return err
	}
	msgs, err := capture.Load(c.captureFile, c.lines, codec)
	if err != nil {
		return err
	}

	conn := c.Connection
	if conn == nil {
		conn = &connection.RedisConnection{Name: c.name, Url: c.uri, Schema: codec.ContentType()}
	}
	if err := conn.Connect([]string{c.channel}); err != nil {
		return err
	}
	defer conn.Disconnect()

	r := relay.New(codec, conn)
	for _, batch := range Batches(msgs, c.batch) {
		if err := r.Send(c.channel, batch...); err != nil {
			return err
		}
	}
	slog.Info(fmt.Sprintf("Sent %d messages on %s", len(msgs), c.channel))
	return nil
}

// Batches splits msgs into slices of size n, n <= 0 yields a single batch.
func Batches(msgs []message.VehicleMessage, n int) [][]message.VehicleMessage {
	if len(msgs) == 0 {
		return nil
	}
	if n <= 0 || n >= len(msgs) {
		return [][]message.VehicleMessage{msgs}
	}
	var batches [][]message.VehicleMessage
	for i := 0; i < len(msgs); i += n {
		batches = append(batches, msgs[i:min(i+n, len(msgs))])
	}
	return batches
}
