// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package relay

import (
	"fmt"
	"log/slog"

	"github.com/boschglobal/dse.vicodec/pkg/connection"
	"github.com/boschglobal/dse.vicodec/pkg/message"
	"github.com/boschglobal/dse.vicodec/pkg/vicodec"
)

// Relay moves typed messages over a Connection, encoding them with Codec.
type Relay struct {
	Codec      *vicodec.Codec
	Connection connection.Connection
}

func New(codec *vicodec.Codec, conn connection.Connection) *Relay {
	return &Relay{Codec: codec, Connection: conn}
}

// Send encodes msgs as one buffer and sends it on channel.
func (r *Relay) Send(channel string, msgs ...message.VehicleMessage) error {
	if len(msgs) == 0 {
		return nil
	}
	buf, err := r.Codec.Encode(msgs)
	if err != nil {
		return err
	}
	slog.Debug(fmt.Sprintf("relay: send %d message(s) on %s (%d bytes)", len(msgs), channel, len(buf)))
	return r.Connection.SendMessage(buf, channel)
}

// Receive waits for the next buffer and decodes the messages it carries.
func (r *Relay) Receive(immediate bool) ([]message.VehicleMessage, string, error) {
	buf, channel, err := r.Connection.WaitMessage(immediate)
	if err != nil {
		return nil, "", err
	}
	msgs, err := r.Codec.Decode(buf)
	if err != nil {
		return nil, channel, err
	}
	slog.Debug(fmt.Sprintf("relay: received %d message(s) on %s", len(msgs), channel))
	return msgs, channel, nil
}
