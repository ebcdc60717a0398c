// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package connection

import (
	"fmt"
	"slices"

	"github.com/boschglobal/dse.vicodec/pkg/errors"
	"github.com/boschglobal/dse.vicodec/pkg/message"
	"github.com/boschglobal/dse.vicodec/pkg/vicodec"
)

// Connection transports encoded message buffers on named channels. A
// Connection is owned by a single goroutine.
type Connection interface {
	Connect(channels []string) (err error)
	Disconnect()
	SendMessage(msg []byte, channel string) (err error)
	WaitMessage(immediate bool) (msg []byte, channel string, err error)
}

type Buffer struct {
	Channel string
	Msg     []byte
}

// StubConnection keeps everything in memory. Sent buffers are recorded per
// channel and, when Codec is set, decoded into vehicle messages as they are
// sent. With Loopback set a sent buffer is also queued for WaitMessage.
type StubConnection struct {
	Codec    *vicodec.Codec
	Loopback bool

	channels []string
	queue    []Buffer
	sent     map[string][][]byte
	messages map[string][]message.VehicleMessage
}

// Connect limits SendMessage to channels, an empty list allows any channel.
func (s *StubConnection) Connect(channels []string) (err error) {
	s.channels = slices.Clone(channels)
	return nil
}

func (s *StubConnection) Disconnect() {
	s.channels = nil
}

func (s *StubConnection) SendMessage(msg []byte, channel string) (err error) {
	if len(s.channels) > 0 && !slices.Contains(s.channels, channel) {
		return errors.NewConnectionError(nil, fmt.Sprintf("channel not connected: %s", channel))
	}
	// Callers reuse their buffers.
	buf := slices.Clone(msg)

	if s.Codec != nil {
		msgs, err := s.Codec.Decode(buf)
		if err != nil {
			return errors.NewConnectionError(err, "stub decode failed")
		}
		if s.messages == nil {
			s.messages = make(map[string][]message.VehicleMessage)
		}
		s.messages[channel] = append(s.messages[channel], msgs...)
	}
	if s.sent == nil {
		s.sent = make(map[string][][]byte)
	}
	s.sent[channel] = append(s.sent[channel], buf)
	if s.Loopback {
		s.queue = append(s.queue, Buffer{Channel: channel, Msg: buf})
	}
	return nil
}

func (s *StubConnection) WaitMessage(immediate bool) (msg []byte, channel string, err error) {
	if len(s.queue) == 0 {
		return nil, "", errors.ErrConnNoMessage
	}
	b := s.queue[0]
	s.queue = s.queue[1:]
	return b.Msg, b.Channel, nil
}

// Push queues msg for WaitMessage as if it arrived on channel.
func (s *StubConnection) Push(msg []byte, channel string) {
	s.queue = append(s.queue, Buffer{Channel: channel, Msg: slices.Clone(msg)})
}

// Sent returns the buffers sent on channel, in order.
func (s *StubConnection) Sent(channel string) [][]byte {
	return s.sent[channel]
}

// Messages returns the decoded messages sent on channel. Only recorded when
// Codec is set.
func (s *StubConnection) Messages(channel string) []message.VehicleMessage {
	return s.messages[channel]
}

func (s *StubConnection) Pending() int {
	return len(s.queue)
}

func (s *StubConnection) Reset() {
	s.queue = nil
	s.sent = nil
	s.messages = nil
}
