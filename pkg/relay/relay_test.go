// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package relay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boschglobal/dse.vicodec/pkg/connection"
	"github.com/boschglobal/dse.vicodec/pkg/errors"
	"github.com/boschglobal/dse.vicodec/pkg/message"
	"github.com/boschglobal/dse.vicodec/pkg/vicodec"
)

func TestRelaySendReceive(t *testing.T) {
	for _, mimetype := range []string{"type=vehicle;schema=json", "type=vehicle;schema=msgpack"} {
		t.Run(mimetype, func(t *testing.T) {
			codec, err := vicodec.NewCodec(mimetype)
			require.NoError(t, err)
			conn := &connection.StubConnection{Codec: codec, Loopback: true}
			r := New(codec, conn)

			msgs := []message.VehicleMessage{
				&message.SimpleMessage{Name: "vehicle_speed", Value: message.Number(42.5)},
				&message.CanMessage{Bus: 1, Id: 0x123, Data: []byte{0x12, 0x34}},
			}
			require.NoError(t, r.Send("vehicle", msgs...))
			require.NoError(t, r.Send("vehicle"))
			assert.Len(t, conn.Sent("vehicle"), 1)
			assert.Equal(t, msgs, conn.Messages("vehicle"))

			got, channel, err := r.Receive(false)
			require.NoError(t, err)
			assert.Equal(t, "vehicle", channel)
			assert.Equal(t, msgs, got)

			_, _, err = r.Receive(true)
			assert.ErrorIs(t, err, errors.ErrConnNoMessage)
		})
	}
}

func TestRelayCanStream(t *testing.T) {
	codec, err := vicodec.NewCodec("type=can;schema=fbs")
	require.NoError(t, err)
	conn := &connection.StubConnection{Loopback: true}
	r := New(codec, conn)

	msgs := []message.VehicleMessage{&message.CanMessage{Bus: 1, Id: 0x7df, Data: []byte{0x02, 0x01, 0x0c}}}
	require.NoError(t, r.Send("can", msgs...))
	got, channel, err := r.Receive(false)
	require.NoError(t, err)
	assert.Equal(t, "can", channel)
	assert.Equal(t, msgs, got)

	err = r.Send("can", &message.NamedMessage{Name: "x"})
	assert.ErrorIs(t, err, errors.ErrUnrecognizedVariant)
	assert.Len(t, conn.Sent("can"), 1)
}

func TestRelayReceiveMalformed(t *testing.T) {
	codec, err := vicodec.NewCodec("type=vehicle;schema=json")
	require.NoError(t, err)
	conn := &connection.StubConnection{}
	conn.Push([]byte("{not json"), "vehicle")

	r := New(codec, conn)
	msgs, channel, err := r.Receive(false)
	assert.Nil(t, msgs)
	assert.Equal(t, "vehicle", channel)
	assert.ErrorIs(t, err, errors.ErrMalformedPayload)
}
