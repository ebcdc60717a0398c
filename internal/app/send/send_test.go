// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package send

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boschglobal/dse.vicodec/internal/app/capture"
	"github.com/boschglobal/dse.vicodec/pkg/connection"
	"github.com/boschglobal/dse.vicodec/pkg/message"
	"github.com/boschglobal/dse.vicodec/pkg/vicodec"
)

func TestBatches(t *testing.T) {
	msgs := []message.VehicleMessage{
		&message.NamedMessage{Name: "a"},
		&message.NamedMessage{Name: "b"},
		&message.NamedMessage{Name: "c"},
	}
	assert.Nil(t, Batches(nil, 2))
	assert.Len(t, Batches(msgs, 0), 1)
	assert.Len(t, Batches(msgs, 3), 1)
	batches := Batches(msgs, 2)
	require.Len(t, batches, 2)
	assert.Len(t, batches[0], 2)
	assert.Equal(t, msgs[2:], batches[1])
}

func TestSendCommand(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "capture.jsonl")
	require.NoError(t, os.WriteFile(file, []byte("{\"name\":\"a\"}\n{\"name\":\"b\",\"value\":1}\n{\"command\":\"version\"}\n"), 0o644))

	codec, err := vicodec.NewCodec(capture.MimeType("json", false))
	require.NoError(t, err)
	conn := &connection.StubConnection{Codec: codec}
	c := NewSendCommand("send")
	c.Connection = conn
	require.NoError(t, c.Parse([]string{"-lines", "-batch", "2", "-channel", "body", file}))
	require.NoError(t, c.Run())
	assert.Len(t, conn.Sent("body"), 2)

	var tags []message.Tag
	for _, m := range conn.Messages("body") {
		tags = append(tags, m.Tag())
	}
	assert.Equal(t, []message.Tag{message.TagNamed, message.TagSimple, message.TagCommand}, tags)
}

func TestSendCommandArgs(t *testing.T) {
	c := NewSendCommand("send")
	assert.Error(t, c.Parse([]string{}))
}
