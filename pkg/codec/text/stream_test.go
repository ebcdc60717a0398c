// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitJoin(t *testing.T) {
	msgs := [][]byte{[]byte(`{"name":"a"}`), []byte(`{"name":"b"}`)}
	stream := Join(msgs)
	assert.Equal(t, "{\"name\":\"a\"}\x00{\"name\":\"b\"}\x00", string(stream))
	assert.Equal(t, msgs, Split(stream))

	assert.Equal(t, msgs, Split([]byte("\x00{\"name\":\"a\"}\x00\x00 \x00{\"name\":\"b\"}")))
	assert.Nil(t, Split(nil))
	assert.Nil(t, Split([]byte("\x00\x00")))
	assert.Empty(t, Join(nil))
}

func scanAll(t *testing.T, data string) []string {
	s := NewScanner(strings.NewReader(data))
	var out []string
	for s.Scan() {
		out = append(out, s.Text())
	}
	require.NoError(t, s.Err())
	return out
}

func TestScanMessages(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"\x00\x00", nil},
		{"{\"a\":1}", []string{"{\"a\":1}"}},
		{"{\"a\":1}\x00", []string{"{\"a\":1}"}},
		{"{\"a\":1}\x00\x00{\"b\":2}\x00", []string{"{\"a\":1}", "{\"b\":2}"}},
		{"\x00 \x00{\"a\":1}", []string{"{\"a\":1}"}},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, scanAll(t, tc.in), "%q", tc.in)
	}
}

func TestScanLargeStream(t *testing.T) {
	var msgs [][]byte
	for range 1000 {
		msgs = append(msgs, []byte(`{"name":"vehicle_speed","value":42.5}`))
	}
	s := NewScanner(bytes.NewReader(Join(msgs)))
	count := 0
	for s.Scan() {
		assert.Equal(t, msgs[0], s.Bytes())
		count++
	}
	assert.NoError(t, s.Err())
	assert.Equal(t, 1000, count)
}
