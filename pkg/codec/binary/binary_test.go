// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package binary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/boschglobal/dse.vicodec/pkg/errors"
)

func TestMarshalParse(t *testing.T) {
	b, err := Marshal(map[string]any{"bus": int64(1), "id": int64(291), "data": []byte{0x12, 0x34}})
	require.NoError(t, err)

	v, err := Parse(b)
	require.NoError(t, err)
	m, ok := v.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, []byte{0x12, 0x34}, m["data"])
	assert.EqualValues(t, 1, m["bus"])
	assert.EqualValues(t, 291, m["id"])
}

func TestMarshalDeterministic(t *testing.T) {
	payload := map[string]any{"a": 1.5, "b": "x", "c": true, "d": map[string]any{"z": 1.0, "y": 2.0}}
	first, err := Marshal(payload)
	require.NoError(t, err)
	for range 10 {
		b, err := Marshal(payload)
		require.NoError(t, err)
		assert.Equal(t, first, b)
	}
}

func TestParseAll(t *testing.T) {
	var stream []byte
	for _, name := range []string{"a", "b", "c"} {
		b, err := Marshal(map[string]any{"name": name})
		require.NoError(t, err)
		stream = append(stream, b...)
	}
	values, err := ParseAll(stream)
	require.NoError(t, err)
	require.Len(t, values, 3)
	assert.Equal(t, map[string]any{"name": "c"}, values[2])

	_, err = Parse(stream)
	assert.ErrorIs(t, err, errors.ErrMalformedPayload)

	values, err = ParseAll(nil)
	assert.NoError(t, err)
	assert.Empty(t, values)
}

func TestParseTruncated(t *testing.T) {
	b, err := Marshal(map[string]any{"name": "vehicle_speed", "value": 42.5})
	require.NoError(t, err)
	for _, n := range []int{1, 5, len(b) - 1} {
		_, err := ParseAll(b[:n])
		assert.ErrorIs(t, err, errors.ErrMalformedPayload, "n=%d", n)
	}
	_, err = Parse([]byte{0xc1})
	assert.ErrorIs(t, err, errors.ErrMalformedPayload)
}
