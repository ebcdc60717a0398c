// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package message

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/boschglobal/dse.vicodec/pkg/errors"
)

func TestTagString(t *testing.T) {
	assert.Equal(t, "can", TagCan.String())
	assert.Equal(t, "evented", TagEventedSimple.String())
	assert.Equal(t, "generic", TagGeneric.String())
	assert.Equal(t, "unrecognized", TagUnrecognized.String())
	assert.Equal(t, "unrecognized", Tag(99).String())
}

func TestNew(t *testing.T) {
	for tag := TagCan; tag <= TagGeneric; tag++ {
		msg := New(tag)
		if assert.NotNil(t, msg, tag.String()) {
			assert.Equal(t, tag, msg.Tag())
			assert.NotNil(t, msg.Header())
		}
	}
	assert.Nil(t, New(TagUnrecognized))
}

func TestValue(t *testing.T) {
	tests := []struct {
		in   any
		kind ValueKind
		want any
		str  string
	}{
		{42, ValueNumber, float64(42), "42"},
		{uint8(7), ValueNumber, float64(7), "7"},
		{42.5, ValueNumber, 42.5, "42.5"},
		{"open", ValueString, "open", "open"},
		{true, ValueBool, true, "true"},
		{Number(1), ValueNumber, float64(1), "1"},
	}
	for _, tc := range tests {
		v, err := ValueOf(tc.in)
		assert.NoError(t, err)
		assert.Equal(t, tc.kind, v.Kind())
		assert.True(t, v.IsValid())
		assert.Equal(t, tc.want, v.Any())
		assert.Equal(t, tc.str, v.String())
	}

	_, err := ValueOf([]int{1})
	assert.Error(t, err)
	_, err = ValueOf(nil)
	assert.Error(t, err)

	var v Value
	assert.False(t, v.IsValid())
	assert.Nil(t, v.Any())
	_, ok := v.Float()
	assert.False(t, ok)

	s, ok := String("x").Str()
	assert.True(t, ok)
	assert.Equal(t, "x", s)
	b, ok := Bool(false).Bool()
	assert.True(t, ok)
	assert.False(t, b)
}

func TestCanSetValues(t *testing.T) {
	m := &CanMessage{}
	err := m.SetValues(Fields{BusKey: int64(1), IdKey: int64(0x123), DataKey: []byte{1, 2}, FrameFormatKey: "standard"})
	assert.NoError(t, err)
	assert.Equal(t, CanMessage{Bus: 1, Id: 0x123, Data: []byte{1, 2}, FrameFormat: FrameFormatStandard}, *m)
	assert.Equal(t, Fields{BusKey: int64(1), IdKey: int64(0x123), DataKey: []byte{1, 2}, FrameFormatKey: "standard"}, m.Values())

	err = m.SetValues(Fields{BusKey: int64(1), IdKey: int64(-1), DataKey: []byte{}})
	assert.ErrorIs(t, err, errors.ErrFieldTypeMismatch)
	err = m.SetValues(Fields{BusKey: int64(1), IdKey: int64(1), FrameFormatKey: "fd"})
	assert.ErrorIs(t, err, errors.ErrFieldTypeMismatch)
}

func TestDiagnosticRequestValues(t *testing.T) {
	pid := 12
	m := &DiagnosticRequest{Bus: 1, Id: 0x7df, Mode: 1, Pid: &pid}
	f := m.Values()
	assert.Equal(t, Fields{BusKey: int64(1), IdKey: int64(0x7df), ModeKey: int64(1), PidKey: int64(12)}, f)

	r := &DiagnosticRequest{}
	assert.NoError(t, r.SetValues(f))
	assert.Equal(t, m, r)

	f[DecodedTypeKey] = "raw"
	assert.ErrorIs(t, r.SetValues(f), errors.ErrFieldTypeMismatch)
}

func TestCommandValues(t *testing.T) {
	enabled := true
	m := &Command{Command: CommandAfBypass, Bus: 2, Bypass: &enabled}
	assert.Equal(t, Fields{CommandKey: "af_bypass", BusKey: int64(2), BypassKey: true}, m.Values())

	r := &Command{}
	assert.NoError(t, r.SetValues(m.Values()))
	assert.Equal(t, m, r)
}

func TestFields(t *testing.T) {
	f := Fields{"s": "x", "i": int64(3), "f": 1.5, "b": true, "e": []byte{}}
	assert.True(t, f.Has("s"))
	assert.False(t, f.Has("z"))
	assert.Equal(t, "x", f.String("s"))
	assert.Equal(t, "", f.String("i"))
	assert.Equal(t, int64(3), f.Int("i"))
	assert.Equal(t, 1.5, f.Float("f"))
	assert.True(t, f.Bool("b"))
	assert.Nil(t, f.Bytes("e"))
	assert.Equal(t, 3, *f.IntPtr("i"))
	assert.Nil(t, f.IntPtr("s"))
	assert.Nil(t, f.FloatPtr("i"))
	assert.Nil(t, f.BoolPtr("z"))
}
