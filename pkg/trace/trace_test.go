// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package trace

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/boschglobal/dse.vicodec/pkg/message"
)

func captureLog(t *testing.T) *bytes.Buffer {
	buf := new(bytes.Buffer)
	old := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})))
	t.Cleanup(func() { slog.SetDefault(old) })
	return buf
}

func TestGetTraceEnv(t *testing.T) {
	t.Setenv("VICODEC_TRACE_BODY", "0x123, 292 ,vehicle_speed,,0")
	wildcard, filter, names := GetTraceEnv("vicodec_trace_body")
	assert.False(t, wildcard)
	assert.Equal(t, map[uint32]bool{0x123: true, 292: true, 0: true}, filter)
	assert.Equal(t, map[string]bool{"vehicle_speed": true}, names)

	t.Setenv("VICODEC_TRACE_BODY", "*")
	wildcard, filter, names = GetTraceEnv("VICODEC_TRACE_BODY")
	assert.True(t, wildcard)
	assert.Nil(t, filter)
	assert.Nil(t, names)

	wildcard, filter, names = GetTraceEnv("VICODEC_TRACE_UNSET")
	assert.False(t, wildcard)
	assert.Nil(t, filter)
	assert.Nil(t, names)
}

func TestNew(t *testing.T) {
	assert.Nil(t, New("NOT_SET"))

	t.Setenv("VICODEC_TRACE_VEHICLE", "*")
	tr := New("VEHICLE")
	if assert.NotNil(t, tr) {
		assert.True(t, tr.(*TraceData).Wildcard)
		assert.Equal(t, "VEHICLE", tr.(*TraceData).Name)
	}
}

func TestTraceFilter(t *testing.T) {
	buf := captureLog(t)
	tr := &TraceData{Name: "vi", Filter: map[uint32]bool{0x123: true}, Names: map[string]bool{"vehicle_speed": true}}

	tr.TraceRX(&message.CanMessage{Bus: 1, Id: 0x123, Data: []byte{0x12, 0x34}})
	tr.TraceRX(&message.CanMessage{Bus: 1, Id: 0x124, Data: []byte{0x00}})
	tr.TraceTX(&message.SimpleMessage{Name: "vehicle_speed", Value: message.Number(42.5)})
	tr.TraceTX(&message.SimpleMessage{Name: "engine_speed", Value: message.Number(900)})
	tr.TraceTX(&message.GenericMessage{})
	tr.TraceTX(nil)

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "\n"))
	assert.Contains(t, out, "(vi) 0.000000 [1:123] RX can 2 :12 34")
	assert.Contains(t, out, "(vi) 0.000000 [vehicle_speed] TX simple 42.5")
	assert.NotContains(t, out, "124")
	assert.NotContains(t, out, "engine_speed")
}

func TestTraceWildcard(t *testing.T) {
	buf := captureLog(t)
	tr := &TraceData{Name: "vi", Wildcard: true}
	pid := 12
	tr.TraceRX(&message.DiagnosticResponse{Base: message.Base{Timestamp: 1.5}, Bus: 1, Id: 0x7e8, Mode: 1,
		Success: true, Pid: &pid, Payload: []byte{0x1a}})
	tr.TraceTX(&message.Command{Command: message.CommandVersion})
	tr.TraceTX(&message.GenericMessage{})

	out := buf.String()
	assert.Contains(t, out, "(vi) 1.500000 [1:7e8:1] RX diagnostic_response success=true 1 :1a")
	assert.Contains(t, out, "[version] TX command")
	assert.Contains(t, out, "[-] TX generic")
}

func TestFormatPayload(t *testing.T) {
	assert.Equal(t, "", FormatPayload(nil))
	assert.Equal(t, "01 02 ", FormatPayload([]byte{1, 2}))

	long := make([]byte, 20)
	out := FormatPayload(long)
	assert.True(t, strings.HasPrefix(out, "  00 "))
	assert.Equal(t, 3, strings.Count(out, "  "))
}
