// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package trace

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/boschglobal/dse.vicodec/pkg/message"
)

const EnvPrefix = "VICODEC_TRACE_"

type Trace interface {
	TraceRX(msg message.VehicleMessage)
	TraceTX(msg message.VehicleMessage)
}

// GetTraceEnv reads a trace filter from the environment. The value is either
// "*" (trace everything) or a comma separated list of numeric ids and signal
// names.
func GetTraceEnv(envName string) (bool, map[uint32]bool, map[string]bool) {
	envName = strings.ToUpper(envName)
	filter := os.Getenv(envName)
	if filter == "" {
		return false, nil, nil
	}

	if filter == "*" {
		slog.Debug(fmt.Sprintf("    <wildcard> (all messages)"))
		return true, nil, nil
	}

	Filter := make(map[uint32]bool)
	Names := make(map[string]bool)
	for _, item := range strings.Split(filter, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		id, err := strconv.ParseUint(item, 0, 32)
		if err == nil {
			Filter[uint32(id)] = true
			slog.Debug(fmt.Sprintf("    %02x", id))
		} else {
			Names[item] = true
			slog.Debug(fmt.Sprintf("    %s", item))
		}
	}
	return false, Filter, Names
}

// TraceData logs traced messages at Info level. It is not modified after
// construction and may be shared between goroutines.
type TraceData struct {
	Name     string
	Wildcard bool
	Filter   map[uint32]bool
	Names    map[string]bool
}

// New returns a Trace configured from VICODEC_TRACE_<name>, or nil when the
// variable is not set.
func New(name string) Trace {
	wildcard, filter, names := GetTraceEnv(EnvPrefix + name)
	if !wildcard && len(filter) == 0 && len(names) == 0 {
		return nil
	}
	slog.Debug(fmt.Sprintf("Trace enabled: %s", name))
	return &TraceData{Name: name, Wildcard: wildcard, Filter: filter, Names: names}
}

func (t *TraceData) TraceRX(msg message.VehicleMessage) {
	t.trace("RX", msg)
}

func (t *TraceData) TraceTX(msg message.VehicleMessage) {
	t.trace("TX", msg)
}

func (t *TraceData) match(id *uint32, name string) bool {
	if t.Wildcard {
		return true
	}
	if id != nil && t.Filter[*id] {
		return true
	}
	return name != "" && t.Names[name]
}

func (t *TraceData) trace(direction string, msg message.VehicleMessage) {
	if msg == nil {
		return
	}
	var identifier, detail string
	var id *uint32
	var name string

	switch m := msg.(type) {
	case *message.CanMessage:
		id = &m.Id
		identifier = fmt.Sprintf("%d:%02x", m.Bus, m.Id)
		detail = fmt.Sprintf("%d :%s", len(m.Data), FormatPayload(m.Data))
	case *message.DiagnosticRequest:
		id, name = &m.Id, m.Name
		identifier = fmt.Sprintf("%d:%02x:%d", m.Bus, m.Id, m.Mode)
		detail = fmt.Sprintf("%d :%s", len(m.Payload), FormatPayload(m.Payload))
	case *message.DiagnosticResponse:
		id = &m.Id
		identifier = fmt.Sprintf("%d:%02x:%d", m.Bus, m.Id, m.Mode)
		detail = fmt.Sprintf("success=%t %d :%s", m.Success, len(m.Payload), FormatPayload(m.Payload))
	case *message.Command:
		name = m.Command
		identifier = m.Command
		detail = m.Action
	case *message.CommandResponse:
		name = m.Command
		identifier = m.Command
		detail = m.Message
	case *message.EventedSimpleMessage:
		name = m.Name
		identifier = m.Name
		detail = fmt.Sprintf("%s %s", m.Value, m.Event)
	case *message.SimpleMessage:
		name = m.Name
		identifier = m.Name
		detail = m.Value.String()
	case *message.NamedMessage:
		name = m.Name
		identifier = m.Name
	default:
		identifier = "-"
	}
	if !t.match(id, name) {
		return
	}
	slog.Info(fmt.Sprintf("(%s) %.6f [%s] %s %s %s", t.Name,
		msg.Header().Timestamp, identifier, direction, msg.Tag(), detail))
}

// FormatPayload renders bytes as hex, grouped by 8 and 32 bytes for longer
// payloads.
func FormatPayload(payload []byte) string {
	var b strings.Builder
	if len(payload) <= 16 {
		for _, v := range payload {
			fmt.Fprintf(&b, "%02x ", v)
		}
		return b.String()
	}
	for i, v := range payload {
		if i%32 == 0 {
			b.WriteString(" ")
		}
		if i%8 == 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%02x ", v)
	}
	return b.String()
}
