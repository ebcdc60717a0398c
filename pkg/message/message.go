// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package message

// Tag identifies a message variant.
type Tag int

const (
	TagUnrecognized Tag = iota
	TagCan
	TagDiagnosticResponse
	TagDiagnosticRequest
	TagCommand
	TagCommandResponse
	TagEventedSimple
	TagSimple
	TagNamed
	TagGeneric
)

var tagNames = map[Tag]string{
	TagUnrecognized:       "unrecognized",
	TagCan:                "can",
	TagDiagnosticResponse: "diagnostic_response",
	TagDiagnosticRequest:  "diagnostic_request",
	TagCommand:            "command",
	TagCommandResponse:    "command_response",
	TagEventedSimple:      "evented",
	TagSimple:             "simple",
	TagNamed:              "named",
	TagGeneric:            "generic",
}

func (t Tag) String() string {
	if n, ok := tagNames[t]; ok {
		return n
	}
	return "unrecognized"
}

// Wire names of the fields common to all variants.
const (
	TimestampKey = "timestamp"
	ExtrasKey    = "extras"
)

// VehicleMessage is implemented by every message variant.
type VehicleMessage interface {
	Tag() Tag
	Header() *Base

	// Values returns the present schema fields keyed by wire name. Required
	// fields are always present.
	Values() Fields
	// SetValues loads coerced schema fields into the message.
	SetValues(f Fields) error
}

// Fields holds coerced field values keyed by wire name. Values are one of:
// string, float64, int64, bool, []byte, Value, *DiagnosticRequest.
type Fields map[string]any

// Base is the header carried by every message.
type Base struct {
	Timestamp float64
	Extras    map[string]any
}

func (b *Base) Header() *Base {
	return b
}

// GenericMessage carries only the header. Payloads with no variant fields
// other than extras decode to a GenericMessage.
type GenericMessage struct {
	Base
}

func (m *GenericMessage) Tag() Tag { return TagGeneric }

func (m *GenericMessage) Values() Fields { return Fields{} }

func (m *GenericMessage) SetValues(f Fields) error { return nil }

// New returns an empty message for the tag, or nil for TagUnrecognized.
func New(t Tag) VehicleMessage {
	switch t {
	case TagCan:
		return &CanMessage{}
	case TagDiagnosticResponse:
		return &DiagnosticResponse{}
	case TagDiagnosticRequest:
		return &DiagnosticRequest{}
	case TagCommand:
		return &Command{}
	case TagCommandResponse:
		return &CommandResponse{}
	case TagEventedSimple:
		return &EventedSimpleMessage{}
	case TagSimple:
		return &SimpleMessage{}
	case TagNamed:
		return &NamedMessage{}
	case TagGeneric:
		return &GenericMessage{}
	}
	return nil
}
