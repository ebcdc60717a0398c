// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"github.com/boschglobal/dse.vicodec/pkg/message"
)

type Kind uint8

const (
	KindString Kind = iota
	KindNumber
	KindInteger
	KindBool
	KindBytes
	KindValue
	KindObject
	KindRequest
)

var kindNames = []string{"string", "number", "integer", "bool", "bytes", "value", "object", "request"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

type Field struct {
	Name     string
	Kind     Kind
	Required bool
}

type Schema struct {
	Tag    message.Tag
	Fields []Field
}

// Required returns the names of the required fields, in schema order.
func (s Schema) Required() []string {
	var names []string
	for _, f := range s.Fields {
		if f.Required {
			names = append(names, f.Name)
		}
	}
	return names
}

func (s Schema) Field(name string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

func req(name string, kind Kind) Field { return Field{Name: name, Kind: kind, Required: true} }
func opt(name string, kind Kind) Field { return Field{Name: name, Kind: kind} }

var timestamp = opt(message.TimestampKey, KindNumber)

var schemas = map[message.Tag]Schema{
	message.TagCan: {message.TagCan, []Field{
		req(message.BusKey, KindInteger),
		req(message.IdKey, KindInteger),
		req(message.DataKey, KindBytes),
		opt(message.FrameFormatKey, KindString),
		timestamp,
		opt(message.ExtrasKey, KindObject),
	}},
	message.TagDiagnosticResponse: {message.TagDiagnosticResponse, []Field{
		req(message.BusKey, KindInteger),
		req(message.IdKey, KindInteger),
		req(message.ModeKey, KindInteger),
		req(message.SuccessKey, KindBool),
		opt(message.PidKey, KindInteger),
		opt(message.PayloadKey, KindBytes),
		opt(message.ValueKey, KindNumber),
		opt(message.NegativeResponseCodeKey, KindInteger),
		timestamp,
		opt(message.ExtrasKey, KindObject),
	}},
	message.TagDiagnosticRequest: {message.TagDiagnosticRequest, []Field{
		req(message.BusKey, KindInteger),
		req(message.IdKey, KindInteger),
		req(message.ModeKey, KindInteger),
		opt(message.PidKey, KindInteger),
		opt(message.PayloadKey, KindBytes),
		opt(message.MultipleResponsesKey, KindBool),
		opt(message.FrequencyKey, KindNumber),
		opt(message.NameKey, KindString),
		opt(message.DecodedTypeKey, KindString),
		timestamp,
		opt(message.ExtrasKey, KindObject),
	}},
	message.TagCommand: {message.TagCommand, []Field{
		req(message.CommandKey, KindString),
		opt(message.ActionKey, KindString),
		opt(message.RequestKey, KindRequest),
		opt(message.BusKey, KindInteger),
		opt(message.EnabledKey, KindBool),
		opt(message.BypassKey, KindBool),
		opt(message.FormatKey, KindString),
		opt(message.UnixTimeKey, KindInteger),
		timestamp,
		opt(message.ExtrasKey, KindObject),
	}},
	message.TagCommandResponse: {message.TagCommandResponse, []Field{
		req(message.CommandResponseKey, KindString),
		opt(message.MessageKey, KindString),
		opt(message.StatusKey, KindBool),
		timestamp,
		opt(message.ExtrasKey, KindObject),
	}},
	message.TagEventedSimple: {message.TagEventedSimple, []Field{
		req(message.NameKey, KindString),
		req(message.ValueKey, KindValue),
		req(message.EventKey, KindValue),
		timestamp,
		opt(message.ExtrasKey, KindObject),
	}},
	message.TagSimple: {message.TagSimple, []Field{
		req(message.NameKey, KindString),
		req(message.ValueKey, KindValue),
		timestamp,
		opt(message.ExtrasKey, KindObject),
	}},
	message.TagNamed: {message.TagNamed, []Field{
		req(message.NameKey, KindString),
		timestamp,
		opt(message.ExtrasKey, KindObject),
	}},
	message.TagGeneric: {message.TagGeneric, []Field{
		req(message.ExtrasKey, KindObject),
		timestamp,
	}},
}

// For returns the schema of a variant.
func For(t message.Tag) (Schema, bool) {
	s, ok := schemas[t]
	return s, ok
}

var reserved = func() map[string]struct{} {
	r := map[string]struct{}{}
	for _, s := range schemas {
		for _, f := range s.Fields {
			r[f.Name] = struct{}{}
		}
	}
	return r
}()

// Reserved reports whether name is a schema field of any variant. Extras
// with reserved names cannot be flattened into the top level of a payload
// without changing its classification.
func Reserved(name string) bool {
	_, ok := reserved[name]
	return ok
}
