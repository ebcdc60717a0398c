// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package record

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/boschglobal/dse.vicodec/pkg/errors"
	"github.com/boschglobal/dse.vicodec/pkg/message"
	"github.com/boschglobal/dse.vicodec/pkg/schema"
)

type Options struct {
	// HexBytes renders byte fields as "0x" prefixed hex strings (text
	// encodings), otherwise byte fields are left as []byte.
	HexBytes bool
}

// Decode converts a classified payload into a typed message. Fields outside
// the variant schema are folded into the message extras.
func Decode(t message.Tag, payload map[string]any) (message.VehicleMessage, error) {
	s, ok := schema.For(t)
	if !ok {
		return nil, errors.ErrCodecUnrecognized(slices.Sorted(maps.Keys(payload)))
	}
	msg := message.New(t)
	hdr := msg.Header()
	fields := message.Fields{}
	extras := map[string]any{}

	for _, f := range s.Fields {
		raw, present := payload[f.Name]
		if present && raw == nil && !f.Required {
			present = false
		}
		if !present {
			if f.Required {
				return nil, errors.ErrCodecMissingField(f.Name, t.String())
			}
			continue
		}
		v, err := coerce(f, raw)
		if err != nil {
			return nil, err
		}
		switch f.Name {
		case message.ExtrasKey:
			maps.Copy(extras, v.(map[string]any))
		case message.TimestampKey:
			hdr.Timestamp = v.(float64)
		default:
			fields[f.Name] = v
		}
	}
	for k, v := range payload {
		if _, ok := s.Field(k); ok {
			continue
		}
		extras[k] = normalize(v)
	}

	if err := msg.SetValues(fields); err != nil {
		return nil, err
	}
	if len(extras) > 0 {
		hdr.Extras = extras
	}
	slog.Debug(fmt.Sprintf("record: decoded %s (fields=%d, extras=%d)", t, len(fields), len(extras)))
	return msg, nil
}

// Encode converts a typed message into a payload object. Variant fields are
// always emitted; extras are flattened to the top level unless their key is
// a reserved field name, those stay under the extras object.
func Encode(msg message.VehicleMessage, opts Options) (map[string]any, error) {
	if msg == nil {
		return nil, errors.NewCodecError(errors.ErrNoMessage, nil, "nil message")
	}
	s, ok := schema.For(msg.Tag())
	if !ok {
		return nil, errors.NewCodecError(errors.ErrUnrecognizedVariant, nil, fmt.Sprintf("no schema for %s", msg.Tag()))
	}

	values := msg.Values()
	out := make(map[string]any, len(values)+2)
	for _, f := range s.Fields {
		if f.Name == message.ExtrasKey || f.Name == message.TimestampKey {
			continue
		}
		v, ok := values[f.Name]
		if !ok {
			continue
		}
		ev, err := render(f, v, opts)
		if err != nil {
			return nil, err
		}
		out[f.Name] = ev
	}

	hdr := msg.Header()
	if hdr.Timestamp != 0 {
		out[message.TimestampKey] = hdr.Timestamp
	}
	nested := map[string]any{}
	for k, v := range hdr.Extras {
		if msg.Tag() == message.TagGeneric || schema.Reserved(k) {
			nested[k] = v
		} else {
			out[k] = v
		}
	}
	if len(nested) > 0 || msg.Tag() == message.TagGeneric {
		out[message.ExtrasKey] = nested
	}
	return out, nil
}

func render(f schema.Field, v any, opts Options) (any, error) {
	switch f.Kind {
	case schema.KindBytes:
		b, ok := v.([]byte)
		if !ok {
			return nil, errors.ErrCodecFieldType(f.Name, f.Kind.String(), v)
		}
		if opts.HexBytes {
			return EncodeHex(b), nil
		}
		if b == nil {
			b = []byte{}
		}
		return b, nil
	case schema.KindValue:
		val, ok := v.(message.Value)
		if !ok || !val.IsValid() {
			return nil, errors.ErrCodecFieldType(f.Name, f.Kind.String(), v)
		}
		return val.Any(), nil
	case schema.KindRequest:
		req, ok := v.(*message.DiagnosticRequest)
		if !ok {
			return nil, errors.ErrCodecFieldType(f.Name, f.Kind.String(), v)
		}
		return Encode(req, opts)
	}
	return v, nil
}

// Degrade returns a GenericMessage holding every payload field as an extra.
func Degrade(payload map[string]any) *message.GenericMessage {
	msg := &message.GenericMessage{}
	if len(payload) > 0 {
		msg.Extras = normalize(payload).(map[string]any)
	}
	return msg
}
