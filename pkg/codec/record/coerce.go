// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package record

import (
	"encoding/hex"
	"encoding/json"
	"math"
	"strings"

	"github.com/boschglobal/dse.vicodec/pkg/errors"
	"github.com/boschglobal/dse.vicodec/pkg/message"
	"github.com/boschglobal/dse.vicodec/pkg/schema"
)

func coerce(f schema.Field, raw any) (any, error) {
	mismatch := func() error { return errors.ErrCodecFieldType(f.Name, f.Kind.String(), raw) }

	switch f.Kind {
	case schema.KindString:
		if s, ok := raw.(string); ok {
			return s, nil
		}
	case schema.KindNumber:
		if v, ok := toFloat(raw); ok {
			return v, nil
		}
	case schema.KindInteger:
		if v, ok := toInt(raw); ok {
			return v, nil
		}
	case schema.KindBool:
		if b, ok := raw.(bool); ok {
			return b, nil
		}
	case schema.KindBytes:
		switch v := raw.(type) {
		case []byte:
			return v, nil
		case string:
			b, err := DecodeHex(v)
			if err != nil {
				return nil, errors.ErrCodecFieldValue(f.Name, err)
			}
			return b, nil
		}
	case schema.KindValue:
		if n, ok := raw.(json.Number); ok {
			v, err := n.Float64()
			if err != nil {
				return nil, errors.ErrCodecFieldValue(f.Name, err)
			}
			return message.Number(v), nil
		}
		if v, err := message.ValueOf(raw); err == nil {
			return v, nil
		}
	case schema.KindObject:
		if obj, ok := raw.(map[string]any); ok {
			return normalize(obj), nil
		}
	case schema.KindRequest:
		obj, ok := raw.(map[string]any)
		if !ok {
			break
		}
		req, err := Decode(message.TagDiagnosticRequest, obj)
		if err != nil {
			if ce, ok := err.(*errors.CodecError); ok {
				ce.Field = f.Name + "." + ce.Field
				ce.Kind = errors.ErrFieldTypeMismatch
			}
			return nil, err
		}
		return req, nil
	}
	return nil, mismatch()
}

func toFloat(raw any) (float64, bool) {
	switch v := raw.(type) {
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case float64:
		return v, true
	case float32:
		return float64(v), true
	}
	if i, ok := toInt(raw); ok {
		return float64(i), true
	}
	return 0, false
}

func toInt(raw any) (int64, bool) {
	switch v := raw.(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i, true
		}
		f, err := v.Float64()
		if err != nil {
			return 0, false
		}
		return wholeFloat(f)
	case float64:
		return wholeFloat(v)
	case float32:
		return wholeFloat(float64(v))
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint:
		if uint64(v) <= math.MaxInt64 {
			return int64(v), true
		}
	case uint64:
		if v <= math.MaxInt64 {
			return int64(v), true
		}
	}
	return 0, false
}

func wholeFloat(f float64) (int64, bool) {
	if f != math.Trunc(f) || f < math.MinInt64 || f >= 1<<63 {
		return 0, false
	}
	return int64(f), true
}

// normalize converts decoded numbers to float64 (recursively) so that extras
// compare equal regardless of the wire encoding they came from.
func normalize(v any) any {
	switch v := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, e := range v {
			out[k] = normalize(e)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = normalize(e)
		}
		return out
	case json.Number:
		if f, err := v.Float64(); err == nil {
			return f
		}
		return v.String()
	case string, bool, nil, []byte:
		return v
	}
	if f, ok := toFloat(v); ok {
		return f
	}
	return v
}

// DecodeHex decodes a hex string with an optional "0x" prefix.
func DecodeHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	return hex.DecodeString(s)
}

func EncodeHex(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}
