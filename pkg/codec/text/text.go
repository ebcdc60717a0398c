// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf16"

	"github.com/boschglobal/dse.vicodec/pkg/errors"
)

const ContentType = "application/json"

// Parse decodes exactly one JSON value. Numbers are kept as json.Number so
// that integer fields are not rounded through float64.
func Parse(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, errors.ErrCodecMalformed(err, data)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.ErrCodecMalformed(fmt.Errorf("trailing data after JSON value"), data)
	}
	return v, nil
}

// Marshal encodes a payload object as compact JSON (keys sorted). The output
// is pure printable ASCII: non-ASCII runes and DEL are written as \u escapes.
func Marshal(payload map[string]any) ([]byte, error) {
	buf := new(bytes.Buffer)
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(payload); err != nil {
		return nil, errors.NewCodecError(errors.ErrFieldTypeMismatch, err, "json encode failed")
	}
	return escapeASCII(bytes.TrimSuffix(buf.Bytes(), []byte("\n"))), nil
}

func escapeASCII(b []byte) []byte {
	plain := true
	for _, c := range b {
		if c >= 0x7f {
			plain = false
			break
		}
	}
	if plain {
		return b
	}
	var sb strings.Builder
	sb.Grow(len(b) + 16)
	for _, r := range string(b) {
		switch {
		case r < 0x7f:
			sb.WriteRune(r)
		case r <= 0xffff:
			fmt.Fprintf(&sb, `\u%04x`, r)
		default:
			r1, r2 := utf16.EncodeRune(r)
			fmt.Fprintf(&sb, `\u%04x\u%04x`, r1, r2)
		}
	}
	return []byte(sb.String())
}
