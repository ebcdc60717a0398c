// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package binary

import (
	"bytes"
	goerrors "errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/boschglobal/dse.vicodec/pkg/errors"
)

const ContentType = "application/msgpack"

// Marshal encodes a payload object as a msgpack map with sorted keys.
func Marshal(payload map[string]any) ([]byte, error) {
	buf := new(bytes.Buffer)
	enc := msgpack.NewEncoder(buf)
	enc.SetSortMapKeys(true)
	enc.UseCompactInts(true)
	if err := enc.Encode(payload); err != nil {
		return nil, errors.NewCodecError(errors.ErrFieldTypeMismatch, err, "msgpack encode failed")
	}
	return buf.Bytes(), nil
}

// Parse decodes exactly one msgpack value.
func Parse(data []byte) (any, error) {
	values, err := ParseAll(data)
	if err != nil {
		return nil, err
	}
	if len(values) != 1 {
		return nil, errors.ErrCodecMalformed(fmt.Errorf("expected one value, found %d", len(values)), data)
	}
	return values[0], nil
}

// ParseAll decodes consecutive msgpack values until the buffer is exhausted.
func ParseAll(data []byte) ([]any, error) {
	reader := bytes.NewReader(data)
	dec := msgpack.NewDecoder(reader)
	var values []any
	// bytes.Reader is used directly by the decoder (no read-ahead buffer),
	// so Len() is the undecoded remainder.
	for reader.Len() > 0 {
		v, err := dec.DecodeInterface()
		if err != nil {
			if goerrors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return nil, errors.ErrCodecMalformed(err, data)
		}
		values = append(values, v)
	}
	return values, nil
}
