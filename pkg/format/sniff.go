// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package format

import (
	"github.com/boschglobal/dse.vicodec/pkg/codec/canstream"
)

type Format uint8

const (
	Text Format = iota
	Binary
	CanStream
)

func (f Format) String() string {
	switch f {
	case Text:
		return "text"
	case Binary:
		return "binary"
	case CanStream:
		return "canstream"
	}
	return "unknown"
}

// LooksLikeText reports whether buf most likely holds JSON text rather than a
// binary encoding. All bytes must be printable ASCII, 0x20-0x7e, with 0x00
// allowed as the message delimiter. A binary
// buffer made only of printable bytes passes, so a parse failure remains the
// authoritative signal.
func LooksLikeText(buf []byte) bool {
	for _, b := range buf {
		switch {
		case b == 0x00:
		case b >= 0x01 && b <= 0x1f:
			return false
		case b >= 0x7f:
			return false
		}
	}
	return true
}

// ContainsJSON is LooksLikeText under its legacy name.
func ContainsJSON(buf []byte) bool {
	return LooksLikeText(buf)
}

// Detect selects the codec for buf without parsing it.
func Detect(buf []byte) Format {
	if canstream.IsStream(buf) {
		return CanStream
	}
	if LooksLikeText(buf) {
		return Text
	}
	return Binary
}
