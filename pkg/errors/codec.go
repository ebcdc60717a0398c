// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package errors

import (
	"errors"
	"fmt"
)

// Failure kinds of a single decode call. Match with errors.Is().
var (
	ErrMalformedPayload    = fmt.Errorf("malformed payload")
	ErrUnrecognizedVariant = fmt.Errorf("unrecognized variant")
	ErrFieldTypeMismatch   = fmt.Errorf("field type mismatch")
	ErrNoMessage           = fmt.Errorf("no message provided")
)

const snippetLen = 64

var (
	ErrCodecMalformed = func(e error, raw []byte) error {
		return &CodecError{Kind: ErrMalformedPayload, Snippet: Snippet(raw), msg: "not a structured object", err: e}
	}
	ErrCodecNotObject = func(v any) error {
		return &CodecError{Kind: ErrMalformedPayload, msg: fmt.Sprintf("top-level value is %T, not an object", v)}
	}
	ErrCodecUnrecognized = func(fields []string) error {
		return &CodecError{Kind: ErrUnrecognizedVariant, msg: fmt.Sprintf("unrecognized combination of fields: %v", fields)}
	}
	ErrCodecMissingField = func(field string, variant string) error {
		return &CodecError{Kind: ErrUnrecognizedVariant, Field: field, msg: fmt.Sprintf("required field missing for %s", variant)}
	}
	ErrCodecFieldType = func(field string, want string, v any) error {
		return &CodecError{Kind: ErrFieldTypeMismatch, Field: field, Snippet: Snippet([]byte(fmt.Sprintf("%v", v))),
			msg: fmt.Sprintf("expected %s, got %T", want, v)}
	}
	ErrCodecFieldValue = func(field string, e error) error {
		return &CodecError{Kind: ErrFieldTypeMismatch, Field: field, msg: "invalid value", err: e}
	}
)

// CodecError describes a failed encode or decode of one message. Kind is one
// of the ErrXxx failure kinds, Field and Snippet locate the offending input.
type CodecError struct {
	Kind    error
	Field   string
	Snippet string
	msg     string
	err     error
}

func NewCodecError(kind error, e error, msg string) *CodecError {
	return &CodecError{Kind: kind, msg: msg, err: e}
}

func (e *CodecError) Error() string {
	s := fmt.Sprintf("codec: %v: %q", e.Kind, e.msg)
	if e.Field != "" {
		s += fmt.Sprintf(" (field=%s)", e.Field)
	}
	if e.Snippet != "" {
		s += fmt.Sprintf(" [%s]", e.Snippet)
	}
	if e.err != nil {
		s += fmt.Sprintf(" - %v", e.err)
	}
	return s
}

func (e *CodecError) Is(target error) bool {
	return e.Kind == target
}

func (e *CodecError) Unwrap() error {
	return e.err
}

// IsKind reports whether err is a CodecError of the given kind.
func IsKind(err error, kind error) bool {
	var ce *CodecError
	if errors.As(err, &ce) {
		return ce.Kind == kind
	}
	return false
}

// Snippet returns a printable excerpt of raw input for error reports.
func Snippet(raw []byte) string {
	if len(raw) > snippetLen {
		return fmt.Sprintf("%q...", raw[:snippetLen])
	}
	return fmt.Sprintf("%q", raw)
}
