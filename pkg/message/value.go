// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package message

import (
	"fmt"
	"strconv"
)

type ValueKind uint8

const (
	ValueNone ValueKind = iota
	ValueNumber
	ValueString
	ValueBool
)

// Value is the typed value of a simple or evented message: a number, a string
// or a bool.
type Value struct {
	kind ValueKind
	num  float64
	str  string
	b    bool
}

func Number(v float64) Value { return Value{kind: ValueNumber, num: v} }
func String(v string) Value  { return Value{kind: ValueString, str: v} }
func Bool(v bool) Value      { return Value{kind: ValueBool, b: v} }

func (v Value) Kind() ValueKind { return v.kind }
func (v Value) IsValid() bool   { return v.kind != ValueNone }

func (v Value) Float() (float64, bool) { return v.num, v.kind == ValueNumber }
func (v Value) Str() (string, bool)    { return v.str, v.kind == ValueString }
func (v Value) Bool() (bool, bool)     { return v.b, v.kind == ValueBool }

// Any returns the value as float64, string or bool (nil if not set).
func (v Value) Any() any {
	switch v.kind {
	case ValueNumber:
		return v.num
	case ValueString:
		return v.str
	case ValueBool:
		return v.b
	}
	return nil
}

func (v Value) String() string {
	switch v.kind {
	case ValueNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case ValueString:
		return v.str
	case ValueBool:
		return strconv.FormatBool(v.b)
	}
	return "<none>"
}

// ValueOf converts a decoded scalar into a Value.
func ValueOf(x any) (Value, error) {
	switch x := x.(type) {
	case Value:
		return x, nil
	case string:
		return String(x), nil
	case bool:
		return Bool(x), nil
	case float64:
		return Number(x), nil
	case float32:
		return Number(float64(x)), nil
	case int:
		return Number(float64(x)), nil
	case int8:
		return Number(float64(x)), nil
	case int16:
		return Number(float64(x)), nil
	case int32:
		return Number(float64(x)), nil
	case int64:
		return Number(float64(x)), nil
	case uint:
		return Number(float64(x)), nil
	case uint8:
		return Number(float64(x)), nil
	case uint16:
		return Number(float64(x)), nil
	case uint32:
		return Number(float64(x)), nil
	case uint64:
		return Number(float64(x)), nil
	}
	return Value{}, fmt.Errorf("unsupported value type %T", x)
}
