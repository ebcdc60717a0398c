// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package message

func (f Fields) Has(key string) bool {
	_, ok := f[key]
	return ok
}

func (f Fields) String(key string) string {
	v, _ := f[key].(string)
	return v
}

func (f Fields) Int(key string) int64 {
	v, _ := f[key].(int64)
	return v
}

func (f Fields) Float(key string) float64 {
	v, _ := f[key].(float64)
	return v
}

func (f Fields) Bool(key string) bool {
	v, _ := f[key].(bool)
	return v
}

func (f Fields) Bytes(key string) []byte {
	v, _ := f[key].([]byte)
	if len(v) == 0 {
		return nil
	}
	return v
}

func (f Fields) Value(key string) Value {
	v, _ := f[key].(Value)
	return v
}

func (f Fields) IntPtr(key string) *int {
	if v, ok := f[key].(int64); ok {
		i := int(v)
		return &i
	}
	return nil
}

func (f Fields) FloatPtr(key string) *float64 {
	if v, ok := f[key].(float64); ok {
		return &v
	}
	return nil
}

func (f Fields) BoolPtr(key string) *bool {
	if v, ok := f[key].(bool); ok {
		return &v
	}
	return nil
}

// Optional setters, absent values are not stored.

func (f Fields) setString(key string, v string) {
	if v != "" {
		f[key] = v
	}
}

func (f Fields) setInt(key string, v *int) {
	if v != nil {
		f[key] = int64(*v)
	}
}

func (f Fields) setFloat(key string, v *float64) {
	if v != nil {
		f[key] = *v
	}
}

func (f Fields) setBool(key string, v *bool) {
	if v != nil {
		f[key] = *v
	}
}

func (f Fields) setBytes(key string, v []byte) {
	if len(v) > 0 {
		f[key] = v
	}
}
