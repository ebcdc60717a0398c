// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package classify

import (
	"slices"

	"github.com/boschglobal/dse.vicodec/pkg/errors"
)

// FieldSet is the set of top-level field names of a payload.
type FieldSet map[string]struct{}

func NewFieldSet(names ...string) FieldSet {
	fs := make(FieldSet, len(names))
	for _, n := range names {
		fs[n] = struct{}{}
	}
	return fs
}

func (fs FieldSet) Has(name string) bool {
	_, ok := fs[name]
	return ok
}

// ContainsAll reports whether every name is in the set.
func (fs FieldSet) ContainsAll(names []string) bool {
	for _, n := range names {
		if !fs.Has(n) {
			return false
		}
	}
	return true
}

// Names returns the field names in sorted order.
func (fs FieldSet) Names() []string {
	names := make([]string, 0, len(fs))
	for n := range fs {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// ExtractFields returns the top-level field names of a structured payload.
// Anything other than a key/value object is a malformed payload.
func ExtractFields(payload any) (FieldSet, error) {
	obj, ok := payload.(map[string]any)
	if !ok || obj == nil {
		return nil, errors.ErrCodecNotObject(payload)
	}
	fs := make(FieldSet, len(obj))
	for k := range obj {
		fs[k] = struct{}{}
	}
	return fs, nil
}
