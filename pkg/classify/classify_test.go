// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/boschglobal/dse.vicodec/pkg/errors"
	"github.com/boschglobal/dse.vicodec/pkg/message"
)

func TestExtractFields(t *testing.T) {
	fs, err := ExtractFields(map[string]any{"name": "speed", "value": 1})
	assert.NoError(t, err)
	assert.Equal(t, []string{"name", "value"}, fs.Names())
	assert.True(t, fs.Has("name"))
	assert.False(t, fs.Has("event"))

	fs, err = ExtractFields(map[string]any{})
	assert.NoError(t, err)
	assert.Empty(t, fs.Names())

	for _, v := range []any{nil, []any{1}, "text", 42.0, map[string]any(nil)} {
		_, err := ExtractFields(v)
		assert.ErrorIs(t, err, errors.ErrMalformedPayload)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		fields []string
		want   message.Tag
	}{
		{[]string{"bus", "id", "data"}, message.TagCan},
		{[]string{"bus", "id", "data", "mode", "success"}, message.TagCan},
		{[]string{"bus", "id", "mode", "success"}, message.TagDiagnosticResponse},
		{[]string{"bus", "id", "mode", "success", "pid", "payload"}, message.TagDiagnosticResponse},
		{[]string{"bus", "id", "mode"}, message.TagDiagnosticRequest},
		{[]string{"bus", "id", "mode", "pid"}, message.TagDiagnosticRequest},
		{[]string{"command"}, message.TagCommand},
		{[]string{"command", "request"}, message.TagCommand},
		{[]string{"command_response", "message"}, message.TagCommandResponse},
		{[]string{"name", "value", "event"}, message.TagEventedSimple},
		{[]string{"name", "value"}, message.TagSimple},
		{[]string{"name", "value", "timestamp"}, message.TagSimple},
		{[]string{"name"}, message.TagNamed},
		{[]string{"name", "event"}, message.TagNamed},
		{[]string{"extras"}, message.TagGeneric},
		{[]string{"name", "extras"}, message.TagNamed},
		{[]string{"value"}, message.TagUnrecognized},
		{[]string{"bus", "id"}, message.TagUnrecognized},
		{[]string{"timestamp"}, message.TagUnrecognized},
		{[]string{}, message.TagUnrecognized},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Classify(NewFieldSet(tc.fields...)), "%v", tc.fields)
	}
}

func TestClassifyPriority(t *testing.T) {
	// A payload satisfying every rule matches the first in Priority.
	all := NewFieldSet("bus", "id", "data", "mode", "success", "command",
		"command_response", "name", "value", "event", "extras")
	assert.Equal(t, Priority[0], Classify(all))

	rules := DefaultRules()
	assert.Len(t, rules, len(Priority))
	for i, r := range rules {
		assert.Equal(t, Priority[i], r.Tag)
		assert.NotEmpty(t, r.Required)
	}
}

func TestClassifierRules(t *testing.T) {
	c := New(
		Rule{Tag: message.TagSimple, Required: []string{"name", "value"}},
		Rule{Tag: message.TagEventedSimple, Required: []string{"name", "value", "event"}},
		Rule{Tag: message.TagNamed},
	)
	assert.Equal(t, message.TagSimple, c.Classify(NewFieldSet("name", "value", "event")))
	// Rules with no required fields never match.
	assert.Equal(t, message.TagUnrecognized, c.Classify(NewFieldSet("other")))

	rules := c.Rules()
	rules[0].Tag = message.TagCan
	assert.Equal(t, message.TagSimple, c.Rules()[0].Tag)
}
