// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package classify

import (
	"github.com/boschglobal/dse.vicodec/pkg/message"
	"github.com/boschglobal/dse.vicodec/pkg/schema"
)

// Rule selects Tag when all Required fields are present.
type Rule struct {
	Tag      message.Tag
	Required []string
}

// Priority is the evaluation order of the default rules, most specific
// first. Required field sets overlap (a diagnostic response also satisfies
// the request rule) so the order decides the match.
var Priority = []message.Tag{
	message.TagCan,
	message.TagDiagnosticResponse,
	message.TagDiagnosticRequest,
	message.TagCommand,
	message.TagCommandResponse,
	message.TagEventedSimple,
	message.TagSimple,
	message.TagNamed,
	message.TagGeneric,
}

// DefaultRules returns the rules for Priority, required fields taken from the
// variant schemas.
func DefaultRules() []Rule {
	rules := make([]Rule, 0, len(Priority))
	for _, t := range Priority {
		s, _ := schema.For(t)
		rules = append(rules, Rule{Tag: t, Required: s.Required()})
	}
	return rules
}

// Classifier evaluates an ordered rule table. Safe for concurrent use.
type Classifier struct {
	rules []Rule
}

func New(rules ...Rule) *Classifier {
	c := &Classifier{rules: make([]Rule, len(rules))}
	copy(c.rules, rules)
	return c
}

var defaultClassifier = New(DefaultRules()...)

func Default() *Classifier {
	return defaultClassifier
}

func (c *Classifier) Rules() []Rule {
	rules := make([]Rule, len(c.rules))
	copy(rules, c.rules)
	return rules
}

// Classify returns the tag of the first rule satisfied by fs, or
// TagUnrecognized.
func (c *Classifier) Classify(fs FieldSet) message.Tag {
	for _, r := range c.rules {
		if len(r.Required) > 0 && fs.ContainsAll(r.Required) {
			return r.Tag
		}
	}
	return message.TagUnrecognized
}

// Classify uses the default rules.
func Classify(fs FieldSet) message.Tag {
	return defaultClassifier.Classify(fs)
}
