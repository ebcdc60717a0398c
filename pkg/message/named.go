// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package message

const (
	NameKey  = "name"
	ValueKey = "value"
	EventKey = "event"
)

type NamedMessage struct {
	Base
	Name string
}

func (m *NamedMessage) Tag() Tag { return TagNamed }

func (m *NamedMessage) Values() Fields {
	return Fields{NameKey: m.Name}
}

func (m *NamedMessage) SetValues(f Fields) error {
	m.Name = f.String(NameKey)
	return nil
}

type SimpleMessage struct {
	Base
	Name  string
	Value Value
}

func (m *SimpleMessage) Tag() Tag { return TagSimple }

func (m *SimpleMessage) Values() Fields {
	return Fields{NameKey: m.Name, ValueKey: m.Value}
}

func (m *SimpleMessage) SetValues(f Fields) error {
	m.Name = f.String(NameKey)
	m.Value = f.Value(ValueKey)
	return nil
}

type EventedSimpleMessage struct {
	Base
	Name  string
	Value Value
	Event Value
}

func (m *EventedSimpleMessage) Tag() Tag { return TagEventedSimple }

func (m *EventedSimpleMessage) Values() Fields {
	return Fields{NameKey: m.Name, ValueKey: m.Value, EventKey: m.Event}
}

func (m *EventedSimpleMessage) SetValues(f Fields) error {
	m.Name = f.String(NameKey)
	m.Value = f.Value(ValueKey)
	m.Event = f.Value(EventKey)
	return nil
}
