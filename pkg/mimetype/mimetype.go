// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package mimetype

import (
	"fmt"
	"slices"
	"strings"
)

// Parameter keys.
const (
	Interface    = "interface"
	Type         = "type"
	Schema       = "schema"
	Unrecognized = "unrecognized"
	Name         = "name"
	Bus          = "bus"
)

const (
	TypeVehicle = "vehicle"
	TypeCan     = "can"

	SchemaJson    = "json"
	SchemaMsgpack = "msgpack"
	SchemaFbs     = "fbs"

	UnrecognizedFail    = "fail"
	UnrecognizedDegrade = "degrade"
)

// Param describes a MimeType parameter.
type Param struct {
	Key    string
	Values string
	Usage  string
}

var Params = []Param{
	{Type, "vehicle|can", "message type, can selects the CAN capture stream"},
	{Schema, "json|msgpack|fbs", "wire schema, fbs requires type=can"},
	{Interface, "stream", "optional"},
	{Unrecognized, "fail|degrade", "unrecognized payloads fail or degrade to generic (default fail)"},
	{Name, "<name>", "instance name, enables VICODEC_TRACE_<NAME>"},
	{Bus, "0..255", "bus for CAN frames without one"},
}

// Decode parses a MimeType parameter string, for example:
//
//	type=vehicle;schema=json;unrecognized=degrade
//
// Parameters are separated by ';' or ' '.
func Decode(MimeType string) (map[string]*string, error) {
	if MimeType == "" {
		return nil, fmt.Errorf("MimeType is empty")
	}

	MimeMap := make(map[string]*string)

	parts := strings.FieldsFunc(MimeType, func(r rune) bool {
		return r == ';' || r == ' '
	})
	for _, part := range parts {
		if kv := strings.SplitN(part, "=", 2); len(kv) == 2 {
			v := strings.TrimSpace(kv[1])
			MimeMap[strings.TrimSpace(kv[0])] = &v
		}
	}

	// required parameters.
	for _, key := range []string{Type, Schema} {
		if _, ok := MimeMap[key]; !ok {
			return nil, fmt.Errorf("missing required mimetype parameter: %s", key)
		}
	}
	switch t := *MimeMap[Type]; t {
	case TypeVehicle:
		if s := *MimeMap[Schema]; s != SchemaJson && s != SchemaMsgpack {
			return nil, fmt.Errorf("wrong schema: %s", s)
		}
	case TypeCan:
		if s := *MimeMap[Schema]; s != SchemaFbs {
			return nil, fmt.Errorf("wrong schema: %s", s)
		}
	default:
		return nil, fmt.Errorf("unsupported type: %s", t)
	}

	// optional parameters.
	if param, ok := MimeMap[Interface]; ok && *param != "stream" {
		return nil, fmt.Errorf("wrong interface: %s", *param)
	}
	if param, ok := MimeMap[Unrecognized]; ok {
		if *param != UnrecognizedFail && *param != UnrecognizedDegrade {
			return nil, fmt.Errorf("wrong unrecognized policy: %s", *param)
		}
	}
	for key := range MimeMap {
		if !slices.ContainsFunc(Params, func(p Param) bool { return p.Key == key }) {
			return nil, fmt.Errorf("unexpected mimetype parameter: %s", key)
		}
	}
	return MimeMap, nil
}

// Get returns the parameter value or def when not set.
func Get(MimeMap map[string]*string, key string, def string) string {
	if v := MimeMap[key]; v != nil {
		return *v
	}
	return def
}
