// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package message

import (
	"fmt"

	"github.com/boschglobal/dse.vicodec/pkg/errors"
)

const (
	ModeKey                 = "mode"
	PidKey                  = "pid"
	PayloadKey              = "payload"
	MultipleResponsesKey    = "multiple_responses"
	FrequencyKey            = "frequency"
	DecodedTypeKey          = "decoded_type"
	SuccessKey              = "success"
	NegativeResponseCodeKey = "negative_response_code"
)

type DecodedType string

const (
	DecodedTypeUnset DecodedType = ""
	DecodedTypeNone  DecodedType = "none"
	DecodedTypeObd2  DecodedType = "obd2"
)

type DiagnosticRequest struct {
	Base
	Bus               int
	Id                uint32
	Mode              int
	Pid               *int
	Payload           []byte
	MultipleResponses *bool
	Frequency         *float64
	Name              string
	DecodedType       DecodedType
}

func (m *DiagnosticRequest) Tag() Tag { return TagDiagnosticRequest }

func (m *DiagnosticRequest) Values() Fields {
	f := Fields{
		BusKey:  int64(m.Bus),
		IdKey:   int64(m.Id),
		ModeKey: int64(m.Mode),
	}
	f.setInt(PidKey, m.Pid)
	f.setBytes(PayloadKey, m.Payload)
	f.setBool(MultipleResponsesKey, m.MultipleResponses)
	f.setFloat(FrequencyKey, m.Frequency)
	f.setString(NameKey, m.Name)
	f.setString(DecodedTypeKey, string(m.DecodedType))
	return f
}

func (m *DiagnosticRequest) SetValues(f Fields) error {
	id, err := uint32Field(f, IdKey)
	if err != nil {
		return err
	}
	dt := DecodedType(f.String(DecodedTypeKey))
	switch dt {
	case DecodedTypeUnset, DecodedTypeNone, DecodedTypeObd2:
	default:
		return errors.ErrCodecFieldValue(DecodedTypeKey, fmt.Errorf("unsupported decoded type: %s", dt))
	}
	m.Bus = int(f.Int(BusKey))
	m.Id = id
	m.Mode = int(f.Int(ModeKey))
	m.Pid = f.IntPtr(PidKey)
	m.Payload = f.Bytes(PayloadKey)
	m.MultipleResponses = f.BoolPtr(MultipleResponsesKey)
	m.Frequency = f.FloatPtr(FrequencyKey)
	m.Name = f.String(NameKey)
	m.DecodedType = dt
	return nil
}

type DiagnosticResponse struct {
	Base
	Bus                  int
	Id                   uint32
	Mode                 int
	Success              bool
	Pid                  *int
	Payload              []byte
	Value                *float64
	NegativeResponseCode *int
}

func (m *DiagnosticResponse) Tag() Tag { return TagDiagnosticResponse }

func (m *DiagnosticResponse) Values() Fields {
	f := Fields{
		BusKey:     int64(m.Bus),
		IdKey:      int64(m.Id),
		ModeKey:    int64(m.Mode),
		SuccessKey: m.Success,
	}
	f.setInt(PidKey, m.Pid)
	f.setBytes(PayloadKey, m.Payload)
	f.setFloat(ValueKey, m.Value)
	f.setInt(NegativeResponseCodeKey, m.NegativeResponseCode)
	return f
}

func (m *DiagnosticResponse) SetValues(f Fields) error {
	id, err := uint32Field(f, IdKey)
	if err != nil {
		return err
	}
	m.Bus = int(f.Int(BusKey))
	m.Id = id
	m.Mode = int(f.Int(ModeKey))
	m.Success = f.Bool(SuccessKey)
	m.Pid = f.IntPtr(PidKey)
	m.Payload = f.Bytes(PayloadKey)
	m.Value = f.FloatPtr(ValueKey)
	m.NegativeResponseCode = f.IntPtr(NegativeResponseCodeKey)
	return nil
}
