// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package message

import (
	"fmt"
	"math"

	"github.com/boschglobal/dse.vicodec/pkg/errors"
)

const (
	BusKey         = "bus"
	IdKey          = "id"
	DataKey        = "data"
	FrameFormatKey = "frame_format"
)

type FrameFormat string

const (
	FrameFormatNone     FrameFormat = ""
	FrameFormatStandard FrameFormat = "standard"
	FrameFormatExtended FrameFormat = "extended"
)

type CanMessage struct {
	Base
	Bus         int
	Id          uint32
	Data        []byte
	FrameFormat FrameFormat
}

func (m *CanMessage) Tag() Tag { return TagCan }

func (m *CanMessage) Values() Fields {
	f := Fields{
		BusKey:  int64(m.Bus),
		IdKey:   int64(m.Id),
		DataKey: m.Data,
	}
	f.setString(FrameFormatKey, string(m.FrameFormat))
	return f
}

func (m *CanMessage) SetValues(f Fields) error {
	id, err := uint32Field(f, IdKey)
	if err != nil {
		return err
	}
	ff := FrameFormat(f.String(FrameFormatKey))
	switch ff {
	case FrameFormatNone, FrameFormatStandard, FrameFormatExtended:
	default:
		return errors.ErrCodecFieldValue(FrameFormatKey, fmt.Errorf("unsupported frame format: %s", ff))
	}
	m.Bus = int(f.Int(BusKey))
	m.Id = id
	m.Data = f.Bytes(DataKey)
	m.FrameFormat = ff
	return nil
}

func uint32Field(f Fields, key string) (uint32, error) {
	v := f.Int(key)
	if v < 0 || v > math.MaxUint32 {
		return 0, errors.ErrCodecFieldValue(key, fmt.Errorf("out of range: %d", v))
	}
	return uint32(v), nil
}
