// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

// Accessors for internal/schema/stream.fbs, in the layout flatc --go emits.

package Frame

import "strconv"

type FrameFormat byte

const (
	FrameFormatNone     FrameFormat = 0
	FrameFormatStandard FrameFormat = 1
	FrameFormatExtended FrameFormat = 2
)

var EnumNamesFrameFormat = map[FrameFormat]string{
	FrameFormatNone:     "None",
	FrameFormatStandard: "Standard",
	FrameFormatExtended: "Extended",
}

var EnumValuesFrameFormat = map[string]FrameFormat{
	"None":     FrameFormatNone,
	"Standard": FrameFormatStandard,
	"Extended": FrameFormatExtended,
}

func (v FrameFormat) String() string {
	if s, ok := EnumNamesFrameFormat[v]; ok {
		return s
	}
	return "FrameFormat(" + strconv.FormatInt(int64(v), 10) + ")"
}
