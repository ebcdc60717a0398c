// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

// Accessors for internal/schema/stream.fbs, in the layout flatc --go emits.

package Frame

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

type CanFrame struct {
	_tab flatbuffers.Table
}

func GetRootAsCanFrame(buf []byte, offset flatbuffers.UOffsetT) *CanFrame {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	x := &CanFrame{}
	x.Init(buf, n+offset)
	return x
}

func (rcv *CanFrame) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *CanFrame) Table() flatbuffers.Table {
	return rcv._tab
}

func (rcv *CanFrame) Bus() byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.GetByte(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *CanFrame) Id() uint32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		return rcv._tab.GetUint32(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *CanFrame) Payload(j int) byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(8))
	if o != 0 {
		a := rcv._tab.Vector(o)
		return rcv._tab.GetByte(a + flatbuffers.UOffsetT(j*1))
	}
	return 0
}

func (rcv *CanFrame) PayloadLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(8))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

func (rcv *CanFrame) PayloadBytes() []byte {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(8))
	if o != 0 {
		return rcv._tab.ByteVector(o + rcv._tab.Pos)
	}
	return nil
}

func (rcv *CanFrame) FrameFormat() FrameFormat {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(10))
	if o != 0 {
		return FrameFormat(rcv._tab.GetByte(o + rcv._tab.Pos))
	}
	return 0
}

func (rcv *CanFrame) Timestamp() float64 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(12))
	if o != 0 {
		return rcv._tab.GetFloat64(o + rcv._tab.Pos)
	}
	return 0.0
}

func CanFrameStart(builder *flatbuffers.Builder) {
	builder.StartObject(5)
}
func CanFrameAddBus(builder *flatbuffers.Builder, bus byte) {
	builder.PrependByteSlot(0, bus, 0)
}
func CanFrameAddId(builder *flatbuffers.Builder, id uint32) {
	builder.PrependUint32Slot(1, id, 0)
}
func CanFrameAddPayload(builder *flatbuffers.Builder, payload flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(2, flatbuffers.UOffsetT(payload), 0)
}
func CanFrameStartPayloadVector(builder *flatbuffers.Builder, numElems int) flatbuffers.UOffsetT {
	return builder.StartVector(1, numElems, 1)
}
func CanFrameAddFrameFormat(builder *flatbuffers.Builder, frameFormat FrameFormat) {
	builder.PrependByteSlot(3, byte(frameFormat), 0)
}
func CanFrameAddTimestamp(builder *flatbuffers.Builder, timestamp float64) {
	builder.PrependFloat64Slot(4, timestamp, 0.0)
}
func CanFrameEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}
