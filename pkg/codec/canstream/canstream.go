// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package canstream

import (
	"fmt"
	"log/slog"
	"slices"
	"strconv"

	"github.com/boschglobal/dse.vicodec/internal/schema/VehicleInterface/Stream/Frame"
	"github.com/boschglobal/dse.vicodec/pkg/errors"
	"github.com/boschglobal/dse.vicodec/pkg/message"
	"github.com/boschglobal/dse.vicodec/pkg/mimetype"
	"github.com/boschglobal/dse.vicodec/pkg/trace"
	flatbuffers "github.com/google/flatbuffers/go"
)

const FileIdentifier = "VICS"

const fileIdentifierLength = 4

const ContentType = "application/x-vicodec-canstream"

// IsStream reports whether buf starts with a size prefixed capture stream.
func IsStream(buf []byte) bool {
	if len(buf) < flatbuffers.SizeUint32+flatbuffers.SizeUOffsetT+fileIdentifierLength {
		return false
	}
	return flatbuffers.BufferHasIdentifier(buf[flatbuffers.SizeUint32:], FileIdentifier)
}

// Codec writes CAN messages into, and reads them from, a flatbuffers capture
// stream. Read accepts several flushed streams stored back to back. A Codec
// is owned by a single goroutine.
type Codec struct {
	Name    string
	mimeMap map[string]*string
	builder *flatbuffers.Builder
	frames  []flatbuffers.UOffsetT
	stream  *[]byte
	trace   trace.Trace
	bus     int
}

func (c *Codec) Configure(MimeType string, stream *[]byte, t trace.Trace) error {
	if stream == nil {
		return errors.ErrConfigStream
	}
	var err error
	c.stream = stream
	c.builder = flatbuffers.NewBuilder(1024)

	c.mimeMap, err = mimetype.Decode(MimeType)
	if err != nil {
		return errors.ErrConfigMimeType(err)
	}
	if t := mimetype.Get(c.mimeMap, mimetype.Type, ""); t != mimetype.TypeCan {
		return errors.ErrConfigMimeType(fmt.Errorf("unsupported type: %s", t))
	}
	if v := mimetype.Get(c.mimeMap, mimetype.Bus, ""); v != "" {
		bus, err := strconv.ParseUint(v, 10, 8)
		if err != nil {
			return errors.ErrConfigMimeType(fmt.Errorf("wrong bus: %s", v))
		}
		c.bus = int(bus)
	}
	c.Name = mimetype.Get(c.mimeMap, mimetype.Name, c.Name)

	c.frames = make([]flatbuffers.UOffsetT, 0)
	c.trace = t
	return nil
}

func toFrameFormat(f message.FrameFormat) Frame.FrameFormat {
	switch f {
	case message.FrameFormatStandard:
		return Frame.FrameFormatStandard
	case message.FrameFormatExtended:
		return Frame.FrameFormatExtended
	}
	return Frame.FrameFormatNone
}

func fromFrameFormat(f Frame.FrameFormat) message.FrameFormat {
	switch f {
	case Frame.FrameFormatStandard:
		return message.FrameFormatStandard
	case Frame.FrameFormatExtended:
		return message.FrameFormatExtended
	}
	return message.FrameFormatNone
}

func (c *Codec) Write(msgs []*message.CanMessage) error {
	if msgs == nil {
		return fmt.Errorf("no can message provided")
	}
	for _, msg := range msgs {
		if msg == nil {
			continue
		}
		bus := msg.Bus
		if bus == 0 {
			bus = c.bus
		}
		if bus < 0 || bus > 255 {
			return errors.ErrCodecFieldValue(message.BusKey, fmt.Errorf("out of range: %d", bus))
		}
		payload := c.builder.CreateByteVector(msg.Data)
		Frame.CanFrameStart(c.builder)
		Frame.CanFrameAddBus(c.builder, byte(bus))
		Frame.CanFrameAddId(c.builder, msg.Id)
		Frame.CanFrameAddPayload(c.builder, payload)
		Frame.CanFrameAddFrameFormat(c.builder, toFrameFormat(msg.FrameFormat))
		Frame.CanFrameAddTimestamp(c.builder, msg.Timestamp)
		frame := Frame.CanFrameEnd(c.builder)

		if c.trace != nil {
			c.trace.TraceTX(msg)
		}
		c.frames = append(c.frames, frame)
	}
	return nil
}

func (c *Codec) streamFinalize() []byte {
	Frame.StreamStartFramesVector(c.builder, len(c.frames))
	for i := len(c.frames) - 1; i >= 0; i-- {
		c.builder.PrependUOffsetT(c.frames[i])
	}
	frameVec := c.builder.EndVector(len(c.frames))

	Frame.StreamStart(c.builder)
	Frame.StreamAddFrames(c.builder, frameVec)
	stream := Frame.StreamEnd(c.builder)
	c.builder.FinishSizePrefixedWithFileIdentifier(stream, []byte(FileIdentifier))
	return c.builder.FinishedBytes()
}

// Flush finalizes the frames written since the last Flush into the stream.
func (c *Codec) Flush() error {
	if len(c.frames) == 0 {
		return nil
	}
	buf := slices.Clone(c.streamFinalize())
	c.builder.Reset()
	c.frames = c.frames[:0]
	*c.stream = buf
	slog.Debug(fmt.Sprintf("canstream flush: %d bytes", len(buf)))
	return nil
}

func (c *Codec) Read() ([]*message.CanMessage, error) {
	return c.decode(*c.stream)
}

func (c *Codec) decode(buf []byte) (msgs []*message.CanMessage, err error) {
	if len(buf) == 0 {
		return nil, nil
	}
	if !IsStream(buf) {
		return nil, errors.ErrCodecMalformed(fmt.Errorf("missing file identifier %s", FileIdentifier), buf)
	}
	// Offsets in a corrupt buffer index out of range inside the accessors.
	defer func() {
		if r := recover(); r != nil {
			msgs = nil
			err = errors.ErrCodecMalformed(fmt.Errorf("corrupt stream: %v", r), buf)
		}
	}()
	// A capture file may hold several flushed streams back to back.
	for len(buf) > 0 {
		if len(buf) < flatbuffers.SizeUint32 {
			return nil, errors.ErrCodecMalformed(fmt.Errorf("trailing %d bytes", len(buf)), buf)
		}
		length := int(flatbuffers.GetSizePrefix(buf, 0)) + flatbuffers.SizeUint32
		if length > len(buf) {
			return nil, errors.ErrCodecMalformed(
				fmt.Errorf("incomplete stream, len %d (expected %d)", len(buf), length), buf)
		}
		if !IsStream(buf[:length]) {
			return nil, errors.ErrCodecMalformed(fmt.Errorf("missing file identifier %s", FileIdentifier), buf)
		}
		msgs = append(msgs, c.readFrames(buf[:length])...)
		buf = buf[length:]
	}
	if c.trace != nil {
		for _, msg := range msgs {
			c.trace.TraceRX(msg)
		}
	}
	return msgs, nil
}

func (c *Codec) readFrames(buf []byte) (msgs []*message.CanMessage) {
	_stream := Frame.GetSizePrefixedRootAsStream(buf, 0)
	for i := range _stream.FramesLength() {
		frame := new(Frame.CanFrame)
		if !_stream.Frames(frame, i) {
			break
		}
		msg := &message.CanMessage{
			Bus:         int(frame.Bus()),
			Id:          frame.Id(),
			Data:        slices.Clone(frame.PayloadBytes()),
			FrameFormat: fromFrameFormat(frame.FrameFormat()),
		}
		if len(msg.Data) == 0 {
			msg.Data = nil
		}
		msg.Timestamp = frame.Timestamp()
		msgs = append(msgs, msg)
	}
	return msgs
}
