// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package vicodec

import (
	"bytes"
	"fmt"
	"io"
	"iter"
	"log/slog"
	"strings"

	"github.com/boschglobal/dse.vicodec/pkg/classify"
	"github.com/boschglobal/dse.vicodec/pkg/codec/binary"
	"github.com/boschglobal/dse.vicodec/pkg/codec/canstream"
	"github.com/boschglobal/dse.vicodec/pkg/codec/record"
	"github.com/boschglobal/dse.vicodec/pkg/codec/text"
	"github.com/boschglobal/dse.vicodec/pkg/errors"
	"github.com/boschglobal/dse.vicodec/pkg/format"
	"github.com/boschglobal/dse.vicodec/pkg/message"
	"github.com/boschglobal/dse.vicodec/pkg/mimetype"
	"github.com/boschglobal/dse.vicodec/pkg/trace"
)

const DefaultMimeType = "type=vehicle;schema=json"

// Codec converts between typed vehicle messages and their encoded form. A
// Codec is not modified after NewCodec returns and is safe for concurrent use.
type Codec struct {
	mimeType   string
	mimeMap    map[string]*string
	schema     string
	policy     string
	classifier *classify.Classifier
	trace      trace.Trace
}

func NewCodec(MimeType string) (*Codec, error) {
	mm, err := mimetype.Decode(MimeType)
	if err != nil {
		return nil, errors.ErrConfigMimeType(err)
	}
	c := &Codec{
		mimeType:   MimeType,
		mimeMap:    mm,
		schema:     mimetype.Get(mm, mimetype.Schema, mimetype.SchemaJson),
		policy:     mimetype.Get(mm, mimetype.Unrecognized, mimetype.UnrecognizedFail),
		classifier: classify.Default(),
	}
	c.trace = c.newTrace()
	slog.Debug(fmt.Sprintf("vicodec: schema=%s unrecognized=%s", c.schema, c.policy))
	return c, nil
}

func (c *Codec) newTrace() trace.Trace {
	name := mimetype.Get(c.mimeMap, mimetype.Name, mimetype.Get(c.mimeMap, mimetype.Type, ""))
	return trace.New(strings.ToUpper(name))
}

func (c *Codec) Stat(param string) (*string, error) {
	if _param := c.mimeMap[param]; _param != nil {
		v := *_param
		return &v, nil
	}
	return nil, fmt.Errorf("parameter %s not found in vicodec codec", param)
}

// ContentType names the encoding produced by Encode.
func (c *Codec) ContentType() string {
	switch c.schema {
	case mimetype.SchemaFbs:
		return canstream.ContentType
	case mimetype.SchemaMsgpack:
		return binary.ContentType
	}
	return text.ContentType
}

// newCanStream returns a capture stream codec over stream. The bus and name
// parameters carry over when the codec itself is configured for type=can.
func (c *Codec) newCanStream(stream *[]byte) (*canstream.Codec, error) {
	mt := c.mimeType
	if c.schema != mimetype.SchemaFbs {
		mt = fmt.Sprintf("type=%s;schema=%s", mimetype.TypeCan, mimetype.SchemaFbs)
	}
	cs := &canstream.Codec{}
	if err := cs.Configure(mt, stream, c.trace); err != nil {
		return nil, err
	}
	return cs, nil
}

// Serialize encodes msg as a single JSON object.
func (c *Codec) Serialize(msg message.VehicleMessage) ([]byte, error) {
	payload, err := record.Encode(msg, record.Options{HexBytes: true})
	if err != nil {
		return nil, err
	}
	buf, err := text.Marshal(payload)
	if err != nil {
		return nil, err
	}
	c.traceTX(msg)
	return buf, nil
}

// Deserialize decodes a single JSON object into a typed message.
func (c *Codec) Deserialize(data []byte) (message.VehicleMessage, error) {
	v, err := text.Parse(data)
	if err != nil {
		return nil, err
	}
	return c.decodePayload(v, data)
}

// SerializeBinary encodes msg as a single msgpack map.
func (c *Codec) SerializeBinary(msg message.VehicleMessage) ([]byte, error) {
	payload, err := record.Encode(msg, record.Options{})
	if err != nil {
		return nil, err
	}
	buf, err := binary.Marshal(payload)
	if err != nil {
		return nil, err
	}
	c.traceTX(msg)
	return buf, nil
}

func (c *Codec) DeserializeBinary(data []byte) (message.VehicleMessage, error) {
	v, err := binary.Parse(data)
	if err != nil {
		return nil, err
	}
	return c.decodePayload(v, data)
}

func (c *Codec) decodePayload(v any, raw []byte) (message.VehicleMessage, error) {
	fs, err := classify.ExtractFields(v)
	if err != nil {
		if ce, ok := err.(*errors.CodecError); ok && ce.Snippet == "" {
			ce.Snippet = errors.Snippet(raw)
		}
		return nil, err
	}
	payload := v.(map[string]any)

	var msg message.VehicleMessage
	t := c.classifier.Classify(fs)
	if t == message.TagUnrecognized {
		if c.policy != mimetype.UnrecognizedDegrade {
			return nil, errors.ErrCodecUnrecognized(fs.Names())
		}
		slog.Warn(fmt.Sprintf("vicodec: unrecognized message fields %v, degraded to generic", fs.Names()))
		msg = record.Degrade(payload)
	} else {
		msg, err = record.Decode(t, payload)
		if err != nil {
			return nil, err
		}
	}
	if c.trace != nil {
		c.trace.TraceRX(msg)
	}
	return msg, nil
}

func (c *Codec) traceTX(msg message.VehicleMessage) {
	if c.trace != nil {
		c.trace.TraceTX(msg)
	}
}

// Decode reads every message in buf. The encoding is detected from the
// content: a CAN capture stream, delimited JSON text or sequential msgpack
// values.
func (c *Codec) Decode(buf []byte) ([]message.VehicleMessage, error) {
	var msgs []message.VehicleMessage
	f := format.Detect(buf)
	if f == format.CanStream {
		frames, err := c.readCanStream(buf)
		if err == nil {
			for _, frame := range frames {
				msgs = append(msgs, frame)
			}
			return msgs, nil
		}
		// Printable text can carry the stream identifier by chance.
		if !format.LooksLikeText(buf) {
			return nil, err
		}
		slog.Debug(fmt.Sprintf("vicodec: not a canstream (%v), decoding as text", err))
		f = format.Text
	}
	switch f {
	case format.Text:
		for i, seg := range text.Split(buf) {
			msg, err := c.Deserialize(seg)
			if err != nil {
				return nil, fmt.Errorf("message %d: %w", i, err)
			}
			msgs = append(msgs, msg)
		}
	case format.Binary:
		values, err := binary.ParseAll(buf)
		if err != nil {
			return nil, err
		}
		for i, v := range values {
			msg, err := c.decodePayload(v, nil)
			if err != nil {
				return nil, fmt.Errorf("message %d: %w", i, err)
			}
			msgs = append(msgs, msg)
		}
	}
	return msgs, nil
}

// Encode writes msgs as a stream in the configured schema.
func (c *Codec) Encode(msgs []message.VehicleMessage) ([]byte, error) {
	switch c.schema {
	case mimetype.SchemaFbs:
		var frames []*message.CanMessage
		for _, msg := range msgs {
			frame, ok := msg.(*message.CanMessage)
			if !ok {
				return nil, errors.NewCodecError(errors.ErrUnrecognizedVariant, nil,
					fmt.Sprintf("canstream carries can messages only, got %T", msg))
			}
			frames = append(frames, frame)
		}
		return c.writeCanStream(frames)
	case mimetype.SchemaMsgpack:
		buf := new(bytes.Buffer)
		for _, msg := range msgs {
			b, err := c.SerializeBinary(msg)
			if err != nil {
				return nil, err
			}
			buf.Write(b)
		}
		return buf.Bytes(), nil
	default:
		var list [][]byte
		for _, msg := range msgs {
			b, err := c.Serialize(msg)
			if err != nil {
				return nil, err
			}
			list = append(list, b)
		}
		return text.Join(list), nil
	}
}

func (c *Codec) readCanStream(buf []byte) ([]*message.CanMessage, error) {
	cs, err := c.newCanStream(&buf)
	if err != nil {
		return nil, err
	}
	return cs.Read()
}

func (c *Codec) writeCanStream(frames []*message.CanMessage) ([]byte, error) {
	var buf []byte
	if len(frames) == 0 {
		return buf, nil
	}
	cs, err := c.newCanStream(&buf)
	if err != nil {
		return nil, err
	}
	if err := cs.Write(frames); err != nil {
		return nil, err
	}
	if err := cs.Flush(); err != nil {
		return nil, err
	}
	return buf, nil
}

// Messages yields the messages of a delimited JSON stream as they are read.
// A decode error is yielded with a nil message and reading continues.
func (c *Codec) Messages(r io.Reader) iter.Seq2[message.VehicleMessage, error] {
	return func(yield func(message.VehicleMessage, error) bool) {
		scanner := text.NewScanner(r)
		for scanner.Scan() {
			if !yield(c.Deserialize(scanner.Bytes())) {
				return
			}
		}
		if err := scanner.Err(); err != nil {
			yield(nil, errors.ErrCodecMalformed(err, nil))
		}
	}
}

var defaultCodec = func() *Codec {
	c, err := NewCodec(DefaultMimeType)
	if err != nil {
		panic(err)
	}
	return c
}()

// Serialize encodes msg as JSON with the default codec.
func Serialize(msg message.VehicleMessage) ([]byte, error) {
	return defaultCodec.Serialize(msg)
}

// Deserialize decodes JSON with the default codec. Unrecognized payloads fail.
func Deserialize(data []byte) (message.VehicleMessage, error) {
	return defaultCodec.Deserialize(data)
}

func LooksLikeText(buf []byte) bool {
	return format.LooksLikeText(buf)
}

func ContainsJSON(buf []byte) bool {
	return format.ContainsJSON(buf)
}
