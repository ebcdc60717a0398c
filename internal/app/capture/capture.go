// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package capture

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/boschglobal/dse.vicodec/pkg/message"
	"github.com/boschglobal/dse.vicodec/pkg/mimetype"
	"github.com/boschglobal/dse.vicodec/pkg/vicodec"
)

// MimeType returns the codec configuration for writing captures in schema.
func MimeType(schema string, degrade bool) string {
	mt := fmt.Sprintf("type=%s;schema=%s", mimetype.TypeVehicle, schema)
	if schema == mimetype.SchemaFbs {
		mt = fmt.Sprintf("type=%s;schema=%s", mimetype.TypeCan, schema)
	}
	if degrade {
		mt += ";unrecognized=" + mimetype.UnrecognizedDegrade
	}
	return mt
}

// Load reads all messages of a capture file. With lines set the file holds
// one JSON message per line, otherwise the encoding is detected from the
// content.
func Load(path string, lines bool, codec *vicodec.Codec) ([]message.VehicleMessage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	slog.Debug(fmt.Sprintf("Load capture: %s (%d bytes)", path, len(data)))
	if !lines {
		return codec.Decode(data)
	}

	var msgs []message.VehicleMessage
	for i, line := range bytes.Split(data, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		msg, err := codec.Deserialize(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		msgs = append(msgs, msg)
	}
	return msgs, nil
}
