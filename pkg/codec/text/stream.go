// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package text

import (
	"bufio"
	"bytes"
	"io"
)

// Delimiter separates consecutive JSON messages in a stream.
const Delimiter byte = 0x00

// Split returns the messages of a delimited stream. Empty (or whitespace)
// segments are dropped.
func Split(data []byte) [][]byte {
	var msgs [][]byte
	for _, seg := range bytes.Split(data, []byte{Delimiter}) {
		if len(bytes.TrimSpace(seg)) == 0 {
			continue
		}
		msgs = append(msgs, seg)
	}
	return msgs
}

// Join writes each message followed by the delimiter.
func Join(msgs [][]byte) []byte {
	buf := new(bytes.Buffer)
	for _, m := range msgs {
		buf.Write(m)
		buf.WriteByte(Delimiter)
	}
	return buf.Bytes()
}

// ScanMessages is a bufio.SplitFunc for delimited streams.
func ScanMessages(data []byte, atEOF bool) (advance int, token []byte, err error) {
	for {
		if atEOF && len(data) == 0 {
			return advance, nil, nil
		}
		i := bytes.IndexByte(data, Delimiter)
		if i < 0 {
			if !atEOF {
				return advance, nil, nil
			}
			i = len(data)
		}
		seg := data[:i]
		next := i + 1
		if next > len(data) {
			next = len(data)
		}
		if len(bytes.TrimSpace(seg)) > 0 {
			return advance + next, seg, nil
		}
		advance += next
		data = data[next:]
		if !atEOF && len(data) == 0 {
			return advance, nil, nil
		}
	}
}

// NewScanner returns a scanner yielding the messages of r.
func NewScanner(r io.Reader) *bufio.Scanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 4096), 1024*1024)
	s.Split(ScanMessages)
	return s
}
