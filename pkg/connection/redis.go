// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package connection

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	red "github.com/redis/go-redis/v9"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/boschglobal/dse.vicodec/pkg/errors"
)

var (
	recvTimeout    = 60 // VICODEC_TIMEOUT
	connectTimeout = 5  // REDIS_CONNECTION_TIMEOUT
)

type RedisEndpoint struct {
	pull        string
	push        string
	recvTimeout time.Duration
}

// RedisConnection pushes buffers onto the list vicodec.<Name>.tx and pops
// them from vicodec.<Name>.rx. Each list entry is a msgpack envelope of
// schema, channel and message bytes, where Schema is the content type of the
// codec producing the buffers.
type RedisConnection struct {
	Name   string
	Url    string
	Schema string

	endpoint RedisEndpoint

	ctx     context.Context
	client  *red.Client
	version string
}

func envSeconds(name string, def int) time.Duration {
	v, err := strconv.Atoi(os.Getenv(name))
	if err != nil || v <= 0 {
		v = def
	}
	return time.Duration(v) * time.Second
}

func (r *RedisConnection) Connect(channels []string) error {
	slog.Info(fmt.Sprintf("Redis: Connect: %s", r.Url))
	if r.Name == "" {
		return errors.NewConnectionError(nil, "name not configured")
	}
	r.endpoint.push = fmt.Sprintf("vicodec.%s.tx", r.Name)
	r.endpoint.pull = fmt.Sprintf("vicodec.%s.rx", r.Name)
	if r.endpoint.recvTimeout == 0 {
		r.endpoint.recvTimeout = envSeconds("VICODEC_TIMEOUT", recvTimeout)
	}
	slog.Info(fmt.Sprintf("Redis: PULL: %s", r.endpoint.pull))
	slog.Info(fmt.Sprintf("Redis: PUSH: %s", r.endpoint.push))

	r.ctx = context.Background()
	opt, err := red.ParseURL(r.Url)
	if err != nil {
		return errors.NewConnectionError(err, "bad redis url")
	}
	opt.DialTimeout = envSeconds("REDIS_CONNECTION_TIMEOUT", connectTimeout)
	r.client = red.NewClient(opt)

	c := r.client.InfoMap(r.ctx, "server")
	if c.Err() != nil {
		r.client.Close()
		r.client = nil
		return errors.NewConnectionError(c.Err(), "redis server not available")
	}
	r.version = c.Item("Server", "redis_version")
	slog.Info(fmt.Sprintf("Redis: Version: %s", r.version))

	return nil
}

func (r *RedisConnection) Disconnect() {
	slog.Info(fmt.Sprintf("Redis: Disconnect:"))
	if r.client != nil {
		r.client.Close()
		r.client = nil
	}
}

func encodeEnvelope(schema string, channel string, msg []byte) ([]byte, error) {
	buf := new(bytes.Buffer)
	enc := msgpack.NewEncoder(buf)
	if err := enc.EncodeArrayLen(3); err != nil {
		return nil, err
	}
	if err := enc.EncodeString(schema); err != nil {
		return nil, err
	}
	if err := enc.EncodeString(channel); err != nil {
		return nil, err
	}
	if err := enc.EncodeBytes(msg); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeEnvelope(buf []byte) (schema string, channel string, msg []byte, err error) {
	dec := msgpack.NewDecoder(bytes.NewReader(buf))
	n, err := dec.DecodeArrayLen()
	if err != nil {
		return
	}
	if n != 3 {
		err = errors.ErrConnRedisRespIncomplete
		return
	}
	if schema, err = dec.DecodeString(); err != nil {
		return
	}
	if channel, err = dec.DecodeString(); err != nil {
		return
	}
	msg, err = dec.DecodeBytes()
	return
}

func (r *RedisConnection) SendMessage(msg []byte, channel string) (err error) {
	if r.client == nil {
		return errors.ErrConnNotConnected
	}
	d, err := encodeEnvelope(r.Schema, channel, msg)
	if err != nil {
		return errors.NewConnectionError(err, "envelope encode failed")
	}
	slog.Debug(fmt.Sprintf("Redis: LPUSH -> %s (%d bytes)", r.endpoint.push, len(d)))
	if err := r.client.LPush(r.ctx, r.endpoint.push, d).Err(); err != nil {
		return errors.NewConnectionError(err, "LPUSH failed")
	}
	return nil
}

func (r *RedisConnection) WaitMessage(immediate bool) (msg []byte, channel string, err error) {
	if r.client == nil {
		return nil, "", errors.ErrConnNotConnected
	}
	timeout := r.endpoint.recvTimeout
	if immediate {
		timeout = time.Second
	}
	slog.Debug(fmt.Sprintf("Redis: BRPOP <- %s (timeout=%v)", r.endpoint.pull, timeout))
	c := r.client.BRPop(r.ctx, timeout, r.endpoint.pull)
	if c.Err() != nil {
		return nil, "", errors.ErrConnTimeoutWait
	}
	if len(c.Val()) != 2 {
		return nil, "", errors.ErrConnRedisRespIncomplete
	}
	schema, channel, msg, err := decodeEnvelope([]byte(c.Val()[1]))
	if err != nil {
		return nil, "", errors.NewConnectionError(err, "envelope decode failed")
	}
	if r.Schema != "" && schema != r.Schema {
		slog.Warn(fmt.Sprintf("Redis: message schema %s, expected %s", schema, r.Schema))
	}
	return msg, channel, nil
}
