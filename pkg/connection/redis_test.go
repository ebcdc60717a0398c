// Copyright 2025 Robert Bosch GmbH
//
// SPDX-License-Identifier: Apache-2.0

package connection

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tests in this file need a Redis server, set REDIS_URL to run them.
func redisUrl(t *testing.T) string {
	url := os.Getenv("REDIS_URL")
	if url == "" {
		t.Skip("REDIS_URL not set")
	}
	return url
}

func TestRedisConnection(t *testing.T) {
	r := RedisConnection{Name: "test", Url: redisUrl(t), Schema: "application/json"}

	err := r.Connect([]string{})
	require.NoError(t, err)
	assert.NotEmpty(t, r.version)
	assert.Equal(t, "vicodec.test.rx", r.endpoint.pull)
	assert.Equal(t, "vicodec.test.tx", r.endpoint.push)
	assert.Equal(t, 60*time.Second, r.endpoint.recvTimeout)

	c := r.client.Ping(r.ctx)
	assert.Nil(t, c.Err())

	r.Disconnect()
}

func TestRedisChannelMessage(t *testing.T) {
	ctx := context.Background()
	r := RedisConnection{Name: "test", Url: redisUrl(t), Schema: "application/json"}
	require.NoError(t, r.Connect([]string{}))
	defer r.Disconnect()
	r.client.Del(ctx, r.endpoint.push, r.endpoint.pull)

	assert.NoError(t, r.SendMessage([]byte(`{"name":"ignition"}`), "vehicle"))
	c := r.client.RPop(ctx, r.endpoint.push)
	require.Nil(t, c.Err())
	r.client.LPush(ctx, r.endpoint.pull, c.Val())

	msg, channel, err := r.WaitMessage(false)
	assert.NoError(t, err)
	assert.Equal(t, "vehicle", channel)
	assert.Equal(t, []byte(`{"name":"ignition"}`), msg)
}

func TestRedisWaitTimeout(t *testing.T) {
	r := RedisConnection{Name: "test", Url: redisUrl(t), endpoint: RedisEndpoint{recvTimeout: 2 * time.Second}}
	require.NoError(t, r.Connect([]string{}))
	defer r.Disconnect()
	require.Equal(t, 2*time.Second, r.endpoint.recvTimeout)
	r.client.Del(r.ctx, r.endpoint.pull)

	start := time.Now()
	msg, channel, err := r.WaitMessage(false)
	assert.WithinDuration(t, start.Add(2*time.Second), time.Now(), 500*time.Millisecond)
	assert.Nil(t, msg)
	assert.Equal(t, "", channel)
	assert.Error(t, err)

	start = time.Now()
	_, _, err = r.WaitMessage(true)
	assert.WithinDuration(t, start.Add(1*time.Second), time.Now(), 500*time.Millisecond)
	assert.Error(t, err)
}
