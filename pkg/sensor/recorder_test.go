// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package sensor

import (
	"encoding/json"
	"errors"
	"math/big"
	"sync"
	"testing"
	"time"

	"github.com/ava-labs/avalanchego/utils/logging"
	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/stretchr/testify/require"
)

type doneToken struct {
	done chan struct{}
	err  error
}

func newDoneToken(err error) *doneToken {
	t := &doneToken{done: make(chan struct{}), err: err}
	close(t.done)
	return t
}

func (t *doneToken) Wait() bool {
	<-t.done
	return true
}

func (t *doneToken) WaitTimeout(time.Duration) bool {
	return t.Wait()
}

func (t *doneToken) Done() <-chan struct{} {
	return t.done
}

func (t *doneToken) Error() error {
	return t.err
}

type published struct {
	topic    string
	qos      byte
	retained bool
	payload  []byte
}

type fakePublisher struct {
	mu       sync.Mutex
	messages []published
	err      error
}

func (p *fakePublisher) Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, published{
		topic:    topic,
		qos:      qos,
		retained: retained,
		payload:  payload.([]byte),
	})
	return newDoneToken(p.err)
}

func TestMQTTRecorder(t *testing.T) {
	publisher := &fakePublisher{}
	recorder := NewMQTTRecorder(publisher, "sensors/readings", logging.NoLog{})
	recordedAt := time.Date(2023, time.January, 12, 9, 0, 0, 0, time.UTC)
	recorder.now = func() time.Time { return recordedAt }

	recorder.RecordReading(Reading{
		Contract: testContract,
		Method:   "read",
		Arg:      10,
		Outputs:  []interface{}{big.NewInt(2150)},
	})

	require.Len(t, publisher.messages, 1)
	msg := publisher.messages[0]
	require.Equal(t, "sensors/readings", msg.topic)
	require.Equal(t, byte(0), msg.qos)
	require.False(t, msg.retained)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(msg.payload, &decoded))
	require.Equal(t, testContract.Hex(), decoded["contract"])
	require.Equal(t, "read", decoded["method"])
	require.Equal(t, float64(10), decoded["arg"])
	require.Equal(t, []interface{}{float64(2150)}, decoded["outputs"])
	require.Equal(t, "2023-01-12T09:00:00Z", decoded["recordedAt"])
}

func TestMQTTRecorderPublishFailureDoesNotPanic(t *testing.T) {
	publisher := &fakePublisher{err: errors.New("not connected")}
	recorder := NewMQTTRecorder(publisher, "sensors/readings", logging.NoLog{})
	require.NotPanics(t, func() {
		recorder.RecordReading(Reading{Contract: testContract, Method: "read"})
	})
	require.Len(t, publisher.messages, 1)
}

func TestMultiRecorder(t *testing.T) {
	first := &spyRecorder{}
	second := &spyRecorder{}
	multi := MultiRecorder{first, NopRecorder{}, second, NewLogRecorder(logging.NoLog{})}
	multi.RecordReading(Reading{Method: "read"})
	require.Equal(t, 1, first.count())
	require.Equal(t, 1, second.count())
}
