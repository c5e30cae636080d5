// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package sensor

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ava-labs/avalanchego/utils/logging"
	mqtt "github.com/eclipse/paho.mqtt.golang"
	"go.uber.org/zap"
)

const (
	mqttConnectTimeout    = 10 * time.Second
	mqttDisconnectQuiesce = 250 // milliseconds
)

// Publisher is the part of an mqtt client used by [MQTTRecorder]
type Publisher interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// ReadingMessage is the json payload published for each reading
type ReadingMessage struct {
	Contract   string        `json:"contract"`
	Method     string        `json:"method"`
	Arg        int64         `json:"arg"`
	Outputs    []interface{} `json:"outputs"`
	RecordedAt time.Time     `json:"recordedAt"`
}

// MQTTRecorder publishes readings to an mqtt topic without waiting for
// the broker acknowledgement. Publish failures are only logged
type MQTTRecorder struct {
	publisher Publisher
	topic     string
	log       logging.Logger
	now       func() time.Time
}

func NewMQTTRecorder(publisher Publisher, topic string, log logging.Logger) *MQTTRecorder {
	return &MQTTRecorder{
		publisher: publisher,
		topic:     topic,
		log:       log,
		now:       time.Now,
	}
}

// ConnectMQTT connects a client to [broker], eg tcp://localhost:1883
func ConnectMQTT(broker string, clientID string) (mqtt.Client, error) {
	opts := mqtt.NewClientOptions().AddBroker(broker).SetClientID(clientID)
	client := mqtt.NewClient(opts)
	token := client.Connect()
	if !token.WaitTimeout(mqttConnectTimeout) {
		return nil, fmt.Errorf("timeout connecting to mqtt broker %s", broker)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("failure connecting to mqtt broker %s: %w", broker, err)
	}
	return client, nil
}

// DisconnectMQTT waits a short quiesce period for in flight publishes
func DisconnectMQTT(client mqtt.Client) {
	client.Disconnect(mqttDisconnectQuiesce)
}

func (m *MQTTRecorder) RecordReading(reading Reading) {
	payload, err := json.Marshal(ReadingMessage{
		Contract:   reading.Contract.Hex(),
		Method:     reading.Method,
		Arg:        reading.Arg,
		Outputs:    reading.Outputs,
		RecordedAt: m.now().UTC(),
	})
	if err != nil {
		m.log.Warn("failure encoding reading for mqtt", zap.Error(err))
		return
	}
	token := m.publisher.Publish(m.topic, 0, false, payload)
	go func() {
		<-token.Done()
		if err := token.Error(); err != nil {
			m.log.Warn("failure publishing reading to mqtt", zap.String("topic", m.topic), zap.Error(err))
		}
	}()
}
