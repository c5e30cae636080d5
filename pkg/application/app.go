// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"path/filepath"

	"github.com/ava-labs/avalanchego/utils/logging"
	"go.uber.org/zap"

	"github.com/ava-labs/sensor-cli/pkg/config"
	"github.com/ava-labs/sensor-cli/pkg/constants"
	"github.com/ava-labs/sensor-cli/pkg/sensor"
)

type Sensor struct {
	Log     logging.Logger
	baseDir string
	Conf    *config.Config
}

func New() *Sensor {
	return &Sensor{}
}

func (app *Sensor) Setup(baseDir string, log logging.Logger, conf *config.Config) {
	app.baseDir = baseDir
	app.Log = log
	app.Conf = conf
}

func (app *Sensor) GetBaseDir() string {
	return app.baseDir
}

func (app *Sensor) GetLogDir() string {
	return filepath.Join(app.baseDir, constants.LogDir)
}

func (app *Sensor) GetConfigPath() string {
	return filepath.Join(app.baseDir, constants.ConfigFileName)
}

func (app *Sensor) GetEnvPath() string {
	return filepath.Join(app.baseDir, constants.EnvFileName)
}

// NewReader builds a reader out of the app configuration. Readings are
// always logged, and also published when an mqtt broker is configured.
// The returned func releases the mqtt connection and must always be called
func (app *Sensor) NewReader(opts ...sensor.Option) (*sensor.Reader, func(), error) {
	method, parsedABI, err := app.Conf.ContractABI()
	if err != nil {
		return nil, nil, err
	}
	cfg, err := app.Conf.SensorConfig(method)
	if err != nil {
		return nil, nil, err
	}
	recorders := sensor.MultiRecorder{sensor.NewLogRecorder(app.Log)}
	release := func() {}
	if broker := app.Conf.MQTTBroker(); broker != "" {
		client, err := sensor.ConnectMQTT(broker, app.Conf.MQTTClientID())
		if err != nil {
			return nil, nil, err
		}
		app.Log.Info("publishing readings", zap.String("broker", broker), zap.String("topic", app.Conf.MQTTTopic()))
		recorders = append(recorders, sensor.NewMQTTRecorder(client, app.Conf.MQTTTopic(), app.Log))
		release = func() { sensor.DisconnectMQTT(client) }
	}
	opts = append([]sensor.Option{
		sensor.WithRecorder(recorders),
		sensor.WithLogger(app.Log),
	}, opts...)
	reader, err := sensor.NewReader(cfg, parsedABI, opts...)
	if err != nil {
		release()
		return nil, nil, err
	}
	return reader, release, nil
}
