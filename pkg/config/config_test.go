// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/ava-labs/libevm/common"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/ava-labs/sensor-cli/pkg/constants"
	"github.com/ava-labs/sensor-cli/pkg/sensor"
)

func writeFile(t *testing.T, dir string, name string, content string) string {
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), constants.WriteReadReadPerms))
	return path
}

func TestEndpoint(t *testing.T) {
	cf := New()
	_, err := cf.Endpoint()
	require.ErrorIs(t, err, ErrMissingAPIKey)

	t.Setenv("SENSOR_API_KEY", "abc123")
	endpoint, err := cf.Endpoint()
	require.NoError(t, err)
	require.Equal(t, "https://sepolia.infura.io/v3/abc123", endpoint)
	require.Equal(t, "https://sepolia.infura.io/v3/abc1**", cf.MaskedEndpoint())

	t.Setenv("SENSOR_NETWORK", "mainnet")
	endpoint, err = cf.Endpoint()
	require.NoError(t, err)
	require.Equal(t, "https://mainnet.infura.io/v3/abc123", endpoint)

	t.Setenv("SENSOR_ENDPOINT", "http://127.0.0.1:8545")
	endpoint, err = cf.Endpoint()
	require.NoError(t, err)
	require.Equal(t, "http://127.0.0.1:8545", endpoint)
}

func TestSensorConfigDefaults(t *testing.T) {
	t.Setenv("SENSOR_API_KEY", "abc123")
	cf := New()
	method, parsed, err := cf.ContractABI()
	require.NoError(t, err)
	require.Equal(t, "read", method)
	require.Contains(t, parsed.Methods, "read")

	sensorCfg, err := cf.SensorConfig(method)
	require.NoError(t, err)
	require.Equal(t, sensor.Config{
		Endpoint:        "https://sepolia.infura.io/v3/abc123",
		ContractAddress: common.HexToAddress(constants.DefaultContractAddress),
		CallerAddress:   common.HexToAddress(constants.DefaultCallerAddress),
		Method:          "read",
		Arg:             10,
	}, sensorCfg)
	require.Equal(t, 30*time.Second, cf.Timeout())
}

func TestSensorConfigInvalidAddress(t *testing.T) {
	t.Setenv("SENSOR_API_KEY", "abc123")
	t.Setenv("SENSOR_CONTRACT_ADDRESS", "0x1234")
	cf := New()
	_, err := cf.SensorConfig("read")
	require.ErrorIs(t, err, sensor.ErrInvalidAddress)
}

func TestConfigFileAndEnvFile(t *testing.T) {
	dir := t.TempDir()
	configPath := writeFile(t, dir, constants.ConfigFileName, `{
		"endpoint": "http://127.0.0.1:9650/ext/bc/C/rpc",
		"arg": 3,
		"mqtt-broker": "tcp://localhost:1883"
	}`)
	envPath := writeFile(t, dir, constants.EnvFileName, "SENSOR_CALLER_ADDRESS=0x8db97C7cEcE249c2b98bDC0226Cc4C2A57BF52FC\n")
	t.Setenv("SENSOR_CALLER_ADDRESS", "")
	require.NoError(t, os.Unsetenv("SENSOR_CALLER_ADDRESS"))

	cf := New()
	cf.LoadEnvFile(logging.NoLog{}, envPath)
	cf.SetConfig(logging.NoLog{}, configPath)
	require.Equal(t, configPath, cf.GetConfigPath())

	sensorCfg, err := cf.SensorConfig("read")
	require.NoError(t, err)
	require.Equal(t, "http://127.0.0.1:9650/ext/bc/C/rpc", sensorCfg.Endpoint)
	require.Equal(t, int64(3), sensorCfg.Arg)
	require.Equal(t, common.HexToAddress("0x8db97C7cEcE249c2b98bDC0226Cc4C2A57BF52FC"), sensorCfg.CallerAddress)
	require.Equal(t, "tcp://localhost:1883", cf.MQTTBroker())
	require.Equal(t, constants.DefaultMQTTTopic, cf.MQTTTopic())

	require.NoError(t, cf.SetConfigValue(constants.ConfigMethodArgKey, 7))
	reloaded := New()
	reloaded.SetConfig(logging.NoLog{}, configPath)
	require.Equal(t, "7", reloaded.GetConfigStringValue(constants.ConfigMethodArgKey))
}

func TestMissingEnvFileIsIgnored(t *testing.T) {
	cf := New()
	require.NotPanics(t, func() {
		cf.LoadEnvFile(logging.NoLog{}, filepath.Join(t.TempDir(), constants.EnvFileName))
	})
}

func TestFlagsOverride(t *testing.T) {
	t.Setenv("SENSOR_ENDPOINT", "http://127.0.0.1:8545")
	cf := New()
	flags := pflag.NewFlagSet("read", pflag.ContinueOnError)
	flags.Int64(constants.ConfigMethodArgKey, constants.DefaultMethodArg, "")
	flags.String(constants.ConfigMethodKey, constants.DefaultMethod, "")
	require.NoError(t, cf.BindFlags(flags))

	sensorCfg, err := cf.SensorConfig("read")
	require.NoError(t, err)
	require.Equal(t, int64(10), sensorCfg.Arg)

	require.NoError(t, flags.Parse([]string{"--arg", "25", "--method", "read(uint256)->(uint256)"}))
	method, parsed, err := cf.ContractABI()
	require.NoError(t, err)
	require.Equal(t, "read", method)
	require.Equal(t, "read(uint256)", parsed.Methods["read"].Sig)
	sensorCfg, err = cf.SensorConfig(method)
	require.NoError(t, err)
	require.Equal(t, int64(25), sensorCfg.Arg)
}

func TestABIFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	dir := "/abis"
	require.NoError(t, afero.WriteFile(fs, filepath.Join(dir, "abi.json"), sensor.SensorABI, constants.WriteReadReadPerms))
	t.Setenv("SENSOR_ABI_FILE", filepath.Join(dir, "abi.json"))
	cf := NewWithFs(fs)
	method, parsed, err := cf.ContractABI()
	require.NoError(t, err)
	require.Equal(t, "read", method)
	require.Contains(t, parsed.Methods, "save_many")

	t.Setenv("SENSOR_ABI_FILE", filepath.Join(dir, "missing.json"))
	_, _, err = cf.ContractABI()
	require.Error(t, err)
}

func TestSettingsMasksSecrets(t *testing.T) {
	t.Setenv("SENSOR_API_KEY", "b155f7a79da2448c")
	t.Setenv("SENSOR_ENDPOINT", "https://sepolia.infura.io/v3/b155f7a79da2448c")
	settings := New().Settings()
	require.Equal(t, "b155************", settings[constants.ConfigAPIKeyKey])
	require.Equal(t, "https://sepolia.infura.io/v3/b155************", settings[constants.ConfigEndpointKey])
	require.Equal(t, constants.DefaultNetwork, settings[constants.ConfigNetworkKey])
	require.Equal(t, "10", settings[constants.ConfigMethodArgKey])
}

func TestSetConfigValueInMemory(t *testing.T) {
	fs := afero.NewMemMapFs()
	cf := NewWithFs(fs)
	require.Error(t, cf.SetConfigValue(constants.ConfigNetworkKey, "mainnet"))

	configPath := filepath.Join("/home", constants.BaseDirName, constants.ConfigFileName)
	require.NoError(t, fs.MkdirAll(filepath.Dir(configPath), constants.WriteReadUserOnlyDirPerms))
	cf.SetConfig(logging.NoLog{}, configPath)
	require.NoError(t, cf.SetConfigValue(constants.ConfigNetworkKey, "mainnet"))

	exists, err := afero.Exists(fs, configPath)
	require.NoError(t, err)
	require.True(t, exists)
	reloaded := NewWithFs(fs)
	reloaded.SetConfig(logging.NoLog{}, configPath)
	require.Equal(t, "mainnet", reloaded.GetConfigStringValue(constants.ConfigNetworkKey))
}
