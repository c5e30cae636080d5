// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/ava-labs/libevm/accounts/abi"
	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ava-labs/sensor-cli/pkg/constants"
	"github.com/ava-labs/sensor-cli/pkg/sensor"
	"github.com/ava-labs/sensor-cli/sdk/contract"
)

var ErrMissingAPIKey = errors.New("no rpc endpoint nor provider api key configured")

// Keys lists every known setting, in display order
var Keys = []string{
	constants.ConfigEndpointKey,
	constants.ConfigNetworkKey,
	constants.ConfigProviderHostKey,
	constants.ConfigAPIKeyKey,
	constants.ConfigContractAddressKey,
	constants.ConfigCallerAddressKey,
	constants.ConfigABIFileKey,
	constants.ConfigMethodKey,
	constants.ConfigMethodArgKey,
	constants.ConfigTimeoutKey,
	constants.ConfigMQTTBrokerKey,
	constants.ConfigMQTTTopicKey,
	constants.ConfigMQTTClientIDKey,
}

// Config resolves settings from, in decreasing priority: flags, environment
// (SENSOR_* variables, optionally loaded from a .env file), the json config
// file, and defaults
type Config struct {
	v  *viper.Viper
	fs afero.Fs
}

func New() *Config {
	return NewWithFs(afero.NewOsFs())
}

// NewWithFs reads and writes the config file and the abi file through [fs].
// The .env file is always read from the os filesystem
func NewWithFs(fs afero.Fs) *Config {
	v := viper.New()
	v.SetFs(fs)
	v.SetConfigType("json")
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv() // read in environment variables that match
	v.SetDefault(constants.ConfigNetworkKey, constants.DefaultNetwork)
	v.SetDefault(constants.ConfigProviderHostKey, constants.DefaultProviderHost)
	v.SetDefault(constants.ConfigContractAddressKey, constants.DefaultContractAddress)
	v.SetDefault(constants.ConfigCallerAddressKey, constants.DefaultCallerAddress)
	v.SetDefault(constants.ConfigMethodKey, constants.DefaultMethod)
	v.SetDefault(constants.ConfigMethodArgKey, constants.DefaultMethodArg)
	v.SetDefault(constants.ConfigTimeoutKey, constants.RequestTimeout)
	v.SetDefault(constants.ConfigMQTTTopicKey, constants.DefaultMQTTTopic)
	v.SetDefault(constants.ConfigMQTTClientIDKey, constants.DefaultMQTTClientID)
	return &Config{v: v, fs: fs}
}

// LoadEnvFile exports the variables of the .env file at [s] that are not
// already set in the environment
func (*Config) LoadEnvFile(log logging.Logger, s string) {
	if _, err := os.Stat(s); err != nil {
		return
	}
	if err := godotenv.Load(s); err != nil {
		log.Warn("Error loading env file", zap.String("env-file", s), zap.Error(err))
		return
	}
	log.Info("Using env file", zap.String("env-file", s))
}

func (c *Config) SetConfig(log logging.Logger, s string) {
	d := filepath.Dir(s)
	c.v.AddConfigPath(d)
	c.v.SetConfigFile(s)
	// If a config file is found, read it in.
	if err := c.v.ReadInConfig(); err == nil {
		log.Info("Using config file", zap.String("config-file", s))
	} else {
		log.Info("No config file found", zap.String("config-file", s))
	}
}

func (c *Config) GetConfigPath() string {
	return c.v.ConfigFileUsed()
}

// BindFlags makes every flag in [flags] named as a config key override it
func (c *Config) BindFlags(flags *pflag.FlagSet) error {
	return c.v.BindPFlags(flags)
}

// SetConfigValue sets the value of a configuration key and persists the config file
func (c *Config) SetConfigValue(key string, value interface{}) error {
	c.v.Set(key, value)
	if c.v.ConfigFileUsed() == "" {
		return fmt.Errorf("no config file set")
	}
	return c.v.WriteConfigAs(c.v.ConfigFileUsed())
}

func (c *Config) GetConfigStringValue(key string) string {
	return c.v.GetString(key)
}

func (c *Config) Timeout() time.Duration {
	return c.v.GetDuration(constants.ConfigTimeoutKey)
}

// Endpoint returns the configured endpoint, or builds the provider one,
// https://<network>.<provider-host>/v3/<api-key>
func (c *Config) Endpoint() (string, error) {
	if endpoint := c.v.GetString(constants.ConfigEndpointKey); endpoint != "" {
		return endpoint, nil
	}
	apiKey := c.v.GetString(constants.ConfigAPIKeyKey)
	if apiKey == "" {
		return "", fmt.Errorf(
			"%w: set %s_%s or %s_%s",
			ErrMissingAPIKey,
			constants.EnvPrefix,
			envName(constants.ConfigEndpointKey),
			constants.EnvPrefix,
			envName(constants.ConfigAPIKeyKey),
		)
	}
	return fmt.Sprintf(
		"https://%s.%s/v3/%s",
		c.v.GetString(constants.ConfigNetworkKey),
		c.v.GetString(constants.ConfigProviderHostKey),
		apiKey,
	), nil
}

// ContractABI returns the method name to call and the abi it belongs to.
// The abi comes from the abi file if set, from the method itself when it
// declares its types (eg "read(uint256)->(uint256)"), or else it is the
// embedded sensor abi
func (c *Config) ContractABI() (string, *abi.ABI, error) {
	method := c.v.GetString(constants.ConfigMethodKey)
	if abiFile := c.v.GetString(constants.ConfigABIFileKey); abiFile != "" {
		bs, err := afero.ReadFile(c.fs, abiFile)
		if err != nil {
			return "", nil, fmt.Errorf("failure reading abi file %s: %w", abiFile, err)
		}
		parsed, err := contract.LoadABI(bs)
		if err != nil {
			return "", nil, err
		}
		return method, parsed, nil
	}
	if strings.Contains(method, "(") {
		return contract.LoadMethodEsp(method)
	}
	parsed, err := contract.LoadABI(sensor.SensorABI)
	if err != nil {
		return "", nil, err
	}
	return method, parsed, nil
}

// SensorConfig assembles the reader identity for [method]
func (c *Config) SensorConfig(method string) (sensor.Config, error) {
	endpoint, err := c.Endpoint()
	if err != nil {
		return sensor.Config{}, err
	}
	contractAddress, err := sensor.ParseAddress(c.v.GetString(constants.ConfigContractAddressKey))
	if err != nil {
		return sensor.Config{}, fmt.Errorf("contract address: %w", err)
	}
	callerAddress, err := sensor.ParseAddress(c.v.GetString(constants.ConfigCallerAddressKey))
	if err != nil {
		return sensor.Config{}, fmt.Errorf("caller address: %w", err)
	}
	return sensor.Config{
		Endpoint:        endpoint,
		ContractAddress: contractAddress,
		CallerAddress:   callerAddress,
		Method:          method,
		Arg:             c.v.GetInt64(constants.ConfigMethodArgKey),
	}, nil
}

// MaskedEndpoint is the endpoint in use, safe to print
func (c *Config) MaskedEndpoint() string {
	endpoint, err := c.Endpoint()
	if err != nil {
		return ""
	}
	return maskEndpoint(endpoint)
}

// MQTTBroker is empty when readings should not be published
func (c *Config) MQTTBroker() string {
	return c.v.GetString(constants.ConfigMQTTBrokerKey)
}

func (c *Config) MQTTTopic() string {
	return c.v.GetString(constants.ConfigMQTTTopicKey)
}

func (c *Config) MQTTClientID() string {
	return c.v.GetString(constants.ConfigMQTTClientIDKey)
}

// Settings returns the effective value of every known key, with the
// provider api key masked
func (c *Config) Settings() map[string]string {
	settings := map[string]string{}
	for _, key := range Keys {
		settings[key] = c.v.GetString(key)
	}
	if apiKey := settings[constants.ConfigAPIKeyKey]; apiKey != "" {
		settings[constants.ConfigAPIKeyKey] = maskSecret(apiKey)
	}
	if endpoint := settings[constants.ConfigEndpointKey]; endpoint != "" {
		settings[constants.ConfigEndpointKey] = maskEndpoint(endpoint)
	}
	return settings
}

func envName(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
}

func maskSecret(s string) string {
	if len(s) <= 4 {
		return "****"
	}
	return s[:4] + strings.Repeat("*", len(s)-4)
}

// masks the last path segment, where providers put the api key
func maskEndpoint(endpoint string) string {
	i := strings.LastIndex(endpoint, "/")
	if i == -1 || i == len(endpoint)-1 || !strings.Contains(endpoint[:i], "/v") {
		return endpoint
	}
	return endpoint[:i+1] + maskSecret(endpoint[i+1:])
}
