// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

import "time"

const (
	BaseDirName    = ".sensor-cli"
	LogDir         = "logs"
	ConfigFileName = "config.json"
	EnvFileName    = ".env"
	EnvPrefix      = "SENSOR"
	LogName        = "sensor"

	WriteReadReadPerms        = 0o644
	WriteReadUserOnlyPerms    = 0o600
	WriteReadUserOnlyDirPerms = 0o700

	MaxLogFileSize   = 4
	MaxNumOfLogFiles = 5
	RetainOldFiles   = 0 // retain all old log files

	// rpc
	DefaultNetwork      = "sepolia"
	DefaultProviderHost = "infura.io"
	// illustrative deployment, override with config or SENSOR_CONTRACT_ADDRESS
	DefaultContractAddress = "0x0a88E84aAD539d0Ea0c060342cd6894b52c8082f"
	DefaultCallerAddress   = "0x728cAc3C36589Df8b794181A257C4477089Ece69"
	DefaultMethod          = "read"
	DefaultMethodArg       = 10
	RequestTimeout         = 30 * time.Second

	// mqtt
	DefaultMQTTClientID = "sensor-cli"
	DefaultMQTTTopic    = "sensors/readings"
)

// config keys, also used as flag names and, upper cased with [EnvPrefix],
// as environment variables
const (
	ConfigEndpointKey        = "endpoint"
	ConfigNetworkKey         = "network"
	ConfigProviderHostKey    = "provider-host"
	ConfigAPIKeyKey          = "api-key"
	ConfigContractAddressKey = "contract-address"
	ConfigCallerAddressKey   = "caller-address"
	ConfigABIFileKey         = "abi-file"
	ConfigMethodKey          = "method"
	ConfigMethodArgKey       = "arg"
	ConfigTimeoutKey         = "timeout"
	ConfigMQTTBrokerKey      = "mqtt-broker"
	ConfigMQTTTopicKey       = "mqtt-topic"
	ConfigMQTTClientIDKey    = "mqtt-client-id"
)
