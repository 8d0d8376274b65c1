// Copyright (c) ClaceIO, LLC
// SPDX-License-Identifier: Apache-2.0

package system

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/claceio/passmeter/internal/passwd"
	"github.com/claceio/passmeter/internal/types"
)

const DEFAULT_CONFIG = "passmeter.default.toml"

//go:embed "passmeter.default.toml"
var f embed.FS

func getEmbeddedToml() (string, error) {
	file, err := f.Open(DEFAULT_CONFIG)
	if err != nil {
		return "", err
	}

	defer file.Close()
	buf := new(bytes.Buffer)
	_, err = buf.ReadFrom(file)
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}

// NewServerConfigEmbedded reads the embedded toml file and creates a ServerConfig
func NewServerConfigEmbedded() (*types.ServerConfig, error) {
	contents, err := getEmbeddedToml()
	if err != nil {
		return nil, err
	}

	var config types.ServerConfig
	err = LoadServerConfig(contents, &config)
	return &config, err
}

// LoadServerConfig loads a ServerConfig from the given contents
func LoadServerConfig(contents string, config *types.ServerConfig) error {
	if _, err := toml.Decode(contents, config); err != nil {
		return err
	}
	return ValidateGenerator(config.Generator)
}

// NewClientConfigEmbedded reads the embedded toml file and creates a ClientConfig
func NewClientConfigEmbedded() (*types.ClientConfig, error) {
	contents, err := getEmbeddedToml()
	if err != nil {
		return nil, err
	}

	var config types.ClientConfig
	err = LoadClientConfig(contents, &config)
	return &config, err
}

// LoadClientConfig load a ClientConfig from the given contents
func LoadClientConfig(contents string, config *types.ClientConfig) error {
	if _, err := toml.Decode(contents, config); err != nil {
		return err
	}
	return ValidateGenerator(config.Generator)
}

// LoadConfigFile overlays the settings from a user config file on top of the given configs.
// Missing keys keep their current value.
func LoadConfigFile(fileName string, clientConfig *types.ClientConfig, serverConfig *types.ServerConfig) error {
	contents, err := os.ReadFile(fileName)
	if err != nil {
		return fmt.Errorf("error reading config file %s: %w", fileName, err)
	}
	if err := LoadClientConfig(string(contents), clientConfig); err != nil {
		return fmt.Errorf("error loading config file %s: %w", fileName, err)
	}
	if err := LoadServerConfig(string(contents), serverConfig); err != nil {
		return fmt.Errorf("error loading config file %s: %w", fileName, err)
	}
	return nil
}

// ValidateGenerator checks that the configured length range can be served by the generator
func ValidateGenerator(g types.GeneratorConfig) error {
	if g.MinLength < passwd.MIN_LENGTH {
		return fmt.Errorf("generator min_length %d must be at least %d", g.MinLength, passwd.MIN_LENGTH)
	}
	if g.MaxLength < g.MinLength {
		return fmt.Errorf("generator max_length %d is less than min_length %d", g.MaxLength, g.MinLength)
	}
	return g.CheckLength(g.DefaultLength)
}

func GetDefaultConfigs() (*types.GlobalConfig, *types.ClientConfig, *types.ServerConfig, error) {
	contents, err := getEmbeddedToml()
	if err != nil {
		return nil, nil, nil, err
	}

	var globalConfig types.GlobalConfig
	var clientConfig types.ClientConfig
	var serverConfig types.ServerConfig
	if _, err := toml.Decode(contents, &globalConfig); err != nil {
		return nil, nil, nil, err
	}
	if err := LoadClientConfig(contents, &clientConfig); err != nil {
		return nil, nil, nil, err
	}
	if err := LoadServerConfig(contents, &serverConfig); err != nil {
		return nil, nil, nil, err
	}

	return &globalConfig, &clientConfig, &serverConfig, nil
}

// WriteConfig encodes the effective configuration as toml
func WriteConfig(w io.Writer, serverConfig *types.ServerConfig, clientConfig *types.ClientConfig) error {
	merged := struct {
		ProfileMode string                   `toml:"profile_mode"`
		Generator   types.GeneratorConfig    `toml:"generator"`
		Client      types.ClientConfigStruct `toml:"client"`
		Http        types.HttpConfig         `toml:"http"`
		Log         types.LogConfig          `toml:"logging"`
	}{
		ProfileMode: serverConfig.ProfileMode,
		Generator:   clientConfig.Generator,
		Client:      clientConfig.Client,
		Http:        serverConfig.Http,
		Log:         serverConfig.Log,
	}
	return toml.NewEncoder(w).Encode(merged)
}
