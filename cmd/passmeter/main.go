// Copyright (c) ClaceIO, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/claceio/passmeter/internal/system"
	"github.com/claceio/passmeter/internal/types"
	"github.com/urfave/cli/v2"
)

const configFileFlagName = "config_file"

func globalFlags(globalConfig *types.GlobalConfig) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        configFileFlagName,
			Aliases:     []string{"c"},
			Usage:       "TOML configuration file",
			Destination: &globalConfig.ConfigFile,
			EnvVars:     []string{envString(configFileFlagName)},
		},
	}
}

func allCommands(clientConfig *types.ClientConfig, serverConfig *types.ServerConfig) []*cli.Command {
	return []*cli.Command{
		checkCommand(clientConfig),
		generateCommand(clientConfig),
		serverCommand(serverConfig),
		configCommand(clientConfig, serverConfig),
	}
}

// loadConfigFile overlays the config file settings which do not have a flag, like the
// generator length range. Settings with flags are read through altsrc.
func loadConfigFile(globalConfig *types.GlobalConfig, clientConfig *types.ClientConfig, serverConfig *types.ServerConfig) error {
	if globalConfig.ConfigFile == "" {
		return nil
	}
	if err := system.LoadConfigFile(globalConfig.ConfigFile, clientConfig, serverConfig); err != nil {
		return err
	}
	clientConfig.GlobalConfig = *globalConfig
	serverConfig.GlobalConfig = *globalConfig
	return nil
}

func newApp(globalConfig *types.GlobalConfig, clientConfig *types.ClientConfig, serverConfig *types.ServerConfig) *cli.App {
	return &cli.App{
		Name:                 "passmeter",
		Usage:                "Check password strength and generate strong passwords",
		EnableBashCompletion: true,
		Suggest:              true,
		Flags:                globalFlags(globalConfig),
		Before: func(cCtx *cli.Context) error {
			return loadConfigFile(globalConfig, clientConfig, serverConfig)
		},
		Commands: allCommands(clientConfig, serverConfig),
	}
}

func main() {
	globalConfig, clientConfig, serverConfig, err := system.GetDefaultConfigs()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading default config: %s\n", err)
		os.Exit(1)
	}

	app := newApp(globalConfig, clientConfig, serverConfig)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
