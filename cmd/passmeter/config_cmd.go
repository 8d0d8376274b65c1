// Copyright (c) ClaceIO, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/claceio/passmeter/internal/system"
	"github.com/claceio/passmeter/internal/types"
	"github.com/urfave/cli/v2"
)

func configCommand(clientConfig *types.ClientConfig, serverConfig *types.ServerConfig) *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Show passmeter configuration",
		Subcommands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Print the effective configuration as TOML",
				Action: func(cCtx *cli.Context) error {
					return system.WriteConfig(cCtx.App.Writer, serverConfig, clientConfig)
				},
			},
		},
	}
}
