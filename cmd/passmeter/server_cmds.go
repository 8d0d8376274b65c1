// Copyright (c) ClaceIO, LLC
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path"
	"strings"
	"time"

	"github.com/claceio/passmeter/internal/types"
	"github.com/claceio/passmeter/pkg/api"
	"github.com/pkg/profile"
	"github.com/urfave/cli/v2"
	"github.com/urfave/cli/v2/altsrc"
)

func serverCommand(serverConfig *types.ServerConfig) *cli.Command {
	flags := []cli.Flag{
		newAltStringFlag("http.host", "i", "The interface to bind on for HTTP", serverConfig.Http.Host, &serverConfig.Http.Host),
		newAltIntFlag("http.port", "p", "The port to listen on for HTTP", serverConfig.Http.Port, &serverConfig.Http.Port),
		newAltStringFlag("logging.level", "l", "The logging level to use", serverConfig.Log.Level, &serverConfig.Log.Level),
		newAltBoolFlag("logging.console", "", "Enable console logging", serverConfig.Log.Console, &serverConfig.Log.Console),
		newAltStringFlag("profile_mode", "", "Enable profiling: cpu, memory, block, mutex, goroutine or trace", serverConfig.ProfileMode, &serverConfig.ProfileMode),
	}

	return &cli.Command{
		Name:  "server",
		Usage: "Manage the passmeter server",
		Subcommands: []*cli.Command{
			{
				Name:   "start",
				Usage:  "Start the passmeter HTTP API server",
				Flags:  flags,
				Before: altsrc.InitInputSourceWithContext(flags, altsrc.NewTomlSourceFromFlagFunc(configFileFlagName)),
				Action: func(cCtx *cli.Context) error {
					return startServer(cCtx, serverConfig)
				},
			},
		},
	}
}

func profileOption(mode string) (func(*profile.Profile), error) {
	switch strings.ToLower(mode) {
	case "cpu":
		return profile.CPUProfile, nil
	case "memory", "mem":
		return profile.MemProfile, nil
	case "block":
		return profile.BlockProfile, nil
	case "mutex":
		return profile.MutexProfile, nil
	case "goroutine":
		return profile.GoroutineProfile, nil
	case "trace":
		return profile.TraceProfile, nil
	default:
		return nil, fmt.Errorf("unknown profile mode %s", mode)
	}
}

func startServer(cCtx *cli.Context, serverConfig *types.ServerConfig) error {
	if serverConfig.ProfileMode != "" {
		option, err := profileOption(serverConfig.ProfileMode)
		if err != nil {
			return cli.Exit(err, 1)
		}
		profilePath := path.Join(os.ExpandEnv("$"+types.PM_HOME), "profile")
		defer profile.Start(option, profile.ProfilePath(profilePath), profile.NoShutdownHook).Stop()
	}

	server, err := api.NewServer(&api.ServerConfig{ServerConfig: serverConfig})
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error initializing server: %s", err), 1)
	}
	if err := server.Start(); err != nil {
		return cli.Exit(fmt.Sprintf("Error starting server: %s", err), 1)
	}
	fmt.Fprintf(cCtx.App.ErrWriter, "Server listening on http://%s\n", server.Addr())

	c := make(chan os.Signal, 1)
	// We'll accept graceful shutdowns when quit via SIGINT (Ctrl+C)
	signal.Notify(c, os.Interrupt)

	// Block until we receive our signal.
	<-c

	ctxTimeout, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return server.Stop(ctxTimeout)
}
