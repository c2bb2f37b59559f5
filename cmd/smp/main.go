// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/someonegg/stablematch/internal/config"
	"github.com/someonegg/stablematch/internal/logger"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Println("Error: ", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "smp",
		Usage: "Utility for exploring stable marriage problems",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "specify the config.yaml",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "override the log level (debug, info, warn, error)",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Usage: "override the log format (json, text)",
			},
		},
		Commands: []*cli.Command{
			enumerateCmd,
			gsCmd,
			presetsCmd,
		},
	}
}

// env is what every command needs before it starts.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
}

func loadEnv(ctx *cli.Context) (*env, error) {
	cfg, err := config.Load(ctx.String("config"))
	if err != nil {
		return nil, fmt.Errorf("load config failed: %w", err)
	}
	if ctx.IsSet("log-level") {
		cfg.Log.Level = ctx.String("log-level")
	}
	if ctx.IsSet("log-format") {
		cfg.Log.Format = ctx.String("log-format")
	}
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	l, err := logger.Setup(os.Stderr, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, logger: l}, nil
}
