// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	sm "github.com/someonegg/stablematch"
	"github.com/someonegg/stablematch/explore"
)

var enumerateCmd = &cli.Command{
	Name:    "enumerate",
	Usage:   "List and score every stable matching",
	Aliases: []string{"e"},
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:  "convention",
			Usage: "specify the scoring convention (satisfaction, dissatisfaction)",
		},
		&cli.IntFlag{
			Name:  "max",
			Usage: "specify the maximum candidates examined (0 means no limit)",
		},
		&cli.BoolFlag{
			Name:  "gs",
			Value: true,
			Usage: "mark the Gale-Shapley result of each side",
		},
		&cli.StringFlag{
			Name:  "report",
			Usage: "specify the output report.json",
		},
	}, profileFlags()...),
	Action: func(ctx *cli.Context) error {
		env, err := loadEnv(ctx)
		if err != nil {
			return err
		}

		conv, err := env.cfg.Convention()
		if err != nil {
			return err
		}
		if ctx.IsSet("convention") {
			if conv, err = sm.ParseConvention(ctx.String("convention")); err != nil {
				return err
			}
		}
		limit := env.cfg.Explore.MaxCandidates
		if ctx.IsSet("max") {
			limit = ctx.Int("max")
		}
		if limit < 0 {
			return errors.New("invalid max")
		}

		p, err := loadProfile(ctx, env.cfg)
		if err != nil {
			return err
		}

		x := &explore.Explorer{
			MaxCandidates:      &limit,
			Convention:         &conv,
			CompareGaleShapley: ctx.Bool("gs"),
			Logger:             env.logger,
		}
		report, err := x.Explore(ctx.Context, p)
		if err != nil {
			return err
		}

		fmt.Print(renderReport(report))

		if err := writeJSON(ctx.String("report"), report); err != nil {
			return fmt.Errorf("write report file failed: %w", err)
		}
		return nil
	},
}
