// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	sm "github.com/someonegg/stablematch"
	"github.com/someonegg/stablematch/session"
)

var gsCmd = &cli.Command{
	Name:    "gs",
	Usage:   "Run deferred acceptance and show every proposal",
	Aliases: []string{"g"},
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:  "side",
			Usage: "specify the proposing group (proposers, receivers)",
		},
		&cli.IntFlag{
			Name:  "steps",
			Usage: "stop after this many proposals (0 runs to convergence)",
		},
		&cli.StringFlag{
			Name:  "snapshot",
			Usage: "specify the output snapshot.json",
		},
	}, profileFlags()...),
	Action: func(ctx *cli.Context) error {
		env, err := loadEnv(ctx)
		if err != nil {
			return err
		}

		side, err := env.cfg.Side()
		if err != nil {
			return err
		}
		if ctx.IsSet("side") {
			if side, err = sm.ParseSide(ctx.String("side")); err != nil {
				return err
			}
		}
		conv, err := env.cfg.Convention()
		if err != nil {
			return err
		}

		p, err := loadProfile(ctx, env.cfg)
		if err != nil {
			return err
		}

		s := session.New(p, session.Options{
			Side:       side,
			Convention: conv,
			Logger:     env.logger,
		})
		fingerprint, err := s.Fingerprint()
		if err != nil {
			return err
		}
		env.logger.Info("session started", "session", s.ID(), "profile", fingerprint)

		if steps := ctx.Int("steps"); steps > 0 {
			for i := 0; i < steps; i++ {
				if _, err := s.Step(); err != nil {
					break
				}
			}
		} else {
			s.Run()
		}

		snap := s.Snapshot()
		fmt.Print(renderProfile(p))
		fmt.Print(renderHistory(snap.History))
		fmt.Printf("%s after %d step(s), %s propose: %v\n", snap.Phase, snap.Steps, snap.Side, snap.Engagements)
		fmt.Printf("%+v\n", snap.Score)

		if err := writeJSON(ctx.String("snapshot"), snap); err != nil {
			return fmt.Errorf("write snapshot file failed: %w", err)
		}
		return nil
	},
}
