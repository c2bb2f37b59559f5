// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/someonegg/stablematch/presets"
)

var presetsCmd = &cli.Command{
	Name:    "presets",
	Usage:   "List the builtin preference patterns",
	Aliases: []string{"p"},
	Action: func(ctx *cli.Context) error {
		fmt.Print(renderPresets())
		return nil
	},
}

func renderPresets() string {
	t := newTable("key", "name", "aliases")
	for _, key := range presets.Keys() {
		p, err := presets.Lookup(key)
		if err != nil {
			continue
		}
		t.Row(p.Key, p.Name, strings.Join(p.Aliases, ", "))
	}
	return t.String() + "\n"
}
