// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	sm "github.com/someonegg/stablematch"
	"github.com/someonegg/stablematch/explore"
)

var (
	colorBest   = lipgloss.Color("#2CD7C7")
	colorBorder = lipgloss.Color("#16858E")
	colorMuted  = lipgloss.Color("#2C4A54")
	colorWarn   = lipgloss.Color("#F4D03F")
)

var styles = struct {
	Title  lipgloss.Style
	Best   lipgloss.Style
	Muted  lipgloss.Style
	Warn   lipgloss.Style
	Border lipgloss.Style
}{
	Title:  lipgloss.NewStyle().Bold(true).Foreground(colorBest),
	Best:   lipgloss.NewStyle().Bold(true).Foreground(colorBest),
	Muted:  lipgloss.NewStyle().Foreground(colorMuted),
	Warn:   lipgloss.NewStyle().Foreground(colorWarn),
	Border: lipgloss.NewStyle().Foreground(colorBorder),
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styles.Border).
		Headers(headers...)
}

func contains(s []int, i int) bool {
	for _, v := range s {
		if v == i {
			return true
		}
	}
	return false
}

// cell renders v, emphasised when entry i is among the best.
func cell(v int, i int, best []int) string {
	s := strconv.Itoa(v)
	if contains(best, i) {
		return styles.Best.Render(s + " *")
	}
	return s
}

func renderReport(r explore.Report) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "%s\n", styles.Title.Render(fmt.Sprintf(
		"%d stable matching(s) of size %d, %s convention",
		r.Summary.Stable, r.Summary.Size, r.Convention)))

	t := newTable("", "matching", "total", "proposers", "receivers", "imbalance", "worst-off", "gale-shapley")
	for i, e := range r.Entries {
		var gs []string
		if i == r.Summary.ProposerOptimal {
			gs = append(gs, "proposers")
		}
		if i == r.Summary.ReceiverOptimal {
			gs = append(gs, "receivers")
		}
		t.Row(
			e.Label,
			e.Matching.String(),
			cell(e.Score.Total, i, r.Best.Total),
			cell(e.Score.ProposerSum, i, r.Best.ProposerSum),
			cell(e.Score.ReceiverSum, i, r.Best.ReceiverSum),
			cell(e.Score.Imbalance, i, r.Best.Imbalance),
			cell(e.Score.WorstOff, i, r.Best.WorstOff),
			strings.Join(gs, ", "),
		)
	}
	sb.WriteString(t.String())
	sb.WriteByte('\n')

	summary := fmt.Sprintf("%d candidate(s) examined", r.Summary.Candidates)
	if r.Summary.Truncated {
		sb.WriteString(styles.Warn.Render(summary + ", stopped at the candidate limit"))
	} else {
		sb.WriteString(styles.Muted.Render(summary))
	}
	sb.WriteByte('\n')
	return sb.String()
}

func renderHistory(history []sm.Proposal) string {
	t := newTable("step", "from", "to", "outcome", "displaced")
	for _, p := range history {
		t.Row(strconv.Itoa(p.Step), string(p.From), string(p.To), p.Outcome.String(), string(p.Displaced))
	}
	return t.String() + "\n"
}

func renderProfile(p *sm.Profile) string {
	t := newTable("agent", "ranking")
	for _, group := range [][]sm.Agent{p.Proposers(), p.Receivers()} {
		for _, a := range group {
			ranking := p.Ranking(a)
			names := make([]string, len(ranking))
			for i, b := range ranking {
				names[i] = string(b)
			}
			t.Row(string(a), strings.Join(names, " > "))
		}
	}
	return t.String() + "\n"
}
