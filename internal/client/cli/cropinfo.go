package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
)

// cropInfo asks the crop assistant about a crop, or lists the questions
// asked so far when no name is given.
func (a *App) cropInfo(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.cropHistory()
	}
	name := strings.Join(args, " ")
	if err := a.assistant.Load(ctx, name); err != nil {
		return err
	}

	info := a.assistant.Info()
	a.section("Crop assistant: " + name)
	if a.assistant.Fallback() {
		msg := info.Message
		if msg == "" {
			msg = "the assistant is unavailable; showing generic data"
		}
		fmt.Fprintln(a.out, mutedStyle.Render(msg))
	}

	sections := a.assistant.Sections()
	rows := make([][]string, 0, len(sections))
	for _, s := range sections {
		rows = append(rows, []string{s.Label, s.Value})
	}
	a.table([]string{"Topic", "Answer"}, rows)
	return nil
}

func (a *App) cropHistory() error {
	h := a.assistant.History()
	a.section("Recent crop questions")
	now := a.now()
	rows := make([][]string, 0, len(h))
	for _, q := range h {
		note := ""
		if q.Fallback {
			note = "fallback"
		}
		rows = append(rows, []string{q.Crop, q.Type, humanize.RelTime(q.At, now, "ago", "from now"), note})
	}
	a.table([]string{"Crop", "Type", "Asked", ""}, rows)
	return nil
}
