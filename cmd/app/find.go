package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bagdasarian/freetime-finder/internal/config"
	"github.com/bagdasarian/freetime-finder/internal/domain"
	"github.com/bagdasarian/freetime-finder/internal/freetime"
	"github.com/bagdasarian/freetime-finder/internal/snapshot"
)

type findOptions struct {
	file    string
	now     string
	members string
	limit   int
	mode    string
}

func newFindCmd(cfg *config.Config) *cobra.Command {
	opts := &findOptions{}

	cmd := &cobra.Command{
		Use:   "find",
		Short: "Найти общие свободные окна по YAML-снимку группы",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFind(cmd.OutOrStdout(), cfg, opts)
		},
	}

	cmd.Flags().StringVar(&opts.file, "file", "", "путь к YAML-снимку группы")
	cmd.Flags().StringVar(&opts.now, "now", "", "момент расчета в RFC 3339 (по умолчанию из снимка или текущее время)")
	cmd.Flags().StringVar(&opts.members, "members", "", "id участников через запятую (по умолчанию все)")
	cmd.Flags().IntVar(&opts.limit, "limit", 0, "сколько окон вывести: 0 - по умолчанию, < 0 - все")
	cmd.Flags().StringVar(&opts.mode, "mode", "", "разворот еженедельных слотов: process или member")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runFind(out io.Writer, cfg *config.Config, opts *findOptions) error {
	snap, err := snapshot.Load(opts.file)
	if err != nil {
		return err
	}

	modeName := opts.mode
	if modeName == "" {
		modeName = cfg.Finder.RecurrenceMode
	}
	mode, err := freetime.ParseExpansionMode(modeName)
	if err != nil {
		return err
	}

	loc := snap.Location
	if loc == nil {
		loc, err = cfg.Finder.Location()
		if err != nil {
			return err
		}
	}

	now := snap.Now
	if opts.now != "" {
		now, err = time.Parse(time.RFC3339, opts.now)
		if err != nil {
			return fmt.Errorf("--now must be RFC 3339: %w", err)
		}
	}
	if now.IsZero() {
		now = time.Now()
	}

	selected := snap.Group.MemberIDs()
	if opts.members != "" {
		selected, err = parseIDs(opts.members)
		if err != nil {
			return err
		}
	}

	finder := freetime.NewFinder(
		freetime.WithLocation(loc),
		freetime.WithExpansionMode(mode),
		freetime.WithParallelism(cfg.Finder.Parallelism),
		freetime.WithLogger(zap.NewNop()),
	)

	windows, err := finder.FindCommonFreeTime(snap.Group, snap.Slots, selected, now)
	if err != nil {
		return err
	}

	limit := opts.limit
	if limit == 0 {
		limit = cfg.Finder.DefaultLimit
	}
	total := len(windows)
	if limit > 0 && len(windows) > limit {
		windows = windows[:limit]
	}

	policy, _ := domain.PolicyFor(snap.Group.Tier)
	start, end := finder.Window(policy, now)
	fmt.Fprintf(out, "group %d (%s), window %s .. %s, found %d\n",
		snap.Group.ID, snap.Group.Tier, start.Format(time.RFC3339), end.Format(time.RFC3339), total)
	for _, w := range windows {
		fmt.Fprintf(out, "%s  %s  %d min\n", w.Start.Format(time.RFC3339), w.End.Format(time.RFC3339), w.DurationMinutes)
	}
	return nil
}

func parseIDs(s string) ([]int64, error) {
	parts := strings.Split(s, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid member id %q", p)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
