package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/aoc2022/internal/puzzle"
)

func (a *app) newRunCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "run [day...]",
		Short: "Solve the given days (default: the latest registered day)",
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := a.selectDays(args, all)
			if err != nil {
				return err
			}

			return a.run(cmd.Context(), cmd.OutOrStdout(), days)
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "solve every registered day")

	return cmd
}

// selectDays resolves the requested days into a sorted, duplicate-free list
// of registered days.
func (a *app) selectDays(args []string, all bool) ([]int, error) {
	registered := a.registry.Days()
	switch {
	case all:
		return registered, nil
	case len(args) == 0:
		if len(registered) == 0 {
			return nil, fmt.Errorf("%w: nothing registered", puzzle.ErrUnknownDay)
		}

		return registered[len(registered)-1:], nil
	}

	days := make([]int, 0, len(args))
	for _, arg := range args {
		day, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid day %q: %w", arg, err)
		}
		if _, err := a.registry.Lookup(day); err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	slices.Sort(days)

	return slices.Compact(days), nil
}

// run solves days concurrently, bounded by the configured parallelism, and
// prints the answers in ascending day order once all of them succeeded.
func (a *app) run(ctx context.Context, out io.Writer, days []int) error {
	if ctx == nil {
		ctx = context.Background()
	}
	start := time.Now()
	answers := make([]puzzle.Answer, len(days))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.cfg.Parallelism)
	for i, day := range days {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ans, err := a.solve(day)
			if err != nil {
				return fmt.Errorf("day %02d: %w", day, err)
			}
			answers[i] = ans

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, day := range days {
		fmt.Fprintf(out, "day %02d\n  part 1: %s\n  part 2: %s\n", day, answers[i].Part1, answers[i].Part2)
	}
	took := time.Since(start)
	a.logger.Info("run finished", zap.Ints("days", days), zap.Duration("took", took))
	fmt.Fprintf(out, "main took %d ms.\n", took.Milliseconds())

	return nil
}

func (a *app) solve(day int) (puzzle.Answer, error) {
	solver, err := a.registry.Lookup(day)
	if err != nil {
		return puzzle.Answer{}, err
	}
	path := a.cfg.InputPath(day)
	input, err := os.ReadFile(path)
	if err != nil {
		return puzzle.Answer{}, fmt.Errorf("failed to read input: %w", err)
	}

	log := a.logger.With(zap.Int("day", day))
	started := time.Now()
	ans, err := solver(string(input), log)
	if err != nil {
		return puzzle.Answer{}, err
	}
	log.Info("day solved", zap.String("input", path), zap.Duration("took", time.Since(started)))

	return ans, nil
}
