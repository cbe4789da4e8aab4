package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/skyroute/observability"
	"github.com/katalvlaran/skyroute/scheduler"
	"github.com/katalvlaran/skyroute/sim"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func newFlyCmd(a *app) *cobra.Command {
	var from, to string

	flyCmd := &cobra.Command{
		Use:   "fly",
		Short: "Fly the shortest route, printing frames until arrival",
		Long: `Plans the shortest route and animates a marker along it. Route nodes
receive random scores that decay every tick. Frames are printed at the
configured frame interval; Ctrl-C stops the flight.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			logger := observability.GetLogger()

			g, err := a.graph()
			if err != nil {
				return err
			}
			session, err := sim.NewSession(g,
				sim.WithStep(cfg.Simulation.Step),
				sim.WithHighlight(cfg.Highlight),
				sim.WithLogger(logger.Named("sim")),
			)
			if err != nil {
				return err
			}
			if _, _, err = session.Route(from, to); err != nil {
				return err
			}

			sched, err := scheduler.New(session, cfg.Simulation, cfg.Scoring, scheduler.WithLogger(logger.Named("scheduler")))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			err = fly(cmd.Context(), out, session, sched, cfg.Simulation.FrameInterval)
			if errors.Is(err, context.Canceled) {
				logger.Info("flight interrupted")
				fmt.Fprintln(out, "interrupted")
				return nil
			}
			if err != nil {
				return err
			}

			snap := session.Snapshot()
			renderFrame(out, snap)
			if snap.Arrival != nil {
				fmt.Fprintf(out, "Total cost covered: %d\n", snap.Arrival.Cost)
			}

			return nil
		},
	}

	flyCmd.Flags().StringVar(&from, "from", "", "source node (required)")
	flyCmd.Flags().StringVar(&to, "to", "", "destination node (required)")
	_ = flyCmd.MarkFlagRequired("from")
	_ = flyCmd.MarkFlagRequired("to")

	return flyCmd
}

// fly runs the scheduler and the renderer together. The renderer stops when
// the scheduler returns.
func fly(ctx context.Context, out io.Writer, session *sim.Session, sched *scheduler.Scheduler, frameInterval time.Duration) error {
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	eg, egCtx := errgroup.WithContext(runCtx)
	eg.Go(func() error {
		defer cancel()
		return sched.Run(egCtx)
	})
	eg.Go(func() error {
		return renderLoop(egCtx, out, session, frameInterval)
	})

	err := eg.Wait()
	if err == nil && ctx.Err() != nil {
		err = ctx.Err()
	}
	if err != nil {
		observability.GetLogger().Debug("flight ended", zap.Error(err))
	}

	return err
}

// renderLoop prints a frame every interval until ctx is done. A zero
// interval disables intermediate frames.
func renderLoop(ctx context.Context, out io.Writer, session *sim.Session, interval time.Duration) error {
	if interval <= 0 {
		<-ctx.Done()
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			renderFrame(out, session.Snapshot())
		}
	}
}
