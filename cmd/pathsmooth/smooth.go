package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"honnef.co/go/pathsmooth"
)

func (a *app) smoothCmd() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "smooth [file]",
		Short: "Reduce close points and round corners",
		Long: `Smooth reads a JSON array of waypoints from file, or from standard input if
file is omitted or "-", merges points closer than --min-distance, replaces
sharp corners with arcs, and writes the result as JSON.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := a.readInput(cmd, args)
			if err != nil {
				return err
			}
			out, err := a.smooth(in)
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				return writeOutput(cmd.OutOrStdout(), out)
			}
			f, err := os.Create(output)
			if err != nil {
				return err
			}
			if err := writeOutput(f, out); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		},
	}

	def := pathsmooth.DefaultOptions
	f := cmd.Flags()
	f.Float64("min-distance", def.MinDistance, "merge points closer than this")
	f.Float64("pullback", def.Pullback, "distance from each corner at which arcs start")
	f.Int("arc-samples", def.ArcSamples, "segments per rounded corner")
	f.Bool("skip-reduce", false, "don't merge close points")
	f.Bool("skip-round", false, "don't round corners")
	f.StringVarP(&output, "output", "o", "", "output file (default is standard output)")
	return cmd
}

func writeOutput(w io.Writer, out pathsmooth.Polyline) error {
	if err := writeWaypoints(w, out); err != nil {
		return fmt.Errorf("writing waypoints: %w", err)
	}
	return nil
}

// smooth runs the stages enabled by the configuration.
func (a *app) smooth(in pathsmooth.Polyline) (pathsmooth.Polyline, error) {
	s := a.cfg.Smoothing
	var (
		out pathsmooth.Polyline
		err error
	)
	switch {
	case s.SkipReduce && s.SkipRound:
		out = in
	case s.SkipRound:
		out, err = pathsmooth.Reduce(in, s.MinDistance)
	case s.SkipReduce:
		a.logCorners(in)
		out, err = pathsmooth.RoundCorners(in, s.Pullback, s.ArcSamples)
	default:
		if a.logger.Core().Enabled(zap.DebugLevel) {
			// Smooth rounds the reduced path; log the corners it will see.
			if reduced, err := pathsmooth.Reduce(in, s.MinDistance); err == nil {
				a.logCorners(reduced)
			}
		}
		out, err = pathsmooth.Smooth(in, s.Options())
	}
	if err != nil {
		a.logger.Error("smoothing failed", zap.Error(err))
		return nil, err
	}
	a.logger.Info("smoothed path",
		zap.Int("in", len(in)),
		zap.Int("out", len(out)),
		zap.Bool("reduce", !s.SkipReduce),
		zap.Bool("round", !s.SkipRound),
		zap.Float64("length", out.Length()))
	return out, nil
}

// logCorners logs the decision for each interior vertex of points at debug
// level.
func (a *app) logCorners(points pathsmooth.Polyline) {
	if !a.logger.Core().Enabled(zap.DebugLevel) {
		return
	}
	pullback := a.cfg.Smoothing.Pullback
	for i, c := range pathsmooth.Corners(points, pullback) {
		a.logger.Debug("corner",
			zap.Int("index", i),
			zap.Stringer("vertex", c.Vertex),
			zap.Stringer("kind", c.Kind))
	}
}

func (a *app) readInput(cmd *cobra.Command, args []string) (pathsmooth.Polyline, error) {
	var r io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return readWaypoints(r)
}
