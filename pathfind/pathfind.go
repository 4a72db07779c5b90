package pathfind

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/tunnelsat/tunnelsat/engine"
	"github.com/tunnelsat/tunnelsat/network"
	"github.com/tunnelsat/tunnelsat/reduction"
)

// ErrNoPath indicates no tunnel route exists at any length up to maxLength.
var ErrNoPath = errors.New("pathfind: no tunnel route within maxLength")

// Result is a shortest tunnel route found by ShortestTunnel.
type Result struct {
	Length int
	Steps  []reduction.Step
}

// ShortestTunnel performs iterative deepening over path length, calling
// reduction.Build/engine.Solve/reduction.Decode for length = 0, 1, 2, ...
// up to and including maxLength, and returns the first (shortest)
// satisfying route.
//
// Each candidate length gets its own *engine.GiniEngine: formulas for
// different lengths share no variables, so there is nothing to gain
// (and correctness to lose) from reusing one circuit across lengths.
//
// Progress is logged at slog.LevelDebug per candidate length, without
// requiring a logger from the caller (a package-level default,
// overridable via SetLogger).
func ShortestTunnel(ctx context.Context, net *network.Network, maxLength int) (*Result, error) {
	if maxLength < 0 {
		return nil, fmt.Errorf("pathfind.ShortestTunnel: maxLength=%d: %w", maxLength, ErrNoPath)
	}

	for length := 0; length <= maxLength; length++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		logger().Debug("trying length", "length", length)

		eng := engine.NewGiniEngine()
		formula, err := reduction.Build(eng, net, length)
		if err != nil {
			return nil, fmt.Errorf("pathfind.ShortestTunnel: length=%d: %w", length, err)
		}

		model, sat, err := engine.Solve(eng, formula)
		if err != nil {
			return nil, fmt.Errorf("pathfind.ShortestTunnel: length=%d: %w", length, err)
		}
		if !sat {
			continue
		}

		steps := make([]reduction.Step, length+1)
		if err := reduction.Decode(eng, net, model, length, steps); err != nil {
			return nil, fmt.Errorf("pathfind.ShortestTunnel: length=%d: %w", length, err)
		}

		logger().Debug("found route", "length", length)
		return &Result{Length: length, Steps: steps}, nil
	}

	return nil, fmt.Errorf("pathfind.ShortestTunnel: maxLength=%d: %w", maxLength, ErrNoPath)
}

var defaultLogger = slog.Default()

// SetLogger overrides the logger ShortestTunnel uses for progress
// messages. Passing nil restores slog.Default().
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
		defaultLogger = l
		return
	}
	defaultLogger = l
}

func logger() *slog.Logger { return defaultLogger }
