// Package cli implements the anchorgraph command-line interface.
//
// The commands load scene files (see package io) into a constraint graph and
// report on it:
//   - inspect: widget table, connection counts and rejected connections
//   - chains: horizontal and vertical chains with their members
//   - render: Graphviz DOT, SVG or PNG of the connection graph
//   - browse: interactive widget and anchor browser
//   - cache: manage the render cache
//
// # Configuration
//
// Defaults are read from $XDG_CONFIG_HOME/anchorgraph/config.toml, or the
// file given with --config:
//
//	log_level = "info"
//
//	[render]
//	format = "svg"
//	detailed = false
//	chains = true
//
//	[cache]
//	enabled = true
//	ttl = "168h"
//
// Flags override the file.
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"fmt"
	stdio "io"

	"github.com/matzehuels/anchorgraph/pkg/constraint"
	"github.com/matzehuels/anchorgraph/pkg/io"
)

// loadScene imports the scene at path. A path of "-" reads standard input.
func loadScene(ctx context.Context, path string, stdin stdio.Reader) (*io.Scene, error) {
	if path == "-" {
		s, err := io.ReadScene(ctx, stdin)
		if err != nil {
			return nil, fmt.Errorf("load scene from stdin: %w", err)
		}
		return s, nil
	}
	s, err := io.ImportScene(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("load scene %s: %w", path, err)
	}
	return s, nil
}

// connectionCount counts the connected anchors of every widget in the
// scene, the root included.
func connectionCount(s *io.Scene) int {
	n := 0
	s.Root.Walk(func(w *constraint.Widget) bool {
		for _, a := range w.Anchors() {
			if a.IsConnected() {
				n++
			}
		}
		return true
	})
	return n
}
