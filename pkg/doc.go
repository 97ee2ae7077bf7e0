// Package pkg provides the libraries behind anchorgraph, a constraint graph
// for widget layouts.
//
// # Overview
//
// Anchorgraph models a layout as widgets with anchors on their sides, centers
// and text baseline. Connecting an anchor to a compatible anchor of another
// widget records a relation (with margin, strength and creator) that a
// layout solver would later turn into positions. The pkg directory is
// organized into these areas:
//
//  1. [constraint] - The graph itself: widgets, guidelines, containers,
//     anchors, chains and resets
//  2. [io] - JSON scene files that build a graph and write it back
//  3. [render] - Graphviz drawings of the connection graph
//  4. [cache] - Storage for rendered artifacts
//  5. [errors] and [observability] - Shared error codes and event hooks
//
// # Architecture
//
// The typical data flow:
//
//	scene.json
//	     ↓
//	[io] package (decode widgets, parents and connections)
//	     ↓
//	[constraint] package (anchor compatibility, composite connects, chains)
//	     ↓
//	[render/nodelink] package (DOT, then SVG or PNG through Graphviz)
//	     ↓
//	[cache] package (keyed by scene hash and render options)
//
// # Quick Start
//
// Build a graph in code:
//
//	import "github.com/matzehuels/anchorgraph/pkg/constraint"
//
//	root := constraint.NewRootContainer(0, 0, 400, 300)
//	title := constraint.NewWidget(0, 0, 120, 20)
//	body := constraint.NewWidget(0, 0, 200, 100)
//	root.Add(title, body)
//
//	body.Connect(constraint.AnchorTop, title, constraint.AnchorBottom, 8)
//	title.Connect(constraint.AnchorCenterX, root.Widget, constraint.AnchorCenterX, 0)
//
// Or load it from a file and draw it:
//
//	s, _ := io.ImportScene(ctx, "login.json")
//	for _, r := range s.Rejected {
//	    fmt.Println("rejected", r)
//	}
//	svg, _ := nodelink.Render(ctx, s.Root, render.FormatSVG, nodelink.Options{Chains: true})
//
// # Main Packages
//
// [constraint] - Anchors accept a connection only to a compatible anchor on
// another widget: horizontal sides to horizontal sides, baselines to
// baselines, centers to centers. Widget-level connects expand the CENTER,
// CENTER_X and CENTER_Y composites into the side anchors they stand for.
// Guidelines expose a single active anchor; root containers register chain
// heads.
//
// [io] - The scene format. Parents may be declared after their children,
// connections are applied in file order, and refused connections are
// reported on the scene rather than failing the import.
//
// [render/nodelink] - One node per widget and one edge per connected anchor.
// Chains are filled by orientation; weak and auto-created connections are
// drawn dashed and grey.
//
// [cache] - A file cache that persists across runs, an LRU memory cache, and
// a layered combination of both.
//
// [observability] - Hooks for scene loading, rejected connections, renders
// and cache traffic. The CLI logs them; libraries default to no-ops.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...                 # All tests
//	go test ./pkg/constraint/...      # Specific package
//	go test -run Example ./pkg/...    # Examples only
//
// [constraint]: https://pkg.go.dev/github.com/matzehuels/anchorgraph/pkg/constraint
// [io]: https://pkg.go.dev/github.com/matzehuels/anchorgraph/pkg/io
// [render]: https://pkg.go.dev/github.com/matzehuels/anchorgraph/pkg/render
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/anchorgraph/pkg/render/nodelink
// [cache]: https://pkg.go.dev/github.com/matzehuels/anchorgraph/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/anchorgraph/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/anchorgraph/pkg/observability
package pkg
