// Package io reads and writes layout scenes as JSON.
//
// # Overview
//
// A scene file describes a constraint graph: a root container, the widgets it
// holds and the connections between their anchors. Reading a scene builds
// the graph with the [constraint] package, issuing the same calls a layout
// builder would; writing a scene dumps the current state of a graph.
//
// # JSON Format
//
//	{
//	  "root": {"id": "root", "width": 400, "height": 300},
//	  "widgets": [
//	    {"id": "title", "width": 120, "height": 20},
//	    {"id": "guide", "kind": "guideline", "orientation": "vertical", "percent": 0.5},
//	    {"id": "body", "width": 200, "height": 100, "baseline": 14}
//	  ],
//	  "connections": [
//	    {"from": "title", "from_anchor": "CENTER_X", "to": "guide", "to_anchor": "LEFT"},
//	    {"from": "body", "from_anchor": "TOP", "to": "title", "to_anchor": "BOTTOM", "margin": 8}
//	  ]
//	}
//
// # Widget Fields
//
//   - id: unique identifier; a random UUID is assigned when omitted
//   - kind: "widget" (default), "guideline", "container" or "root"
//   - parent: id of the enclosing container (defaults to the root)
//   - x, y, width, height, min_width, min_height, baseline: geometry
//   - visibility: "visible", "invisible" or "gone"
//   - horizontal, vertical: "fixed", "wrap_content", "match_constraint"
//     or "match_parent"
//   - horizontal_bias, vertical_bias: 0 to 1
//   - ratio: dimension ratio such as "16:9" or "H,3:4"
//   - orientation and one of percent, begin, end: guideline placement
//
// # Connections
//
// A connection names two widgets and two anchors. By default it is applied
// with [constraint.Widget.ConnectWith], so CENTER connections fan out and
// conflicting connections are displaced exactly as in an interactive editor.
// Connections written by [WriteScene] carry "primitive": true and are applied
// anchor by anchor, which reproduces a graph state verbatim.
//
// A connection the graph refuses does not fail the import. It is recorded in
// [Scene.Rejected] and reported to [observability.SceneHooks].
//
// [observability.SceneHooks]: github.com/matzehuels/anchorgraph/pkg/observability.SceneHooks
package io
