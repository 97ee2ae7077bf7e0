// Package nodelink renders constraint graphs as node-link diagrams.
//
// # Overview
//
// Every widget of a tree becomes a Graphviz node and every connected anchor
// becomes an edge from the anchor's owner to the owner of its target. Edges
// are labelled with both anchor types and the stored margin, for example
// "TOP→BOTTOM (8)".
//
// # Usage
//
// Convert a widget tree to DOT, then render it:
//
//	dot := nodelink.ToDOT(root, nodelink.Options{Detailed: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot)
//
// [Render] does both steps for a named format and reports to the render
// hooks of the observability package.
//
// # Options
//
//   - Detailed: node labels include kind, geometry and guideline rules
//   - Chains: widgets in chains are filled, chain heads drawn bold
//
// # Styling
//
// Weak connections are dashed and connections made by the layout engine
// are grey. Guidelines are drawn as dashed boxes, containers as folders.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG and
// PNG rendering.
package nodelink
