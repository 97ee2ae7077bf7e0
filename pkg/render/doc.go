// Package render holds the output formats shared by the renderers.
//
// # Overview
//
// Renderers turn a widget tree into a picture of its constraint graph. The
// only renderer today is [nodelink], which draws widgets as Graphviz nodes
// and anchor connections as labelled edges.
//
//	dot := nodelink.ToDOT(root, nodelink.Options{Chains: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Formats
//
// [Formats] lists the names accepted by the CLI's render command. Use
// [ValidateFormat] to check user input against it.
//
// [nodelink]: github.com/matzehuels/anchorgraph/pkg/render/nodelink
package render
