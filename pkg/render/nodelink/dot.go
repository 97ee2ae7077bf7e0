package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/anchorgraph/pkg/constraint"
	"github.com/matzehuels/anchorgraph/pkg/observability"
	"github.com/matzehuels/anchorgraph/pkg/render"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes kind, geometry and guideline rules in node labels.
	// When false, only the widget id is shown.
	Detailed bool

	// Chains highlights widgets that are part of a chain.
	Chains bool
}

// Chain highlight colors.
const (
	horizontalChainColor = "lightblue"
	verticalChainColor   = "lightyellow"
	bothChainsColor      = "palegreen"
)

// ToDOT converts the widget tree under root to Graphviz DOT. The result has
// one node per widget and one edge per connected anchor.
func ToDOT(root *constraint.RootContainer, opts Options) string {
	names := newNamer()
	var widgets []*constraint.Widget
	root.Walk(func(w *constraint.Widget) bool {
		names.name(w)
		widgets = append(widgets, w)
		return true
	})

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [fontsize=10];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, w := range widgets {
		label := fmtLabel(w, names.name(w), opts.Detailed)
		fmt.Fprintf(&buf, "  %q [%s];\n", names.name(w), strings.Join(fmtAttrs(w, label, opts.Chains), ", "))
	}

	buf.WriteString("\n")
	for _, w := range widgets {
		for _, a := range w.Anchors() {
			if !a.IsConnected() {
				continue
			}
			to := a.Target()
			fmt.Fprintf(&buf, "  %q -> %q [%s];\n", names.name(w), names.name(to.Owner()), strings.Join(edgeAttrs(a), ", "))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// namer hands out node names, falling back to a counter for widgets without
// a debug name.
type namer struct {
	names map[*constraint.Widget]string
	next  int
}

func newNamer() *namer {
	return &namer{names: make(map[*constraint.Widget]string)}
}

func (n *namer) name(w *constraint.Widget) string {
	if s, ok := n.names[w]; ok {
		return s
	}
	s := w.DebugName()
	if s == "" {
		n.next++
		s = "widget" + strconv.Itoa(n.next)
	}
	n.names[w] = s
	return s
}

// EdgeLabel returns the label of the edge drawn for a connected anchor.
func EdgeLabel(a *constraint.Anchor) string {
	return fmt.Sprintf("%v→%v (%d)", a.Type(), a.Target().Type(), a.RawMargin())
}

func fmtLabel(w *constraint.Widget, name string, detailed bool) string {
	if !detailed {
		return name
	}

	parts := []string{
		w.Kind().String(),
		fmt.Sprintf("(%d, %d) %dx%d", w.X(), w.Y(), w.Width(), w.Height()),
	}
	if v := w.Visibility(); v != constraint.Visible {
		parts = append(parts, v.String())
	}
	if g, ok := w.AsGuideline(); ok {
		parts = append(parts, guideRule(g))
	}
	return name + "\n" + strings.Join(parts, "\n")
}

func guideRule(g *constraint.Guideline) string {
	switch g.RelativeBehavior() {
	case constraint.GuidePercent:
		return fmt.Sprintf("%v %g%%", g.Orientation(), g.RelativePercent()*100)
	case constraint.GuideBegin:
		return fmt.Sprintf("%v begin %d", g.Orientation(), g.RelativeBegin())
	case constraint.GuideEnd:
		return fmt.Sprintf("%v end %d", g.Orientation(), g.RelativeEnd())
	}
	return g.Orientation().String()
}

func fmtAttrs(w *constraint.Widget, label string, chains bool) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	switch w.Kind() {
	case constraint.KindGuideline:
		attrs = append(attrs, "style=\"dashed\"", "fontcolor=grey30")
	case constraint.KindContainer:
		attrs = append(attrs, "shape=folder")
	case constraint.KindRoot:
		attrs = append(attrs, "shape=folder", "penwidth=2")
	}
	if w.Visibility() == constraint.Gone {
		attrs = append(attrs, "fontcolor=grey60")
	}
	if !chains {
		return attrs
	}

	h, v := w.IsInHorizontalChain(), w.IsInVerticalChain()
	switch {
	case h && v:
		attrs = append(attrs, "fillcolor="+bothChainsColor)
	case h:
		attrs = append(attrs, "fillcolor="+horizontalChainColor)
	case v:
		attrs = append(attrs, "fillcolor="+verticalChainColor)
	}
	if (h && w.HorizontalChainControlWidget() == w) || (v && w.VerticalChainControlWidget() == w) {
		attrs = append(attrs, "penwidth=2")
	}
	return attrs
}

func edgeAttrs(a *constraint.Anchor) []string {
	attrs := []string{fmt.Sprintf("label=%q", EdgeLabel(a))}
	if a.Strength() == constraint.StrengthWeak {
		attrs = append(attrs, "style=dashed")
	}
	if a.Creator() == constraint.CreatorAutoConstraint {
		attrs = append(attrs, "color=grey")
	}
	return attrs
}

// Render converts the tree under root to the given format.
func Render(ctx context.Context, root *constraint.RootContainer, format string, opts Options) ([]byte, error) {
	if err := render.ValidateFormat(format); err != nil {
		return nil, err
	}

	widgets := 0
	root.Walk(func(*constraint.Widget) bool {
		widgets++
		return true
	})
	hooks := observability.Render()
	hooks.OnRenderStart(ctx, format, widgets)
	start := time.Now()

	dot := ToDOT(root, opts)
	var (
		out []byte
		err error
	)
	switch format {
	case render.FormatSVG:
		out, err = RenderSVG(ctx, dot)
	case render.FormatPNG:
		out, err = RenderPNG(ctx, dot)
	default:
		out = []byte(dot)
	}

	hooks.OnRenderComplete(ctx, format, len(out), time.Since(start), err)
	return out, err
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	out, err := renderDOT(ctx, dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(out), nil
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return renderDOT(ctx, dot, graphviz.PNG)
}

func renderDOT(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces the Graphviz svg tag with one sized to the
// viewBox, so the image scales cleanly when embedded.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
