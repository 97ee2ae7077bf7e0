package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/google/uuid"

	"github.com/matzehuels/anchorgraph/pkg/constraint"
)

// ExportScene writes the graph under root to a JSON file.
func ExportScene(root *constraint.RootContainer, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteScene(root, f)
}

// WriteScene writes the graph under root as JSON. Widgets without a debug
// name are given a random id. Connections to widgets outside the tree are
// left out.
func WriteScene(root *constraint.RootContainer, w io.Writer) error {
	ids := make(map[*constraint.Widget]string)
	var order []*constraint.Widget
	root.Walk(func(wd *constraint.Widget) bool {
		id := wd.DebugName()
		if id == "" {
			id = uuid.NewString()
		}
		ids[wd] = id
		order = append(order, wd)
		return true
	})

	p := root.Padding()
	f := sceneFile{
		Root: rootSpec{
			ID:     ids[root.Widget],
			Width:  root.Width(),
			Height: root.Height(),
		},
		Widgets:     make([]widgetSpec, 0, len(order)-1),
		Connections: []connSpec{},
	}
	if p != (constraint.Padding{}) {
		f.Root.Padding = &paddingSpec{Left: p.Left, Top: p.Top, Right: p.Right, Bottom: p.Bottom}
	}

	for _, wd := range order {
		if wd != root.Widget {
			spec := exportWidget(wd)
			spec.ID = ids[wd]
			if wd.Parent() != root.Widget {
				spec.Parent = ids[wd.Parent()]
			}
			f.Widgets = append(f.Widgets, spec)
		}
		for _, a := range wd.Anchors() {
			if c, ok := exportAnchor(a, ids); ok {
				f.Connections = append(f.Connections, c)
			}
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func exportWidget(w *constraint.Widget) widgetSpec {
	spec := widgetSpec{
		Type:       w.Type(),
		X:          w.X(),
		Y:          w.Y(),
		Width:      w.Width(),
		Height:     w.Height(),
		MinWidth:   w.MinWidth(),
		MinHeight:  w.MinHeight(),
		WrapWidth:  w.WrapWidth(),
		WrapHeight: w.WrapHeight(),
		Baseline:   w.BaselineDistance(),
	}
	if w.Kind() != constraint.KindPlain {
		spec.Kind = enumName(w.Kind())
	}
	if v := w.Visibility(); v != constraint.Visible {
		spec.Visibility = enumName(v)
	}
	if b := w.HorizontalDimensionBehavior(); b != constraint.Fixed {
		spec.Horizontal = enumName(b)
	}
	if b := w.VerticalDimensionBehavior(); b != constraint.Fixed {
		spec.Vertical = enumName(b)
	}
	if bias := w.HorizontalBiasPercent(); bias != constraint.DefaultBias {
		spec.HorizontalBias = &bias
	}
	if bias := w.VerticalBiasPercent(); bias != constraint.DefaultBias {
		spec.VerticalBias = &bias
	}
	if r := w.DimensionRatio(); r > 0 {
		spec.Ratio = formatRatio(r, w.DimensionRatioSide())
	}

	if g, ok := w.AsGuideline(); ok {
		if g.Orientation() != constraint.Horizontal {
			spec.Orientation = enumName(g.Orientation())
		}
		switch g.RelativeBehavior() {
		case constraint.GuidePercent:
			p := g.RelativePercent()
			spec.Percent = &p
		case constraint.GuideBegin:
			b := g.RelativeBegin()
			spec.Begin = &b
		case constraint.GuideEnd:
			e := g.RelativeEnd()
			spec.End = &e
		}
	}
	return spec
}

func formatRatio(r float32, side int) string {
	s := strconv.FormatFloat(float64(r), 'g', -1, 32)
	switch side {
	case int(constraint.Horizontal):
		return "W," + s
	case int(constraint.Vertical):
		return "H," + s
	}
	return s
}

func exportAnchor(a *constraint.Anchor, ids map[*constraint.Widget]string) (connSpec, bool) {
	if !a.IsConnected() {
		return connSpec{}, false
	}
	to, ok := ids[a.Target().Owner()]
	if !ok {
		return connSpec{}, false
	}
	c := connSpec{
		From:       ids[a.Owner()],
		FromAnchor: a.Type().String(),
		To:         to,
		ToAnchor:   a.Target().Type().String(),
		Margin:     a.RawMargin(),
		Strength:   enumName(a.Strength()),
		Creator:    enumName(a.Creator()),
		Primitive:  true,
	}
	if gm := a.GoneMargin(); gm != constraint.UnsetGoneMargin {
		c.GoneMargin = &gm
	}
	return c, true
}
