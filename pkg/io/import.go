package io

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/anchorgraph/pkg/constraint"
	"github.com/matzehuels/anchorgraph/pkg/errors"
	"github.com/matzehuels/anchorgraph/pkg/observability"
)

// ImportScene reads a scene from a JSON file.
func ImportScene(ctx context.Context, path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()
	return readScene(ctx, path, f)
}

// ReadScene reads a scene from r.
func ReadScene(ctx context.Context, r io.Reader) (*Scene, error) {
	return readScene(ctx, "-", r)
}

func readScene(ctx context.Context, source string, r io.Reader) (*Scene, error) {
	hooks := observability.Scene()
	hooks.OnLoadStart(ctx, source)
	start := time.Now()

	s, err := decodeScene(ctx, r)

	var stats observability.LoadStats
	if s != nil {
		stats = observability.LoadStats{
			Widgets:     len(s.order),
			Connections: s.Connected,
			Rejected:    len(s.Rejected),
		}
	}
	hooks.OnLoadComplete(ctx, source, stats, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func decodeScene(ctx context.Context, r io.Reader) (*Scene, error) {
	var f sceneFile
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode scene")
	}

	b := &builder{
		scene: &Scene{byID: make(map[string]*constraint.Widget, len(f.Widgets)+1)},
	}
	if err := b.root(f.Root); err != nil {
		return nil, err
	}

	parents := make([]string, len(f.Widgets))
	for i, spec := range f.Widgets {
		w, err := b.widget(spec)
		if err != nil {
			return nil, err
		}
		b.scene.order = append(b.scene.order, w)
		parents[i] = spec.Parent
	}
	// parents may be declared after their children
	for i, w := range b.scene.order {
		if err := b.attach(w, parents[i]); err != nil {
			return nil, err
		}
	}

	for _, c := range f.Connections {
		if err := b.connect(ctx, c); err != nil {
			return nil, err
		}
	}
	return b.scene, nil
}

type builder struct {
	scene  *Scene
	rootID string
}

func (b *builder) register(id string, w *constraint.Widget) error {
	if id == "" {
		id = uuid.NewString()
	}
	if err := errors.ValidateWidgetID(id); err != nil {
		return err
	}
	if _, dup := b.scene.byID[id]; dup {
		return fmt.Errorf("widget %s: %w", id, ErrDuplicateWidget)
	}
	w.SetDebugName(id)
	b.scene.byID[id] = w
	return nil
}

func (b *builder) root(spec rootSpec) error {
	root := constraint.NewRootContainer(0, 0, spec.Width, spec.Height)
	if p := spec.Padding; p != nil {
		root.SetPadding(constraint.Padding{Left: p.Left, Top: p.Top, Right: p.Right, Bottom: p.Bottom})
	}
	b.rootID = spec.ID
	if b.rootID == "" {
		b.rootID = DefaultRootID
	}
	if err := b.register(b.rootID, root.Widget); err != nil {
		return err
	}
	b.scene.Root = root
	return nil
}

func (b *builder) widget(spec widgetSpec) (*constraint.Widget, error) {
	kind := constraint.KindPlain
	if spec.Kind != "" {
		k, err := enumValue("kind", spec.Kind, kinds...)
		if err != nil {
			return nil, fmt.Errorf("widget %s: %w", spec.ID, err)
		}
		kind = k
	}

	var w *constraint.Widget
	switch kind {
	case constraint.KindGuideline:
		w = constraint.NewGuideline().Widget
	case constraint.KindContainer:
		w = constraint.NewContainer(0, 0, 0, 0).Widget
	case constraint.KindRoot:
		w = constraint.NewRootContainer(0, 0, 0, 0).Widget
	default:
		w = constraint.NewWidget(0, 0, 0, 0)
	}
	if err := b.register(spec.ID, w); err != nil {
		return nil, err
	}
	if err := applyWidget(w, spec); err != nil {
		return nil, fmt.Errorf("widget %s: %w", w.DebugName(), err)
	}
	return w, nil
}

func applyWidget(w *constraint.Widget, spec widgetSpec) error {
	w.SetType(spec.Type)
	w.SetMinWidth(spec.MinWidth)
	w.SetMinHeight(spec.MinHeight)
	w.SetOrigin(spec.X, spec.Y)
	w.SetDimension(spec.Width, spec.Height)
	if spec.WrapWidth > 0 {
		w.SetWrapWidth(spec.WrapWidth)
	}
	if spec.WrapHeight > 0 {
		w.SetWrapHeight(spec.WrapHeight)
	}
	w.SetBaselineDistance(spec.Baseline)

	if spec.Visibility != "" {
		v, err := enumValue("visibility", spec.Visibility, visibilities...)
		if err != nil {
			return err
		}
		w.SetVisibility(v)
	}
	if spec.Horizontal != "" {
		bh, err := enumValue("horizontal", spec.Horizontal, behaviors...)
		if err != nil {
			return err
		}
		w.SetHorizontalDimensionBehavior(bh)
	}
	if spec.Vertical != "" {
		bh, err := enumValue("vertical", spec.Vertical, behaviors...)
		if err != nil {
			return err
		}
		w.SetVerticalDimensionBehavior(bh)
	}
	if spec.HorizontalBias != nil {
		w.SetHorizontalBiasPercent(*spec.HorizontalBias)
	}
	if spec.VerticalBias != nil {
		w.SetVerticalBiasPercent(*spec.VerticalBias)
	}
	if err := w.SetDimensionRatioString(spec.Ratio); err != nil {
		return err
	}

	g, ok := w.AsGuideline()
	if !ok {
		if spec.Orientation != "" || spec.Percent != nil || spec.Begin != nil || spec.End != nil {
			return fmt.Errorf("guideline fields on a %v: %w", w.Kind(), ErrInvalidValue)
		}
		return nil
	}
	if spec.Orientation != "" {
		o, err := enumValue("orientation", spec.Orientation, orientations...)
		if err != nil {
			return err
		}
		g.SetOrientation(o)
	}
	switch {
	case spec.Percent != nil:
		g.SetGuidePercent(*spec.Percent)
	case spec.Begin != nil:
		g.SetGuideBegin(*spec.Begin)
	case spec.End != nil:
		g.SetGuideEnd(*spec.End)
	}
	return nil
}

func (b *builder) attach(w *constraint.Widget, parentID string) error {
	if parentID == "" {
		parentID = b.rootID
	}
	p, ok := b.scene.byID[parentID]
	if !ok {
		return fmt.Errorf("parent %s of %s: %w", parentID, w.DebugName(), ErrUnknownWidget)
	}
	c, ok := p.AsContainer()
	if !ok {
		return fmt.Errorf("parent %s of %s is a %v: %w", parentID, w.DebugName(), p.Kind(), ErrInvalidParent)
	}
	c.Add(w)
	if w.Parent() != p {
		return fmt.Errorf("%s cannot contain its ancestor %s: %w", parentID, w.DebugName(), ErrInvalidParent)
	}
	return nil
}

func (b *builder) lookup(id string) (*constraint.Widget, error) {
	w, ok := b.scene.byID[id]
	if !ok {
		return nil, errors.Wrap(errors.ErrCodeWidgetNotFound, ErrUnknownWidget, "connection references %q", id)
	}
	return w, nil
}

func (b *builder) connect(ctx context.Context, c connSpec) error {
	from, err := b.lookup(c.From)
	if err != nil {
		return err
	}
	to, err := b.lookup(c.To)
	if err != nil {
		return err
	}
	fromType, err := parseAnchor(c.FromAnchor)
	if err != nil {
		return fmt.Errorf("connection from %s: %w", c.From, err)
	}
	toType, err := parseAnchor(c.ToAnchor)
	if err != nil {
		return fmt.Errorf("connection to %s: %w", c.To, err)
	}

	strength := constraint.StrengthStrong
	if c.Strength != "" {
		if strength, err = enumValue("strength", c.Strength, strengths...); err != nil {
			return err
		}
	}
	creator := constraint.CreatorUser
	if c.Creator != "" {
		if creator, err = enumValue("creator", c.Creator, creators...); err != nil {
			return err
		}
	}

	var ok bool
	if c.Primitive {
		goneMargin := constraint.UnsetGoneMargin
		if c.GoneMargin != nil {
			goneMargin = *c.GoneMargin
		}
		fa, ta := from.Anchor(fromType), to.Anchor(toType)
		ok = fa != nil && ta != nil && fa.ConnectFull(ta, c.Margin, goneMargin, strength, creator, false)
	} else {
		ok = from.ConnectWith(fromType, to, toType, c.Margin, strength, creator)
		if ok && c.GoneMargin != nil {
			for _, a := range goneMarginAnchors(from, fromType, to) {
				a.SetGoneMargin(*c.GoneMargin)
			}
		}
	}

	if !ok {
		rej := Rejection{From: c.From, FromAnchor: fromType.String(), To: c.To, ToAnchor: toType.String()}
		b.scene.Rejected = append(b.scene.Rejected, rej)
		observability.Scene().OnConnectionRejected(ctx, rej.From+"."+rej.FromAnchor, rej.To+"."+rej.ToAnchor)
		return nil
	}
	b.scene.Connected++
	return nil
}

// goneMarginAnchors returns the anchors of from that take the gone margin of
// a widget-level connect to to. A guideline has no composite anchors, so its
// composites resolve to whichever of its anchors now targets to.
func goneMarginAnchors(from *constraint.Widget, t constraint.AnchorType, to *constraint.Widget) []*constraint.Anchor {
	if a := from.Anchor(t); a != nil {
		return []*constraint.Anchor{a}
	}
	var out []*constraint.Anchor
	for _, a := range from.Anchors() {
		if a.IsConnected() && a.Target().Owner() == to {
			out = append(out, a)
		}
	}
	return out
}
