package constraint

import "fmt"

// GuidelineBehavior names the rule positioning a guideline.
type GuidelineBehavior int

const (
	GuideUnknown GuidelineBehavior = iota
	GuidePercent
	GuideBegin
	GuideEnd
)

func (b GuidelineBehavior) String() string {
	switch b {
	case GuideUnknown:
		return "unknown"
	case GuidePercent:
		return "percent"
	case GuideBegin:
		return "begin"
	case GuideEnd:
		return "end"
	}
	return fmt.Sprintf("GuidelineBehavior(%d)", int(b))
}

// unset marks an inactive guideline rule.
const unset = -1

type guideState struct {
	orientation     Orientation
	active          *Anchor
	relativePercent float32
	relativeBegin   int
	relativeEnd     int
	minimumPosition int
}

// anchorFor aliases every side of the guideline's axis to its single active
// anchor. Anchors of the other axis and the centers do not exist.
func (g *guideState) anchorFor(t AnchorType) *Anchor {
	switch t {
	case AnchorLeft, AnchorRight:
		if g.orientation == Vertical {
			return g.active
		}
		return nil
	case AnchorTop, AnchorBottom:
		if g.orientation == Horizontal {
			return g.active
		}
		return nil
	case AnchorBaseline, AnchorCenter, AnchorCenterX, AnchorCenterY, AnchorNone:
		return nil
	}
	panic(fmt.Sprintf("constraint: unhandled anchor type %v", t))
}

// Guideline is a widget with a single anchor, placed across its parent at a
// percentage of the parent's extent or at a fixed distance from its
// beginning or end. A vertical guideline has a position along the x axis.
//
// At most one of the three rules is active at any time.
type Guideline struct {
	*Widget
}

// NewGuideline creates a horizontal guideline with no active rule.
func NewGuideline() *Guideline {
	w := newWidget(KindGuideline)
	w.guide = &guideState{
		orientation:     Horizontal,
		active:          w.top,
		relativePercent: unset,
		relativeBegin:   unset,
		relativeEnd:     unset,
	}
	w.anchors = []*Anchor{w.top}
	return &Guideline{Widget: w}
}

// AsGuideline returns the guideline view of w, if w is a guideline.
func (w *Widget) AsGuideline() (*Guideline, bool) {
	if w.guide == nil {
		return nil, false
	}
	return &Guideline{Widget: w}, true
}

// Orientation returns the guideline orientation.
func (g *Guideline) Orientation() Orientation { return g.guide.orientation }

// SetOrientation switches the guideline between axes. The active anchor
// becomes LEFT for vertical guidelines and TOP for horizontal ones.
func (g *Guideline) SetOrientation(o Orientation) {
	if g.guide.orientation == o {
		return
	}
	g.guide.orientation = o
	if o == Vertical {
		g.guide.active = g.left
	} else {
		g.guide.active = g.top
	}
	g.anchors = []*Anchor{g.guide.active}
}

// ActiveAnchor returns the single anchor of the guideline.
func (g *Guideline) ActiveAnchor() *Anchor { return g.guide.active }

// RelativeBehavior returns the active positioning rule.
func (g *Guideline) RelativeBehavior() GuidelineBehavior {
	switch {
	case g.guide.relativePercent != unset:
		return GuidePercent
	case g.guide.relativeBegin != unset:
		return GuideBegin
	case g.guide.relativeEnd != unset:
		return GuideEnd
	}
	return GuideUnknown
}

// RelativePercent returns the percent rule, or -1 when inactive.
func (g *Guideline) RelativePercent() float32 { return g.guide.relativePercent }

// RelativeBegin returns the begin offset, or -1 when inactive.
func (g *Guideline) RelativeBegin() int { return g.guide.relativeBegin }

// RelativeEnd returns the end offset, or -1 when inactive.
func (g *Guideline) RelativeEnd() int { return g.guide.relativeEnd }

// SetGuidePercent positions the guideline at a fraction of the parent
// extent and clears the other rules. Values of -1 or below are ignored.
func (g *Guideline) SetGuidePercent(value float32) {
	if value > unset {
		g.guide.relativePercent = value
		g.guide.relativeBegin = unset
		g.guide.relativeEnd = unset
	}
}

// SetGuidePercentInt is SetGuidePercent with a value expressed in percent.
func (g *Guideline) SetGuidePercentInt(value int) {
	if value > unset {
		g.SetGuidePercent(float32(value) / 100)
	}
}

// SetGuideBegin positions the guideline at a fixed distance from the start of
// the parent and clears the other rules. Values of -1 or below are ignored.
func (g *Guideline) SetGuideBegin(value int) {
	if value > unset {
		g.guide.relativePercent = unset
		g.guide.relativeBegin = value
		g.guide.relativeEnd = unset
	}
}

// SetGuideEnd positions the guideline at a fixed distance from the end of the
// parent and clears the other rules. Values of -1 or below are ignored.
func (g *Guideline) SetGuideEnd(value int) {
	if value > unset {
		g.guide.relativePercent = unset
		g.guide.relativeBegin = unset
		g.guide.relativeEnd = value
	}
}

// MinimumPosition returns the lowest position Position will report.
func (g *Guideline) MinimumPosition() int { return g.guide.minimumPosition }

// SetMinimumPosition sets the lowest position Position will report.
func (g *Guideline) SetMinimumPosition(p int) { g.guide.minimumPosition = p }

// parentExtent returns the parent dimension along the guideline's axis:
// width for vertical guidelines, height for horizontal ones.
func (g *guideState) parentExtent(w *Widget) int {
	if w.parent == nil {
		return 0
	}
	if g.orientation == Vertical {
		return w.parent.Width()
	}
	return w.parent.Height()
}

// Position resolves the active rule against the parent extent. The result
// is clamped at the minimum position; without a rule the current position is
// returned.
func (g *Guideline) Position() int {
	extent := g.guide.parentExtent(g.Widget)
	var pos int
	switch g.RelativeBehavior() {
	case GuidePercent:
		pos = int(g.guide.relativePercent*float32(extent) + 0.5)
	case GuideBegin:
		pos = g.guide.relativeBegin
	case GuideEnd:
		pos = extent - g.guide.relativeEnd
	default:
		pos = g.currentPosition()
	}
	return max(pos, g.guide.minimumPosition)
}

func (g *Guideline) currentPosition() int {
	if g.guide.orientation == Vertical {
		return g.X()
	}
	return g.Y()
}

// setDrawOrigin turns a position relative to the root into a new value for
// the active rule. Nothing happens without a parent or without a rule.
func (g *guideState) setDrawOrigin(w *Widget, x, y int) {
	if w.parent == nil {
		return
	}
	gl := &Guideline{Widget: w}
	position := y - w.offsetY
	if g.orientation == Vertical {
		position = x - w.offsetX
	}
	extent := g.parentExtent(w)
	switch gl.RelativeBehavior() {
	case GuideBegin:
		gl.SetGuideBegin(position)
	case GuideEnd:
		gl.SetGuideEnd(extent - position)
	case GuidePercent:
		if extent != 0 {
			gl.SetGuidePercent(float32(position) / float32(extent))
		}
	}
}

// InferRelativePercentPosition switches to the percent rule, keeping the
// current position.
func (g *Guideline) InferRelativePercentPosition() {
	extent := g.guide.parentExtent(g.Widget)
	if extent == 0 {
		return
	}
	g.SetGuidePercent(float32(g.currentPosition()) / float32(extent))
}

// InferRelativeBeginPosition switches to the begin rule, keeping the current
// position.
func (g *Guideline) InferRelativeBeginPosition() {
	g.SetGuideBegin(g.currentPosition())
}

// InferRelativeEndPosition switches to the end rule, keeping the current
// position.
func (g *Guideline) InferRelativeEndPosition() {
	g.SetGuideEnd(g.guide.parentExtent(g.Widget) - g.currentPosition())
}

// CyclePosition rotates the active rule begin → percent → end → begin
// without moving the guideline.
func (g *Guideline) CyclePosition() {
	switch g.RelativeBehavior() {
	case GuideBegin:
		g.InferRelativePercentPosition()
	case GuidePercent:
		g.InferRelativeEndPosition()
	case GuideEnd:
		g.InferRelativeBeginPosition()
	}
}
