package constraint

import (
	"fmt"
	"strings"
)

// matchConstraint holds the per-axis refinements of [MatchConstraint] sizing.
type matchConstraint struct {
	mode    MatchConstraintMode
	min     int
	max     int
	percent float32
}

func defaultMatchConstraint() matchConstraint {
	return matchConstraint{mode: MatchConstraintSpread, max: Unbounded, percent: 1}
}

// Widget is a rectangle with eight anchors taking part in a constraint graph.
//
// Guidelines, containers and root containers share this representation and
// are told apart by [Widget.Kind]; the typed views [Guideline], [Container]
// and [RootContainer] expose the operations specific to each variant.
//
// The position of a widget is expressed in two ways: relative to its parent
// ([Widget.X], [Widget.Y]) and relative to the root of the tree
// ([Widget.DrawX], [Widget.DrawY]). The latter is only refreshed by
// [Widget.UpdateDrawPosition].
//
// The zero value is not usable; create widgets with [NewWidget].
type Widget struct {
	kind Kind

	left, top, right, bottom *Anchor
	baseline                 *Anchor
	centerX, centerY, center *Anchor

	// iteration order of Anchors()
	anchors []*Anchor

	parent    *Widget
	behaviors [2]DimensionBehavior

	x, y          int
	width, height int

	drawX, drawY          int
	drawWidth, drawHeight int
	offsetX, offsetY      int

	baselineDistance      int
	minWidth, minHeight   int
	maxDimension          [2]int
	wrapWidth, wrapHeight int

	bias       [2]float32
	visibility Visibility

	dimensionRatio     float32
	dimensionRatioSide int
	matchConstraints   [2]matchConstraint

	chainStyles [2]ChainStyle
	weights     [2]float32

	debugName   string
	typeName    string
	companion   any
	onConnected func(source *Widget)

	guide     *guideState
	container *containerState
	root      *rootState
}

// NewWidget creates a plain widget with the given geometry. The draw
// position is initialized from the geometry.
func NewWidget(x, y, width, height int) *Widget {
	w := newWidget(KindPlain)
	w.initGeometry(x, y, width, height)
	return w
}

func newWidget(kind Kind) *Widget {
	w := &Widget{kind: kind}
	w.left = newAnchor(w, AnchorLeft)
	w.top = newAnchor(w, AnchorTop)
	w.right = newAnchor(w, AnchorRight)
	w.bottom = newAnchor(w, AnchorBottom)
	w.baseline = newAnchor(w, AnchorBaseline)
	w.centerX = newAnchor(w, AnchorCenterX)
	w.centerY = newAnchor(w, AnchorCenterY)
	w.center = newAnchor(w, AnchorCenter)
	w.anchors = []*Anchor{w.left, w.top, w.right, w.bottom, w.centerX, w.centerY, w.center, w.baseline}
	w.resetState()
	return w
}

// resetState restores every field that Reset clears, except anchors,
// children and variant state.
func (w *Widget) resetState() {
	w.parent = nil
	w.x, w.y = 0, 0
	w.width, w.height = 0, 0
	w.drawX, w.drawY = 0, 0
	w.drawWidth, w.drawHeight = 0, 0
	w.offsetX, w.offsetY = 0, 0
	w.baselineDistance = 0
	w.minWidth, w.minHeight = 0, 0
	w.maxDimension = [2]int{Unbounded, Unbounded}
	w.wrapWidth, w.wrapHeight = 0, 0
	w.bias = [2]float32{DefaultBias, DefaultBias}
	w.behaviors = [2]DimensionBehavior{Fixed, Fixed}
	w.visibility = Visible
	w.dimensionRatio = 0
	w.dimensionRatioSide = Unknown
	w.matchConstraints = [2]matchConstraint{defaultMatchConstraint(), defaultMatchConstraint()}
	w.chainStyles = [2]ChainStyle{ChainSpread, ChainSpread}
	w.weights = [2]float32{0, 0}
	w.debugName = ""
	w.typeName = ""
}

// Reset returns the widget to its default state: every anchor is
// disconnected and geometry, sizing and visibility are restored. Containers
// also release their children. The widget is detached from its parent.
func (w *Widget) Reset() {
	for _, a := range w.allAnchors() {
		a.Reset()
	}
	if w.parent != nil && w.parent.container != nil {
		w.parent.container.remove(w)
	}
	if w.container != nil {
		w.container.clear()
	}
	if w.root != nil {
		w.root.reset()
	}
	w.resetState()
}

// allAnchors returns the eight anchor slots, including those a guideline
// does not expose through Anchors.
func (w *Widget) allAnchors() []*Anchor {
	return []*Anchor{w.left, w.top, w.right, w.bottom, w.centerX, w.centerY, w.center, w.baseline}
}

// Kind returns the widget variant.
func (w *Widget) Kind() Kind { return w.kind }

// IsGuideline reports whether the widget is a guideline.
func (w *Widget) IsGuideline() bool { return w.kind == KindGuideline }

// IsContainer reports whether the widget can hold children. Root containers
// are containers too.
func (w *Widget) IsContainer() bool { return w.kind == KindContainer || w.kind == KindRoot }

// IsRootContainer reports whether the widget is a root container.
func (w *Widget) IsRootContainer() bool { return w.kind == KindRoot }

// IsTopLevel reports whether the widget has no parent.
func (w *Widget) IsTopLevel() bool { return w.parent == nil }

// Parent returns the container holding this widget, or nil. The parent link
// is only changed through [Container.Add] and [Container.Remove].
func (w *Widget) Parent() *Widget { return w.parent }

// Anchor returns the anchor of the given type, or nil for [AnchorNone] and
// for types a guideline does not expose. It panics on values outside the
// AnchorType enumeration.
func (w *Widget) Anchor(t AnchorType) *Anchor {
	if w.guide != nil {
		return w.guide.anchorFor(t)
	}
	switch t {
	case AnchorLeft:
		return w.left
	case AnchorTop:
		return w.top
	case AnchorRight:
		return w.right
	case AnchorBottom:
		return w.bottom
	case AnchorBaseline:
		return w.baseline
	case AnchorCenterX:
		return w.centerX
	case AnchorCenterY:
		return w.centerY
	case AnchorCenter:
		return w.center
	case AnchorNone:
		return nil
	}
	panic(fmt.Sprintf("constraint: unhandled anchor type %v", t))
}

// Anchors returns the anchors of the widget in iteration order. The slice
// must not be modified.
func (w *Widget) Anchors() []*Anchor { return w.anchors }

// SetConnectedHook installs fn to be called whenever another widget makes a
// direct connection to one of this widget's anchors. Pass nil to remove it.
func (w *Widget) SetConnectedHook(fn func(source *Widget)) { w.onConnected = fn }

func (w *Widget) connectedTo(source *Widget) {
	if w.onConnected != nil {
		w.onConnected(source)
	}
}

// Companion returns the opaque value attached with SetCompanion.
func (w *Widget) Companion() any { return w.companion }

// SetCompanion attaches an opaque caller value to the widget, typically the
// view or model object it stands for.
func (w *Widget) SetCompanion(c any) { w.companion = c }

// DebugName returns the name used in diagnostics.
func (w *Widget) DebugName() string { return w.debugName }

// SetDebugName sets the name used in diagnostics.
func (w *Widget) SetDebugName(name string) { w.debugName = name }

// Type returns the free-form type label of the widget.
func (w *Widget) Type() string { return w.typeName }

// SetType sets the free-form type label (e.g. "Button").
func (w *Widget) SetType(t string) { w.typeName = t }

// Visibility returns the widget visibility.
func (w *Widget) Visibility() Visibility { return w.visibility }

// SetVisibility sets the widget visibility.
func (w *Widget) SetVisibility(v Visibility) { w.visibility = v }

func (w *Widget) String() string {
	var b strings.Builder
	if w.typeName != "" {
		b.WriteString("type: " + w.typeName + " ")
	}
	if w.debugName != "" {
		b.WriteString("id: " + w.debugName + " ")
	}
	fmt.Fprintf(&b, "(%d, %d) - (%d x %d) wrap: (%d x %d)", w.x, w.y, w.width, w.height, w.wrapWidth, w.wrapHeight)
	return b.String()
}

// =============================================================================
// Position
// =============================================================================

// X returns the horizontal position relative to the parent.
func (w *Widget) X() int { return w.x }

// Y returns the vertical position relative to the parent.
func (w *Widget) Y() int { return w.y }

// Width returns the width, or 0 when the widget is gone.
func (w *Widget) Width() int {
	if w.visibility == Gone {
		return 0
	}
	return w.width
}

// Height returns the height, or 0 when the widget is gone.
func (w *Widget) Height() int {
	if w.visibility == Gone {
		return 0
	}
	return w.height
}

// Left is the same as X.
func (w *Widget) Left() int { return w.x }

// Top is the same as Y.
func (w *Widget) Top() int { return w.y }

// Right returns the right edge relative to the parent.
func (w *Widget) Right() int { return w.x + w.width }

// Bottom returns the bottom edge relative to the parent.
func (w *Widget) Bottom() int { return w.y + w.height }

// RootX returns the position relative to the root, ignoring the draw cache.
func (w *Widget) RootX() int { return w.x + w.offsetX }

// RootY returns the position relative to the root, ignoring the draw cache.
func (w *Widget) RootY() int { return w.y + w.offsetY }

// DrawX returns the last computed horizontal position relative to the root.
func (w *Widget) DrawX() int { return w.drawX + w.offsetX }

// DrawY returns the last computed vertical position relative to the root.
func (w *Widget) DrawY() int { return w.drawY + w.offsetY }

// DrawWidth returns the last computed width.
func (w *Widget) DrawWidth() int { return w.drawWidth }

// DrawHeight returns the last computed height.
func (w *Widget) DrawHeight() int { return w.drawHeight }

// DrawRight returns DrawX + DrawWidth.
func (w *Widget) DrawRight() int { return w.DrawX() + w.drawWidth }

// DrawBottom returns DrawY + DrawHeight.
func (w *Widget) DrawBottom() int { return w.DrawY() + w.drawHeight }

// Offset returns the accumulated root offset applied to the draw position.
func (w *Widget) Offset() (x, y int) { return w.offsetX, w.offsetY }

// SetX sets the horizontal position relative to the parent.
func (w *Widget) SetX(x int) { w.x = x }

// SetY sets the vertical position relative to the parent.
func (w *Widget) SetY(y int) { w.y = y }

// SetOrigin sets both coordinates relative to the parent.
func (w *Widget) SetOrigin(x, y int) {
	w.x = x
	w.y = y
}

// SetOffset sets the offset of the widget relative to the root. Containers
// cascade their own root position to every child.
func (w *Widget) SetOffset(x, y int) {
	w.offsetX = x
	w.offsetY = y
	if w.container == nil {
		return
	}
	for _, child := range w.container.children {
		child.SetOffset(w.RootX(), w.RootY())
	}
}

// UpdateDrawPosition copies the current geometry into the draw cache.
// Containers then hand their draw position to every child as its offset and
// update the child as well, except for nested root containers, which manage
// their own coordinate space.
func (w *Widget) UpdateDrawPosition() {
	w.drawX = w.x
	w.drawY = w.y
	w.drawWidth = w.width
	w.drawHeight = w.height
	if w.container == nil {
		return
	}
	for _, child := range w.container.children {
		child.SetOffset(w.DrawX(), w.DrawY())
		if !child.IsRootContainer() {
			child.UpdateDrawPosition()
		}
	}
}

// ForceUpdateDrawPosition is equivalent to UpdateDrawPosition; no position
// interpolation is performed.
func (w *Widget) ForceUpdateDrawPosition() { w.UpdateDrawPosition() }

// SetDrawX moves the widget so that its position relative to the root is x.
func (w *Widget) SetDrawX(x int) {
	w.drawX = x - w.offsetX
	w.x = w.drawX
}

// SetDrawY moves the widget so that its position relative to the root is y.
func (w *Widget) SetDrawY(y int) {
	w.drawY = y - w.offsetY
	w.y = w.drawY
}

// SetDrawOrigin moves the widget so that its position relative to the root
// is (x, y). Guidelines instead recompute their position rule.
func (w *Widget) SetDrawOrigin(x, y int) {
	if w.guide != nil {
		w.guide.setDrawOrigin(w, x, y)
		return
	}
	w.SetDrawX(x)
	w.SetDrawY(y)
}

// SetDrawWidth sets the cached draw width.
func (w *Widget) SetDrawWidth(width int) { w.drawWidth = width }

// SetDrawHeight sets the cached draw height.
func (w *Widget) SetDrawHeight(height int) { w.drawHeight = height }

// =============================================================================
// Size
// =============================================================================

// SetWidth sets the width, never below the minimum width.
func (w *Widget) SetWidth(width int) { w.width = max(width, w.minWidth) }

// SetHeight sets the height, never below the minimum height.
func (w *Widget) SetHeight(height int) { w.height = max(height, w.minHeight) }

// SetDimension sets width and height, never below the minimums.
func (w *Widget) SetDimension(width, height int) {
	w.SetWidth(width)
	w.SetHeight(height)
}

// SetFrame sets the geometry from edge positions, as a solver does after
// resolving the graph. A gone widget collapses to zero size. A fixed
// dimension never shrinks, which absorbs rounding errors of the solver.
func (w *Widget) SetFrame(left, top, right, bottom int) {
	width := right - left
	height := bottom - top
	w.x = left
	w.y = top
	if w.visibility == Gone {
		w.width = 0
		w.height = 0
		return
	}
	if w.behaviors[Horizontal] == Fixed && width < w.width {
		width = w.width
	}
	if w.behaviors[Vertical] == Fixed && height < w.height {
		height = w.height
	}
	w.width = max(width, w.minWidth)
	w.height = max(height, w.minHeight)
}

// SetHorizontalDimension sets the horizontal position and width from edges.
func (w *Widget) SetHorizontalDimension(left, right int) {
	w.x = left
	w.width = max(right-left, w.minWidth)
}

// SetVerticalDimension sets the vertical position and height from edges.
func (w *Widget) SetVerticalDimension(top, bottom int) {
	w.y = top
	w.height = max(bottom-top, w.minHeight)
}

// MinWidth returns the minimum width.
func (w *Widget) MinWidth() int { return w.minWidth }

// MinHeight returns the minimum height.
func (w *Widget) MinHeight() int { return w.minHeight }

// SetMinWidth sets the minimum width; negative values become 0.
func (w *Widget) SetMinWidth(width int) { w.minWidth = max(width, 0) }

// SetMinHeight sets the minimum height; negative values become 0.
func (w *Widget) SetMinHeight(height int) { w.minHeight = max(height, 0) }

// MaxWidth returns the maximum width ([Unbounded] by default).
func (w *Widget) MaxWidth() int { return w.maxDimension[Horizontal] }

// MaxHeight returns the maximum height ([Unbounded] by default).
func (w *Widget) MaxHeight() int { return w.maxDimension[Vertical] }

// SetMaxWidth sets the maximum width.
func (w *Widget) SetMaxWidth(width int) { w.maxDimension[Horizontal] = width }

// SetMaxHeight sets the maximum height.
func (w *Widget) SetMaxHeight(height int) { w.maxDimension[Vertical] = height }

// WrapWidth returns the cached wrap-content width.
func (w *Widget) WrapWidth() int { return w.wrapWidth }

// WrapHeight returns the cached wrap-content height.
func (w *Widget) WrapHeight() int { return w.wrapHeight }

// SetWrapWidth caches the wrap-content width, never below the minimum.
func (w *Widget) SetWrapWidth(width int) { w.wrapWidth = max(width, w.minWidth) }

// SetWrapHeight caches the wrap-content height, never below the minimum.
func (w *Widget) SetWrapHeight(height int) { w.wrapHeight = max(height, w.minHeight) }

// BaselineDistance returns the baseline position relative to the top.
func (w *Widget) BaselineDistance() int { return w.baselineDistance }

// SetBaselineDistance sets the baseline position relative to the top.
func (w *Widget) SetBaselineDistance(d int) { w.baselineDistance = d }

// HasBaseline reports whether the widget has a baseline to connect to.
func (w *Widget) HasBaseline() bool { return w.baselineDistance > 0 }

// =============================================================================
// Dimension behaviors
// =============================================================================

// HorizontalDimensionBehavior returns how the width may change.
func (w *Widget) HorizontalDimensionBehavior() DimensionBehavior { return w.behaviors[Horizontal] }

// VerticalDimensionBehavior returns how the height may change.
func (w *Widget) VerticalDimensionBehavior() DimensionBehavior { return w.behaviors[Vertical] }

// SetHorizontalDimensionBehavior sets how the width may change. Switching to
// [WrapContent] restores the cached wrap width.
func (w *Widget) SetHorizontalDimensionBehavior(b DimensionBehavior) {
	w.behaviors[Horizontal] = b
	if b == WrapContent {
		w.SetWidth(w.wrapWidth)
	}
}

// SetVerticalDimensionBehavior sets how the height may change. Switching to
// [WrapContent] restores the cached wrap height.
func (w *Widget) SetVerticalDimensionBehavior(b DimensionBehavior) {
	w.behaviors[Vertical] = b
	if b == WrapContent {
		w.SetHeight(w.wrapHeight)
	}
}

// MatchConstraint returns the match-constraint refinements for an axis.
func (w *Widget) MatchConstraint(o Orientation) (mode MatchConstraintMode, minSize, maxSize int, percent float32) {
	mc := w.matchConstraints[o]
	return mc.mode, mc.min, mc.max, mc.percent
}

// SetHorizontalMatchConstraint refines MatchConstraint sizing of the width.
// A percent below 1 switches a spread mode to percent mode.
func (w *Widget) SetHorizontalMatchConstraint(mode MatchConstraintMode, minSize, maxSize int, percent float32) {
	w.setMatchConstraint(Horizontal, mode, minSize, maxSize, percent)
}

// SetVerticalMatchConstraint refines MatchConstraint sizing of the height.
func (w *Widget) SetVerticalMatchConstraint(mode MatchConstraintMode, minSize, maxSize int, percent float32) {
	w.setMatchConstraint(Vertical, mode, minSize, maxSize, percent)
}

func (w *Widget) setMatchConstraint(o Orientation, mode MatchConstraintMode, minSize, maxSize int, percent float32) {
	mc := matchConstraint{mode: mode, min: max(minSize, 0), max: maxSize, percent: percent}
	if mc.max <= 0 {
		mc.max = Unbounded
	}
	if percent < 1 && mode == MatchConstraintSpread {
		mc.mode = MatchConstraintPercent
	}
	w.matchConstraints[o] = mc
}

// =============================================================================
// Bias, chains, weights
// =============================================================================

func clampBias(v float32) float32 {
	return min(max(v, 0), 1)
}

// HorizontalBiasPercent returns the horizontal bias in [0, 1].
func (w *Widget) HorizontalBiasPercent() float32 { return w.bias[Horizontal] }

// VerticalBiasPercent returns the vertical bias in [0, 1].
func (w *Widget) VerticalBiasPercent() float32 { return w.bias[Vertical] }

// SetHorizontalBiasPercent sets the horizontal bias, clamped to [0, 1].
func (w *Widget) SetHorizontalBiasPercent(v float32) { w.bias[Horizontal] = clampBias(v) }

// SetVerticalBiasPercent sets the vertical bias, clamped to [0, 1].
func (w *Widget) SetVerticalBiasPercent(v float32) { w.bias[Vertical] = clampBias(v) }

// ChainStyle returns the chain style used when this widget heads a chain.
func (w *Widget) ChainStyle(o Orientation) ChainStyle { return w.chainStyles[o] }

// SetChainStyle sets the chain style for an axis.
func (w *Widget) SetChainStyle(o Orientation, style ChainStyle) { w.chainStyles[o] = style }

// Weight returns the weight of the widget inside a chain along an axis.
func (w *Widget) Weight(o Orientation) float32 { return w.weights[o] }

// SetWeight sets the chain weight along an axis.
func (w *Widget) SetWeight(o Orientation, weight float32) { w.weights[o] = weight }
