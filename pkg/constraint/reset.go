package constraint

// parentHandlesConstraints reports whether the parent container manages the
// connections of its children itself, in which case resets are ignored.
func (w *Widget) parentHandlesConstraints() bool {
	return w.parent != nil && w.parent.container != nil && w.parent.container.handlesInternalConstraints
}

// ResetAnchor disconnects one anchor of the widget, together with the
// connections that only make sense alongside it:
//
//   - CENTER also drops LEFT+RIGHT when both target the very same anchor, and
//     TOP+BOTTOM likewise; both biases return to the default.
//   - CENTER_X drops LEFT+RIGHT when both target anchors of the same widget,
//     and restores the horizontal bias. CENTER_Y mirrors this vertically.
//   - LEFT or RIGHT drops CENTER when LEFT and RIGHT share a target; TOP or
//     BOTTOM likewise.
//
// The call is a no-op when the parent container handles internal constraints.
func (w *Widget) ResetAnchor(anchor *Anchor) {
	if anchor == nil || w.parentHandlesConstraints() {
		return
	}
	left := w.Anchor(AnchorLeft)
	right := w.Anchor(AnchorRight)
	top := w.Anchor(AnchorTop)
	bottom := w.Anchor(AnchorBottom)
	center := w.Anchor(AnchorCenter)
	centerX := w.Anchor(AnchorCenterX)
	centerY := w.Anchor(AnchorCenterY)

	switch {
	case anchor == center:
		if isConnected(left) && isConnected(right) && left.target == right.target {
			left.Reset()
			right.Reset()
		}
		if isConnected(top) && isConnected(bottom) && top.target == bottom.target {
			top.Reset()
			bottom.Reset()
		}
		w.bias = [2]float32{DefaultBias, DefaultBias}
	case anchor == centerX:
		if isConnected(left) && isConnected(right) && left.target.owner == right.target.owner {
			left.Reset()
			right.Reset()
		}
		w.bias[Horizontal] = DefaultBias
	case anchor == centerY:
		if isConnected(top) && isConnected(bottom) && top.target.owner == bottom.target.owner {
			top.Reset()
			bottom.Reset()
		}
		w.bias[Vertical] = DefaultBias
	case anchor == left || anchor == right:
		if isConnected(left) && right != nil && left.target == right.target {
			resetIfPresent(center)
		}
	case anchor == top || anchor == bottom:
		if isConnected(top) && bottom != nil && top.target == bottom.target {
			resetIfPresent(center)
		}
	}
	anchor.Reset()
}

// ResetAnchors disconnects every anchor of the widget. Biases are kept.
func (w *Widget) ResetAnchors() {
	if w.parentHandlesConstraints() {
		return
	}
	for _, a := range w.anchors {
		a.Reset()
	}
}

// ResetAnchorsCreatedBy resets the anchors whose creator tag matches creator,
// restoring the bias of each affected axis. The tag is compared whether or
// not the anchor is connected.
func (w *Widget) ResetAnchorsCreatedBy(creator Creator) {
	if w.parentHandlesConstraints() {
		return
	}
	for _, a := range w.anchors {
		if a.creator != creator {
			continue
		}
		if a.IsVerticalAnchor() {
			w.bias[Vertical] = DefaultBias
		} else {
			w.bias[Horizontal] = DefaultBias
		}
		a.Reset()
	}
}

// ResetAllConstraints disconnects every anchor, restores both biases and,
// except on root containers, turns MatchConstraint sizing back into
// WrapContent (when the size equals the wrap size) or Fixed (when the size
// exceeds the minimum).
func (w *Widget) ResetAllConstraints() {
	w.ResetAnchors()
	w.bias = [2]float32{DefaultBias, DefaultBias}
	if w.IsRootContainer() {
		return
	}
	if w.behaviors[Horizontal] == MatchConstraint {
		if w.Width() == w.wrapWidth {
			w.SetHorizontalDimensionBehavior(WrapContent)
		} else if w.Width() > w.minWidth {
			w.SetHorizontalDimensionBehavior(Fixed)
		}
	}
	if w.behaviors[Vertical] == MatchConstraint {
		if w.Height() == w.wrapHeight {
			w.SetVerticalDimensionBehavior(WrapContent)
		} else if w.Height() > w.minHeight {
			w.SetVerticalDimensionBehavior(Fixed)
		}
	}
}

// DisconnectWidget resets every anchor of this widget targeting other.
func (w *Widget) DisconnectWidget(other *Widget) {
	for _, a := range w.anchors {
		if a.target != nil && a.target.owner == other {
			a.Reset()
		}
	}
}

// DisconnectUnlockedWidget resets the anchors of this widget targeting
// other, but only those created automatically.
func (w *Widget) DisconnectUnlockedWidget(other *Widget) {
	for _, a := range w.anchors {
		if a.target != nil && a.target.owner == other && a.creator == CreatorAutoConstraint {
			a.Reset()
		}
	}
}
