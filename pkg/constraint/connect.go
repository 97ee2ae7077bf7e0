package constraint

// Connect connects an anchor of this widget to an anchor of target with a
// strong, user-created connection. See [Widget.ConnectWith].
func (w *Widget) Connect(from AnchorType, target *Widget, to AnchorType, margin int) bool {
	return w.ConnectWith(from, target, to, margin, StrengthStrong, CreatorUser)
}

// ConnectAnchor connects two anchors, provided from belongs to this widget.
func (w *Widget) ConnectAnchor(from, to *Anchor, margin int, strength Strength, creator Creator) bool {
	if from == nil || to == nil || from.owner != w {
		return false
	}
	return w.ConnectWith(from.typ, to.owner, to.typ, margin, strength, creator)
}

// ConnectWith connects an anchor of this widget to an anchor of target.
//
// Center anchors are synthesized from side connections:
//
//   - CENTER to CENTER connects LEFT/RIGHT and TOP/BOTTOM to the matching
//     sides of target (each axis only if neither side is connected yet), then
//     connects CENTER, CENTER_X or CENTER_Y depending on the axes centered.
//   - CENTER to a side connects both sides of that axis, and CENTER, to that
//     single target anchor.
//   - CENTER_X to LEFT/RIGHT connects LEFT, RIGHT and CENTER_X to that anchor;
//     CENTER_X to CENTER_X pairs LEFT with LEFT and RIGHT with RIGHT. CENTER_Y
//     mirrors this vertically.
//
// Any other pair is a direct connection. It is refused, returning false,
// when [Anchor.IsValidConnection] fails. Otherwise conflicting anchors are
// reset first: BASELINE displaces TOP and BOTTOM (and always uses a zero
// margin); a side displaces BASELINE, a CENTER pointing elsewhere, and an
// existing one-axis center together with the opposite side. Once connected,
// the target's connected hook is invoked.
//
// Composite forms report whether the synthesized connections were made.
func (w *Widget) ConnectWith(from AnchorType, target *Widget, to AnchorType, margin int, strength Strength, creator Creator) bool {
	if target == nil {
		return false
	}
	switch {
	case from == AnchorCenter:
		return w.connectCenter(target, to, strength, creator)
	case from == AnchorCenterX && (to == AnchorLeft || to == AnchorRight):
		return w.connectAxisToSide(w.Anchor(AnchorLeft), w.Anchor(AnchorRight), w.Anchor(AnchorCenterX), target.Anchor(to), creator)
	case from == AnchorCenterY && (to == AnchorTop || to == AnchorBottom):
		return w.connectAxisToSide(w.Anchor(AnchorTop), w.Anchor(AnchorBottom), w.Anchor(AnchorCenterY), target.Anchor(to), creator)
	case from == AnchorCenterX && to == AnchorCenterX:
		return w.connectAxisToAxis(AnchorLeft, AnchorRight, AnchorCenterX, target, creator)
	case from == AnchorCenterY && to == AnchorCenterY:
		return w.connectAxisToAxis(AnchorTop, AnchorBottom, AnchorCenterY, target, creator)
	}
	return w.connectDirect(from, target, to, margin, strength, creator)
}

func (w *Widget) connectCenter(target *Widget, to AnchorType, strength Strength, creator Creator) bool {
	switch to {
	case AnchorCenter:
		var centerX, centerY bool
		if !isConnected(w.Anchor(AnchorLeft)) && !isConnected(w.Anchor(AnchorRight)) {
			w.ConnectWith(AnchorLeft, target, AnchorLeft, 0, strength, creator)
			w.ConnectWith(AnchorRight, target, AnchorRight, 0, strength, creator)
			centerX = true
		}
		if !isConnected(w.Anchor(AnchorTop)) && !isConnected(w.Anchor(AnchorBottom)) {
			w.ConnectWith(AnchorTop, target, AnchorTop, 0, strength, creator)
			w.ConnectWith(AnchorBottom, target, AnchorBottom, 0, strength, creator)
			centerY = true
		}
		switch {
		case centerX && centerY:
			return attach(w.Anchor(AnchorCenter), target.Anchor(AnchorCenter), creator)
		case centerX:
			return attach(w.Anchor(AnchorCenterX), target.Anchor(AnchorCenterX), creator)
		case centerY:
			return attach(w.Anchor(AnchorCenterY), target.Anchor(AnchorCenterY), creator)
		}
		return false
	case AnchorLeft, AnchorRight:
		l := w.ConnectWith(AnchorLeft, target, to, 0, strength, creator)
		r := w.ConnectWith(AnchorRight, target, to, 0, strength, creator)
		attach(w.Anchor(AnchorCenter), target.Anchor(to), creator)
		return l && r
	case AnchorTop, AnchorBottom:
		t := w.ConnectWith(AnchorTop, target, to, 0, strength, creator)
		b := w.ConnectWith(AnchorBottom, target, to, 0, strength, creator)
		attach(w.Anchor(AnchorCenter), target.Anchor(to), creator)
		return t && b
	}
	return false
}

// connectAxisToSide pins both sides of an axis, and its center, to a single
// target anchor.
func (w *Widget) connectAxisToSide(first, second, center, targetAnchor *Anchor, creator Creator) bool {
	ok1 := attach(first, targetAnchor, creator)
	ok2 := attach(second, targetAnchor, creator)
	attach(center, targetAnchor, creator)
	return ok1 && ok2
}

// connectAxisToAxis pairs each side of an axis with the same side of target,
// then connects the one-axis centers.
func (w *Widget) connectAxisToAxis(first, second, center AnchorType, target *Widget, creator Creator) bool {
	ok1 := attach(w.Anchor(first), target.Anchor(first), creator)
	ok2 := attach(w.Anchor(second), target.Anchor(second), creator)
	attach(w.Anchor(center), target.Anchor(center), creator)
	return ok1 && ok2
}

func (w *Widget) connectDirect(from AnchorType, target *Widget, to AnchorType, margin int, strength Strength, creator Creator) bool {
	fromAnchor := w.Anchor(from)
	toAnchor := target.Anchor(to)
	if fromAnchor == nil || !fromAnchor.IsValidConnection(toAnchor) {
		return false
	}

	switch from {
	case AnchorBaseline:
		// the baseline takes precedence over top and bottom
		resetIfPresent(w.Anchor(AnchorTop))
		resetIfPresent(w.Anchor(AnchorBottom))
		margin = 0
	case AnchorTop, AnchorBottom:
		resetIfPresent(w.Anchor(AnchorBaseline))
		w.supersedeCenter(fromAnchor, toAnchor, w.Anchor(AnchorCenterY))
	case AnchorLeft, AnchorRight:
		w.supersedeCenter(fromAnchor, toAnchor, w.Anchor(AnchorCenterX))
	}

	fromAnchor.Connect(toAnchor, margin, strength, creator)
	toAnchor.owner.connectedTo(w)
	return true
}

// supersedeCenter clears the center connections an explicit side connection
// replaces.
func (w *Widget) supersedeCenter(side, toAnchor, axisCenter *Anchor) {
	if center := w.Anchor(AnchorCenter); center != nil && center.target != toAnchor {
		center.Reset()
	}
	if isConnected(axisCenter) {
		resetIfPresent(side.Opposite())
		axisCenter.Reset()
	}
}

// attach makes a strong connection through the validated primitive. A
// missing anchor on either end leaves from untouched.
func attach(from, to *Anchor, creator Creator) bool {
	if from == nil || to == nil {
		return false
	}
	return from.Connect(to, 0, StrengthStrong, creator)
}

func isConnected(a *Anchor) bool { return a != nil && a.IsConnected() }

func resetIfPresent(a *Anchor) {
	if a != nil {
		a.Reset()
	}
}
