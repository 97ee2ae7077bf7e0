package constraint

// A chain is a run of widgets linked both ways through the same pair of
// anchors: B.LEFT targets A.RIGHT and A.RIGHT targets B.LEFT, and so on. The
// widget at the leading edge (leftmost or topmost) identifies the chain.

// chainSides returns the leading and trailing anchor types of an axis.
func chainSides(o Orientation) (lead, trail AnchorType) {
	if o == Vertical {
		return AnchorTop, AnchorBottom
	}
	return AnchorLeft, AnchorRight
}

// IsInHorizontalChain reports whether the LEFT or RIGHT anchor of the widget
// is part of a mutual double link.
func (w *Widget) IsInHorizontalChain() bool { return w.isInChain(Horizontal) }

// IsInVerticalChain reports whether the TOP or BOTTOM anchor of the widget
// is part of a mutual double link.
func (w *Widget) IsInVerticalChain() bool { return w.isInChain(Vertical) }

func (w *Widget) isInChain(o Orientation) bool {
	lead, trail := chainSides(o)
	for _, a := range [...]*Anchor{w.Anchor(lead), w.Anchor(trail)} {
		if a != nil && a.target != nil && a.target.target == a {
			return true
		}
	}
	return false
}

// HorizontalChainControlWidget returns the first widget of the horizontal
// chain this widget belongs to, or nil when it is not in a chain.
func (w *Widget) HorizontalChainControlWidget() *Widget { return w.chainControlWidget(Horizontal) }

// VerticalChainControlWidget returns the first widget of the vertical chain
// this widget belongs to, or nil when it is not in a chain.
func (w *Widget) VerticalChainControlWidget() *Widget { return w.chainControlWidget(Vertical) }

// chainControlWidget walks toward the leading edge of the chain. The walk
// stops at a widget whose leading anchor targets the parent, is
// unconnected, or targets a neighbor that does not link back.
func (w *Widget) chainControlWidget(o Orientation) *Widget {
	if !w.isInChain(o) {
		return nil
	}
	lead, trail := chainSides(o)
	visited := make(map[*Widget]bool)
	for tmp := w; ; {
		visited[tmp] = true
		anchor := tmp.Anchor(lead)
		if anchor == nil || anchor.target == nil {
			return tmp
		}
		neighbor := anchor.target.owner
		if neighbor == w.parent {
			return tmp
		}
		back := neighbor.Anchor(trail)
		if back == nil || back.target == nil || back.target.owner != tmp || visited[neighbor] {
			return tmp
		}
		tmp = neighbor
	}
}

// chainStart walks from w toward the leading edge while each neighbor links
// back to the widget being visited. Unlike chainControlWidget it does not
// require w to be in a chain, and it does not stop at the parent.
func chainStart(w *Widget, o Orientation) *Widget {
	lead, trail := chainSides(o)
	visited := map[*Widget]bool{w: true}
	for {
		anchor := w.Anchor(lead)
		if anchor == nil || anchor.target == nil {
			return w
		}
		neighbor := anchor.target.owner
		back := neighbor.Anchor(trail)
		if neighbor == w || back == nil || back.target != anchor || visited[neighbor] {
			return w
		}
		visited[neighbor] = true
		w = neighbor
	}
}
