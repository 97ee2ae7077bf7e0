package constraint

import (
	"fmt"
	"strings"
)

// Anchor is a typed connection point owned by a single widget. It may target
// at most one anchor of another widget; the relation is directional, so the
// target does not learn about the anchors pointing at it.
//
// Anchors are created together with their owner and are never destroyed on
// their own. Connections are changed with [Anchor.Connect],
// [Anchor.ConnectFull] and [Anchor.Reset].
type Anchor struct {
	owner *Widget
	typ   AnchorType

	target     *Anchor
	margin     int
	goneMargin int
	strength   Strength
	creator    Creator
}

func newAnchor(owner *Widget, typ AnchorType) *Anchor {
	return &Anchor{
		owner:      owner,
		typ:        typ,
		goneMargin: UnsetGoneMargin,
		strength:   StrengthNone,
		creator:    CreatorUser,
	}
}

// Owner returns the widget this anchor belongs to.
func (a *Anchor) Owner() *Widget { return a.owner }

// Type returns the anchor type.
func (a *Anchor) Type() AnchorType { return a.typ }

// Target returns the anchor this one is connected to, or nil.
func (a *Anchor) Target() *Anchor { return a.target }

// IsConnected reports whether the anchor has a target.
func (a *Anchor) IsConnected() bool { return a.target != nil }

// Strength returns the strength of the current connection.
func (a *Anchor) Strength() Strength { return a.strength }

// Creator returns who made the current connection.
func (a *Anchor) Creator() Creator { return a.creator }

// GoneMargin returns the stored gone margin, or [UnsetGoneMargin].
func (a *Anchor) GoneMargin() int { return a.goneMargin }

// RawMargin returns the stored margin without applying visibility rules.
func (a *Anchor) RawMargin() int { return a.margin }

// Margin returns the effective margin of the connection.
//
// A gone owner has no margin at all. Otherwise, when a gone margin is set and
// the target's owner is gone, the gone margin replaces the regular margin.
func (a *Anchor) Margin() int {
	if a.owner.Visibility() == Gone {
		return 0
	}
	if a.goneMargin > UnsetGoneMargin && a.target != nil && a.target.owner.Visibility() == Gone {
		return a.goneMargin
	}
	return a.margin
}

// SetMargin updates the margin of an existing connection. Negative values
// are ignored.
func (a *Anchor) SetMargin(margin int) {
	if a.IsConnected() && margin >= 0 {
		a.margin = margin
	}
}

// SetGoneMargin sets the margin used while the target's owner is gone.
// Pass [UnsetGoneMargin] to clear it.
func (a *Anchor) SetGoneMargin(margin int) {
	if a.IsConnected() {
		a.goneMargin = margin
	}
}

// Reset disconnects the anchor and restores its defaults.
func (a *Anchor) Reset() {
	a.target = nil
	a.margin = 0
	a.goneMargin = UnsetGoneMargin
	a.strength = StrengthStrong
	a.creator = CreatorUser
}

// Connect connects the anchor to another one. It returns false, leaving the
// anchor untouched, when the connection is not valid. A nil target clears
// the anchor.
func (a *Anchor) Connect(to *Anchor, margin int, strength Strength, creator Creator) bool {
	return a.ConnectFull(to, margin, UnsetGoneMargin, strength, creator, false)
}

// ConnectFull is the primitive connection operation. When force is set, the
// validity check of [Anchor.IsValidConnection] is skipped. Negative margins
// are stored as 0; the gone margin is stored verbatim.
func (a *Anchor) ConnectFull(to *Anchor, margin, goneMargin int, strength Strength, creator Creator, force bool) bool {
	if to == nil {
		a.target = nil
		a.margin = 0
		a.goneMargin = UnsetGoneMargin
		a.strength = StrengthNone
		a.creator = CreatorAutoConstraint
		return true
	}
	if !force && !a.IsValidConnection(to) {
		return false
	}
	a.target = to
	a.margin = max(margin, 0)
	a.goneMargin = goneMargin
	a.strength = strength
	a.creator = creator
	return true
}

// IsValidConnection reports whether this anchor may be connected to the
// given anchor.
func (a *Anchor) IsValidConnection(to *Anchor) bool {
	if to == nil {
		return false
	}
	target := to.typ
	if target == a.typ {
		if a.typ == AnchorBaseline && (!to.owner.HasBaseline() || !a.owner.HasBaseline()) {
			return false
		}
		return true
	}
	switch a.typ {
	case AnchorCenter:
		// a center can connect to anything but a baseline or a one-axis center
		return target != AnchorBaseline && target != AnchorCenterX && target != AnchorCenterY
	case AnchorLeft, AnchorRight:
		ok := target == AnchorLeft || target == AnchorRight
		if to.owner.IsGuideline() {
			ok = ok || target == AnchorCenterX
		}
		return ok
	case AnchorTop, AnchorBottom:
		ok := target == AnchorTop || target == AnchorBottom
		if to.owner.IsGuideline() {
			ok = ok || target == AnchorCenterY
		}
		return ok
	case AnchorBaseline, AnchorCenterX, AnchorCenterY, AnchorNone:
		return false
	}
	panic(fmt.Sprintf("constraint: unhandled anchor type %v", a.typ))
}

// IsSideAnchor reports whether the anchor is one of the four sides.
func (a *Anchor) IsSideAnchor() bool {
	switch a.typ {
	case AnchorLeft, AnchorRight, AnchorTop, AnchorBottom:
		return true
	case AnchorBaseline, AnchorCenter, AnchorCenterX, AnchorCenterY, AnchorNone:
		return false
	}
	panic(fmt.Sprintf("constraint: unhandled anchor type %v", a.typ))
}

// IsVerticalAnchor reports whether the anchor positions its owner along the
// vertical axis.
func (a *Anchor) IsVerticalAnchor() bool {
	switch a.typ {
	case AnchorLeft, AnchorRight, AnchorCenter, AnchorCenterX:
		return false
	case AnchorTop, AnchorBottom, AnchorCenterY, AnchorBaseline, AnchorNone:
		return true
	}
	panic(fmt.Sprintf("constraint: unhandled anchor type %v", a.typ))
}

// IsSimilarDimensionConnection reports whether both anchors act on the same
// axis, whether or not a connection between them would be valid.
func (a *Anchor) IsSimilarDimensionConnection(other *Anchor) bool {
	target := other.typ
	if target == a.typ {
		return true
	}
	switch a.typ {
	case AnchorCenter:
		return target != AnchorBaseline
	case AnchorLeft, AnchorRight, AnchorCenterX:
		return target == AnchorLeft || target == AnchorRight || target == AnchorCenterX
	case AnchorTop, AnchorBottom, AnchorCenterY, AnchorBaseline:
		return target == AnchorTop || target == AnchorBottom || target == AnchorCenterY || target == AnchorBaseline
	case AnchorNone:
		return false
	}
	panic(fmt.Sprintf("constraint: unhandled anchor type %v", a.typ))
}

// Opposite returns the anchor on the other side of the owner (RIGHT for
// LEFT, TOP for BOTTOM, ...). Anchors without an opposite return nil.
func (a *Anchor) Opposite() *Anchor {
	switch a.typ {
	case AnchorLeft:
		return a.owner.right
	case AnchorRight:
		return a.owner.left
	case AnchorTop:
		return a.owner.bottom
	case AnchorBottom:
		return a.owner.top
	case AnchorBaseline, AnchorCenter, AnchorCenterX, AnchorCenterY, AnchorNone:
		return nil
	}
	panic(fmt.Sprintf("constraint: unhandled anchor type %v", a.typ))
}

// SnapPriorityLevel orders anchors when several snap candidates compete
// during interactive placement. Higher wins.
func (a *Anchor) SnapPriorityLevel() int {
	switch a.typ {
	case AnchorCenter:
		return 3
	case AnchorBaseline:
		return 2
	case AnchorLeft, AnchorRight, AnchorCenterY:
		return 1
	case AnchorTop, AnchorBottom, AnchorCenterX, AnchorNone:
		return 0
	}
	panic(fmt.Sprintf("constraint: unhandled anchor type %v", a.typ))
}

// PriorityLevel orders anchors when deciding which connection to keep.
func (a *Anchor) PriorityLevel() int {
	switch a.typ {
	case AnchorCenter, AnchorLeft, AnchorRight, AnchorTop, AnchorBottom:
		return 2
	case AnchorBaseline:
		return 1
	case AnchorCenterX, AnchorCenterY, AnchorNone:
		return 0
	}
	panic(fmt.Sprintf("constraint: unhandled anchor type %v", a.typ))
}

// IsConnectionAllowed reports whether the owner may connect to target at all:
// the target must be the owner's parent or one of its siblings, and no chain
// of same-axis connections starting at target may lead back to the owner.
func (a *Anchor) IsConnectionAllowed(target *Widget) bool {
	if target == nil {
		return false
	}
	if a.isConnectionToMe(target, make(map[*Widget]bool)) {
		return false
	}
	parent := a.owner.Parent()
	if parent == target {
		return true
	}
	return target.Parent() == parent
}

func (a *Anchor) isConnectionToMe(target *Widget, checked map[*Widget]bool) bool {
	if checked[target] {
		return false
	}
	checked[target] = true
	if target == a.owner {
		return true
	}
	for _, anchor := range target.Anchors() {
		if anchor.IsSimilarDimensionConnection(a) && anchor.IsConnected() {
			if a.isConnectionToMe(anchor.target.owner, checked) {
				return true
			}
		}
	}
	return false
}

// String describes the anchor and, recursively, the anchors it leads to.
// Cycles are cut with "<-".
func (a *Anchor) String() string {
	var b strings.Builder
	a.describe(&b, make(map[*Anchor]bool))
	return b.String()
}

func (a *Anchor) describe(b *strings.Builder, visited map[*Anchor]bool) {
	if visited[a] {
		b.WriteString("<-")
		return
	}
	visited[a] = true
	b.WriteString(a.owner.DebugName())
	b.WriteByte(':')
	b.WriteString(a.typ.String())
	if a.target != nil {
		b.WriteString(" connected to ")
		a.target.describe(b, visited)
	}
}
