package constraint

import (
	"fmt"
	"math"
)

// DefaultBias is the bias applied when a widget sits between two opposing
// connections of equal strength: it is centered.
const DefaultBias float32 = 0.5

// UnsetGoneMargin marks an anchor whose gone margin has not been set.
const UnsetGoneMargin = -1

// Unknown is used for sides and resolutions that have not been determined.
const Unknown = -1

// Unbounded is the default maximum width and height of a widget.
const Unbounded = math.MaxInt32

// AnchorType identifies a connection point on a widget.
type AnchorType int

const (
	AnchorNone AnchorType = iota
	AnchorLeft
	AnchorTop
	AnchorRight
	AnchorBottom
	AnchorBaseline
	AnchorCenter
	AnchorCenterX
	AnchorCenterY
)

var anchorTypeNames = [...]string{
	AnchorNone:     "NONE",
	AnchorLeft:     "LEFT",
	AnchorTop:      "TOP",
	AnchorRight:    "RIGHT",
	AnchorBottom:   "BOTTOM",
	AnchorBaseline: "BASELINE",
	AnchorCenter:   "CENTER",
	AnchorCenterX:  "CENTER_X",
	AnchorCenterY:  "CENTER_Y",
}

// String returns the upper-case name of the anchor type (e.g. "CENTER_X").
func (t AnchorType) String() string {
	if t < 0 || int(t) >= len(anchorTypeNames) {
		return fmt.Sprintf("AnchorType(%d)", int(t))
	}
	return anchorTypeNames[t]
}

// ParseAnchorType converts a name produced by [AnchorType.String] back into
// an AnchorType. The second return value is false for unknown names.
func ParseAnchorType(s string) (AnchorType, bool) {
	for i, name := range anchorTypeNames {
		if name == s {
			return AnchorType(i), true
		}
	}
	return AnchorNone, false
}

// Strength is the strength of a connection. When two opposing connections
// have the same strength, the widget's bias decides where it ends up.
type Strength int

const (
	StrengthNone Strength = iota
	StrengthStrong
	StrengthWeak
)

func (s Strength) String() string {
	switch s {
	case StrengthNone:
		return "NONE"
	case StrengthStrong:
		return "STRONG"
	case StrengthWeak:
		return "WEAK"
	}
	return fmt.Sprintf("Strength(%d)", int(s))
}

// Creator records who made a connection, so that automatically inferred
// connections can be removed without touching the ones a user made.
type Creator int

const (
	CreatorUser Creator = iota
	CreatorAutoConstraint
)

func (c Creator) String() string {
	switch c {
	case CreatorUser:
		return "user"
	case CreatorAutoConstraint:
		return "auto"
	}
	return fmt.Sprintf("Creator(%d)", int(c))
}

// Visibility of a widget. Gone widgets take no space and drop their margins.
type Visibility int

const (
	Visible Visibility = iota
	Invisible
	Gone
)

func (v Visibility) String() string {
	switch v {
	case Visible:
		return "visible"
	case Invisible:
		return "invisible"
	case Gone:
		return "gone"
	}
	return fmt.Sprintf("Visibility(%d)", int(v))
}

// DimensionBehavior defines how a widget is allowed to resize along an axis.
type DimensionBehavior int

const (
	Fixed DimensionBehavior = iota
	WrapContent
	MatchConstraint
	MatchParent
)

func (b DimensionBehavior) String() string {
	switch b {
	case Fixed:
		return "fixed"
	case WrapContent:
		return "wrap_content"
	case MatchConstraint:
		return "match_constraint"
	case MatchParent:
		return "match_parent"
	}
	return fmt.Sprintf("DimensionBehavior(%d)", int(b))
}

// Orientation selects an axis. It indexes per-axis widget state, and also
// gives the orientation of guidelines and chains.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	}
	return fmt.Sprintf("Orientation(%d)", int(o))
}

// MatchConstraintMode refines MatchConstraint sizing.
type MatchConstraintMode int

const (
	MatchConstraintSpread MatchConstraintMode = iota
	MatchConstraintWrap
	MatchConstraintPercent
	MatchConstraintRatio
)

func (m MatchConstraintMode) String() string {
	switch m {
	case MatchConstraintSpread:
		return "spread"
	case MatchConstraintWrap:
		return "wrap"
	case MatchConstraintPercent:
		return "percent"
	case MatchConstraintRatio:
		return "ratio"
	}
	return fmt.Sprintf("MatchConstraintMode(%d)", int(m))
}

// ChainStyle controls how a solver distributes the widgets of a chain.
type ChainStyle int

const (
	ChainSpread ChainStyle = iota
	ChainSpreadInside
	ChainPacked
)

func (c ChainStyle) String() string {
	switch c {
	case ChainSpread:
		return "spread"
	case ChainSpreadInside:
		return "spread_inside"
	case ChainPacked:
		return "packed"
	}
	return fmt.Sprintf("ChainStyle(%d)", int(c))
}

// Kind distinguishes the widget variants sharing the [Widget] representation.
type Kind int

const (
	KindPlain Kind = iota
	KindGuideline
	KindContainer
	KindRoot
)

func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "widget"
	case KindGuideline:
		return "guideline"
	case KindContainer:
		return "container"
	case KindRoot:
		return "root"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}
