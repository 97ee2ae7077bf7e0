package io

import (
	"errors"
	"fmt"
	"strings"

	"github.com/matzehuels/anchorgraph/pkg/constraint"
)

// DefaultRootID is the id of the root container when the file names none.
const DefaultRootID = "root"

// Sentinel errors returned (wrapped) by the reader.
var (
	ErrUnknownWidget   = errors.New("unknown widget")
	ErrDuplicateWidget = errors.New("duplicate widget id")
	ErrUnknownAnchor   = errors.New("unknown anchor")
	ErrInvalidParent   = errors.New("invalid parent")
	ErrInvalidValue    = errors.New("invalid value")
)

// Scene is a constraint graph built from a scene file.
type Scene struct {
	Root *constraint.RootContainer

	// Rejected lists the connections the graph refused, in file order.
	Rejected []Rejection

	// Connected counts the connections that were made.
	Connected int

	byID  map[string]*constraint.Widget
	order []*constraint.Widget
}

// Rejection describes a refused connection.
type Rejection struct {
	From, FromAnchor string
	To, ToAnchor     string
}

func (r Rejection) String() string {
	return fmt.Sprintf("%s.%s -> %s.%s", r.From, r.FromAnchor, r.To, r.ToAnchor)
}

// Widget returns the widget with the given id. The root container is found
// under its own id.
func (s *Scene) Widget(id string) (*constraint.Widget, bool) {
	w, ok := s.byID[id]
	return w, ok
}

// Widgets returns the widgets in file order, without the root.
func (s *Scene) Widgets() []*constraint.Widget { return s.order }

// ID returns the id of a widget of the scene.
func ID(w *constraint.Widget) string { return w.DebugName() }

// enumValue matches s against the names of values, ignoring case.
func enumValue[T fmt.Stringer](field, s string, values ...T) (T, error) {
	for _, v := range values {
		if strings.EqualFold(v.String(), s) {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%s %q: %w", field, s, ErrInvalidValue)
}

func enumName(v fmt.Stringer) string { return strings.ToLower(v.String()) }

var (
	visibilities = []constraint.Visibility{constraint.Visible, constraint.Invisible, constraint.Gone}
	behaviors    = []constraint.DimensionBehavior{constraint.Fixed, constraint.WrapContent, constraint.MatchConstraint, constraint.MatchParent}
	strengths    = []constraint.Strength{constraint.StrengthStrong, constraint.StrengthWeak, constraint.StrengthNone}
	creators     = []constraint.Creator{constraint.CreatorUser, constraint.CreatorAutoConstraint}
	orientations = []constraint.Orientation{constraint.Horizontal, constraint.Vertical}
	kinds        = []constraint.Kind{constraint.KindPlain, constraint.KindGuideline, constraint.KindContainer, constraint.KindRoot}
)

func parseAnchor(s string) (constraint.AnchorType, error) {
	t, ok := constraint.ParseAnchorType(strings.ToUpper(strings.TrimSpace(s)))
	if !ok || t == constraint.AnchorNone {
		return constraint.AnchorNone, fmt.Errorf("%q: %w", s, ErrUnknownAnchor)
	}
	return t, nil
}

// file layout shared by the reader and the writer

type sceneFile struct {
	Root        rootSpec     `json:"root"`
	Widgets     []widgetSpec `json:"widgets"`
	Connections []connSpec   `json:"connections"`
}

type rootSpec struct {
	ID      string       `json:"id,omitempty"`
	Width   int          `json:"width"`
	Height  int          `json:"height"`
	Padding *paddingSpec `json:"padding,omitempty"`
}

type paddingSpec struct {
	Left   int `json:"left,omitempty"`
	Top    int `json:"top,omitempty"`
	Right  int `json:"right,omitempty"`
	Bottom int `json:"bottom,omitempty"`
}

type widgetSpec struct {
	ID     string `json:"id,omitempty"`
	Kind   string `json:"kind,omitempty"`
	Type   string `json:"type,omitempty"`
	Parent string `json:"parent,omitempty"`

	X      int `json:"x,omitempty"`
	Y      int `json:"y,omitempty"`
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`

	MinWidth   int `json:"min_width,omitempty"`
	MinHeight  int `json:"min_height,omitempty"`
	WrapWidth  int `json:"wrap_width,omitempty"`
	WrapHeight int `json:"wrap_height,omitempty"`
	Baseline   int `json:"baseline,omitempty"`

	Visibility     string   `json:"visibility,omitempty"`
	Horizontal     string   `json:"horizontal,omitempty"`
	Vertical       string   `json:"vertical,omitempty"`
	HorizontalBias *float32 `json:"horizontal_bias,omitempty"`
	VerticalBias   *float32 `json:"vertical_bias,omitempty"`
	Ratio          string   `json:"ratio,omitempty"`

	Orientation string   `json:"orientation,omitempty"`
	Percent     *float32 `json:"percent,omitempty"`
	Begin       *int     `json:"begin,omitempty"`
	End         *int     `json:"end,omitempty"`
}

type connSpec struct {
	From       string `json:"from"`
	FromAnchor string `json:"from_anchor"`
	To         string `json:"to"`
	ToAnchor   string `json:"to_anchor"`
	Margin     int    `json:"margin,omitempty"`
	GoneMargin *int   `json:"gone_margin,omitempty"`
	Strength   string `json:"strength,omitempty"`
	Creator    string `json:"creator,omitempty"`
	Primitive  bool   `json:"primitive,omitempty"`
}
