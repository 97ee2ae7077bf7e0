package constraint

// initialChainCapacity is the starting size of the chain-start arrays.
const initialChainCapacity = 4

// Padding is the inner spacing of a root container.
type Padding struct {
	Left, Top, Right, Bottom int
}

type rootState struct {
	padding                Padding
	chains                 [2][]*Widget
	widthMeasuredTooSmall  bool
	heightMeasuredTooSmall bool
}

func (r *rootState) reset() {
	r.chains = [2][]*Widget{}
	r.widthMeasuredTooSmall = false
	r.heightMeasuredTooSmall = false
}

// RootContainer is the container at the top of a layout pass. It keeps the
// chain starts discovered while the graph is resolved. A root container
// nested in another container keeps its own coordinate space: draw passes of
// its ancestors do not recurse into it.
type RootContainer struct {
	*Container
}

// NewRootContainer creates an empty root container with the given geometry.
func NewRootContainer(x, y, width, height int) *RootContainer {
	w := newWidget(KindRoot)
	w.container = &containerState{}
	w.root = &rootState{}
	w.initGeometry(x, y, width, height)
	return &RootContainer{Container: &Container{Widget: w}}
}

// AsRoot returns the root container view of w, if w is a root container.
func (w *Widget) AsRoot() (*RootContainer, bool) {
	if w.root == nil {
		return nil, false
	}
	return &RootContainer{Container: &Container{Widget: w}}, true
}

// Padding returns the inner spacing.
func (r *RootContainer) Padding() Padding { return r.root.padding }

// SetPadding sets the inner spacing.
func (r *RootContainer) SetPadding(p Padding) { r.root.padding = p }

// AddChain records the chain containing w along the given axis. The chain is
// identified by its first widget, found by walking toward the leading edge
// while neighbors link back. A chain is recorded only once.
func (r *RootContainer) AddChain(w *Widget, o Orientation) {
	start := chainStart(w, o)
	for _, existing := range r.root.chains[o] {
		if existing == start {
			return
		}
	}
	if r.root.chains[o] == nil {
		r.root.chains[o] = make([]*Widget, 0, initialChainCapacity)
	}
	r.root.chains[o] = append(r.root.chains[o], start)
}

// HorizontalChains returns the recorded starts of horizontal chains.
func (r *RootContainer) HorizontalChains() []*Widget { return r.root.chains[Horizontal] }

// VerticalChains returns the recorded starts of vertical chains.
func (r *RootContainer) VerticalChains() []*Widget { return r.root.chains[Vertical] }

// ResetChains forgets every recorded chain.
func (r *RootContainer) ResetChains() {
	r.root.chains = [2][]*Widget{}
}

// VerticalGuidelines returns the direct children that are vertical
// guidelines.
func (r *RootContainer) VerticalGuidelines() []*Guideline { return r.guidelines(Vertical) }

// HorizontalGuidelines returns the direct children that are horizontal
// guidelines.
func (r *RootContainer) HorizontalGuidelines() []*Guideline { return r.guidelines(Horizontal) }

func (r *RootContainer) guidelines(o Orientation) []*Guideline {
	var out []*Guideline
	for _, child := range r.container.children {
		if g, ok := child.AsGuideline(); ok && g.Orientation() == o {
			out = append(out, g)
		}
	}
	return out
}

// WidthMeasuredTooSmall reports whether the last measure pass could not fit
// the content horizontally.
func (r *RootContainer) WidthMeasuredTooSmall() bool { return r.root.widthMeasuredTooSmall }

// HeightMeasuredTooSmall reports whether the last measure pass could not fit
// the content vertically.
func (r *RootContainer) HeightMeasuredTooSmall() bool { return r.root.heightMeasuredTooSmall }

// SetMeasuredTooSmall records the outcome of a measure pass.
func (r *RootContainer) SetMeasuredTooSmall(width, height bool) {
	r.root.widthMeasuredTooSmall = width
	r.root.heightMeasuredTooSmall = height
}
