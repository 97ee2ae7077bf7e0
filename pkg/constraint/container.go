package constraint

type containerState struct {
	children []*Widget

	// When set, children connections are managed by the container and the
	// reset operations of its children do nothing.
	handlesInternalConstraints bool
}

func (c *containerState) remove(w *Widget) {
	for i, child := range c.children {
		if child == w {
			c.children = append(c.children[:i], c.children[i+1:]...)
			w.parent = nil
			return
		}
	}
}

func (c *containerState) clear() {
	for _, child := range c.children {
		child.parent = nil
	}
	c.children = nil
}

// Container is a widget holding an ordered list of children. Every child
// has its parent set to the container, and a widget belongs to at most one
// container at a time.
type Container struct {
	*Widget
}

// NewContainer creates an empty container with the given geometry.
func NewContainer(x, y, width, height int) *Container {
	c := &Container{Widget: newWidget(KindContainer)}
	c.container = &containerState{}
	c.initGeometry(x, y, width, height)
	return c
}

func (w *Widget) initGeometry(x, y, width, height int) {
	w.x, w.y = x, y
	w.width, w.height = width, height
	w.ForceUpdateDrawPosition()
}

// AsContainer returns the container view of w. Root containers are
// containers too.
func (w *Widget) AsContainer() (*Container, bool) {
	if w.container == nil {
		return nil, false
	}
	return &Container{Widget: w}, true
}

// Add appends widgets to the children. A widget already held by another
// container, or by this one, is removed from it first. Adding the container
// to itself or to one of its descendants is ignored.
func (c *Container) Add(widgets ...*Widget) {
	for _, w := range widgets {
		if w == nil || w == c.Widget || w.isAncestorOf(c.Widget) {
			continue
		}
		if w.parent != nil && w.parent.container != nil {
			w.parent.container.remove(w)
		}
		c.container.children = append(c.container.children, w)
		w.parent = c.Widget
	}
}

func (w *Widget) isAncestorOf(other *Widget) bool {
	for p := other.parent; p != nil; p = p.parent {
		if p == w {
			return true
		}
	}
	return false
}

// Remove detaches w from the container. It is a no-op when w is not a child.
func (c *Container) Remove(w *Widget) {
	if w == nil || w.parent != c.Widget {
		return
	}
	c.container.remove(w)
}

// RemoveAllChildren detaches every child.
func (c *Container) RemoveAllChildren() { c.container.clear() }

// Children returns the children in insertion order. The slice must not be
// modified.
func (c *Container) Children() []*Widget { return c.container.children }

// HandlesInternalConstraints reports whether the container manages the
// connections of its children itself.
func (c *Container) HandlesInternalConstraints() bool {
	return c.container.handlesInternalConstraints
}

// SetHandlesInternalConstraints makes the reset operations of every child a
// no-op while set.
func (c *Container) SetHandlesInternalConstraints(v bool) {
	c.container.handlesInternalConstraints = v
}

// RootContainer returns the outermost root container above this container,
// including the container itself, or nil.
func (c *Container) RootContainer() *RootContainer {
	var found *Widget
	for w := c.Widget; w != nil; w = w.parent {
		if w.kind == KindRoot {
			found = w
		}
	}
	if found == nil {
		return nil
	}
	return &RootContainer{Container: &Container{Widget: found}}
}

// Walk visits the container and its descendants depth first, in child
// order. Returning false from fn skips the children of that widget.
func (c *Container) Walk(fn func(w *Widget) bool) {
	walk(c.Widget, fn)
}

func walk(w *Widget, fn func(*Widget) bool) {
	if !fn(w) || w.container == nil {
		return
	}
	for _, child := range w.container.children {
		walk(child, fn)
	}
}
