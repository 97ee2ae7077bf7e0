// Package constraint provides the constraint-relation graph describing a
// relative-positioning layout.
//
// # Overview
//
// A layout is a tree of rectangular widgets. Each widget carries eight typed
// anchors (LEFT, TOP, RIGHT, BOTTOM, BASELINE, CENTER, CENTER_X and CENTER_Y)
// and an anchor may target one anchor of another widget. A solver, which is
// not part of this package, reads the graph, computes concrete geometry and
// writes it back with [Widget.SetFrame] and related setters.
//
// Connections are directional: connecting A.RIGHT to B.LEFT sets a target on
// A's anchor only.
//
// # Basic Usage
//
//	root := constraint.NewRootContainer(0, 0, 400, 300)
//	title := constraint.NewWidget(0, 0, 120, 20)
//	body := constraint.NewWidget(0, 0, 200, 100)
//	root.Add(title, body)
//
//	title.Connect(constraint.AnchorCenter, root.Widget, constraint.AnchorCenter, 0)
//	body.Connect(constraint.AnchorTop, title, constraint.AnchorBottom, 8)
//
// [Widget.ConnectWith] validates each connection with
// [Anchor.IsValidConnection] and returns false, without changing anything,
// when the pair of anchors cannot be connected. Connecting a center anchor
// fans out into side connections, and connecting a side clears the
// connections it supersedes: a BASELINE connection displaces TOP and BOTTOM,
// while a TOP connection displaces BASELINE.
//
// # Widget Kinds
//
// Every node of the tree is a [*Widget]; its [Kind] tells the variants apart:
//
//   - [KindPlain]: an ordinary rectangle
//   - [KindGuideline]: a line with a single anchor, see [Guideline]
//   - [KindContainer]: holds children, see [Container]
//   - [KindRoot]: the top of a layout pass, see [RootContainer]
//
// The typed views are obtained with [Widget.AsGuideline],
// [Widget.AsContainer] and [Widget.AsRoot]. The parent link of a widget is
// only changed by [Container.Add] and [Container.Remove], so a widget never
// belongs to two containers.
//
// # Margins and Visibility
//
// [Anchor.Margin] is 0 whenever the anchor's own widget is [Gone]. When the
// widget is visible but the target's widget is gone, the gone margin set with
// [Anchor.SetGoneMargin] replaces the regular margin.
//
// # Chains
//
// Widgets linked both ways through the same pair of anchors form a chain.
// [Widget.HorizontalChainControlWidget] finds the first widget of a chain and
// [RootContainer.AddChain] records chain starts once each.
//
// # Draw Positions
//
// Positions set by the solver are relative to the parent. After a pass,
// [Widget.UpdateDrawPosition] on the root refreshes the draw cache of every
// widget, expressed relative to the root. Nested root containers keep their
// own coordinate space.
//
// # Concurrency
//
// Graphs are not safe for concurrent use. A layout pass owns its tree while
// it resets constraints, connects anchors, applies geometry and updates draw
// positions, in that order.
package constraint
