package constraint

import (
	"testing"
)

// verticalGuide returns a vertical guideline inside a 200x100 root.
func verticalGuide() (*RootContainer, *Guideline) {
	root := NewRootContainer(0, 0, 200, 100)
	g := NewGuideline()
	g.SetOrientation(Vertical)
	root.Add(g.Widget)
	return root, g
}

func TestGuidelineRulesAreExclusive(t *testing.T) {
	g := NewGuideline()
	if got := g.RelativeBehavior(); got != GuideUnknown {
		t.Fatalf("RelativeBehavior() = %v, want %v", got, GuideUnknown)
	}

	g.SetGuideBegin(10)
	g.SetGuidePercent(0.5)
	if g.RelativeBegin() != -1 {
		t.Errorf("RelativeBegin() = %d, want -1", g.RelativeBegin())
	}
	if g.RelativePercent() != 0.5 {
		t.Errorf("RelativePercent() = %v, want 0.5", g.RelativePercent())
	}

	g.SetGuideEnd(20)
	if g.RelativePercent() != -1 || g.RelativeBegin() != -1 || g.RelativeEnd() != 20 {
		t.Errorf("after SetGuideEnd: percent=%v begin=%d end=%d", g.RelativePercent(), g.RelativeBegin(), g.RelativeEnd())
	}
	if got := g.RelativeBehavior(); got != GuideEnd {
		t.Errorf("RelativeBehavior() = %v, want %v", got, GuideEnd)
	}
}

func TestGuidelineIgnoresUnsetValues(t *testing.T) {
	g := NewGuideline()
	g.SetGuideBegin(15)

	g.SetGuideBegin(-1)
	g.SetGuideEnd(-3)
	g.SetGuidePercent(-1)
	g.SetGuidePercentInt(-7)

	if g.RelativeBegin() != 15 || g.RelativeBehavior() != GuideBegin {
		t.Errorf("begin = %d behavior = %v, want 15 begin", g.RelativeBegin(), g.RelativeBehavior())
	}

	g.SetGuidePercentInt(40)
	if g.RelativePercent() != 0.4 {
		t.Errorf("RelativePercent() = %v, want 0.4", g.RelativePercent())
	}
}

func TestGuidelineAnchorAliasing(t *testing.T) {
	g := NewGuideline()

	top := g.Anchor(AnchorTop)
	if top == nil || g.Anchor(AnchorBottom) != top || g.ActiveAnchor() != top {
		t.Fatal("horizontal guideline should alias TOP and BOTTOM")
	}
	if g.Anchor(AnchorLeft) != nil || g.Anchor(AnchorRight) != nil {
		t.Error("horizontal guideline exposes LEFT/RIGHT")
	}

	g.SetOrientation(Vertical)
	left := g.Anchor(AnchorLeft)
	if left == nil || g.Anchor(AnchorRight) != left || g.ActiveAnchor() != left {
		t.Fatal("vertical guideline should alias LEFT and RIGHT")
	}
	for _, typ := range []AnchorType{AnchorTop, AnchorBottom, AnchorBaseline, AnchorCenter, AnchorCenterX, AnchorCenterY, AnchorNone} {
		if g.Anchor(typ) != nil {
			t.Errorf("Anchor(%v) != nil", typ)
		}
	}
	if got := g.Anchors(); len(got) != 1 || got[0] != left {
		t.Errorf("Anchors() = %v, want [LEFT]", got)
	}

	defer func() {
		if recover() == nil {
			t.Error("Anchor(unknown) did not panic")
		}
	}()
	g.Anchor(AnchorType(99))
}

func TestConnectToGuideline(t *testing.T) {
	root, g := verticalGuide()
	w := NewWidget(0, 0, 10, 10)
	root.Add(w)

	if !w.Connect(AnchorLeft, g.Widget, AnchorLeft, 4) {
		t.Fatal("Connect(LEFT, guideline LEFT) = false")
	}
	if w.Anchor(AnchorLeft).Target() != g.ActiveAnchor() {
		t.Error("LEFT does not target the guideline anchor")
	}
	if w.Connect(AnchorTop, g.Widget, AnchorTop, 0) {
		t.Error("Connect(TOP) to a vertical guideline = true")
	}
	if !w.Connect(AnchorRight, g.Widget, AnchorRight, 0) {
		t.Error("Connect(RIGHT, guideline RIGHT) = false")
	}
}

func TestGuidelineSetDrawOrigin(t *testing.T) {
	tests := []struct {
		name  string
		setup func(g *Guideline)
		x     int
		check func(t *testing.T, g *Guideline)
	}{
		{
			name:  "percent",
			setup: func(g *Guideline) { g.SetGuidePercent(0.25) },
			x:     50,
			check: func(t *testing.T, g *Guideline) {
				if g.RelativePercent() != 0.25 {
					t.Errorf("RelativePercent() = %v, want 0.25", g.RelativePercent())
				}
			},
		},
		{
			name:  "percent moves",
			setup: func(g *Guideline) { g.SetGuidePercent(0.25) },
			x:     100,
			check: func(t *testing.T, g *Guideline) {
				if g.RelativePercent() != 0.5 {
					t.Errorf("RelativePercent() = %v, want 0.5", g.RelativePercent())
				}
			},
		},
		{
			name:  "begin",
			setup: func(g *Guideline) { g.SetGuideBegin(10) },
			x:     30,
			check: func(t *testing.T, g *Guideline) {
				if g.RelativeBegin() != 30 {
					t.Errorf("RelativeBegin() = %d, want 30", g.RelativeBegin())
				}
			},
		},
		{
			name:  "end",
			setup: func(g *Guideline) { g.SetGuideEnd(5) },
			x:     150,
			check: func(t *testing.T, g *Guideline) {
				if g.RelativeEnd() != 50 {
					t.Errorf("RelativeEnd() = %d, want 50", g.RelativeEnd())
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, g := verticalGuide()
			tt.setup(g)
			g.SetDrawOrigin(tt.x, 0)
			tt.check(t, g)
		})
	}
}

func TestGuidelineSetDrawOriginHorizontal(t *testing.T) {
	root := NewRootContainer(0, 0, 200, 100)
	g := NewGuideline()
	root.Add(g.Widget)
	g.SetGuideEnd(0)

	g.SetDrawOrigin(0, 60)
	if g.RelativeEnd() != 40 {
		t.Errorf("RelativeEnd() = %d, want 40", g.RelativeEnd())
	}
}

func TestGuidelineCyclePosition(t *testing.T) {
	_, g := verticalGuide()
	g.SetX(50)
	g.SetGuideBegin(50)

	g.CyclePosition()
	if g.RelativeBehavior() != GuidePercent || g.RelativePercent() != 0.25 {
		t.Fatalf("after first cycle: %v %v", g.RelativeBehavior(), g.RelativePercent())
	}
	g.CyclePosition()
	if g.RelativeBehavior() != GuideEnd || g.RelativeEnd() != 150 {
		t.Fatalf("after second cycle: %v %d", g.RelativeBehavior(), g.RelativeEnd())
	}
	g.CyclePosition()
	if g.RelativeBehavior() != GuideBegin || g.RelativeBegin() != 50 {
		t.Fatalf("after third cycle: %v %d", g.RelativeBehavior(), g.RelativeBegin())
	}
}

func TestGuidelinePosition(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(g *Guideline)
		minimum int
		want    int
	}{
		{"begin", func(g *Guideline) { g.SetGuideBegin(10) }, 0, 10},
		{"begin clamped", func(g *Guideline) { g.SetGuideBegin(10) }, 20, 20},
		{"percent", func(g *Guideline) { g.SetGuidePercent(0.5) }, 0, 100},
		{"end", func(g *Guideline) { g.SetGuideEnd(30) }, 0, 170},
		{"no rule", func(g *Guideline) { g.SetX(42) }, 0, 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, g := verticalGuide()
			tt.setup(g)
			g.SetMinimumPosition(tt.minimum)
			if got := g.Position(); got != tt.want {
				t.Errorf("Position() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestGuidelineViews(t *testing.T) {
	g := NewGuideline()
	if _, ok := g.Widget.AsGuideline(); !ok {
		t.Error("AsGuideline() on a guideline = false")
	}
	if _, ok := NewWidget(0, 0, 1, 1).AsGuideline(); ok {
		t.Error("AsGuideline() on a plain widget = true")
	}
	if g.Kind() != KindGuideline || !g.IsGuideline() {
		t.Errorf("Kind() = %v", g.Kind())
	}
}
