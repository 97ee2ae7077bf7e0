package constraint

import (
	"testing"
)

func TestConnectIsDirectional(t *testing.T) {
	_, ws := siblings(2)
	a, b := ws[0], ws[1]

	if !a.Connect(AnchorRight, b, AnchorLeft, 8) {
		t.Fatal("Connect(RIGHT, LEFT) = false")
	}
	if got := a.Anchor(AnchorRight).Target(); got != b.Anchor(AnchorLeft) {
		t.Errorf("a.RIGHT target = %v, want b.LEFT", got)
	}
	if got := a.Anchor(AnchorRight).Margin(); got != 8 {
		t.Errorf("a.RIGHT margin = %d, want 8", got)
	}
	if b.Anchor(AnchorLeft).IsConnected() {
		t.Error("b.LEFT connected, want unconnected")
	}
}

func TestConnectRejected(t *testing.T) {
	_, ws := siblings(2)
	a, b := ws[0], ws[1]
	called := false
	b.SetConnectedHook(func(*Widget) { called = true })

	if a.Connect(AnchorLeft, b, AnchorTop, 0) {
		t.Fatal("Connect(LEFT, TOP) = true, want false")
	}
	if a.Anchor(AnchorLeft).IsConnected() {
		t.Error("rejected connection left LEFT connected")
	}
	if called {
		t.Error("connected hook called for a rejected connection")
	}
	if a.Connect(AnchorLeft, nil, AnchorLeft, 0) {
		t.Error("Connect to nil widget = true")
	}
}

func TestConnectedHook(t *testing.T) {
	_, ws := siblings(2)
	a, b := ws[0], ws[1]
	var source *Widget
	b.SetConnectedHook(func(w *Widget) { source = w })

	a.Connect(AnchorLeft, b, AnchorRight, 0)
	if source != a {
		t.Errorf("hook source = %v, want a", source)
	}
}

func TestConnectBaselineDisplacesTopAndBottom(t *testing.T) {
	_, ws := siblings(2)
	a, b := ws[0], ws[1]
	a.SetBaselineDistance(12)
	b.SetBaselineDistance(14)

	a.Connect(AnchorTop, b, AnchorTop, 4)
	a.Connect(AnchorBottom, b, AnchorBottom, 4)
	if !a.Connect(AnchorBaseline, b, AnchorBaseline, 9) {
		t.Fatal("Connect(BASELINE, BASELINE) = false")
	}

	if a.Anchor(AnchorTop).IsConnected() || a.Anchor(AnchorBottom).IsConnected() {
		t.Error("TOP/BOTTOM still connected after BASELINE")
	}
	if got := a.Anchor(AnchorBaseline).RawMargin(); got != 0 {
		t.Errorf("baseline margin = %d, want 0", got)
	}

	a.Connect(AnchorTop, b, AnchorBottom, 0)
	if a.Anchor(AnchorBaseline).IsConnected() {
		t.Error("BASELINE still connected after TOP")
	}
}

func TestConnectBaselineRequiresBaselines(t *testing.T) {
	_, ws := siblings(2)
	a, b := ws[0], ws[1]
	a.SetBaselineDistance(12)

	a.Connect(AnchorTop, b, AnchorTop, 0)
	if a.Connect(AnchorBaseline, b, AnchorBaseline, 0) {
		t.Fatal("Connect(BASELINE) to widget without baseline = true")
	}
	if !a.Anchor(AnchorTop).IsConnected() {
		t.Error("rejected BASELINE connection reset TOP")
	}
}

func TestConnectCenterToCenter(t *testing.T) {
	_, ws := siblings(2)
	a, b := ws[0], ws[1]

	check := func(t *testing.T) {
		t.Helper()
		for _, typ := range []AnchorType{AnchorLeft, AnchorRight, AnchorTop, AnchorBottom, AnchorCenter} {
			if got := a.Anchor(typ).Target(); got != b.Anchor(typ) {
				t.Errorf("%v target = %v, want b.%v", typ, got, typ)
			}
		}
		for _, typ := range []AnchorType{AnchorCenterX, AnchorCenterY} {
			if a.Anchor(typ).IsConnected() {
				t.Errorf("%v connected, want unconnected", typ)
			}
		}
	}

	if !a.Connect(AnchorCenter, b, AnchorCenter, 0) {
		t.Fatal("first Connect(CENTER, CENTER) = false")
	}
	check(t)

	a.Connect(AnchorCenter, b, AnchorCenter, 0)
	check(t)
}

func TestConnectCenterToCenterOneAxis(t *testing.T) {
	_, ws := siblings(2)
	a, b := ws[0], ws[1]

	a.Connect(AnchorLeft, b, AnchorLeft, 3)
	if !a.Connect(AnchorCenter, b, AnchorCenter, 0) {
		t.Fatal("Connect(CENTER, CENTER) = false")
	}
	if got := a.Anchor(AnchorCenterY).Target(); got != b.Anchor(AnchorCenterY) {
		t.Errorf("CENTER_Y target = %v, want b.CENTER_Y", got)
	}
	if a.Anchor(AnchorCenter).IsConnected() {
		t.Error("CENTER connected, want only CENTER_Y")
	}
	if got := a.Anchor(AnchorLeft).Target(); got != b.Anchor(AnchorLeft) || a.Anchor(AnchorLeft).Margin() != 3 {
		t.Error("existing LEFT connection changed")
	}
	if a.Anchor(AnchorRight).IsConnected() {
		t.Error("RIGHT connected, want unconnected")
	}
}

func TestConnectCenterToSide(t *testing.T) {
	_, ws := siblings(2)
	a, b := ws[0], ws[1]

	if !a.Connect(AnchorCenter, b, AnchorLeft, 0) {
		t.Fatal("Connect(CENTER, LEFT) = false")
	}
	target := b.Anchor(AnchorLeft)
	for _, typ := range []AnchorType{AnchorLeft, AnchorRight, AnchorCenter} {
		if got := a.Anchor(typ).Target(); got != target {
			t.Errorf("%v target = %v, want b.LEFT", typ, got)
		}
	}

	_, ws = siblings(2)
	a, b = ws[0], ws[1]
	if !a.Connect(AnchorCenter, b, AnchorBottom, 0) {
		t.Fatal("Connect(CENTER, BOTTOM) = false")
	}
	target = b.Anchor(AnchorBottom)
	for _, typ := range []AnchorType{AnchorTop, AnchorBottom, AnchorCenter} {
		if got := a.Anchor(typ).Target(); got != target {
			t.Errorf("%v target = %v, want b.BOTTOM", typ, got)
		}
	}
}

func TestConnectCenterXToSide(t *testing.T) {
	_, ws := siblings(2)
	a, b := ws[0], ws[1]

	if !a.Connect(AnchorCenterX, b, AnchorRight, 0) {
		t.Fatal("Connect(CENTER_X, RIGHT) = false")
	}
	target := b.Anchor(AnchorRight)
	if a.Anchor(AnchorLeft).Target() != target || a.Anchor(AnchorRight).Target() != target {
		t.Error("LEFT and RIGHT should both target b.RIGHT")
	}
	// a one-axis center can never be the source of a side connection
	if a.Anchor(AnchorCenterX).IsConnected() {
		t.Error("CENTER_X connected to a side anchor")
	}
}

func TestConnectCenterXToCenterX(t *testing.T) {
	_, ws := siblings(3)
	a, b, c := ws[0], ws[1], ws[2]

	if !a.Connect(AnchorCenterX, b, AnchorCenterX, 0) {
		t.Fatal("Connect(CENTER_X, CENTER_X) = false")
	}
	for _, typ := range []AnchorType{AnchorLeft, AnchorRight, AnchorCenterX} {
		if got := a.Anchor(typ).Target(); got != b.Anchor(typ) {
			t.Errorf("%v target = %v, want b.%v", typ, got, typ)
		}
	}

	// an explicit side supersedes the horizontal centering
	a.Connect(AnchorLeft, c, AnchorRight, 4)
	if a.Anchor(AnchorCenterX).IsConnected() {
		t.Error("CENTER_X still connected")
	}
	if a.Anchor(AnchorRight).IsConnected() {
		t.Error("RIGHT still connected")
	}
	if got := a.Anchor(AnchorLeft).Target(); got != c.Anchor(AnchorRight) {
		t.Errorf("LEFT target = %v, want c.RIGHT", got)
	}
}

func TestConnectCenterYToCenterY(t *testing.T) {
	_, ws := siblings(3)
	a, b, c := ws[0], ws[1], ws[2]

	a.Connect(AnchorCenterY, b, AnchorCenterY, 0)
	a.Connect(AnchorBottom, c, AnchorTop, 2)

	if a.Anchor(AnchorCenterY).IsConnected() || a.Anchor(AnchorTop).IsConnected() {
		t.Error("CENTER_Y and TOP should be reset by BOTTOM")
	}
	if got := a.Anchor(AnchorBottom).Target(); got != c.Anchor(AnchorTop) {
		t.Errorf("BOTTOM target = %v, want c.TOP", got)
	}
}

func TestConnectSideKeepsMatchingCenter(t *testing.T) {
	_, ws := siblings(2)
	a, b := ws[0], ws[1]

	a.Connect(AnchorCenter, b, AnchorLeft, 0)
	a.Connect(AnchorLeft, b, AnchorLeft, 5)
	if got := a.Anchor(AnchorCenter).Target(); got != b.Anchor(AnchorLeft) {
		t.Errorf("CENTER target = %v, want b.LEFT", got)
	}

	a.Connect(AnchorLeft, b, AnchorRight, 5)
	if a.Anchor(AnchorCenter).IsConnected() {
		t.Error("CENTER pointing elsewhere was not reset")
	}
}

func TestConnectAnchor(t *testing.T) {
	_, ws := siblings(3)
	a, b, c := ws[0], ws[1], ws[2]

	if a.ConnectAnchor(c.Anchor(AnchorLeft), b.Anchor(AnchorRight), 0, StrengthStrong, CreatorUser) {
		t.Error("ConnectAnchor with a foreign source = true")
	}
	if !a.ConnectAnchor(a.Anchor(AnchorLeft), b.Anchor(AnchorRight), 6, StrengthWeak, CreatorAutoConstraint) {
		t.Fatal("ConnectAnchor = false")
	}
	left := a.Anchor(AnchorLeft)
	if left.Target() != b.Anchor(AnchorRight) || left.Margin() != 6 || left.Strength() != StrengthWeak || left.Creator() != CreatorAutoConstraint {
		t.Errorf("unexpected anchor state %v margin=%d strength=%v creator=%v", left, left.Margin(), left.Strength(), left.Creator())
	}
}
