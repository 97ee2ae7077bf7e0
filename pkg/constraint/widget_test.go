package constraint

import (
	"testing"

	"github.com/matzehuels/anchorgraph/pkg/errors"
)

func TestSetWidthNeverBelowMinimum(t *testing.T) {
	for _, width := range []int{-100, -1, 0, 5, 9, 10, 11, 500} {
		w := NewWidget(0, 0, 0, 0)
		w.SetMinWidth(10)
		w.SetMinHeight(4)
		w.SetWidth(width)
		w.SetHeight(width)
		if w.Width() < 10 {
			t.Errorf("SetWidth(%d): Width() = %d, below minimum", width, w.Width())
		}
		if w.Height() < 4 {
			t.Errorf("SetHeight(%d): Height() = %d, below minimum", width, w.Height())
		}
		if width > 10 && w.Width() != width {
			t.Errorf("SetWidth(%d): Width() = %d", width, w.Width())
		}
	}
}

func TestGoneWidgetHasNoSize(t *testing.T) {
	w := NewWidget(0, 0, 40, 30)
	w.SetVisibility(Gone)
	if w.Width() != 0 || w.Height() != 0 {
		t.Errorf("size = %dx%d, want 0x0", w.Width(), w.Height())
	}
	w.SetVisibility(Invisible)
	if w.Width() != 40 || w.Height() != 30 {
		t.Errorf("size = %dx%d, want 40x30", w.Width(), w.Height())
	}
}

func TestSetFrame(t *testing.T) {
	tests := []struct {
		name       string
		behavior   DimensionBehavior
		visibility Visibility
		frame      [4]int
		wantX      int
		wantW      int
		wantH      int
	}{
		{"fixed grows", Fixed, Visible, [4]int{5, 5, 65, 45}, 5, 60, 40},
		{"fixed does not shrink", Fixed, Visible, [4]int{5, 5, 44, 34}, 5, 50, 40},
		{"match constraint shrinks", MatchConstraint, Visible, [4]int{5, 5, 44, 34}, 5, 39, 29},
		{"minimum applies", MatchConstraint, Visible, [4]int{0, 0, 2, 2}, 0, 10, 10},
		{"gone collapses", Fixed, Gone, [4]int{7, 7, 100, 100}, 7, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWidget(0, 0, 50, 40)
			w.SetMinWidth(10)
			w.SetMinHeight(10)
			w.SetHorizontalDimensionBehavior(tt.behavior)
			w.SetVerticalDimensionBehavior(tt.behavior)
			w.SetVisibility(tt.visibility)

			w.SetFrame(tt.frame[0], tt.frame[1], tt.frame[2], tt.frame[3])

			if w.X() != tt.wantX || w.Width() != tt.wantW || w.Height() != tt.wantH {
				t.Errorf("got x=%d %dx%d, want x=%d %dx%d", w.X(), w.Width(), w.Height(), tt.wantX, tt.wantW, tt.wantH)
			}
		})
	}
}

func TestSetDimensionFromEdges(t *testing.T) {
	w := NewWidget(0, 0, 0, 0)
	w.SetMinHeight(8)
	w.SetHorizontalDimension(10, 50)
	w.SetVerticalDimension(20, 25)

	if w.Left() != 10 || w.Right() != 50 || w.Top() != 20 || w.Height() != 8 {
		t.Errorf("geometry = %v", w)
	}
}

func TestWrapContentRestoresWrapSize(t *testing.T) {
	w := NewWidget(0, 0, 100, 100)
	w.SetWrapWidth(42)
	w.SetWrapHeight(17)
	w.SetHorizontalDimensionBehavior(WrapContent)
	w.SetVerticalDimensionBehavior(WrapContent)
	if w.Width() != 42 || w.Height() != 17 {
		t.Errorf("size = %dx%d, want 42x17", w.Width(), w.Height())
	}
}

func TestBiasIsClamped(t *testing.T) {
	w := NewWidget(0, 0, 1, 1)
	if w.HorizontalBiasPercent() != DefaultBias || w.VerticalBiasPercent() != DefaultBias {
		t.Fatal("default bias is not 0.5")
	}
	w.SetHorizontalBiasPercent(-2)
	w.SetVerticalBiasPercent(3)
	if w.HorizontalBiasPercent() != 0 || w.VerticalBiasPercent() != 1 {
		t.Errorf("biases = %v/%v, want 0/1", w.HorizontalBiasPercent(), w.VerticalBiasPercent())
	}
}

func TestMatchConstraintRefinements(t *testing.T) {
	w := NewWidget(0, 0, 1, 1)
	w.SetHorizontalMatchConstraint(MatchConstraintSpread, -4, 0, 0.5)
	mode, minSize, maxSize, percent := w.MatchConstraint(Horizontal)
	if mode != MatchConstraintPercent || minSize != 0 || maxSize != Unbounded || percent != 0.5 {
		t.Errorf("MatchConstraint(Horizontal) = %v %d %d %v", mode, minSize, maxSize, percent)
	}

	w.SetVerticalMatchConstraint(MatchConstraintWrap, 5, 80, 1)
	mode, minSize, maxSize, _ = w.MatchConstraint(Vertical)
	if mode != MatchConstraintWrap || minSize != 5 || maxSize != 80 {
		t.Errorf("MatchConstraint(Vertical) = %v %d %d", mode, minSize, maxSize)
	}
}

func TestWidgetReset(t *testing.T) {
	_, ws := siblings(2)
	a, b := ws[0], ws[1]
	a.Connect(AnchorCenter, b, AnchorCenter, 0)
	a.SetVisibility(Gone)
	a.SetHorizontalBiasPercent(0.1)
	a.SetMinWidth(30)
	a.SetDimensionRatio(2, int(Horizontal))

	a.Reset()

	for _, anchor := range a.Anchors() {
		if anchor.IsConnected() {
			t.Errorf("%v still connected", anchor.Type())
		}
	}
	if a.Visibility() != Visible || a.HorizontalBiasPercent() != DefaultBias || a.MinWidth() != 0 {
		t.Errorf("state not restored: %v %v %d", a.Visibility(), a.HorizontalBiasPercent(), a.MinWidth())
	}
	if a.DimensionRatio() != 0 || a.DimensionRatioSide() != Unknown {
		t.Errorf("ratio = %v side %d", a.DimensionRatio(), a.DimensionRatioSide())
	}
	if a.MaxWidth() != Unbounded {
		t.Errorf("MaxWidth() = %d", a.MaxWidth())
	}
}

func TestWidgetString(t *testing.T) {
	w := NewWidget(1, 2, 30, 40)
	w.SetType("Button")
	w.SetDebugName("ok")
	w.SetWrapWidth(10)

	want := "type: Button id: ok (1, 2) - (30 x 40) wrap: (10 x 0)"
	if got := w.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestWidgetAnchorsOrder(t *testing.T) {
	w := NewWidget(0, 0, 1, 1)
	want := []AnchorType{AnchorLeft, AnchorTop, AnchorRight, AnchorBottom, AnchorCenterX, AnchorCenterY, AnchorCenter, AnchorBaseline}
	got := w.Anchors()
	if len(got) != len(want) {
		t.Fatalf("len(Anchors()) = %d", len(got))
	}
	for i, typ := range want {
		if got[i].Type() != typ || got[i].Owner() != w || w.Anchor(typ) != got[i] {
			t.Errorf("Anchors()[%d] = %v, want %v", i, got[i].Type(), typ)
		}
	}
	if w.Anchor(AnchorNone) != nil {
		t.Error("Anchor(NONE) != nil")
	}
}

func TestCompanion(t *testing.T) {
	type view struct{ id int }
	w := NewWidget(0, 0, 1, 1)
	w.SetCompanion(&view{id: 7})
	if v, ok := w.Companion().(*view); !ok || v.id != 7 {
		t.Errorf("Companion() = %v", w.Companion())
	}
}

func TestParseDimensionRatio(t *testing.T) {
	tests := []struct {
		input     string
		wantRatio float32
		wantSide  int
		wantErr   bool
	}{
		{"16:9", 16.0 / 9.0, Unknown, false},
		{"1.5", 1.5, Unknown, false},
		{"W,16:9", 16.0 / 9.0, int(Horizontal), false},
		{"w, 4:2", 2, int(Horizontal), false},
		{"H,3:4", 4.0 / 3.0, int(Vertical), false},
		{"H,2", 2, int(Vertical), false},

		{"", 0, Unknown, true},
		{"abc", 0, Unknown, true},
		{"16:", 0, Unknown, true},
		{"0:9", 0, Unknown, true},
		{"-2", 0, Unknown, true},
		{"X,1:1", 0, Unknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ratio, side, err := ParseDimensionRatio(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDimensionRatio(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil {
				if !errors.Is(err, errors.ErrCodeInvalidRatio) {
					t.Errorf("error code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidRatio)
				}
				return
			}
			if ratio != tt.wantRatio || side != tt.wantSide {
				t.Errorf("ParseDimensionRatio(%q) = %v, %d; want %v, %d", tt.input, ratio, side, tt.wantRatio, tt.wantSide)
			}
		})
	}
}

func TestSetDimensionRatioString(t *testing.T) {
	w := NewWidget(0, 0, 1, 1)
	if err := w.SetDimensionRatioString("W,16:9"); err != nil {
		t.Fatalf("SetDimensionRatioString: %v", err)
	}
	if w.DimensionRatioSide() != int(Horizontal) {
		t.Errorf("side = %d", w.DimensionRatioSide())
	}

	if err := w.SetDimensionRatioString("nope"); err == nil {
		t.Fatal("invalid ratio accepted")
	}
	if w.DimensionRatio() != float32(16.0/9.0) {
		t.Errorf("failed parse changed the ratio to %v", w.DimensionRatio())
	}

	if err := w.SetDimensionRatioString(""); err != nil || w.DimensionRatio() != 0 {
		t.Errorf("empty string did not clear the ratio: %v %v", err, w.DimensionRatio())
	}
}
