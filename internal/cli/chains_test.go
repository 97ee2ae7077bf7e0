package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/anchorgraph/pkg/constraint"
	"github.com/matzehuels/anchorgraph/pkg/io"
)

func TestCollectChains(t *testing.T) {
	s, err := loadScene(context.Background(), "-", strings.NewReader(chainScene))
	if err != nil {
		t.Fatal(err)
	}

	chains := collectChains(s.Root)
	if len(chains) != 1 {
		t.Fatalf("len(chains) = %d, want 1", len(chains))
	}
	ch := chains[0]
	if ch.orientation != constraint.Horizontal {
		t.Errorf("orientation = %v", ch.orientation)
	}
	var ids []string
	for _, m := range ch.members {
		ids = append(ids, io.ID(m))
	}
	if got := strings.Join(ids, " "); got != "x y z" {
		t.Errorf("members = %s, want x y z", got)
	}

	// collecting again does not register the chain twice
	if again := collectChains(s.Root); len(again) != 1 {
		t.Errorf("second collect found %d chains", len(again))
	}
}

func TestChainMembersStopsAtOneWayLink(t *testing.T) {
	root := constraint.NewRootContainer(0, 0, 300, 300)
	top, mid, bottom := constraint.NewWidget(0, 0, 10, 10), constraint.NewWidget(0, 0, 10, 10), constraint.NewWidget(0, 0, 10, 10)
	root.Add(top, mid, bottom)
	mid.Connect(constraint.AnchorTop, top, constraint.AnchorBottom, 0)
	top.Connect(constraint.AnchorBottom, mid, constraint.AnchorTop, 0)
	mid.Connect(constraint.AnchorBottom, bottom, constraint.AnchorTop, 0)

	members := chainMembers(top, constraint.Vertical)
	if len(members) != 2 || members[0] != top || members[1] != mid {
		t.Errorf("chainMembers() = %v, want [top mid]", members)
	}
}

func TestPrintChainsEmpty(t *testing.T) {
	var buf bytes.Buffer
	printChains(&buf, nil)
	if !strings.Contains(buf.String(), "No chains") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestChainMembersNeedsMatchingBackAnchor(t *testing.T) {
	root := constraint.NewRootContainer(0, 0, 300, 300)
	x, y := constraint.NewWidget(0, 0, 10, 10), constraint.NewWidget(0, 0, 10, 10)
	root.Add(x, y)
	x.Connect(constraint.AnchorRight, y, constraint.AnchorLeft, 0)
	// y links back to x, but not to the anchor that reached it
	y.Connect(constraint.AnchorLeft, x, constraint.AnchorLeft, 0)

	if members := chainMembers(x, constraint.Horizontal); len(members) != 1 || members[0] != x {
		t.Errorf("chainMembers() = %v, want [x]", members)
	}

	y.Connect(constraint.AnchorLeft, x, constraint.AnchorRight, 0)
	if members := chainMembers(x, constraint.Horizontal); len(members) != 2 {
		t.Errorf("chainMembers() = %v, want [x y]", members)
	}
}
