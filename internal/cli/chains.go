package cli

import (
	"fmt"
	stdio "io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/anchorgraph/pkg/constraint"
	"github.com/matzehuels/anchorgraph/pkg/io"
)

// chain is a registered chain head with its members in order.
type chain struct {
	orientation constraint.Orientation
	members     []*constraint.Widget
}

// chainsCommand creates the chains command.
func (c *CLI) chainsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "chains <scene>",
		Short: "List the horizontal and vertical chains of a scene",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadScene(cmd.Context(), args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			chains := collectChains(s.Root)
			sceneLogger(cmd.Context(), args[0]).Debug("collected chains", "count", len(chains))
			printChains(cmd.OutOrStdout(), chains)
			return nil
		},
	}
}

// collectChains registers every chained widget with root, then expands the
// resulting heads into their members.
func collectChains(root *constraint.RootContainer) []chain {
	root.ResetChains()
	root.Walk(func(w *constraint.Widget) bool {
		if w == root.Widget {
			return true
		}
		if w.IsInHorizontalChain() {
			root.AddChain(w, constraint.Horizontal)
		}
		if w.IsInVerticalChain() {
			root.AddChain(w, constraint.Vertical)
		}
		return true
	})

	var chains []chain
	for _, head := range root.HorizontalChains() {
		chains = append(chains, chain{constraint.Horizontal, chainMembers(head, constraint.Horizontal)})
	}
	for _, head := range root.VerticalChains() {
		chains = append(chains, chain{constraint.Vertical, chainMembers(head, constraint.Vertical)})
	}
	return chains
}

// chainMembers follows two-way links from head along o.
func chainMembers(head *constraint.Widget, o constraint.Orientation) []*constraint.Widget {
	lead, trail := constraint.AnchorLeft, constraint.AnchorRight
	if o == constraint.Vertical {
		lead, trail = constraint.AnchorTop, constraint.AnchorBottom
	}

	var members []*constraint.Widget
	seen := make(map[*constraint.Widget]bool)
	for w := head; w != nil && !seen[w]; {
		members = append(members, w)
		seen[w] = true

		out := w.Anchor(trail)
		if out == nil || !out.IsConnected() {
			break
		}
		next := out.Target().Owner()
		if next == w.Parent() {
			break
		}
		back := next.Anchor(lead)
		if back == nil || back.Target() != out {
			break
		}
		w = next
	}
	return members
}

func printChains(w stdio.Writer, chains []chain) {
	if len(chains) == 0 {
		printInfo(w, "No chains")
		return
	}
	for _, ch := range chains {
		head := ch.members[0]
		ids := make([]string, len(ch.members))
		for i, m := range ch.members {
			ids[i] = StyleID.Render(io.ID(m))
		}
		bias := head.HorizontalBiasPercent()
		if ch.orientation == constraint.Vertical {
			bias = head.VerticalBiasPercent()
		}
		printInfo(w, "%-10s %s", ch.orientation, strings.Join(ids, StyleDim.Render(" "+iconArrow+" ")))
		printDetail(w, "style %v, bias %.2f", head.ChainStyle(ch.orientation), bias)
	}
	fmt.Fprintf(w, "%d chains\n", len(chains))
}
