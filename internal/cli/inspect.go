package cli

import (
	"fmt"
	stdio "io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/anchorgraph/pkg/constraint"
	"github.com/matzehuels/anchorgraph/pkg/io"
)

// inspectCommand creates the inspect command.
func (c *CLI) inspectCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "inspect <scene>",
		Short: "Summarize the widgets and connections of a scene",
		Long: `Inspect loads a scene file ("-" for stdin), applies its connections and
prints the resulting widgets with their connected anchors. Connections the
graph refused are listed as warnings.

With --json the resulting graph is written back as scene JSON, with every
composite connection expanded into the anchors it produced.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadScene(cmd.Context(), args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}
			if asJSON {
				return io.WriteScene(s.Root, cmd.OutOrStdout())
			}
			printInspect(cmd.OutOrStdout(), s)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "write the resulting graph as scene JSON")
	return cmd
}

func printInspect(w stdio.Writer, s *io.Scene) {
	root := s.Root
	fmt.Fprintln(w, StyleTitle.Render(io.ID(root.Widget)))
	printKeyValue(w, "size", fmt.Sprintf("%dx%d", root.Width(), root.Height()))
	if p := root.Padding(); p != (constraint.Padding{}) {
		printKeyValue(w, "padding", fmt.Sprintf("%d %d %d %d", p.Left, p.Top, p.Right, p.Bottom))
	}
	printKeyValue(w, "widgets", strconv.Itoa(len(s.Widgets())))
	printKeyValue(w, "guidelines", fmt.Sprintf("%d vertical, %d horizontal",
		len(root.VerticalGuidelines()), len(root.HorizontalGuidelines())))
	printKeyValue(w, "connections", strconv.Itoa(connectionCount(s)))

	if len(s.Widgets()) > 0 {
		fmt.Fprintln(w, widgetTable(s).Render())
	}
	for _, r := range s.Rejected {
		printWarning(w, "rejected %s", r)
	}
}

func widgetTable(s *io.Scene) *table.Table {
	t := newTable("ID", "Kind", "Parent", "Frame", "Connections")
	for _, w := range s.Widgets() {
		var conns []string
		for _, a := range w.Anchors() {
			if a.IsConnected() {
				conns = append(conns, anchorSummary(a))
			}
		}
		frame := fmt.Sprintf("(%d, %d) %dx%d", w.X(), w.Y(), w.Width(), w.Height())
		if v := w.Visibility(); v != constraint.Visible {
			frame += " " + v.String()
		}
		t.Row(io.ID(w), w.Kind().String(), io.ID(w.Parent()), frame, strings.Join(conns, ", "))
	}
	return t
}

// anchorSummary describes a connected anchor as "LEFT→b.RIGHT+8".
func anchorSummary(a *constraint.Anchor) string {
	s := fmt.Sprintf("%v%s%s.%v", a.Type(), iconArrow, io.ID(a.Target().Owner()), a.Target().Type())
	if m := a.RawMargin(); m != 0 {
		s += "+" + strconv.Itoa(m)
	}
	return s
}
