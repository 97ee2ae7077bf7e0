package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/anchorgraph/pkg/io"
)

// browseCommand creates the interactive browse command.
func (c *CLI) browseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse <scene>",
		Short: "Browse widgets and anchors interactively",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "-" {
				return fmt.Errorf("browse reads keys from stdin; pass a scene file")
			}
			ctx := cmd.Context()
			s, err := loadScene(ctx, args[0], nil)
			if err != nil {
				return err
			}

			p := tea.NewProgram(NewWidgetListModel(s), tea.WithContext(ctx))
			final, err := p.Run()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fm, ok := final.(WidgetListModel)
			if !ok || fm.Selected == nil {
				printDetail(out, "No selection made")
				return nil
			}

			w := fm.Selected
			fmt.Fprintln(out, StyleTitle.Render(io.ID(w)))
			printKeyValue(out, "kind", w.Kind().String())
			printKeyValue(out, "frame", fmt.Sprintf("(%d, %d) %dx%d", w.X(), w.Y(), w.Width(), w.Height()))
			var conns []string
			for _, a := range w.Anchors() {
				if a.IsConnected() {
					conns = append(conns, anchorSummary(a))
				}
			}
			if len(conns) > 0 {
				printKeyValue(out, "anchors", strings.Join(conns, ", "))
			}
			return nil
		},
	}
}
