package cli

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/anchorgraph/pkg/constraint"
	"github.com/matzehuels/anchorgraph/pkg/io"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
	panelStyle        = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim).Padding(0, 1)
)

const minListHeight = 5

// =============================================================================
// WidgetListModel - Interactive widget browser
// =============================================================================

// WidgetListModel is the bubbletea model of the browse command. The left
// panel lists the widgets of a scene, the right panel shows the anchors of
// the widget under the cursor.
type WidgetListModel struct {
	Widgets []*constraint.Widget
	Cursor  int
	Offset  int
	Height  int

	// ShowIncoming switches the detail panel to the anchors that target
	// the current widget.
	ShowIncoming bool

	// Selected is set when the user confirms a widget.
	Selected *constraint.Widget

	incoming map[*constraint.Widget][]*constraint.Anchor
}

// NewWidgetListModel creates a browser over the root and every widget of s.
func NewWidgetListModel(s *io.Scene) WidgetListModel {
	widgets := append([]*constraint.Widget{s.Root.Widget}, s.Widgets()...)
	incoming := make(map[*constraint.Widget][]*constraint.Anchor)
	for _, w := range widgets {
		for _, a := range w.Anchors() {
			if a.IsConnected() {
				target := a.Target().Owner()
				incoming[target] = append(incoming[target], a)
			}
		}
	}
	return WidgetListModel{
		Widgets:  widgets,
		Height:   15,
		incoming: incoming,
	}
}

func (m WidgetListModel) Init() tea.Cmd {
	return nil
}

func (m WidgetListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Widgets)-1 {
				m.Cursor++
			}
		case "home", "g":
			m.Cursor = 0
		case "end", "G":
			m.Cursor = max(len(m.Widgets)-1, 0)
		case "tab":
			m.ShowIncoming = !m.ShowIncoming
		case "enter":
			if len(m.Widgets) > 0 {
				m.Selected = m.Widgets[m.Cursor]
				return m, tea.Quit
			}
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-6, minListHeight)
	}

	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
	return m, nil
}

func (m WidgetListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Widgets"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  tab outgoing/incoming  ⏎ select  q quit"))
	b.WriteString("\n\n")

	if len(m.Widgets) == 0 {
		b.WriteString(listDimStyle.Render("  (empty scene)"))
		return b.String()
	}

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.listView(), "  ", m.detailView()))
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Widgets))))
	return b.String()
}

func (m WidgetListModel) listView() string {
	var lines []string
	end := min(m.Offset+m.Height, len(m.Widgets))
	for i := m.Offset; i < end; i++ {
		w := m.Widgets[i]
		depth := 0
		for p := w.Parent(); p != nil; p = p.Parent() {
			depth++
		}
		line := fmt.Sprintf("%s%s %s", strings.Repeat("  ", depth), io.ID(w), listDimStyle.Render(w.Kind().String()))
		if i == m.Cursor {
			lines = append(lines, listSelectedStyle.Render("▸ "+line))
		} else {
			lines = append(lines, listNormalStyle.Render("  "+line))
		}
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}

func (m WidgetListModel) detailView() string {
	w := m.Widgets[m.Cursor]

	var b strings.Builder
	b.WriteString(StyleID.Render(io.ID(w)))
	fmt.Fprintf(&b, "  (%d, %d) %dx%d", w.X(), w.Y(), w.Width(), w.Height())
	if v := w.Visibility(); v != constraint.Visible {
		b.WriteString("  " + StyleWarning.Render(v.String()))
	}
	if g, ok := w.AsGuideline(); ok {
		fmt.Fprintf(&b, "\n%v guideline, %v rule, position %d", g.Orientation(), g.RelativeBehavior(), g.Position())
	}
	b.WriteString("\n\n")

	if m.ShowIncoming {
		t := newTable("From", "Anchor", "To", "Margin")
		for _, a := range m.incoming[w] {
			t.Row(io.ID(a.Owner()), a.Type().String(), a.Target().Type().String(), strconv.Itoa(a.RawMargin()))
		}
		b.WriteString(StyleDim.Render("incoming"))
		b.WriteString("\n")
		b.WriteString(t.Render())
		return b.String()
	}

	t := newTable("Anchor", "Target", "Margin", "Strength", "Creator")
	for _, a := range w.Anchors() {
		if !a.IsConnected() {
			t.Row(a.Type().String(), "-", "", "", "")
			continue
		}
		margin := strconv.Itoa(a.RawMargin())
		if gm := a.GoneMargin(); gm != constraint.UnsetGoneMargin {
			margin += fmt.Sprintf(" (gone %d)", gm)
		}
		target := fmt.Sprintf("%s.%v", io.ID(a.Target().Owner()), a.Target().Type())
		t.Row(a.Type().String(), target, margin, a.Strength().String(), a.Creator().String())
	}
	b.WriteString(StyleDim.Render("outgoing"))
	b.WriteString("\n")
	b.WriteString(t.Render())
	return b.String()
}
