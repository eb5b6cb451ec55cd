// ABOUTME: HelpModel overlay: game rules plus the live key map, rendered as markdown
// ABOUTME: Any key closes it

package btea

import (
	tea "github.com/charmbracelet/bubbletea"
)

const rulesMarkdown = `# Pebbling a binary tree

Get a pebble onto the **root**.

- Pebbles come from the **bank** and can only be placed on **leaves**.
- When both children of a node hold pebbles and the node is empty, you can
  **combine** them: both children are cleared and the parent gets one pebble.
  The bank does not get the other pebble back.
- Any pebble can be taken off the tree and returned to the bank.
- Every move can be undone.

With the mouse: click a node to place or remove a pebble; hold the button
(or shift-click) on a child to combine.

`

// HelpModel shows the rules and key bindings.
type HelpModel struct {
	md    *MarkdownRenderer
	keys  string
	width int
}

// NewHelpModel creates the overlay; keyTable is a markdown table of bindings.
func NewHelpModel(md *MarkdownRenderer, keyTable string, width int) HelpModel {
	return HelpModel{md: md, keys: keyTable, width: width}
}

// Init returns nil.
func (m HelpModel) Init() tea.Cmd { return nil }

// Update closes the overlay on any key.
func (m HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, func() tea.Msg { return closeOverlayMsg{} }
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

// View renders the markdown.
func (m HelpModel) View() string {
	w := m.width - 8
	if w < 40 {
		w = 40
	}
	return m.md.Render(rulesMarkdown+"## Keys\n\n"+m.keys, w)
}
