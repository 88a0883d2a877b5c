package dashboard

import (
	tea "github.com/charmbracelet/bubbletea"
)

// waitForChange blocks until a subscribed slice republishes.
func waitForChange(changes <-chan string) tea.Cmd {
	return func() tea.Msg {
		slice, ok := <-changes
		if !ok {
			return nil
		}
		return StateChangedMsg{Slice: slice}
	}
}

// loadItemsCmd generates n items after the offset already loaded.
func loadItemsCmd(source ItemSource, n, offset int) tea.Cmd {
	return func() tea.Msg {
		return ItemsLoadedMsg{Offset: offset, Items: source.Generate(n, offset)}
	}
}
