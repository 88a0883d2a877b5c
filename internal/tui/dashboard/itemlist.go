package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/statedeck/internal/items"
	"github.com/alexisbeaulieu97/statedeck/internal/tui/components"
)

// itemList is the paged, filterable catalogue panel. filtered is recomputed
// only when the items or the filter change.
type itemList struct {
	all      []items.Item
	filtered []items.Item
	filter   textinput.Model
	pager    paginator.Model
	loading  bool
}

func newItemList(pageSize int) itemList {
	filter := textinput.New()
	filter.Prompt = "/ "
	filter.Placeholder = "name or category"
	filter.CharLimit = 64

	pager := paginator.New()
	pager.Type = paginator.Arabic
	pager.PerPage = max(pageSize, 1)

	l := itemList{filter: filter, pager: pager}
	l.refilter()
	return l
}

// append adds a loaded batch and keeps the current page.
func (l *itemList) append(batch []items.Item) {
	l.all = append(l.all, batch...)
	l.refilter()
}

func (l *itemList) refilter() {
	l.filtered = items.Filter(l.all, l.filter.Value())
	l.pager.SetTotalPages(len(l.filtered))
	if l.pager.TotalPages < 1 {
		l.pager.TotalPages = 1
	}
	if l.pager.Page >= l.pager.TotalPages {
		l.pager.Page = l.pager.TotalPages - 1
	}
}

func (l *itemList) startFilter() tea.Cmd {
	return l.filter.Focus()
}

// updateFilter feeds a key to the filter input, resetting to the first page
// when the query changes.
func (l *itemList) updateFilter(msg tea.Msg) tea.Cmd {
	before := l.filter.Value()
	var cmd tea.Cmd
	l.filter, cmd = l.filter.Update(msg)
	if l.filter.Value() != before {
		l.pager.Page = 0
		l.refilter()
	}
	return cmd
}

func (l *itemList) stopFilter(clear bool) {
	l.filter.Blur()
	if clear && l.filter.Value() != "" {
		l.filter.Reset()
		l.pager.Page = 0
		l.refilter()
	}
}

func (l *itemList) page() []items.Item {
	start, end := l.pager.GetSliceBounds(len(l.filtered))
	return l.filtered[start:end]
}

func (l itemList) summary() components.ItemSummary {
	return components.ItemSummary{
		Loaded:     len(l.all),
		Matching:   len(l.filtered),
		TotalPrice: items.TotalPrice(l.filtered),
		Filter:     l.filter.Value(),
	}
}

func (l itemList) view(st Styles, focused, editing bool, spinner string) string {
	var b strings.Builder
	b.WriteString(st.PanelTitle.Render("Items"))
	b.WriteString("\n")

	if editing || l.filter.Value() != "" {
		b.WriteString(l.filter.View())
		b.WriteString("\n")
	}

	if len(l.all) == 0 && l.loading {
		b.WriteString(st.Muted.Render(spinner + " generating items..."))
		return b.String()
	}

	rows := l.page()
	if len(rows) == 0 {
		b.WriteString(st.Muted.Render("No items match."))
		b.WriteString("\n")
	}
	for _, item := range rows {
		line := fmt.Sprintf("%-10s %-12s", item.Name, item.Category)
		b.WriteString(st.Item.Render(line))
		b.WriteString(st.Price.Render(fmt.Sprintf("%8s", components.Thousands(item.Price))))
		b.WriteString("\n")
	}

	b.WriteString(st.Muted.Render(l.summary().View()))
	b.WriteString("\n")
	footer := "page " + l.pager.View()
	if l.loading {
		footer += "  " + spinner + " loading more"
	}
	b.WriteString(st.Muted.Render(footer))

	panel := st.Panel
	if focused {
		panel = st.FocusedPanel
	}
	return panel.Render(b.String())
}
