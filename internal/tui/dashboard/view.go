package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/statedeck/internal/state"
	"github.com/alexisbeaulieu97/statedeck/internal/tui/components"
)

// View renders the dashboard for the current theme.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	st := StylesFor(m.deps.State.Theme.Mode())

	sections := []string{m.headerView(st)}
	if m.focus == FocusLogin {
		sections = append(sections, m.login.view(st))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.profile.view(st, m.focus == FocusForm),
		"  ",
		m.list.view(st, m.focus == FocusItems || m.focus == FocusFilter, m.focus == FocusFilter, m.spinner.View()),
	)
	sections = append(sections, body)

	if toasts := m.toastsView(st); toasts != "" {
		sections = append(sections, toasts)
	}
	sections = append(sections, st.Footer.Render(m.help.View(m.keys)))

	return st.App.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) headerView(st Styles) string {
	mode := m.deps.State.Theme.Mode()

	session := st.Muted.Render("Not signed in (l to log in)")
	if user := m.deps.State.User.Current(); user != nil {
		session = fmt.Sprintf("%s <%s>  %s", user.Name, user.Email, st.Muted.Render("(o to log out)"))
	}

	theme := "light"
	if mode == state.ModeDark {
		theme = "dark"
	}
	return st.Header.Render(lipgloss.JoinHorizontal(lipgloss.Top,
		st.Title.Render("statedeck"),
		session,
		st.Muted.Render("  theme: "+theme),
	))
}

func (m Model) toastsView(st Styles) string {
	stack := components.ToastStack{
		Notifications: m.deps.State.Notifications.Snapshot(),
		Unicode:       m.opts.UseUnicode,
	}
	toasts, hidden := stack.Visible()
	if len(toasts) == 0 {
		return ""
	}

	lines := make([]string, 0, len(toasts)+1)
	if hidden > 0 {
		lines = append(lines, st.Muted.Render(fmt.Sprintf("+%d earlier", hidden)))
	}
	for _, toast := range toasts {
		lines = append(lines, st.ToastStyle(toast.Notification.Type).Render(toast.Text))
	}
	return strings.Join(lines, "\n")
}
