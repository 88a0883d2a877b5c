package dashboard

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/statedeck/internal/ports"
	"github.com/alexisbeaulieu97/statedeck/internal/state"
)

// Update handles bubbletea messages and calls state operations.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case StateChangedMsg:
		m.revision++
		return m, waitForChange(m.changes)
	case ItemsLoadedMsg:
		return m.handleItemsLoaded(msg), nil
	case spinner.TickMsg:
		if !m.list.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	case "ctrl+t":
		m.deps.State.ThemeOps.Toggle()
		return m, nil
	}

	switch m.focus {
	case FocusFilter:
		return m.handleFilterKey(msg)
	case FocusForm:
		return m.handleFormKey(msg)
	case FocusLogin:
		return m.handleLoginKey(msg)
	default:
		return m.handleItemsKey(msg)
	}
}

func (m Model) handleItemsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.ToggleTheme):
		m.deps.State.ThemeOps.Toggle()
	case key.Matches(msg, m.keys.Login):
		if m.deps.State.User.Current() == nil {
			var cmd tea.Cmd
			m.login, cmd = m.login.open()
			m.focus = FocusLogin
			return m, cmd
		}
	case key.Matches(msg, m.keys.Logout):
		m.deps.State.UserOps.Logout()
	case key.Matches(msg, m.keys.Dismiss):
		m.dismissNewest()
	case key.Matches(msg, m.keys.Undo):
		m.undoDismiss()
	case key.Matches(msg, m.keys.LoadMore):
		return m.loadMore()
	case key.Matches(msg, m.keys.Filter):
		m.focus = FocusFilter
		cmd := m.list.startFilter()
		return m, cmd
	case key.Matches(msg, m.keys.NextPage):
		m.list.pager.NextPage()
	case key.Matches(msg, m.keys.PrevPage):
		m.list.pager.PrevPage()
	case key.Matches(msg, m.keys.FocusForm):
		m.focus = FocusForm
		cmd := m.profile.focus()
		return m, cmd
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m Model) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.list.stopFilter(true)
		m.focus = FocusItems
		return m, nil
	case tea.KeyEnter:
		m.list.stopFilter(false)
		m.focus = FocusItems
		return m, nil
	}
	cmd := m.list.updateFilter(msg)
	return m, cmd
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.profile.blur()
		m.focus = FocusItems
		return m, nil
	case "tab", "down":
		cmd, inside := m.profile.next()
		if !inside {
			m.focus = FocusItems
		}
		return m, cmd
	case "shift+tab", "up":
		cmd := m.profile.prev()
		return m, cmd
	case "enter":
		m.submitProfile()
		return m, nil
	case " ":
		if m.profile.field == fieldPreferences {
			m.profile.toggleCurrent()
			return m, nil
		}
	}
	cmd := m.profile.updateInput(msg)
	return m, cmd
}

func (m Model) handleLoginKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		m.focus = FocusItems
		return m, nil
	}

	var (
		cmd   tea.Cmd
		creds *credentials
	)
	m.login, cmd, creds = m.login.update(msg)
	if creds != nil {
		m.deps.State.UserOps.Login(creds.Email, creds.Password)
		m.focus = FocusItems
		return m, nil
	}
	return m, cmd
}

func (m *Model) submitProfile() {
	ops := m.deps.State.NotificationOps
	profile, err := m.profile.submit()
	if err != nil {
		ops.Add(err.Error(), state.NotificationWarning)
		return
	}
	m.deps.Logger.Info(m.deps.Ctx, "profile submitted",
		"name", profile.Name,
		"age", profile.Age,
		"preferences", len(profile.Preferences),
	)
	ops.Add(SubmitSuccessMessage, state.NotificationSuccess)
	m.profile.reset()
	m.profile.focusField(fieldName)
}

func (m *Model) dismissNewest() {
	list := m.deps.State.Notifications.Snapshot()
	if len(list) == 0 {
		return
	}
	newest := list[len(list)-1]
	m.deps.State.NotificationOps.Remove(newest.ID)
	m.lastDismissed = &newest
}

func (m *Model) undoDismiss() {
	if m.lastDismissed == nil || m.deps.Restorer == nil {
		return
	}
	restored := *m.lastDismissed
	m.lastDismissed = nil
	if err := m.deps.Restorer.RestoreNotification(restored); err != nil {
		m.deps.Logger.Warn(m.deps.Ctx, "undo dismiss failed", "error", err, "id", restored.ID)
	}
}

func (m Model) loadMore() (tea.Model, tea.Cmd) {
	if m.list.loading {
		return m, nil
	}
	m.list.loading = true
	return m, tea.Batch(
		loadItemsCmd(m.deps.Items, m.opts.BatchSize, len(m.list.all)),
		m.spinner.Tick,
	)
}

// handleItemsLoaded appends a batch. Batches whose offset no longer matches
// the list length are stale and dropped.
func (m Model) handleItemsLoaded(msg ItemsLoadedMsg) Model {
	if msg.Offset != len(m.list.all) {
		m.deps.Logger.Debug(m.deps.Ctx, "dropping stale item batch",
			"offset", msg.Offset,
			"loaded", len(m.list.all),
		)
		return m
	}

	m.list.loading = false
	m.list.append(msg.Items)

	if m.deps.Publisher != nil {
		event := ports.Event{Type: ports.EventItemsLoaded, Data: map[string]any{
			"slice":     sliceItems,
			"operation": "load",
			"offset":    msg.Offset,
			"batch":     len(msg.Items),
			"count":     len(m.list.all),
		}}
		if err := m.deps.Publisher.Publish(m.deps.Ctx, event); err != nil {
			m.deps.Logger.Warn(m.deps.Ctx, "publish items event failed", "error", err)
		}
	}
	return m
}
