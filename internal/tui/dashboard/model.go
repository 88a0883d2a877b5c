// Package dashboard is the statedeck terminal screen. Every widget reads and
// mutates the injected state handles; nothing here owns application state.
package dashboard

import (
	"context"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/statedeck/internal/items"
	"github.com/alexisbeaulieu97/statedeck/internal/ports"
	"github.com/alexisbeaulieu97/statedeck/internal/state"
)

const (
	sliceItems    = "items"
	changeBacklog = 16
)

// ItemSource produces item batches for the list panel.
type ItemSource interface {
	Generate(n, offset int) []items.Item
}

// NotificationRestorer re-inserts a dismissed notification.
type NotificationRestorer interface {
	RestoreNotification(n state.Notification) error
}

// Deps are the collaborators injected into the dashboard.
type Deps struct {
	Ctx       context.Context
	State     state.Handles
	Restorer  NotificationRestorer
	Items     ItemSource
	Publisher ports.EventPublisher
	Logger    ports.Logger
}

// Options tune the dashboard.
type Options struct {
	InitialItems int
	BatchSize    int
	PageSize     int
	UseUnicode   bool
}

// DefaultOptions mirrors the default configuration.
func DefaultOptions() Options {
	return Options{InitialItems: 1000, BatchSize: 1000, PageSize: 10, UseUnicode: true}
}

// Model is the bubbletea model for the dashboard screen.
type Model struct {
	deps Deps
	opts Options

	keys    keyMap
	help    help.Model
	spinner spinner.Model
	focus   Focus

	login   loginForm
	profile profileForm
	list    itemList

	changes chan string
	unsubs  *subscriptions

	lastDismissed *state.Notification
	revision      int
	width         int
	height        int
	quitting      bool
}

type subscriptions struct {
	once  sync.Once
	funcs []func()
	ch    chan string
}

func (s *subscriptions) close() {
	s.once.Do(func() {
		for _, unsubscribe := range s.funcs {
			unsubscribe()
		}
		close(s.ch)
	})
}

// NewModel builds the dashboard and subscribes it to every state slice.
// Call Close when the program exits.
func NewModel(deps Deps, opts Options) Model {
	if deps.Ctx == nil {
		deps.Ctx = context.Background()
	}
	if deps.Logger == nil {
		deps.Logger = ports.NopLogger()
	}
	if deps.Items == nil {
		deps.Items = items.NewGenerator(0)
	}
	defaults := DefaultOptions()
	if opts.BatchSize <= 0 {
		opts.BatchSize = defaults.BatchSize
	}
	if opts.PageSize <= 0 {
		opts.PageSize = defaults.PageSize
	}
	if opts.InitialItems < 0 {
		opts.InitialItems = 0
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	if !opts.UseUnicode {
		sp.Spinner = spinner.Line
	}

	changes := make(chan string, changeBacklog)
	subs := &subscriptions{ch: changes}
	notify := func(slice string) {
		select {
		case changes <- slice:
		default:
			// A redraw is already queued.
		}
	}
	subs.funcs = append(subs.funcs,
		deps.State.Theme.Subscribe(func(state.Mode) { notify("theme") }),
		deps.State.User.Subscribe(func(*state.User) { notify("user") }),
		deps.State.Notifications.Subscribe(func([]state.Notification) { notify("notifications") }),
	)

	list := newItemList(opts.PageSize)
	list.loading = opts.InitialItems > 0

	return Model{
		deps:    deps,
		opts:    opts,
		keys:    defaultKeyMap(),
		help:    help.New(),
		spinner: sp,
		focus:   FocusItems,
		login:   newLoginForm(),
		profile: newProfileForm(),
		list:    list,
		changes: changes,
		unsubs:  subs,
	}
}

// Init starts listening for state changes and loads the first item batch.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{waitForChange(m.changes)}
	if m.opts.InitialItems > 0 {
		cmds = append(cmds, loadItemsCmd(m.deps.Items, m.opts.InitialItems, 0), m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

// Close removes the dashboard's state subscriptions.
func (m Model) Close() {
	if m.unsubs != nil {
		m.unsubs.close()
	}
}

// Focus reports which panel receives key presses.
func (m Model) Focus() Focus {
	return m.focus
}

// LoadedItems returns the number of items in the list.
func (m Model) LoadedItems() int {
	return len(m.list.all)
}

// VisibleItems returns the items on the current page.
func (m Model) VisibleItems() []items.Item {
	return m.list.page()
}

// Loading reports whether an item batch is being generated.
func (m Model) Loading() bool {
	return m.list.loading
}

// Revision counts state change notifications handled so far.
func (m Model) Revision() int {
	return m.revision
}
