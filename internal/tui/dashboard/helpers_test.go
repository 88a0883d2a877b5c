package dashboard

import (
	"context"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/statedeck/internal/items"
	"github.com/alexisbeaulieu97/statedeck/internal/ports"
	"github.com/alexisbeaulieu97/statedeck/internal/state"
)

type stubSource struct {
	catalogue []items.Item
}

// Generate returns catalogue entries as if they were generated at offset.
func (s stubSource) Generate(n, offset int) []items.Item {
	out := make([]items.Item, 0, n)
	for i := 0; i < n; i++ {
		item := s.catalogue[(offset+i)%len(s.catalogue)]
		item.ID = offset + i
		out = append(out, item)
	}
	return out
}

var testCatalogue = stubSource{catalogue: []items.Item{
	{Name: "Lamp", Category: "Electronics", Price: 100},
	{Name: "Scarf", Category: "Clothing", Price: 20},
	{Name: "Novel", Category: "Books", Price: 15},
	{Name: "Bread", Category: "Food", Price: 3},
}}

type capturePublisher struct {
	mu     sync.Mutex
	events []ports.Event
}

func (p *capturePublisher) Publish(_ context.Context, event ports.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	data, _ := event.Payload().(map[string]any)
	p.events = append(p.events, ports.Event{Type: event.EventType(), Data: data})
	return nil
}

func (p *capturePublisher) Subscribe(string, ports.EventHandler) (ports.Subscription, error) {
	return nil, nil
}

func (p *capturePublisher) ofType(eventType string) []ports.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []ports.Event
	for _, e := range p.events {
		if e.Type == eventType {
			out = append(out, e)
		}
	}
	return out
}

type fixture struct {
	container *state.Container
	publisher *capturePublisher
	model     Model
}

func newFixture(t *testing.T, opts Options) *fixture {
	t.Helper()
	container := state.New()
	publisher := &capturePublisher{}
	m := NewModel(Deps{
		State:     container.Handles(),
		Restorer:  container,
		Items:     testCatalogue,
		Publisher: publisher,
	}, opts)
	t.Cleanup(m.Close)
	return &fixture{container: container, publisher: publisher, model: m}
}

func (f *fixture) send(t *testing.T, msg tea.Msg) tea.Cmd {
	t.Helper()
	next, cmd := f.model.Update(msg)
	m, ok := next.(Model)
	require.True(t, ok)
	f.model = m
	return cmd
}

func (f *fixture) press(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		f.send(t, keyMsg(k))
	}
}

func (f *fixture) typeText(t *testing.T, text string) {
	t.Helper()
	f.send(t, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+t":
		return tea.KeyMsg{Type: tea.KeyCtrlT}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

// collect runs cmd, flattening batches, and returns every message produced.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, collect(c)...)
	}
	return out
}
