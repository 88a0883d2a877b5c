package state

import (
	"context"
	"sync"
	"time"

	"github.com/alexisbeaulieu97/statedeck/internal/ports"
)

// fixedClock returns a clock stuck at ms milliseconds after the epoch.
func fixedClock(ms int64) func() time.Time {
	return func() time.Time { return time.UnixMilli(ms) }
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []ports.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event ports.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	data, _ := event.Payload().(map[string]any)
	p.events = append(p.events, ports.Event{Type: event.EventType(), Data: data})
	return p.err
}

func (p *recordingPublisher) Subscribe(string, ports.EventHandler) (ports.Subscription, error) {
	return nil, nil
}

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}
