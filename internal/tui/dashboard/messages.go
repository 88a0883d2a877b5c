package dashboard

import "github.com/alexisbeaulieu97/statedeck/internal/items"

// Focus names the panel receiving key presses.
type Focus int

const (
	FocusItems Focus = iota
	FocusFilter
	FocusForm
	FocusLogin
)

// StateChangedMsg reports that a state slice was republished.
type StateChangedMsg struct {
	Slice string
}

// ItemsLoadedMsg carries a generated batch starting at Offset.
type ItemsLoadedMsg struct {
	Offset int
	Items  []items.Item
}
