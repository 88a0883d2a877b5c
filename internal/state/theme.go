package state

import "github.com/alexisbeaulieu97/statedeck/internal/ports"

// Mode is the display theme. Exactly two values exist.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// Other returns the opposite mode. Anything that is not dark flips to dark.
func (m Mode) Other() Mode {
	if m == ModeDark {
		return ModeLight
	}
	return ModeDark
}

// ThemeView is the read-only view of the theme slice.
type ThemeView interface {
	Mode() Mode
	Subscribe(fn func(Mode)) (unsubscribe func())
}

// ThemeOps is the operation set of the theme slice.
type ThemeOps interface {
	Toggle()
}

type themeSlice struct {
	mode *Observable[Mode]
	obs  *observer
}

func newThemeSlice(obs *observer) *themeSlice {
	return &themeSlice{mode: NewObservable(ModeLight), obs: obs}
}

func (s *themeSlice) Mode() Mode {
	return s.mode.Value()
}

func (s *themeSlice) Subscribe(fn func(Mode)) func() {
	return s.mode.AddListener(fn)
}

func (s *themeSlice) Toggle() {
	var next Mode
	s.mode.Update(func(current Mode) Mode {
		next = current.Other()
		return next
	})
	s.obs.emit(sliceTheme, "toggle", ports.EventThemeToggled, map[string]any{
		"mode": string(next),
	})
}
