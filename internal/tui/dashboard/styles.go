package dashboard

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/statedeck/internal/state"
)

// palette is the colour set for one theme mode.
type palette struct {
	text       lipgloss.Color
	muted      lipgloss.Color
	background lipgloss.Color
	primary    lipgloss.Color
	accent     lipgloss.Color
	border     lipgloss.Color
	success    lipgloss.Color
	info       lipgloss.Color
	warning    lipgloss.Color
	danger     lipgloss.Color
}

var (
	lightPalette = palette{
		text:       lipgloss.Color("#111827"),
		muted:      lipgloss.Color("#6b7280"),
		background: lipgloss.Color("#f3f4f6"),
		primary:    lipgloss.Color("#2563eb"),
		accent:     lipgloss.Color("#7c3aed"),
		border:     lipgloss.Color("#d1d5db"),
		success:    lipgloss.Color("#16a34a"),
		info:       lipgloss.Color("#0284c7"),
		warning:    lipgloss.Color("#ca8a04"),
		danger:     lipgloss.Color("#dc2626"),
	}

	darkPalette = palette{
		text:       lipgloss.Color("#f9fafb"),
		muted:      lipgloss.Color("#9ca3af"),
		background: lipgloss.Color("#111827"),
		primary:    lipgloss.Color("#60a5fa"),
		accent:     lipgloss.Color("#a78bfa"),
		border:     lipgloss.Color("#374151"),
		success:    lipgloss.Color("#4ade80"),
		info:       lipgloss.Color("#38bdf8"),
		warning:    lipgloss.Color("#facc15"),
		danger:     lipgloss.Color("#f87171"),
	}
)

// Styles holds every style the dashboard renders with, for one mode.
type Styles struct {
	App          lipgloss.Style
	Title        lipgloss.Style
	Header       lipgloss.Style
	Muted        lipgloss.Style
	Panel        lipgloss.Style
	FocusedPanel lipgloss.Style
	PanelTitle   lipgloss.Style
	Label        lipgloss.Style
	Item         lipgloss.Style
	Price        lipgloss.Style
	Checked      lipgloss.Style
	Cursor       lipgloss.Style
	Modal        lipgloss.Style
	Footer       lipgloss.Style
	Toast        map[state.NotificationType]lipgloss.Style
}

var (
	lightStyles = newStyles(lightPalette)
	darkStyles  = newStyles(darkPalette)
)

// StylesFor returns the styles matching mode.
func StylesFor(mode state.Mode) Styles {
	if mode == state.ModeDark {
		return darkStyles
	}
	return lightStyles
}

func newStyles(p palette) Styles {
	panel := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(p.border).
		Padding(0, 1)

	toast := lipgloss.NewStyle().
		Bold(true).
		Padding(0, 1).
		BorderStyle(lipgloss.NormalBorder()).
		BorderLeft(true).
		BorderTop(false).
		BorderRight(false).
		BorderBottom(false)

	return Styles{
		App: lipgloss.NewStyle().
			Foreground(p.text).
			Background(p.background),
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.primary).
			PaddingRight(2),
		Header: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(p.border).
			MarginBottom(1),
		Muted: lipgloss.NewStyle().
			Foreground(p.muted),
		Panel: panel,
		FocusedPanel: panel.
			BorderForeground(p.primary),
		PanelTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.accent).
			MarginBottom(1),
		Label: lipgloss.NewStyle().
			Foreground(p.muted).
			Width(13),
		Item: lipgloss.NewStyle().
			Foreground(p.text),
		Price: lipgloss.NewStyle().
			Foreground(p.success),
		Checked: lipgloss.NewStyle().
			Foreground(p.success).
			Bold(true),
		Cursor: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true),
		Modal: lipgloss.NewStyle().
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(p.accent).
			Padding(1, 2),
		Footer: lipgloss.NewStyle().
			Foreground(p.muted).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(p.border).
			MarginTop(1),
		Toast: map[state.NotificationType]lipgloss.Style{
			state.NotificationSuccess: toast.Foreground(p.success).BorderForeground(p.success),
			state.NotificationInfo:    toast.Foreground(p.info).BorderForeground(p.info),
			state.NotificationWarning: toast.Foreground(p.warning).BorderForeground(p.warning),
			state.NotificationError:   toast.Foreground(p.danger).BorderForeground(p.danger),
		},
	}
}

// ToastStyle returns the style for kind, falling back to info.
func (s Styles) ToastStyle(kind state.NotificationType) lipgloss.Style {
	if style, ok := s.Toast[kind]; ok {
		return style
	}
	return s.Toast[state.NotificationInfo]
}
