package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Drawer DrawerTheme
	Header lipgloss.Style
	Footer FooterTheme
	Card   CardTheme
	Modal  ModalTheme
}

// DrawerTheme styles the side drawer listing the screens.
type DrawerTheme struct {
	Frame    lipgloss.Style
	Item     lipgloss.Style
	Selected lipgloss.Style
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
	Notice lipgloss.Style
}

// CardTheme styles the dish card and its comments.
type CardTheme struct {
	Frame  lipgloss.Style
	Title  lipgloss.Style
	Body   lipgloss.Style
	Meta   lipgloss.Style
	Heart  lipgloss.Style
	Stars  lipgloss.Style
	Byline lipgloss.Style
}

// ModalTheme styles centered modal overlays.
type ModalTheme struct {
	Frame   lipgloss.Style
	Title   lipgloss.Style
	Body    lipgloss.Style
	Focused lipgloss.Style
	Error   lipgloss.Style
	Button  lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	accent := lipgloss.Color("#512DA8")
	highlight := lipgloss.Color("212")

	return Theme{
		Drawer: DrawerTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), false, true, false, false).
				BorderForeground(lipgloss.Color("240")).
				Padding(0, 1),
			Item:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
			Selected: lipgloss.NewStyle().Foreground(highlight).Bold(true),
		},
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("255")).
			Background(accent).
			Padding(0, 1),
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
			Notice: lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
		},
		Card: CardTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1),
			Title:  lipgloss.NewStyle().Bold(true),
			Body:   lipgloss.NewStyle(),
			Meta:   lipgloss.NewStyle().Faint(true),
			Heart:  lipgloss.NewStyle().Foreground(lipgloss.Color("197")),
			Stars:  lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
			Byline: lipgloss.NewStyle().Faint(true).Italic(true),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(accent).
				Padding(1, 2),
			Title:   lipgloss.NewStyle().Bold(true),
			Body:    lipgloss.NewStyle(),
			Focused: lipgloss.NewStyle().Foreground(highlight),
			Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
			Button:  lipgloss.NewStyle().Bold(true).Foreground(accent),
		},
	}
}
