// Package theme holds the colour palettes used by the terminal UI.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme defines customizable colors for rendering.
type Theme struct {
	AccentColor    string `json:"accentColor"`
	HighlightColor string `json:"highlightColor"`
	TextColor      string `json:"textColor"`
	FaintColor     string `json:"faintColor"`
	SuccessColor   string `json:"successColor"`
	ErrorColor     string `json:"errorColor"`
	DividerColor   string `json:"dividerColor"`
	ModalBgColor   string `json:"modalBgColor"`
}

func darkTheme() Theme {
	return Theme{
		AccentColor:    "135", // purple
		HighlightColor: "205", // pink
		TextColor:      "252",
		FaintColor:     "245",
		SuccessColor:   "42",
		ErrorColor:     "196",
		DividerColor:   "240",
		ModalBgColor:   "234",
	}
}

func lightTheme() Theme {
	return Theme{
		AccentColor:    "91",
		HighlightColor: "162",
		TextColor:      "235",
		FaintColor:     "243",
		SuccessColor:   "28",
		ErrorColor:     "160",
		DividerColor:   "250",
		ModalBgColor:   "255",
	}
}

// GetTheme returns the named base theme. Unknown names get the dark theme.
func GetTheme(name string) Theme {
	switch name {
	case "light":
		return lightTheme()
	default:
		return darkTheme()
	}
}

// DefaultTheme is the dark theme.
func DefaultTheme() Theme {
	return darkTheme()
}

func (t Theme) fg(c string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
}

func (t Theme) AccentText(s string) string {
	return t.fg(t.AccentColor).Render(s)
}

func (t Theme) HighlightText(s string) string {
	return t.fg(t.HighlightColor).Render(s)
}

func (t Theme) FaintText(s string) string {
	return t.fg(t.FaintColor).Render(s)
}

func (t Theme) SuccessText(s string) string {
	return t.fg(t.SuccessColor).Render(s)
}

func (t Theme) ErrorText(s string) string {
	return t.fg(t.ErrorColor).Render(s)
}

func (t Theme) DividerText(s string) string {
	return t.fg(t.DividerColor).Render(s)
}

// Title renders s as a bold accent heading.
func (t Theme) Title(s string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.AccentColor)).Render(s)
}

// Button renders a clickable control label. Inactive buttons are dimmed.
func (t Theme) Button(label string, active bool) string {
	st := lipgloss.NewStyle().Padding(0, 1)
	if active {
		st = st.Foreground(lipgloss.Color(t.TextColor)).Background(lipgloss.Color(t.AccentColor))
	} else {
		st = st.Foreground(lipgloss.Color(t.FaintColor)).Background(lipgloss.Color(t.ModalBgColor))
	}
	return st.Render(label)
}

// CardBorder returns the border colour for a grid card.
func (t Theme) CardBorder(selected bool) lipgloss.Color {
	if selected {
		return lipgloss.Color(t.HighlightColor)
	}
	return lipgloss.Color(t.DividerColor)
}
