package ui

import (
	"image/color"

	"Pomodoro/timer"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// CustomTheme paints the default theme in the pastel palette. It always
// renders the light variant.
type CustomTheme struct {
	fyne.Theme
}

// NewCustomTheme creates a new instance of the custom theme.
func NewCustomTheme() fyne.Theme {
	return &CustomTheme{Theme: theme.DefaultTheme()}
}

// Color returns the palette colour for the given name.
func (t *CustomTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return timer.BackgroundColor
	case theme.ColorNameButton:
		return timer.Palette[1]
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return timer.Palette[4]
	case theme.ColorNameHover:
		return timer.Palette[2]
	}
	return t.Theme.Color(name, theme.VariantLight)
}
