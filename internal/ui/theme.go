package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Brand colors
var (
	ColorBrandRed   = color.RGBA{R: 229, G: 9, B: 20, A: 255}
	ColorBackground = color.RGBA{R: 20, G: 20, B: 20, A: 255}
	ColorSurface    = color.RGBA{R: 38, G: 38, B: 38, A: 255}
	ColorMutedText  = color.RGBA{R: 179, G: 179, B: 179, A: 255}
)

// JetFlixTheme is a dark theme with the red brand accent. The variant is
// ignored; the app is always dark.
type JetFlixTheme struct{}

// NewJetFlixTheme creates the application theme
func NewJetFlixTheme() fyne.Theme {
	return &JetFlixTheme{}
}

// Color returns theme colors
func (t *JetFlixTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return ColorBrandRed
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	case theme.ColorNameBackground:
		return ColorBackground
	case theme.ColorNameOverlayBackground, theme.ColorNameMenuBackground, theme.ColorNameInputBackground:
		return ColorSurface
	case theme.ColorNameForeground:
		return color.White
	case theme.ColorNamePlaceHolder, theme.ColorNameDisabled:
		return ColorMutedText
	}

	return theme.DefaultTheme().Color(name, theme.VariantDark)
}

// Font returns theme fonts
func (t *JetFlixTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *JetFlixTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes, slightly tighter than the default
func (t *JetFlixTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameScrollBar:
		return 8
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 22
	case theme.SizeNameSubHeadingText:
		return 16
	case theme.SizeNameCaptionText:
		return 11
	case theme.SizeNameInputRadius:
		return 3
	case theme.SizeNameSelectionRadius:
		return 2
	}

	return theme.DefaultTheme().Size(name)
}
