package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// StorefrontTheme is a slate-toned theme with compact spacing for dense card grids
type StorefrontTheme struct{}

// NewStorefrontTheme creates a new storefront theme
func NewStorefrontTheme() fyne.Theme {
	return &StorefrontTheme{}
}

// Color returns theme colors
func (t *StorefrontTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameError:
		return color.RGBA{R: 220, G: 38, B: 38, A: 255} // favorite heart, alerts
	case theme.ColorNamePrimary:
		return color.RGBA{R: 51, G: 65, B: 85, A: 255} // slate-700
	case theme.ColorNameButton:
		if variant == theme.VariantDark {
			return color.RGBA{R: 51, G: 65, B: 85, A: 255}
		}
		return color.RGBA{R: 226, G: 232, B: 240, A: 255} // slate-200
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 15, G: 23, B: 42, A: 255} // slate-900
		}
		return color.RGBA{R: 241, G: 245, B: 249, A: 255} // slate-100
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 241, G: 245, B: 249, A: 255}
		}
		return color.RGBA{R: 15, G: 23, B: 42, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *StorefrontTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *StorefrontTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *StorefrontTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 20
	case theme.SizeNameCaptionText:
		return 10
	case theme.SizeNameInputRadius:
		return 6
	}

	return theme.DefaultTheme().Size(name)
}
