package splash

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// launcherTheme keeps the platform defaults but uses the splash accent colour.
// Embedding hosts keep their own theme; the standalone launcher installs this one.
type launcherTheme struct{}

// NewTheme returns the theme used by the standalone launcher.
func NewTheme() fyne.Theme {
	return launcherTheme{}
}

func (launcherTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return memoryColor
	case theme.ColorNameDisabled:
		if variant == theme.VariantLight {
			return color.NRGBA{R: 120, G: 120, B: 120, A: 255}
		}
		return color.NRGBA{R: 160, G: 160, B: 160, A: 255}
	}
	return theme.DefaultTheme().Color(name, variant)
}

func (launcherTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (launcherTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (launcherTheme) Size(name fyne.ThemeSizeName) float32 {
	if name == theme.SizeNamePadding {
		return 6
	}
	return theme.DefaultTheme().Size(name)
}
