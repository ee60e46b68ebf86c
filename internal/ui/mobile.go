package ui

import (
	"fyne.io/fyne/v2"
)

// MobileUI provides mobile-specific sizing for the storefront grid
type MobileUI struct {
	app fyne.App
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(app fyne.App) *MobileUI {
	return &MobileUI{app: app}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// GetMobilePadding returns the padding around the grid
func (m *MobileUI) GetMobilePadding() float32 {
	if m.IsMobileDevice() {
		return 12 // Larger padding for thumbs
	}
	return 8
}

// CardImageHeight returns the product image height for the current device
func (m *MobileUI) CardImageHeight() float32 {
	if m.IsMobileDevice() {
		return MobileCardImageHeight
	}
	return CardImageHeight
}

// IsLandscape returns true if device is in landscape orientation
func (m *MobileUI) IsLandscape() bool {
	orientation := fyne.CurrentDevice().Orientation()
	return orientation == fyne.OrientationHorizontalLeft || orientation == fyne.OrientationHorizontalRight
}
