package ui

import (
	"fyne.io/fyne/v2"
)

// isMobileDevice reports whether the app runs on a phone or tablet
func isMobileDevice() bool {
	app := fyne.CurrentApp()
	if app == nil {
		return false
	}
	return fyne.CurrentDevice().IsMobile()
}

// cardSize returns the poster card size for the current device
func cardSize() fyne.Size {
	if isMobileDevice() {
		return fyne.NewSize(MobileCardWidth, MobileCardHeight)
	}
	return fyne.NewSize(CardWidth, CardHeight)
}
