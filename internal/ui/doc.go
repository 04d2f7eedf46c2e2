package ui

// Package ui contains the Fyne user interface: the home feed with its movie
// rails, the coming soon screen, the detail sheet and the settings dialog.
// Screens observe catalog coordinators and redraw on the UI goroutine.
// All UI strings are localized via Localization.
