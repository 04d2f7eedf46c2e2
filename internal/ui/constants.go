package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconRefresh  = "⟳"
	IconStar     = "★"
	IconLanguage = "🌐"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	RatingLabelFormat  = IconStar + " %s"
)

// Card and rail sizing
const (
	CardWidth  float32 = 120
	CardHeight float32 = 180

	// Mobile cards are larger to keep touch targets comfortable
	MobileCardWidth  float32 = 140
	MobileCardHeight float32 = 210

	RailSpacing float32 = 8

	BannerHeight     float32 = 260
	BackdropHeight   float32 = 200
	DetailSheetWidth float32 = 520
	DetailSheetH     float32 = 480
)

// Gesture thresholds
const (
	SwipeThreshold  float32 = 80
	RefreshCooldown         = 2 * time.Second
)

// Settings dialog sizing
const (
	SettingsDialogWidth  float32 = 500
	SettingsDialogHeight float32 = 460
)
