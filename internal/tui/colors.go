package tui

// Color constants for the todo theme
const (
	ColorBorder = "#3A3F55" // Grey-blue

	// Text
	ColorPrimaryText   = "#E6EAF2"
	ColorSecondaryText = "#B1B8C7"
	ColorMutedText     = "#6D7383"
	ColorHelpText      = "240"

	// Accent (purple)
	ColorAccentMain   = "#7C3AED"
	ColorAccentBright = "#A78BFA"
	ColorAccentGlow   = "#EAE6FF"

	// State
	ColorPending = "#EF4444"
	ColorDone    = "#22C55E"
	ColorWarning = "#F59E0B"
)
