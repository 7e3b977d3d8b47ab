// Package lineutil builds LINE Flex messages for platform-specific fulfillment payloads.
package lineutil

// Spacing on a 4px grid.
const (
	SpacingS = "8px"
	SpacingL = "16px"

	LineSpacingNormal = "6px"
)

// UW-Madison red with LINE gray text.
const (
	ColorBadgerRed = "#C5050C"
	ColorWhite     = "#FFFFFF"
	ColorGray900   = "#111111"

	ColorPrimary  = ColorBadgerRed
	ColorText     = ColorGray900
	ColorHeroBg   = ColorBadgerRed
	ColorHeroText = ColorWhite
)
