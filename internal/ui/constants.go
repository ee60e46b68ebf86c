package ui

import "image/color"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconHeartFilled  = "♥"
	IconHeartOutline = "♡"
	IconStar         = "★"
	IconMinus        = "−"
	IconPlus         = "+"
	IconLanguage     = "🌐"
)

// Text fragments
const (
	PricePrefix  = "$"
	StaticRating = "4.5"
)

// Layout sizing (cards / grid)
const (
	CardImageHeight float32 = 120
	CardMinHeight   float32 = 220
	GridRowGap      float32 = 10
	FooterHeight    float32 = 40

	SkeletonImageHeight float32 = 120
	SkeletonLineHeight  float32 = 14
	SkeletonShortWidth  float32 = 60
	SkeletonCornerSize  float32 = 6

	// Mobile-specific sizing
	MobileCardImageHeight float32 = 140

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
)

// Skeleton block tints
var (
	SkeletonBlockColor = color.NRGBA{R: 203, G: 213, B: 225, A: 255}
	CardBackground     = color.NRGBA{R: 248, G: 250, B: 252, A: 255}
	ImagePlaceholder   = color.NRGBA{R: 226, G: 232, B: 240, A: 255}
)

