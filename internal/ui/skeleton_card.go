package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// SkeletonCard is a grey placeholder shaped like a product card.
// Its blocks pulse between two opacities while the catalog loads.
type SkeletonCard struct {
	widget.BaseWidget

	opacity float32
	blocks  []*canvas.Rectangle
}

// NewSkeletonCard creates a placeholder card at full opacity
func NewSkeletonCard(imageHeight float32) *SkeletonCard {
	if imageHeight <= 0 {
		imageHeight = SkeletonImageHeight
	}

	sc := &SkeletonCard{opacity: 1}
	sc.blocks = []*canvas.Rectangle{
		sc.block(0, imageHeight),                         // image
		sc.block(0, SkeletonLineHeight),                  // name
		sc.block(SkeletonShortWidth, SkeletonLineHeight), // price
		sc.block(0, MinTouchTargetSize),                  // stepper
	}
	sc.ExtendBaseWidget(sc)
	return sc
}

func (sc *SkeletonCard) block(width, height float32) *canvas.Rectangle {
	rect := canvas.NewRectangle(SkeletonBlockColor)
	rect.CornerRadius = SkeletonCornerSize
	rect.SetMinSize(fyne.NewSize(width, height))
	return rect
}

// Opacity returns the current block opacity
func (sc *SkeletonCard) Opacity() float32 {
	return sc.opacity
}

// SetOpacity tints every block with the given alpha in [0, 1]
func (sc *SkeletonCard) SetOpacity(opacity float32) {
	if opacity == sc.opacity {
		return
	}
	sc.opacity = opacity
	fill := withAlpha(SkeletonBlockColor, opacity)
	for _, rect := range sc.blocks {
		rect.FillColor = fill
		rect.Refresh()
	}
}

// CreateRenderer creates the widget renderer
func (sc *SkeletonCard) CreateRenderer() fyne.WidgetRenderer {
	background := canvas.NewRectangle(CardBackground)
	background.CornerRadius = SkeletonCornerSize

	priceRow := container.NewHBox(sc.blocks[2], layout.NewSpacer())
	content := container.NewVBox(sc.blocks[0], sc.blocks[1], priceRow, sc.blocks[3])
	return widget.NewSimpleRenderer(container.NewStack(background, container.NewPadded(content)))
}

func withAlpha(c color.NRGBA, opacity float32) color.NRGBA {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	c.A = uint8(float32(c.A) * opacity)
	return c
}
