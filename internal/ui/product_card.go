package ui

import (
	"log"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/storefront/internal/screen"
)

// ProductCard renders one product with its favorite toggle and quantity stepper
type ProductCard struct {
	widget.BaseWidget

	card        screen.Card
	imageURL    string
	imageHeight float32

	// UI components
	imageHolder *fyne.Container
	favoriteBtn *widget.Button
	nameLabel   *widget.Label
	priceLabel  *widget.Label
	ratingLabel *widget.Label
	qtyLabel    *widget.Label
	minusBtn    *widget.Button
	plusBtn     *widget.Button

	// Callbacks
	onIncrement      func(id string)
	onDecrement      func(id string)
	onToggleFavorite func(id string)
}

// NewProductCard creates a new product card widget
func NewProductCard(imageHeight float32) *ProductCard {
	if imageHeight <= 0 {
		imageHeight = CardImageHeight
	}
	pc := &ProductCard{imageHeight: imageHeight}
	pc.ExtendBaseWidget(pc)
	pc.createUI()
	return pc
}

// SetCallbacks sets the action callbacks
func (pc *ProductCard) SetCallbacks(onIncrement, onDecrement, onToggleFavorite func(id string)) {
	pc.onIncrement = onIncrement
	pc.onDecrement = onDecrement
	pc.onToggleFavorite = onToggleFavorite
}

// Card returns the data currently shown
func (pc *ProductCard) Card() screen.Card {
	return pc.card
}

// Update shows new card data; the image reloads only when its URL changed
func (pc *ProductCard) Update(card screen.Card) {
	pc.card = card

	pc.nameLabel.SetText(card.Name)
	pc.priceLabel.SetText(PricePrefix + card.Price)
	pc.qtyLabel.SetText(strconv.Itoa(card.Quantity))
	if card.Favorite {
		pc.favoriteBtn.SetText(IconHeartFilled)
		pc.favoriteBtn.Importance = widget.DangerImportance
	} else {
		pc.favoriteBtn.SetText(IconHeartOutline)
		pc.favoriteBtn.Importance = widget.LowImportance
	}
	pc.favoriteBtn.Refresh()

	if card.ImageURL != pc.imageURL {
		pc.imageURL = card.ImageURL
		pc.loadImage(card.ImageURL)
	}
	pc.Refresh()
}

// createUI creates the UI components
func (pc *ProductCard) createUI() {
	pc.imageHolder = container.NewStack(pc.placeholder())

	pc.favoriteBtn = widget.NewButton(IconHeartOutline, func() {
		if pc.onToggleFavorite != nil && pc.card.ID != "" {
			pc.onToggleFavorite(pc.card.ID)
		}
	})
	pc.favoriteBtn.Importance = widget.LowImportance

	pc.nameLabel = widget.NewLabel("")
	pc.nameLabel.TextStyle = fyne.TextStyle{Bold: true}
	pc.nameLabel.Truncation = fyne.TextTruncateEllipsis

	pc.priceLabel = widget.NewLabel("")
	pc.ratingLabel = widget.NewLabel(IconStar + " " + StaticRating)
	pc.ratingLabel.Alignment = fyne.TextAlignTrailing

	pc.qtyLabel = widget.NewLabel("0")
	pc.qtyLabel.Alignment = fyne.TextAlignCenter

	pc.minusBtn = widget.NewButton(IconMinus, func() {
		if pc.onDecrement != nil && pc.card.ID != "" {
			pc.onDecrement(pc.card.ID)
		}
	})
	pc.plusBtn = widget.NewButton(IconPlus, func() {
		if pc.onIncrement != nil && pc.card.ID != "" {
			pc.onIncrement(pc.card.ID)
		}
	})
}

func (pc *ProductCard) placeholder() fyne.CanvasObject {
	rect := canvas.NewRectangle(ImagePlaceholder)
	rect.SetMinSize(fyne.NewSize(0, pc.imageHeight))
	return rect
}

// loadImage fetches the product image off the UI thread
func (pc *ProductCard) loadImage(url string) {
	pc.imageHolder.Objects = []fyne.CanvasObject{pc.placeholder()}
	pc.imageHolder.Refresh()
	if url == "" {
		return
	}

	uri, err := storage.ParseURI(url)
	if err != nil {
		log.Printf("Invalid product image URL: id=%s url=%s err=%v", pc.card.ID, url, err)
		return
	}

	go func() {
		img := canvas.NewImageFromURI(uri)
		img.FillMode = canvas.ImageFillContain
		img.SetMinSize(fyne.NewSize(0, pc.imageHeight))

		fyne.Do(func() {
			// a newer URL may have replaced this one while loading
			if pc.imageURL != url {
				return
			}
			pc.imageHolder.Objects = []fyne.CanvasObject{pc.placeholder(), img}
			pc.imageHolder.Refresh()
		})
	}()
}

// CreateRenderer creates the widget renderer
func (pc *ProductCard) CreateRenderer() fyne.WidgetRenderer {
	background := canvas.NewRectangle(CardBackground)
	background.CornerRadius = SkeletonCornerSize

	imageRow := container.NewStack(
		pc.imageHolder,
		container.NewBorder(nil, nil, nil, container.NewVBox(pc.favoriteBtn), nil),
	)
	priceRow := container.NewBorder(nil, nil, nil, pc.ratingLabel, pc.priceLabel)
	stepper := container.NewBorder(nil, nil, pc.minusBtn, pc.plusBtn, pc.qtyLabel)

	content := container.NewVBox(imageRow, pc.nameLabel, priceRow, stepper)
	return widget.NewSimpleRenderer(container.NewStack(background, container.NewPadded(content)))
}
