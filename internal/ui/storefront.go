package ui

import (
	"context"
	"image/color"
	"log"
	"sort"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/storefront/internal/config"
	"github.com/ytget/storefront/internal/screen"
)

// Card size presets offered in the File menu; zero clears the override
var cardSizePresets = []struct {
	key   string
	width float32
}{
	{KeyCardCompact, 150},
	{KeyCardDefault, 0},
	{KeyCardLarge, 240},
}

// StorefrontUI represents the main storefront window content
type StorefrontUI struct {
	window       fyne.Window
	app          fyne.App
	settings     *config.Settings
	localization *Localization
	mobile       *MobileUI
	screen       *screen.Screen
	viewport     *ViewportWatcher

	header     *widget.Label
	emptyLabel *widget.Label
	body       *fyne.Container

	// Current grid, rebuilt only when its structure changes
	structure screen.Structure
	built     bool
	cards     []*ProductCard
	skeletons []*SkeletonCard

	alerts   int
	stopOnce sync.Once
}

// NewStorefrontUI creates the storefront UI for scr inside window
func NewStorefrontUI(window fyne.Window, app fyne.App, scr *screen.Screen) *StorefrontUI {
	settings := config.NewSettings(app)

	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &StorefrontUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		mobile:       NewMobileUI(app),
		screen:       scr,
		viewport:     NewViewportWatcher(),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	// Screen callbacks arrive from the loader and timer goroutines
	scr.SetChangeCallback(func() {
		fyne.Do(ui.render)
	})

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *StorefrontUI) setupUI() {
	ui.createMenu()

	ui.header = widget.NewLabel(ui.localization.GetText(KeyProducts))
	ui.header.TextStyle = fyne.TextStyle{Bold: true}
	ui.header.SizeName = theme.SizeNameHeadingText

	ui.emptyLabel = widget.NewLabel(ui.localization.GetText(KeyNoItemsFound))
	ui.emptyLabel.Alignment = fyne.TextAlignCenter

	var top fyne.CanvasObject = ui.header
	if logo, err := LoadLogoResource(); err == nil {
		logoImage := canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
		top = container.NewBorder(nil, nil, logoImage, nil, ui.header)
	}

	ui.body = container.New(ui.viewport)
	pad := ui.mobile.GetMobilePadding()
	padded := container.New(layout.NewCustomPaddedLayout(pad, pad, pad, pad), ui.body)

	ui.window.SetContent(container.NewBorder(top, nil, nil, nil, padded))
	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *StorefrontUI) createMenu() {
	current := ui.settings.GetCardWidth(0)

	sizeMenu := fyne.NewMenu(ui.localization.GetText(KeyCardSize))
	for _, preset := range cardSizePresets {
		width := preset.width
		item := fyne.NewMenuItem(ui.localization.GetText(preset.key), func() {
			ui.onCardSizeChange(width)
		})
		item.Checked = current == width
		sizeMenu.Items = append(sizeMenu.Items, item)
	}
	sizeItem := fyne.NewMenuItem(ui.localization.GetText(KeyCardSize), nil)
	sizeItem.ChildMenu = sizeMenu

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	available := ui.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(available))
	for code := range available {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		langCode := code
		langItem := fyne.NewMenuItem(available[code], func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), sizeItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *StorefrontUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.header.SetText(ui.localization.GetText(KeyProducts))
	ui.emptyLabel.SetText(ui.localization.GetText(KeyNoItemsFound))

	// Recreate menu to update labels and checkmarks
	ui.createMenu()
}

// onCardSizeChange stores the card width override for the next launch
func (ui *StorefrontUI) onCardSizeChange(width float32) {
	ui.settings.SetCardWidth(width)
	log.Printf("Card width override changed: width=%.0f", width)
	ui.createMenu()
	dialog.ShowInformation(ui.localization.GetText(KeyCardSize), ui.localization.GetText(KeyRestartToApply), ui.window)
}

// Start mounts the screen and ties its unmount to the window and app lifecycle
func (ui *StorefrontUI) Start(ctx context.Context) {
	width := ui.viewport.Width()
	if width <= 0 {
		width = ui.window.Canvas().Size().Width
	}

	ui.window.SetOnClosed(ui.Stop)
	ui.app.Lifecycle().SetOnStopped(ui.Stop)

	ui.screen.Mount(ctx, width, ui.viewport)
	ui.render()
}

// Stop unmounts the screen; later calls are ignored
func (ui *StorefrontUI) Stop() {
	ui.stopOnce.Do(func() {
		log.Printf("Storefront window closing")
		ui.screen.Unmount()
	})
}

// render syncs the widgets with the screen's view state.
// Must run on the UI thread.
func (ui *StorefrontUI) render() {
	view := ui.screen.View()

	if !ui.built || view.Structure() != ui.structure {
		ui.rebuild(view)
	}
	ui.refreshContents(view)

	if view.Alert != "" && ui.alerts == 0 {
		ui.alerts++
		log.Printf("Showing fetch failure alert")
		dialog.ShowInformation(ui.localization.GetText(KeyAlertTitle), view.Alert, ui.window)
	}
}

// rebuild replaces the grid for a new mode, column count or card count
func (ui *StorefrontUI) rebuild(view screen.ViewState) {
	log.Printf("Rebuilding grid: mode=%s columns=%d count=%d",
		view.Mode, view.Columns, view.Structure().Count)

	var content fyne.CanvasObject
	switch view.Mode {
	case screen.ModeSkeleton:
		ui.skeletons = ui.skeletons[:0]
		objects := make([]fyne.CanvasObject, 0, view.SkeletonCount)
		for i := 0; i < view.SkeletonCount; i++ {
			sc := NewSkeletonCard(ui.mobile.CardImageHeight())
			ui.skeletons = append(ui.skeletons, sc)
			objects = append(objects, sc)
		}
		content = ui.grid(view.Columns, objects)
	case screen.ModeGrid:
		// keep existing cards so loaded images survive a column change
		for len(ui.cards) < len(view.Cards) {
			pc := NewProductCard(ui.mobile.CardImageHeight())
			pc.SetCallbacks(ui.screen.IncrementQuantity, ui.screen.DecrementQuantity, ui.screen.ToggleFavorite)
			ui.cards = append(ui.cards, pc)
		}
		ui.cards = ui.cards[:len(view.Cards)]
		objects := make([]fyne.CanvasObject, 0, len(ui.cards))
		for _, pc := range ui.cards {
			objects = append(objects, pc)
		}
		content = ui.grid(view.Columns, objects)
	default:
		content = container.NewCenter(ui.emptyLabel)
	}

	ui.body.Objects = []fyne.CanvasObject{content}
	ui.body.Refresh()
	ui.structure = view.Structure()
	ui.built = true
}

// grid lays objects out in rows of columns separated by a fixed gap
func (ui *StorefrontUI) grid(columns int, objects []fyne.CanvasObject) fyne.CanvasObject {
	if columns < 1 {
		columns = 1
	}

	rows := container.New(layout.NewCustomPaddedVBoxLayout(GridRowGap))
	for start := 0; start < len(objects); start += columns {
		end := start + columns
		if end > len(objects) {
			end = len(objects)
		}
		rows.Add(container.NewGridWithColumns(columns, objects[start:end]...))
	}

	footer := canvas.NewRectangle(color.Transparent)
	footer.SetMinSize(fyne.NewSize(0, FooterHeight))

	return container.NewVScroll(container.NewVBox(rows, footer))
}

// refreshContents updates card data and skeleton opacity in place
func (ui *StorefrontUI) refreshContents(view screen.ViewState) {
	switch view.Mode {
	case screen.ModeSkeleton:
		for _, sc := range ui.skeletons {
			sc.SetOpacity(view.Opacity)
		}
	case screen.ModeGrid:
		for i, card := range view.Cards {
			ui.cards[i].Update(card)
		}
	}
}
