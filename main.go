package main

import (
	"context"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/storefront/internal/catalog"
	"github.com/ytget/storefront/internal/config"
	"github.com/ytget/storefront/internal/screen"
	"github.com/ytget/storefront/internal/ui"
)

// Set during build via -ldflags "-X main.version=X.Y.Z -X main.apiURL=https://..."
var (
	version = "dev"
	apiURL  = ""
)

const (
	AppID   = "com.ytget.storefront"
	AppName = "Storefront"

	WindowWidth  = 400
	WindowHeight = 720
)

func main() {
	log.Printf("%s v%s starting...", AppName, version)

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewStorefrontTheme())

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	cfg := config.Load(apiURL)
	settings := config.NewSettings(myApp)
	cardWidth := settings.GetCardWidth(cfg.CardWidth)

	client := catalog.NewClient(cfg.APIURL)
	scr := screen.New(client, screen.Options{
		CardWidth:        cardWidth,
		ImageBaseURL:     cfg.ImageBaseURL,
		FallbackImageURL: cfg.FallbackImageURL,
	})

	storefront := ui.NewStorefrontUI(myWindow, myApp, scr)
	myApp.Lifecycle().SetOnStarted(func() {
		storefront.Start(context.Background())
	})

	myWindow.ShowAndRun()
}
