package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ytget/storefront/internal/catalog"
	"github.com/ytget/storefront/internal/config"
	"github.com/ytget/storefront/internal/platform"
	"github.com/ytget/storefront/internal/screen"
	"github.com/ytget/storefront/internal/tui"
)

// Set during build via -ldflags "-X main.version=X.Y.Z -X main.apiURL=https://..."
var (
	version = "dev"
	apiURL  = ""
)

func main() {
	logPath, err := platform.LogFilePath()
	if err != nil {
		fmt.Printf("could not get log path: %v\n", err)
		os.Exit(1)
	}
	platform.RotateLogIfNeeded(logPath, platform.MaxLogBytes)

	f, err := tea.LogToFile(logPath, "storefront")
	if err != nil {
		fmt.Printf("could not open log file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	log.Printf("Storefront terminal v%s starting", version)

	cfg := config.Load(apiURL)
	client := catalog.NewClient(cfg.APIURL)
	scr := screen.New(client, screen.Options{
		CardWidth:        float32(cfg.TerminalCardWidth),
		ImageBaseURL:     cfg.ImageBaseURL,
		FallbackImageURL: cfg.FallbackImageURL,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := tui.Run(ctx, scr, cfg.TerminalCardWidth); err != nil {
		fmt.Printf("Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}
