package main

import (
	"embed"
	"fmt"
	"log"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/mac"
	"github.com/wailsapp/wails/v2/pkg/options/windows"

	"github.com/sunderapp/sunder/internal/config"
	"github.com/sunderapp/sunder/internal/services"
	"github.com/sunderapp/sunder/internal/sizer"
)

// Version info - injected at build time via ldflags
var (
	version = "dev"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	cfg := config.Load()
	scanner := services.NewScanner(cfg, sizer.New())
	app := NewApp(scanner)

	err := wails.Run(&options.App{
		Title:     "Sunder",
		Width:     1100,
		Height:    760,
		MinWidth:  800,
		MinHeight: 600,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		OnStartup: app.startup,
		Bind: []interface{}{
			app,
		},
		Mac: &mac.Options{
			TitleBar: &mac.TitleBar{
				TitlebarAppearsTransparent: false,
			},
			About: &mac.AboutInfo{
				Title:   "Sunder",
				Message: fmt.Sprintf("Home Directory Scanner\n\nVersion: %s", buildVersionString()),
			},
		},
		Windows: &windows.Options{
			WebviewIsTransparent: false,
			WindowIsTranslucent:  false,
		},
	})

	if err != nil {
		log.Fatalf("Wails error: %v", err)
	}
}

// buildVersionString creates a display version string.
func buildVersionString() string {
	if version == "dev" {
		return "Development"
	}
	return version
}
