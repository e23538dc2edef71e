package main

import (
	"embed"
	"os"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/menu"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/mac"

	jotApp "jot/internal/app"
)

//go:embed all:frontend/dist
var assets embed.FS

func main() {
	// `jot mcp` runs headless as an MCP server on stdin/stdout.
	if len(os.Args) > 1 && os.Args[1] == "mcp" {
		jotApp.ServeMCP()
		return
	}

	app := jotApp.New()

	// macOS needs an Edit menu for Cmd+C/V/X/A to reach the WebView
	appMenu := menu.NewMenu()
	appMenu.Append(menu.EditMenu())

	err := wails.Run(&options.App{
		Title:     "Jot",
		Width:     1200,
		Height:    800,
		MinWidth:  720,
		MinHeight: 520,
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		BackgroundColour: &options.RGBA{R: 248, G: 250, B: 252, A: 1},
		Menu:             appMenu,
		OnStartup:        app.Startup,
		OnShutdown:       app.Shutdown,
		Bind: []interface{}{
			app,
		},
		Mac: &mac.Options{
			TitleBar: &mac.TitleBar{
				TitlebarAppearsTransparent: true,
				HideTitle:                  true,
			},
			About: &mac.AboutInfo{
				Title:   "Jot",
				Message: "Local-first notes with continuous autosave",
			},
		},
	})

	if err != nil {
		println("Error:", err.Error())
	}
}
