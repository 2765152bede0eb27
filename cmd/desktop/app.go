package main

import (
	"context"
	"os/exec"
	"runtime"

	wailsruntime "github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/sunderapp/sunder/internal/services"
	"github.com/sunderapp/sunder/internal/types"
)

// App struct holds the Wails application context and provides
// methods that can be called from the frontend.
type App struct {
	ctx     context.Context
	scanner *services.Scanner
}

// NewApp creates a new App instance.
func NewApp(scanner *services.Scanner) *App {
	return &App{scanner: scanner}
}

// startup is called when the app starts.
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
	go a.forwardProgress()
}

// forwardProgress pushes scan progress to the webview as "scan-progress"
// events. Emission is fire-and-forget; nothing listening is not an error.
func (a *App) forwardProgress() {
	updates := a.scanner.Subscribe()
	for progress := range updates {
		wailsruntime.EventsEmit(a.ctx, "scan-progress", progress)
	}
}

// GetHomeDir returns the absolute path of the current user's home directory.
func (a *App) GetHomeDir() (string, error) {
	return a.scanner.HomeDir()
}

// SmartScan scans the home directory and returns categorized folders sorted
// by descending size. Progress arrives via "scan-progress" events while this
// call is in flight.
func (a *App) SmartScan() (*types.ScanResult, error) {
	return a.scanner.SmartScan(a.ctx)
}

// OpenInFileManager opens the system file manager at the specified path.
// This can be called from the frontend to reveal a scanned folder.
func (a *App) OpenInFileManager(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", "-R", path) // -R reveals in Finder
	case "windows":
		cmd = exec.Command("explorer", "/select,", path)
	default: // Linux
		cmd = exec.Command("xdg-open", path)
	}
	return cmd.Start()
}

// OpenFolder opens a folder in the system file manager.
func (a *App) OpenFolder(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("explorer", path)
	default: // Linux
		cmd = exec.Command("xdg-open", path)
	}
	return cmd.Start()
}
