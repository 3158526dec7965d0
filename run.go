package thicket

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title      string
	Width      int  // window width in device-independent pixels; defaults to the logical width
	Height     int  // window height in device-independent pixels; defaults to the logical height
	ShowFPS    bool // overrides Window.ShowFPS when set
	Resizable  bool
	Fullscreen bool
}

// Run opens a window and runs w as the game until a state returns ErrQuit
// (nil is returned) or any other error (returned wrapped).
func Run(w *Window, cfg RunConfig) error {
	width, height := cfg.Width, cfg.Height
	if width <= 0 || height <= 0 {
		width, height = w.Size()
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(width, height)
	ebiten.SetFullscreen(cfg.Fullscreen)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	if cfg.ShowFPS {
		w.ShowFPS = true
	}
	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("thicket: run: %w", err)
	}
	return nil
}
