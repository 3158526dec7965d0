// Package term runs thicket windows in a terminal through tcell.
package term

import (
	"context"
	"errors"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/thicket"
)

// DefaultTPS is the tick rate Run uses when tps <= 0.
const DefaultTPS = 30

// Run drives w on an initialized tcell screen until ctx is canceled or a
// state returns thicket.ErrQuit (both return nil). Any other update error is
// returned. The caller owns screen and must call Fini after Run returns.
func Run(ctx context.Context, w *thicket.Window, screen tcell.Screen, tps int) error {
	if tps <= 0 {
		tps = DefaultTPS
	}
	in := NewInput()
	w.SetInput(in)
	surf := NewSurface(screen)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
			}
			in.HandleEvent(ev)
		case <-ticker.C:
			err := w.Update()
			in.EndTick()
			if errors.Is(err, thicket.ErrQuit) {
				return nil
			}
			if err != nil {
				return err
			}
			screen.Clear()
			w.DrawTo(surf)
			screen.Show()
		}
	}
}
