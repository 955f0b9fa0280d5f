package nav

import (
	"fmt"
	"io"

	"colat/pkg/color"
)

// Frame is everything a Display needs to draw one state.
type Frame struct {
	Entry    color.Entry
	Index    int
	Total    int
	ShowHelp bool
}

// Display is a paintable surface.
type Display interface {
	// Paint fills the whole surface with the frame's color and presents it.
	Paint(f Frame) error
}

// EventSource blocks until the next event is available.
type EventSource interface {
	WaitForEvent() (Event, error)
}

// Run paints the first color and then dispatches events from src until the
// controller quits. An error from src ends the session and is returned.
func Run(c *Controller, src EventSource, disp Display, echo io.Writer) error {
	var showHelp bool

	apply := func(eff Effect) error {
		if eff.ToggleHelp {
			showHelp = !showHelp
		}
		if eff.Echo {
			if _, err := fmt.Fprintln(echo, c.Current().Text); err != nil {
				return fmt.Errorf("echo color: %w", err)
			}
		}
		if eff.Paint {
			if err := disp.Paint(c.Frame(showHelp)); err != nil {
				return fmt.Errorf("paint %s: %w", c.Current().Text, err)
			}
		}
		return nil
	}

	if err := apply(c.Start()); err != nil {
		return err
	}
	for c.Running() {
		ev, err := src.WaitForEvent()
		if err != nil {
			return fmt.Errorf("waiting for event: %w", err)
		}
		if err := apply(c.Handle(ev)); err != nil {
			return err
		}
	}
	return nil
}

// Frame returns the frame for the current state.
func (c *Controller) Frame(showHelp bool) Frame {
	return Frame{
		Entry:    c.Current(),
		Index:    c.index,
		Total:    c.list.Len(),
		ShowHelp: showHelp,
	}
}
