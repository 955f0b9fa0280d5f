package nav

import (
	"errors"
	"log/slog"

	"colat/internal/debug"
	"colat/pkg/color"
)

// Effect tells the host what to do after an event was handled.
type Effect struct {
	// Paint requests the current color be drawn over the whole surface.
	Paint bool
	// Echo requests the current entry's text be written to the echo sink.
	Echo bool
	// Quit is set once, on the transition to the terminal state.
	Quit bool
	// Boundary is set when next/previous had nowhere to go.
	Boundary bool
	// ToggleHelp asks the host to show or hide its key help.
	ToggleHelp bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for transition tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithBoundaryHook registers fn to run whenever next/previous is a no-op.
func WithBoundaryHook(fn func()) Option {
	return func(c *Controller) {
		c.onBoundary = fn
	}
}

// Controller owns the color list and the current index.
// It is meant to be driven from a single goroutine.
type Controller struct {
	list    color.List
	keys    KeyResolver
	index   int
	running bool

	logger     *slog.Logger
	onBoundary func()
}

var (
	ErrNoColors    = errors.New("nav: color list is empty")
	ErrNilResolver = errors.New("nav: key resolver is nil")
)

// New returns a running controller positioned at the first color.
func New(list color.List, keys KeyResolver, opts ...Option) (*Controller, error) {
	if list.Len() == 0 {
		return nil, ErrNoColors
	}
	if keys == nil {
		return nil, ErrNilResolver
	}
	c := &Controller{
		list:    list,
		keys:    keys,
		running: true,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Start returns the effect of entering the initial state: paint and echo
// the first color.
func (c *Controller) Start() Effect {
	c.logger.Debug("session started", "colors", c.list.Len(), "current", c.Current().Text)
	return Effect{Paint: true, Echo: true}
}

// Handle applies one event. Nothing happens after the controller stopped.
func (c *Controller) Handle(ev Event) Effect {
	if !c.running {
		return Effect{}
	}
	debug.Trace(c.logger, "event", "kind", ev.Kind, "key", ev.Key)

	switch ev.Kind {
	case EventQuit:
		return c.quit()
	case EventRedraw:
		return Effect{Paint: true}
	case EventKeyUp:
		return c.handleKey(ev.Key)
	default:
		// Presses are ignored so held keys do not race through the list.
		return Effect{}
	}
}

func (c *Controller) handleKey(key string) Effect {
	action := c.keys.Resolve(key)
	debug.Trace(c.logger, "key resolved", "key", key, "action", action)

	switch action {
	case ActionQuit:
		return c.quit()
	case ActionNext:
		return c.move(1)
	case ActionPrevious:
		return c.move(-1)
	case ActionRedraw:
		return Effect{Paint: true}
	case ActionHelp:
		return Effect{Paint: true, ToggleHelp: true}
	default:
		return Effect{}
	}
}

func (c *Controller) move(delta int) Effect {
	next := c.index + delta
	if next < 0 || next >= c.list.Len() {
		c.logger.Debug("navigation at boundary", "index", c.index, "delta", delta)
		if c.onBoundary != nil {
			c.onBoundary()
		}
		return Effect{Boundary: true}
	}
	c.index = next
	c.logger.Debug("navigated", "index", c.index, "current", c.Current().Text)
	return Effect{Paint: true, Echo: true}
}

func (c *Controller) quit() Effect {
	c.running = false
	c.logger.Debug("session ended", "index", c.index)
	return Effect{Quit: true}
}

// Current returns the entry being displayed.
func (c *Controller) Current() color.Entry {
	return c.list.At(c.index)
}

// Index returns the position of the current entry.
func (c *Controller) Index() int {
	return c.index
}

// Len returns the number of colors in the session.
func (c *Controller) Len() int {
	return c.list.Len()
}

// Running reports whether the controller still accepts events.
func (c *Controller) Running() bool {
	return c.running
}
