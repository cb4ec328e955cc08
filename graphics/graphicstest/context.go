// Package graphicstest provides in-memory implementations of graphics.Context
// and graphics.Device for tests that must run without a display or GPU.
package graphicstest

import "github.com/richinsley/gotriangle/graphics"

// Context is a scripted window. Width and Height are reported as the
// framebuffer size; Now is returned by Time unless Clock is set.
type Context struct {
	Width, Height int
	Now           float64
	Clock         func() float64

	// OnPoll runs inside PollEvents and WaitEvents, where a real backend
	// would invoke its callbacks. Tests use it to inject key presses or
	// resize the window.
	OnPoll func(c *Context)

	Current       bool
	Interval      int
	Polls         int
	Waits         int
	Swaps         int
	ShutdownCalls int

	closed bool
	events []graphics.KeyEvent
}

var _ graphics.Context = (*Context)(nil)

func NewContext(width, height int) *Context {
	return &Context{Width: width, Height: height, Interval: -1}
}

// KeyCallback queues an event exactly as the windowing layer's key callback
// would.
func (c *Context) KeyCallback(key graphics.Key, action graphics.Action) {
	c.events = append(c.events, graphics.KeyEvent{Key: key, Action: action})
}

func (c *Context) MakeCurrent() { c.Current = true }
func (c *Context) Shutdown() { c.ShutdownCalls++ }
func (c *Context) ShouldClose() bool { return c.closed }
func (c *Context) SetShouldClose(v bool) { c.closed = v }
func (c *Context) SwapBuffers() { c.Swaps++ }
func (c *Context) SwapInterval(n int) { c.Interval = n }

func (c *Context) PollEvents() {
	c.Polls++
	if c.OnPoll != nil {
		c.OnPoll(c)
	}
}

func (c *Context) WaitEvents() {
	c.Waits++
	if c.OnPoll != nil {
		c.OnPoll(c)
	}
}

func (c *Context) Events() []graphics.KeyEvent {
	events := c.events
	c.events = nil
	return events
}

func (c *Context) GetFramebufferSize() (int, int) {
	return c.Width, c.Height
}

func (c *Context) Time() float64 {
	if c.Clock != nil {
		return c.Clock()
	}
	return c.Now
}
