package graphics

// Key identifies a keyboard key. Values follow the GLFW key codes so a
// windowing backend can pass them through unchanged.
type Key int

// KeyEscape is the only key the render loop reacts to.
const KeyEscape Key = 256

// Action is the state change reported with a KeyEvent.
type Action int

const (
	Release Action = 0
	Press   Action = 1
	Repeat  Action = 2
)

// KeyEvent is queued by the windowing layer during PollEvents and drained by
// the render loop once per iteration.
type KeyEvent struct {
	Key      Key
	Scancode int
	Action   Action
}

// Context defines the interface for a windowed OpenGL context. A Context is an
// explicit handle: everything that needs the GL context current receives one.
type Context interface {
	MakeCurrent()
	Shutdown()
	ShouldClose() bool
	SetShouldClose(bool)
	PollEvents()
	// WaitEvents blocks until an event arrives or a short timeout passes. The
	// render loop idles here while there is nothing to draw.
	WaitEvents()
	// Events returns the key events queued since the last call and clears
	// the queue.
	Events() []KeyEvent
	SwapBuffers()
	SwapInterval(n int)
	GetFramebufferSize() (int, int)
	// Time returns seconds elapsed since the windowing layer was initialized.
	Time() float64
}
