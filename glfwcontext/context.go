package glfwcontext

import (
	"fmt"
	"log"
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/richinsley/gotriangle/graphics"
	"github.com/richinsley/gotriangle/options"
)

// idleTimeout bounds WaitEvents so the close flag is still observed promptly.
const idleTimeout = 0.1

// Context is a GLFW window together with its OpenGL 3.3 core context.
type Context struct {
	window *glfw.Window
	// Key events collected by the GLFW callback during PollEvents.
	events []graphics.KeyEvent
}

var _ graphics.Context = (*Context)(nil)

// New creates a window sized and titled from opts. Hidden windows are used by
// the recorder, which never presents to the screen.
func New(opts *options.Options, visible bool) (*Context, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	if runtime.GOOS == "darwin" {
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}
	if !visible {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	win, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", graphics.ErrWindowCreation, err)
	}

	c := &Context{window: win}
	win.SetKeyCallback(c.glfwKeyCallback)
	return c, nil
}

// glfwKeyCallback runs inside glfw.PollEvents. It only queues the event; the
// render loop decides what the key means.
func (c *Context) glfwKeyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	c.events = append(c.events, graphics.KeyEvent{
		Key:      graphics.Key(key),
		Scancode: scancode,
		Action:   graphics.Action(action),
	})
}

func (c *Context) Events() []graphics.KeyEvent {
	events := c.events
	c.events = nil
	return events
}

// MakeCurrent makes the context current for the calling goroutine.
func (c *Context) MakeCurrent() {
	c.window.MakeContextCurrent()
}

// Shutdown only destroys the window; GLFW itself is released by TerminateGraphics.
func (c *Context) Shutdown() {
	c.window.Destroy()
}

func (c *Context) ShouldClose() bool {
	return c.window.ShouldClose()
}

func (c *Context) SetShouldClose(v bool) {
	c.window.SetShouldClose(v)
}

func (c *Context) PollEvents() {
	glfw.PollEvents()
}

func (c *Context) WaitEvents() {
	glfw.WaitEventsTimeout(idleTimeout)
}

func (c *Context) SwapBuffers() {
	c.window.SwapBuffers()
}

func (c *Context) SwapInterval(n int) {
	glfw.SwapInterval(n)
}

func (c *Context) GetFramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

func (c *Context) Time() float64 {
	return glfw.GetTime()
}

// InitGraphics initializes GLFW. Must be called from the main thread.
func InitGraphics() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		log.Printf("Error: %v", err)
		return fmt.Errorf("%w: %v", graphics.ErrInitialization, err)
	}
	log.Printf("GLFW %s initialized", glfw.GetVersionString())
	return nil
}

// TerminateGraphics shuts down GLFW. Must be called from the main thread.
func TerminateGraphics() {
	glfw.Terminate()
	log.Printf("GLFW terminated")
}
