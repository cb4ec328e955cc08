package renderer

import (
	"fmt"
	"log"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/gotriangle/geometry"
	"github.com/richinsley/gotriangle/graphics"
	"github.com/richinsley/gotriangle/shader"
	"github.com/richinsley/gotriangle/transform"
)

// State is the lifecycle phase of a Renderer.
type State int

const (
	Initializing State = iota
	Running
	Terminating
)

func (s State) String() string {
	switch s {
	case Initializing:
		return "initializing"
	case Running:
		return "running"
	case Terminating:
		return "terminating"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Renderer draws the rotating triangle into a context.
type Renderer struct {
	context graphics.Context
	device  graphics.Device
	program *shader.Program
	buffer  *geometry.Buffer
	vao     uint32
	state   State
	frames  int64
}

// NewRenderer uploads the mesh, builds the program and records the vertex
// layout. On error every resource acquired so far is released; the context
// itself stays owned by the caller.
func NewRenderer(ctx graphics.Context, dev graphics.Device, src shader.Sources, swapInterval int) (*Renderer, error) {
	r := &Renderer{
		context: ctx,
		device:  dev,
		state:   Initializing,
	}

	// Everything below needs the context current on this thread.
	r.context.MakeCurrent()
	r.context.SwapInterval(swapInterval)

	r.buffer = geometry.Upload(dev, geometry.Triangle[:])

	var err error
	r.program, err = shader.NewProgram(dev, src)
	if err != nil {
		r.buffer.Destroy()
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	r.vao = dev.NewVertexArray(r.buffer.ID, geometry.Layout(r.program.PosLoc, r.program.ColLoc))

	r.state = Running
	return r, nil
}

func (r *Renderer) State() State {
	return r.state
}

// Frames returns the number of frames presented so far.
func (r *Renderer) Frames() int64 {
	return r.frames
}

// Run is the interactive loop. It returns once the window's close flag is set,
// either by the window manager or by pressing Escape.
func (r *Renderer) Run() {
	log.Println("Starting interactive render loop...")
	for r.state == Running && !r.context.ShouldClose() {
		r.context.PollEvents()
		r.handleEvents()

		width, height := r.context.GetFramebufferSize()
		if _, ok := r.RenderFrame(r.context.Time(), width, height); !ok {
			// Minimized: nothing to draw until the framebuffer has area again.
			r.context.WaitEvents()
			r.handleEvents()
			continue
		}

		r.context.SwapBuffers()
		r.frames++
	}
	r.state = Terminating
	log.Printf("Render loop finished after %d frames", r.frames)
}

// handleEvents drains the key events queued during polling.
func (r *Renderer) handleEvents() {
	for _, ev := range r.context.Events() {
		if requestsClose(ev) {
			r.context.SetShouldClose(true)
		}
	}
}

func requestsClose(ev graphics.KeyEvent) bool {
	return ev.Key == graphics.KeyEscape && ev.Action == graphics.Press
}

// RenderFrame draws the triangle at time t into the currently bound
// framebuffer of the given size and returns the MVP it uploaded. ok is false,
// and nothing is drawn, when the framebuffer has no area.
func (r *Renderer) RenderFrame(t float64, width, height int) (mvp mgl32.Mat4, ok bool) {
	ratio, ok := transform.AspectRatio(width, height)
	if !ok {
		return mgl32.Mat4{}, false
	}

	r.device.Viewport(0, 0, width, height)
	r.device.Clear()

	mvp = transform.MVP(t, ratio)

	r.program.Use()
	r.program.SetMVP((*[16]float32)(&mvp))
	r.device.BindVertexArray(r.vao)
	r.device.DrawTriangles(0, r.buffer.Count)
	return mvp, true
}

// Shutdown releases the GL resources. The context is shut down by its owner.
func (r *Renderer) Shutdown() {
	if r.vao != 0 {
		r.device.DeleteVertexArray(r.vao)
		r.vao = 0
	}
	r.program.Destroy()
	r.buffer.Destroy()
	r.state = Terminating
}
