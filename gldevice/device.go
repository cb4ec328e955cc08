package gldevice

import (
	"fmt"
	"log"
	"strings"
	"sync"

	gl "github.com/go-gl/gl/v3.3-core/gl"
	"github.com/richinsley/gotriangle/graphics"
)

var glInitOnce sync.Once

// Device implements graphics.Device on top of the OpenGL 3.3 core bindings.
type Device struct {
	// Colour renderbuffer backing each offscreen framebuffer.
	renderbuffers map[uint32]uint32
}

var _ graphics.Device = (*Device)(nil)

// New resolves the OpenGL entry points. The context that will be drawn with
// must already be current on this thread.
func New(ctx graphics.Context) (*Device, error) {
	ctx.MakeCurrent()

	var initErr error
	glInitOnce.Do(func() {
		initErr = gl.Init()
	})
	if initErr != nil {
		return nil, fmt.Errorf("%w: failed to load OpenGL functions: %v", graphics.ErrInitialization, initErr)
	}
	log.Printf("OpenGL %s (%s)", gl.GoStr(gl.GetString(gl.VERSION)), gl.GoStr(gl.GetString(gl.RENDERER)))
	return &Device{renderbuffers: make(map[uint32]uint32)}, nil
}

func (d *Device) NewStaticBuffer(data []byte) uint32 {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data), gl.Ptr(data), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return vbo
}

func (d *Device) DeleteBuffer(id uint32) {
	gl.DeleteBuffers(1, &id)
}

func (d *Device) CompileShader(source string, stage graphics.ShaderStage) (uint32, error) {
	var shaderType uint32
	switch stage {
	case graphics.VertexStage:
		shaderType = gl.VERTEX_SHADER
	case graphics.FragmentStage:
		shaderType = gl.FRAGMENT_SHADER
	default:
		return 0, fmt.Errorf("unsupported shader stage %d", stage)
	}

	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(logText))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s", strings.TrimRight(logText, "\x00"))
	}
	return shader, nil
}

func (d *Device) DeleteShader(id uint32) {
	gl.DeleteShader(id)
}

func (d *Device) LinkProgram(vertex, fragment uint32) (uint32, error) {
	program := gl.CreateProgram()
	gl.AttachShader(program, vertex)
	gl.AttachShader(program, fragment)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(logText))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("%s", strings.TrimRight(logText, "\x00"))
	}
	return program, nil
}

func (d *Device) DeleteProgram(id uint32) {
	gl.DeleteProgram(id)
}

func (d *Device) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (d *Device) AttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

func (d *Device) NewVertexArray(buffer uint32, attribs []graphics.Attrib) uint32 {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, buffer)
	for _, a := range attribs {
		if a.Location < 0 {
			continue
		}
		gl.EnableVertexAttribArray(uint32(a.Location))
		gl.VertexAttribPointer(uint32(a.Location), a.Size, gl.FLOAT, false, a.Stride, gl.PtrOffset(a.Offset))
	}
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return vao
}

func (d *Device) DeleteVertexArray(id uint32) {
	gl.DeleteVertexArrays(1, &id)
}

func (d *Device) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (d *Device) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (d *Device) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (d *Device) UniformMatrix4(location int32, m *[16]float32) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

func (d *Device) BindVertexArray(id uint32) {
	gl.BindVertexArray(id)
}

func (d *Device) DrawTriangles(first, count int) {
	gl.DrawArrays(gl.TRIANGLES, int32(first), int32(count))
}

func (d *Device) NewRenderTarget(width, height int) (uint32, error) {
	var fbo, rbo uint32
	gl.GenFramebuffers(1, &fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, fbo)
	gl.GenRenderbuffers(1, &rbo)
	gl.BindRenderbuffer(gl.RENDERBUFFER, rbo)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.RGBA8, int32(width), int32(height))
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.RENDERBUFFER, rbo)
	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		gl.DeleteRenderbuffers(1, &rbo)
		gl.DeleteFramebuffers(1, &fbo)
		return 0, fmt.Errorf("offscreen framebuffer is not complete (status 0x%x)", status)
	}
	d.renderbuffers[fbo] = rbo
	return fbo, nil
}

func (d *Device) BindRenderTarget(id uint32) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, id)
}

func (d *Device) DeleteRenderTarget(id uint32) {
	if rbo, ok := d.renderbuffers[id]; ok {
		gl.DeleteRenderbuffers(1, &rbo)
		delete(d.renderbuffers, id)
	}
	gl.DeleteFramebuffers(1, &id)
}

func (d *Device) ReadPixels(width, height int) []byte {
	pixels := make([]byte, width*height*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels
}
