package graphicstest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/richinsley/gotriangle/graphics"
)

// Shader is a compiled stage held by Device.
type Shader struct {
	Source string
	Stage  graphics.ShaderStage
}

// Program is a linked program held by Device. Locations are assigned in
// declaration order from the attached sources.
type Program struct {
	Uniforms map[string]int32
	Attribs  map[string]int32
}

// UniformUpload records one UniformMatrix4 call.
type UniformUpload struct {
	Program  uint32
	Location int32
	Value    [16]float32
}

// Draw records one DrawTriangles call with the state bound at that moment.
type Draw struct {
	Program     uint32
	VertexArray uint32
	Target      uint32
	First       int
	Count       int
}

// Device records every call so tests can assert on the exact GL traffic a
// frame produces.
type Device struct {
	// Errors returned by CompileShader for a stage and by LinkProgram.
	CompileErr map[graphics.ShaderStage]error
	LinkErr    error

	// Pixel is repeated across ReadPixels results.
	Pixel [4]byte

	Buffers      map[uint32][]byte
	Shaders      map[uint32]Shader
	Programs     map[uint32]*Program
	VertexArrays map[uint32][]graphics.Attrib
	Targets      map[uint32][2]int

	Viewports [][4]int
	Clears    int
	Uploads   []UniformUpload
	Draws     []Draw
	Reads     int

	DeletedBuffers      []uint32
	DeletedShaders      []uint32
	DeletedPrograms     []uint32
	DeletedVertexArrays []uint32
	DeletedTargets      []uint32

	nextID      uint32
	program     uint32
	vertexArray uint32
	target      uint32
}

var _ graphics.Device = (*Device)(nil)

func NewDevice() *Device {
	return &Device{
		CompileErr:   make(map[graphics.ShaderStage]error),
		Buffers:      make(map[uint32][]byte),
		Shaders:      make(map[uint32]Shader),
		Programs:     make(map[uint32]*Program),
		VertexArrays: make(map[uint32][]graphics.Attrib),
		Targets:      make(map[uint32][2]int),
	}
}

func (d *Device) id() uint32 {
	d.nextID++
	return d.nextID
}

func (d *Device) NewStaticBuffer(data []byte) uint32 {
	id := d.id()
	d.Buffers[id] = append([]byte(nil), data...)
	return id
}

func (d *Device) DeleteBuffer(id uint32) {
	delete(d.Buffers, id)
	d.DeletedBuffers = append(d.DeletedBuffers, id)
}

func (d *Device) CompileShader(source string, stage graphics.ShaderStage) (uint32, error) {
	if err := d.CompileErr[stage]; err != nil {
		return 0, err
	}
	if !strings.Contains(source, "void main()") {
		return 0, errors.New("ERROR: 0:1: missing main()")
	}
	id := d.id()
	d.Shaders[id] = Shader{Source: source, Stage: stage}
	return id, nil
}

func (d *Device) DeleteShader(id uint32) {
	delete(d.Shaders, id)
	d.DeletedShaders = append(d.DeletedShaders, id)
}

func (d *Device) LinkProgram(vertex, fragment uint32) (uint32, error) {
	if d.LinkErr != nil {
		return 0, d.LinkErr
	}
	vs, ok := d.Shaders[vertex]
	if !ok || vs.Stage != graphics.VertexStage {
		return 0, fmt.Errorf("no vertex shader %d", vertex)
	}
	fs, ok := d.Shaders[fragment]
	if !ok || fs.Stage != graphics.FragmentStage {
		return 0, fmt.Errorf("no fragment shader %d", fragment)
	}

	p := &Program{Uniforms: make(map[string]int32), Attribs: make(map[string]int32)}
	for _, src := range []string{vs.Source, fs.Source} {
		for _, name := range declarations(src, "uniform") {
			if _, dup := p.Uniforms[name]; !dup {
				p.Uniforms[name] = int32(len(p.Uniforms))
			}
		}
	}
	for _, name := range declarations(vs.Source, "in") {
		p.Attribs[name] = int32(len(p.Attribs))
	}

	id := d.id()
	d.Programs[id] = p
	return id, nil
}

// declarations returns the variable names of lines shaped like
// "<qualifier> <type> <name>;".
func declarations(source, qualifier string) []string {
	var names []string
	for _, line := range strings.Split(source, "\n") {
		fields := strings.Fields(strings.TrimSpace(line))
		if len(fields) != 3 || fields[0] != qualifier {
			continue
		}
		names = append(names, strings.TrimSuffix(fields[2], ";"))
	}
	return names
}

func (d *Device) DeleteProgram(id uint32) {
	delete(d.Programs, id)
	d.DeletedPrograms = append(d.DeletedPrograms, id)
}

func (d *Device) UniformLocation(program uint32, name string) int32 {
	if p, ok := d.Programs[program]; ok {
		if loc, ok := p.Uniforms[name]; ok {
			return loc
		}
	}
	return -1
}

func (d *Device) AttribLocation(program uint32, name string) int32 {
	if p, ok := d.Programs[program]; ok {
		if loc, ok := p.Attribs[name]; ok {
			return loc
		}
	}
	return -1
}

func (d *Device) NewVertexArray(buffer uint32, attribs []graphics.Attrib) uint32 {
	id := d.id()
	d.VertexArrays[id] = append([]graphics.Attrib(nil), attribs...)
	return id
}

func (d *Device) DeleteVertexArray(id uint32) {
	delete(d.VertexArrays, id)
	d.DeletedVertexArrays = append(d.DeletedVertexArrays, id)
}

func (d *Device) Viewport(x, y, width, height int) {
	d.Viewports = append(d.Viewports, [4]int{x, y, width, height})
}

func (d *Device) Clear() { d.Clears++ }

func (d *Device) UseProgram(program uint32) { d.program = program }

func (d *Device) UniformMatrix4(location int32, m *[16]float32) {
	d.Uploads = append(d.Uploads, UniformUpload{Program: d.program, Location: location, Value: *m})
}

func (d *Device) BindVertexArray(id uint32) { d.vertexArray = id }

func (d *Device) DrawTriangles(first, count int) {
	d.Draws = append(d.Draws, Draw{Program: d.program, VertexArray: d.vertexArray, Target: d.target, First: first, Count: count})
}

func (d *Device) NewRenderTarget(width, height int) (uint32, error) {
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("invalid render target size %dx%d", width, height)
	}
	id := d.id()
	d.Targets[id] = [2]int{width, height}
	return id, nil
}

func (d *Device) BindRenderTarget(id uint32) { d.target = id }

func (d *Device) DeleteRenderTarget(id uint32) {
	delete(d.Targets, id)
	d.DeletedTargets = append(d.DeletedTargets, id)
}

func (d *Device) ReadPixels(width, height int) []byte {
	d.Reads++
	pixels := make([]byte, width*height*4)
	for i := 0; i < len(pixels); i += 4 {
		copy(pixels[i:i+4], d.Pixel[:])
	}
	return pixels
}
