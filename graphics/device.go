package graphics

// ShaderStage selects the pipeline stage a shader source is compiled for.
type ShaderStage int

const (
	VertexStage ShaderStage = iota
	FragmentStage
)

func (s ShaderStage) String() string {
	switch s {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	default:
		return "unknown"
	}
}

// Attrib describes one float vertex attribute sourced from an interleaved
// array buffer.
type Attrib struct {
	Location int32
	Size     int32 // number of float components
	Stride   int32 // bytes between consecutive vertices
	Offset   int   // byte offset of the first component inside a vertex
}

// Device is the slice of the graphics API the program draws with. All calls
// require the owning Context to be current on the calling thread.
type Device interface {
	// NewStaticBuffer uploads data once into a new array buffer with a
	// static, draw-only usage hint.
	NewStaticBuffer(data []byte) uint32
	DeleteBuffer(id uint32)

	CompileShader(source string, stage ShaderStage) (uint32, error)
	DeleteShader(id uint32)
	LinkProgram(vertex, fragment uint32) (uint32, error)
	DeleteProgram(id uint32)
	// UniformLocation and AttribLocation return -1 when the name is not an
	// active variable of the program.
	UniformLocation(program uint32, name string) int32
	AttribLocation(program uint32, name string) int32

	// NewVertexArray records the attribute layout of buffer in a new vertex
	// array object.
	NewVertexArray(buffer uint32, attribs []Attrib) uint32
	DeleteVertexArray(id uint32)

	Viewport(x, y, width, height int)
	Clear()
	UseProgram(program uint32)
	UniformMatrix4(location int32, m *[16]float32)
	BindVertexArray(id uint32)
	DrawTriangles(first, count int)

	// NewRenderTarget creates an offscreen RGBA8 framebuffer of the given
	// size. BindRenderTarget(0) restores the window's framebuffer.
	NewRenderTarget(width, height int) (uint32, error)
	BindRenderTarget(id uint32)
	DeleteRenderTarget(id uint32)

	// ReadPixels returns the current read framebuffer as tightly packed RGBA
	// rows, bottom row first.
	ReadPixels(width, height int) []byte
}
