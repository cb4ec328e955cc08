package shader

import (
	"fmt"
	"log"

	"github.com/richinsley/gotriangle/graphics"
)

// Program is the linked triangle program with its interface locations
// resolved once after link.
type Program struct {
	ID     uint32
	MVPLoc int32
	PosLoc int32
	ColLoc int32

	dev     graphics.Device
	sources Sources
}

// NewProgram compiles both stages and links them. Compile failures wrap
// graphics.ErrShaderCompile and carry the driver's diagnostic; link failures
// wrap graphics.ErrLink.
func NewProgram(dev graphics.Device, src Sources) (*Program, error) {
	vertexShader, err := dev.CompileShader(src.Vertex, graphics.VertexStage)
	if err != nil {
		return nil, fmt.Errorf("%w: %s stage: %v", graphics.ErrShaderCompile, graphics.VertexStage, err)
	}
	fragmentShader, err := dev.CompileShader(src.Fragment, graphics.FragmentStage)
	if err != nil {
		dev.DeleteShader(vertexShader)
		return nil, fmt.Errorf("%w: %s stage: %v", graphics.ErrShaderCompile, graphics.FragmentStage, err)
	}

	program, err := dev.LinkProgram(vertexShader, fragmentShader)
	dev.DeleteShader(vertexShader)
	dev.DeleteShader(fragmentShader)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", graphics.ErrLink, err)
	}

	p := &Program{ID: program, dev: dev, sources: src}
	p.MVPLoc = p.UniformLocation(MVPUniform)
	p.PosLoc = p.AttribLocation(PosAttribute)
	p.ColLoc = p.AttribLocation(ColAttribute)
	if p.MVPLoc < 0 || p.PosLoc < 0 || p.ColLoc < 0 {
		log.Printf("Warning: inactive program variables (MVP=%d vPos=%d vCol=%d)", p.MVPLoc, p.PosLoc, p.ColLoc)
	}
	return p, nil
}

// UniformLocation returns -1 when name is not an active uniform.
func (p *Program) UniformLocation(name string) int32 {
	return p.dev.UniformLocation(p.ID, p.sources.mapped(name))
}

// AttribLocation returns -1 when name is not an active attribute.
func (p *Program) AttribLocation(name string) int32 {
	return p.dev.AttribLocation(p.ID, p.sources.mapped(name))
}

func (p *Program) Use() {
	p.dev.UseProgram(p.ID)
}

// SetMVP uploads m to the MVP uniform of the program in use.
func (p *Program) SetMVP(m *[16]float32) {
	p.dev.UniformMatrix4(p.MVPLoc, m)
}

func (p *Program) Destroy() {
	if p == nil || p.ID == 0 {
		return
	}
	p.dev.DeleteProgram(p.ID)
	p.ID = 0
}
