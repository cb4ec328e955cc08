package shader

import (
	"errors"
	"strings"
	"testing"

	"github.com/richinsley/gotriangle/graphics"
	"github.com/richinsley/gotriangle/graphics/graphicstest"
)

func TestNewProgramResolvesLocations(t *testing.T) {
	dev := graphicstest.NewDevice()
	p, err := NewProgram(dev, Native())
	if err != nil {
		t.Fatalf("NewProgram: %v", err)
	}
	if len(dev.Programs) != 1 {
		t.Fatalf("programs = %d, want 1", len(dev.Programs))
	}
	if p.MVPLoc < 0 || p.PosLoc < 0 || p.ColLoc < 0 {
		t.Fatalf("locations MVP=%d vPos=%d vCol=%d, want all >= 0", p.MVPLoc, p.PosLoc, p.ColLoc)
	}
	if p.PosLoc == p.ColLoc {
		t.Fatalf("vPos and vCol share location %d", p.PosLoc)
	}
	if got := p.UniformLocation("missing"); got != -1 {
		t.Errorf("UniformLocation(missing) = %d, want -1", got)
	}
	if got := p.AttribLocation("color"); got != -1 {
		t.Errorf("AttribLocation(color) = %d, want -1", got)
	}
	// Both stages are released once linked.
	if len(dev.Shaders) != 0 || len(dev.DeletedShaders) != 2 {
		t.Errorf("live shaders = %d, deleted = %d", len(dev.Shaders), len(dev.DeletedShaders))
	}
}

func TestNewProgramCompileFailure(t *testing.T) {
	for _, stage := range []graphics.ShaderStage{graphics.VertexStage, graphics.FragmentStage} {
		t.Run(stage.String(), func(t *testing.T) {
			dev := graphicstest.NewDevice()
			dev.CompileErr[stage] = errors.New("0:3(1): error: syntax error")
			_, err := NewProgram(dev, Native())
			if !errors.Is(err, graphics.ErrShaderCompile) {
				t.Fatalf("err = %v, want ErrShaderCompile", err)
			}
			if !strings.Contains(err.Error(), "syntax error") || !strings.Contains(err.Error(), stage.String()) {
				t.Errorf("diagnostic lost: %v", err)
			}
			if len(dev.Shaders) != 0 || len(dev.Programs) != 0 {
				t.Errorf("leaked shaders=%d programs=%d", len(dev.Shaders), len(dev.Programs))
			}
		})
	}
}

func TestNewProgramLinkFailure(t *testing.T) {
	dev := graphicstest.NewDevice()
	dev.LinkErr = errors.New("error: vertex output color not written")
	_, err := NewProgram(dev, Native())
	if !errors.Is(err, graphics.ErrLink) {
		t.Fatalf("err = %v, want ErrLink", err)
	}
	if len(dev.Shaders) != 0 {
		t.Errorf("leaked %d shaders", len(dev.Shaders))
	}
}

func TestNewProgramHonoursRenamedVariables(t *testing.T) {
	src := Sources{
		Vertex:   "#version 330\nuniform mat4 _uMVP;\nin vec3 _uvCol;\nin vec2 _uvPos;\nvoid main()\n{\n}\n",
		Fragment: "#version 330\nvoid main()\n{\n}\n",
		Names: map[string]string{
			"MVP":  "_uMVP",
			"vPos": "_uvPos",
			"vCol": "_uvCol",
		},
	}
	dev := graphicstest.NewDevice()
	p, err := NewProgram(dev, src)
	if err != nil {
		t.Fatalf("NewProgram: %v", err)
	}
	if p.MVPLoc != 0 || p.ColLoc != 0 || p.PosLoc != 1 {
		t.Fatalf("locations MVP=%d vPos=%d vCol=%d", p.MVPLoc, p.PosLoc, p.ColLoc)
	}
}

func TestProgramSetMVPAndDestroy(t *testing.T) {
	dev := graphicstest.NewDevice()
	p, err := NewProgram(dev, Native())
	if err != nil {
		t.Fatalf("NewProgram: %v", err)
	}
	id := p.ID
	m := [16]float32{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}
	p.Use()
	p.SetMVP(&m)
	if len(dev.Uploads) != 1 || dev.Uploads[0].Program != id || dev.Uploads[0].Location != p.MVPLoc {
		t.Fatalf("uploads = %+v", dev.Uploads)
	}

	p.Destroy()
	p.Destroy()
	if len(dev.DeletedPrograms) != 1 || dev.DeletedPrograms[0] != id {
		t.Fatalf("deleted programs = %v, want [%d]", dev.DeletedPrograms, id)
	}
}

func TestSourcesDeclareProgramInterface(t *testing.T) {
	for name, src := range map[string]string{
		"gl":     vertexShaderSourceGL,
		"webgl2": vertexShaderSourceWebGL2,
	} {
		for _, decl := range []string{"uniform mat4 MVP;", "in vec2 vPos;", "in vec3 vCol;", "MVP * vec4(vPos, 0.0, 1.0)"} {
			if !strings.Contains(src, decl) {
				t.Errorf("%s vertex source missing %q", name, decl)
			}
		}
	}
}
