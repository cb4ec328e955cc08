package shader

import (
	"github.com/richinsley/gotriangle/translator"
)

// ────────────────────────────────── Desktop GL ──────────────────────────────────

const vertexShaderSourceGL = `#version 330
uniform mat4 MVP;
in vec3 vCol;
in vec2 vPos;
out vec3 color;
void main()
{
    gl_Position = MVP * vec4(vPos, 0.0, 1.0);
    color = vCol;
}
`

const fragmentShaderSourceGL = `#version 330
in vec3 color;
out vec4 fragment;
void main()
{
    fragment = vec4(color, 1.0);
}
`

// ─────────────────────────────────── WebGL2 ─────────────────────────────────────

const vertexShaderSourceWebGL2 = `#version 300 es
uniform mat4 MVP;
in vec3 vCol;
in vec2 vPos;
out vec3 color;
void main()
{
    gl_Position = MVP * vec4(vPos, 0.0, 1.0);
    color = vCol;
}
`

const fragmentShaderSourceWebGL2 = `#version 300 es
precision mediump float;
in vec3 color;
out vec4 fragment;
void main()
{
    fragment = vec4(color, 1.0);
}
`

// Names of the program's interface variables.
const (
	MVPUniform   = "MVP"
	PosAttribute = "vPos"
	ColAttribute = "vCol"
)

// Sources is a vertex/fragment pair ready to compile. Names maps a variable's
// source name to its name in the compiled code when the two differ.
type Sources struct {
	Vertex   string
	Fragment string
	Names    map[string]string
}

// Native returns the GLSL 3.30 sources, compiled as written.
func Native() Sources {
	return Sources{Vertex: vertexShaderSourceGL, Fragment: fragmentShaderSourceGL}
}

// Translated runs the WebGL2 sources through the shader translator and returns
// desktop GLSL 3.30 along with the translator's renamed variables.
func Translated() (Sources, error) {
	vs, err := translator.WebGL2ToGLSL330(vertexShaderSourceWebGL2, "vertex")
	if err != nil {
		return Sources{}, err
	}
	fs, err := translator.WebGL2ToGLSL330(fragmentShaderSourceWebGL2, "fragment")
	if err != nil {
		return Sources{}, err
	}

	names := make(map[string]string, len(vs.Names)+len(fs.Names))
	for k, v := range vs.Names {
		names[k] = v
	}
	for k, v := range fs.Names {
		names[k] = v
	}
	return Sources{Vertex: vs.Code, Fragment: fs.Code, Names: names}, nil
}

// mapped returns the compiled name of a source variable.
func (s Sources) mapped(name string) string {
	if m, ok := s.Names[name]; ok && m != "" {
		return m
	}
	return name
}
