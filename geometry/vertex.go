// Package geometry holds the triangle mesh and its one-time upload to the GPU.
package geometry

import (
	"unsafe"

	"github.com/richinsley/gotriangle/graphics"
)

// Vertex is the interleaved layout read by the vertex shader: a 2D position
// followed by an RGB colour.
type Vertex struct {
	Pos [2]float32
	Col [3]float32
}

// Triangle is the mesh drawn every frame.
var Triangle = [3]Vertex{
	{Pos: [2]float32{-0.6, -0.4}, Col: [3]float32{1, 0, 0}},
	{Pos: [2]float32{0.6, -0.4}, Col: [3]float32{0, 1, 0}},
	{Pos: [2]float32{0, 0.6}, Col: [3]float32{0, 0, 1}},
}

// Layout constants derived from Vertex, so attribute pointers can never drift
// from the struct.
var (
	Stride    = int32(unsafe.Sizeof(Vertex{}))
	PosOffset = int(unsafe.Offsetof(Vertex{}.Pos))
	ColOffset = int(unsafe.Offsetof(Vertex{}.Col))
)

// Layout describes the position and colour attributes at the given shader
// locations.
func Layout(posLoc, colLoc int32) []graphics.Attrib {
	return []graphics.Attrib{
		{Location: posLoc, Size: int32(len(Vertex{}.Pos)), Stride: Stride, Offset: PosOffset},
		{Location: colLoc, Size: int32(len(Vertex{}.Col)), Stride: Stride, Offset: ColOffset},
	}
}

// Bytes views vertices as raw memory for upload.
func Bytes(vertices []Vertex) []byte {
	if len(vertices) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&vertices[0])), len(vertices)*int(Stride))
}

// Buffer is an immutable array buffer on the device.
type Buffer struct {
	ID    uint32
	Count int
	dev   graphics.Device
}

// Upload copies vertices to device memory once with a static-draw hint. The
// device's context must be current.
func Upload(dev graphics.Device, vertices []Vertex) *Buffer {
	return &Buffer{
		ID:    dev.NewStaticBuffer(Bytes(vertices)),
		Count: len(vertices),
		dev:   dev,
	}
}

func (b *Buffer) Destroy() {
	if b == nil || b.ID == 0 {
		return
	}
	b.dev.DeleteBuffer(b.ID)
	b.ID = 0
}
