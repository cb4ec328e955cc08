package geometry

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/richinsley/gotriangle/graphics/graphicstest"
)

func TestLayoutMatchesVertex(t *testing.T) {
	if Stride != 5*4 {
		t.Fatalf("Stride = %d, want 20", Stride)
	}
	if PosOffset != 0 || ColOffset != 8 {
		t.Fatalf("offsets pos=%d col=%d, want 0 and 8", PosOffset, ColOffset)
	}

	attribs := Layout(3, 7)
	if len(attribs) != 2 {
		t.Fatalf("len(Layout) = %d", len(attribs))
	}
	pos, col := attribs[0], attribs[1]
	if pos.Location != 3 || pos.Size != 2 || pos.Stride != Stride || pos.Offset != PosOffset {
		t.Errorf("position attrib = %+v", pos)
	}
	if col.Location != 7 || col.Size != 3 || col.Stride != Stride || col.Offset != ColOffset {
		t.Errorf("colour attrib = %+v", col)
	}
}

func TestBytesIsInterleaved(t *testing.T) {
	b := Bytes(Triangle[:])
	if len(b) != 3*int(Stride) {
		t.Fatalf("len = %d, want %d", len(b), 3*Stride)
	}
	float := func(i int) float32 {
		return math.Float32frombits(binary.NativeEndian.Uint32(b[i*4:]))
	}
	// Second vertex: (0.6, -0.4) green.
	want := []float32{0.6, -0.4, 0, 1, 0}
	for i, w := range want {
		if got := float(5 + i); got != w {
			t.Errorf("float %d = %v, want %v", 5+i, got, w)
		}
	}
	if Bytes(nil) != nil {
		t.Error("Bytes(nil) should be nil")
	}
}

func TestUploadOnce(t *testing.T) {
	dev := graphicstest.NewDevice()
	buf := Upload(dev, Triangle[:])
	if len(dev.Buffers) != 1 {
		t.Fatalf("buffers = %d, want 1", len(dev.Buffers))
	}
	if buf.Count != 3 || len(dev.Buffers[buf.ID]) != 60 {
		t.Fatalf("count=%d bytes=%d", buf.Count, len(dev.Buffers[buf.ID]))
	}

	id := buf.ID
	buf.Destroy()
	buf.Destroy()
	if len(dev.DeletedBuffers) != 1 || dev.DeletedBuffers[0] != id {
		t.Fatalf("deleted = %v", dev.DeletedBuffers)
	}
}
