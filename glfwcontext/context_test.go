package glfwcontext

import (
	"testing"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/richinsley/gotriangle/graphics"
)

func TestKeyCallbackQueuesEvents(t *testing.T) {
	c := &Context{}
	c.glfwKeyCallback(nil, glfw.KeyEscape, 9, glfw.Press, 0)
	c.glfwKeyCallback(nil, glfw.KeyEscape, 9, glfw.Release, 0)
	c.glfwKeyCallback(nil, glfw.KeySpace, 65, glfw.Repeat, glfw.ModShift)

	want := []graphics.KeyEvent{
		{Key: graphics.KeyEscape, Scancode: 9, Action: graphics.Press},
		{Key: graphics.KeyEscape, Scancode: 9, Action: graphics.Release},
		{Key: graphics.Key(glfw.KeySpace), Scancode: 65, Action: graphics.Repeat},
	}
	got := c.Events()
	if len(got) != len(want) {
		t.Fatalf("Events() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d = %+v, want %+v", i, got[i], want[i])
		}
	}
	if again := c.Events(); len(again) != 0 {
		t.Errorf("queue not drained: %v", again)
	}
}

func TestKeyConstantsMatchGLFW(t *testing.T) {
	if graphics.KeyEscape != graphics.Key(glfw.KeyEscape) {
		t.Errorf("KeyEscape = %d, glfw.KeyEscape = %d", graphics.KeyEscape, glfw.KeyEscape)
	}
	for _, tt := range []struct {
		ours   graphics.Action
		theirs glfw.Action
	}{
		{graphics.Release, glfw.Release},
		{graphics.Press, glfw.Press},
		{graphics.Repeat, glfw.Repeat},
	} {
		if tt.ours != graphics.Action(tt.theirs) {
			t.Errorf("action %d does not match glfw %d", tt.ours, tt.theirs)
		}
	}
}
