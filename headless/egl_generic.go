//go:build !linux

package headless

import (
	"fmt"

	"github.com/richinsley/gotriangle/graphics"
)

func NewHeadless(width, height int) (graphics.Context, error) {
	return nil, fmt.Errorf("%w: egl headless rendering is not supported on this platform", graphics.ErrInitialization)
}
