//go:build !linux

package headless

import (
	"fmt"

	"github.com/richinsley/hellotriangle/graphics"
	"github.com/richinsley/hellotriangle/logger"
)

func New(width, height, major, minor int, log *logger.Logger) (graphics.Context, error) {
	return nil, fmt.Errorf("egl headless rendering is not supported on this platform")
}
