//go:build !cgo

package hal

import "github.com/pkg/errors"

// WindowConfig describes the desktop window.
type WindowConfig struct {
	Title  string
	Width  int
	Height int
	TPS    int
}

func RunWindow(_ WindowConfig, _ func(HAL) func() error) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}

func (h *hostHAL) pollInput() {
	// No keyboard or mouse without the window backend.
}
