//go:build !ebiten

package app

import "fmt"

// Title is the window title.
const Title = "Cellular Automaton"

// Run reports that the GUI needs the ebiten build tag.
func Run(cfg *Config) error {
	if _, err := NewLoop(cfg); err != nil {
		return err
	}
	return fmt.Errorf("the GUI requires building with the 'ebiten' tag (go run -tags ebiten ./cmd/ca)")
}
