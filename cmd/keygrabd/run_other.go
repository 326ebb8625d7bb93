//go:build !linux && !windows

package main

import (
	"fmt"
	"runtime"

	"github.com/1broseidon/keygrab/internal/config"
)

func run(cfg *config.Config) error {
	return fmt.Errorf("no hotkey backend for %s", runtime.GOOS)
}
