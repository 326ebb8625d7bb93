//go:build linux

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/1broseidon/keygrab/internal/config"
	"github.com/1broseidon/keygrab/internal/hotkeyparse"
	"github.com/1broseidon/keygrab/internal/x11grab"
)

func run(cfg *config.Config) error {
	mods, sym, err := hotkeyparse.X11(cfg.Hotkey)
	if err != nil {
		return err
	}

	opts := x11grab.Options{
		Display:      cfg.Display,
		OpenAttempts: cfg.OpenAttempts,
		OpenBackoff:  time.Duration(cfg.OpenBackoffMS) * time.Millisecond,
	}
	hk, err := x11grab.RegisterWithOptions(mods, sym, opts)
	if err != nil {
		if errors.Is(err, x11grab.ErrConflict) {
			return fmt.Errorf("%s is already grabbed by another application", cfg.Hotkey)
		}
		return err
	}
	defer hk.Unregister()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sink := x11grab.SinkFuncs{
		Down: func(uint64) {
			log.Printf("hotkey down: %s", cfg.Hotkey)
		},
		Up: func(uint64) {
			log.Printf("hotkey up: %s", cfg.Hotkey)
			notifyTrigger(cfg)
		},
	}

	err = hk.Watch(ctx, sink, 1)
	if ctx.Err() != nil {
		log.Println("keygrabd: shutting down")
		return nil
	}
	return err
}
