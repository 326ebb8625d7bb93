//go:build windows

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/1broseidon/keygrab/internal/config"
	"github.com/1broseidon/keygrab/internal/hotkeyparse"
	"github.com/1broseidon/keygrab/internal/winpoll"
)

const defaultPollInterval = 25 * time.Millisecond

func run(cfg *config.Config) error {
	combo, err := hotkeyparse.VK(cfg.Hotkey)
	if err != nil {
		return err
	}

	interval := time.Duration(cfg.PollIntervalMS) * time.Millisecond
	if interval <= 0 {
		interval = defaultPollInterval
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("keygrabd: shutting down")
			return nil
		case <-ticker.C:
			if winpoll.HotkeyPressed(combo) {
				log.Printf("hotkey: %s", cfg.Hotkey)
				notifyTrigger(cfg)
			}
		}
	}
}
