// keygrabd registers one global hotkey and reports every trigger, as a small
// host around the platform components: the X11 grab/wait loop on Linux and
// the debounced key-state poller on Windows.
package main

import (
	"flag"
	"log"

	"github.com/gen2brain/beeep"

	"github.com/1broseidon/keygrab/internal/config"
)

func main() {
	configPath := flag.String("config", "", "path to config file (default ~/.config/keygrab/config.yaml)")
	binding := flag.String("hotkey", "", "hotkey combination, overrides the config file")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("keygrabd: %v", err)
	}
	if *binding != "" {
		cfg.Hotkey = *binding
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("keygrabd: %v", err)
	}

	log.Printf("keygrabd: binding %s", cfg.Hotkey)
	if err := run(cfg); err != nil {
		log.Fatalf("keygrabd: %v", err)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromPath(path)
	}
	return config.Load()
}

func notifyTrigger(cfg *config.Config) {
	if !cfg.Notify {
		return
	}
	if err := beeep.Notify("keygrab", cfg.Hotkey+" triggered", ""); err != nil {
		log.Printf("notification failed: %v", err)
	}
}
