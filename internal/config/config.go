package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Backend struct {
		URL     string        `env:"REELIUM_BACKEND_URL" env-default:"http://localhost:8000" env-description:"base URL of the reel scraping backend"`
		Timeout time.Duration `env:"REELIUM_TIMEOUT" env-default:"30s" env-description:"HTTP timeout for a single fetch"`
	}
	Browse struct {
		Limit int    `env:"REELIUM_LIMIT" env-default:"6" env-description:"number of reels to request (1-50)"`
		Theme string `env:"REELIUM_THEME" env-default:"dark" env-description:"color theme: dark or light"`
	}
	Player struct {
		Path    string `env:"REELIUM_PLAYER" env-default:"mpv" env-description:"mpv executable used for playback"`
		NoVideo bool   `env:"REELIUM_NO_VIDEO" env-default:"false" env-description:"disable video playback"`
	}
	Log struct {
		Level string `env:"LOG_LEVEL" env-default:"info"`
		File  string `env:"LOG_FILE" env-description:"log file path; empty discards logs"`
	}
}

// New reads configuration from the environment.
func New() (*Config, error) {
	cfg := &Config{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		help, _ := cleanenv.GetDescription(cfg, nil)
		return nil, fmt.Errorf("read configuration: %w\n%s", err, help)
	}
	return cfg, nil
}
