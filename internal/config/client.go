package config

import (
	"fmt"
	"net/url"
	"time"
)

// ClientConfig — конфигурация CLI: адрес сервера и тексты отчёта.
// Источники те же, что у Config; секции upstream/http CLI не читает.
type ClientConfig struct {
	Env    string       `yaml:"env" env:"ENV" env-default:"local"`
	Server ServerConfig `yaml:"server"`
	Report ReportConfig `yaml:"report"`
	// WindowDays — только для подписи "Past N days" в отчёте.
	WindowDays int `yaml:"window_days" env:"PRODUCTHUNT_WINDOW_DAYS" env-default:"10"`
}

// ServerConfig — где искать /api/top10.
type ServerConfig struct {
	URL     string        `yaml:"url"     env:"TOP10_SERVER_URL"     env-default:"http://localhost:50090"`
	Timeout time.Duration `yaml:"timeout" env:"TOP10_SERVER_TIMEOUT" env-default:"30s"`
}

// DateRangeLabel — подпись окна выборки, как у сервера.
func (c ClientConfig) DateRangeLabel() string {
	return UpstreamConfig{WindowDays: c.WindowDays}.DateRangeLabel()
}

// LoadClient загружает ClientConfig.
func LoadClient(path string) (*ClientConfig, error) {
	var cfg ClientConfig

	if err := readSources(path, &cfg); err != nil {
		return nil, err
	}

	if u, err := url.Parse(cfg.Server.URL); err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("server.url must be an absolute url, got %q", cfg.Server.URL)
	}
	if cfg.WindowDays <= 0 {
		return nil, fmt.Errorf("window_days must be > 0")
	}

	return &cfg, nil
}

// MustLoadClient — паника при ошибке загрузки.
func MustLoadClient(path string) *ClientConfig {
	cfg, err := LoadClient(path)
	if err != nil {
		panic(err)
	}

	return cfg
}
