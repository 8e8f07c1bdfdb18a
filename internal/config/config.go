// config — источник загрузки конфигурации сервиса Product Hunt Top 10.
//
// Источники (по убыванию приоритета):
//  1. явный путь --config;
//  2. CONFIG_PATH;
//  3. ./local.yaml;
//  4. только ENV (cleanenv).
package config

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env      string         `yaml:"env" env:"ENV" env-default:"local"`
	HTTP     HTTPConfig     `yaml:"http"`
	Upstream UpstreamConfig `yaml:"upstream"`
	Report   ReportConfig   `yaml:"report"`
	Timeouts TimeoutConfig  `yaml:"timeouts"`
}

// TimeoutConfig — таймаут обработки одного запроса.
type TimeoutConfig struct {
	Service time.Duration `yaml:"service" env:"SERVICE_TIMEOUT" env-default:"15s"`
}

// HTTPConfig — публичный HTTP-сервер.
type HTTPConfig struct {
	Host string `yaml:"host" env:"HTTP_HOST" env-default:"0.0.0.0"`
	Port string `yaml:"port" env:"HTTP_PORT" env-default:"50090"`
}

func (h HTTPConfig) Addr() string { return net.JoinHostPort(h.Host, h.Port) }

// UpstreamConfig — доступ к Product Hunt API v2.
type UpstreamConfig struct {
	TokenURL     string        `yaml:"token_url"     env:"PRODUCTHUNT_TOKEN_URL"   env-default:"https://api.producthunt.com/v2/oauth/token"`
	GraphQLURL   string        `yaml:"graphql_url"   env:"PRODUCTHUNT_GRAPHQL_URL" env-default:"https://api.producthunt.com/v2/api/graphql"`
	ClientID     string        `yaml:"client_id"     env:"PRODUCTHUNT_API_KEY"`
	ClientSecret string        `yaml:"client_secret" env:"PRODUCTHUNT_API_SECRET"`
	WindowDays   int           `yaml:"window_days"   env:"PRODUCTHUNT_WINDOW_DAYS" env-default:"10"`
	Limit        int           `yaml:"limit"         env:"PRODUCTHUNT_LIMIT"       env-default:"10"`
	Timeout      time.Duration `yaml:"timeout"       env:"PRODUCTHUNT_TIMEOUT"     env-default:"10s"`
}

// ReportConfig — тексты отчёта и сводки.
type ReportConfig struct {
	Title        string   `yaml:"title"         env:"REPORT_TITLE"         env-default:"Product Hunt Top 10 Analysis"`
	SummaryTitle string   `yaml:"summary_title" env:"REPORT_SUMMARY_TITLE" env-default:"Product Hunt Top 10"`
	FilePrefix   string   `yaml:"file_prefix"   env:"REPORT_FILE_PREFIX"   env-default:"producthunt-top10"`
	Footer       []string `yaml:"footer"        env:"REPORT_FOOTER"        env-separator:"|" env-default:"Generated by Product Hunt Top 10 Viewer|https://github.com/ChimdumebiNebolisa/producthunt-top10"`
}

// DateRangeLabel — подпись окна выборки для подзаголовка отчёта.
func (u UpstreamConfig) DateRangeLabel() string {
	return fmt.Sprintf("Past %d days", u.WindowDays)
}

// MustLoad — паника при ошибке загрузки.
func MustLoad(path string) *Config {
	cfg, err := Load(path)

	if err != nil {
		panic(err)
	}

	return cfg
}

func Load(path string) (*Config, error) {
	var cfg Config

	if err := readSources(path, &cfg); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// readSources заполняет dst из первого доступного источника по приоритету
// пакета и накладывает поверх ENV.
func readSources(path string, dst any) error {
	tryRead := func(p string) error {
		if p == "" {
			return fmt.Errorf("empty config path")
		}

		if _, err := os.Stat(p); err != nil {
			return fmt.Errorf("config file %q stat failed: %w", p, err)
		}

		if err := cleanenv.ReadConfig(p, dst); err != nil {
			return fmt.Errorf("failed to read config: %w", err)
		}

		if err := cleanenv.ReadEnv(dst); err != nil {
			return fmt.Errorf("failed to overlay env: %w", err)
		}

		return nil
	}

	switch envPath := os.Getenv("CONFIG_PATH"); {
	// 1) --config
	case path != "":
		return tryRead(path)
	// 2) CONFIG_PATH
	case envPath != "":
		return tryRead(envPath)
	default:
		// 3) ./local.yaml
		if _, statErr := os.Stat("local.yaml"); statErr == nil {
			return tryRead("local.yaml")
		}

		// 4) только ENV
		if err := cleanenv.ReadEnv(dst); err != nil {
			return fmt.Errorf("config not found: provide --config, CONFIG_PATH, local.yaml or env vars: %w", err)
		}

		return nil
	}
}

// validate — базовая валидация значений.
func (c *Config) validate() error {
	if c.Upstream.ClientID == "" || c.Upstream.ClientSecret == "" {
		return fmt.Errorf("upstream.client_id and upstream.client_secret are required")
	}
	if c.Upstream.WindowDays <= 0 {
		return fmt.Errorf("upstream.window_days must be > 0")
	}
	if c.Upstream.Limit <= 0 {
		return fmt.Errorf("upstream.limit must be > 0")
	}
	if c.Upstream.Timeout <= 0 {
		return fmt.Errorf("upstream.timeout must be > 0")
	}
	return nil
}
