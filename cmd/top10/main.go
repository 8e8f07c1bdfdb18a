package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/mattn/go-isatty"

	"github.com/pribylovaa/producthunt-top10/internal/clients"
	"github.com/pribylovaa/producthunt-top10/internal/clipboard"
	"github.com/pribylovaa/producthunt-top10/internal/config"
	"github.com/pribylovaa/producthunt-top10/internal/models"
	"github.com/pribylovaa/producthunt-top10/internal/pkg/log"
	"github.com/pribylovaa/producthunt-top10/internal/report"
	"github.com/pribylovaa/producthunt-top10/internal/session"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	var (
		configPath string
		server     string
		sortField  string
		sortDir    string
		exportDir  string
		copySum    bool
	)
	flag.StringVar(&configPath, "config", "", "path to config file")
	flag.StringVar(&server, "server", "", "top10-server base url (overrides config)")
	flag.StringVar(&sortField, "sort", "", "sort field: votes, createdAt, name")
	flag.StringVar(&sortDir, "dir", "", "sort direction: asc, desc")
	flag.StringVar(&exportDir, "export", "", "write the PDF report into this directory")
	flag.BoolVar(&copySum, "copy", false, "copy the text summary to the clipboard")
	flag.Parse()

	cfg := config.MustLoadClient(configPath)
	if server != "" {
		cfg.Server.URL = server
	}

	lg := setupLogger(cfg.Env)
	slog.SetDefault(lg)

	if err := run(cfg, sortField, sortDir, exportDir, copySum); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(cfg *config.ClientConfig, sortField, sortDir, exportDir string, copySum bool) error {
	const op = "cmd/top10/run"

	spec, err := models.ParseSortSpec(sortField, sortDir)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	ctx = log.Into(ctx, slog.Default())

	client, err := clients.New(cfg.Server.URL, &http.Client{Timeout: cfg.Server.Timeout})
	if err != nil {
		return err
	}

	sess := session.New(client, session.Options{
		Report: report.Options{
			Title:          cfg.Report.Title,
			DateRangeLabel: cfg.DateRangeLabel(),
			FooterLines:    cfg.Report.Footer,
		},
		SummaryTitle: cfg.Report.SummaryTitle,
		FilePrefix:   cfg.Report.FilePrefix,
	})

	if err := sess.Fetch(ctx); err != nil {
		return err
	}

	if err := sess.SortBy(spec); err != nil {
		return err
	}

	v := sess.View()
	if err := report.WriteText(os.Stdout, v.Posts, v.Stats, v.Sort, v.LastUpdated); err != nil {
		return err
	}

	if exportDir != "" {
		var buf bytes.Buffer
		name, err := sess.Export(&buf)
		if err != nil {
			return err
		}

		path := filepath.Join(exportDir, name)
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("%s: write report: %w", op, err)
		}

		fmt.Printf("\nReport saved to %s\n", path)
	}

	if copySum {
		writers := []clipboard.Writer{clipboard.System{}}
		if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
			writers = append(writers, clipboard.OSC52{Out: os.Stdout})
		}

		if clipboard.Copy(sess.Summary(), writers...) {
			fmt.Println("Summary copied to clipboard.")
		} else {
			slog.Default().Debug("clipboard_unavailable", slog.String("op", op))
		}
	}

	return nil
}

// setupLogger пишет в stderr: stdout занят таблицей.
func setupLogger(env string) *slog.Logger {
	switch env {
	case envLocal:
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	case envDev:
		return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	}
}
