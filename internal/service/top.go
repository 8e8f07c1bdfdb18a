package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/pribylovaa/producthunt-top10/internal/metrics"
	"github.com/pribylovaa/producthunt-top10/internal/models"
	"github.com/pribylovaa/producthunt-top10/internal/pkg/log"
	"github.com/pribylovaa/producthunt-top10/internal/ranking"
	"github.com/pribylovaa/producthunt-top10/internal/report"
)

// Top загружает топ постов за скользящее окно cfg.Upstream.WindowDays,
// нормализует записи и возвращает их по (votes, desc), не больше cfg.Upstream.Limit.
//
// Особенности:
//   - окно: [сегодня - (WindowDays-1) дней, сейчас];
//   - записи с пустым именем или неразбираемым createdAt отбрасываются;
//   - пустая выдача — не ошибка.
func (s *Service) Top(ctx context.Context) ([]models.Post, error) {
	const op = "service/top/Top"

	lg := log.From(ctx)
	now := s.now().UTC()
	after := now.AddDate(0, 0, -(s.cfg.Upstream.WindowDays - 1))

	start := time.Now()
	raw, err := s.source.TopPosts(ctx, after, now, s.cfg.Upstream.Limit)
	metrics.UpstreamDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.UpstreamFetches.WithLabelValues(fetchResult(err)).Inc()
		lg.Warn("upstream_fetch_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	metrics.UpstreamFetches.WithLabelValues(metrics.ResultOK).Inc()

	posts := make([]models.Post, 0, len(raw))
	for i, r := range raw {
		p, ok := finalizePost(r, i)
		if !ok {
			metrics.DroppedPosts.Inc()
			lg.Warn("post_dropped",
				slog.String("op", op),
				slog.String("name", r.Name),
				slog.String("created_at", r.CreatedAt),
			)
			continue
		}
		posts = append(posts, p)
	}

	posts = ranking.TopByVotes(posts, s.cfg.Upstream.Limit)

	lg.Info("top_loaded",
		slog.String("op", op),
		slog.Int("received", len(raw)),
		slog.Int("returned", len(posts)),
	)

	return posts, nil
}

// ExportPDF рисует PDF-отчёт по posts в порядке spec и пишет его в w.
// Возвращает имя файла вида <prefix>-<YYYY-MM-DD>.pdf.
func (s *Service) ExportPDF(posts []models.Post, spec models.SortSpec, w io.Writer) (string, error) {
	const op = "service/top/ExportPDF"

	exp := report.Export{Options: s.ReportOptions(), FilePrefix: s.cfg.Report.FilePrefix}
	name, err := exp.WritePDF(w, posts, spec, s.now())
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return name, nil
}

// Summary — текст сводки для буфера обмена на дату date.
func (s *Service) Summary(posts []models.Post, date time.Time) string {
	metrics.Exports.WithLabelValues("summary").Inc()
	return report.Summary(s.cfg.Report.SummaryTitle, posts, date)
}

// ReportOptions — тексты отчёта из конфигурации.
func (s *Service) ReportOptions() report.Options {
	return report.Options{
		Title:          s.cfg.Report.Title,
		DateRangeLabel: s.cfg.Upstream.DateRangeLabel(),
		FooterLines:    s.cfg.Report.Footer,
	}
}

// Now — текущее время сервиса (подменяется в тестах).
func (s *Service) Now() time.Time {
	return s.now()
}

func fetchResult(err error) string {
	if errors.Is(err, ErrMalformedPayload) {
		return metrics.ResultMalformed
	}
	return metrics.ResultUnavailable
}
