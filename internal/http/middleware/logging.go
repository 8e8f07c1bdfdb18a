package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/pribylovaa/producthunt-top10/internal/pkg/log"
)

// Logging кладёт в контекст request-scoped логгер и пишет одну запись "http"
// на запрос. Ставится снаружи RequestID: тот дополняет логгер из контекста
// атрибутом request_id, а заголовок X-Request-Id читается уже после обработки.
func Logging(l *slog.Logger) Middleware {
	if l == nil {
		l = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r = r.WithContext(log.Into(r.Context(), l))

			sw := newStatusWriter(w)
			start := time.Now()

			next.ServeHTTP(sw, r)

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.Status()),
				slog.Duration("dur", time.Since(start)),
				slog.Int("bytes", sw.count),
			}

			if rid := r.Header.Get("X-Request-Id"); rid != "" {
				attrs = append(attrs, slog.String("request_id", rid))
			}

			lvl := slog.LevelInfo
			if sw.Status() >= http.StatusInternalServerError {
				lvl = slog.LevelWarn
			}

			l.LogAttrs(r.Context(), lvl, "http", attrs...)
		})
	}
}
