package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	apierrors "github.com/pribylovaa/producthunt-top10/internal/errors"
	"github.com/pribylovaa/producthunt-top10/internal/models"
	"github.com/pribylovaa/producthunt-top10/internal/pkg/log"
	"github.com/pribylovaa/producthunt-top10/internal/service"
)

// ListTop — GET /api/top10: JSON-массив постов по (votes, desc), не больше 10.
func (h *Handlers) ListTop(w http.ResponseWriter, r *http.Request) {
	posts, err := h.Service.Top(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	if posts == nil {
		posts = []models.Post{}
	}

	writeJSON(w, http.StatusOK, posts)
}

// ReportPDF — GET /api/top10/report.pdf?sort=&dir=: PDF-отчёт в заданном порядке.
// Пустые sort/dir означают (votes, desc).
func (h *Handlers) ReportPDF(w http.ResponseWriter, r *http.Request) {
	const op = "http/handlers/ReportPDF"

	q := r.URL.Query()
	spec, err := models.ParseSortSpec(q.Get("sort"), q.Get("dir"))
	if err != nil {
		apierrors.WriteError(w, r, fmt.Errorf("%s: %v: %w", op, err, service.ErrInvalidArgument))
		return
	}

	posts, err := h.Service.Top(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	var buf bytes.Buffer
	name, err := h.Service.ExportPDF(posts, spec, &buf)
	if err != nil {
		log.From(r.Context()).Error("export_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		apierrors.WriteError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

// Summary — GET /api/top10/summary: текстовая сводка на текущую дату.
func (h *Handlers) Summary(w http.ResponseWriter, r *http.Request) {
	posts, err := h.Service.Top(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(h.Service.Summary(posts, h.Service.Now())))
}
