package report

import (
	"fmt"
	"io"
	"time"

	"github.com/pribylovaa/producthunt-top10/internal/layout"
	"github.com/pribylovaa/producthunt-top10/internal/metrics"
	"github.com/pribylovaa/producthunt-top10/internal/models"
)

// Export — параметры одной выгрузки PDF.
type Export struct {
	Options    Options
	Metrics    layout.Metrics
	FilePrefix string
}

// WritePDF раскладывает posts в порядке spec, пишет PDF в w и возвращает
// имя файла вида <prefix>-<YYYY-MM-DD>.pdf. Удачная выгрузка учитывается
// в metrics.Exports{format="pdf"}.
func (e Export) WritePDF(w io.Writer, posts []models.Post, spec models.SortSpec, now time.Time) (string, error) {
	const op = "report/export/WritePDF"

	m := e.Metrics
	if m == nil {
		m = NewPDFMetrics()
	}

	doc := NewComposer(e.Options, m).Compose(posts, spec, now)
	if err := RenderPDF(doc, w); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	metrics.Exports.WithLabelValues("pdf").Inc()
	return FileName(e.FilePrefix, "pdf", now), nil
}
