package report

import (
	"fmt"
	"io"
	"sync"

	"github.com/go-pdf/fpdf"

	"github.com/pribylovaa/producthunt-top10/internal/layout"
)

const (
	fontFamily       = "Helvetica"
	defaultLineWidth = 0.2
)

// RenderPDF рисует doc на страницах A4 (мм) и пишет PDF в w.
func RenderPDF(doc *layout.Document, w io.Writer) error {
	const op = "report/pdf/RenderPDF"

	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if doc.Title != "" {
		pdf.SetTitle(doc.Title, true)
	}

	pdf.SetLineWidth(defaultLineWidth)

	for _, page := range doc.Pages {
		pdf.AddPage()

		for _, p := range page.Primitives {
			switch v := p.(type) {
			case layout.Text:
				pdf.SetFont(fontFamily, fontStyle(v.Style), v.Style.Size)
				pdf.Text(v.X, v.Y, tr(v.Value))
			case layout.Rect:
				pdf.Rect(v.X, v.Y, v.W, v.H, "D")
			case layout.Line:
				pdf.SetLineWidth(v.Width)
				pdf.Line(v.X1, v.Y1, v.X2, v.Y2)
				pdf.SetLineWidth(defaultLineWidth)
			}
		}
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("%s: output: %w", op, err)
	}

	return nil
}

// PDFMetrics — layout.Metrics по метрикам шрифтов fpdf, совпадающим с теми,
// которыми RenderPDF рисует текст.
type PDFMetrics struct {
	mu  sync.Mutex
	pdf *fpdf.Fpdf
	tr  func(string) string
}

// NewPDFMetrics создаёт измеритель с собственным экземпляром fpdf.
func NewPDFMetrics() *PDFMetrics {
	pdf := fpdf.New("P", "mm", "A4", "")
	return &PDFMetrics{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
}

// StringWidth — ширина s в миллиметрах.
func (m *PDFMetrics) StringWidth(style layout.Style, s string) float64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.pdf.SetFont(fontFamily, fontStyle(style), style.Size)
	return m.pdf.GetStringWidth(m.tr(s))
}

func fontStyle(s layout.Style) string {
	if s.Bold {
		return "B"
	}
	return ""
}
