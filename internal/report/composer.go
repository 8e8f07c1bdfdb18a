// report собирает PDF-отчёт и текстовую сводку по топу постов.
//
// Порядок секций документа фиксирован:
// заголовок -> подзаголовок -> разделитель -> таблица -> статистика ->
// подробности по каждому посту -> подвал на последней странице.
package report

import (
	"fmt"
	"time"

	"github.com/pribylovaa/producthunt-top10/internal/layout"
	"github.com/pribylovaa/producthunt-top10/internal/models"
	"github.com/pribylovaa/producthunt-top10/internal/ranking"
	"github.com/pribylovaa/producthunt-top10/internal/stats"
)

// Геометрия страницы A4 в миллиметрах.
const (
	marginX    = 20.0
	pageRightX = 190.0
	topY       = 20.0
	breakY     = 270.0
	bottomY    = 285.0

	titleY     = 30.0
	subtitleY  = 40.0
	subtitleLH = 7.0
	separatorY = 60.0
	tableY     = 70.0

	statsGap     = 20.0
	statsLH      = 7.0
	detailsGap   = 19.0
	detailLH     = 7.0
	detailWrapLH = 5.0
	detailGap    = 12.0

	footerY  = 290.0
	footerLH = 5.0
)

var (
	titleStyle   = layout.Style{Size: 20, Bold: true}
	subStyle     = layout.Style{Size: 12}
	headingStyle = layout.Style{Size: 12, Bold: true}
	headerStyle  = layout.Style{Size: 10, Bold: true}
	bodyStyle    = layout.Style{Size: 10}
	boldStyle    = layout.Style{Size: 10, Bold: true}
	footerStyle  = layout.Style{Size: 8}
)

// Options — тексты отчёта.
type Options struct {
	Title          string
	DateRangeLabel string
	FooterLines    []string
}

// Composer раскладывает отчёт в layout.Document.
type Composer struct {
	opts    Options
	metrics layout.Metrics
}

// NewComposer создаёт Composer. metrics определяет ширину текста
// (в проде — PDFMetrics, в тестах — любая детерминированная функция).
func NewComposer(opts Options, metrics layout.Metrics) *Composer {
	return &Composer{opts: opts, metrics: metrics}
}

// Table — колонки таблицы постов.
func Table() layout.Table {
	return layout.Table{
		X: marginX,
		Columns: []layout.Column{
			{Header: "Rank", Width: 15},
			{Header: "Product Name", Width: 50, Wrap: true},
			{Header: "Tagline", Width: 80, Wrap: true},
			{Header: "Votes", Width: 20},
			{Header: "Launch Date", Width: 25},
		},
		HeaderHeight: 8,
		LineHeight:   5,
		MinRowHeight: 8,
		PadX:         2,
		PadY:         5,
		HeaderStyle:  headerStyle,
		BodyStyle:    bodyStyle,
	}
}

// Compose строит документ. posts ранжируются по spec тем же ranking.Rank,
// что и таблица на экране, поэтому порядок совпадает. Статистика считается
// по posts в исходном порядке: при равенстве голосов Highest/Lowest те же,
// что на экране.
func (c *Composer) Compose(posts []models.Post, spec models.SortSpec, now time.Time) *layout.Document {
	ranked := ranking.Rank(posts, spec)

	b := layout.NewBuilder(layout.Geometry{TopY: topY, BreakY: breakY, BottomY: bottomY}, c.metrics, marginX)

	c.header(b, spec, now)
	c.table(b, ranked)
	c.statistics(b, stats.Summarize(posts))
	c.details(b, ranked)
	c.footer(b)

	doc := b.Document()
	doc.Title = c.opts.Title
	return doc
}

func (c *Composer) header(b *layout.Builder, spec models.SortSpec, now time.Time) {
	b.Text(marginX, titleY, c.opts.Title, titleStyle)

	b.Text(marginX, subtitleY, "Generated on: "+FormatDate(now), subStyle)
	b.Text(marginX, subtitleY+subtitleLH, "Sorted by: "+spec.String(), subStyle)
	b.Text(marginX, subtitleY+2*subtitleLH, "Data from: "+c.opts.DateRangeLabel, subStyle)

	b.Line(marginX, separatorY, pageRightX, separatorY, 0.5)
	b.MoveTo(tableY)
}

func (c *Composer) table(b *layout.Builder, ranked []models.Post) {
	rows := make([]layout.Row, len(ranked))
	for i, p := range ranked {
		rows[i] = layout.Row{
			fmt.Sprint(i + 1),
			p.Name,
			p.Tagline,
			FormatVotes(p.VotesCount),
			FormatDate(p.CreatedAt),
		}
	}

	b.Table(Table(), rows)
}

func (c *Composer) statistics(b *layout.Builder, st stats.Stats) {
	lines := []string{
		"Total Votes: " + FormatVotes(st.Total),
		"Average Votes: " + FormatVotes(st.Average),
		"Highest Votes: " + postVotes(st.Highest),
		"Lowest Votes: " + postVotes(st.Lowest),
	}
	height := 10 + float64(len(lines)-1)*statsLH

	b.Advance(statsGap)
	b.Ensure(height)

	y := b.Cursor().Y
	b.Text(marginX, y, "Summary Statistics", headingStyle)

	for i, line := range lines {
		b.Text(marginX, y+10+float64(i)*statsLH, line, bodyStyle)
	}

	b.MoveTo(y + height)
}

func (c *Composer) details(b *layout.Builder, ranked []models.Post) {
	b.Advance(detailsGap)
	b.Ensure(10 + 5*detailLH)

	b.Text(marginX, b.Cursor().Y, "Detailed Product Information", headingStyle)
	b.Advance(10)

	if len(ranked) == 0 {
		b.Text(marginX, b.Cursor().Y, "No posts to show.", bodyStyle)
		b.Advance(detailLH)
		return
	}

	measure := b.Measure(bodyStyle)
	width := pageRightX - marginX

	for i, p := range ranked {
		tagline := layout.Wrap("Tagline: "+p.Tagline, width, measure)
		extra := float64(max(len(tagline)-1, 0)) * detailWrapLH
		b.Ensure(4*detailLH + extra)

		y := b.Cursor().Y
		b.Text(marginX, y, fmt.Sprintf("%d. %s", i+1, p.Name), boldStyle)
		y += detailLH

		for n, line := range tagline {
			if n > 0 {
				y += detailWrapLH
			}
			b.Text(marginX, y, line, bodyStyle)
		}
		y += detailLH

		b.Text(marginX, y, "Votes: "+FormatVotes(p.VotesCount), bodyStyle)
		y += detailLH
		b.Text(marginX, y, "Launch Date: "+FormatDate(p.CreatedAt), bodyStyle)
		y += detailLH
		b.Text(marginX, y, "URL: "+p.URL, bodyStyle)
		y += detailGap

		b.MoveTo(y)
	}
}

func (c *Composer) footer(b *layout.Builder) {
	for i, line := range c.opts.FooterLines {
		b.Text(marginX, footerY+float64(i)*footerLH, line, footerStyle)
	}
}

// postVotes — "1,234 (Name)" или "—" для пустого набора.
func postVotes(p *models.Post) string {
	if p == nil {
		return "—"
	}
	return fmt.Sprintf("%s (%s)", FormatVotes(p.VotesCount), p.Name)
}
