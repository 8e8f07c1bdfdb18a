// layout раскладывает отчёт в постраничный набор примитивов.
//
// Пакет не зависит от конкретного движка отрисовки: ширина текста берётся
// из переданного Metrics, а результат — Document, который затем рисует
// report.RenderPDF (или тест проверяет напрямую).
package layout

// Style — начертание текста.
type Style struct {
	Size float64
	Bold bool
}

// Primitive — элемент страницы: Text, Rect или Line.
type Primitive interface {
	primitive()
}

// Text — строка с базовой линией в (X, Y).
type Text struct {
	X, Y  float64
	Value string
	Style Style
}

// Rect — контур прямоугольника.
type Rect struct {
	X, Y, W, H float64
}

// Line — отрезок заданной толщины.
type Line struct {
	X1, Y1, X2, Y2 float64
	Width          float64
}

func (Text) primitive() {}
func (Rect) primitive() {}
func (Line) primitive() {}

// Page — примитивы одной страницы в порядке отрисовки.
type Page struct {
	Primitives []Primitive
}

// Document — страницы отчёта в порядке следования.
type Document struct {
	Title string
	Pages []Page
}

// Texts возвращает текстовые примитивы страницы, удобно для проверок.
func (p Page) Texts() []Text {
	var out []Text
	for _, pr := range p.Primitives {
		if t, ok := pr.(Text); ok {
			out = append(out, t)
		}
	}
	return out
}

// Rects возвращает прямоугольники страницы.
func (p Page) Rects() []Rect {
	var out []Rect
	for _, pr := range p.Primitives {
		if r, ok := pr.(Rect); ok {
			out = append(out, r)
		}
	}
	return out
}

// Metrics измеряет ширину строки заданного начертания в единицах страницы.
type Metrics interface {
	StringWidth(style Style, s string) float64
}

// MetricsFunc — адаптер функции к Metrics.
type MetricsFunc func(style Style, s string) float64

func (f MetricsFunc) StringWidth(style Style, s string) float64 { return f(style, s) }

// Geometry — политика разрыва страниц.
//
// Перед очередным блоком (строкой таблицы, карточкой поста) проверяется
// Cursor.Y > BreakY; если да — новая страница, курсор на TopY.
// BottomY (если > 0) — жёсткая нижняя граница для блоков известной высоты,
// см. Ensure.
type Geometry struct {
	TopY    float64
	BreakY  float64
	BottomY float64
}

// Cursor — текущая позиция раскладки. Page — индекс с нуля.
type Cursor struct {
	X, Y float64
	Page int
}

// Builder накапливает Document за один проход раскладки.
// Не потокобезопасен и после Document() не переиспользуется.
type Builder struct {
	doc      Document
	cursor   Cursor
	geometry Geometry
	metrics  Metrics
}

// NewBuilder создаёт документ из одной пустой страницы с курсором в (x, TopY).
func NewBuilder(g Geometry, m Metrics, x float64) *Builder {
	return &Builder{
		doc:      Document{Pages: []Page{{}}},
		cursor:   Cursor{X: x, Y: g.TopY},
		geometry: g,
		metrics:  m,
	}
}

// Cursor — текущая позиция.
func (b *Builder) Cursor() Cursor { return b.cursor }

// MoveTo ставит курсор на y текущей страницы.
func (b *Builder) MoveTo(y float64) { b.cursor.Y = y }

// Advance сдвигает курсор вниз на dy.
func (b *Builder) Advance(dy float64) { b.cursor.Y += dy }

// NewPage начинает новую страницу и ставит курсор на TopY.
func (b *Builder) NewPage() {
	b.doc.Pages = append(b.doc.Pages, Page{})
	b.cursor.Page = len(b.doc.Pages) - 1
	b.cursor.Y = b.geometry.TopY
}

// BreakIfNeeded переносит раскладку на новую страницу, если курсор
// ушёл за BreakY. Возвращает true, если страница сменилась.
func (b *Builder) BreakIfNeeded() bool {
	if b.cursor.Y > b.geometry.BreakY {
		b.NewPage()
		return true
	}
	return false
}

// Ensure — BreakIfNeeded для блока высотой h: дополнительно переносит блок,
// если он не помещается до BottomY.
func (b *Builder) Ensure(h float64) bool {
	if b.BreakIfNeeded() {
		return true
	}

	if b.geometry.BottomY > 0 && b.cursor.Y+h > b.geometry.BottomY {
		b.NewPage()
		return true
	}

	return false
}

// Measure возвращает MeasureFunc для начертания style.
func (b *Builder) Measure(style Style) MeasureFunc {
	return func(s string) float64 { return b.metrics.StringWidth(style, s) }
}

// Text рисует строку на текущей странице.
func (b *Builder) Text(x, y float64, value string, style Style) {
	b.add(Text{X: x, Y: y, Value: value, Style: style})
}

// Rect рисует контур на текущей странице.
func (b *Builder) Rect(x, y, w, h float64) {
	b.add(Rect{X: x, Y: y, W: w, H: h})
}

// Line рисует отрезок на текущей странице.
func (b *Builder) Line(x1, y1, x2, y2, width float64) {
	b.add(Line{X1: x1, Y1: y1, X2: x2, Y2: y2, Width: width})
}

// Document возвращает собранный документ.
func (b *Builder) Document() *Document {
	return &b.doc
}

func (b *Builder) add(p Primitive) {
	page := &b.doc.Pages[b.cursor.Page]
	page.Primitives = append(page.Primitives, p)
}
