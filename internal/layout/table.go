package layout

// Column — колонка таблицы фиксированной ширины.
// Wrap=true — содержимое переносится по словам и влияет на высоту строки.
type Column struct {
	Header string
	Width  float64
	Wrap   bool
}

// Table — параметры таблицы.
type Table struct {
	X            float64
	Columns      []Column
	HeaderHeight float64
	LineHeight   float64
	MinRowHeight float64
	// PadX/PadY — отступ текста от левого края ячейки и от её верха до
	// базовой линии первой строки.
	PadX, PadY  float64
	HeaderStyle Style
	BodyStyle   Style
}

// Row — значения ячеек строки, по одному на колонку.
type Row []string

// Table рисует заголовок в текущей позиции и затем строки rows.
//
// Особенности:
//   - высота строки = max(строк переноса по Wrap-колонкам * LineHeight, MinRowHeight);
//   - все ячейки строки обводятся прямоугольниками одной высоты;
//   - перед каждой строкой проверяется разрыв страницы (Ensure с высотой
//     строки), строка целиком остаётся на одной странице;
//   - после вызова курсор стоит под последней строкой.
func (b *Builder) Table(t Table, rows []Row) {
	y := b.cursor.Y
	x := t.X
	for _, c := range t.Columns {
		b.Rect(x, y, c.Width, t.HeaderHeight)
		b.Text(x+t.PadX, y+t.PadY, c.Header, t.HeaderStyle)
		x += c.Width
	}
	b.Advance(t.HeaderHeight)

	measure := b.Measure(t.BodyStyle)

	for _, row := range rows {
		cells := make([][]string, len(t.Columns))
		lines := 1
		for i, c := range t.Columns {
			value := cellValue(row, i)
			if c.Wrap {
				cells[i] = Wrap(value, c.Width-2*t.PadX, measure)
			} else if value != "" {
				cells[i] = []string{value}
			}
			lines = max(lines, len(cells[i]))
		}

		height := t.RowHeight(lines)
		b.Ensure(height)

		y = b.cursor.Y
		x = t.X
		for i, c := range t.Columns {
			b.Rect(x, y, c.Width, height)
			for n, line := range cells[i] {
				b.Text(x+t.PadX, y+t.PadY+float64(n)*t.LineHeight, line, t.BodyStyle)
			}
			x += c.Width
		}

		b.Advance(height)
	}
}

// RowHeight — высота строки из lines строк текста.
func (t Table) RowHeight(lines int) float64 {
	return max(float64(lines)*t.LineHeight, t.MinRowHeight)
}

func cellValue(row Row, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
