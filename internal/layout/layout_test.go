package layout

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// charWidth — каждая руна шириной в одну единицу.
func charWidth(s string) float64 { return float64(len([]rune(s))) }

var monospace = MetricsFunc(func(_ Style, s string) float64 { return charWidth(s) })

func TestWrap_OneWordPerLineWhenPairsOverflow(t *testing.T) {
	t.Parallel()

	lines := Wrap("aaaaa bbbbb ccccc", 10, charWidth)
	require.Equal(t, []string{"aaaaa", "bbbbb", "ccccc"}, lines)
}

func TestWrap_FillsLineGreedily(t *testing.T) {
	t.Parallel()

	lines := Wrap("aa bb cc dd ee", 5, charWidth)
	require.Equal(t, []string{"aa bb", "cc dd", "ee"}, lines)
}

func TestWrap_OversizedWordIsNotSplit(t *testing.T) {
	t.Parallel()

	lines := Wrap("tiny supercalifragilistic end", 10, charWidth)
	require.Equal(t, []string{"tiny", "supercalifragilistic", "end"}, lines)

	lines = Wrap("supercalifragilistic", 3, charWidth)
	require.Equal(t, []string{"supercalifragilistic"}, lines)
}

func TestWrap_EmptyAndWhitespace(t *testing.T) {
	t.Parallel()

	require.Empty(t, Wrap("", 10, charWidth))
	require.Empty(t, Wrap(" \t\n ", 10, charWidth))
	require.Equal(t, []string{"a b"}, Wrap("  a \n b  ", 10, charWidth))
}

func TestWrapAt_AdvancesCursor(t *testing.T) {
	t.Parallel()

	lines, y := WrapAt("aaaaa bbbbb ccccc", 10, 100, 5, charWidth)
	require.Len(t, lines, 3)
	require.Equal(t, 115.0, y)

	lines, y = WrapAt("", 10, 100, 5, charWidth)
	require.Empty(t, lines)
	require.Equal(t, 100.0, y)
}

func testTable() Table {
	return Table{
		X: 20,
		Columns: []Column{
			{Header: "Rank", Width: 15},
			{Header: "Name", Width: 12, Wrap: true},
			{Header: "Tagline", Width: 24, Wrap: true},
			{Header: "Votes", Width: 20},
		},
		HeaderHeight: 8,
		LineHeight:   5,
		MinRowHeight: 8,
		PadX:         2,
		PadY:         5,
	}
}

func TestTable_RowHeightFollowsTallestWrappedCell(t *testing.T) {
	t.Parallel()

	b := NewBuilder(Geometry{TopY: 20, BreakY: 270}, monospace, 20)
	tbl := testTable()

	// Name: ширина текста 8 -> "aaaa bbbb cccc" в 3 строки;
	// Tagline: ширина 20 -> одна строка.
	b.Table(tbl, []Row{{"1", "aaaa bbbb cccc", "short tagline", "10"}})

	doc := b.Document()
	require.Len(t, doc.Pages, 1)

	rects := doc.Pages[0].Rects()
	require.Len(t, rects, 8) // 4 заголовка + 4 ячейки

	for _, r := range rects[4:] {
		require.Equal(t, 15.0, r.H, "все ячейки строки одной высоты")
		require.Equal(t, 28.0, r.Y)
	}

	require.Equal(t, 43.0, b.Cursor().Y)
}

func TestTable_MinRowHeight(t *testing.T) {
	t.Parallel()

	b := NewBuilder(Geometry{TopY: 20, BreakY: 270}, monospace, 20)
	b.Table(testTable(), []Row{{"1", "a", "", "1"}})

	rects := b.Document().Pages[0].Rects()
	require.Equal(t, 8.0, rects[len(rects)-1].H)
}

func TestTable_WrappedLinesStackByLineHeight(t *testing.T) {
	t.Parallel()

	b := NewBuilder(Geometry{TopY: 20, BreakY: 270}, monospace, 20)
	b.Table(testTable(), []Row{{"1", "aaaa bbbb", "x", "2"}})

	var nameLines []Text
	for _, tx := range b.Document().Pages[0].Texts() {
		if tx.X == 37 && tx.Y > 28 {
			nameLines = append(nameLines, tx)
		}
	}

	require.Len(t, nameLines, 2)
	require.Equal(t, "aaaa", nameLines[0].Value)
	require.Equal(t, 33.0, nameLines[0].Y)
	require.Equal(t, 38.0, nameLines[1].Y)
}

// Страница вмещает строки, начинающиеся в [TopY, BreakY]: при высоте 10 это
// (270-20)/10+1 = 26 строк, то есть полезная высота страницы 260.
func TestTable_PageCountIsDeterministic(t *testing.T) {
	t.Parallel()

	const (
		top       = 20.0
		breakY    = 270.0
		rowHeight = 10.0
		usable    = 260.0
	)

	for _, n := range []int{1, 25, 26, 27, 52, 53, 60} {
		t.Run(strconv.Itoa(n), func(t *testing.T) {
			b := NewBuilder(Geometry{TopY: top, BreakY: breakY}, monospace, 20)
			tbl := testTable()
			tbl.MinRowHeight = rowHeight
			b.MoveTo(top - tbl.HeaderHeight)

			rows := make([]Row, n)
			for i := range rows {
				rows[i] = Row{strconv.Itoa(i + 1), "n", "t", "1"}
			}
			b.Table(tbl, rows)

			want := int(math.Ceil(float64(n) * rowHeight / usable))
			require.Len(t, b.Document().Pages, want)
		})
	}
}

func TestTable_RowsNeverSplitAcrossPages(t *testing.T) {
	t.Parallel()

	b := NewBuilder(Geometry{TopY: 20, BreakY: 100}, monospace, 20)
	rows := make([]Row, 12)
	for i := range rows {
		rows[i] = Row{strconv.Itoa(i + 1), strings.Repeat("word ", 4), "t", "1"}
	}
	b.Table(testTable(), rows)

	doc := b.Document()
	require.Greater(t, len(doc.Pages), 1)

	for p, page := range doc.Pages {
		for _, r := range page.Rects() {
			if p > 0 {
				require.GreaterOrEqual(t, r.Y, 20.0)
			}
			require.LessOrEqual(t, r.Y, 100.0, "строка начинается не ниже порога")
		}
	}

	// Все 12 строк по 4 ячейки плюс заголовок.
	var total int
	for _, page := range doc.Pages {
		total += len(page.Rects())
	}
	require.Equal(t, 4+12*4, total)
}

func TestBuilder_BreakIfNeeded(t *testing.T) {
	t.Parallel()

	b := NewBuilder(Geometry{TopY: 20, BreakY: 270}, monospace, 20)
	b.MoveTo(270)
	require.False(t, b.BreakIfNeeded())

	b.Advance(0.5)
	require.True(t, b.BreakIfNeeded())
	require.Equal(t, Cursor{X: 20, Y: 20, Page: 1}, b.Cursor())
	require.Len(t, b.Document().Pages, 2)
}

func TestBuilder_EnsureKeepsBlockAboveBottom(t *testing.T) {
	t.Parallel()

	b := NewBuilder(Geometry{TopY: 20, BreakY: 270, BottomY: 285}, monospace, 20)
	b.MoveTo(250)
	require.False(t, b.Ensure(30))

	b.MoveTo(260)
	require.True(t, b.Ensure(30), "260+30 > 285")
	require.Equal(t, 20.0, b.Cursor().Y)

	b = NewBuilder(Geometry{TopY: 20, BreakY: 270}, monospace, 20)
	b.MoveTo(260)
	require.False(t, b.Ensure(100), "без BottomY действует только порог")
}
