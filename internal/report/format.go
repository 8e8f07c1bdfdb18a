package report

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

const (
	// shortDateLayout — дата в таблице и карточках (en-US, M/D/YYYY).
	shortDateLayout = "1/2/2006"
	// mediumDateLayout — дата в сводке для буфера обмена (en-US medium).
	mediumDateLayout = "Jan 2, 2006"
	// fileDateLayout — дата в имени файла.
	fileDateLayout = "2006-01-02"
)

// FormatVotes — число с разделителем тысяч: 12345 -> "12,345".
func FormatVotes(n int64) string {
	return humanize.Comma(n)
}

// FormatDate — короткая дата, обратимо разбирается time.Parse(shortDateLayout).
func FormatDate(t time.Time) string {
	return t.Format(shortDateLayout)
}

// FormatMediumDate — "Oct 15, 2026".
func FormatMediumDate(t time.Time) string {
	return t.Format(mediumDateLayout)
}

// FileName — "<prefix>-<YYYY-MM-DD>.<ext>".
func FileName(prefix, ext string, now time.Time) string {
	return fmt.Sprintf("%s-%s.%s", prefix, now.Format(fileDateLayout), ext)
}
