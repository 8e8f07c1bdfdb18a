package report

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/pribylovaa/producthunt-top10/internal/models"
	"github.com/pribylovaa/producthunt-top10/internal/stats"
)

// textTaglineMax — длина tagline в терминальной таблице (в рунах).
const textTaglineMax = 60

// WriteText печатает таблицу в терминал: ранжированные посты, строку
// статистики и время последнего обновления. posts уже упорядочены.
func WriteText(w io.Writer, posts []models.Post, st stats.Stats, spec models.SortSpec, lastUpdated time.Time) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Sorted by: %s\n\n", spec)
	fmt.Fprintln(tw, "#\tProduct Name\tTagline\tVotes\tLaunch Date")

	if len(posts) == 0 {
		fmt.Fprintln(tw, "\tNo posts to show.\t\t\t")
	}

	for i, p := range posts {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			i+1, p.Name, truncate(p.Tagline, textTaglineMax), FormatVotes(p.VotesCount), FormatDate(p.CreatedAt))
	}

	fmt.Fprintf(tw, "\nTotal Votes: %s | Average Votes: %s | Highest: %s | Lowest: %s\n",
		FormatVotes(st.Total), FormatVotes(st.Average), postVotes(st.Highest), postVotes(st.Lowest))

	if !lastUpdated.IsZero() {
		fmt.Fprintf(tw, "Last updated: %s\n", lastUpdated.Local().Format("Jan 2, 2006 15:04"))
	}

	return tw.Flush()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}

	return string(r[:n-1]) + "…"
}
