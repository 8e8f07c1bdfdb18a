package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/pribylovaa/producthunt-top10/internal/models"
	"github.com/pribylovaa/producthunt-top10/internal/ranking"
	"github.com/pribylovaa/producthunt-top10/internal/stats"
)

// SummaryTopN — сколько постов попадает в блок "Top 3".
const SummaryTopN = 3

// Summary собирает текст для буфера обмена:
//
//	<title> — <Jan 2, 2006>
//
//	Top 3:
//	1. <name> — <votes> votes
//	...
//
//	Total votes: <n> | Average: <n>
//
// Топ считается по (votes, desc) от полного набора, независимо от сортировки
// на экране.
func Summary(title string, posts []models.Post, date time.Time) string {
	top := ranking.TopByVotes(posts, SummaryTopN)
	st := stats.Summarize(posts)

	lines := make([]string, 0, len(top)+6)
	lines = append(lines,
		fmt.Sprintf("%s — %s", title, FormatMediumDate(date)),
		"",
		"Top 3:",
	)

	for i, p := range top {
		lines = append(lines, fmt.Sprintf("%d. %s — %s votes", i+1, p.Name, FormatVotes(p.VotesCount)))
	}

	lines = append(lines,
		"",
		fmt.Sprintf("Total votes: %s | Average: %s", FormatVotes(st.Total), FormatVotes(st.Average)),
	)

	return strings.Join(lines, "\n")
}
