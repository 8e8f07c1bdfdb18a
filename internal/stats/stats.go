// stats считает агрегаты по набору постов для таблицы, отчёта и сводки.
package stats

import (
	"math"

	"github.com/pribylovaa/producthunt-top10/internal/models"
)

// Stats — агрегаты по голосам.
//
// Особенности:
//   - для пустого набора Total = Average = 0, Highest/Lowest = nil;
//   - Average округляется half-away-from-zero;
//   - при равенстве голосов Highest/Lowest — первый пост во входном порядке.
type Stats struct {
	Count   int
	Total   int64
	Average int64
	Highest *models.Post
	Lowest  *models.Post
}

// Summarize считает Stats. Входной срез не изменяется, Highest/Lowest
// указывают на копии постов.
func Summarize(posts []models.Post) Stats {
	s := Stats{Count: len(posts)}
	if len(posts) == 0 {
		return s
	}

	highest, lowest := posts[0], posts[0]
	for _, p := range posts {
		s.Total += p.VotesCount

		if p.VotesCount > highest.VotesCount {
			highest = p
		}

		if p.VotesCount < lowest.VotesCount {
			lowest = p
		}
	}

	s.Average = int64(math.Round(float64(s.Total) / float64(s.Count)))
	s.Highest = &highest
	s.Lowest = &lowest

	return s
}
