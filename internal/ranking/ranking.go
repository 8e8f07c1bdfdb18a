// ranking упорядочивает посты по SortSpec.
//
// Один и тот же Rank используется и для таблицы на экране, и для экспорта,
// поэтому порядок для пары (поле, направление) везде одинаков.
package ranking

import (
	"cmp"
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/pribylovaa/producthunt-top10/internal/models"
)

// Rank возвращает новый срез, упорядоченный по spec.
//
// Особенности:
//   - сортировка стабильная: равные по ключу посты сохраняют входной порядок
//     в обоих направлениях;
//   - desc — обращённый компаратор, а не разворот результата;
//   - входной срез не изменяется.
func Rank(posts []models.Post, spec models.SortSpec) []models.Post {
	out := slices.Clone(posts)
	if len(out) < 2 {
		return out
	}

	compare := comparator(spec.Field)
	if spec.Direction == models.Descending {
		asc := compare
		compare = func(a, b models.Post) int { return asc(b, a) }
	}

	slices.SortStableFunc(out, compare)
	return out
}

// TopByVotes — первые n постов по (votes, desc) из полного набора.
// Не зависит от текущей сортировки на экране.
func TopByVotes(posts []models.Post, n int) []models.Post {
	ranked := Rank(posts, models.DefaultSortSpec())
	if n < 0 {
		n = 0
	}

	if len(ranked) > n {
		ranked = ranked[:n]
	}

	return ranked
}

func comparator(field models.SortField) func(a, b models.Post) int {
	switch field {
	case models.SortByCreatedAt:
		return func(a, b models.Post) int {
			return cmp.Compare(a.CreatedAt.UnixMilli(), b.CreatedAt.UnixMilli())
		}
	case models.SortByName:
		return func(a, b models.Post) int {
			return strings.Compare(fold(a.Name), fold(b.Name))
		}
	default:
		return func(a, b models.Post) int {
			return cmp.Compare(a.VotesCount, b.VotesCount)
		}
	}
}

// fold приводит строку к единому регистру. Caser не потокобезопасен,
// поэтому создаётся на каждый вызов.
func fold(s string) string {
	return cases.Fold().String(s)
}
