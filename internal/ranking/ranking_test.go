package ranking

import (
	"fmt"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/producthunt-top10/internal/models"
)

var base = time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

func post(name string, votes int64, ageHours int) models.Post {
	return models.Post{
		Name:       name,
		VotesCount: votes,
		CreatedAt:  base.Add(-time.Duration(ageHours) * time.Hour),
		URL:        "https://www.producthunt.com/posts/" + strings.ToLower(name),
	}
}

// scenario — десять постов с голосами [100,90,90,80,70,60,50,40,30,20].
func scenario() []models.Post {
	votes := []int64{100, 90, 90, 80, 70, 60, 50, 40, 30, 20}
	names := []string{"delta", "Alpha", "bravo", "Echo", "charlie", "golf", "Foxtrot", "india", "Hotel", "juliet"}

	out := make([]models.Post, len(votes))
	for i := range votes {
		out[i] = post(names[i], votes[i], i*3)
	}

	return out
}

func names(posts []models.Post) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.Name
	}
	return out
}

func key(field models.SortField) func(models.Post) string {
	switch field {
	case models.SortByName:
		return func(p models.Post) string { return strings.ToLower(p.Name) }
	case models.SortByCreatedAt:
		return func(p models.Post) string { return fmt.Sprintf("%020d", p.CreatedAt.UnixMilli()) }
	default:
		return func(p models.Post) string { return fmt.Sprintf("%020d", p.VotesCount) }
	}
}

func TestRank_OrderedForEveryField(t *testing.T) {
	t.Parallel()

	for _, field := range []models.SortField{models.SortByVotes, models.SortByCreatedAt, models.SortByName} {
		for _, dir := range []models.SortDirection{models.Ascending, models.Descending} {
			t.Run(string(field)+"_"+string(dir), func(t *testing.T) {
				got := Rank(scenario(), models.SortSpec{Field: field, Direction: dir})
				k := key(field)

				for i := 1; i < len(got); i++ {
					if dir == models.Ascending {
						require.LessOrEqual(t, k(got[i-1]), k(got[i]))
					} else {
						require.GreaterOrEqual(t, k(got[i-1]), k(got[i]))
					}
				}
			})
		}
	}
}

func TestRank_StableOnTies(t *testing.T) {
	t.Parallel()

	in := []models.Post{
		post("first", 10, 0),
		post("other", 5, 1),
		post("second", 10, 2),
		post("third", 10, 3),
	}

	desc := Rank(in, models.SortSpec{Field: models.SortByVotes, Direction: models.Descending})
	require.Equal(t, []string{"first", "second", "third", "other"}, names(desc))

	asc := Rank(in, models.SortSpec{Field: models.SortByVotes, Direction: models.Ascending})
	require.Equal(t, []string{"other", "first", "second", "third"}, names(asc))
}

func TestRank_NameTiesAreCaseInsensitiveAndStable(t *testing.T) {
	t.Parallel()

	in := []models.Post{post("beta", 1, 0), post("ALPHA", 2, 0), post("Beta", 3, 0), post("alpha", 4, 0)}

	got := Rank(in, models.SortSpec{Field: models.SortByName, Direction: models.Ascending})
	require.Equal(t, []string{"ALPHA", "alpha", "beta", "Beta"}, names(got))

	got = Rank(in, models.SortSpec{Field: models.SortByName, Direction: models.Descending})
	require.Equal(t, []string{"beta", "Beta", "ALPHA", "alpha"}, names(got))
}

func TestRank_DirectionToggleIsReverseWithoutTies(t *testing.T) {
	t.Parallel()

	in := []models.Post{post("c", 3, 5), post("a", 1, 1), post("d", 4, 9), post("b", 2, 2)}

	for _, field := range []models.SortField{models.SortByVotes, models.SortByCreatedAt, models.SortByName} {
		asc := Rank(in, models.SortSpec{Field: field, Direction: models.Ascending})
		desc := Rank(in, models.SortSpec{Field: field, Direction: models.Descending})
		slices.Reverse(desc)
		require.Equal(t, asc, desc, string(field))
	}
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	in := scenario()
	snapshot := slices.Clone(in)

	_ = Rank(in, models.SortSpec{Field: models.SortByName, Direction: models.Ascending})
	require.Equal(t, snapshot, in)
}

func TestRank_EmptyAndSingle(t *testing.T) {
	t.Parallel()

	require.Empty(t, Rank(nil, models.DefaultSortSpec()))
	require.Len(t, Rank([]models.Post{post("solo", 1, 0)}, models.DefaultSortSpec()), 1)
}

func TestScenario_EndToEnd(t *testing.T) {
	t.Parallel()

	in := scenario()

	byVotes := Rank(in, models.DefaultSortSpec())
	require.Equal(t, []string{"delta", "Alpha", "bravo"}, names(byVotes[:3]))

	byName := Rank(in, models.SortSpec{Field: models.SortByName, Direction: models.Ascending})
	require.Equal(t,
		[]string{"Alpha", "bravo", "charlie", "delta", "Echo", "Foxtrot", "golf", "Hotel", "india", "juliet"},
		names(byName),
	)

	// Топ-3 не зависит от того, как отсортирован экран.
	require.Equal(t, []string{"delta", "Alpha", "bravo"}, names(TopByVotes(byName, 3)))
	require.Equal(t, []string{"delta", "Alpha", "bravo"}, names(TopByVotes(in, 3)))
}

func TestTopByVotes_Bounds(t *testing.T) {
	t.Parallel()

	require.Len(t, TopByVotes(scenario()[:2], 3), 2)
	require.Empty(t, TopByVotes(scenario(), 0))
	require.Empty(t, TopByVotes(nil, 3))
}
