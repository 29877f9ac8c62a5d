package league

import (
	"sort"

	"github.com/bluey22/tee-time/go/internal/models"
)

// SortStandings orders standings by total score descending, breaking ties by
// team ID ascending. Ranking happens here rather than in the store so the
// tie-break is deterministic regardless of the store's sort behavior.
func SortStandings(standings []models.Standing) {
	sort.Slice(standings, func(i, j int) bool {
		if standings[i].TotalScore != standings[j].TotalScore {
			return standings[i].TotalScore > standings[j].TotalScore
		}
		return standings[i].TeamID < standings[j].TeamID
	})
}
