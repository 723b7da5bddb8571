package stats

import (
	"sort"
	"time"

	"github.com/KirkDiggler/cirrosis/internal/models"
)

// SimulateLeaderboard walks a daily grid in chronological order and ranks
// every person each day by cumulative liters, most first, ties by name.
// names maps person IDs to display names; a missing name falls back to the ID.
func SimulateLeaderboard(grid *DailyGrid, names map[string]string) (*LeaderboardTrace, error) {
	if grid == nil || len(grid.PersonIDs) == 0 {
		return nil, ErrEmptyRoster
	}
	if len(grid.Days) == 0 {
		return nil, ErrInvalidRange
	}

	trace := &LeaderboardTrace{
		Days:         make([]*models.RankedDay, 0, len(grid.Days)),
		FirstLeadDay: make(map[string]time.Time),
		RanksHeld:    make(map[string][]int),
	}

	for row, day := range grid.Days {
		entries := make([]*models.RankEntry, 0, len(grid.PersonIDs))
		for _, cell := range grid.Cells[row] {
			name, ok := names[cell.PersonID]
			if !ok {
				name = cell.PersonID
			}
			entries = append(entries, &models.RankEntry{
				PersonID:         cell.PersonID,
				Name:             name,
				CumulativeLiters: cell.Cumulative,
			})
		}

		sort.Slice(entries, func(i, j int) bool {
			a, b := entries[i], entries[j]
			if c := a.CumulativeLiters.Cmp(b.CumulativeLiters); c != 0 {
				return c > 0
			}
			return nameLess(a.Name, a.PersonID, b.Name, b.PersonID)
		})

		for i, entry := range entries {
			entry.Rank = i + 1
			if !entry.CumulativeLiters.IsPositive() {
				continue
			}
			trace.RanksHeld[entry.PersonID] = append(trace.RanksHeld[entry.PersonID], entry.Rank)
			if entry.Rank == 1 {
				if _, led := trace.FirstLeadDay[entry.PersonID]; !led {
					trace.FirstLeadDay[entry.PersonID] = day
				}
			}
		}

		trace.Days = append(trace.Days, &models.RankedDay{
			Date:    day,
			Entries: entries,
		})
	}

	trace.Final = trace.Days[len(trace.Days)-1]
	return trace, nil
}

// BestRank returns the lowest rank a person held with liters on the board
func (t *LeaderboardTrace) BestRank(personID string) (int, bool) {
	ranks := t.RanksHeld[personID]
	if len(ranks) == 0 {
		return 0, false
	}
	best := ranks[0]
	for _, r := range ranks[1:] {
		if r < best {
			best = r
		}
	}
	return best, true
}
