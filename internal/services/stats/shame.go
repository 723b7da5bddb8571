package stats

import (
	"time"

	"github.com/KirkDiggler/cirrosis/internal/common/dates"
	"github.com/KirkDiggler/cirrosis/internal/models"
	"github.com/shopspring/decimal"
)

const minShameParticipants = 2

// BuildShameReport derives the five shame findings for [start, end],
// normally one calendar month or the part of it elapsed so far. Only persons
// with at least one event in the range take part. With fewer than two of
// them the report is returned with Applicable set to false.
func BuildShameReport(records []*models.ConsumptionRecord, roster []*models.Person, start, end time.Time, thresholds Thresholds) (*ShameReport, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}
	persons, err := indexRoster(roster)
	if err != nil {
		return nil, err
	}

	inRange := filterRecords(records, persons, start, end)
	report := &ShameReport{
		Start: dates.Day(start),
		End:   dates.Day(end),
	}

	participants := make([]string, 0, len(persons))
	seen := make(map[string]struct{}, len(persons))
	for _, r := range inRange {
		if _, ok := seen[r.PersonID]; ok {
			continue
		}
		seen[r.PersonID] = struct{}{}
		participants = append(participants, r.PersonID)
	}
	report.Participants = len(participants)
	if len(participants) < minShameParticipants {
		return report, nil
	}

	names := make(map[string]string, len(participants))
	for _, id := range participants {
		names[id] = persons[id].Name
	}

	grid, err := BuildDailyGrid(inRange, participants, start, end)
	if err != nil {
		return nil, err
	}
	trace, err := SimulateLeaderboard(grid, names)
	if err != nil {
		return nil, err
	}

	report.Applicable = true
	report.FalseLeader = findFalseLeader(trace)
	report.BiggestDrop = findBiggestDrop(trace)
	report.AlmostChampion = findAlmostChampion(trace, thresholds.CloseMarginLiters)
	report.Ghost = findGhost(grid, names)
	report.SaddestWeek = findSaddestWeek(grid)

	return report, nil
}

func findFalseLeader(trace *LeaderboardTrace) *FalseLeader {
	var found *FalseLeader
	for _, entry := range trace.Final.Entries {
		firstDay, led := trace.FirstLeadDay[entry.PersonID]
		if !led || entry.Rank == 1 {
			continue
		}
		if found == nil ||
			firstDay.Before(found.FirstDay) ||
			(firstDay.Equal(found.FirstDay) && nameLess(entry.Name, entry.PersonID, found.Name, found.PersonID)) {
			found = &FalseLeader{
				PersonID:  entry.PersonID,
				Name:      entry.Name,
				FirstDay:  firstDay,
				FinalRank: entry.Rank,
			}
		}
	}
	return found
}

func findBiggestDrop(trace *LeaderboardTrace) *BiggestDrop {
	var found *BiggestDrop
	for _, entry := range trace.Final.Entries {
		best, ok := trace.BestRank(entry.PersonID)
		if !ok {
			continue
		}
		drop := entry.Rank - best
		if drop <= 0 {
			continue
		}
		if found == nil ||
			drop > found.Drop ||
			(drop == found.Drop && nameLess(entry.Name, entry.PersonID, found.Name, found.PersonID)) {
			found = &BiggestDrop{
				PersonID:  entry.PersonID,
				Name:      entry.Name,
				BestRank:  best,
				FinalRank: entry.Rank,
				Drop:      drop,
			}
		}
	}
	return found
}

func findAlmostChampion(trace *LeaderboardTrace, margin decimal.Decimal) *AlmostChampion {
	times := make(map[string]int)
	for _, day := range trace.Days {
		leader := day.Leader()
		if leader == nil {
			continue
		}
		for _, entry := range day.Entries[1:] {
			if !entry.CumulativeLiters.IsPositive() {
				continue
			}
			if leader.CumulativeLiters.Sub(entry.CumulativeLiters).LessThanOrEqual(margin) {
				times[entry.PersonID]++
			}
		}
	}

	var (
		found      *AlmostChampion
		foundFinal decimal.Decimal
	)
	for _, entry := range trace.Final.Entries {
		n := times[entry.PersonID]
		if n == 0 {
			continue
		}
		better := found == nil || n > found.Times
		if !better && n == found.Times {
			c := entry.CumulativeLiters.Cmp(foundFinal)
			better = c > 0 || (c == 0 && nameLess(entry.Name, entry.PersonID, found.Name, found.PersonID))
		}
		if better {
			found = &AlmostChampion{
				PersonID: entry.PersonID,
				Name:     entry.Name,
				Times:    n,
			}
			foundFinal = entry.CumulativeLiters
		}
	}
	return found
}

func findGhost(grid *DailyGrid, names map[string]string) *Ghost {
	var found *Ghost
	for _, id := range grid.PersonIDs {
		blank := 0
		for _, cell := range grid.Column(id) {
			if cell.Liters.IsZero() {
				blank++
			}
		}
		if found == nil ||
			blank > found.BlankDays ||
			(blank == found.BlankDays && nameLess(names[id], id, found.Name, found.PersonID)) {
			found = &Ghost{
				PersonID:  id,
				Name:      names[id],
				BlankDays: blank,
				Days:      len(grid.Days),
			}
		}
	}
	return found
}

// findSaddestWeek buckets the grid days into Monday-started weeks clipped to
// the grid range and returns the bucket with the fewest group liters,
// the earliest one on ties
func findSaddestWeek(grid *DailyGrid) *SaddestWeek {
	weeks := make([]*SaddestWeek, 0, len(grid.Days)/7+2)
	var current *SaddestWeek
	for row, day := range grid.Days {
		if current == nil || !dates.WeekStart(day).Equal(dates.WeekStart(current.WeekStart)) {
			current = &SaddestWeek{WeekStart: day}
			weeks = append(weeks, current)
		}
		current.Liters = current.Liters.Add(grid.DayTotal(row))
		current.Days++
	}

	var found *SaddestWeek
	for _, week := range weeks {
		if found == nil || week.Liters.LessThan(found.Liters) {
			found = week
		}
	}
	return found
}
