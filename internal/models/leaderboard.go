package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// RankEntry is one person's position on a ranked day
type RankEntry struct {
	// PersonID is the ID of the ranked person
	PersonID string

	// Name is the display name of the ranked person
	Name string

	// Rank is the 1-based position; 1 holds the most cumulative liters
	Rank int

	// CumulativeLiters is the running total from the range start through the day
	CumulativeLiters decimal.Decimal
}

// RankedDay is the full leaderboard on one date
type RankedDay struct {
	// Date is the calendar date of the leaderboard
	Date time.Time

	// Entries is ordered by rank
	Entries []*RankEntry
}

// Leader returns the rank 1 entry, or nil for an empty board
func (d *RankedDay) Leader() *RankEntry {
	if d == nil || len(d.Entries) == 0 {
		return nil
	}
	return d.Entries[0]
}

// RankOf returns the rank of a person on the day, or 0 when absent
func (d *RankedDay) RankOf(personID string) int {
	if d == nil {
		return 0
	}
	for _, e := range d.Entries {
		if e.PersonID == personID {
			return e.Rank
		}
	}
	return 0
}
