package stats

import (
	"sort"
	"time"

	"github.com/KirkDiggler/cirrosis/internal/common/dates"
	"github.com/KirkDiggler/cirrosis/internal/models"
	"github.com/shopspring/decimal"
)

// AggregateRange computes per-person stats over [start, end]. Persons
// without events in the range are left out. The result is ordered by liters
// descending, then name.
func AggregateRange(records []*models.ConsumptionRecord, roster []*models.Person, start, end time.Time, thresholds Thresholds) ([]*PersonStats, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}
	persons, err := indexRoster(roster)
	if err != nil {
		return nil, err
	}

	byPerson := collectByPerson(filterRecords(records, persons, start, end))

	stats := make([]*PersonStats, 0, len(byPerson))
	for personID, pd := range byPerson {
		stats = append(stats, pd.stats(persons[personID], thresholds))
	}
	sortPersonStats(stats)

	return stats, nil
}

// AggregateYear computes per-person stats over a calendar year, adding the
// per calendar day average and the strongest and weakest month.
func AggregateYear(records []*models.ConsumptionRecord, roster []*models.Person, year int, thresholds Thresholds) ([]*YearStats, error) {
	start, end := dates.YearRange(year)
	persons, err := indexRoster(roster)
	if err != nil {
		return nil, err
	}

	byPerson := collectByPerson(filterRecords(records, persons, start, end))
	daysInYear := dates.DaysInYear(year)

	stats := make([]*YearStats, 0, len(byPerson))
	for personID, pd := range byPerson {
		ys := &YearStats{
			PersonStats: *pd.stats(persons[personID], thresholds),
			Year:        year,
		}
		ys.AvgLitersPerCalendarDay = ratio(ys.LitersTotal, daysInYear)

		for day, liters := range pd.liters {
			month := dates.FromNumber(day).Month()
			ys.MonthlyLiters[month-1] = ys.MonthlyLiters[month-1].Add(liters)
		}
		ys.StrongestMonth, ys.WeakestMonth = monthExtremes(ys.MonthlyLiters)

		stats = append(stats, ys)
	}

	sort.Slice(stats, func(i, j int) bool {
		a, b := stats[i], stats[j]
		if c := a.LitersTotal.Cmp(b.LitersTotal); c != 0 {
			return c > 0
		}
		return nameLess(a.Name, a.PersonID, b.Name, b.PersonID)
	})

	return stats, nil
}

// monthExtremes returns the months with the most and the fewest liters,
// preferring the earlier month on ties
func monthExtremes(monthly [12]decimal.Decimal) (time.Month, time.Month) {
	strongest, weakest := 0, 0
	for i := 1; i < len(monthly); i++ {
		if monthly[i].GreaterThan(monthly[strongest]) {
			strongest = i
		}
		if monthly[i].LessThan(monthly[weakest]) {
			weakest = i
		}
	}
	return time.Month(strongest + 1), time.Month(weakest + 1)
}

// SummarizeGroupMonths computes the group-wide summary of each month of a
// calendar year. Persons are not told apart: a day is active when anybody
// logged an event and strong when the group liters reach the threshold.
func SummarizeGroupMonths(records []*models.ConsumptionRecord, roster []*models.Person, year int, thresholds Thresholds) ([]*GroupMonth, error) {
	start, end := dates.YearRange(year)
	persons, err := indexRoster(roster)
	if err != nil {
		return nil, err
	}

	groupDays := make(map[int64]decimal.Decimal)
	for _, r := range filterRecords(records, persons, start, end) {
		day := dates.Number(r.ConsumedAt)
		groupDays[day] = groupDays[day].Add(r.Liters())
	}

	months := make([]*GroupMonth, 0, 12)
	for month := time.January; month <= time.December; month++ {
		monthStart, monthEnd := dates.MonthRange(year, month)
		gm := &GroupMonth{
			Year:        year,
			Month:       month,
			DaysInMonth: dates.DaysInMonth(year, month),
		}

		for _, d := range dates.Each(monthStart, monthEnd) {
			liters, ok := groupDays[dates.Number(d)]
			if !ok {
				continue
			}
			gm.ActiveDays++
			gm.LitersTotal = gm.LitersTotal.Add(liters)
			if liters.GreaterThanOrEqual(thresholds.StrongDayLiters) {
				gm.StrongDays++
			}
		}

		gm.AvgPerActiveDay = ratio(gm.LitersTotal, gm.ActiveDays)
		gm.AvgPerCalendarDay = ratio(gm.LitersTotal, gm.DaysInMonth)
		gm.ZeroDays = gm.DaysInMonth - gm.ActiveDays
		months = append(months, gm)
	}

	return months, nil
}

// TotalLiters sums the liters of every eligible person's records in range,
// independent of any per-person grouping
func TotalLiters(records []*models.ConsumptionRecord, roster []*models.Person, start, end time.Time) (decimal.Decimal, error) {
	if err := validateRange(start, end); err != nil {
		return decimal.Zero, err
	}
	persons, err := indexRoster(roster)
	if err != nil {
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, r := range filterRecords(records, persons, start, end) {
		total = total.Add(r.Liters())
	}
	return total, nil
}
