package stats

import (
	"sort"
	"time"

	"github.com/KirkDiggler/cirrosis/internal/common/dates"
	"github.com/KirkDiggler/cirrosis/internal/models"
	"github.com/shopspring/decimal"
)

const avgPlaces = 3

func validateRange(start, end time.Time) error {
	if start.IsZero() || end.IsZero() || dates.Day(end).Before(dates.Day(start)) {
		return ErrInvalidRange
	}
	return nil
}

// indexRoster keeps the eligible persons of a roster by ID
func indexRoster(roster []*models.Person) (map[string]*models.Person, error) {
	persons := make(map[string]*models.Person, len(roster))
	for _, p := range roster {
		if p.IsEligible() {
			persons[p.ID] = p
		}
	}
	if len(persons) == 0 {
		return nil, ErrEmptyRoster
	}
	return persons, nil
}

// filterRecords keeps the records of eligible persons dated inside [start, end]
func filterRecords(records []*models.ConsumptionRecord, persons map[string]*models.Person, start, end time.Time) []*models.ConsumptionRecord {
	kept := make([]*models.ConsumptionRecord, 0, len(records))
	for _, r := range records {
		if r == nil {
			continue
		}
		if _, ok := persons[r.PersonID]; !ok {
			continue
		}
		if !dates.InRange(r.ConsumedAt, start, end) {
			continue
		}
		kept = append(kept, r)
	}
	return kept
}

// ratio divides and rounds, returning zero for an empty denominator
func ratio(total decimal.Decimal, n int) decimal.Decimal {
	if n == 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(n))).Round(avgPlaces)
}

// personDays is a person's sparse activity keyed by dates.Number
type personDays struct {
	liters map[int64]decimal.Decimal
	units  int
	price  decimal.Decimal
}

func collectByPerson(records []*models.ConsumptionRecord) map[string]*personDays {
	byPerson := make(map[string]*personDays)
	for _, r := range records {
		pd, ok := byPerson[r.PersonID]
		if !ok {
			pd = &personDays{liters: make(map[int64]decimal.Decimal)}
			byPerson[r.PersonID] = pd
		}
		day := dates.Number(r.ConsumedAt)
		pd.liters[day] = pd.liters[day].Add(r.Liters())
		pd.units += r.Quantity
		pd.price = pd.price.Add(r.PriceTotal)
	}
	return byPerson
}

func (pd *personDays) sortedDays() []int64 {
	days := make([]int64, 0, len(pd.liters))
	for day := range pd.liters {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })
	return days
}

func (pd *personDays) stats(p *models.Person, thresholds Thresholds) *PersonStats {
	s := &PersonStats{
		PersonID:   p.ID,
		Name:       p.Name,
		UnitsTotal: pd.units,
		PriceTotal: pd.price,
	}

	var peak int64
	for i, day := range pd.sortedDays() {
		liters := pd.liters[day]
		s.LitersTotal = s.LitersTotal.Add(liters)
		if liters.GreaterThanOrEqual(thresholds.StrongDayLiters) {
			s.StrongDays++
		}
		if i == 0 || liters.GreaterThanOrEqual(s.PeakLiters) {
			s.PeakLiters = liters
			peak = day
		}
	}

	s.ActiveDays = len(pd.liters)
	s.AvgLitersPerActiveDay = ratio(s.LitersTotal, s.ActiveDays)
	if s.ActiveDays > 0 {
		s.PeakDay = dates.FromNumber(peak)
	}
	return s
}

func sortPersonStats(stats []*PersonStats) {
	sort.Slice(stats, func(i, j int) bool {
		a, b := stats[i], stats[j]
		if c := a.LitersTotal.Cmp(b.LitersTotal); c != 0 {
			return c > 0
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.PersonID < b.PersonID
	})
}

func nameLess(nameA, idA, nameB, idB string) bool {
	if nameA != nameB {
		return nameA < nameB
	}
	return idA < idB
}
