package stats

import (
	"sort"

	"github.com/KirkDiggler/cirrosis/internal/models"
	"github.com/shopspring/decimal"
)

// BuildBeerYearReport totals every eligible person over a beer year. Persons
// without events are listed with zero totals. Entries are ordered by price,
// liters and units, all descending, then name.
func BuildBeerYearReport(records []*models.ConsumptionRecord, roster []*models.Person, beerYear int) (*BeerYearReport, error) {
	persons, err := indexRoster(roster)
	if err != nil {
		return nil, err
	}
	start, end := models.BeerYearRange(beerYear)

	entries := make(map[string]*BeerYearEntry, len(persons))
	for id, p := range persons {
		entries[id] = &BeerYearEntry{
			PersonID: id,
			Name:     p.Name,
			Liters:   decimal.Zero,
			Price:    decimal.Zero,
		}
	}
	for _, r := range filterRecords(records, persons, start, end) {
		entry := entries[r.PersonID]
		entry.Units += r.Quantity
		entry.Liters = entry.Liters.Add(r.Liters())
		entry.Price = entry.Price.Add(r.PriceTotal)
	}

	report := &BeerYearReport{
		Year:    beerYear,
		Start:   start,
		End:     end,
		Entries: make([]*BeerYearEntry, 0, len(entries)),
	}
	for _, entry := range entries {
		report.Entries = append(report.Entries, entry)
	}
	sort.Slice(report.Entries, func(i, j int) bool {
		a, b := report.Entries[i], report.Entries[j]
		if c := a.Price.Cmp(b.Price); c != 0 {
			return c > 0
		}
		if c := a.Liters.Cmp(b.Liters); c != 0 {
			return c > 0
		}
		if a.Units != b.Units {
			return a.Units > b.Units
		}
		return nameLess(a.Name, a.PersonID, b.Name, b.PersonID)
	})

	return report, nil
}
