package stats

import (
	"sort"
	"time"

	"github.com/KirkDiggler/cirrosis/internal/models"
)

// RankDrinkTypes totals every drink type over [start, end] and orders the
// result with SortDrinkTotals
func RankDrinkTypes(records []*models.ConsumptionRecord, roster []*models.Person, start, end time.Time) ([]*DrinkTotal, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}
	persons, err := indexRoster(roster)
	if err != nil {
		return nil, err
	}

	byDrink := make(map[string]*DrinkTotal)
	for _, r := range filterRecords(records, persons, start, end) {
		total, ok := byDrink[r.DrinkTypeID]
		if !ok {
			total = newDrinkTotal(r)
			byDrink[r.DrinkTypeID] = total
		}
		total.add(r)
	}

	totals := make([]*DrinkTotal, 0, len(byDrink))
	for _, total := range byDrink {
		if total.Units > 0 {
			totals = append(totals, total)
		}
	}
	SortDrinkTotals(totals)

	return totals, nil
}

// RankDrinkTypesByPerson totals every (drink type, person) pair over
// [start, end]. Entries are grouped by drink label, and within one drink the
// persons follow the ranking rule. An empty personIDs keeps everybody.
func RankDrinkTypesByPerson(records []*models.ConsumptionRecord, roster []*models.Person, start, end time.Time, personIDs []string) ([]*DrinkTotal, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}
	persons, err := indexRoster(roster)
	if err != nil {
		return nil, err
	}

	if len(personIDs) > 0 {
		selected := make(map[string]*models.Person, len(personIDs))
		for _, id := range personIDs {
			if p, ok := persons[id]; ok {
				selected[id] = p
			}
		}
		persons = selected
	}

	type key struct{ drinkTypeID, personID string }
	byPair := make(map[key]*DrinkTotal)
	for _, r := range filterRecords(records, persons, start, end) {
		k := key{r.DrinkTypeID, r.PersonID}
		total, ok := byPair[k]
		if !ok {
			total = newDrinkTotal(r)
			total.PersonID = r.PersonID
			total.PersonName = persons[r.PersonID].Name
			byPair[k] = total
		}
		total.add(r)
	}

	totals := make([]*DrinkTotal, 0, len(byPair))
	for _, total := range byPair {
		if total.Units > 0 {
			totals = append(totals, total)
		}
	}

	sort.Slice(totals, func(i, j int) bool {
		a, b := totals[i], totals[j]
		if a.Label != b.Label {
			return a.Label < b.Label
		}
		if a.DrinkTypeID != b.DrinkTypeID {
			return a.DrinkTypeID < b.DrinkTypeID
		}
		return drinkTotalLess(a, b)
	})

	return totals, nil
}

// SortDrinkTotals orders totals by the drink ranking rule: drinks with a unit
// volume by liters, then units, then name; drinks without one by units, then
// name. Volume-ranked drinks come before unit-ranked ones.
func SortDrinkTotals(totals []*DrinkTotal) {
	sort.Slice(totals, func(i, j int) bool {
		return drinkTotalLess(totals[i], totals[j])
	})
}

func drinkTotalLess(a, b *DrinkTotal) bool {
	if a.HasLiters != b.HasLiters {
		return a.HasLiters
	}
	if a.HasLiters {
		if c := a.Liters.Cmp(b.Liters); c != 0 {
			return c > 0
		}
	}
	if a.Units != b.Units {
		return a.Units > b.Units
	}
	return nameLess(a.rankName(), a.rankID(), b.rankName(), b.rankID())
}

func newDrinkTotal(r *models.ConsumptionRecord) *DrinkTotal {
	return &DrinkTotal{
		DrinkTypeID: r.DrinkTypeID,
		Label:       r.DrinkLabel,
		Category:    r.DrinkCategory,
		HasLiters:   r.HasLiters(),
	}
}

func (t *DrinkTotal) add(r *models.ConsumptionRecord) {
	t.Units += r.Quantity
	t.Liters = t.Liters.Add(r.Liters())
	t.Price = t.Price.Add(r.PriceTotal)
}

// rankName is the name the ranking rule compares: the person on per-person
// totals, the drink otherwise
func (t *DrinkTotal) rankName() string {
	if t.PersonID != "" {
		return t.PersonName
	}
	return t.Label
}

func (t *DrinkTotal) rankID() string {
	if t.PersonID != "" {
		return t.PersonID
	}
	return t.DrinkTypeID
}
