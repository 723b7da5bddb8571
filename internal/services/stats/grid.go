package stats

import (
	"time"

	"github.com/KirkDiggler/cirrosis/internal/common/dates"
	"github.com/KirkDiggler/cirrosis/internal/models"
	"github.com/shopspring/decimal"
)

// BuildDailyGrid expands sparse records into a cell for every day of
// [start, end] and every person in personIDs, zero-filled, with each
// person's running total. Records of other persons or dates are ignored.
func BuildDailyGrid(records []*models.ConsumptionRecord, personIDs []string, start, end time.Time) (*DailyGrid, error) {
	if err := validateRange(start, end); err != nil {
		return nil, err
	}

	index := make(map[string]int, len(personIDs))
	ids := make([]string, 0, len(personIDs))
	for _, id := range personIDs {
		if _, seen := index[id]; seen || id == "" {
			continue
		}
		index[id] = len(ids)
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, ErrEmptyRoster
	}

	days := dates.Each(start, end)
	first := dates.Number(start)

	daily := make([][]decimal.Decimal, len(days))
	for i := range daily {
		daily[i] = make([]decimal.Decimal, len(ids))
	}
	for _, r := range records {
		if r == nil {
			continue
		}
		col, ok := index[r.PersonID]
		if !ok || !dates.InRange(r.ConsumedAt, start, end) {
			continue
		}
		row := dates.Number(r.ConsumedAt) - first
		daily[row][col] = daily[row][col].Add(r.Liters())
	}

	cells := make([][]*GridCell, len(days))
	running := make([]decimal.Decimal, len(ids))
	for row, day := range days {
		cells[row] = make([]*GridCell, len(ids))
		for col, id := range ids {
			running[col] = running[col].Add(daily[row][col])
			cells[row][col] = &GridCell{
				Date:       day,
				PersonID:   id,
				Liters:     daily[row][col],
				Cumulative: running[col],
			}
		}
	}

	return &DailyGrid{
		Start:     dates.Day(start),
		End:       dates.Day(end),
		Days:      days,
		PersonIDs: ids,
		Cells:     cells,
	}, nil
}

// Column returns one person's cells in chronological order, or nil when the
// person is not on the grid
func (g *DailyGrid) Column(personID string) []*GridCell {
	col := -1
	for i, id := range g.PersonIDs {
		if id == personID {
			col = i
			break
		}
	}
	if col < 0 {
		return nil
	}

	column := make([]*GridCell, len(g.Days))
	for row := range g.Days {
		column[row] = g.Cells[row][col]
	}
	return column
}

// DayTotal returns the group liters on the day at index row
func (g *DailyGrid) DayTotal(row int) decimal.Decimal {
	total := decimal.Zero
	for _, cell := range g.Cells[row] {
		total = total.Add(cell.Liters)
	}
	return total
}
