package discord

import (
	"testing"
	"time"

	"github.com/KirkDiggler/cirrosis/internal/models"
	"github.com/KirkDiggler/cirrosis/internal/services/consumption"
	"github.com/KirkDiggler/cirrosis/internal/services/messaging"
	"github.com/KirkDiggler/cirrosis/internal/services/stats"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type RenderTestSuite struct {
	suite.Suite
	start time.Time
	end   time.Time
}

func (s *RenderTestSuite) SetupTest() {
	s.start = time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	s.end = time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC)
}

func (s *RenderTestSuite) TestRenderRecorded() {
	output := &consumption.RecordConsumptionOutput{
		Event: &models.ConsumptionEvent{
			Quantity:          2,
			ConsumedAt:        s.start,
			VolumeLitersTotal: decimal.NewNullDecimal(decimal.RequireFromString("0.66")),
			PriceTotal:        decimal.RequireFromString("3.00"),
		},
		DrinkType: &models.DrinkType{
			Label:            "Caña",
			UnitVolumeLiters: decimal.NewNullDecimal(decimal.RequireFromString("0.33")),
		},
	}

	title, description := renderRecorded(output, &consumption.GetPersonYearTotalsOutput{
		BeerYear:      2025,
		IsFirstOfYear: true,
	})

	s.Equal("2 × Caña", title)
	s.Contains(description, "2025-03-01")
	s.Contains(description, "0.66 L, 3.00 €")
	s.Contains(description, "First entry of beer year 2025")
}

func (s *RenderTestSuite) TestRenderRecordedUnitsOnly() {
	output := &consumption.RecordConsumptionOutput{
		Event: &models.ConsumptionEvent{
			Quantity:   1,
			ConsumedAt: s.start,
			PriceTotal: decimal.RequireFromString("2.50"),
		},
		DrinkType: &models.DrinkType{Label: "Chupito"},
	}

	_, description := renderRecorded(output, nil)

	s.NotContains(description, " L")
	s.Contains(description, "2.50 €")
}

func (s *RenderTestSuite) TestRenderUndoOptions() {
	options := renderUndoOptions([]*models.ConsumptionRecord{
		{EventID: "e-1", Quantity: 1, DrinkLabel: "Caña", ConsumedAt: s.start},
		{EventID: "e-2", Quantity: 3, DrinkLabel: "Chupito", ConsumedAt: s.end},
	})

	s.Require().Len(options, 2)
	s.Equal("e-1", options[0].Value)
	s.Equal("3 × Chupito", options[1].Label)
	s.Equal("2025-03-31", options[1].Description)
}

func (s *RenderTestSuite) TestRenderRangeStatsEmpty() {
	_, description, fields := renderRangeStats(&stats.GetRangeStatsOutput{Start: s.start, End: s.end})

	s.Contains(description, "Nobody has logged anything yet")
	s.Nil(fields)
}

func (s *RenderTestSuite) TestRenderRangeStats() {
	_, _, fields := renderRangeStats(&stats.GetRangeStatsOutput{
		Start: s.start,
		End:   s.end,
		Stats: []*stats.PersonStats{
			{Name: "Ana", LitersTotal: decimal.RequireFromString("4.5"), ActiveDays: 2, PeakDay: s.start},
			{Name: "Bea", LitersTotal: decimal.RequireFromString("1")},
		},
	})

	s.Require().Len(fields, 2)
	s.Equal("1. Ana", fields[0].Name)
	s.Contains(fields[0].Value, "4.50 L in 2 days")
	s.Equal("2. Bea", fields[1].Name)
}

func (s *RenderTestSuite) TestRenderGroupMonthsSkipsEmptyMonths() {
	_, description, fields := renderGroupMonths(&stats.GetGroupMonthsOutput{
		Year: 2025,
		Months: []*stats.GroupMonth{
			{Month: time.January},
			{Month: time.February, ActiveDays: 3, LitersTotal: decimal.RequireFromString("2")},
		},
	})

	s.Empty(description)
	s.Require().Len(fields, 1)
	s.Equal("February", fields[0].Name)
}

func (s *RenderTestSuite) TestRenderDrinkRanking() {
	_, _, fields := renderDrinkRanking(s.start, s.end, &stats.GetDrinkRankingOutput{
		Drinks: []*stats.DrinkTotal{
			{Label: "Caña", HasLiters: true, Units: 3, Liters: decimal.RequireFromString("0.99")},
			{Label: "Chupito", Units: 5},
		},
	})

	s.Require().Len(fields, 2)
	s.Equal("0.99 L, 3 units", fields[0].Value)
	s.Equal("5 units", fields[1].Value)
}

func (s *RenderTestSuite) TestRenderShameReportNotApplicable() {
	_, description, fields := renderShameReport(&stats.ShameReport{Start: s.start, End: s.end}, nil)

	s.Contains(description, "Not enough people")
	s.Nil(fields)
}

func (s *RenderTestSuite) TestRenderShameReport() {
	_, _, fields := renderShameReport(&stats.ShameReport{
		Applicable:  true,
		Start:       s.start,
		End:         s.end,
		FalseLeader: &stats.FalseLeader{Name: "Ana", FirstDay: s.start, FinalRank: 2},
		BiggestDrop: &stats.BiggestDrop{Name: "Bea", BestRank: 1, FinalRank: 3, Drop: 2},
		Ghost:       &stats.Ghost{Name: "Carla", BlankDays: 28, Days: 31},
		SaddestWeek: &stats.SaddestWeek{WeekStart: s.start, Liters: decimal.Zero, Days: 2},
	}, map[messaging.ShameFinding]string{messaging.FindingGhost: "Boo."})

	s.Require().Len(fields, 5)
	s.Equal("Ana led from 2025-03-01 and ended #2", fields[0].Value)
	s.Equal("Bea fell from #1 to #3", fields[1].Value)
	s.Equal("Nobody", fields[2].Value)
	s.Equal("Carla stayed dry 28 of 31 days\n*Boo.*", fields[3].Value)
	s.Equal("Week of 2025-03-01: 0.00 L in 2 days", fields[4].Value)
}

func (s *RenderTestSuite) TestRenderBeerYearReport() {
	title, description, fields := renderBeerYearReport(&stats.BeerYearReport{
		Year:  2025,
		Start: time.Date(2025, time.January, 7, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, time.January, 6, 0, 0, 0, 0, time.UTC),
		Entries: []*stats.BeerYearEntry{
			{Name: "Ana", Units: 4, Liters: decimal.RequireFromString("1.32"), Price: decimal.RequireFromString("6")},
		},
	}, []int{2025, 2024})

	s.Equal("Beer year 2025", title)
	s.Contains(description, "2025-01-07 to 2026-01-06")
	s.Contains(description, "Years with data: 2025, 2024")
	s.Require().Len(fields, 1)
	s.Equal("1.32 L, 4 units, 6.00 €", fields[0].Value)
}

func (s *RenderTestSuite) TestRenderJoined() {
	person := &models.Person{ID: "u-ana", Name: "Ana"}

	s.Equal("Welcome, Ana! Log drinks with /cirrosis log.", renderJoined(&consumption.JoinRosterOutput{Person: person, Joined: true}))
	s.Equal("You're already on the roster as Ana.", renderJoined(&consumption.JoinRosterOutput{Person: person}))
}

func (s *RenderTestSuite) TestRenderPersonDrinks() {
	title, description, fields := renderPersonDrinks(2025, []*stats.DrinkTotal{
		{Label: "Chupito", Units: 4, Price: decimal.RequireFromString("8")},
		{Label: "Caña", HasLiters: true, Units: 2, Liters: decimal.RequireFromString("0.66"), Price: decimal.RequireFromString("3")},
	})

	s.Equal("Your beer year 2025", title)
	s.Empty(description)
	s.Require().Len(fields, 2)
	s.Equal("Caña", fields[0].Name)
	s.Equal("0.66 L, 2 units, 3.00 €", fields[0].Value)
	s.Equal("4 units, 8.00 €", fields[1].Value)
}

func (s *RenderTestSuite) TestRenderPersonDrinksEmpty() {
	_, description, fields := renderPersonDrinks(2025, nil)

	s.Equal("Nothing logged this beer year.", description)
	s.Nil(fields)
}

func (s *RenderTestSuite) TestRenderPersonYear() {
	ys := &stats.YearStats{
		PersonStats: stats.PersonStats{
			Name:        "Ana",
			LitersTotal: decimal.RequireFromString("12.5"),
			UnitsTotal:  30,
			PeakDay:     s.start,
		},
		StrongestMonth: time.March,
		WeakestMonth:   time.January,
	}

	title, description, fields := renderPersonYear(2025, ys, 2, 5)

	s.Equal("Your 2025", title)
	s.Equal("#2 of 5 this month", description)
	s.Require().Len(fields, 8)
	s.Equal("12.50 L", fields[0].Value)
	s.Equal("March", fields[6].Value)
}

func (s *RenderTestSuite) TestRenderPersonYearWithoutData() {
	_, description, fields := renderPersonYear(2025, nil, 0, 3)

	s.Equal("Not on this month's board yet.\nNothing logged this year.", description)
	s.Nil(fields)
}

func TestRenderSuite(t *testing.T) {
	suite.Run(t, new(RenderTestSuite))
}
