package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/KirkDiggler/cirrosis/internal/common/clock"
	"github.com/KirkDiggler/cirrosis/internal/common/dates"
	"github.com/KirkDiggler/cirrosis/internal/models"
	consumptionRepo "github.com/KirkDiggler/cirrosis/internal/repositories/consumption"
	personRepo "github.com/KirkDiggler/cirrosis/internal/repositories/person"
	"go.uber.org/zap"
)

// service implements the Service interface
type service struct {
	personRepo      personRepo.Repository
	consumptionRepo consumptionRepo.Repository
	clock           clock.Clock
	log             *zap.Logger
	thresholds      Thresholds
}

// New creates a new stats service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.PersonRepo == nil {
		return nil, ErrNilPersonRepo
	}
	if cfg.ConsumptionRepo == nil {
		return nil, ErrNilConsumptionRepo
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	thresholds := DefaultThresholds()
	if cfg.StrongDayThresholdLiters.Valid {
		if !cfg.StrongDayThresholdLiters.Decimal.IsPositive() {
			return nil, ErrInvalidThreshold
		}
		thresholds.StrongDayLiters = cfg.StrongDayThresholdLiters.Decimal
	}
	if cfg.CloseMarginLiters.Valid {
		if cfg.CloseMarginLiters.Decimal.IsNegative() {
			return nil, ErrInvalidThreshold
		}
		thresholds.CloseMarginLiters = cfg.CloseMarginLiters.Decimal
	}

	return &service{
		personRepo:      cfg.PersonRepo,
		consumptionRepo: cfg.ConsumptionRepo,
		clock:           cfg.Clock,
		log:             log.Named("stats"),
		thresholds:      thresholds,
	}, nil
}

// load fetches the eligible roster and its records for a range
func (s *service) load(ctx context.Context, start, end time.Time) ([]*models.Person, []*models.ConsumptionRecord, error) {
	roster, err := s.personRepo.ListPersons(ctx, &personRepo.ListPersonsInput{
		EligibleOnly: true,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list persons: %w", err)
	}
	if len(roster.Persons) == 0 {
		return nil, nil, ErrEmptyRoster
	}

	personIDs := make([]string, 0, len(roster.Persons))
	for _, p := range roster.Persons {
		personIDs = append(personIDs, p.ID)
	}

	records, err := s.consumptionRepo.ListRecords(ctx, &consumptionRepo.ListRecordsInput{
		Start:     dates.Day(start),
		End:       dates.Day(end),
		PersonIDs: personIDs,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list consumption records: %w", err)
	}

	s.log.Debug("loaded records",
		zap.String("start", dates.Key(start)),
		zap.String("end", dates.Key(end)),
		zap.Int("persons", len(roster.Persons)),
		zap.Int("records", len(records.Records)))

	return roster.Persons, records.Records, nil
}

// monthToDate returns the range of a month, never ending after today
func (s *service) monthToDate(year int, month time.Month) (time.Time, time.Time, error) {
	if month < time.January || month > time.December {
		return time.Time{}, time.Time{}, ErrInvalidMonth
	}

	start, end := dates.MonthRange(year, month)
	today := clock.Today(s.clock)
	if end.After(today) {
		end = today
	}
	return start, end, nil
}

// GetRangeStats returns per-person stats over a date range
func (s *service) GetRangeStats(ctx context.Context, input *GetRangeStatsInput) (*GetRangeStatsOutput, error) {
	if input == nil {
		return nil, ErrInvalidRange
	}
	if err := validateRange(input.Start, input.End); err != nil {
		return nil, err
	}

	roster, records, err := s.load(ctx, input.Start, input.End)
	if err != nil {
		return nil, err
	}

	stats, err := AggregateRange(records, roster, input.Start, input.End, s.thresholds)
	if err != nil {
		return nil, err
	}

	return &GetRangeStatsOutput{
		Start: dates.Day(input.Start),
		End:   dates.Day(input.End),
		Stats: stats,
	}, nil
}

// GetMonthStats returns per-person stats over a month
func (s *service) GetMonthStats(ctx context.Context, input *GetMonthStatsInput) (*GetRangeStatsOutput, error) {
	if input == nil {
		return nil, ErrInvalidMonth
	}

	start, end, err := s.monthToDate(input.Year, input.Month)
	if err != nil {
		return nil, err
	}

	return s.GetRangeStats(ctx, &GetRangeStatsInput{
		Start: start,
		End:   end,
	})
}

// GetYearStats returns per-person stats over a calendar year
func (s *service) GetYearStats(ctx context.Context, input *GetYearStatsInput) (*GetYearStatsOutput, error) {
	if input == nil {
		return nil, ErrInvalidRange
	}

	start, end := dates.YearRange(input.Year)
	roster, records, err := s.load(ctx, start, end)
	if err != nil {
		return nil, err
	}

	stats, err := AggregateYear(records, roster, input.Year, s.thresholds)
	if err != nil {
		return nil, err
	}

	return &GetYearStatsOutput{
		Year:  input.Year,
		Stats: stats,
	}, nil
}

// GetGroupMonths returns the group summary of each month of a year
func (s *service) GetGroupMonths(ctx context.Context, input *GetGroupMonthsInput) (*GetGroupMonthsOutput, error) {
	if input == nil {
		return nil, ErrInvalidRange
	}

	start, end := dates.YearRange(input.Year)
	roster, records, err := s.load(ctx, start, end)
	if err != nil {
		return nil, err
	}

	months, err := SummarizeGroupMonths(records, roster, input.Year, s.thresholds)
	if err != nil {
		return nil, err
	}

	return &GetGroupMonthsOutput{
		Year:   input.Year,
		Months: months,
	}, nil
}

// GetDrinkRanking ranks drink types over a date range
func (s *service) GetDrinkRanking(ctx context.Context, input *GetDrinkRankingInput) (*GetDrinkRankingOutput, error) {
	if input == nil {
		return nil, ErrInvalidRange
	}
	if err := validateRange(input.Start, input.End); err != nil {
		return nil, err
	}

	roster, records, err := s.load(ctx, input.Start, input.End)
	if err != nil {
		return nil, err
	}

	drinks, err := RankDrinkTypes(records, roster, input.Start, input.End)
	if err != nil {
		return nil, err
	}

	return &GetDrinkRankingOutput{
		Drinks: drinks,
	}, nil
}

// GetPersonDrinkRanking breaks drink totals down per person
func (s *service) GetPersonDrinkRanking(ctx context.Context, input *GetPersonDrinkRankingInput) (*GetPersonDrinkRankingOutput, error) {
	if input == nil {
		return nil, ErrInvalidRange
	}
	if err := validateRange(input.Start, input.End); err != nil {
		return nil, err
	}

	roster, records, err := s.load(ctx, input.Start, input.End)
	if err != nil {
		return nil, err
	}

	totals, err := RankDrinkTypesByPerson(records, roster, input.Start, input.End, input.PersonIDs)
	if err != nil {
		return nil, err
	}

	return &GetPersonDrinkRankingOutput{
		Totals: totals,
	}, nil
}

// GetLeaderboard returns the day by day leaderboard of every eligible person
func (s *service) GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error) {
	if input == nil {
		return nil, ErrInvalidRange
	}
	if err := validateRange(input.Start, input.End); err != nil {
		return nil, err
	}

	roster, records, err := s.load(ctx, input.Start, input.End)
	if err != nil {
		return nil, err
	}

	personIDs := make([]string, 0, len(roster))
	names := make(map[string]string, len(roster))
	for _, p := range roster {
		personIDs = append(personIDs, p.ID)
		names[p.ID] = p.Name
	}

	grid, err := BuildDailyGrid(records, personIDs, input.Start, input.End)
	if err != nil {
		return nil, err
	}
	trace, err := SimulateLeaderboard(grid, names)
	if err != nil {
		return nil, err
	}

	return &GetLeaderboardOutput{
		Days:  trace.Days,
		Final: trace.Final,
	}, nil
}

// GetShameReport returns the shame report of a month, up to today for the
// current month
func (s *service) GetShameReport(ctx context.Context, input *GetShameReportInput) (*GetShameReportOutput, error) {
	if input == nil {
		return nil, ErrInvalidMonth
	}

	start, end, err := s.monthToDate(input.Year, input.Month)
	if err != nil {
		return nil, err
	}
	if err := validateRange(start, end); err != nil {
		return nil, err
	}

	roster, records, err := s.load(ctx, start, end)
	if err != nil {
		return nil, err
	}

	report, err := BuildShameReport(records, roster, start, end, s.thresholds)
	if err != nil {
		return nil, err
	}

	if !report.Applicable {
		s.log.Info("shame report not applicable",
			zap.Int("year", input.Year),
			zap.Int("month", int(input.Month)),
			zap.Int("participants", report.Participants))
	}

	return &GetShameReportOutput{
		Report: report,
	}, nil
}

// GetBeerYearReport returns every eligible person's totals over a beer year
func (s *service) GetBeerYearReport(ctx context.Context, input *GetBeerYearReportInput) (*GetBeerYearReportOutput, error) {
	if input == nil {
		return nil, ErrInvalidRange
	}

	start, end := models.BeerYearRange(input.BeerYear)
	roster, records, err := s.load(ctx, start, end)
	if err != nil {
		return nil, err
	}

	report, err := BuildBeerYearReport(records, roster, input.BeerYear)
	if err != nil {
		return nil, err
	}

	return &GetBeerYearReportOutput{
		Report: report,
	}, nil
}

// ListYearsWithData returns the beer years that hold events
func (s *service) ListYearsWithData(ctx context.Context, input *ListYearsWithDataInput) (*ListYearsWithDataOutput, error) {
	years, err := s.consumptionRepo.ListBeerYears(ctx, &consumptionRepo.ListBeerYearsInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to list beer years: %w", err)
	}

	return &ListYearsWithDataOutput{
		Years: years.Years,
	}, nil
}
