package stats

import (
	"context"
	"errors"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/cirrosis/internal/common/clock/mocks"
	"github.com/KirkDiggler/cirrosis/internal/common/dates"
	"github.com/KirkDiggler/cirrosis/internal/models"
	consumptionRepo "github.com/KirkDiggler/cirrosis/internal/repositories/consumption"
	consumptionMocks "github.com/KirkDiggler/cirrosis/internal/repositories/consumption/mocks"
	personRepo "github.com/KirkDiggler/cirrosis/internal/repositories/person"
	personMocks "github.com/KirkDiggler/cirrosis/internal/repositories/person/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type StatsServiceTestSuite struct {
	suite.Suite
	mockCtrl            *gomock.Controller
	mockPersonRepo      *personMocks.MockRepository
	mockConsumptionRepo *consumptionMocks.MockRepository
	mockClock           *clockMocks.MockClock
	statsService        Service
	ctx                 context.Context

	testNow time.Time
	roster  []*models.Person
}

func (s *StatsServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockPersonRepo = personMocks.NewMockRepository(s.mockCtrl)
	s.mockConsumptionRepo = consumptionMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)
	s.ctx = context.Background()

	s.testNow = time.Date(2025, 3, 3, 23, 30, 0, 0, time.UTC)
	s.roster = []*models.Person{
		{ID: "p-ana", Name: "Ana", Status: models.PersonStatusActive},
		{ID: "p-luis", Name: "Luis", Status: models.PersonStatusActive},
	}

	svc, err := New(&Config{
		PersonRepo:      s.mockPersonRepo,
		ConsumptionRepo: s.mockConsumptionRepo,
		Clock:           s.mockClock,
	})
	s.Require().NoError(err)
	s.statsService = svc
}

func (s *StatsServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestStatsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(StatsServiceTestSuite))
}

func (s *StatsServiceTestSuite) expectRoster() {
	s.mockPersonRepo.EXPECT().
		ListPersons(gomock.Any(), &personRepo.ListPersonsInput{EligibleOnly: true}).
		Return(&personRepo.ListPersonsOutput{Persons: s.roster}, nil)
}

func (s *StatsServiceTestSuite) expectRecords(start, end time.Time, records []*models.ConsumptionRecord) {
	s.mockConsumptionRepo.EXPECT().
		ListRecords(gomock.Any(), &consumptionRepo.ListRecordsInput{
			Start:     start,
			End:       end,
			PersonIDs: []string{"p-ana", "p-luis"},
		}).
		Return(&consumptionRepo.ListRecordsOutput{Records: records}, nil)
}

func (s *StatsServiceTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.Equal(ErrNilConfig, err)

	_, err = New(&Config{ConsumptionRepo: s.mockConsumptionRepo, Clock: s.mockClock})
	s.Equal(ErrNilPersonRepo, err)

	_, err = New(&Config{PersonRepo: s.mockPersonRepo, Clock: s.mockClock})
	s.Equal(ErrNilConsumptionRepo, err)

	_, err = New(&Config{PersonRepo: s.mockPersonRepo, ConsumptionRepo: s.mockConsumptionRepo})
	s.Equal(ErrNilClock, err)
}

func (s *StatsServiceTestSuite) TestGetRangeStats() {
	start, end := march(1), march(31)
	s.expectRoster()
	s.expectRecords(start, end, []*models.ConsumptionRecord{
		beer("p-ana", march(2), "Caña", "0.5", 2),
		beer("p-luis", march(2), "Litro", "1", 1),
	})

	output, err := s.statsService.GetRangeStats(s.ctx, &GetRangeStatsInput{Start: start, End: end})
	s.Require().NoError(err)
	s.Require().Len(output.Stats, 2)
	s.Equal("Luis", output.Stats[0].Name)
	s.Equal("Ana", output.Stats[1].Name)
}

func (s *StatsServiceTestSuite) TestGetRangeStatsRejectsReversedRangeBeforeFetching() {
	_, err := s.statsService.GetRangeStats(s.ctx, &GetRangeStatsInput{Start: march(5), End: march(1)})
	s.Equal(ErrInvalidRange, err)
}

func (s *StatsServiceTestSuite) TestGetRangeStatsEmptyRoster() {
	s.mockPersonRepo.EXPECT().
		ListPersons(gomock.Any(), gomock.Any()).
		Return(&personRepo.ListPersonsOutput{}, nil)

	_, err := s.statsService.GetRangeStats(s.ctx, &GetRangeStatsInput{Start: march(1), End: march(2)})
	s.Equal(ErrEmptyRoster, err)
}

func (s *StatsServiceTestSuite) TestStoreFailurePropagates() {
	storeErr := errors.New("connection refused")
	s.expectRoster()
	s.mockConsumptionRepo.EXPECT().
		ListRecords(gomock.Any(), gomock.Any()).
		Return(nil, storeErr)

	_, err := s.statsService.GetDrinkRanking(s.ctx, &GetDrinkRankingInput{Start: march(1), End: march(2)})
	s.ErrorIs(err, storeErr)
}

func (s *StatsServiceTestSuite) TestGetMonthStatsClipsCurrentMonth() {
	s.mockClock.EXPECT().Now().Return(s.testNow)
	s.expectRoster()
	s.expectRecords(march(1), march(3), nil)

	output, err := s.statsService.GetMonthStats(s.ctx, &GetMonthStatsInput{Year: 2025, Month: time.March})
	s.Require().NoError(err)
	s.Equal(march(3), output.End)
	s.Empty(output.Stats)
}

func (s *StatsServiceTestSuite) TestGetShameReportClipsCurrentMonth() {
	s.mockClock.EXPECT().Now().Return(s.testNow)
	s.expectRoster()
	s.expectRecords(march(1), march(3), []*models.ConsumptionRecord{
		beer("p-ana", march(1), "Litro", "2", 2),
		beer("p-luis", march(3), "Litro", "3", 3),
	})

	output, err := s.statsService.GetShameReport(s.ctx, &GetShameReportInput{Year: 2025, Month: time.March})
	s.Require().NoError(err)
	s.Require().True(output.Report.Applicable)
	s.Equal(march(3), output.Report.End)
	s.Require().NotNil(output.Report.FalseLeader)
	s.Equal("Ana", output.Report.FalseLeader.Name)
}

func (s *StatsServiceTestSuite) TestGetShameReportPastMonthUsesWholeMonth() {
	s.mockClock.EXPECT().Now().Return(s.testNow)
	start, end := dates.MonthRange(2025, time.February)
	s.expectRoster()
	s.expectRecords(start, end, []*models.ConsumptionRecord{
		beer("p-ana", start, "Litro", "2", 2),
	})

	output, err := s.statsService.GetShameReport(s.ctx, &GetShameReportInput{Year: 2025, Month: time.February})
	s.Require().NoError(err)
	s.False(output.Report.Applicable)
	s.Equal(1, output.Report.Participants)
}

func (s *StatsServiceTestSuite) TestGetShameReportFutureMonth() {
	s.mockClock.EXPECT().Now().Return(s.testNow)

	_, err := s.statsService.GetShameReport(s.ctx, &GetShameReportInput{Year: 2025, Month: time.April})
	s.Equal(ErrInvalidRange, err)
}

func (s *StatsServiceTestSuite) TestGetShameReportInvalidMonth() {
	_, err := s.statsService.GetShameReport(s.ctx, &GetShameReportInput{Year: 2025, Month: 13})
	s.Equal(ErrInvalidMonth, err)
}

func (s *StatsServiceTestSuite) TestGetLeaderboard() {
	s.expectRoster()
	s.expectRecords(march(1), march(2), []*models.ConsumptionRecord{
		beer("p-luis", march(2), "Litro", "1", 1),
	})

	output, err := s.statsService.GetLeaderboard(s.ctx, &GetLeaderboardInput{Start: march(1), End: march(2)})
	s.Require().NoError(err)
	s.Len(output.Days, 2)
	s.Equal("Ana", output.Days[0].Leader().Name)
	s.Equal("Luis", output.Final.Leader().Name)
}

func (s *StatsServiceTestSuite) TestGetGroupMonths() {
	start, end := dates.YearRange(2025)
	s.expectRoster()
	s.expectRecords(start, end, []*models.ConsumptionRecord{
		beer("p-luis", march(2), "Litro", "3", 3),
	})

	output, err := s.statsService.GetGroupMonths(s.ctx, &GetGroupMonthsInput{Year: 2025})
	s.Require().NoError(err)
	s.Require().Len(output.Months, 12)
	s.Equal(1, output.Months[2].StrongDays)
}

func (s *StatsServiceTestSuite) TestGetBeerYearReport() {
	start, end := models.BeerYearRange(2024)
	s.expectRoster()
	s.expectRecords(start, end, nil)

	output, err := s.statsService.GetBeerYearReport(s.ctx, &GetBeerYearReportInput{BeerYear: 2024})
	s.Require().NoError(err)
	s.Len(output.Report.Entries, 2)
	s.Equal("Ana", output.Report.Entries[0].Name)
}

func (s *StatsServiceTestSuite) TestListYearsWithData() {
	s.mockConsumptionRepo.EXPECT().
		ListBeerYears(gomock.Any(), &consumptionRepo.ListBeerYearsInput{}).
		Return(&consumptionRepo.ListBeerYearsOutput{Years: []int{2025, 2024}}, nil)

	output, err := s.statsService.ListYearsWithData(s.ctx, &ListYearsWithDataInput{})
	s.Require().NoError(err)
	s.Equal([]int{2025, 2024}, output.Years)
}

func (s *StatsServiceTestSuite) TestNewRejectsInvalidThresholds() {
	_, err := New(&Config{
		PersonRepo:               s.mockPersonRepo,
		ConsumptionRepo:          s.mockConsumptionRepo,
		Clock:                    s.mockClock,
		StrongDayThresholdLiters: decimal.NewNullDecimal(decimal.Zero),
	})
	s.Equal(ErrInvalidThreshold, err)

	_, err = New(&Config{
		PersonRepo:        s.mockPersonRepo,
		ConsumptionRepo:   s.mockConsumptionRepo,
		Clock:             s.mockClock,
		CloseMarginLiters: decimal.NewNullDecimal(dec("-0.1")),
	})
	s.Equal(ErrInvalidThreshold, err)
}

func (s *StatsServiceTestSuite) expectSteadyFebruary() {
	start, end := dates.MonthRange(2025, time.February)
	s.mockClock.EXPECT().Now().Return(s.testNow)
	s.expectRoster()
	s.expectRecords(start, end, []*models.ConsumptionRecord{
		beer("p-ana", start, "Litro", "1", 1),
		beer("p-luis", start, "Caña", "0.75", 3),
	})
}

func (s *StatsServiceTestSuite) TestGetShameReportDefaultCloseMargin() {
	s.expectSteadyFebruary()

	output, err := s.statsService.GetShameReport(s.ctx, &GetShameReportInput{Year: 2025, Month: time.February})
	s.Require().NoError(err)
	s.Require().NotNil(output.Report.AlmostChampion)
	s.Equal("Luis", output.Report.AlmostChampion.Name)
	s.Equal(28, output.Report.AlmostChampion.Times)
}

func (s *StatsServiceTestSuite) TestGetShameReportZeroCloseMarginCountsExactTiesOnly() {
	svc, err := New(&Config{
		PersonRepo:        s.mockPersonRepo,
		ConsumptionRepo:   s.mockConsumptionRepo,
		Clock:             s.mockClock,
		CloseMarginLiters: decimal.NewNullDecimal(decimal.Zero),
	})
	s.Require().NoError(err)
	s.expectSteadyFebruary()

	output, err := svc.GetShameReport(s.ctx, &GetShameReportInput{Year: 2025, Month: time.February})
	s.Require().NoError(err)
	s.True(output.Report.Applicable)
	s.Nil(output.Report.AlmostChampion)
}

func (s *StatsServiceTestSuite) TestGetYearStats() {
	start, end := dates.YearRange(2025)
	s.expectRoster()
	s.expectRecords(start, end, []*models.ConsumptionRecord{
		beer("p-luis", march(2), "Litro", "3", 3),
		beer("p-ana", dates.Date(2025, time.January, 10), "Caña", "0.5", 2),
	})

	output, err := s.statsService.GetYearStats(s.ctx, &GetYearStatsInput{Year: 2025})
	s.Require().NoError(err)
	s.Equal(2025, output.Year)
	s.Require().Len(output.Stats, 2)
	s.Equal("Luis", output.Stats[0].Name)
	s.True(output.Stats[0].LitersTotal.Equal(dec("3")))
	s.Equal(time.March, output.Stats[0].StrongestMonth)
	s.Equal(time.January, output.Stats[1].StrongestMonth)
}

func (s *StatsServiceTestSuite) TestGetYearStatsEmptyRoster() {
	s.mockPersonRepo.EXPECT().
		ListPersons(gomock.Any(), gomock.Any()).
		Return(&personRepo.ListPersonsOutput{}, nil)

	_, err := s.statsService.GetYearStats(s.ctx, &GetYearStatsInput{Year: 2025})
	s.Equal(ErrEmptyRoster, err)
}

func (s *StatsServiceTestSuite) TestGetPersonDrinkRanking() {
	start, end := march(1), march(31)
	s.expectRoster()
	s.expectRecords(start, end, []*models.ConsumptionRecord{
		beer("p-ana", march(2), "Litro", "1", 1),
		beer("p-ana", march(3), "Caña", "0.5", 2),
		beer("p-luis", march(3), "Litro", "2", 2),
	})

	output, err := s.statsService.GetPersonDrinkRanking(s.ctx, &GetPersonDrinkRankingInput{
		Start:     start,
		End:       end,
		PersonIDs: []string{"p-ana"},
	})
	s.Require().NoError(err)
	s.Require().Len(output.Totals, 2)
	s.Equal("Caña", output.Totals[0].Label)
	s.Equal("Litro", output.Totals[1].Label)
	for _, total := range output.Totals {
		s.Equal("p-ana", total.PersonID)
		s.Equal("Ana", total.PersonName)
	}
}

func (s *StatsServiceTestSuite) TestGetPersonDrinkRankingRejectsReversedRange() {
	_, err := s.statsService.GetPersonDrinkRanking(s.ctx, &GetPersonDrinkRankingInput{Start: march(5), End: march(1)})
	s.Equal(ErrInvalidRange, err)
}
