package stats

import (
	"time"

	"github.com/KirkDiggler/cirrosis/internal/common/clock"
	"github.com/KirkDiggler/cirrosis/internal/models"
	consumptionRepo "github.com/KirkDiggler/cirrosis/internal/repositories/consumption"
	personRepo "github.com/KirkDiggler/cirrosis/internal/repositories/person"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	// DefaultStrongDayLiters is the daily volume from which a day counts as strong
	DefaultStrongDayLiters = decimal.RequireFromString("3.0")

	// DefaultCloseMarginLiters is how near the leader a runner-up must be to count as almost champion
	DefaultCloseMarginLiters = decimal.RequireFromString("0.5")
)

// Thresholds are the tunable limits of the engine
type Thresholds struct {
	StrongDayLiters   decimal.Decimal
	CloseMarginLiters decimal.Decimal
}

// DefaultThresholds returns the limits the group has always played with
func DefaultThresholds() Thresholds {
	return Thresholds{
		StrongDayLiters:   DefaultStrongDayLiters,
		CloseMarginLiters: DefaultCloseMarginLiters,
	}
}

// Config holds configuration for the stats service
type Config struct {
	PersonRepo      personRepo.Repository
	ConsumptionRepo consumptionRepo.Repository
	Clock           clock.Clock

	// Logger defaults to a no-op logger
	Logger *zap.Logger

	// StrongDayThresholdLiters defaults to DefaultStrongDayLiters when not set
	StrongDayThresholdLiters decimal.NullDecimal

	// CloseMarginLiters defaults to DefaultCloseMarginLiters when not set; zero counts exact ties only
	CloseMarginLiters decimal.NullDecimal
}

// PersonStats are one person's totals over a date range
type PersonStats struct {
	PersonID string
	Name     string

	// LitersTotal sums the event volumes; drinks without a unit volume add nothing
	LitersTotal decimal.Decimal
	UnitsTotal  int
	PriceTotal  decimal.Decimal

	// ActiveDays counts the distinct dates with at least one event
	ActiveDays            int
	AvgLitersPerActiveDay decimal.Decimal

	// StrongDays counts the dates whose own liters reach the strong day threshold
	StrongDays int

	// PeakDay is the date with the most liters, the latest one on ties
	PeakDay    time.Time
	PeakLiters decimal.Decimal
}

// YearStats are one person's totals over a calendar year
type YearStats struct {
	PersonStats

	Year                    int
	AvgLitersPerCalendarDay decimal.Decimal

	// StrongestMonth and WeakestMonth compare all twelve months, lower month on ties
	StrongestMonth time.Month
	WeakestMonth   time.Month

	// MonthlyLiters is indexed by month - 1
	MonthlyLiters [12]decimal.Decimal
}

// GroupMonth is the whole group's summary of one calendar month
type GroupMonth struct {
	Year        int
	Month       time.Month
	DaysInMonth int

	LitersTotal decimal.Decimal

	// ActiveDays counts the dates anybody logged an event on
	ActiveDays        int
	AvgPerActiveDay   decimal.Decimal
	AvgPerCalendarDay decimal.Decimal
	ZeroDays          int

	// StrongDays counts the dates whose group liters reach the strong day threshold
	StrongDays int
}

// DrinkTotal is the consumption of one drink type, optionally of one person
type DrinkTotal struct {
	DrinkTypeID string
	Label       string
	Category    models.DrinkCategory

	// HasLiters selects the ranking key: liters when true, units otherwise
	HasLiters bool

	Units  int
	Liters decimal.Decimal
	Price  decimal.Decimal

	// PersonID and PersonName are set on per-person totals only
	PersonID   string
	PersonName string
}

// GridCell is one person's liters on one day of a daily grid
type GridCell struct {
	Date     time.Time
	PersonID string
	Liters   decimal.Decimal

	// Cumulative runs from the grid start through Date inclusive
	Cumulative decimal.Decimal
}

// DailyGrid is a dense day by person matrix
type DailyGrid struct {
	Start     time.Time
	End       time.Time
	Days      []time.Time
	PersonIDs []string

	// Cells is indexed by day, then by person, in the order of Days and PersonIDs
	Cells [][]*GridCell
}

// LeaderboardTrace is everything the day by day ranking walk remembers
type LeaderboardTrace struct {
	// Days holds the full ranking of every day in chronological order
	Days []*models.RankedDay

	// FirstLeadDay maps each person who held rank 1 with liters on the board to the first such day
	FirstLeadDay map[string]time.Time

	// RanksHeld maps each person to the ranks held on days their cumulative was above zero
	RanksHeld map[string][]int

	// Final is the ranking of the last day
	Final *models.RankedDay
}

// FalseLeader is the earliest leader who did not finish first
type FalseLeader struct {
	PersonID  string
	Name      string
	FirstDay  time.Time
	FinalRank int
}

// BiggestDrop is the person who fell furthest from their best rank
type BiggestDrop struct {
	PersonID  string
	Name      string
	BestRank  int
	FinalRank int
	Drop      int
}

// AlmostChampion is the person who most often trailed the leader by a small margin
type AlmostChampion struct {
	PersonID string
	Name     string
	Times    int
}

// Ghost is the participant with the most days without liters
type Ghost struct {
	PersonID  string
	Name      string
	BlankDays int
	Days      int
}

// SaddestWeek is the Monday-started week with the fewest group liters
type SaddestWeek struct {
	// WeekStart is the first day of the week inside the reported range
	WeekStart time.Time
	Liters    decimal.Decimal
	Days      int
}

// ShameReport holds the five findings for one month
type ShameReport struct {
	// Applicable is false when fewer than two persons logged anything; the findings are then nil
	Applicable bool

	Start        time.Time
	End          time.Time
	Participants int

	FalseLeader    *FalseLeader
	BiggestDrop    *BiggestDrop
	AlmostChampion *AlmostChampion
	Ghost          *Ghost
	SaddestWeek    *SaddestWeek
}

// BeerYearEntry is one person's totals over a beer year
type BeerYearEntry struct {
	PersonID string
	Name     string
	Units    int
	Liters   decimal.Decimal
	Price    decimal.Decimal
}

// BeerYearReport lists every eligible person for a beer year, biggest spender first
type BeerYearReport struct {
	Year    int
	Start   time.Time
	End     time.Time
	Entries []*BeerYearEntry
}

// GetRangeStatsInput contains parameters for per-person stats over a range
type GetRangeStatsInput struct {
	Start time.Time
	End   time.Time
}

// GetRangeStatsOutput contains per-person stats, most liters first
type GetRangeStatsOutput struct {
	Start time.Time
	End   time.Time
	Stats []*PersonStats
}

// GetMonthStatsInput contains parameters for per-person stats over a month
type GetMonthStatsInput struct {
	Year  int
	Month time.Month
}

// GetYearStatsInput contains parameters for per-person stats over a calendar year
type GetYearStatsInput struct {
	Year int
}

// GetYearStatsOutput contains per-person year stats, most liters first
type GetYearStatsOutput struct {
	Year  int
	Stats []*YearStats
}

// GetGroupMonthsInput contains parameters for the group month summary
type GetGroupMonthsInput struct {
	Year int
}

// GetGroupMonthsOutput contains the twelve months of a year in order
type GetGroupMonthsOutput struct {
	Year   int
	Months []*GroupMonth
}

// GetDrinkRankingInput contains parameters for ranking drink types
type GetDrinkRankingInput struct {
	Start time.Time
	End   time.Time
}

// GetDrinkRankingOutput contains ranked drink totals
type GetDrinkRankingOutput struct {
	Drinks []*DrinkTotal
}

// GetPersonDrinkRankingInput contains parameters for drink totals per person
type GetPersonDrinkRankingInput struct {
	Start time.Time
	End   time.Time

	// PersonIDs restricts the breakdown when not empty
	PersonIDs []string
}

// GetPersonDrinkRankingOutput contains per drink and person totals
type GetPersonDrinkRankingOutput struct {
	Totals []*DrinkTotal
}

// GetLeaderboardInput contains parameters for the day by day leaderboard
type GetLeaderboardInput struct {
	Start time.Time
	End   time.Time
}

// GetLeaderboardOutput contains the daily rankings of a range
type GetLeaderboardOutput struct {
	Days  []*models.RankedDay
	Final *models.RankedDay
}

// GetShameReportInput contains parameters for the shame report of a month
type GetShameReportInput struct {
	Year  int
	Month time.Month
}

// GetShameReportOutput contains the shame report
type GetShameReportOutput struct {
	Report *ShameReport
}

// GetBeerYearReportInput contains parameters for the beer year report
type GetBeerYearReportInput struct {
	BeerYear int
}

// GetBeerYearReportOutput contains the beer year report
type GetBeerYearReportOutput struct {
	Report *BeerYearReport
}

// ListYearsWithDataInput contains parameters for listing beer years
type ListYearsWithDataInput struct{}

// ListYearsWithDataOutput contains beer years with data, newest first
type ListYearsWithDataOutput struct {
	Years []int
}
