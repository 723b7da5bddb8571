package stats

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/cirrosis/internal/services/stats Service

import "context"

// Service defines the interface for the stats engine backed by the stores
type Service interface {
	// GetRangeStats returns per-person stats over a date range
	GetRangeStats(ctx context.Context, input *GetRangeStatsInput) (*GetRangeStatsOutput, error)

	// GetMonthStats returns per-person stats over a month, clipped to today for the current month
	GetMonthStats(ctx context.Context, input *GetMonthStatsInput) (*GetRangeStatsOutput, error)

	// GetYearStats returns per-person stats over a calendar year
	GetYearStats(ctx context.Context, input *GetYearStatsInput) (*GetYearStatsOutput, error)

	// GetGroupMonths returns the group summary of each month of a year
	GetGroupMonths(ctx context.Context, input *GetGroupMonthsInput) (*GetGroupMonthsOutput, error)

	// GetDrinkRanking ranks drink types over a date range
	GetDrinkRanking(ctx context.Context, input *GetDrinkRankingInput) (*GetDrinkRankingOutput, error)

	// GetPersonDrinkRanking breaks drink totals down per person
	GetPersonDrinkRanking(ctx context.Context, input *GetPersonDrinkRankingInput) (*GetPersonDrinkRankingOutput, error)

	// GetLeaderboard returns the day by day leaderboard of a range
	GetLeaderboard(ctx context.Context, input *GetLeaderboardInput) (*GetLeaderboardOutput, error)

	// GetShameReport returns the shame report of a month
	GetShameReport(ctx context.Context, input *GetShameReportInput) (*GetShameReportOutput, error)

	// GetBeerYearReport returns every eligible person's totals over a beer year
	GetBeerYearReport(ctx context.Context, input *GetBeerYearReportInput) (*GetBeerYearReportOutput, error)

	// ListYearsWithData returns the beer years that hold events
	ListYearsWithData(ctx context.Context, input *ListYearsWithDataInput) (*ListYearsWithDataOutput, error)
}
