package discord

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/KirkDiggler/cirrosis/internal/common/clock"
	"github.com/KirkDiggler/cirrosis/internal/common/dates"
	"github.com/KirkDiggler/cirrosis/internal/models"
	"github.com/KirkDiggler/cirrosis/internal/services/consumption"
	"github.com/KirkDiggler/cirrosis/internal/services/messaging"
	"github.com/KirkDiggler/cirrosis/internal/services/stats"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// Discord caps the number of choices of one option
const maxChoices = 25

// CirrosisCommand handles the /cirrosis command
type CirrosisCommand struct {
	BaseCommand
	statsService       stats.Service
	consumptionService consumption.Service
	messagingService   messaging.Service
	clock              clock.Clock
	log                *zap.Logger
}

// NewCirrosisCommand creates a new cirrosis command handler
func NewCirrosisCommand(statsService stats.Service, consumptionService consumption.Service, messagingService messaging.Service, clk clock.Clock, drinks []*models.DrinkType, log *zap.Logger) *CirrosisCommand {
	if log == nil {
		log = zap.NewNop()
	}

	drinkChoices := make([]*discordgo.ApplicationCommandOptionChoice, 0, len(drinks))
	for _, drink := range drinks {
		if !drink.Active || len(drinkChoices) == maxChoices {
			continue
		}
		drinkChoices = append(drinkChoices, &discordgo.ApplicationCommandOptionChoice{
			Name:  drink.Label,
			Value: drink.ID,
		})
	}

	minQuantity := float64(1)

	return &CirrosisCommand{
		BaseCommand: BaseCommand{
			Name:        "cirrosis",
			Description: "Drink log and group stats",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "log",
					Description: "Log drinks for today",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "drink",
							Description: "What you drank",
							Required:    true,
							Choices:     drinkChoices,
						},
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "quantity",
							Description: "How many",
							MinValue:    &minQuantity,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "date",
							Description: "Day of the drinks as YYYY-MM-DD, today when empty",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "join",
					Description: "Join the group under a display name",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "name",
							Description: "Name shown in rankings",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "undo",
					Description: "Undo one of your latest entries",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "ranking",
					Description: "Liters ranking of this month",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "month",
					Description: "Group summary of every month this year",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "drinks",
					Description: "Most drunk drinks this month",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "shame",
					Description: "Shame report of this month",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "year",
					Description: "Beer year totals",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "year",
							Description: "Beer year, the current one when empty",
						},
						{
							Type:        discordgo.ApplicationCommandOptionBoolean,
							Name:        "mine",
							Description: "Break your own drinks down instead",
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "me",
					Description: "Your stats this year and your rank this month",
				},
			},
		},
		statsService:       statsService,
		consumptionService: consumptionService,
		messagingService:   messagingService,
		clock:              clk,
		log:                log,
	}
}

func (c *CirrosisCommand) today() time.Time {
	return clock.Today(c.clock)
}

func (c *CirrosisCommand) currentMonth() (int, time.Month) {
	today := c.today()
	return today.Year(), today.Month()
}

// Handle processes a Discord interaction for the cirrosis command
func (c *CirrosisCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}

	sub := data.Options[0]
	userID := interactionUserID(i)

	ctx := context.Background()
	var err error
	switch sub.Name {
	case "log":
		err = c.handleLog(ctx, s, i, userID, sub.Options)
	case "join":
		err = c.handleJoin(ctx, s, i, userID, sub.Options)
	case "undo":
		err = c.handleUndo(ctx, s, i, userID)
	case "ranking":
		err = c.handleRanking(ctx, s, i)
	case "month":
		err = c.handleMonth(ctx, s, i)
	case "drinks":
		err = c.handleDrinks(ctx, s, i)
	case "shame":
		err = c.handleShame(ctx, s, i)
	case "year":
		err = c.handleYear(ctx, s, i, userID, sub.Options)
	case "me":
		err = c.handleMe(ctx, s, i, userID)
	default:
		err = errors.New("unknown subcommand")
	}

	return err
}

// handleLog handles the log subcommand
func (c *CirrosisCommand) handleLog(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID string, options []*discordgo.ApplicationCommandInteractionDataOption) error {
	input := &consumption.RecordConsumptionInput{
		PersonID: userID,
		Quantity: 1,
	}
	for _, opt := range options {
		switch opt.Name {
		case "drink":
			input.DrinkTypeID = opt.StringValue()
		case "quantity":
			input.Quantity = int(opt.IntValue())
		case "date":
			day, err := dates.Parse(opt.StringValue())
			if err != nil {
				return RespondWithEphemeralMessage(s, i, "Dates look like 2025-03-14")
			}
			input.ConsumedAt = day
		}
	}

	output, err := c.consumptionService.RecordConsumption(ctx, input)
	if err != nil {
		var cerr consumption.ConsumptionError
		if errors.As(err, &cerr) {
			return RespondWithEphemeralMessage(s, i, c.consumptionErrorMessage(ctx, cerr))
		}
		c.log.Error("failed to record consumption", zap.String("person_id", userID), zap.Error(err))
		return RespondWithError(s, i, "Could not log that, try again later")
	}

	totals, err := c.consumptionService.GetPersonYearTotals(ctx, &consumption.GetPersonYearTotalsInput{
		PersonID: userID,
		BeerYear: output.Event.BeerYear,
	})
	if err != nil {
		c.log.Warn("failed to read year totals", zap.String("person_id", userID), zap.Error(err))
		totals = nil
	}

	title, description := renderRecorded(output, totals)

	flavor, err := c.messagingService.GetRecordedMessage(ctx, &messaging.GetRecordedMessageInput{
		Quantity:    output.Event.Quantity,
		FirstOfYear: totals != nil && totals.IsFirstOfYear,
		HasLiters:   output.DrinkType.HasLiters(),
	})
	if err == nil {
		description += "\n\n" + flavor.Message
	}

	return RespondWithEmbed(s, i, title, description, nil)
}

// handleJoin handles the join subcommand
func (c *CirrosisCommand) handleJoin(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID string, options []*discordgo.ApplicationCommandInteractionDataOption) error {
	input := &consumption.JoinRosterInput{PersonID: userID}
	for _, opt := range options {
		if opt.Name == "name" {
			input.Name = opt.StringValue()
		}
	}

	output, err := c.consumptionService.JoinRoster(ctx, input)
	if err != nil {
		var cerr consumption.ConsumptionError
		if errors.As(err, &cerr) {
			return RespondWithEphemeralMessage(s, i, c.consumptionErrorMessage(ctx, cerr))
		}
		c.log.Error("failed to join roster", zap.String("person_id", userID), zap.Error(err))
		return RespondWithError(s, i, "Could not add you, try again later")
	}

	return RespondWithEphemeralMessage(s, i, renderJoined(output))
}

// handleUndo offers the latest entries of the user in a select menu
func (c *CirrosisCommand) handleUndo(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID string) error {
	output, err := c.consumptionService.ListRecentConsumptions(ctx, &consumption.ListRecentConsumptionsInput{
		PersonID: userID,
	})
	if err != nil {
		c.log.Error("failed to list recent consumptions", zap.String("person_id", userID), zap.Error(err))
		return RespondWithError(s, i, "Could not read your entries")
	}
	if len(output.Records) == 0 {
		return RespondWithEphemeralMessage(s, i, "Nothing to undo")
	}

	menu := discordgo.SelectMenu{
		CustomID:    SelectVoidConsumption,
		Placeholder: "Pick the entry to undo",
		Options:     renderUndoOptions(output.Records),
	}

	return RespondWithEphemeralComponents(s, i, "Your latest entries", []discordgo.MessageComponent{menu})
}

// handleRanking handles the ranking subcommand
func (c *CirrosisCommand) handleRanking(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	year, month := c.currentMonth()
	output, err := c.statsService.GetMonthStats(ctx, &stats.GetMonthStatsInput{
		Year:  year,
		Month: month,
	})
	if err != nil {
		return c.respondStatsError(s, i, "ranking", err)
	}

	title, description, fields := renderRangeStats(output)
	return RespondWithEmbed(s, i, title, description, fields)
}

// handleMonth handles the month subcommand
func (c *CirrosisCommand) handleMonth(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	year, _ := c.currentMonth()
	output, err := c.statsService.GetGroupMonths(ctx, &stats.GetGroupMonthsInput{
		Year: year,
	})
	if err != nil {
		return c.respondStatsError(s, i, "month", err)
	}

	title, description, fields := renderGroupMonths(output)
	return RespondWithEmbed(s, i, title, description, fields)
}

// handleDrinks handles the drinks subcommand
func (c *CirrosisCommand) handleDrinks(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	year, month := c.currentMonth()
	start, end := dates.MonthRange(year, month)
	if today := c.today(); end.After(today) {
		end = today
	}

	output, err := c.statsService.GetDrinkRanking(ctx, &stats.GetDrinkRankingInput{
		Start: start,
		End:   end,
	})
	if err != nil {
		return c.respondStatsError(s, i, "drinks", err)
	}

	title, description, fields := renderDrinkRanking(start, end, output)
	return RespondWithEmbed(s, i, title, description, fields)
}

// handleShame handles the shame subcommand
func (c *CirrosisCommand) handleShame(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	year, month := c.currentMonth()
	output, err := c.statsService.GetShameReport(ctx, &stats.GetShameReportInput{
		Year:  year,
		Month: month,
	})
	if err != nil {
		return c.respondStatsError(s, i, "shame", err)
	}

	title, description, fields := renderShameReport(output.Report, c.shameQuips(ctx, output.Report))
	return RespondWithEmbed(s, i, title, description, fields)
}

// handleYear handles the year subcommand
func (c *CirrosisCommand) handleYear(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID string, options []*discordgo.ApplicationCommandInteractionDataOption) error {
	beerYear := models.BeerYearFor(c.today())
	mine := false
	for _, opt := range options {
		switch opt.Name {
		case "year":
			beerYear = int(opt.IntValue())
		case "mine":
			mine = opt.BoolValue()
		}
	}

	if mine {
		return c.handleYearByDrink(ctx, s, i, userID, beerYear)
	}

	output, err := c.statsService.GetBeerYearReport(ctx, &stats.GetBeerYearReportInput{
		BeerYear: beerYear,
	})
	if err != nil {
		return c.respondStatsError(s, i, "year", err)
	}

	years, err := c.statsService.ListYearsWithData(ctx, &stats.ListYearsWithDataInput{})
	if err != nil {
		c.log.Warn("failed to list beer years", zap.Error(err))
		years = &stats.ListYearsWithDataOutput{}
	}

	title, description, fields := renderBeerYearReport(output.Report, years.Years)
	return RespondWithEmbed(s, i, title, description, fields)
}

// handleYearByDrink breaks the caller's beer year down per drink
func (c *CirrosisCommand) handleYearByDrink(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID string, beerYear int) error {
	start, end := models.BeerYearRange(beerYear)
	output, err := c.statsService.GetPersonDrinkRanking(ctx, &stats.GetPersonDrinkRankingInput{
		Start:     start,
		End:       end,
		PersonIDs: []string{userID},
	})
	if err != nil {
		return c.respondStatsError(s, i, "year", err)
	}

	title, description, fields := renderPersonDrinks(beerYear, output.Totals)
	return RespondWithEmbed(s, i, title, description, fields)
}

// handleMe shows the caller's calendar year stats and current month rank
func (c *CirrosisCommand) handleMe(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID string) error {
	today := c.today()

	yearStats, err := c.statsService.GetYearStats(ctx, &stats.GetYearStatsInput{
		Year: today.Year(),
	})
	if err != nil {
		return c.respondStatsError(s, i, "me", err)
	}

	var mine *stats.YearStats
	for _, ys := range yearStats.Stats {
		if ys.PersonID == userID {
			mine = ys
			break
		}
	}

	start, _ := dates.MonthRange(today.Year(), today.Month())
	board, err := c.statsService.GetLeaderboard(ctx, &stats.GetLeaderboardInput{
		Start: start,
		End:   today,
	})
	if err != nil {
		return c.respondStatsError(s, i, "me", err)
	}

	entrants := 0
	if board.Final != nil {
		entrants = len(board.Final.Entries)
	}

	title, description, fields := renderPersonYear(today.Year(), mine, board.Final.RankOf(userID), entrants)
	return RespondWithEmbed(s, i, title, description, fields)
}

func (c *CirrosisCommand) respondStatsError(s *discordgo.Session, i *discordgo.InteractionCreate, subcommand string, err error) error {
	var serr stats.StatsError
	if errors.As(err, &serr) {
		return RespondWithEphemeralMessage(s, i, serr.Error())
	}
	c.log.Error("failed to compute stats", zap.String("subcommand", subcommand), zap.Error(err))
	return RespondWithError(s, i, fmt.Sprintf("Could not compute the %s stats, try again later", subcommand))
}

// consumptionErrorMessage turns a validation error into a friendly message
func (c *CirrosisCommand) consumptionErrorMessage(ctx context.Context, cerr consumption.ConsumptionError) string {
	var errorType messaging.ErrorType
	switch cerr {
	case consumption.ErrFutureDate:
		errorType = messaging.ErrorTypeFutureDate
	case consumption.ErrPersonNotFound:
		errorType = messaging.ErrorTypeNotJoined
	case consumption.ErrPersonNotEligible:
		errorType = messaging.ErrorTypeNotEligible
	case consumption.ErrNameTaken:
		errorType = messaging.ErrorTypeNameTaken
	case consumption.ErrDrinkTypeInactive:
		errorType = messaging.ErrorTypeDrinkInactive
	default:
		return cerr.Error()
	}

	output, err := c.messagingService.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{ErrorType: errorType})
	if err != nil {
		return cerr.Error()
	}
	return output.Message
}

// shameQuips picks a line for every finding present in the report
func (c *CirrosisCommand) shameQuips(ctx context.Context, report *stats.ShameReport) map[messaging.ShameFinding]string {
	var findings []messaging.ShameFinding
	if !report.Applicable {
		findings = append(findings, messaging.FindingNotApplicable)
	}
	if report.FalseLeader != nil {
		findings = append(findings, messaging.FindingFalseLeader)
	}
	if report.BiggestDrop != nil {
		findings = append(findings, messaging.FindingBiggestDrop)
	}
	if report.AlmostChampion != nil {
		findings = append(findings, messaging.FindingAlmostChampion)
	}
	if report.Ghost != nil {
		findings = append(findings, messaging.FindingGhost)
	}
	if report.SaddestWeek != nil {
		findings = append(findings, messaging.FindingSaddestWeek)
	}

	quips := make(map[messaging.ShameFinding]string, len(findings))
	for _, finding := range findings {
		output, err := c.messagingService.GetShameMessage(ctx, &messaging.GetShameMessageInput{Finding: finding})
		if err != nil {
			c.log.Warn("failed to pick shame line", zap.String("finding", string(finding)), zap.Error(err))
			continue
		}
		quips[finding] = output.Message
	}
	return quips
}
