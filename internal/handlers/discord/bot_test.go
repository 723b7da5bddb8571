package discord

import (
	"context"
	"errors"
	"testing"
	"time"

	clockMocks "github.com/KirkDiggler/cirrosis/internal/common/clock/mocks"
	"github.com/KirkDiggler/cirrosis/internal/models"
	"github.com/KirkDiggler/cirrosis/internal/services/consumption"
	consumptionMocks "github.com/KirkDiggler/cirrosis/internal/services/consumption/mocks"
	"github.com/KirkDiggler/cirrosis/internal/services/messaging"
	messagingMocks "github.com/KirkDiggler/cirrosis/internal/services/messaging/mocks"
	"github.com/KirkDiggler/cirrosis/internal/services/stats"
	statsMocks "github.com/KirkDiggler/cirrosis/internal/services/stats/mocks"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BotTestSuite struct {
	suite.Suite
	ctx                    context.Context
	mockCtrl               *gomock.Controller
	mockStatsService       *statsMocks.MockService
	mockConsumptionService *consumptionMocks.MockService
	mockMessagingService   *messagingMocks.MockService
	mockClock              *clockMocks.MockClock
	command                *CirrosisCommand
}

func (s *BotTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockStatsService = statsMocks.NewMockService(s.mockCtrl)
	s.mockConsumptionService = consumptionMocks.NewMockService(s.mockCtrl)
	s.mockMessagingService = messagingMocks.NewMockService(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)

	s.command = NewCirrosisCommand(s.mockStatsService, s.mockConsumptionService, s.mockMessagingService, s.mockClock, []*models.DrinkType{
		{ID: "cana", Label: "Caña", Active: true},
		{ID: "litro", Label: "Litro", Active: false},
	}, nil)
}

func (s *BotTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *BotTestSuite) config() *Config {
	return &Config{
		Token:              "token",
		StatsService:       s.mockStatsService,
		ConsumptionService: s.mockConsumptionService,
		MessagingService:   s.mockMessagingService,
		Clock:              s.mockClock,
	}
}

func (s *BotTestSuite) TestNew() {
	bot, err := New(s.config())
	s.Require().NoError(err)
	s.NotNil(bot.session)
}

func (s *BotTestSuite) TestNewValidation() {
	testCases := []struct {
		name   string
		mutate func(cfg *Config)
	}{
		{"empty token", func(cfg *Config) { cfg.Token = "" }},
		{"nil stats service", func(cfg *Config) { cfg.StatsService = nil }},
		{"nil consumption service", func(cfg *Config) { cfg.ConsumptionService = nil }},
		{"nil messaging service", func(cfg *Config) { cfg.MessagingService = nil }},
		{"nil clock", func(cfg *Config) { cfg.Clock = nil }},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			cfg := s.config()
			tc.mutate(cfg)

			bot, err := New(cfg)
			s.Error(err)
			s.Nil(bot)
		})
	}

	bot, err := New(nil)
	s.Error(err)
	s.Nil(bot)
}

func (s *BotTestSuite) TestCommandOffersActiveDrinksOnly() {
	cmd := s.command.GetCommand()
	s.Equal("cirrosis", cmd.Name)

	var logOption *discordgo.ApplicationCommandOption
	for _, opt := range cmd.Options {
		if opt.Name == "log" {
			logOption = opt
		}
	}
	s.Require().NotNil(logOption)
	s.Require().Len(logOption.Options[0].Choices, 1)
	s.Equal("cana", logOption.Options[0].Choices[0].Value)
}

func (s *BotTestSuite) TestToday() {
	s.mockClock.EXPECT().Now().Return(time.Date(2025, time.March, 14, 23, 30, 0, 0, time.UTC)).Times(2)

	s.Equal(time.Date(2025, time.March, 14, 0, 0, 0, 0, time.UTC), s.command.today())

	year, month := s.command.currentMonth()
	s.Equal(2025, year)
	s.Equal(time.March, month)
}

func (s *BotTestSuite) TestConsumptionErrorMessage() {
	s.mockMessagingService.EXPECT().
		GetErrorMessage(s.ctx, &messaging.GetErrorMessageInput{ErrorType: messaging.ErrorTypeFutureDate}).
		Return(&messaging.GetErrorMessageOutput{Message: "Not yet"}, nil)

	s.Equal("Not yet", s.command.consumptionErrorMessage(s.ctx, consumption.ErrFutureDate))
	s.Equal(consumption.ErrInvalidQuantity.Error(), s.command.consumptionErrorMessage(s.ctx, consumption.ErrInvalidQuantity))
}

func (s *BotTestSuite) TestConsumptionErrorMessageForRosterErrors() {
	s.mockMessagingService.EXPECT().
		GetErrorMessage(s.ctx, &messaging.GetErrorMessageInput{ErrorType: messaging.ErrorTypeNotJoined}).
		Return(&messaging.GetErrorMessageOutput{Message: "Join first"}, nil)
	s.mockMessagingService.EXPECT().
		GetErrorMessage(s.ctx, &messaging.GetErrorMessageInput{ErrorType: messaging.ErrorTypeNameTaken}).
		Return(&messaging.GetErrorMessageOutput{Message: "Taken"}, nil)

	s.Equal("Join first", s.command.consumptionErrorMessage(s.ctx, consumption.ErrPersonNotFound))
	s.Equal("Taken", s.command.consumptionErrorMessage(s.ctx, consumption.ErrNameTaken))
}

func (s *BotTestSuite) TestCommandOffersJoinAndMe() {
	names := make(map[string]bool)
	for _, opt := range s.command.GetCommand().Options {
		names[opt.Name] = true
	}

	s.True(names["join"])
	s.True(names["me"])
}

func (s *BotTestSuite) TestConsumptionErrorMessageFallsBackOnFailure() {
	s.mockMessagingService.EXPECT().
		GetErrorMessage(s.ctx, gomock.Any()).
		Return(nil, errors.New("boom"))

	s.Equal(consumption.ErrDrinkTypeInactive.Error(), s.command.consumptionErrorMessage(s.ctx, consumption.ErrDrinkTypeInactive))
}

func (s *BotTestSuite) TestShameQuips() {
	report := &stats.ShameReport{
		Applicable:  true,
		FalseLeader: &stats.FalseLeader{Name: "Ana"},
		Ghost:       &stats.Ghost{Name: "Bea"},
	}

	s.mockMessagingService.EXPECT().
		GetShameMessage(s.ctx, &messaging.GetShameMessageInput{Finding: messaging.FindingFalseLeader}).
		Return(&messaging.GetShameMessageOutput{Message: "Peaked too soon."}, nil)
	s.mockMessagingService.EXPECT().
		GetShameMessage(s.ctx, &messaging.GetShameMessageInput{Finding: messaging.FindingGhost}).
		Return(nil, errors.New("boom"))

	quips := s.command.shameQuips(s.ctx, report)

	s.Equal(map[messaging.ShameFinding]string{messaging.FindingFalseLeader: "Peaked too soon."}, quips)
}

func (s *BotTestSuite) TestShameQuipsNotApplicable() {
	s.mockMessagingService.EXPECT().
		GetShameMessage(s.ctx, &messaging.GetShameMessageInput{Finding: messaging.FindingNotApplicable}).
		Return(&messaging.GetShameMessageOutput{Message: "Too quiet."}, nil)

	quips := s.command.shameQuips(s.ctx, &stats.ShameReport{})

	s.Equal("Too quiet.", quips[messaging.FindingNotApplicable])
}

func TestBotSuite(t *testing.T) {
	suite.Run(t, new(BotTestSuite))
}
