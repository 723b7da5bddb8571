package messaging

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	ctx     context.Context
	service Service
}

func (s *MessagingServiceTestSuite) SetupTest() {
	s.ctx = context.Background()

	svc, err := NewService(&ServiceConfig{Rand: rand.New(rand.NewSource(42))})
	s.Require().NoError(err)
	s.service = svc
}

func (s *MessagingServiceTestSuite) TestNewServiceRequiresConfig() {
	svc, err := NewService(nil)
	s.Error(err)
	s.Nil(svc)
}

func (s *MessagingServiceTestSuite) TestRecordedMessageTones() {
	testCases := []struct {
		name  string
		input *GetRecordedMessageInput
		tone  MessageTone
	}{
		{"first of year", &GetRecordedMessageInput{Quantity: 7, FirstOfYear: true, HasLiters: true}, ToneCelebration},
		{"bulk", &GetRecordedMessageInput{Quantity: 5, HasLiters: true}, ToneSarcastic},
		{"units only", &GetRecordedMessageInput{Quantity: 1}, ToneFunny},
		{"plain", &GetRecordedMessageInput{Quantity: 1, HasLiters: true}, ToneEncouraging},
		{"preferred", &GetRecordedMessageInput{Quantity: 1, HasLiters: true, PreferredTone: ToneNeutral}, ToneNeutral},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			output, err := s.service.GetRecordedMessage(s.ctx, tc.input)
			s.Require().NoError(err)
			s.NotEmpty(output.Message)
			s.Equal(tc.tone, output.Tone)
		})
	}
}

func (s *MessagingServiceTestSuite) TestShameMessageForEveryFinding() {
	for _, finding := range []ShameFinding{
		FindingFalseLeader,
		FindingBiggestDrop,
		FindingAlmostChampion,
		FindingGhost,
		FindingSaddestWeek,
		FindingNotApplicable,
	} {
		output, err := s.service.GetShameMessage(s.ctx, &GetShameMessageInput{Finding: finding})
		s.Require().NoError(err, finding)
		s.NotEmpty(output.Message, finding)
	}
}

func (s *MessagingServiceTestSuite) TestShameMessageUnknownFinding() {
	output, err := s.service.GetShameMessage(s.ctx, &GetShameMessageInput{Finding: "hangover"})
	s.Error(err)
	s.Nil(output)
}

func (s *MessagingServiceTestSuite) TestErrorMessageFallsBack() {
	output, err := s.service.GetErrorMessage(s.ctx, &GetErrorMessageInput{ErrorType: "whatever"})
	s.Require().NoError(err)
	s.NotEmpty(output.Message)
	s.Equal(ToneFunny, output.Tone)
}

func (s *MessagingServiceTestSuite) TestNilInputs() {
	_, err := s.service.GetRecordedMessage(s.ctx, nil)
	s.Error(err)
	_, err = s.service.GetShameMessage(s.ctx, nil)
	s.Error(err)
	_, err = s.service.GetErrorMessage(s.ctx, nil)
	s.Error(err)
}

func (s *MessagingServiceTestSuite) TestConcurrentCallersShareOneSource() {
	var wg sync.WaitGroup
	errs := make(chan error, 8*200)

	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for n := 0; n < 200; n++ {
				output, err := s.service.GetShameMessage(s.ctx, &GetShameMessageInput{Finding: FindingGhost})
				if err == nil && output.Message == "" {
					err = errors.New("empty message")
				}
				if err != nil {
					errs <- err
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		s.NoError(err)
	}
}

func TestMessagingServiceSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}
