package logger

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/zap/zapcore"
)

type LoggerTestSuite struct {
	suite.Suite
}

func TestLoggerTestSuite(t *testing.T) {
	suite.Run(t, new(LoggerTestSuite))
}

func (s *LoggerTestSuite) TestDefaultsToInfo() {
	log, err := New("")
	s.Require().NoError(err)
	s.True(log.Core().Enabled(zapcore.InfoLevel))
	s.False(log.Core().Enabled(zapcore.DebugLevel))
}

func (s *LoggerTestSuite) TestDebugLevel() {
	log, err := New("debug")
	s.Require().NoError(err)
	s.True(log.Core().Enabled(zapcore.DebugLevel))
}

func (s *LoggerTestSuite) TestInvalidLevel() {
	_, err := New("loud")
	s.Error(err)
}
