package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) SetupTest() {
	for _, key := range []string{
		"STORE_BACKEND", "DATABASE_URL", "REDIS_ADDR", "LOG_LEVEL", "TIMEZONE",
		"STRONG_DAY_THRESHOLD_LITERS", "CLOSE_MARGIN_LITERS", "SEED_CATALOG",
	} {
		s.T().Setenv(key, "")
		os.Unsetenv(key)
	}
	s.T().Setenv("TIMEZONE", "UTC")
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := Load()
	s.Require().NoError(err)
	s.Equal(BackendRedis, cfg.StoreBackend)
	s.Equal("localhost:6379", cfg.RedisAddr)
	s.Equal("info", cfg.LogLevel)
	s.True(cfg.StrongDayThresholdLiters.Equal(decimal.RequireFromString("3")))
	s.True(cfg.CloseMarginLiters.Equal(decimal.RequireFromString("0.5")))
	s.True(cfg.SeedCatalog)
}

func (s *ConfigTestSuite) TestThresholdsFromEnv() {
	s.T().Setenv("STRONG_DAY_THRESHOLD_LITERS", "2.5")
	s.T().Setenv("CLOSE_MARGIN_LITERS", "0.25")

	cfg, err := Load()
	s.Require().NoError(err)
	s.True(cfg.StrongDayThresholdLiters.Equal(decimal.RequireFromString("2.5")))
	s.True(cfg.CloseMarginLiters.Equal(decimal.RequireFromString("0.25")))
}

func (s *ConfigTestSuite) TestInvalidThreshold() {
	s.T().Setenv("STRONG_DAY_THRESHOLD_LITERS", "lots")

	_, err := Load()
	s.ErrorContains(err, "parse env:")
}

func (s *ConfigTestSuite) TestPostgresNeedsDatabaseURL() {
	s.T().Setenv("STORE_BACKEND", BackendPostgres)

	_, err := Load()
	s.ErrorContains(err, "DATABASE_URL")

	s.T().Setenv("DATABASE_URL", "postgres://cirrosis@localhost/cirrosis")
	cfg, err := Load()
	s.Require().NoError(err)
	s.Equal(BackendPostgres, cfg.StoreBackend)
}

func (s *ConfigTestSuite) TestUnknownBackend() {
	s.T().Setenv("STORE_BACKEND", "mongo")

	_, err := Load()
	s.ErrorContains(err, "STORE_BACKEND")
}

func (s *ConfigTestSuite) TestDotenvFile() {
	path := filepath.Join(s.T().TempDir(), ".env")
	s.Require().NoError(os.WriteFile(path, []byte("LOG_LEVEL=debug\nGUILD_ID=guild-1\n"), 0o600))
	s.T().Setenv("GUILD_ID", "")
	os.Unsetenv("GUILD_ID")

	cfg, err := Load(path, filepath.Join(s.T().TempDir(), "missing.env"))
	s.Require().NoError(err)
	s.Equal("debug", cfg.LogLevel)
	s.Equal("guild-1", cfg.GuildID)
}
