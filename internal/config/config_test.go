package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("STMT_TEST_KEY", "value")

	assert.Equal(t, "value", GetEnv("STMT_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", GetEnv("STMT_TEST_MISSING_KEY", "fallback"))
}

func TestGetEnvEmptyValueBeatsFallback(t *testing.T) {
	t.Setenv("STMT_TEST_EMPTY", "")
	assert.Equal(t, "", GetEnv("STMT_TEST_EMPTY", "fallback"))
}

func TestConfigureLoggingLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")

	logger := ConfigureLogging()
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
}

func TestConfigureLoggingInvalidLevelDefaultsToInfo(t *testing.T) {
	t.Setenv("LOG_LEVEL", "nonsense")

	logger := ConfigureLogging()
	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}

func TestConfigureLoggingJSONFormat(t *testing.T) {
	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("LOG_FORMAT", "json")

	logger := ConfigureLogging()
	assert.IsType(t, &logrus.JSONFormatter{}, logger.Formatter)
}
