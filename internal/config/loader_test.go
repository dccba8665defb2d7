package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/courtside-tui/courtside/internal/config"
	"github.com/stretchr/testify/require"
)

func TestLoaderDefaults(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "courtside.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte{}, 0o600))

	loader := config.NewLoader(make(chan config.Config, 1))
	loader.SetConfigFile(cfgPath)

	conf, err := loader.Read()
	require.NoError(t, err)
	require.Equal(t, "America/New_York", conf.Timezone)
	require.Equal(t, 1, conf.PercentDecimals)
	require.Equal(t, 30000, conf.UpdateFreqMs)
	require.Equal(t, 24, conf.ScheduleCacheTTLHours)
	require.Contains(t, conf.BoxScoreURL, "%s")
}

func TestLoaderWriteRoundTrip(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "courtside.yaml")

	writer := config.NewLoader(make(chan config.Config, 1))
	writer.SetConfigFile(cfgPath)
	require.NoError(t, writer.Write(config.Config{
		ScoreboardURL:         "https://example.com/scoreboard.json",
		ScheduleURL:           "https://example.com/schedule.json",
		BoxScoreURL:           "https://example.com/boxscore_%s.json",
		Timezone:              "America/Chicago",
		PercentDecimals:       2,
		UpdateFreqMs:          10000,
		ScheduleCacheTTLHours: 48,
	}))
	require.FileExists(t, cfgPath)

	reader := config.NewLoader(make(chan config.Config, 1))
	reader.SetConfigFile(cfgPath)
	loaded, err := reader.Read()
	require.NoError(t, err)
	require.Equal(t, "America/Chicago", loaded.Timezone)
	require.Equal(t, 2, loaded.PercentDecimals)
	require.Equal(t, 10000, loaded.UpdateFreqMs)
	require.Equal(t, 48, loaded.ScheduleCacheTTLHours)
	require.Equal(t, "https://example.com/boxscore_%s.json", loaded.BoxScoreURL)
}
