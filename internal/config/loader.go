package config

import (
	"errors"
	"log/slog"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Loader handles setting up viper, loading configuration from files, and broadcasting configuration changes.
type Loader struct {
	*viper.Viper
	changes chan<- Config
}

func NewLoader(changes chan<- Config) *Loader {
	loader := Loader{changes: changes, Viper: viper.New()}
	loader.SetDefault("scoreboard_url", "https://cdn.nba.com/static/json/liveData/scoreboard/todaysScoreboard_00.json")
	loader.SetDefault("schedule_url", "https://cdn.nba.com/static/json/staticData/scheduleLeagueV2.json")
	loader.SetDefault("box_score_url", "https://cdn.nba.com/static/json/liveData/boxscore/boxscore_%s.json")
	loader.SetDefault("timezone", "America/New_York")
	loader.SetDefault("percent_decimals", 1)
	loader.SetDefault("update_freq_ms", 30000)
	loader.SetDefault("schedule_cache_ttl_hours", 24)
	loader.SetConfigName(DefaultConfigName)
	loader.SetConfigType("yaml")
	loader.SetEnvPrefix(EnvPrefix)
	loader.AddConfigPath(Path(""))
	loader.AddConfigPath(".")
	loader.AutomaticEnv()
	loader.WatchConfig()
	loader.OnConfigChange(loader.onConfigChange)

	return &loader
}

func (cl *Loader) Path() string {
	return cl.ConfigFileUsed()
}

func (cl *Loader) onConfigChange(in fsnotify.Event) {
	if in.Op != fsnotify.Write && in.Op != fsnotify.Rename {
		return
	}

	slog.Debug("External config reload triggered")
	config, err := cl.Read()
	if err != nil {
		slog.Error("Error reading config", slog.String("error", err.Error()))

		return
	}

	cl.changes <- config
}

// Write persists the config. On a first run, when no config file exists yet,
// a new one is created in the xdg config home.
func (cl *Loader) Write(config Config) error {
	cl.Set("scoreboard_url", config.ScoreboardURL)
	cl.Set("schedule_url", config.ScheduleURL)
	cl.Set("box_score_url", config.BoxScoreURL)
	cl.Set("timezone", config.Timezone)
	cl.Set("percent_decimals", config.PercentDecimals)
	cl.Set("update_freq_ms", config.UpdateFreqMs)
	cl.Set("schedule_cache_ttl_hours", config.ScheduleCacheTTLHours)

	if cl.ConfigFileUsed() == "" {
		if err := cl.WriteConfigAs(Path(DefaultConfigName + ".yaml")); err != nil {
			return errors.Join(err, errConfigWrite)
		}

		return nil
	}

	if err := cl.WriteConfig(); err != nil {
		return errors.Join(err, errConfigWrite)
	}

	return nil
}

func (cl *Loader) Read() (Config, error) {
	if err := cl.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return Config{}, errors.Join(err, errConfigRead)
		}
	}

	var config Config
	if err := cl.Unmarshal(&config); err != nil {
		return Config{}, errors.Join(err, errConfigRead)
	}

	return config, nil
}
