package config

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path"
	"time"

	"github.com/adrg/xdg"
)

var (
	errConfigWrite = errors.New("failed to write config file")
	errConfigRead  = errors.New("failed to read config file")
	errLoggerInit  = errors.New("failed to initialize logger")
)

const (
	ConfigDirName      = "courtside"
	DefaultConfigName  = "courtside"
	DefaultLogName     = "courtside.log"
	CacheDirName       = "cache"
	EnvPrefix          = "courtside"
	DefaultHTTPTimeout = 15 * time.Second
)

type Config struct {
	ScoreboardURL string `mapstructure:"scoreboard_url"`
	ScheduleURL   string `mapstructure:"schedule_url"`
	// BoxScoreURL is a printf-style template, the verb receives the game id.
	BoxScoreURL string `mapstructure:"box_score_url"`
	// Timezone controls "today" determination and displayed tip-off times.
	Timezone string `mapstructure:"timezone"`
	// PercentDecimals selects between the one and two decimal place shooting
	// percentage display variants.
	PercentDecimals int `mapstructure:"percent_decimals"`
	// UpdateFreqMs is how often the live scoreboard refreshes while viewing today.
	UpdateFreqMs          int `mapstructure:"update_freq_ms"`
	ScheduleCacheTTLHours int `mapstructure:"schedule_cache_ttl_hours"`
}

// Location resolves the configured timezone, falling back to the system local
// zone when the name doesnt resolve.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		slog.Warn("Invalid timezone, using local", slog.String("timezone", c.Timezone),
			slog.String("error", err.Error()))

		return time.Local
	}

	return loc
}

func (c Config) UpdateFreq() time.Duration {
	return time.Duration(c.UpdateFreqMs) * time.Millisecond
}

func (c Config) ScheduleCacheTTL() time.Duration {
	return time.Duration(c.ScheduleCacheTTLHours) * time.Hour
}

// Path generates a path pointing to the filename under this apps defined $XDG_CONFIG_HOME.
func Path(name string) string {
	fullPath, errFullPath := xdg.ConfigFile(path.Join(ConfigDirName, name))
	if errFullPath != nil {
		panic(errFullPath)
	}

	return fullPath
}

func PathCache(name string) string {
	cacheDir, found := os.LookupEnv("CACHE_DIR")
	if found && cacheDir != "" {
		return cacheDir
	}

	return path.Join(xdg.CacheHome, ConfigDirName, name)
}

// LoggerInit sets up the slog global handler to use a log file as we cant print to the console.
func LoggerInit(logPath string, level slog.Level) (io.Closer, error) {
	logFile, errLogFile := os.Create(path.Join(xdg.ConfigHome, ConfigDirName, logPath))
	if errLogFile != nil {
		return nil, errors.Join(errLogFile, errLoggerInit)
	}

	logger := slog.New(slog.NewTextHandler(logFile, &slog.HandlerOptions{
		AddSource: false,
		Level:     level,
	}))

	slog.SetDefault(logger)

	return logFile, nil
}
