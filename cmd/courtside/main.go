package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/fang"
	"github.com/courtside-tui/courtside/internal/cache"
	"github.com/courtside-tui/courtside/internal/config"
	"github.com/courtside-tui/courtside/internal/nba"
	"github.com/courtside-tui/courtside/internal/scores"
	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	BuildVersion   = "master"
	BuildCommit    = "00000000"
	BuildDate      = time.Now().Format("2006-01-02T15:04:05Z")
	BuildGoVersion = runtime.Version()
	cfgFile        string
	rootCmd        = &cobra.Command{
		Use:   "courtside",
		Short: "NBA scoreboard TUI",
		Long:  `courtside - A terminal scoreboard and box score browser for the NBA`,
		RunE:  run,
	}

	versionCmd = &cobra.Command{
		Use:               "version",
		Short:             "Print version information",
		Long:              "Print detailed version information about courtside",
		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		Run:               version,
	}
)

var errApp = errors.New("application error")

func main() {
	configPath := config.Path(config.DefaultConfigName)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", configPath,
		"Config file path")
	rootCmd.AddCommand(versionCmd)

	if err := fang.Execute(context.Background(), rootCmd); err != nil {
		slog.Error("Exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func version(_ *cobra.Command, _ []string) {
	fmt.Printf("courtside - NBA Terminal Scoreboard\n\n") //nolint:forbidigo
	fmt.Printf("  Version: %s\n", BuildVersion)           //nolint:forbidigo
	fmt.Printf("  Commit:  %s\n", BuildCommit)            //nolint:forbidigo
	fmt.Printf("  Built:   %s\n", BuildDate)              //nolint:forbidigo
	fmt.Printf("  Runtime: %s\n\n", BuildGoVersion)       //nolint:forbidigo
}

// run is the main entry point of courtside.
func run(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// If PROFILE is set, it will be used as the output file path for the profiler.
	if len(os.Getenv("PROFILE")) > 0 {
		f, err := os.Create(os.Getenv("PROFILE"))
		if err != nil {
			return errors.Join(err, errApp)
		}

		if errStart := pprof.StartCPUProfile(f); errStart != nil {
			return errors.Join(errStart, errApp)
		}
		defer pprof.StopCPUProfile()
	}

	// Make sure our config & data home exists.
	if err := os.MkdirAll(path.Join(xdg.ConfigHome, config.ConfigDirName), 0o750); err != nil {
		return errors.Join(err, errApp)
	}

	configUpdates := make(chan config.Config)

	loader := config.NewLoader(configUpdates)
	userConfig, errConfig := loader.Read()
	if errConfig != nil {
		return errors.Join(errConfig, errApp)
	}

	// Setup file based logger. This is very useful for us as our console is taken over by the ui.
	logFile, errLogger := config.LoggerInit(config.DefaultLogName, slog.LevelDebug)
	if errLogger != nil {
		return errors.Join(errLogger, errApp)
	}

	defer func(closer io.Closer) {
		if err := closer.Close(); err != nil {
			slog.Error("Failed to close log file", slog.String("error", err.Error()))
		}
	}(logFile)

	slog.Info("Starting courtside", slog.String("version", BuildVersion),
		slog.String("commit", BuildCommit), slog.String("date", BuildDate),
		slog.String("go", runtime.Version()))

	// First run, persist the defaults so users have a file to edit.
	if loader.Path() == "" {
		if errWrite := loader.Write(userConfig); errWrite != nil {
			slog.Warn("Failed to write initial config", slog.String("error", errWrite.Error()))
		}
	}

	// Setup the filesystem cache used for the season schedule payload.
	scheduleCache, errCache := cache.New(userConfig.ScheduleCacheTTL())
	if errCache != nil {
		return errors.Join(errCache, errApp)
	}

	httpClient := &http.Client{Timeout: config.DefaultHTTPTimeout}
	client := nba.NewClient(httpClient, userConfig.ScoreboardURL, userConfig.ScheduleURL, userConfig.BoxScoreURL)
	source := scores.NewSource(client, scheduleCache)

	app := NewApp(userConfig, configUpdates)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		defer cancel()

		return app.createUI(ctx, source, loader).Run()
	})
	group.Go(func() error {
		app.Start(groupCtx)

		return nil
	})

	if err := group.Wait(); err != nil {
		return errors.Join(err, errApp)
	}

	return nil
}
