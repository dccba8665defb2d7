package main

import (
	"context"
	"time"

	"github.com/courtside-tui/courtside/internal/config"
	"github.com/courtside-tui/courtside/internal/scores"
	"github.com/courtside-tui/courtside/internal/ui"
)

// App is the main application container. It owns the refresh ticker that
// keeps the live scoreboard current and forwards config reloads to the UI.
type App struct {
	ui            *ui.UI
	config        config.Config
	configUpdates chan config.Config
}

// NewApp returns a new application instance. To actually start the app you must call
// Start().
func NewApp(conf config.Config, configUpdates chan config.Config) *App {
	return &App{
		config:        conf,
		configUpdates: configUpdates,
	}
}

// Start runs the main event processing loop until ctx is cancelled. The
// refresh interval can be controlled by the `update_freq_ms` config
// parameter, defaulting to 30000ms.
func (app *App) Start(ctx context.Context) {
	ticker := time.NewTicker(app.config.UpdateFreq())
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if app.ui != nil {
				app.ui.Send(ui.RefreshRequest{})
			}
		case conf := <-app.configUpdates:
			app.config = conf
			ticker.Reset(conf.UpdateFreq())
			if app.ui != nil {
				app.ui.Send(conf)
			}
		case <-ctx.Done():
			return
		}
	}
}

func (app *App) createUI(ctx context.Context, source *scores.Source, loader *config.Loader) *ui.UI {
	if app.ui == nil {
		app.ui = ui.New(ctx, app.config, source, loader, BuildVersion, BuildDate, BuildCommit)
	}

	return app.ui
}
