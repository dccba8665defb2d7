package ui

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/courtside-tui/courtside/internal/scores"
	"github.com/courtside-tui/courtside/internal/view"
)

// RefreshRequest is sent into the program from outside (the app refresh
// ticker) to re-resolve the live scoreboard.
type RefreshRequest struct{}

type navigateMsg struct {
	delta int
}

func navigate(delta int) tea.Cmd {
	return func() tea.Msg { return navigateMsg{delta: delta} }
}

type gameSelectedMsg struct {
	gameID string
}

func selectGame(gameID string) tea.Cmd {
	return func() tea.Msg { return gameSelectedMsg{gameID: gameID} }
}

// scoreboardMsg carries a freshly built scoreboard view model. seq lets the
// root model drop responses that a newer navigation has already superseded;
// failed means the empty board came from an upstream failure.
type scoreboardMsg struct {
	seq    int
	board  view.Scoreboard
	failed bool
}

func fetchScoreboard(source *scores.Source, builder view.Builder, date time.Time, seq int) tea.Cmd {
	return func() tea.Msg {
		day := source.Resolve(context.Background(), date)

		return scoreboardMsg{seq: seq, board: builder.Scoreboard(day), failed: day.Failed}
	}
}

type boxScoreMsg struct {
	seq    int
	detail view.GameDetail
}

type boxScoreFailedMsg struct {
	seq    int
	gameID string
}

func fetchBoxScore(source *scores.Source, builder view.Builder, gameID string, seq int) tea.Cmd {
	return func() tea.Msg {
		game, errGame := source.BoxScore(context.Background(), gameID)
		if errGame != nil {
			slog.Error("Failed to fetch box score", slog.String("game_id", gameID),
				slog.String("error", errGame.Error()))

			return boxScoreFailedMsg{seq: seq, gameID: gameID}
		}

		detail, errDetail := builder.Detail(game)
		if errDetail != nil {
			slog.Error("Failed to build box score view", slog.String("game_id", gameID),
				slog.String("error", errDetail.Error()))

			return boxScoreFailedMsg{seq: seq, gameID: gameID}
		}

		return boxScoreMsg{seq: seq, detail: detail}
	}
}

type statusMsg struct {
	Message string
	Err     bool
}

func setStatusMessage(msg string, err bool) tea.Cmd {
	return func() tea.Msg { return statusMsg{Message: msg, Err: err} }
}

type clearStatusMessageMsg struct{}

func clearErrorAfter(t time.Duration) tea.Cmd {
	return tea.Tick(t, func(_ time.Time) tea.Msg {
		return clearStatusMessageMsg{}
	})
}
