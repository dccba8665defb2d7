package view_test

import (
	"testing"
	"time"

	"github.com/courtside-tui/courtside/internal/nba"
	"github.com/courtside-tui/courtside/internal/scores"
	"github.com/courtside-tui/courtside/internal/view"
	"github.com/stretchr/testify/require"
)

func intPtr(value int) *int {
	return &value
}

func eastern(t *testing.T) *time.Location {
	t.Helper()

	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	return loc
}

func TestSummaryWinnerFlags(t *testing.T) {
	builder := view.NewBuilder(1, time.UTC)

	tests := []struct {
		name       string
		status     int
		awayScore  *int
		homeScore  *int
		awayWinner bool
		homeWinner bool
	}{
		{"final away win", nba.StatusFinal, intPtr(112), intPtr(104), true, false},
		{"final home win", nba.StatusFinal, intPtr(98), intPtr(101), false, true},
		{"final tie marks neither", nba.StatusFinal, intPtr(100), intPtr(100), false, false},
		{"live game marks neither", nba.StatusLive, intPtr(80), intPtr(60), false, false},
		{"final missing score marks neither", nba.StatusFinal, intPtr(112), nil, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := builder.Summary(nba.Game{
				GameStatus: tt.status,
				AwayTeam:   nba.Team{TeamTricode: "BOS", Score: tt.awayScore},
				HomeTeam:   nba.Team{TeamTricode: "NYK", Score: tt.homeScore},
			})
			require.Equal(t, tt.awayWinner, summary.AwayWinner)
			require.Equal(t, tt.homeWinner, summary.HomeWinner)
		})
	}
}

func TestSummaryScorePlaceholder(t *testing.T) {
	builder := view.NewBuilder(1, time.UTC)

	summary := builder.Summary(nba.Game{
		GameStatus: nba.StatusScheduled,
		AwayTeam:   nba.Team{TeamTricode: "LAL"},
		HomeTeam:   nba.Team{TeamTricode: "GSW", Score: intPtr(0)},
	})

	// A missing score is not a shutout.
	require.Equal(t, "–", summary.AwayScore)
	require.Equal(t, "0", summary.HomeScore)
}

func TestSummaryStatusTextFallback(t *testing.T) {
	builder := view.NewBuilder(1, eastern(t))

	withText := builder.Summary(nba.Game{GameStatusText: "Q3 2:41"})
	require.Equal(t, "Q3 2:41", withText.StatusText)

	withoutText := builder.Summary(nba.Game{
		GameDateTimeUTC: time.Date(2025, 12, 26, 0, 30, 0, 0, time.UTC),
	})
	require.Equal(t, "7:30 PM", withoutText.StatusText)
}

func TestScoreboardDisplayDate(t *testing.T) {
	builder := view.NewBuilder(1, time.UTC)

	board := builder.Scoreboard(scores.Day{Date: time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC)})
	require.Equal(t, "Thu, Dec 25, 2025", board.DisplayDate)
	require.Empty(t, board.Games)
}

func boxScoreGame() nba.Game {
	stats := &nba.TeamStatistics{
		FieldGoalsPercentage:    45.678,
		ThreePointersPercentage: 38.1,
		FreeThrowsPercentage:    81.25,
	}

	return nba.Game{
		GameID:          "0022500001",
		GameStatus:      nba.StatusFinal,
		GameDateTimeUTC: time.Date(2025, 12, 26, 0, 30, 0, 0, time.UTC),
		AwayTeam: nba.Team{
			TeamTricode: "BOS",
			Score:       intPtr(112),
			Statistics:  stats,
			Players: []nba.Player{
				{Name: "J. Brown", Status: nba.PlayerStatusActive, Starter: "1", Statistics: nba.PlayerStatistics{Points: 28}},
				{Name: "P. Pritchard", Status: nba.PlayerStatusActive, Statistics: nba.PlayerStatistics{Points: 11}},
				{Name: "J. Tatum", Status: "INACTIVE", Statistics: nba.PlayerStatistics{}},
			},
		},
		HomeTeam: nba.Team{
			TeamTricode: "NYK",
			Score:       intPtr(104),
			Statistics:  stats,
			Players: []nba.Player{
				{Name: "J. Brunson", Status: nba.PlayerStatusActive, Starter: "1", Statistics: nba.PlayerStatistics{Points: 31}},
			},
		},
	}
}

func TestDetailRosterPartition(t *testing.T) {
	builder := view.NewBuilder(1, eastern(t))

	detail, err := builder.Detail(boxScoreGame())
	require.NoError(t, err)

	require.Equal(t, "BOS @ NYK", detail.Title)
	require.Equal(t, "Thu 12/25/2025, 7:30 PM EST", detail.TipOff)

	require.True(t, detail.Away.Winner)
	require.False(t, detail.Home.Winner)
	require.Equal(t, "112", detail.Away.Points)

	// Partition is complete and preserves the feed ordering.
	require.Len(t, detail.Away.Active, 2)
	require.Len(t, detail.Away.Inactive, 1)
	require.Equal(t, "J. Brown", detail.Away.Active[0].Name)
	require.True(t, detail.Away.Active[0].Starter)
	require.False(t, detail.Away.Active[1].Starter)
	require.Equal(t, "J. Tatum", detail.Away.Inactive[0].Name)

	require.Equal(t, detail.Home, detail.Team(view.HomeSide))
	require.Equal(t, detail.Away, detail.Team(view.AwaySide))
}

func TestDetailPercentDecimals(t *testing.T) {
	onePlace, err := view.NewBuilder(1, time.UTC).Detail(boxScoreGame())
	require.NoError(t, err)
	require.Equal(t, "45.7", onePlace.Away.FieldGoalPct)

	twoPlace, err := view.NewBuilder(2, time.UTC).Detail(boxScoreGame())
	require.NoError(t, err)
	require.Equal(t, "45.68", twoPlace.Away.FieldGoalPct)
	require.Equal(t, "81.25", twoPlace.Away.FreeThrowPct)
}

func TestDetailIncompleteData(t *testing.T) {
	builder := view.NewBuilder(1, time.UTC)

	noStats := boxScoreGame()
	noStats.AwayTeam.Statistics = nil
	_, err := builder.Detail(noStats)
	require.ErrorIs(t, err, view.ErrIncompleteGameData)

	noPlayers := boxScoreGame()
	noPlayers.HomeTeam.Players = nil
	_, err = builder.Detail(noPlayers)
	require.ErrorIs(t, err, view.ErrIncompleteGameData)
}
