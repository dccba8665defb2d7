package schedule_test

import (
	"testing"
	"time"

	"github.com/courtside-tui/courtside/internal/nba"
	"github.com/courtside-tui/courtside/internal/schedule"
	"github.com/stretchr/testify/require"
)

func TestLoadRejectsEmptySchedule(t *testing.T) {
	index := schedule.NewIndex()
	require.ErrorIs(t, index.Load(nba.LeagueSchedule{}), schedule.ErrMalformedSchedule)
	require.False(t, index.Loaded())
}

func TestLoadRejectsBadDateKey(t *testing.T) {
	index := schedule.NewIndex()
	err := index.Load(nba.LeagueSchedule{GameDates: []nba.GameDate{
		{GameDate: "not a date"},
	}})
	require.ErrorIs(t, err, schedule.ErrMalformedSchedule)
	require.False(t, index.Loaded())
}

func TestLookupMatchesCalendarDayOnly(t *testing.T) {
	index := schedule.NewIndex()
	// Deliberately out of order, Load sorts before Lookup binary searches.
	require.NoError(t, index.Load(nba.LeagueSchedule{GameDates: []nba.GameDate{
		{GameDate: "12/26/2025 00:00:00", Games: []nba.Game{{GameID: "0022500003"}}},
		{GameDate: "12/23/2025 00:00:00", Games: []nba.Game{{GameID: "0022500000"}}},
		{GameDate: "12/25/2025 00:00:00", Games: []nba.Game{{GameID: "0022500001"}, {GameID: "0022500002"}}},
	}}))
	require.True(t, index.Loaded())

	pacific, errLoc := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, errLoc)

	// Time-of-day and zone must not affect the match.
	games, found := index.Lookup(time.Date(2025, 12, 25, 23, 30, 0, 0, pacific))
	require.True(t, found)
	require.Len(t, games, 2)
	require.Equal(t, "0022500001", games[0].GameID)

	games, found = index.Lookup(time.Date(2025, 12, 26, 0, 0, 0, 0, time.UTC))
	require.True(t, found)
	require.Len(t, games, 1)

	_, found = index.Lookup(time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC))
	require.False(t, found)
}

func TestLookupIsRepeatable(t *testing.T) {
	index := schedule.NewIndex()
	require.NoError(t, index.Load(nba.LeagueSchedule{GameDates: []nba.GameDate{
		{GameDate: "01/15/2026 00:00:00", Games: []nba.Game{{GameID: "0022500500"}}},
	}}))

	for range 3 {
		games, found := index.Lookup(time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC))
		require.True(t, found)
		require.Len(t, games, 1)
	}
}
