package scores

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/courtside-tui/courtside/internal/cache"
	"github.com/courtside-tui/courtside/internal/nba"
	"github.com/stretchr/testify/require"
)

var errUpstream = errors.New("upstream unavailable")

type fakeFetcher struct {
	scoreboardCalls int
	scheduleCalls   int
	board           nba.Scoreboard
	boardErr        error
	sched           nba.LeagueSchedule
	schedErr        error
	game            nba.Game
	gameErr         error
}

func (f *fakeFetcher) Scoreboard(_ context.Context) (nba.Scoreboard, error) {
	f.scoreboardCalls++

	return f.board, f.boardErr
}

func (f *fakeFetcher) Schedule(_ context.Context) (nba.LeagueSchedule, error) {
	f.scheduleCalls++

	return f.sched, f.schedErr
}

func (f *fakeFetcher) BoxScore(_ context.Context, _ string) (nba.Game, error) {
	return f.game, f.gameErr
}

type memCache struct {
	data map[cache.ItemVariant][]byte
}

func newMemCache() *memCache {
	return &memCache{data: map[cache.ItemVariant][]byte{}}
}

func (m *memCache) Get(variant cache.ItemVariant) ([]byte, error) {
	body, found := m.data[variant]
	if !found {
		return nil, errors.New("cache miss")
	}

	return body, nil
}

func (m *memCache) Set(variant cache.ItemVariant, content []byte) error {
	m.data[variant] = content

	return nil
}

func newTestSource(fetcher *fakeFetcher, scheduleCache cache.Cache) *Source {
	source := NewSource(fetcher, scheduleCache)
	source.now = func() time.Time {
		return time.Date(2025, 12, 25, 19, 0, 0, 0, time.UTC)
	}

	return source
}

func TestResolveTodayUsesLiveFeed(t *testing.T) {
	fetcher := &fakeFetcher{board: nba.Scoreboard{Games: []nba.Game{{GameID: "0022500001"}}}}
	source := newTestSource(fetcher, nil)

	day := source.Resolve(context.Background(), time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC))
	require.Len(t, day.Games, 1)
	require.Equal(t, "0022500001", day.Games[0].GameID)
	require.Equal(t, 1, fetcher.scoreboardCalls)
	require.Equal(t, 0, fetcher.scheduleCalls)
}

func TestResolveTodayFailureDegradesToEmptyDay(t *testing.T) {
	fetcher := &fakeFetcher{boardErr: errUpstream}
	source := newTestSource(fetcher, nil)

	target := time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC)
	day := source.Resolve(context.Background(), target)
	require.Equal(t, target, day.Date)
	require.Empty(t, day.Games)
	require.True(t, day.Failed)
}

func TestResolveOtherDayUsesSchedule(t *testing.T) {
	fetcher := &fakeFetcher{sched: nba.LeagueSchedule{GameDates: []nba.GameDate{
		{GameDate: "12/24/2025 00:00:00", Games: []nba.Game{{GameID: "0022500100"}}},
	}}}
	source := newTestSource(fetcher, nil)

	target := time.Date(2025, 12, 24, 0, 0, 0, 0, time.UTC)
	day := source.Resolve(context.Background(), target)
	require.Len(t, day.Games, 1)
	require.Equal(t, 0, fetcher.scoreboardCalls)

	// The schedule is loaded once and reused.
	source.Resolve(context.Background(), target)
	source.Resolve(context.Background(), target.AddDate(0, 0, 5))
	require.Equal(t, 1, fetcher.scheduleCalls)
}

func TestResolveScheduleFailureDegradesToEmptyDay(t *testing.T) {
	fetcher := &fakeFetcher{schedErr: errUpstream}
	source := newTestSource(fetcher, nil)

	target := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)
	day := source.Resolve(context.Background(), target)
	require.Equal(t, target, day.Date)
	require.Empty(t, day.Games)
	require.True(t, day.Failed)
}

func TestResolveDayWithoutGames(t *testing.T) {
	fetcher := &fakeFetcher{sched: nba.LeagueSchedule{GameDates: []nba.GameDate{
		{GameDate: "12/24/2025 00:00:00", Games: []nba.Game{{GameID: "0022500100"}}},
	}}}
	source := newTestSource(fetcher, nil)

	day := source.Resolve(context.Background(), time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC))
	require.Empty(t, day.Games)

	// No games scheduled is a normal outcome, not a failure.
	require.False(t, day.Failed)
}

func TestSchedulePrimesAndReadsCache(t *testing.T) {
	scheduleCache := newMemCache()
	sched := nba.LeagueSchedule{GameDates: []nba.GameDate{
		{GameDate: "12/24/2025 00:00:00", Games: []nba.Game{{GameID: "0022500100"}}},
	}}

	first := &fakeFetcher{sched: sched}
	target := time.Date(2025, 12, 24, 0, 0, 0, 0, time.UTC)
	newTestSource(first, scheduleCache).Resolve(context.Background(), target)
	require.Equal(t, 1, first.scheduleCalls)
	require.Contains(t, scheduleCache.data, cache.ItemSchedule)

	// A fresh source with a primed cache never hits the network.
	second := &fakeFetcher{schedErr: errUpstream}
	day := newTestSource(second, scheduleCache).Resolve(context.Background(), target)
	require.Len(t, day.Games, 1)
	require.Equal(t, 0, second.scheduleCalls)
}

func TestBoxScorePassesThroughErrors(t *testing.T) {
	fetcher := &fakeFetcher{gameErr: errUpstream}
	source := newTestSource(fetcher, nil)

	_, err := source.BoxScore(context.Background(), "0022500001")
	require.ErrorIs(t, err, errUpstream)
}
