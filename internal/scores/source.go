// Package scores resolves a calendar date to that days games, picking between
// the live scoreboard feed and the cached season schedule.
package scores

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/courtside-tui/courtside/internal/cache"
	"github.com/courtside-tui/courtside/internal/encoding"
	"github.com/courtside-tui/courtside/internal/nba"
	"github.com/courtside-tui/courtside/internal/schedule"
)

// Fetcher is the outbound network capability the source depends on.
type Fetcher interface {
	Scoreboard(ctx context.Context) (nba.Scoreboard, error)
	Schedule(ctx context.Context) (nba.LeagueSchedule, error)
	BoxScore(ctx context.Context, gameID string) (nba.Game, error)
}

// Day is the normalized result for a single calendar date. An empty Games
// slice means no games that day; Failed marks the empty days that came from an
// upstream failure so the UI can say so, but callers render either way, they
// never retry.
type Day struct {
	Date   time.Time
	Games  []nba.Game
	Failed bool
}

// Source owns the schedule index and decides, per target date, which feed to
// read. The live feed is freshest for "today" but covers no other date; the
// season schedule covers everything but is static and expensive, so it is
// loaded at most once and reused for the process lifetime.
type Source struct {
	fetcher       Fetcher
	index         *schedule.Index
	scheduleCache cache.Cache
	now           func() time.Time
	mu            sync.Mutex
}

func NewSource(fetcher Fetcher, scheduleCache cache.Cache) *Source {
	return &Source{
		fetcher:       fetcher,
		index:         schedule.NewIndex(),
		scheduleCache: scheduleCache,
		now:           time.Now,
	}
}

// Resolve never returns an error. Fetch failures degrade to an empty day so
// the navigation controls stay usable; the users next action is the retry.
func (s *Source) Resolve(ctx context.Context, target time.Time) Day {
	if sameDay(target, s.now().In(target.Location())) {
		return s.resolveLive(ctx, target)
	}

	return s.resolveScheduled(ctx, target)
}

// BoxScore passes through to the fetcher. Unlike Resolve the error surfaces,
// the detail region has its own fallback rendering.
func (s *Source) BoxScore(ctx context.Context, gameID string) (nba.Game, error) {
	return s.fetcher.BoxScore(ctx, gameID)
}

func (s *Source) resolveLive(ctx context.Context, target time.Time) Day {
	board, errBoard := s.fetcher.Scoreboard(ctx)
	if errBoard != nil {
		slog.Error("Failed to fetch live scoreboard", slog.String("error", errBoard.Error()),
			slog.String("date", target.Format(time.DateOnly)))

		return Day{Date: target, Failed: true}
	}

	return Day{Date: target, Games: board.Games}
}

func (s *Source) resolveScheduled(ctx context.Context, target time.Time) Day {
	if err := s.ensureIndex(ctx); err != nil {
		slog.Error("Failed to load season schedule", slog.String("error", err.Error()),
			slog.String("date", target.Format(time.DateOnly)))

		return Day{Date: target, Failed: true}
	}

	games, found := s.index.Lookup(target)
	if !found {
		return Day{Date: target}
	}

	return Day{Date: target, Games: games}
}

// ensureIndex populates the schedule index on first use. The mutex keeps rapid
// navigation from racing two loads; later callers find the index loaded and
// return immediately.
func (s *Source) ensureIndex(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.index.Loaded() {
		return nil
	}

	sched, errSched := s.seasonSchedule(ctx)
	if errSched != nil {
		return errSched
	}

	return s.index.Load(sched)
}

// seasonSchedule loads the schedule payload from the filesystem cache when
// fresh, falling back to the network and re-priming the cache.
func (s *Source) seasonSchedule(ctx context.Context) (nba.LeagueSchedule, error) {
	if s.scheduleCache != nil {
		if body, errGet := s.scheduleCache.Get(cache.ItemSchedule); errGet == nil {
			cached, errDecode := encoding.UnmarshalJSON[nba.ScheduleResponse](bytes.NewReader(body))
			if errDecode == nil {
				return cached.LeagueSchedule, nil
			}

			slog.Warn("Discarding undecodable cached schedule", slog.String("error", errDecode.Error()))
		}
	}

	sched, errFetch := s.fetcher.Schedule(ctx)
	if errFetch != nil {
		return nba.LeagueSchedule{}, errFetch
	}

	if s.scheduleCache != nil {
		var buf bytes.Buffer
		if errEncode := json.NewEncoder(&buf).Encode(nba.ScheduleResponse{LeagueSchedule: sched}); errEncode != nil {
			slog.Warn("Failed to encode schedule for caching", slog.String("error", errEncode.Error()))
		} else if errSet := s.scheduleCache.Set(cache.ItemSchedule, buf.Bytes()); errSet != nil {
			slog.Warn("Failed to cache schedule", slog.String("error", errSet.Error()))
		}
	}

	return sched, nil
}

func sameDay(a time.Time, b time.Time) bool {
	aYear, aMonth, aDay := a.Date()
	bYear, bMonth, bDay := b.Date()

	return aYear == bYear && aMonth == bMonth && aDay == bDay
}
