// Package schedule holds the cached full-season schedule and answers
// "which games are on day D" queries.
package schedule

import (
	"errors"
	"time"

	"github.com/courtside-tui/courtside/internal/nba"
	"golang.org/x/exp/slices"
)

// gameDateLayout matches the upstream date key format, a calendar date pinned
// to a fixed nominal midnight.
const gameDateLayout = "01/02/2006 15:04:05"

var ErrMalformedSchedule = errors.New("malformed schedule payload")

type Entry struct {
	Date  time.Time
	Games []nba.Game
}

// Index is populated at most once per process and immutable afterwards. It is
// owned by scores.Source, which guards the single Load call.
type Index struct {
	entries []Entry
	loaded  bool
}

func NewIndex() *Index {
	return &Index{}
}

// Load parses the date-keyed game collection. The nominal time-of-day carried
// by each date string is discarded so lookups match on calendar day only.
func (i *Index) Load(sched nba.LeagueSchedule) error {
	if len(sched.GameDates) == 0 {
		return ErrMalformedSchedule
	}

	entries := make([]Entry, 0, len(sched.GameDates))
	for _, gameDate := range sched.GameDates {
		when, errParse := time.Parse(gameDateLayout, gameDate.GameDate)
		if errParse != nil {
			return errors.Join(errParse, ErrMalformedSchedule)
		}

		year, month, day := when.Date()
		entries = append(entries, Entry{
			Date:  time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
			Games: gameDate.Games,
		})
	}

	slices.SortFunc(entries, func(a Entry, b Entry) int {
		return a.Date.Compare(b.Date)
	})

	i.entries = entries
	i.loaded = true

	return nil
}

func (i *Index) Loaded() bool {
	return i.loaded
}

// Lookup matches on year/month/day of the supplied date, whatever its
// time-of-day or zone. A date with no games is a normal outcome, not an error.
// Entries are sorted by Load, so this is a binary search over the full season.
func (i *Index) Lookup(date time.Time) ([]nba.Game, bool) {
	year, month, day := date.Date()
	key := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

	index, found := slices.BinarySearchFunc(i.entries, key, func(entry Entry, target time.Time) int {
		return entry.Date.Compare(target)
	})
	if !found {
		return nil, false
	}

	return i.entries[index].Games, true
}
