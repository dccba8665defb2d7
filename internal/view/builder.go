// Package view transforms raw feed records into presentation-ready view
// models with derived fields (winner flags, formatted times, roster
// partitions). View models are rebuilt whole on every navigation or
// selection, never patched.
package view

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/courtside-tui/courtside/internal/nba"
	"github.com/courtside-tui/courtside/internal/scores"
)

// scorePlaceholder is rendered for games without a score yet. It is
// deliberately not "0" so an unplayed game cant be mistaken for a shutout.
const scorePlaceholder = "–"

var ErrIncompleteGameData = errors.New("incomplete game data")

// Side identifies one of the two teams of a game.
type Side int

const (
	AwaySide Side = iota
	HomeSide
)

type GameSummary struct {
	GameID      string
	AwayTricode string
	HomeTricode string
	AwayScore   string
	HomeScore   string
	StatusText  string
	AwayWinner  bool
	HomeWinner  bool
}

type Scoreboard struct {
	DisplayDate string
	Games       []GameSummary
}

type PlayerRow struct {
	Name      string
	Starter   bool
	Points    int
	Rebounds  int
	Assists   int
	Steals    int
	Blocks    int
	Turnovers int
}

type TeamBox struct {
	Tricode       string
	Winner        bool
	Points        string
	FieldGoalPct  string
	ThreePointPct string
	FreeThrowPct  string
	Active        []PlayerRow
	Inactive      []PlayerRow
}

type GameDetail struct {
	GameID string
	Title  string
	TipOff string
	Away   TeamBox
	Home   TeamBox
}

func (d GameDetail) Team(side Side) TeamBox {
	if side == HomeSide {
		return d.Home
	}

	return d.Away
}

// Builder derives view models from raw games. percentDecimals controls how
// shooting percentages are formatted; the two upstream variants disagree on
// one vs two places, so it is a display option rather than an invariant.
type Builder struct {
	percentDecimals int
	loc             *time.Location
}

func NewBuilder(percentDecimals int, loc *time.Location) Builder {
	return Builder{percentDecimals: percentDecimals, loc: loc}
}

func (b Builder) Scoreboard(day scores.Day) Scoreboard {
	board := Scoreboard{DisplayDate: day.Date.Format("Mon, Jan 2, 2006")}
	for _, game := range day.Games {
		board.Games = append(board.Games, b.Summary(game))
	}

	return board
}

// Summary computes winner flags only for FINAL games with a strict score
// difference; a tie, however unlikely, marks neither team.
func (b Builder) Summary(game nba.Game) GameSummary {
	summary := GameSummary{
		GameID:      game.GameID,
		AwayTricode: game.AwayTeam.TeamTricode,
		HomeTricode: game.HomeTeam.TeamTricode,
		AwayScore:   formatScore(game.AwayTeam.Score),
		HomeScore:   formatScore(game.HomeTeam.Score),
		StatusText:  b.statusText(game),
	}

	summary.AwayWinner, summary.HomeWinner = winners(game)

	return summary
}

// Detail builds the box score view. Partitions preserve the feeds player
// ordering; a missing statistics block or empty roster fails with
// ErrIncompleteGameData so the UI can render a fallback message.
func (b Builder) Detail(game nba.Game) (GameDetail, error) {
	awayWinner, homeWinner := winners(game)

	away, errAway := b.teamBox(game.AwayTeam, awayWinner)
	if errAway != nil {
		return GameDetail{}, errAway
	}

	home, errHome := b.teamBox(game.HomeTeam, homeWinner)
	if errHome != nil {
		return GameDetail{}, errHome
	}

	return GameDetail{
		GameID: game.GameID,
		Title:  fmt.Sprintf("%s @ %s", game.AwayTeam.TeamTricode, game.HomeTeam.TeamTricode),
		TipOff: game.GameDateTimeUTC.In(b.loc).Format("Mon 1/2/2006, 3:04 PM MST"),
		Away:   away,
		Home:   home,
	}, nil
}

func (b Builder) teamBox(team nba.Team, winner bool) (TeamBox, error) {
	if team.Statistics == nil {
		return TeamBox{}, fmt.Errorf("%w: team %s missing statistics", ErrIncompleteGameData, team.TeamTricode)
	}

	if len(team.Players) == 0 {
		return TeamBox{}, fmt.Errorf("%w: team %s missing players", ErrIncompleteGameData, team.TeamTricode)
	}

	box := TeamBox{
		Tricode:       team.TeamTricode,
		Winner:        winner,
		Points:        formatScore(team.Score),
		FieldGoalPct:  b.percent(team.Statistics.FieldGoalsPercentage),
		ThreePointPct: b.percent(team.Statistics.ThreePointersPercentage),
		FreeThrowPct:  b.percent(team.Statistics.FreeThrowsPercentage),
	}

	for _, player := range team.Players {
		row := PlayerRow{
			Name:      player.Name,
			Starter:   player.Starter == "1",
			Points:    player.Statistics.Points,
			Rebounds:  player.Statistics.ReboundsTotal,
			Assists:   player.Statistics.Assists,
			Steals:    player.Statistics.Steals,
			Blocks:    player.Statistics.Blocks,
			Turnovers: player.Statistics.Turnovers,
		}

		if player.Status == nba.PlayerStatusActive {
			box.Active = append(box.Active, row)
		} else {
			box.Inactive = append(box.Inactive, row)
		}
	}

	return box, nil
}

// statusText prefers the feeds status text ("Final", "Q3 2:41", "7:30 pm ET")
// and falls back to the local tip-off time for scheduled games without one.
func (b Builder) statusText(game nba.Game) string {
	if game.GameStatusText != "" {
		return game.GameStatusText
	}

	return game.GameDateTimeUTC.In(b.loc).Format("3:04 PM")
}

func (b Builder) percent(value float64) string {
	return strconv.FormatFloat(value, 'f', b.percentDecimals, 64)
}

func winners(game nba.Game) (bool, bool) {
	if game.GameStatus != nba.StatusFinal || game.AwayTeam.Score == nil || game.HomeTeam.Score == nil {
		return false, false
	}

	switch {
	case *game.AwayTeam.Score > *game.HomeTeam.Score:
		return true, false
	case *game.HomeTeam.Score > *game.AwayTeam.Score:
		return false, true
	default:
		return false, false
	}
}

func formatScore(score *int) string {
	if score == nil {
		return scorePlaceholder
	}

	return strconv.Itoa(*score)
}
