package nba

import "time"

// Game status codes used across all of the NBA live data feeds.
const (
	StatusScheduled = 1
	StatusLive      = 2
	StatusFinal     = 3
)

// PlayerStatusActive is the roster status the feeds report for players who are
// dressed for the game. Anything else (INACTIVE, INJURY, ...) counts as inactive.
const PlayerStatusActive = "ACTIVE"

type ScoreboardResponse struct {
	Scoreboard Scoreboard `json:"scoreboard"`
}

// Scoreboard holds the games for a single day, as served by the live feed.
type Scoreboard struct {
	GameDate string `json:"gameDate"`
	Games    []Game `json:"games"`
}

type ScheduleResponse struct {
	LeagueSchedule LeagueSchedule `json:"leagueSchedule"`
}

// LeagueSchedule is the full season schedule, one entry per calendar day.
type LeagueSchedule struct {
	SeasonYear string     `json:"seasonYear"`
	GameDates  []GameDate `json:"gameDates"`
}

// GameDate keys a days worth of games by its date string, which the upstream
// encodes as `MM/DD/YYYY 00:00:00`.
type GameDate struct {
	GameDate string `json:"gameDate"`
	Games    []Game `json:"games"`
}

type BoxScoreResponse struct {
	Game Game `json:"game"`
}

// Game is the shared game shape of the scoreboard, schedule and box score
// feeds. Team rosters are only populated in box score payloads.
type Game struct {
	GameID          string    `json:"gameId"`
	GameStatus      int       `json:"gameStatus"`
	GameStatusText  string    `json:"gameStatusText"`
	GameDateTimeUTC time.Time `json:"gameDateTimeUTC"`
	HomeTeam        Team      `json:"homeTeam"`
	AwayTeam        Team      `json:"awayTeam"`
}

// Team score is a pointer so that an absent score (game not played yet) can be
// told apart from an actual zero.
type Team struct {
	TeamTricode string          `json:"teamTricode"`
	Score       *int            `json:"score"`
	Statistics  *TeamStatistics `json:"statistics,omitempty"`
	Players     []Player        `json:"players,omitempty"`
}

type TeamStatistics struct {
	FieldGoalsPercentage    float64 `json:"fieldGoalsPercentage"`
	ThreePointersPercentage float64 `json:"threePointersPercentage"`
	FreeThrowsPercentage    float64 `json:"freeThrowsPercentage"`
}

// Player as found in box score team rosters. Starter is the feeds
// boolean-like string flag, "1" for members of the starting lineup.
type Player struct {
	Name       string           `json:"name"`
	Status     string           `json:"status"`
	Starter    string           `json:"starter"`
	Statistics PlayerStatistics `json:"statistics"`
}

type PlayerStatistics struct {
	Points        int `json:"points"`
	ReboundsTotal int `json:"reboundsTotal"`
	Assists       int `json:"assists"`
	Steals        int `json:"steals"`
	Blocks        int `json:"blocks"`
	Turnovers     int `json:"turnovers"`
}
