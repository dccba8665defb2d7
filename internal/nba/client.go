package nba

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/courtside-tui/courtside/internal/encoding"
)

var (
	ErrFetchScoreboard = errors.New("failed to fetch daily scoreboard")
	ErrFetchSchedule   = errors.New("failed to fetch season schedule")
	ErrFetchBoxScore   = errors.New("failed to fetch box score")
	errBadStatus       = errors.New("unexpected response status")
)

// Client reads the three public NBA CDN JSON feeds. The CDN rejects requests
// that dont look like they came from nba.com, so every request carries the
// browser-ish headers.
type Client struct {
	httpClient    *http.Client
	scoreboardURL string
	scheduleURL   string
	// boxScoreURL is a printf-style template accepting the game id.
	boxScoreURL string
}

func NewClient(httpClient *http.Client, scoreboardURL string, scheduleURL string, boxScoreURL string) *Client {
	return &Client{
		httpClient:    httpClient,
		scoreboardURL: scoreboardURL,
		scheduleURL:   scheduleURL,
		boxScoreURL:   boxScoreURL,
	}
}

// Scoreboard fetches the live "today" feed. It only ever covers the current
// real-world date.
func (c *Client) Scoreboard(ctx context.Context) (Scoreboard, error) {
	resp, errResp := fetchJSON[ScoreboardResponse](ctx, c.httpClient, c.scoreboardURL)
	if errResp != nil {
		return Scoreboard{}, errors.Join(errResp, ErrFetchScoreboard)
	}

	return resp.Scoreboard, nil
}

// Schedule fetches the static full-season schedule. This payload is large and
// changes rarely, callers are expected to cache it.
func (c *Client) Schedule(ctx context.Context) (LeagueSchedule, error) {
	resp, errResp := fetchJSON[ScheduleResponse](ctx, c.httpClient, c.scheduleURL)
	if errResp != nil {
		return LeagueSchedule{}, errors.Join(errResp, ErrFetchSchedule)
	}

	return resp.LeagueSchedule, nil
}

// BoxScore fetches the per-player detail feed for a single game.
func (c *Client) BoxScore(ctx context.Context, gameID string) (Game, error) {
	resp, errResp := fetchJSON[BoxScoreResponse](ctx, c.httpClient, fmt.Sprintf(c.boxScoreURL, gameID))
	if errResp != nil {
		return Game{}, errors.Join(errResp, ErrFetchBoxScore)
	}

	return resp.Game, nil
}

func fetchJSON[T any](ctx context.Context, client *http.Client, url string) (T, error) {
	var value T

	req, errReq := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if errReq != nil {
		return value, errReq
	}

	req.Header.Add("Accept", "application/json")
	req.Header.Add("Referer", "https://www.nba.com/")
	req.Header.Add("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36")

	resp, errResp := client.Do(req)
	if errResp != nil {
		return value, errResp
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			slog.Error("Failed to close response body", slog.String("error", err.Error()))
		}
	}()

	if resp.StatusCode != http.StatusOK {
		return value, fmt.Errorf("%w: %d", errBadStatus, resp.StatusCode)
	}

	decoded, errDecode := encoding.UnmarshalJSON[T](resp.Body)
	if errDecode != nil {
		return value, errDecode
	}

	return decoded, nil
}
