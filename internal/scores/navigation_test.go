package scores_test

import (
	"testing"
	"time"

	"github.com/courtside-tui/courtside/internal/scores"
	"github.com/stretchr/testify/require"
)

func TestNavigatorTruncatesToMidnight(t *testing.T) {
	eastern, errLoc := time.LoadLocation("America/New_York")
	require.NoError(t, errLoc)

	nav := scores.NewNavigator(time.Date(2025, 12, 25, 19, 45, 12, 0, eastern))
	require.Equal(t, time.Date(2025, 12, 25, 0, 0, 0, 0, eastern), nav.Current())
}

func TestNavigatorForward(t *testing.T) {
	nav := scores.NewNavigator(time.Date(2026, 1, 31, 10, 0, 0, 0, time.UTC))
	require.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), nav.Forward(1))
	require.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), nav.Current())
}

func TestNavigatorForwardAcrossYearEnd(t *testing.T) {
	nav := scores.NewNavigator(time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC))
	require.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), nav.Forward(1))
}

func TestNavigatorBackward(t *testing.T) {
	nav := scores.NewNavigator(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	require.Equal(t, time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC), nav.Forward(-1))
	require.Equal(t, time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC), nav.Forward(-1))
}
