package view_test

import (
	"testing"

	"github.com/courtside-tui/courtside/internal/view"
	"github.com/stretchr/testify/require"
)

func TestSessionSelectResetsState(t *testing.T) {
	session := view.NewSession()
	session.Select("0022500001")
	session.ToggleInactive(view.AwaySide)
	session.SwitchTab(view.HomeSide)

	session.Select("0022500002")
	require.Equal(t, "0022500002", session.GameID())
	require.False(t, session.InactiveOpen(view.AwaySide))
	require.False(t, session.InactiveOpen(view.HomeSide))
	require.Equal(t, view.AwaySide, session.ActiveTab())
}

func TestSessionToggleInactivePerSide(t *testing.T) {
	session := view.NewSession()
	session.Select("0022500001")

	require.True(t, session.ToggleInactive(view.AwaySide))
	require.True(t, session.InactiveOpen(view.AwaySide))
	require.False(t, session.InactiveOpen(view.HomeSide))

	// A double toggle restores the original state.
	require.False(t, session.ToggleInactive(view.AwaySide))
	require.False(t, session.InactiveOpen(view.AwaySide))
}

func TestSessionTabExclusivity(t *testing.T) {
	session := view.NewSession()
	session.Select("0022500001")
	require.Equal(t, view.AwaySide, session.ActiveTab())

	session.SwitchTab(view.HomeSide)
	require.Equal(t, view.HomeSide, session.ActiveTab())

	session.SwitchTab(view.AwaySide)
	require.Equal(t, view.AwaySide, session.ActiveTab())
}
