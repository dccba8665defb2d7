package view

// Session tracks which game detail is open plus the toggle state of the
// secondary detail UI: the per-team inactive-player panels and the active
// team tab. Selecting a new game resets everything to defaults.
type Session struct {
	gameID       string
	inactiveOpen [2]bool
	activeTab    Side
}

func NewSession() *Session {
	return &Session{}
}

// Select replaces any existing selection. Panels close and the away tab
// becomes active again, matching a freshly opened detail view.
func (s *Session) Select(gameID string) {
	s.gameID = gameID
	s.inactiveOpen = [2]bool{}
	s.activeTab = AwaySide
}

func (s *Session) GameID() string {
	return s.gameID
}

// ToggleInactive flips the inactive-player panel for one side only and
// returns the new open state.
func (s *Session) ToggleInactive(side Side) bool {
	s.inactiveOpen[side] = !s.inactiveOpen[side]

	return s.inactiveOpen[side]
}

func (s *Session) InactiveOpen(side Side) bool {
	return s.inactiveOpen[side]
}

// SwitchTab makes the given side the single active tab.
func (s *Session) SwitchTab(side Side) {
	s.activeTab = side
}

func (s *Session) ActiveTab() Side {
	return s.activeTab
}
