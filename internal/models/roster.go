package models

// Roster maps player names to their squad positions. Players absent from
// the roster have no position and can never be drafted into the XI.
type Roster map[string]Position

// PositionOf returns the player's position, or the empty position when
// the player is not on the roster.
func (r Roster) PositionOf(player string) Position {
	return r[player]
}
