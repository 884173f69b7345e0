// Package synthetic generates demonstration EMBOSS datasets with
// realistic patterns: match-day dips, fatigue windows and distinct
// per-player recovery profiles. It is the fallback collaborator used
// when no real export is available.
package synthetic

import "github.com/vtiwari/recovery-insights/internal/models"

// SquadPlayer is one roster slot in the demonstration squad.
type SquadPlayer struct {
	Name     string
	Position models.Position
}

// defaultSquad is the demonstration roster. Order is fixed so tier
// allocation stays reproducible.
var defaultSquad = []SquadPlayer{
	{"Robert Sanchez", models.PositionGK},
	{"Filip Jorgensen", models.PositionGK},
	{"Reece James", models.PositionDEF},
	{"Malo Gusto", models.PositionDEF},
	{"Wesley Fofana", models.PositionDEF},
	{"Trevoh Chalobah", models.PositionDEF},
	{"Levi Colwill", models.PositionDEF},
	{"Benoit Badiashile", models.PositionDEF},
	{"Marc Cucurella", models.PositionDEF},
	{"Josh Acheampong", models.PositionDEF},
	{"Enzo Fernandez", models.PositionMID},
	{"Moises Caicedo", models.PositionMID},
	{"Romeo Lavia", models.PositionMID},
	{"Kiernan Dewsbury-Hall", models.PositionMID},
	{"Cole Palmer", models.PositionFWD},
	{"Noni Madueke", models.PositionFWD},
	{"Pedro Neto", models.PositionFWD},
	{"Tyrique George", models.PositionFWD},
	{"Nicolas Jackson", models.PositionFWD},
	{"Christopher Nkunku", models.PositionFWD},
}

// keyPlayers carry slightly stronger, steadier profiles when fit.
var keyPlayers = map[string]bool{
	"Cole Palmer":     true,
	"Reece James":     true,
	"Enzo Fernandez":  true,
	"Moises Caicedo":  true,
	"Nicolas Jackson": true,
	"Pedro Neto":      true,
	"Levi Colwill":    true,
	"Malo Gusto":      true,
}

// injuryProne players sit lower and pick up late fatigue windows unless
// they land in the ready tier.
var injuryProne = map[string]bool{
	"Romeo Lavia":        true,
	"Wesley Fofana":      true,
	"Reece James":        true,
	"Christopher Nkunku": true,
	"Benoit Badiashile":  true,
}

// DefaultSquad returns the demonstration roster slots in order.
func DefaultSquad() []SquadPlayer {
	squad := make([]SquadPlayer, len(defaultSquad))
	copy(squad, defaultSquad)
	return squad
}

// DefaultRoster maps the demonstration squad's names to positions.
func DefaultRoster() models.Roster {
	roster := make(models.Roster, len(defaultSquad))
	for _, p := range defaultSquad {
		roster[p.Name] = p.Position
	}
	return roster
}
