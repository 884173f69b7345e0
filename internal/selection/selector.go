// Package selection assembles a starting XI, bench and unavailable list
// from readiness scores under a position-requirement table.
package selection

import (
	"sort"

	"github.com/vtiwari/recovery-insights/internal/models"
)

// Select partitions every scored player into exactly one of starting XI,
// bench or unavailable. Slots fill by descending readiness with ties
// broken by player name, so identical inputs always produce identical
// assignments. Positions that cannot reach quota from selectable players
// fill best-effort from rest-status players and surface a shortfall; the
// assignment itself always completes.
func Select(scores []models.ReadinessScore, requirements models.PositionRequirements) *models.SquadAssignment {
	assignment := &models.SquadAssignment{
		StartingXI:  make([]models.SquadEntry, 0, requirements.Total()),
		Bench:       make([]models.SquadEntry, 0),
		Unavailable: make([]models.SquadEntry, 0),
	}

	ranked := make([]models.ReadinessScore, len(scores))
	copy(ranked, scores)
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Player < ranked[j].Player
	})

	drafted := make(map[string]bool, len(ranked))

	for _, pos := range models.PositionOrder {
		required := requirements[pos]
		if required <= 0 {
			continue
		}
		filled := 0

		// Selectable candidates first, then rest-status players as the
		// best-effort fallback. Unknown players are never drafted.
		for _, pass := range []func(models.ReadinessScore) bool{
			func(p models.ReadinessScore) bool { return p.Status.Selectable() },
			func(p models.ReadinessScore) bool { return p.Status == models.ReadinessRest },
		} {
			for _, player := range ranked {
				if filled == required {
					break
				}
				if drafted[player.Player] || player.Position != pos || !pass(player) {
					continue
				}
				drafted[player.Player] = true
				assignment.StartingXI = append(assignment.StartingXI, entry(player))
				filled++
			}
		}

		if filled < required {
			assignment.Shortfalls = append(assignment.Shortfalls, models.PositionShortfall{
				Position: pos,
				Required: required,
				Filled:   filled,
			})
		}
	}

	for _, player := range ranked {
		if drafted[player.Player] {
			continue
		}
		if player.Status.Selectable() && player.Position.Valid() {
			assignment.Bench = append(assignment.Bench, entry(player))
		} else {
			assignment.Unavailable = append(assignment.Unavailable, entry(player))
		}
	}

	assignment.Summary = summarize(ranked, assignment.StartingXI)
	return assignment
}

func entry(p models.ReadinessScore) models.SquadEntry {
	return models.SquadEntry{
		Player:     p.Player,
		Position:   p.Position,
		Score:      p.Score,
		Status:     p.Status,
		MaxMinutes: p.MaxMinutes,
	}
}

func summarize(players []models.ReadinessScore, startingXI []models.SquadEntry) models.SquadSummary {
	summary := models.SquadSummary{
		StatusCounts: make(map[models.ReadinessStatus]int),
	}
	for _, p := range players {
		summary.StatusCounts[p.Status]++
		if p.Status == models.ReadinessUnknown {
			continue
		}
		switch p.Trend {
		case models.TrendImproving:
			summary.Improving++
		case models.TrendDeclining:
			summary.Declining++
		}
	}
	if len(startingXI) > 0 {
		total := 0
		for _, e := range startingXI {
			total += e.Score
		}
		summary.XIAverage = float64(total) / float64(len(startingXI))
	}
	return summary
}
