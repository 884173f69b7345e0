package models

// SquadEntry is one player's slot in a squad assignment.
type SquadEntry struct {
	Player     string          `json:"player_name"`
	Position   Position        `json:"position,omitempty"`
	Score      int             `json:"score"`
	Status     ReadinessStatus `json:"status"`
	MaxMinutes int             `json:"max_minutes"`
}

// PositionShortfall records a position the selector could not fully staff
// from selectable candidates.
type PositionShortfall struct {
	Position Position `json:"position"`
	Required int      `json:"required"`
	Filled   int      `json:"filled"`
}

// SquadSummary aggregates the assignment for at-a-glance reporting.
type SquadSummary struct {
	StatusCounts map[ReadinessStatus]int `json:"status_counts"`
	XIAverage    float64                 `json:"xi_average_readiness"`
	Improving    int                     `json:"improving"`
	Declining    int                     `json:"declining"`
}

// SquadAssignment partitions every known player into exactly one of
// starting XI, bench or unavailable. Shortfalls flag positions that could
// not be filled to quota; the assignment itself always completes.
type SquadAssignment struct {
	StartingXI  []SquadEntry        `json:"starting_xi"`
	Bench       []SquadEntry        `json:"bench"`
	Unavailable []SquadEntry        `json:"unavailable"`
	Shortfalls  []PositionShortfall `json:"shortfalls,omitempty"`
	Summary     SquadSummary        `json:"summary"`
}

// HasShortfall reports whether any position missed its quota.
func (a *SquadAssignment) HasShortfall() bool { return len(a.Shortfalls) > 0 }
