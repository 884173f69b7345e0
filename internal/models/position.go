package models

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Position is a squad position slot.
type Position string

const (
	PositionGK  Position = "GK"
	PositionDEF Position = "DEF"
	PositionMID Position = "MID"
	PositionFWD Position = "FWD"
)

// PositionOrder is the display and fill order for squad output.
var PositionOrder = []Position{PositionGK, PositionDEF, PositionMID, PositionFWD}

func (p Position) Valid() bool {
	switch p {
	case PositionGK, PositionDEF, PositionMID, PositionFWD:
		return true
	}
	return false
}

// Rank returns the position's slot order, with unknown positions last.
func (p Position) Rank() int {
	for i, pos := range PositionOrder {
		if p == pos {
			return i
		}
	}
	return len(PositionOrder)
}

func ParsePosition(s string) (Position, error) {
	p := Position(strings.ToUpper(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("unknown position: %q", s)
	}
	return p, nil
}

// PositionRequirements maps each position to its required starter count.
type PositionRequirements map[Position]int

// DefaultRequirements returns the standard 1-4-4-2 formation.
func DefaultRequirements() PositionRequirements {
	return PositionRequirements{
		PositionGK:  1,
		PositionDEF: 4,
		PositionMID: 4,
		PositionFWD: 2,
	}
}

// Total returns the number of starters the table demands.
func (r PositionRequirements) Total() int {
	total := 0
	for _, count := range r {
		total += count
	}
	return total
}

func (r PositionRequirements) Validate() error {
	if len(r) == 0 {
		return fmt.Errorf("position requirements are empty")
	}
	for pos, count := range r {
		if !pos.Valid() {
			return fmt.Errorf("unknown position: %q", pos)
		}
		if count < 0 {
			return fmt.Errorf("negative count for %s: %d", pos, count)
		}
	}
	return nil
}

// String renders the table in formation syntax, e.g. "GK:1,DEF:4,MID:4,FWD:2".
// Output is ordered so identical tables always render identically.
func (r PositionRequirements) String() string {
	keys := make([]Position, 0, len(r))
	for pos := range r {
		keys = append(keys, pos)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Rank() < keys[j].Rank() })
	parts := make([]string, 0, len(keys))
	for _, pos := range keys {
		parts = append(parts, fmt.Sprintf("%s:%d", pos, r[pos]))
	}
	return strings.Join(parts, ",")
}

// ParseRequirements parses formation syntax like "GK:1,DEF:4,MID:4,FWD:2".
func ParseRequirements(s string) (PositionRequirements, error) {
	reqs := make(PositionRequirements)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		pieces := strings.SplitN(part, ":", 2)
		if len(pieces) != 2 {
			return nil, fmt.Errorf("invalid formation entry: %q", part)
		}
		pos, err := ParsePosition(pieces[0])
		if err != nil {
			return nil, err
		}
		count, err := strconv.Atoi(strings.TrimSpace(pieces[1]))
		if err != nil {
			return nil, fmt.Errorf("invalid count in %q: %w", part, err)
		}
		reqs[pos] = count
	}
	if err := reqs.Validate(); err != nil {
		return nil, err
	}
	return reqs, nil
}
