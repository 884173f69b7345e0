package synthetic

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/vtiwari/recovery-insights/internal/models"
)

// masterSeed drives player pick and tier allocation so every run of the
// generator produces the same squad split.
const masterSeed = 1

// tier buckets the squad into target readiness groups. Allocation aims
// for enough ready plus bench players to field a full matchday squad.
type tier int

const (
	tierReady tier = iota
	tierLimited
	tierBench
	tierRest
)

// Generate produces the demonstration dataset ending today.
func Generate(numPlayers, days int) []models.PlayerSeries {
	now := time.Now().UTC()
	end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return GenerateTo(end, numPlayers, days)
}

// GenerateTo produces one record per player per day for the `days` days
// ending on `end`. Per-player patterns are seeded from the player name,
// so output is fully reproducible for a given end date.
func GenerateTo(end time.Time, numPlayers, days int) []models.PlayerSeries {
	squad := DefaultSquad()
	if numPlayers <= 0 || numPlayers > len(squad) {
		numPlayers = len(squad)
	}
	if days <= 0 {
		days = 1
	}

	master := rand.New(rand.NewSource(masterSeed))
	order := master.Perm(len(squad))
	picked := make([]SquadPlayer, numPlayers)
	for i := 0; i < numPlayers; i++ {
		picked[i] = squad[order[i]]
	}

	tiers := allocateTiers(picked)

	series := make([]models.PlayerSeries, 0, numPlayers)
	for _, player := range picked {
		scores := simulate(player.Name, tiers[player.Name], days)
		records := make([]models.DailyRecord, days)
		for i := 0; i < days; i++ {
			records[i] = models.DailyRecord{
				Player: player.Name,
				Date:   end.AddDate(0, 0, -(days - 1 - i)),
				Score:  scores[i],
			}
		}
		series = append(series, models.PlayerSeries{
			Player:   player.Name,
			Position: player.Position,
			Records:  records,
		})
	}
	return series
}

// allocateTiers splits the picked players roughly 65/15/15 into ready,
// limited and bench, with the remainder resting.
func allocateTiers(picked []SquadPlayer) map[string]tier {
	n := len(picked)
	numReady := int(float64(n) * 0.65)
	numLimited := int(float64(n) * 0.15)
	numBench := int(float64(n) * 0.15)

	tiers := make(map[string]tier, n)
	for i, player := range picked {
		switch {
		case i < numReady:
			tiers[player.Name] = tierReady
		case i < numReady+numLimited:
			tiers[player.Name] = tierLimited
		case i < numReady+numLimited+numBench:
			tiers[player.Name] = tierBench
		default:
			tiers[player.Name] = tierRest
		}
	}
	return tiers
}

// simulate builds one player's daily score sequence in chronological
// order, clamped to [-1, 1].
func simulate(name string, playerTier tier, days int) []float64 {
	seed := int64(0)
	for _, c := range []byte(name) {
		seed += int64(c)
	}
	rng := rand.New(rand.NewSource(seed))

	base, variance := profile(rng, playerTier)
	if keyPlayers[name] && playerTier == tierReady {
		base += 0.05
		variance *= 0.9
	}
	if injuryProne[name] && playerTier != tierReady {
		base -= 0.1
		variance += 0.05
	}

	scores := make([]float64, days)
	for i := range scores {
		scores[i] = rng.NormFloat64()*variance + base
	}

	pattern := make([]float64, days)
	applyMatchDays(rng, pattern, playerTier)
	applyFatigueWindows(rng, pattern, playerTier, days)
	applyRecentForm(rng, pattern, scores, name, playerTier, days)

	for i := range scores {
		scores[i] = clamp(scores[i]+pattern[i], -1, 1)
	}

	// Ready players are floored over the last five days so they present
	// as genuinely available.
	if playerTier == tierReady {
		for i := 0; i < 5 && i < days; i++ {
			floor := uniform(rng, 0.2, 0.6)
			if scores[days-1-i] < floor {
				scores[days-1-i] = floor
			}
		}
	}
	return scores
}

func profile(rng *rand.Rand, playerTier tier) (base, variance float64) {
	switch playerTier {
	case tierReady:
		return uniform(rng, 0.25, 0.55), uniform(rng, 0.08, 0.20)
	case tierLimited:
		return uniform(rng, 0.0, 0.25), uniform(rng, 0.15, 0.30)
	case tierBench:
		return uniform(rng, -0.15, 0.05), uniform(rng, 0.20, 0.35)
	}
	return uniform(rng, -0.6, -0.25), uniform(rng, 0.20, 0.40)
}

// applyMatchDays dips the score every seventh day from day five, then
// ramps back over the following three days.
func applyMatchDays(rng *rand.Rand, pattern []float64, playerTier tier) {
	for matchDay := 5; matchDay < len(pattern); matchDay += 7 {
		var impact float64
		switch playerTier {
		case tierReady:
			impact = uniform(rng, 0.08, 0.20)
		case tierLimited:
			impact = uniform(rng, 0.15, 0.35)
		case tierBench:
			impact = uniform(rng, 0.20, 0.40)
		default:
			impact = uniform(rng, 0.30, 0.55)
		}
		pattern[matchDay] -= impact

		var speed float64
		switch playerTier {
		case tierReady:
			speed = uniform(rng, 0.08, 0.18)
		case tierLimited:
			speed = uniform(rng, 0.05, 0.15)
		case tierBench:
			speed = uniform(rng, 0.04, 0.12)
		default:
			speed = uniform(rng, 0.02, 0.10)
		}

		cumulative := 0.0
		for i := 1; i <= 3; i++ {
			if matchDay+i >= len(pattern) {
				break
			}
			cumulative += speed * uniform(rng, 0.8, 1.2)
			recovery := cumulative
			if limit := impact * 1.1; recovery > limit {
				recovery = limit
			}
			pattern[matchDay+i] += recovery
		}
	}
}

// applyFatigueWindows adds multi-day dips that ease off toward the end
// of each window. Lower tiers pick up more and harsher windows.
func applyFatigueWindows(rng *rand.Rand, pattern []float64, playerTier tier, days int) {
	var issues int
	switch playerTier {
	case tierReady:
		issues = rng.Intn(2)
	case tierLimited, tierBench:
		issues = 1 + rng.Intn(2)
	default:
		issues = 2 + rng.Intn(2)
	}

	for n := 0; n < issues; n++ {
		maxStart := days - 20
		if maxStart < 1 {
			maxStart = 1
		}
		start := rng.Intn(maxStart)
		length := 3 + rng.Intn(4)

		var severity float64
		switch playerTier {
		case tierReady:
			severity = uniform(rng, 0.15, 0.30)
		case tierLimited, tierBench:
			severity = uniform(rng, 0.25, 0.50)
		default:
			severity = uniform(rng, 0.40, 0.70)
		}

		for i := 0; i < length && start+i < days; i++ {
			recovery := float64(i) / float64(length) * 0.8
			pattern[start+i] -= severity * (1 - recovery)
		}
	}
}

// applyRecentForm shapes the closing stretch: resting and injury-prone
// players take a fresh knock, ready players get a gentle upward trend
// with a floor so their recent window looks selectable.
func applyRecentForm(rng *rand.Rand, pattern, scores []float64, name string, playerTier tier, days int) {
	if playerTier == tierRest || (injuryProne[name] && playerTier != tierReady) {
		start := days - (7 + rng.Intn(7))
		length := 4 + rng.Intn(3)
		severity := uniform(rng, 0.4, 0.8)
		for i := 0; i < length; i++ {
			if start+i < 0 || start+i >= days {
				continue
			}
			recovery := float64(i) / float64(length) * 0.3
			pattern[start+i] -= severity * (1 - recovery)
		}
	}

	if playerTier == tierReady {
		for i := 0; i < 10 && i < days; i++ {
			idx := days - 1 - i
			pattern[idx] += 0.005 * float64(i)
			if combined := scores[idx] + pattern[idx]; combined < 0.15 {
				pattern[idx] += 0.15 - combined
			}
		}
	}
}

// WriteCSV emits the series as a wide-format file with the canonical
// column set, suitable for reloading through the normalizer.
func WriteCSV(w io.Writer, series []models.PlayerSeries) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "emboss_baseline_score", "player_name"}); err != nil {
		return err
	}
	for _, s := range series {
		for _, rec := range s.Records {
			row := []string{
				rec.Date.Format("2006-01-02"),
				fmt.Sprintf("%.4f", rec.Score),
				rec.Player,
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func uniform(rng *rand.Rand, low, high float64) float64 {
	return low + rng.Float64()*(high-low)
}

func clamp(v, low, high float64) float64 {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
