package scoring

import "math"

const (
	savingsWeight = 0.40
	ratingWeight  = 0.35
	timeWeight    = 0.25

	// used when there is no direct route to compare the hub duration against
	neutralTimeScore = 70.0

	worthItPercent = 15.0
)

// Rating maps a savings percentage to a 0-5 star rating.
func Rating(savingsPercent float64) int {
	switch {
	case savingsPercent >= 40:
		return 5
	case savingsPercent >= 30:
		return 4
	case savingsPercent >= 20:
		return 3
	case savingsPercent >= 10:
		return 2
	case savingsPercent > 0:
		return 1
	}
	return 0
}

// Candidate carries what HubScore needs from a hub route.
// DirectDuration is zero when no direct route exists for the pair.
type Candidate struct {
	SavingsPercent float64
	Duration       int
	DirectDuration int
}

// HubScore is the weighted 0-100 ranking score used for catalog hub routes.
func HubScore(c Candidate) int {
	savings := math.Min(c.SavingsPercent*2, 100)

	// rating 0 yields -25 here on purpose; it is only an input to the weighted sum
	rating := float64(Rating(c.SavingsPercent)-1) * 25

	timeScore := neutralTimeScore
	if c.DirectDuration > 0 {
		d := float64(c.DirectDuration)
		timeScore = math.Max(0, 100-((float64(c.Duration)-d)/d)*100)
	}

	score := Round(savings*savingsWeight + rating*ratingWeight + timeScore*timeWeight)
	return int(math.Max(0, math.Min(100, score)))
}

// LiveScore is the additive score used for provider and simulated itineraries,
// which have no reliable duration baseline.
func LiveScore(rating int, savingsPercent float64) int {
	return rating*20 + int(savingsPercent)
}

// Savings describes what a hub fare saves against the direct fare.
type Savings struct {
	Absolute float64 `json:"absolute"`
	Percent  float64 `json:"percent"`
	Rating   int     `json:"rating"`
	WorthIt  bool    `json:"worthIt"`
}

// CalculateSavings compares a hub fare to a direct fare. A non-positive direct
// price yields zero savings.
func CalculateSavings(directPrice, hubPrice float64) Savings {
	if directPrice <= 0 {
		return Savings{}
	}
	abs := directPrice - hubPrice
	pct := Percent(abs, directPrice)
	return Savings{
		Absolute: abs,
		Percent:  pct,
		Rating:   Rating(pct),
		WorthIt:  pct >= worthItPercent,
	}
}

// Percent returns part as a whole-number percentage of total.
func Percent(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return Round(part / total * 100)
}

// Round rounds half up, so 2.5 becomes 3 and -2.5 becomes -2.
func Round(v float64) float64 {
	return math.Floor(v + 0.5)
}
