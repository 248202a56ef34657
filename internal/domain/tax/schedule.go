package tax

import "math"

// Tier is one segment of a piecewise-linear schedule covering amounts in [From, UpTo).
type Tier struct {
	From float64
	UpTo float64
	Base float64
	Rate float64
}

// Schedule is an ordered list of tiers with ascending bounds.
type Schedule []Tier

// At evaluates the tier that contains amount as Base + Rate*(amount-From).
// Amounts at or beyond the last bound yield 0.
func (s Schedule) At(amount float64) float64 {
	for _, tier := range s {
		if amount < tier.UpTo {
			return tier.Base + tier.Rate*(amount-tier.From)
		}
	}
	return 0
}

// Progressive applies each tier's rate to the slice of amount that falls inside the tier.
// The first tier is not floored, so a negative amount yields a negative result.
func (s Schedule) Progressive(amount float64) float64 {
	var total float64
	for i, tier := range s {
		width := math.Min(amount, tier.UpTo) - tier.From
		if i > 0 && width < 0 {
			width = 0
		}
		total += width * tier.Rate
	}
	return total
}

// Bounds returns the interior breakpoints of the schedule.
func (s Schedule) Bounds() []float64 {
	bounds := make([]float64, 0, len(s))
	for _, tier := range s {
		if math.IsInf(tier.UpTo, 1) {
			continue
		}
		bounds = append(bounds, tier.UpTo)
	}
	return bounds
}
