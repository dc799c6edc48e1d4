package blackjack

import (
	rand "math/rand/v2"
)

// TurnView is the information a decision policy is allowed to see: the seat's
// own total, whether it is soft, and the highest first-dealt card among the
// other seats.
type TurnView struct {
	Value      int
	Soft       bool
	BestUpcard int
}

// Policy drives a scripted seat: whether to hit at a decision point, and how
// much to wager at the start of a round. Policies are attached to players at
// creation and dispatched through this interface rather than inferred from
// seat names.
type Policy interface {
	Name() string
	Hit(view TurnView) bool
	Wager(base, chips, streak int) int
}

// Conservative hits only on low totals and almost never raises its wager.
type Conservative struct {
	rng *rand.Rand
}

// NewConservative creates a conservative policy.
func NewConservative(rng *rand.Rand) *Conservative {
	return &Conservative{rng: rng}
}

func (c *Conservative) Name() string { return "conservative" }

func (c *Conservative) Hit(view TurnView) bool {
	return view.Value < 13
}

func (c *Conservative) Wager(base, chips, streak int) int {
	roll := c.rng.IntN(100)
	extra := 0
	if roll > 90 && chips > base {
		extra = base / 2
	}
	return clampWager(base+extra, chips, base, roll)
}

// Aggressive hits on anything short of 20 and frequently over-bets.
type Aggressive struct {
	rng *rand.Rand
}

// NewAggressive creates an aggressive policy.
func NewAggressive(rng *rand.Rand) *Aggressive {
	return &Aggressive{rng: rng}
}

func (a *Aggressive) Name() string { return "aggressive" }

func (a *Aggressive) Hit(view TurnView) bool {
	return view.Value < 20
}

func (a *Aggressive) Wager(base, chips, streak int) int {
	roll := a.rng.IntN(100)
	extra := 0
	if roll > 40 && chips > base {
		extra = base
	}
	return clampWager(base+extra, chips, base, roll)
}

// Randomized flips a coin at every decision point and bets erratically.
type Randomized struct {
	rng *rand.Rand
}

// NewRandomized creates a coin-flip policy.
func NewRandomized(rng *rand.Rand) *Randomized {
	return &Randomized{rng: rng}
}

func (r *Randomized) Name() string { return "randomized" }

func (r *Randomized) Hit(view TurnView) bool {
	return r.rng.IntN(2) == 1
}

func (r *Randomized) Wager(base, chips, streak int) int {
	roll := r.rng.IntN(100)
	extra := 0
	if roll%2 == 0 {
		extra = roll % (base + 1)
	}
	return clampWager(base+extra, chips, base, roll)
}

// ProbabilityInformed plays basic-strategy-shaped blackjack against the best
// visible upcard and presses its wager on a win streak.
type ProbabilityInformed struct {
	rng *rand.Rand
}

// NewProbabilityInformed creates a probability-informed policy.
func NewProbabilityInformed(rng *rand.Rand) *ProbabilityInformed {
	return &ProbabilityInformed{rng: rng}
}

func (p *ProbabilityInformed) Name() string { return "probability" }

func (p *ProbabilityInformed) Hit(view TurnView) bool {
	if view.Soft {
		if view.Value <= 17 {
			return true
		}
		if view.Value == 18 {
			return view.BestUpcard >= 9
		}
		return false
	}
	if view.Value <= 11 {
		return true
	}
	if view.Value >= 17 {
		return false
	}
	// Hard 12-16: stand into a weak upcard, hit into a strong one.
	return view.BestUpcard < 2 || view.BestUpcard > 6
}

func (p *ProbabilityInformed) Wager(base, chips, streak int) int {
	roll := p.rng.IntN(100)
	extra := 0
	if streak > 1 && chips > base {
		extra = base / 2
	}
	if roll > 95 && chips > base*2 {
		extra = base * 2
	}
	return clampWager(base+extra, chips, base, roll)
}

// Fallback hits below 16. Applied to any scripted seat without a recognised
// policy.
type Fallback struct{}

func (Fallback) Name() string { return "fallback" }

func (Fallback) Hit(view TurnView) bool {
	return view.Value < 16
}

func (Fallback) Wager(base, chips, streak int) int {
	if base > chips {
		return chips
	}
	return base
}

// clampWager caps a scripted wager at the seat's chips and occasionally
// drops it to the table minimum (a cold-feet halving shared by every
// personality).
func clampWager(bet, chips, base, roll int) int {
	if bet > chips {
		bet = chips
	}
	if roll < 6 && chips >= 1 {
		bet = base / 2
		if bet < 1 {
			bet = 1
		}
		if bet > chips {
			bet = chips
		}
	}
	return bet
}
