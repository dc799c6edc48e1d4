package blackjack

// Contribution is one seat's stake in the round's pot.
type Contribution struct {
	Name   string
	Amount int
}

// Pot collects the round's bets in seat order. It is owned by the engine and
// cleared at every round reset.
type Pot struct {
	contributions []Contribution
}

// Add records a bet.
func (p *Pot) Add(name string, amount int) {
	p.contributions = append(p.contributions, Contribution{Name: name, Amount: amount})
}

// Total returns the sum of all contributions.
func (p *Pot) Total() int {
	total := 0
	for _, c := range p.contributions {
		total += c.Amount
	}
	return total
}

// Contribution returns the total staked by the named seat this round.
func (p *Pot) Contribution(name string) int {
	total := 0
	for _, c := range p.contributions {
		if c.Name == name {
			total += c.Amount
		}
	}
	return total
}

// Contributions returns the ordered stakes.
func (p *Pot) Contributions() []Contribution {
	return p.contributions
}

// Reset clears the pot for a new round.
func (p *Pot) Reset() {
	p.contributions = p.contributions[:0]
}
