package blackjack

// Status is a participant's per-round state. Stood and Busted are both
// terminal for the round; Reset returns the seat to Active.
type Status int

const (
	Active Status = iota
	Stood
	Busted
)

// String returns the string representation of a status
func (s Status) String() string {
	switch s {
	case Active:
		return "PLAY"
	case Stood:
		return "STOOD"
	case Busted:
		return "BUST"
	default:
		return "?"
	}
}

// Player represents one seat at the table. Chips are mutated only by bet
// collection and payouts; BetHistory is append-only for the session.
type Player struct {
	Name       string
	Human      bool
	Chips      int
	Hand       Hand
	Status     Status
	LastBet    int
	BetHistory []int
	Policy     Policy // nil for the human seat
}

// NewPlayer creates a seated player. Scripted seats carry the policy that
// drives their hit/stand and wager decisions; the human seat passes nil.
func NewPlayer(name string, human bool, chips int, policy Policy) *Player {
	return &Player{
		Name:   name,
		Human:  human,
		Chips:  chips,
		Policy: policy,
	}
}

// ResetForRound clears the hand and returns the seat to Active.
func (p *Player) ResetForRound() {
	p.Hand.Clear()
	p.Status = Active
}

// Stand marks the seat as voluntarily done for the round.
func (p *Player) Stand() {
	p.Status = Stood
}

// Bust marks the seat as over 21 and out of the round.
func (p *Player) Bust() {
	p.Status = Busted
}

// CanAct returns true if the seat still has a turn to take this round.
func (p *Player) CanAct() bool {
	return p.Status == Active
}

// Eligible reports whether the seat takes part in betting and dealing.
// A negative balance should never happen, but a corrupted seat is skipped
// rather than propagated (it can be restored by a profile reset).
func (p *Player) Eligible() bool {
	return p.Chips >= 0
}

// PlaceBet deducts the bet from the seat's chips and records it.
func (p *Player) PlaceBet(amount int) {
	p.Chips -= amount
	p.LastBet = amount
	p.BetHistory = append(p.BetHistory, amount)
}

// Upcard returns the seat's first dealt card, which is the value opponents'
// policies see regardless of the renderer's visibility mode. The second
// return is false before any cards are dealt.
func (p *Player) Upcard() (int, bool) {
	if len(p.Hand) == 0 {
		return 0, false
	}
	return p.Hand[0].BlackjackValue(), true
}
