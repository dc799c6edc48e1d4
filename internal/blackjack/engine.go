package blackjack

import (
	"errors"

	"github.com/charmbracelet/log"

	"github.com/lox/twentyone/internal/deck"
	"github.com/lox/twentyone/internal/ledger"
)

// ErrQuit is returned from PlayRound when the human asks to leave the table.
// The caller is expected to flush the ledger and exit cleanly.
var ErrQuit = errors.New("player quit")

// Action is a human turn choice surfaced by the Controller. Menu navigation
// (profiles, help) is the controller's business; the engine only ever sees
// one of these.
type Action int

const (
	ActionHit Action = iota
	ActionStand
	ActionDiscard
	ActionQuit
)

// Controller supplies the human seat's choices. Implementations own
// re-prompting on unparsable input; the engine clamps whatever comes back.
type Controller interface {
	// PromptBet asks for a wager, offering defaultBet. The result is clamped
	// to [1, chips] by the engine.
	PromptBet(p *Player, defaultBet int) int

	// PromptAction asks for the next turn action.
	PromptAction(p *Player) Action
}

// Observer receives round events for rendering. The engine never prints.
type Observer interface {
	RoundStarted(round int, shoeRemaining int)
	BetPlaced(p *Player, amount int)
	CardDealt(p *Player, c deck.Card, pass int)
	NaturalBlackjack(p *Player)
	PlayerDrew(p *Player, c deck.Card)
	PlayerStood(p *Player)
	PlayerBusted(p *Player)
	CardDiscarded(p *Player, c deck.Card)
	PushToHouse()
	PayoutMade(p *Player, amount int)
	AchievementUnlocked(p *Player, a ledger.Achievement)
}

// NopObserver discards all events.
type NopObserver struct{}

func (NopObserver) RoundStarted(int, int)                          {}
func (NopObserver) BetPlaced(*Player, int)                         {}
func (NopObserver) CardDealt(*Player, deck.Card, int)              {}
func (NopObserver) NaturalBlackjack(*Player)                       {}
func (NopObserver) PlayerDrew(*Player, deck.Card)                  {}
func (NopObserver) PlayerStood(*Player)                            {}
func (NopObserver) PlayerBusted(*Player)                           {}
func (NopObserver) CardDiscarded(*Player, deck.Card)               {}
func (NopObserver) PushToHouse()                                   {}
func (NopObserver) PayoutMade(*Player, int)                        {}
func (NopObserver) AchievementUnlocked(*Player, ledger.Achievement) {}

// Config holds table-level engine settings.
type Config struct {
	BaseBet  int // default wager offered to the human and anchoring scripted wagers
	LowWater int // proactive shoe rebuild threshold at round start
}

// DefaultConfig returns the standard table settings.
func DefaultConfig() Config {
	return Config{BaseBet: 10, LowWater: 15}
}

// RoundResult summarises a completed round.
type RoundResult struct {
	Round    int
	Best     int // best qualifying hand value, 0 on a push to house
	Winners  []string
	Payouts  map[string]int
	PotTotal int
	Push     bool
	Unlocked []ledger.Achievement
}

// Engine runs the per-round protocol over an owned set of seats. All state
// it mutates (shoe, pot, hands, chips) is exclusively its own for the
// duration of a round; there is no concurrency here.
type Engine struct {
	players      []*Player
	shoe         *deck.Shoe
	ledger       *ledger.Ledger
	controller   Controller
	observer     Observer
	logger       *log.Logger
	cfg          Config
	pot          Pot
	round        int
	transactions []int
}

// NewEngine creates an engine over the given seats.
func NewEngine(players []*Player, shoe *deck.Shoe, lgr *ledger.Ledger, controller Controller, observer Observer, logger *log.Logger, cfg Config) *Engine {
	if observer == nil {
		observer = NopObserver{}
	}
	if cfg.BaseBet < 1 {
		cfg.BaseBet = DefaultConfig().BaseBet
	}
	if cfg.LowWater < 1 {
		cfg.LowWater = DefaultConfig().LowWater
	}
	return &Engine{
		players:    players,
		shoe:       shoe,
		ledger:     lgr,
		controller: controller,
		observer:   observer,
		logger:     logger,
		cfg:        cfg,
	}
}

// Players returns the seats in table order.
func (e *Engine) Players() []*Player {
	return e.players
}

// Round returns the number of the most recently started round.
func (e *Engine) Round() int {
	return e.round
}

// PotTotal returns the current round's pot total.
func (e *Engine) PotTotal() int {
	return e.pot.Total()
}

// Transactions returns the most recent n chip deltas, oldest first. Bets are
// negative, payouts positive.
func (e *Engine) Transactions(n int) []int {
	if n > len(e.transactions) {
		n = len(e.transactions)
	}
	return e.transactions[len(e.transactions)-n:]
}

// RemoveBankrupt drops seats with no chips left and returns them.
func (e *Engine) RemoveBankrupt() []*Player {
	var removed []*Player
	kept := e.players[:0]
	for _, p := range e.players {
		if p.Chips <= 0 {
			removed = append(removed, p)
		} else {
			kept = append(kept, p)
		}
	}
	e.players = kept
	return removed
}

// PlayRound runs one complete round: reset, bets, deal, naturals, turns,
// winner determination, payout, statistics and achievement evaluation.
// It returns ErrQuit if the human quit mid-round.
func (e *Engine) PlayRound() (*RoundResult, error) {
	e.prepareRound()
	e.collectBets()
	e.dealInitial()
	e.markNaturals()

	if err := e.runTurns(); err != nil {
		return nil, err
	}

	best, winners := e.determineWinners()
	payouts := e.payOut(winners)
	e.recordOutcomes(winners, payouts)
	unlocked := e.evaluateAchievements(winners, payouts)

	result := &RoundResult{
		Round:    e.round,
		Best:     best,
		Payouts:  payouts,
		PotTotal: e.pot.Total(),
		Push:     len(winners) == 0,
		Unlocked: unlocked,
	}
	for _, w := range winners {
		result.Winners = append(result.Winners, w.Name)
	}
	e.logger.Info("Round complete",
		"round", e.round,
		"best", best,
		"winners", result.Winners,
		"pot", result.PotTotal)
	return result, nil
}

// prepareRound clears round-scoped state and proactively refreshes a shoe
// running below the low-water mark. Draw would recycle reactively anyway,
// but a mid-deal reshuffle makes for a worse table.
func (e *Engine) prepareRound() {
	e.round++
	e.pot.Reset()
	for _, p := range e.players {
		p.ResetForRound()
	}
	if e.shoe.Remaining() < e.cfg.LowWater {
		e.logger.Debug("Shoe below low-water mark, rebuilding", "remaining", e.shoe.Remaining())
		e.shoe.Build(e.shoe.Decks())
		e.shoe.Shuffle()
	}
	e.observer.RoundStarted(e.round, e.shoe.Remaining())
}

func (e *Engine) collectBets() {
	for _, p := range e.players {
		if p.Chips <= 0 {
			continue
		}
		var bet int
		if p.Human {
			def := p.LastBet
			if def <= 0 {
				def = e.cfg.BaseBet
			}
			if def > p.Chips {
				def = p.Chips
			}
			bet = e.controller.PromptBet(p, def)
		} else {
			streak := e.ledger.Record(p.Name).CurrentStreak
			bet = e.policyFor(p).Wager(e.cfg.BaseBet, p.Chips, streak)
		}
		if bet < 1 {
			bet = 1
		}
		if bet > p.Chips {
			bet = p.Chips
		}
		p.PlaceBet(bet)
		e.pot.Add(p.Name, bet)
		e.pushTransaction(-bet)
		e.observer.BetPlaced(p, bet)
	}
}

// dealInitial deals two passes of one card each so every eligible seat holds
// exactly two cards before action begins.
func (e *Engine) dealInitial() {
	for pass := 0; pass < 2; pass++ {
		for _, p := range e.players {
			if !p.Eligible() {
				continue
			}
			c := e.shoe.Draw()
			p.Hand.Add(c)
			e.observer.CardDealt(p, c, pass)
		}
	}
}

// markNaturals stands any two-card 21 before the action loop; naturals never
// act and count toward blackjack statistics immediately.
func (e *Engine) markNaturals() {
	for _, p := range e.players {
		if !p.Eligible() {
			continue
		}
		if p.Hand.IsNatural() {
			p.Stand()
			e.ledger.RecordBlackjack(p.Name)
			e.observer.NaturalBlackjack(p)
		}
	}
}

func (e *Engine) runTurns() error {
	for _, p := range e.players {
		if !p.Eligible() || !p.CanAct() {
			continue
		}
		if p.Human {
			if err := e.humanTurn(p); err != nil {
				return err
			}
		} else {
			e.scriptedTurn(p)
		}
	}
	return nil
}

func (e *Engine) humanTurn(p *Player) error {
	for p.CanAct() {
		switch e.controller.PromptAction(p) {
		case ActionHit:
			e.drawFor(p)
		case ActionStand:
			p.Stand()
			e.observer.PlayerStood(p)
		case ActionDiscard:
			// House variant: the most recently drawn card goes back to the
			// discard pile.
			if c, ok := p.Hand.RemoveLast(); ok {
				e.shoe.Discard(c)
				e.observer.CardDiscarded(p, c)
			}
		case ActionQuit:
			e.logger.Info("Human quit mid-round", "round", e.round)
			return ErrQuit
		}
	}
	return nil
}

func (e *Engine) scriptedTurn(p *Player) {
	policy := e.policyFor(p)
	for p.CanAct() {
		view := TurnView{
			Value:      p.Hand.Value(),
			Soft:       p.Hand.IsSoft(),
			BestUpcard: e.bestUpcard(p),
		}
		if !policy.Hit(view) {
			p.Stand()
			e.observer.PlayerStood(p)
			return
		}
		e.drawFor(p)
	}
}

// drawFor deals one card; a total over 21 busts the seat immediately.
func (e *Engine) drawFor(p *Player) {
	c := e.shoe.Draw()
	p.Hand.Add(c)
	e.observer.PlayerDrew(p, c)
	if p.Hand.Value() > 21 {
		p.Bust()
		e.observer.PlayerBusted(p)
	}
}

// bestUpcard returns the highest first-dealt card value among the other
// seats. The floor of 2 matches the lowest card in play.
func (e *Engine) bestUpcard(self *Player) int {
	highest := 2
	for _, p := range e.players {
		if p == self {
			continue
		}
		if v, ok := p.Upcard(); ok && v > highest {
			highest = v
		}
	}
	return highest
}

func (e *Engine) policyFor(p *Player) Policy {
	if p.Policy != nil {
		return p.Policy
	}
	return Fallback{}
}

// determineWinners finds the best qualifying total and every non-busted seat
// holding it. No qualifying seat means the round pushes to the house.
func (e *Engine) determineWinners() (int, []*Player) {
	best := 0
	for _, p := range e.players {
		if !p.Eligible() || p.Status == Busted {
			continue
		}
		if hv := p.Hand.Value(); hv <= 21 && hv > best {
			best = hv
		}
	}
	if best == 0 {
		return 0, nil
	}
	var winners []*Player
	for _, p := range e.players {
		if !p.Eligible() || p.Status == Busted {
			continue
		}
		if p.Hand.Value() == best {
			winners = append(winners, p)
		}
	}
	return best, winners
}

// payOut settles the pot. A winner is paid against their own stake: double
// the bet, or bet plus three halves of it (floored) for a natural. The
// equal-split branch covers the defensive case of a winner with no recorded
// stake, which normal flow never produces.
func (e *Engine) payOut(winners []*Player) map[string]int {
	payouts := make(map[string]int)
	if len(winners) == 0 || e.pot.Total() <= 0 {
		if len(winners) == 0 {
			e.observer.PushToHouse()
		}
		return payouts
	}

	unstaked := 0
	for _, w := range winners {
		if e.pot.Contribution(w.Name) <= 0 {
			unstaked++
		}
	}

	for _, w := range winners {
		stake := e.pot.Contribution(w.Name)
		var payout int
		if stake <= 0 {
			payout = e.pot.Total() / unstaked
		} else if w.Hand.IsNatural() {
			payout = stake + stake*3/2
		} else {
			payout = stake * 2
		}
		w.Chips += payout
		payouts[w.Name] = payout
		e.pushTransaction(payout)
		e.observer.PayoutMade(w, payout)
	}
	return payouts
}

// recordOutcomes applies the round's win/loss accounting. Winners extend
// their streak; every other chip-eligible seat records a loss and a streak
// reset, including the all-bust case.
func (e *Engine) recordOutcomes(winners []*Player, payouts map[string]int) {
	isWinner := make(map[string]bool, len(winners))
	for _, w := range winners {
		isWinner[w.Name] = true
	}
	for _, p := range e.players {
		if !p.Eligible() {
			continue
		}
		if isWinner[p.Name] {
			e.ledger.RecordWin(p.Name, payouts[p.Name])
		} else {
			e.ledger.RecordLoss(p.Name)
		}
	}
}

// evaluateAchievements runs the human seat's achievement conditions against
// a snapshot of the finished round.
func (e *Engine) evaluateAchievements(winners []*Player, payouts map[string]int) []ledger.Achievement {
	human := e.humanSeat()
	if human == nil {
		return nil
	}

	outcome := ledger.RoundOutcome{
		Natural:    human.Hand.IsNatural(),
		ChipsAfter: human.Chips,
	}
	// HIGH_ROLLER watches the whole table, not just the human's own payout.
	for _, amount := range payouts {
		if amount > outcome.TopPayout {
			outcome.TopPayout = amount
		}
	}
	for _, w := range winners {
		if w == human {
			outcome.Won = true
		}
	}
	switch human.Status {
	case Busted:
		outcome.BustedValue = human.Hand.Value()
	case Stood:
		outcome.StoodAt = human.Hand.Value()
	}
	for _, p := range e.players {
		if p == human || !p.Eligible() {
			continue
		}
		hv := p.Hand.Value()
		if hv > outcome.BestOpponent && hv <= 21 {
			outcome.BestOpponent = hv
		}
		if hv == 20 || hv == 21 {
			outcome.OpponentHadTwenty = true
		}
	}

	unlocked := e.ledger.EvaluateRound(human.Name, outcome)
	for _, a := range unlocked {
		e.logger.Info("Achievement unlocked", "player", human.Name, "id", a.ID)
		e.observer.AchievementUnlocked(human, a)
	}
	return unlocked
}

func (e *Engine) humanSeat() *Player {
	for _, p := range e.players {
		if p.Human {
			return p
		}
	}
	return nil
}

// pushTransaction appends a chip delta to the table tape, trimming old
// entries so the tape cannot grow without bound over a long session.
func (e *Engine) pushTransaction(amount int) {
	const keep = 256
	e.transactions = append(e.transactions, amount)
	if len(e.transactions) > keep*2 {
		e.transactions = append(e.transactions[:0], e.transactions[len(e.transactions)-keep:]...)
	}
}
