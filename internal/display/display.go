// Package display renders the table to a terminal and collects the human
// seat's choices. It implements the engine's Observer and Controller
// interfaces; the engine itself never prints.
package display

import (
	"bufio"
	"fmt"
	"io"
	rand "math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/twentyone/internal/blackjack"
	"github.com/lox/twentyone/internal/deck"
	"github.com/lox/twentyone/internal/ledger"
)

// Options configures a Display.
type Options struct {
	In            io.Reader
	Out           io.Writer
	Clock         quartz.Clock
	Pacing        string // fast, normal or slow
	UpcardOnly    bool
	Ledger        *ledger.Ledger
	Store         *ledger.Store
	Logger        *log.Logger
	StartingChips int
	Rand          *rand.Rand
}

// Display is the line-based terminal renderer and input collector.
type Display struct {
	in            *bufio.Reader
	out           io.Writer
	styles        *Styles
	banter        *banter
	clock         quartz.Clock
	delay         time.Duration
	upcardOnly    bool
	ledger        *ledger.Ledger
	store         *ledger.Store
	logger        *log.Logger
	startingChips int
	engine        *blackjack.Engine
}

// New creates a display. SetEngine must be called before play starts.
func New(opts Options) *Display {
	clock := opts.Clock
	if clock == nil {
		clock = quartz.NewReal()
	}
	delay := 120 * time.Millisecond
	switch opts.Pacing {
	case "fast":
		delay = 10 * time.Millisecond
	case "slow":
		delay = 300 * time.Millisecond
	}
	return &Display{
		in:            bufio.NewReader(opts.In),
		out:           opts.Out,
		styles:        NewStyles(),
		banter:        newBanter(opts.Rand),
		clock:         clock,
		delay:         delay,
		upcardOnly:    opts.UpcardOnly,
		ledger:        opts.Ledger,
		store:         opts.Store,
		logger:        opts.Logger,
		startingChips: opts.StartingChips,
	}
}

// SetEngine wires the engine whose table this display renders. Done after
// construction because the engine takes the display as its observer.
func (d *Display) SetEngine(e *blackjack.Engine) {
	d.engine = e
}

func (d *Display) printf(format string, args ...any) {
	fmt.Fprintf(d.out, format, args...)
}

func (d *Display) println(args ...any) {
	fmt.Fprintln(d.out, args...)
}

// pause waits one pacing beat so dealt cards read like a table, not a dump.
func (d *Display) pause() {
	if d.delay > 0 {
		timer := d.clock.NewTimer(d.delay)
		<-timer.C
	}
}

func (d *Display) card(c deck.Card) string {
	if c.IsRed() {
		return d.styles.CardRed.Render(c.String())
	}
	return d.styles.CardBlack.Render(c.String())
}

func (d *Display) seatName(p *blackjack.Player) string {
	if p.Human {
		return d.styles.HumanName.Render(p.Name)
	}
	return d.styles.NPCName.Render(p.Name)
}

// ShowTitle prints the startup banner.
func (d *Display) ShowTitle() {
	d.println(d.styles.Title.Render(" ♠ ♥ Twenty-One ♦ ♣ "))
	d.println()
}

// --- blackjack.Observer ---

// RoundStarted prints the round header and a dealer greeting.
func (d *Display) RoundStarted(round, shoeRemaining int) {
	d.println(d.styles.Header.Render(fmt.Sprintf("================== ROUND %d ==================", round)))
	d.printf("%s\n", d.styles.Muted.Render(fmt.Sprintf("%d cards in the shoe", shoeRemaining)))
	d.printf("%s %s\n", d.styles.Dealer.Render("Dealer:"), d.banter.goodLuck.Next())
}

// BetPlaced prints a seat's wager.
func (d *Display) BetPlaced(p *blackjack.Player, amount int) {
	d.printf("%16s bets %d chips.\n", p.Name, amount)
	d.pause()
}

// CardDealt prints one card of the opening deal. In upcard mode only a
// scripted seat's first card is shown.
func (d *Display) CardDealt(p *blackjack.Player, c deck.Card, pass int) {
	switch {
	case p.Human:
		d.printf("%s %s\n", d.styles.SubHeader.Render("Dealt to You:"), d.card(c))
	case d.upcardOnly && pass > 0:
		d.printf("%s receives a card face down.\n", d.seatName(p))
	case d.upcardOnly:
		d.printf("%s receives upcard: %s\n", d.seatName(p), d.card(c))
	default:
		d.printf("%s receives: %s\n", d.seatName(p), d.card(c))
	}
	d.pause()
}

// NaturalBlackjack announces a two-card 21.
func (d *Display) NaturalBlackjack(p *blackjack.Player) {
	d.printf("%s %s\n", d.seatName(p), d.styles.TwentyOne.Render("has a natural blackjack!"))
	d.pause()
}

// PlayerDrew prints a hit, with occasional NPC table talk.
func (d *Display) PlayerDrew(p *blackjack.Player, c deck.Card) {
	if p.Human {
		d.printf("%s %s\n", d.styles.SubHeader.Render("You drew:"), d.card(c))
		return
	}
	if line := d.banter.npcLine(p.Name, 40); line != "" {
		d.printf("%s: %s\n", d.seatName(p), line)
	}
	d.printf("%s draws: %s -> value=%d\n", d.seatName(p), d.card(c), p.Hand.Value())
	d.pause()
}

// PlayerStood prints a stand.
func (d *Display) PlayerStood(p *blackjack.Player) {
	if p.Human {
		d.printf("You chose to stand at %d.\n", p.Hand.Value())
		return
	}
	if line := d.banter.npcLine(p.Name, 60); line != "" {
		d.printf("%s: %s\n", d.seatName(p), line)
	}
	d.printf("%s stands at %d\n", d.seatName(p), p.Hand.Value())
	d.pause()
}

// PlayerBusted prints a bust.
func (d *Display) PlayerBusted(p *blackjack.Player) {
	if p.Human {
		d.printf("%s\n", d.styles.Bust.Render(fmt.Sprintf("You busted with %d!", p.Hand.Value())))
		return
	}
	d.printf("%s %s\n", d.seatName(p), d.styles.Bust.Render(fmt.Sprintf("busts with %d!", p.Hand.Value())))
	d.pause()
}

// CardDiscarded prints the house-variant discard.
func (d *Display) CardDiscarded(p *blackjack.Player, c deck.Card) {
	d.printf("Discarded %s to the discard pile.\n", d.card(c))
}

// PushToHouse announces a round nobody won.
func (d *Display) PushToHouse() {
	d.printf("%s\n", d.styles.Bust.Render("Everyone busted. House keeps the pot."))
	d.printf("%s %s\n", d.styles.DealerSnark.Render("Dealer:"), d.banter.snark.Next())
}

// PayoutMade prints a winner's payout.
func (d *Display) PayoutMade(p *blackjack.Player, amount int) {
	d.printf("%s receives payout: %s\n", d.seatName(p), d.styles.Pot.Render(fmt.Sprintf("%d chips", amount)))
	d.pause()
}

// AchievementUnlocked prints an unlock toast.
func (d *Display) AchievementUnlocked(p *blackjack.Player, a ledger.Achievement) {
	d.println()
	d.printf("%s\n", d.styles.Achievement.Render(fmt.Sprintf(">>> Achievement Unlocked: %s!", a.ID)))
	d.printf("    %s\n", a.Description)
}

// --- blackjack.Controller ---

// PromptBet asks the human for a wager, substituting the default on empty or
// unparsable input.
func (d *Display) PromptBet(p *blackjack.Player, defaultBet int) int {
	d.printf("You have %d chips. Press ENTER to bet %d or type an amount (1-%d): ",
		p.Chips, defaultBet, p.Chips)
	line, err := d.readLine()
	if err != nil || line == "" {
		return defaultBet
	}
	bet, perr := strconv.Atoi(line)
	if perr != nil {
		d.println("Invalid input, using default.")
		return defaultBet
	}
	return bet
}

// PromptAction asks the human for the next turn action, looping until an
// engine-visible action is chosen. Menu browsing and bad input loop locally
// with no engine state change.
func (d *Display) PromptAction(p *blackjack.Player) blackjack.Action {
	for {
		value := p.Hand.Value()
		d.printf("\nYour hand: %s (value: %d)\n", d.handString(p.Hand), value)
		if value >= 17 && value < 21 {
			d.printf("%s %s\n", d.styles.Dealer.Render("Dealer:"), d.banter.encouragement.Next())
		}
		d.printf("Choose action: (h)it, (s)tand, (d)iscard, (v)iew profiles, (q)uit, (?)help: ")

		line, err := d.readLine()
		if err != nil {
			// Input gone (EOF), treat as quit so the session flushes.
			return blackjack.ActionQuit
		}
		switch first(line) {
		case 'h':
			return blackjack.ActionHit
		case 's':
			return blackjack.ActionStand
		case 'd':
			return blackjack.ActionDiscard
		case 'q':
			d.println("Quitting...")
			return blackjack.ActionQuit
		case 'v':
			d.ShowProfilesMenu()
		case '?':
			d.println("\nActions:")
			d.println("  h = hit")
			d.println("  s = stand")
			d.println("  d = discard most recent card (house variant)")
			d.println("  v = view profiles")
			d.println("  q = quit")
			d.println("  ? = help")
		default:
			d.println("Unknown option. Type ? for help.")
		}
	}
}

// ContinueChoice is the answer to the between-rounds prompt.
type ContinueChoice int

const (
	PlayAnother ContinueChoice = iota
	OpenProfiles
	StopPlaying
)

// PromptContinue asks whether to play another round.
func (d *Display) PromptContinue() ContinueChoice {
	for {
		d.printf("Play another round? (y/n) or (p) profiles: ")
		line, err := d.readLine()
		if err != nil {
			return StopPlaying
		}
		switch first(line) {
		case 'y', 0:
			return PlayAnother
		case 'n':
			return StopPlaying
		case 'p':
			return OpenProfiles
		default:
			d.println("Please answer y, n or p.")
		}
	}
}

func (d *Display) readLine() (string, error) {
	line, err := d.in.ReadString('\n')
	line = strings.TrimSpace(line)
	if err != nil && line == "" {
		return "", err
	}
	return line, nil
}

func first(line string) byte {
	if line == "" {
		return 0
	}
	return line[0]
}

func (d *Display) handString(h blackjack.Hand) string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = d.card(c)
	}
	return strings.Join(parts, " ")
}
