package display

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lox/twentyone/internal/blackjack"
)

const scoreboardWidth = 63

// ShowTable prints every seat's hand. Scripted hands are masked according to
// the upcard mode unless revealAll is set (end of round).
func (d *Display) ShowTable(revealAll bool) {
	d.println("\n------- TABLE -------")
	for _, p := range d.engine.Players() {
		d.printf("%s | chips: %d | hand: ", d.seatName(p), p.Chips)
		switch {
		case len(p.Hand) == 0:
			d.printf("(no cards)")
		case p.Human || revealAll:
			d.printf("%s (value: %d)", d.handString(p.Hand), p.Hand.Value())
		case d.upcardOnly:
			d.printf("%s", d.card(p.Hand[0]))
			if len(p.Hand) > 1 {
				d.printf(" [%d hidden]", len(p.Hand)-1)
			}
			d.printf(" (value: ???)")
		default:
			d.printf("[hidden]")
			for _, c := range p.Hand[1:] {
				d.printf(" %s", d.card(c))
			}
			d.printf(" (value: ???)")
		}
		d.println()
	}
	d.println("---------------------")
	d.println()
}

// ShowScoreboard prints the chips/status/hand summary table.
func (d *Display) ShowScoreboard() {
	rule := d.styles.Separator.Render(strings.Repeat("-", scoreboardWidth))
	d.println(rule)
	d.printf("%-20s%-8s%-10s%-25s\n", "PLAYER", "CHIPS", "RESULT", "HAND")
	d.println(rule)

	for _, p := range d.engine.Players() {
		result := p.Status.String()
		resultStyle := d.styles.Status
		switch {
		case p.Status == blackjack.Busted:
			resultStyle = d.styles.Bust
		case p.Hand.Value() == 21:
			result = "21"
			resultStyle = d.styles.TwentyOne
		}

		hand := "(no cards)"
		if len(p.Hand) > 0 {
			hand = fmt.Sprintf("%d (%s)", p.Hand.Value(), p.Hand.String())
		}

		d.printf("%s%s%s%-25s\n",
			pad(d.seatName(p), p.Name, 20),
			pad(d.chips(p.Chips), fmt.Sprintf("%d", p.Chips), 8),
			pad(resultStyle.Render(result), result, 10),
			hand)
	}
	d.println(rule)
}

// chips renders a chip count colored by how healthy the stack is.
func (d *Display) chips(n int) string {
	s := fmt.Sprintf("%d", n)
	switch {
	case n >= 200:
		return d.styles.ChipsRich.Render(s)
	case n >= 100:
		return d.styles.ChipsOK.Render(s)
	case n >= 40:
		return d.styles.ChipsLow.Render(s)
	default:
		return d.styles.ChipsBroke.Render(s)
	}
}

// pad left-aligns styled text to width using the unstyled text for measure,
// since ANSI escapes confuse %-*s.
func pad(styled, plain string, width int) string {
	if n := width - len([]rune(plain)); n > 0 {
		return styled + strings.Repeat(" ", n)
	}
	return styled
}

// ShowRoundSummary prints the pot, the transaction tape and each seat's final
// hand and wagers.
func (d *Display) ShowRoundSummary(result *blackjack.RoundResult) {
	d.printf("\nPot total: %s\n", d.styles.Pot.Render(fmt.Sprintf("%d chips", result.PotTotal)))
	d.showTransactions(12)

	d.println("\n--- Round Results ---")
	for _, p := range d.engine.Players() {
		d.printf("%s: hand(%s) value=%d", p.Name, p.Hand.String(), p.Hand.Value())
		if p.Status == blackjack.Busted {
			d.printf(" %s", d.styles.Bust.Render("[BUSTED]"))
		}
		d.printf(" | chips=%d", p.Chips)
		if len(p.BetHistory) > 0 {
			d.printf(" | wagers:%s", joinInts(p.BetHistory, ","))
		}
		d.println()
	}
	d.println("---------------------")
}

// ShowRoundFooter prints the end-of-round rule.
func (d *Display) ShowRoundFooter(round int) {
	d.println(d.styles.Header.Render(fmt.Sprintf("============== END ROUND %d ==============", round)))
	d.println()
}

// showTransactions prints the most recent chip deltas, oldest first.
func (d *Display) showTransactions(n int) {
	tape := d.engine.Transactions(n)
	parts := make([]string, len(tape))
	for i, v := range tape {
		if v >= 0 {
			parts[i] = fmt.Sprintf("+%d", v)
		} else {
			parts[i] = fmt.Sprintf("%d", v)
		}
	}
	d.printf("Recent transactions (oldest->newest): %s\n", strings.Join(parts, ", "))
}

// ShowSessionStats prints the per-seat session summary after each round.
func (d *Display) ShowSessionStats() {
	d.println()
	d.println(d.styles.SubHeader.Render("===== SESSION STATS ====="))
	for _, p := range d.engine.Players() {
		rec := d.ledger.Record(p.Name)
		d.printf("%s -> wins: %d, losses: %d, ties: %d, blackjacks: %d, chips: %d\n",
			p.Name, rec.Wins, rec.Losses, rec.Ties, rec.Blackjacks, p.Chips)
	}
	d.println(d.styles.SubHeader.Render("========================="))
}

// ShowLeaderboard prints seats ranked by chips at session end.
func (d *Display) ShowLeaderboard() {
	d.println("\nFinal stats and leaderboard:")
	players := append([]*blackjack.Player(nil), d.engine.Players()...)
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].Chips > players[j].Chips
	})
	for i, p := range players {
		d.printf("%d. %s - chips: %d\n", i+1, p.Name, p.Chips)
	}
	d.println("Thank you for playing!")
}

// ShowBankrupt announces seats leaving the table.
func (d *Display) ShowBankrupt(removed []*blackjack.Player) {
	for _, p := range removed {
		d.printf("%s is bankrupt and removed from the game.\n", p.Name)
	}
}

func joinInts(ns []int, sep string) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return strings.Join(parts, sep)
}
