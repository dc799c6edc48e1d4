// Package blackjack implements the round engine for a table of one human and
// several scripted opponents: hand evaluation, decision policies, betting,
// dealing, winner determination and payouts.
package blackjack

import (
	"strings"

	"github.com/lox/twentyone/internal/deck"
)

// Hand is one participant's cards for the current round.
type Hand []deck.Card

// Add appends a card to the hand.
func (h *Hand) Add(c deck.Card) {
	*h = append(*h, c)
}

// RemoveLast removes and returns the most recently added card. The second
// return is false if the hand is empty.
func (h *Hand) RemoveLast() (deck.Card, bool) {
	if len(*h) == 0 {
		return deck.Card{}, false
	}
	c := (*h)[len(*h)-1]
	*h = (*h)[:len(*h)-1]
	return c, true
}

// Clear empties the hand, keeping capacity.
func (h *Hand) Clear() {
	*h = (*h)[:0]
}

// Value returns the blackjack total. Every ace counts 11 first; while the
// total exceeds 21 and an undemoted ace remains, one ace drops to 1. Which
// aces get demoted does not affect the result.
func (h Hand) Value() int {
	total := 0
	aces := 0
	for _, c := range h {
		total += c.BlackjackValue()
		if c.IsAce() {
			aces++
		}
	}
	for total > 21 && aces > 0 {
		total -= 10
		aces--
	}
	return total
}

// IsNatural returns true for a two-card 21.
func (h Hand) IsNatural() bool {
	return len(h) == 2 && h.Value() == 21
}

// IsSoft returns true if the hand holds an ace and the all-aces-high total is
// still 21 or less.
func (h Hand) IsSoft() bool {
	total := 0
	aces := 0
	for _, c := range h {
		total += c.BlackjackValue()
		if c.IsAce() {
			aces++
		}
	}
	return aces > 0 && total <= 21
}

// String returns the hand as space-separated short cards, e.g. "A♠ K♥".
func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
