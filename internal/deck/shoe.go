package deck

import (
	rand "math/rand/v2"

	"github.com/lox/twentyone/internal/randutil"
)

// Shoe holds the table's working card supply: one or more 52-card decks dealt
// from the front, plus a discard pile that is recycled back into play when the
// live cards run out. Draw never fails.
type Shoe struct {
	cards   []Card
	discard []Card
	seen    map[Card]int
	rng     *rand.Rand
	decks   int
}

// NewShoe creates a shoe of the given deck count, seeded from system entropy,
// built and shuffled.
func NewShoe(decks int) *Shoe {
	return NewShoeWithRand(decks, randutil.NewEntropy())
}

// NewShoeWithRand creates a shoe with a caller-supplied RNG for deterministic
// shuffles in tests.
func NewShoeWithRand(decks int, rng *rand.Rand) *Shoe {
	if decks < 1 {
		decks = 1
	}
	s := &Shoe{rng: rng, decks: decks}
	s.Build(decks)
	s.Shuffle()
	return s
}

// Build repopulates the live cards with decks full 52-card sets and clears the
// discard pile and the seen counts.
func (s *Shoe) Build(decks int) {
	if decks >= 1 {
		s.decks = decks
	}
	s.cards = s.cards[:0]
	for d := 0; d < s.decks; d++ {
		for suit := Spades; suit <= Clubs; suit++ {
			for rank := Two; rank <= Ace; rank++ {
				s.cards = append(s.cards, NewCard(suit, rank))
			}
		}
	}
	s.discard = s.discard[:0]
	s.seen = make(map[Card]int)
}

// Shuffle uniformly permutes the live cards.
func (s *Shoe) Shuffle() {
	for i := len(s.cards) - 1; i > 0; i-- {
		j := s.rng.IntN(i + 1)
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	}
}

// Draw removes and returns the front card. An empty shoe recycles the discard
// pile, holding the most recent discard back as the seed of the next pile. A
// discard pile too small to recycle (a lone card would leave nothing to draw)
// triggers a brand-new shoe, as does an empty one. Each drawn card is recorded
// in the seen counts.
func (s *Shoe) Draw() Card {
	if len(s.cards) == 0 {
		if len(s.discard) > 1 {
			s.recycleDiscards()
		} else {
			s.Build(s.decks)
			s.Shuffle()
		}
	}
	c := s.cards[0]
	s.cards = s.cards[1:]
	s.seen[c]++
	return c
}

// recycleDiscards moves everything except the most recent discard into the
// live cards and reshuffles. The held-back card stays on the discard pile.
func (s *Shoe) recycleDiscards() {
	top := s.discard[len(s.discard)-1]
	for i := len(s.discard) - 2; i >= 0; i-- {
		s.cards = append(s.cards, s.discard[i])
	}
	s.discard = append(s.discard[:0], top)
	s.Shuffle()
}

// Discard pushes a card onto the discard pile.
func (s *Shoe) Discard(c Card) {
	s.discard = append(s.discard, c)
}

// Remaining returns the number of undealt cards.
func (s *Shoe) Remaining() int {
	return len(s.cards)
}

// Discarded returns the number of cards on the discard pile.
func (s *Shoe) Discarded() int {
	return len(s.discard)
}

// SeenCount returns how many times the given card has been drawn from the
// current shoe. Cleared on Build.
func (s *Shoe) SeenCount(c Card) int {
	return s.seen[c]
}

// Decks returns the configured deck count.
func (s *Shoe) Decks() int {
	return s.decks
}
