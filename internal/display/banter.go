package display

import (
	rand "math/rand/v2"
)

// lineQueue is a read-only cyclic sequence of dealer or NPC lines: Next
// returns the front line and rotates it to the back.
type lineQueue struct {
	lines []string
	pos   int
}

func newLineQueue(lines ...string) *lineQueue {
	return &lineQueue{lines: lines}
}

func (q *lineQueue) Next() string {
	if len(q.lines) == 0 {
		return ""
	}
	line := q.lines[q.pos]
	q.pos = (q.pos + 1) % len(q.lines)
	return line
}

// banter holds the dealer's rotating patter and per-seat NPC speech.
type banter struct {
	goodLuck      *lineQueue
	encouragement *lineQueue
	snark         *lineQueue
	npcSpeech     map[string]*lineQueue
	rng           *rand.Rand
}

func newBanter(rng *rand.Rand) *banter {
	return &banter{
		goodLuck: newLineQueue(
			"Good luck! May the cards favor you.",
			"Let's see if lady luck is smiling at you.",
			"Shuffle up and deal! Time to win big.",
		),
		encouragement: newLineQueue(
			"You're close to 21, careful now!",
			"Nice hand, don't push your luck!",
			"Almost there, tension is high!",
		),
		snark: newLineQueue(
			"Ouch! That must hurt.",
			"Better luck next time, rookie.",
			"I knew that wasn't going to work out.",
		),
		npcSpeech: map[string]*lineQueue{
			"Cautious Carl": newLineQueue(
				"Mmm... 14 is too risky. I'll stand.",
				"I'll play it safe.",
			),
			"Reckless Randy": newLineQueue(
				"Hit me again! Let's go!",
				"All in baby!",
			),
			"Smart Samantha": newLineQueue(
				"Statistics say I should hit here.",
				"I'll play the odds.",
			),
			"Chaotic Chad": newLineQueue(
				"Stand! No, hit! No wait, hit!",
				"Feeling unpredictable today.",
			),
		},
		rng: rng,
	}
}

// npcLine returns a speech line for the named seat with the given percentage
// chance, or "" to stay quiet. Unknown seats have nothing to say.
func (b *banter) npcLine(name string, chance int) string {
	q, ok := b.npcSpeech[name]
	if !ok || b.rng.IntN(100) >= chance {
		return ""
	}
	return q.Next()
}
