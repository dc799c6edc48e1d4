package blackjack

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lox/twentyone/internal/randutil"
)

func TestConservativeHit(t *testing.T) {
	t.Parallel()

	p := NewConservative(randutil.New(1))
	assert.True(t, p.Hit(TurnView{Value: 12}))
	assert.False(t, p.Hit(TurnView{Value: 13}))
	assert.False(t, p.Hit(TurnView{Value: 20}))
}

func TestAggressiveHit(t *testing.T) {
	t.Parallel()

	p := NewAggressive(randutil.New(1))
	assert.True(t, p.Hit(TurnView{Value: 19}))
	assert.False(t, p.Hit(TurnView{Value: 20}))
}

func TestProbabilityInformedSoftHands(t *testing.T) {
	t.Parallel()

	p := NewProbabilityInformed(randutil.New(1))

	tests := []struct {
		name string
		view TurnView
		hit  bool
	}{
		{"soft 17 always hits", TurnView{Value: 17, Soft: true, BestUpcard: 2}, true},
		{"soft 18 hits into a nine", TurnView{Value: 18, Soft: true, BestUpcard: 9}, true},
		{"soft 18 stands into a six", TurnView{Value: 18, Soft: true, BestUpcard: 6}, false},
		{"soft 19 stands", TurnView{Value: 19, Soft: true, BestUpcard: 11}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.hit, p.Hit(tt.view))
		})
	}
}

func TestProbabilityInformedHardHands(t *testing.T) {
	t.Parallel()

	p := NewProbabilityInformed(randutil.New(1))

	tests := []struct {
		name string
		view TurnView
		hit  bool
	}{
		{"hard 11 always hits", TurnView{Value: 11, BestUpcard: 2}, true},
		{"hard 17 always stands", TurnView{Value: 17, BestUpcard: 11}, false},
		{"hard 14 stands into a weak upcard", TurnView{Value: 14, BestUpcard: 4}, false},
		{"hard 14 hits into a strong upcard", TurnView{Value: 14, BestUpcard: 10}, true},
		{"hard 12 stands into a six", TurnView{Value: 12, BestUpcard: 6}, false},
		{"hard 16 hits into a seven", TurnView{Value: 16, BestUpcard: 7}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.hit, p.Hit(tt.view))
		})
	}
}

func TestRandomizedHitIsRoughlyFair(t *testing.T) {
	t.Parallel()

	p := NewRandomized(randutil.New(7))
	hits := 0
	const trials = 10000
	for i := 0; i < trials; i++ {
		if p.Hit(TurnView{Value: 15}) {
			hits++
		}
	}
	assert.InDelta(t, trials/2, hits, trials/20, "coin flip should land near 50%%")
}

func TestFallbackHit(t *testing.T) {
	t.Parallel()

	p := Fallback{}
	assert.True(t, p.Hit(TurnView{Value: 15}))
	assert.False(t, p.Hit(TurnView{Value: 16}))
}

func TestWagersNeverExceedChips(t *testing.T) {
	t.Parallel()

	policies := []Policy{
		NewConservative(randutil.New(2)),
		NewAggressive(randutil.New(3)),
		NewRandomized(randutil.New(4)),
		NewProbabilityInformed(randutil.New(5)),
		Fallback{},
	}
	for _, pol := range policies {
		for _, chips := range []int{1, 3, 10, 50, 500} {
			for i := 0; i < 200; i++ {
				bet := pol.Wager(10, chips, i%5)
				assert.GreaterOrEqual(t, bet, 1, "%s wagered below table minimum", pol.Name())
				assert.LessOrEqual(t, bet, chips, "%s wagered more than its chips", pol.Name())
			}
		}
	}
}

func TestProbabilityInformedPressesOnStreak(t *testing.T) {
	t.Parallel()

	// With a streak and plenty of chips the wager should exceed base at
	// least sometimes; with no streak it should mostly sit at base.
	p := NewProbabilityInformed(randutil.New(9))
	raised := 0
	for i := 0; i < 100; i++ {
		if p.Wager(10, 100, 2) > 10 {
			raised++
		}
	}
	assert.Greater(t, raised, 80, "streak wagers should carry the press most of the time")
}
