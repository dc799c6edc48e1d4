package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordWinTracksStreaks(t *testing.T) {
	t.Parallel()

	l := New()
	l.RecordWin("You", 40)
	l.RecordWin("You", 20)
	l.RecordWin("You", 60)

	rec := l.Record("You")
	assert.Equal(t, 3, rec.Wins)
	assert.Equal(t, 3, rec.CurrentStreak)
	assert.Equal(t, 3, rec.BestStreak)
	assert.Equal(t, 3, rec.TotalGames)
	assert.Equal(t, 60, rec.BiggestWin)

	l.RecordLoss("You")
	assert.Equal(t, 0, rec.CurrentStreak)
	assert.Equal(t, 3, rec.BestStreak, "best streak survives a loss")
	assert.Equal(t, 4, rec.TotalGames)
}

func TestUnlockIsIdempotent(t *testing.T) {
	t.Parallel()

	l := New()
	assert.True(t, l.Unlock("You", "SURVIVOR"), "first unlock reports true")
	assert.False(t, l.Unlock("You", "SURVIVOR"), "second unlock is a no-op")
	assert.Len(t, l.Record("You").Achievements, 1)
}

func TestReset(t *testing.T) {
	t.Parallel()

	l := New()
	l.RecordWin("You", 40)
	l.Unlock("You", "BLACKJACK")
	l.RecordWin("Carl", 10)

	l.Reset("You")
	assert.Zero(t, l.Record("You").Wins)
	assert.Empty(t, l.Record("You").Achievements)
	assert.Equal(t, 1, l.Record("Carl").Wins, "resetting one profile leaves others alone")

	l.ResetAll()
	assert.Zero(t, l.Record("Carl").Wins)
}

func TestEvaluateRoundUnlocksOnce(t *testing.T) {
	t.Parallel()

	l := New()
	outcome := RoundOutcome{Won: true, ChipsAfter: 250}

	unlocked := l.EvaluateRound("You", outcome)
	require.Len(t, unlocked, 1)
	assert.Equal(t, "SURVIVOR", unlocked[0].ID)

	// Same condition holding next round must not re-unlock or re-notify.
	unlocked = l.EvaluateRound("You", outcome)
	assert.Empty(t, unlocked)
}

func TestEvaluateRoundConditions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		prep    func(l *Ledger)
		outcome RoundOutcome
		expect  []string
	}{
		{
			name:    "natural blackjack",
			outcome: RoundOutcome{Won: true, Natural: true},
			expect:  []string{"BLACKJACK"},
		},
		{
			name:    "high roller payout",
			outcome: RoundOutcome{Won: true, TopPayout: 40},
			expect:  []string{"HIGH_ROLLER"},
		},
		{
			name:    "high roller from another seat's payout",
			outcome: RoundOutcome{Won: false, TopPayout: 60},
			expect:  []string{"HIGH_ROLLER"},
		},
		{
			name: "hot streak",
			prep: func(l *Ledger) {
				l.RecordWin("You", 0)
				l.RecordWin("You", 0)
				l.RecordWin("You", 0)
			},
			outcome: RoundOutcome{Won: true},
			expect:  []string{"HOT_STREAK"},
		},
		{
			name:    "bad bust",
			outcome: RoundOutcome{BustedValue: 22},
			expect:  []string{"IT_HAPPENS"},
		},
		{
			name:    "close call",
			outcome: RoundOutcome{Won: false, StoodAt: 20},
			expect:  []string{"CLOSE_CALL"},
		},
		{
			name:    "against the odds",
			outcome: RoundOutcome{Won: true, OpponentHadTwenty: true},
			expect:  []string{"AGAINST_ODDS"},
		},
		{
			name: "marathoner",
			prep: func(l *Ledger) {
				for i := 0; i < 20; i++ {
					l.RecordLoss("You")
				}
			},
			outcome: RoundOutcome{},
			expect:  []string{"MARATHONER"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New()
			if tt.prep != nil {
				tt.prep(l)
			}
			unlocked := l.EvaluateRound("You", tt.outcome)
			var ids []string
			for _, a := range unlocked {
				ids = append(ids, a.ID)
			}
			assert.Equal(t, tt.expect, ids)
		})
	}
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Reach 200 chips.", Describe("SURVIVOR"))
	assert.Equal(t, "FUTURE_THING", Describe("FUTURE_THING"), "unknown IDs describe as themselves")
}
