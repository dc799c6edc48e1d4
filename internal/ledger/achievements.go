package ledger

// RoundOutcome is the engine's snapshot of how a round ended for one seat,
// used to evaluate achievement conditions after the statistics update.
type RoundOutcome struct {
	Won               bool
	Natural           bool
	TopPayout         int // largest single payout made this round, any seat
	ChipsAfter        int
	BustedValue       int  // final value if the seat busted, else 0
	StoodAt           int  // final value if the seat stood, else 0
	BestOpponent      int  // highest opponent hand value this round
	OpponentHadTwenty bool // some opponent finished on 20 or 21
}

// Achievement pairs a stable identifier with its display description and
// unlock condition.
type Achievement struct {
	ID          string
	Description string
	unlocked    func(rec *Record, o RoundOutcome) bool
}

// Catalog is the full achievement set in display order.
var Catalog = []Achievement{
	{
		ID:          "BLACKJACK",
		Description: "Natural Blackjack: get a 2-card 21.",
		unlocked:    func(_ *Record, o RoundOutcome) bool { return o.Natural },
	},
	{
		ID:          "HIGH_ROLLER",
		Description: "See a single payout of 40+ chips in one round.",
		unlocked:    func(_ *Record, o RoundOutcome) bool { return o.TopPayout >= 40 },
	},
	{
		ID:          "HOT_STREAK",
		Description: "Win 3 rounds in a row.",
		unlocked:    func(rec *Record, _ RoundOutcome) bool { return rec.CurrentStreak >= 3 },
	},
	{
		ID:          "CARD_SHARK",
		Description: "Win 10 total rounds.",
		unlocked:    func(rec *Record, _ RoundOutcome) bool { return rec.Wins >= 10 },
	},
	{
		ID:          "SURVIVOR",
		Description: "Reach 200 chips.",
		unlocked:    func(_ *Record, o RoundOutcome) bool { return o.ChipsAfter >= 200 },
	},
	{
		ID:          "UNSTOPPABLE",
		Description: "Reach 300 chips.",
		unlocked:    func(_ *Record, o RoundOutcome) bool { return o.ChipsAfter >= 300 },
	},
	{
		ID:          "IT_HAPPENS",
		Description: "Bust badly (22+).",
		unlocked:    func(_ *Record, o RoundOutcome) bool { return o.BustedValue >= 22 },
	},
	{
		ID:          "CLOSE_CALL",
		Description: "Stand on 20 and still lose.",
		unlocked:    func(_ *Record, o RoundOutcome) bool { return !o.Won && o.StoodAt == 20 },
	},
	{
		ID:          "AGAINST_ODDS",
		Description: "Beat an opponent who had 20 or 21.",
		unlocked:    func(_ *Record, o RoundOutcome) bool { return o.Won && o.OpponentHadTwenty },
	},
	{
		ID:          "MARATHONER",
		Description: "Play 20 rounds.",
		unlocked:    func(rec *Record, _ RoundOutcome) bool { return rec.TotalGames >= 20 },
	},
	{
		ID:          "GAMBLER_SPIRIT",
		Description: "Play 50 rounds.",
		unlocked:    func(rec *Record, _ RoundOutcome) bool { return rec.TotalGames >= 50 },
	},
}

// Describe returns the description for an achievement ID, or the ID itself
// for anything not in the catalog (e.g. loaded from a newer stats file).
func Describe(id string) string {
	for _, a := range Catalog {
		if a.ID == id {
			return a.Description
		}
	}
	return id
}

// EvaluateRound checks every achievement condition against the named record
// and the round outcome, unlocking any that newly hold. It returns the
// achievements unlocked by this call, in catalog order. Re-evaluating a
// condition that already unlocked is a no-op.
func (l *Ledger) EvaluateRound(name string, o RoundOutcome) []Achievement {
	rec := l.Record(name)
	var unlocked []Achievement
	for _, a := range Catalog {
		if rec.HasAchievement(a.ID) {
			continue
		}
		if a.unlocked(rec, o) && l.Unlock(name, a.ID) {
			unlocked = append(unlocked, a)
		}
	}
	return unlocked
}
