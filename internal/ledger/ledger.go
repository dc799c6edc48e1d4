// Package ledger tracks per-name round outcomes and unlockable achievements
// across sessions. It is the single mutation path for persisted statistics;
// nothing else in the program holds win/loss state.
package ledger

import "sort"

// Record is the persisted statistics for one participant name.
//
// Ties exists in the schema and survives load/save round-trips, but no round
// outcome currently produces a tie: tied best hands all count as wins.
type Record struct {
	Wins          int
	Losses        int
	Ties          int
	BestStreak    int
	CurrentStreak int
	BiggestWin    int
	TotalGames    int
	Blackjacks    int
	Achievements  map[string]struct{}
}

func newRecord() *Record {
	return &Record{Achievements: make(map[string]struct{})}
}

// HasAchievement reports whether the achievement ID has been unlocked.
func (r *Record) HasAchievement(id string) bool {
	_, ok := r.Achievements[id]
	return ok
}

// AchievementIDs returns the unlocked IDs in sorted order.
func (r *Record) AchievementIDs() []string {
	ids := make([]string, 0, len(r.Achievements))
	for id := range r.Achievements {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Ledger is the keyed collection of records.
type Ledger struct {
	records map[string]*Record
}

// New creates an empty ledger.
func New() *Ledger {
	return &Ledger{records: make(map[string]*Record)}
}

// Record returns the record for name, creating it if absent.
func (l *Ledger) Record(name string) *Record {
	rec, ok := l.records[name]
	if !ok {
		rec = newRecord()
		l.records[name] = rec
	}
	return rec
}

// Names returns all recorded names in sorted order.
func (l *Ledger) Names() []string {
	names := make([]string, 0, len(l.records))
	for name := range l.records {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether a record exists for name without creating one.
func (l *Ledger) Has(name string) bool {
	_, ok := l.records[name]
	return ok
}

// RecordWin credits a round win: win count, streak (and best streak when
// exceeded), games played, and the biggest single payout seen.
func (l *Ledger) RecordWin(name string, payout int) {
	rec := l.Record(name)
	rec.Wins++
	rec.CurrentStreak++
	if rec.CurrentStreak > rec.BestStreak {
		rec.BestStreak = rec.CurrentStreak
	}
	rec.TotalGames++
	if payout > rec.BiggestWin {
		rec.BiggestWin = payout
	}
}

// RecordLoss debits a round loss and resets the streak.
func (l *Ledger) RecordLoss(name string) {
	rec := l.Record(name)
	rec.Losses++
	rec.CurrentStreak = 0
	rec.TotalGames++
}

// RecordBlackjack counts a natural blackjack.
func (l *Ledger) RecordBlackjack(name string) {
	l.Record(name).Blackjacks++
}

// Unlock adds the achievement to the record if not already present and
// reports whether this call unlocked it. Unlocking twice is a no-op.
func (l *Ledger) Unlock(name, id string) bool {
	rec := l.Record(name)
	if rec.HasAchievement(id) {
		return false
	}
	rec.Achievements[id] = struct{}{}
	return true
}

// Reset replaces the named record with a fresh one. Unlocked achievements are
// lost; this is the only path that removes them.
func (l *Ledger) Reset(name string) {
	l.records[name] = newRecord()
}

// ResetAll replaces every record with a fresh one.
func (l *Ledger) ResetAll() {
	for name := range l.records {
		l.records[name] = newRecord()
	}
}
