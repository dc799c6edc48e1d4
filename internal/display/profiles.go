package display

import (
	"strings"

	"github.com/lox/twentyone/internal/ledger"
)

// ShowProfilesMenu runs the interactive profiles browser until the player
// picks "back". Profile resets are persisted immediately.
func (d *Display) ShowProfilesMenu() {
	for {
		d.println("\n--- Player Profiles Menu ---")
		d.println("1) View all profiles")
		d.println("2) View specific profile")
		d.println("3) Reset a profile's stats")
		d.println("4) Reset ALL stats")
		d.println("5) Back to game")
		d.println("6) View achievements for a player")
		d.println("7) View chip counts")
		d.println("8) View wager history for a player")
		d.printf("Choose: ")

		line, err := d.readLine()
		if err != nil {
			return
		}
		switch strings.TrimSpace(line) {
		case "1":
			d.showAllProfiles()
		case "2":
			name := d.promptName("Enter player name: ", "")
			d.showProfile(name)
		case "3":
			name := d.promptName("Enter player name to reset: ", "")
			d.resetProfile(name)
		case "4":
			d.resetAllProfiles()
		case "5":
			return
		case "6":
			name := d.promptName("Enter player name for achievements (default: You): ", "You")
			d.showAchievements(name)
		case "7":
			d.showChipCounts()
		case "8":
			name := d.promptName("Enter player name for wager history (default: You): ", "You")
			d.showWagerHistory(name)
		default:
			d.println("Unknown choice.")
		}
	}
}

func (d *Display) promptName(prompt, fallback string) string {
	d.printf("%s", prompt)
	line, err := d.readLine()
	if err != nil || line == "" {
		return fallback
	}
	return line
}

func (d *Display) showAllProfiles() {
	d.println("\n-- All Profiles --")
	for _, name := range d.ledger.Names() {
		d.showProfile(name)
	}
}

func (d *Display) showProfile(name string) {
	if !d.ledger.Has(name) {
		d.printf("No profile named '%s'.\n", name)
		return
	}
	rec := d.ledger.Record(name)
	d.printf("%s : wins=%d losses=%d ties=%d total_games=%d best_streak=%d current_streak=%d biggest_win=%d blackjacks=%d achievements=[%s]\n",
		name, rec.Wins, rec.Losses, rec.Ties, rec.TotalGames,
		rec.BestStreak, rec.CurrentStreak, rec.BiggestWin, rec.Blackjacks,
		strings.Join(rec.AchievementIDs(), ", "))
}

func (d *Display) resetProfile(name string) {
	if !d.ledger.Has(name) {
		d.printf("No profile named '%s'.\n", name)
		return
	}
	d.ledger.Reset(name)
	for _, p := range d.engine.Players() {
		if p.Name == name {
			p.Chips = d.startingChips
		}
	}
	d.store.SaveOrWarn(d.ledger)
	d.printf("Profile reset for %s.\n", name)
}

func (d *Display) resetAllProfiles() {
	d.ledger.ResetAll()
	for _, p := range d.engine.Players() {
		p.Chips = d.startingChips
		p.BetHistory = nil
	}
	d.store.SaveOrWarn(d.ledger)
	d.println("All profiles reset.")
}

func (d *Display) showAchievements(name string) {
	if !d.ledger.Has(name) {
		d.printf("No profile named '%s'.\n", name)
		return
	}
	rec := d.ledger.Record(name)

	d.printf("\n=== Achievements for %s ===\n", name)
	d.println("Unlocked:")
	if len(rec.Achievements) == 0 {
		d.println("  (none)")
	}
	for _, a := range ledger.Catalog {
		if rec.HasAchievement(a.ID) {
			d.printf("  %s %s - %s\n", d.styles.Achievement.Render("✔"), a.ID, a.Description)
		}
	}

	d.println("\nLocked:")
	locked := 0
	for _, a := range ledger.Catalog {
		if !rec.HasAchievement(a.ID) {
			locked++
			d.printf("  %s %s - %s\n", d.styles.Muted.Render("✘"), a.ID, a.Description)
		}
	}
	if locked == 0 {
		d.println("  (none - all unlocked!)")
	}
	d.println("===============================")
	d.println()
}

func (d *Display) showChipCounts() {
	d.println("\n--- Chip Counts ---")
	for _, p := range d.engine.Players() {
		d.printf("%s : %d\n", p.Name, p.Chips)
	}
}

func (d *Display) showWagerHistory(name string) {
	for _, p := range d.engine.Players() {
		if p.Name == name {
			d.printf("Wager history for %s: %s\n", name, joinInts(p.BetHistory, ", "))
			return
		}
	}
	d.printf("No player named '%s'.\n", name)
}
