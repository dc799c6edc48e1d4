package ledger

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lox/twentyone/internal/fileutil"
)

// Store persists the ledger as a flat text file, one record per line:
//
//	name wins losses ties best_streak current_streak biggest_win total_games blackjacks [ACH1,ACH2,...]
//
// Spaces in names are escaped as underscores. Writes are atomic so a crash
// mid-save never leaves a truncated file. A failed save is a warning, not an
// error the game stops for.
type Store struct {
	path   string
	logger *log.Logger
}

// NewStore creates a store writing to path.
func NewStore(path string, logger *log.Logger) *Store {
	return &Store{path: path, logger: logger}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the stats file into a fresh ledger. A missing file yields an
// empty ledger; unparsable lines are skipped with a warning.
func (s *Store) Load() (*Ledger, error) {
	l := New()
	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return l, nil
	}
	if err != nil {
		return l, fmt.Errorf("failed to open stats file: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		name, rec, err := parseRecord(line)
		if err != nil {
			s.logger.Warn("Skipping corrupt stats line", "line", lineno, "error", err)
			continue
		}
		l.records[name] = rec
	}
	if err := scanner.Err(); err != nil {
		return l, fmt.Errorf("failed to read stats file: %w", err)
	}
	return l, nil
}

// Save writes the full ledger, overwriting the previous file.
func (s *Store) Save(l *Ledger) error {
	var buf bytes.Buffer
	for _, name := range l.Names() {
		rec := l.records[name]
		fmt.Fprintf(&buf, "%s %d %d %d %d %d %d %d %d",
			escapeName(name),
			rec.Wins, rec.Losses, rec.Ties,
			rec.BestStreak, rec.CurrentStreak,
			rec.BiggestWin, rec.TotalGames, rec.Blackjacks)
		if len(rec.Achievements) > 0 {
			fmt.Fprintf(&buf, " %s", strings.Join(rec.AchievementIDs(), ","))
		}
		buf.WriteByte('\n')
	}
	if err := fileutil.WriteFileAtomic(s.path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to save stats file: %w", err)
	}
	return nil
}

// SaveOrWarn saves and logs a warning on failure instead of returning it,
// for call sites where persistence trouble must not interrupt play.
func (s *Store) SaveOrWarn(l *Ledger) {
	if err := s.Save(l); err != nil {
		s.logger.Warn("Could not save player stats", "path", s.path, "error", err)
	}
}

func parseRecord(line string) (string, *Record, error) {
	fields := strings.Fields(line)
	if len(fields) < 9 {
		return "", nil, fmt.Errorf("expected at least 9 fields, got %d", len(fields))
	}
	rec := newRecord()
	nums := []*int{
		&rec.Wins, &rec.Losses, &rec.Ties,
		&rec.BestStreak, &rec.CurrentStreak,
		&rec.BiggestWin, &rec.TotalGames, &rec.Blackjacks,
	}
	for i, dst := range nums {
		n, err := strconv.Atoi(fields[i+1])
		if err != nil {
			return "", nil, fmt.Errorf("field %d: %w", i+1, err)
		}
		*dst = n
	}
	if len(fields) >= 10 {
		for _, id := range strings.Split(fields[9], ",") {
			if id != "" {
				rec.Achievements[id] = struct{}{}
			}
		}
	}
	return unescapeName(fields[0]), rec, nil
}

func escapeName(name string) string {
	return strings.ReplaceAll(name, " ", "_")
}

func unescapeName(name string) string {
	return strings.ReplaceAll(name, "_", " ")
}
