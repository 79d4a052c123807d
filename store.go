package tradepulse

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/etnz/tradepulse/date"
)

// Filenames of the documents a Store keeps in its state directory.
const (
	portfolioFile = "tradepulse_portfolio.json"
	briefFile     = "tradepulse_recommendations.json"
	historyFile   = "deep_research_history.jsonl"
)

// Store persists the portfolio and research documents in a single state
// directory, as human-readable JSON friendly to hand edits and git.
type Store struct {
	dir string
}

// NewStore returns a Store rooted at dir.
func NewStore(dir string) *Store { return &Store{dir: dir} }

// Dir returns the state directory.
func (s *Store) Dir() string { return s.dir }

// LoadPortfolio reads the portfolio document. On the very first run, when no
// document exists yet, it logs a warning and returns the seed portfolio.
func (s *Store) LoadPortfolio() (*Portfolio, error) {
	filename := filepath.Join(s.dir, portfolioFile)
	f, err := os.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("Warning: portfolio file %q not found, starting from the seed allocation.", filename)
		return Seed(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open portfolio file %q: %w", filename, err)
	}
	defer f.Close()

	p, err := DecodePortfolio(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read portfolio file %q: %w", filename, err)
	}
	return p, nil
}

// SavePortfolio replaces the portfolio document atomically: the new content
// goes to a temporary file in the same directory, then a rename swaps it in,
// so a crash mid-save never leaves a half-written document behind.
func (s *Store) SavePortfolio(p *Portfolio) error {
	filename := filepath.Join(s.dir, portfolioFile)
	return s.writeAtomic(filename, func(f *os.File) error { return EncodePortfolio(f, p) })
}

// LoadBrief reads the current research brief. When none has been saved yet
// it returns the zero record.
func (s *Store) LoadBrief() (RecommendationRecord, error) {
	filename := filepath.Join(s.dir, briefFile)
	f, err := os.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return RecommendationRecord{}, nil
	}
	if err != nil {
		return RecommendationRecord{}, fmt.Errorf("cannot open recommendations file %q: %w", filename, err)
	}
	defer f.Close()

	rec, err := DecodeBrief(f)
	if err != nil {
		return RecommendationRecord{}, fmt.Errorf("cannot read recommendations file %q: %w", filename, err)
	}
	return rec, nil
}

// SaveBrief stores content as the current research brief, stamped at now in
// Eastern time. The single slot is replaced atomically, and the same record
// is appended to the history log, which keeps every brief ever generated.
func (s *Store) SaveBrief(content string, now time.Time) (RecommendationRecord, error) {
	rec := RecommendationRecord{GeneratedAt: date.Stamp(now), Content: content}

	filename := filepath.Join(s.dir, briefFile)
	err := s.writeAtomic(filename, func(f *os.File) error { return EncodeBrief(f, rec) })
	if err != nil {
		return RecommendationRecord{}, err
	}
	if err := s.appendHistory(rec); err != nil {
		return RecommendationRecord{}, err
	}
	return rec, nil
}

// LoadHistory reads the full research history log, oldest first. A missing
// log is an empty history.
func (s *Store) LoadHistory() ([]RecommendationRecord, error) {
	filename := filepath.Join(s.dir, historyFile)
	f, err := os.Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open history file %q: %w", filename, err)
	}
	defer f.Close()

	records, err := DecodeHistory(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read history file %q: %w", filename, err)
	}
	return records, nil
}

// appendHistory adds one record to the research history log.
func (s *Store) appendHistory(rec RecommendationRecord) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("cannot create state directory %q: %w", s.dir, err)
	}
	filename := filepath.Join(s.dir, historyFile)
	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("cannot open history file %q: %w", filename, err)
	}
	defer f.Close()
	return EncodeRecord(f, rec)
}

// writeAtomic writes a document through write into a temporary file in the
// state directory, then renames it over filename.
func (s *Store) writeAtomic(filename string, write func(f *os.File) error) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("cannot create state directory %q: %w", s.dir, err)
	}
	tmp, err := os.CreateTemp(s.dir, filepath.Base(filename)+".tmp-*")
	if err != nil {
		return fmt.Errorf("cannot create temporary file in %q: %w", s.dir, err)
	}
	defer os.Remove(tmp.Name()) // no-op once the rename has succeeded

	if err := write(tmp); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cannot close temporary file %q: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		return fmt.Errorf("cannot replace %q: %w", filename, err)
	}
	return nil
}
