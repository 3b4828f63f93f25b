package knowledge

import (
	"sort"
	"strings"
)

// Level selects which report tier to show.
type Level string

const (
	LevelShort Level = "short"
	LevelLong  Level = "long"
)

// DefaultCompany is substituted whenever a lookup misses.
const DefaultCompany = "eightfold ai"

// ReportEntry holds both report tiers for a single company.
type ReportEntry struct {
	Short string `json:"short"`
	Long  string `json:"long"`
}

// Text returns the report for the given level. Unknown levels read as short.
func (e ReportEntry) Text(level Level) string {
	if level == LevelLong {
		return e.Long
	}
	return e.Short
}

// Store is a read-only table of canned research reports.
// It is safe for concurrent use because nothing mutates it after construction.
type Store struct {
	entries    map[string]ReportEntry
	defaultKey string
}

// NewStore copies entries into a new store keyed by lowercase name.
// defaultKey must be present in entries.
func NewStore(entries map[string]ReportEntry, defaultKey string) *Store {
	m := make(map[string]ReportEntry, len(entries))
	for k, v := range entries {
		m[normalize(k)] = v
	}
	return &Store{entries: m, defaultKey: normalize(defaultKey)}
}

// NewSeedStore returns the store with the built-in company reports.
func NewSeedStore() *Store {
	return NewStore(seedEntries, DefaultCompany)
}

// Resolve returns the entry for company, or the default entry with found=false.
func (s *Store) Resolve(company string) (ReportEntry, bool) {
	if e, ok := s.entries[normalize(company)]; ok {
		return e, true
	}
	return s.entries[s.defaultKey], false
}

// Lookup returns the report text for company at level. It never fails.
func (s *Store) Lookup(company string, level Level) string {
	e, _ := s.Resolve(company)
	return e.Text(level)
}

// Companies lists the known keys in sorted order.
func (s *Store) Companies() []string {
	out := make([]string, 0, len(s.entries))
	for k := range s.entries {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// DefaultKey is the key used for misses.
func (s *Store) DefaultKey() string { return s.defaultKey }

// ParseLevel maps free text to a Level, defaulting to short.
func ParseLevel(v string) Level {
	if Level(strings.ToLower(strings.TrimSpace(v))) == LevelLong {
		return LevelLong
	}
	return LevelShort
}

// Lowercase only. Surrounding whitespace is significant, same as the chat input.
func normalize(company string) string {
	return strings.ToLower(company)
}
