package knowledge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	s := NewSeedStore()

	tests := []struct {
		name      string
		company   string
		wantFound bool
		wantShort string
	}{
		{name: "exact key", company: "tesla", wantFound: true, wantShort: seedEntries["tesla"].Short},
		{name: "mixed case", company: "TeSLA", wantFound: true, wantShort: seedEntries["tesla"].Short},
		{name: "default key", company: "Eightfold AI", wantFound: true, wantShort: seedEntries["eightfold ai"].Short},
		{name: "unknown company", company: "Acme Corp", wantFound: false, wantShort: seedEntries["eightfold ai"].Short},
		{name: "empty", company: "", wantFound: false, wantShort: seedEntries["eightfold ai"].Short},
		{name: "padded name is not trimmed", company: " tesla ", wantFound: false, wantShort: seedEntries["eightfold ai"].Short},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, found := s.Resolve(tt.company)
			assert.Equal(t, tt.wantFound, found)
			assert.Equal(t, tt.wantShort, entry.Short)
		})
	}
}

func TestLookupUnknownCompaniesUseDefault(t *testing.T) {
	s := NewSeedStore()
	def := s.Lookup(DefaultCompany, LevelShort)

	for _, name := range []string{"OpenAI", "tesla motors", "???", "eightfold"} {
		assert.Equal(t, def, s.Lookup(name, LevelShort), name)
	}
	assert.Equal(t, seedEntries["eightfold ai"].Long, s.Lookup("nobody", LevelLong))
}

func TestLookupLevels(t *testing.T) {
	s := NewSeedStore()

	assert.Contains(t, s.Lookup("tesla", LevelShort), "Price wars with BYD.")
	assert.Contains(t, s.Lookup("tesla", LevelLong), "Humanoid robot development")
	assert.Equal(t, s.Lookup("tesla", LevelShort), s.Lookup("tesla", Level("weird")))
}

func TestSeedReportsHaveFourSections(t *testing.T) {
	for name, e := range seedEntries {
		for _, text := range []string{e.Short, e.Long} {
			for _, heading := range []string{"### 1.", "### 2.", "### 3.", "### 4."} {
				assert.True(t, strings.Contains(text, heading), "%s missing %s", name, heading)
			}
		}
	}
}

func TestCompanies(t *testing.T) {
	s := NewStore(map[string]ReportEntry{"Zeta": {}, "alpha": {}}, "alpha")
	assert.Equal(t, []string{"alpha", "zeta"}, s.Companies())
	assert.Equal(t, "alpha", s.DefaultKey())
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelLong, ParseLevel(" LONG "))
	assert.Equal(t, LevelShort, ParseLevel("short"))
	assert.Equal(t, LevelShort, ParseLevel(""))
}
