package matchup

import (
	"time"
)

// Version is one immutable snapshot of a matchup's notes, tags and build
// fields. Once appended to a matchup's history it is never modified.
type Version struct {
	Version        int       `json:"version"`
	Date           time.Time `json:"date"`
	Notes          string    `json:"notes"`
	Tags           []string  `json:"tags"`
	Runes          []string  `json:"runes"`
	SummonerSpells []string  `json:"summoner_spells"`
	Items          []string  `json:"items"`
}

// Matchup pairs the user's champion against an enemy champion in a role,
// with an append-only version history. Versions is never reordered or
// truncated; CurrentVersion is a 1-based index into it.
type Matchup struct {
	ID             string    `json:"id"`
	MyChampion     string    `json:"my_champion"`
	EnemyChampion  string    `json:"enemy_champion"`
	Role           string    `json:"role"`
	Versions       []Version `json:"versions"`
	CurrentVersion int       `json:"current_version"`
}

// Update carries the edited field values for the active version.
type Update struct {
	Notes          string   `json:"notes"`
	Tags           []string `json:"tags"`
	Runes          []string `json:"runes"`
	SummonerSpells []string `json:"summoner_spells"`
	Items          []string `json:"items"`
}

// NewMatchup carries the fields needed to create a matchup.
type NewMatchup struct {
	MyChampion    string `json:"my_champion"`
	EnemyChampion string `json:"enemy_champion"`
	Role          string `json:"role"`
}

// EmptyVersion returns the initial version every new matchup starts with.
func EmptyVersion(now time.Time) Version {
	return Version{
		Version:        1,
		Date:           now,
		Tags:           []string{},
		Runes:          []string{},
		SummonerSpells: []string{},
		Items:          []string{},
	}
}

// Current returns the active version. If the pointer has drifted out of
// range it falls back to the first version, which always exists.
func (m *Matchup) Current() Version {
	if m.CurrentVersion >= 1 && m.CurrentVersion <= len(m.Versions) {
		return m.Versions[m.CurrentVersion-1]
	}
	if len(m.Versions) > 0 {
		return m.Versions[0]
	}
	return Version{}
}
