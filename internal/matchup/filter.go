package matchup

import "strings"

// Filter narrows a matchup list. All set fields must match (conjunction).
type Filter struct {
	MyChampion    string   `json:"my_champion,omitempty"`
	EnemyChampion string   `json:"enemy_champion,omitempty"`
	Role          string   `json:"role,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	Search        string   `json:"search,omitempty"`
}

// MatchesFilter reports whether the matchup satisfies every set filter
// field. Champion and role comparisons are case-insensitive; tags must
// all be present on the current version; search looks through both
// champion names and the current version's notes.
func (m *Matchup) MatchesFilter(f *Filter) bool {
	if f == nil {
		return true
	}

	if f.MyChampion != "" && !strings.EqualFold(m.MyChampion, f.MyChampion) {
		return false
	}
	if f.EnemyChampion != "" && !strings.EqualFold(m.EnemyChampion, f.EnemyChampion) {
		return false
	}
	if f.Role != "" && !strings.EqualFold(m.Role, f.Role) {
		return false
	}

	if len(f.Tags) > 0 {
		cur := m.Current()
		for _, want := range f.Tags {
			found := false
			for _, have := range cur.Tags {
				if strings.EqualFold(have, want) {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
	}

	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(m.MyChampion), q) &&
			!strings.Contains(strings.ToLower(m.EnemyChampion), q) &&
			!strings.Contains(strings.ToLower(m.Current().Notes), q) {
			return false
		}
	}

	return true
}
