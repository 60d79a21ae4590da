package matchup

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

// ErrVersionOutOfRange is returned when a version index falls outside
// [1, len(versions)]. The UI only passes indexes it got from the matchup
// itself, so hitting this indicates a caller bug.
var ErrVersionOutOfRange = errors.New("version index out of range")

// NormalizeTag lowercases a raw tag and collapses runs of whitespace to a
// single hyphen. Returns "" for empty or whitespace-only input.
func NormalizeTag(raw string) string {
	fields := strings.Fields(strings.ToLower(raw))
	return strings.Join(fields, "-")
}

// AddTag appends the normalized form of raw to the version's tag list.
// Empty input and already-present tags are no-ops, so adding is
// idempotent. Insertion order is preserved. Tag edits accumulate on the
// in-memory version; history only changes on CommitEdit.
func AddTag(v Version, raw string) Version {
	tag := NormalizeTag(raw)
	if tag == "" {
		return v
	}
	if slices.Contains(v.Tags, tag) {
		return v
	}
	v.Tags = append(slices.Clone(v.Tags), tag)
	return v
}

// RemoveTag removes all occurrences of the exact tag string, keeping the
// order of the remaining tags. Absent tags are a no-op.
func RemoveTag(v Version, tag string) Version {
	if !slices.Contains(v.Tags, tag) {
		return v
	}
	tags := make([]string, 0, len(v.Tags))
	for _, t := range v.Tags {
		if t != tag {
			tags = append(tags, t)
		}
	}
	v.Tags = tags
	return v
}

// ParseBuildList splits a comma-separated build list into its components,
// trimming each and dropping empties. It is the inverse of JoinBuildList:
// round-tripping an unchanged list through join and parse is a fixed
// point.
func ParseBuildList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// JoinBuildList renders a build list for display, joining non-empty
// components with ", ".
func JoinBuildList(list []string) string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		if s != "" {
			out = append(out, s)
		}
	}
	return strings.Join(out, ", ")
}

// CommitEdit compares the edited fields against the active version and,
// if anything changed, appends a new version and moves the current
// pointer to it. Saving identical fields leaves history untouched, so
// repeated saves never pile up duplicate versions. This is the only
// operation that grows version history.
func CommitEdit(m Matchup, u Update) (Matchup, bool) {
	cur := m.Current()
	if u.Notes == cur.Notes &&
		slices.Equal(u.Tags, cur.Tags) &&
		slices.Equal(u.Runes, cur.Runes) &&
		slices.Equal(u.SummonerSpells, cur.SummonerSpells) &&
		slices.Equal(u.Items, cur.Items) {
		return m, false
	}

	next := Version{
		Version:        len(m.Versions) + 1,
		Date:           time.Now().UTC(),
		Notes:          u.Notes,
		Tags:           slices.Clone(u.Tags),
		Runes:          slices.Clone(u.Runes),
		SummonerSpells: slices.Clone(u.SummonerSpells),
		Items:          slices.Clone(u.Items),
	}
	m.Versions = append(slices.Clone(m.Versions), next)
	m.CurrentVersion = len(m.Versions)
	return m, true
}

// SelectVersion returns the version at the given 1-based index without
// touching the current pointer. Browsing history is read-only; use
// SetCurrentVersion to persist a pointer change.
func SelectVersion(m Matchup, index int) (Version, error) {
	if index < 1 || index > len(m.Versions) {
		return Version{}, fmt.Errorf("%w: %d (have %d versions)", ErrVersionOutOfRange, index, len(m.Versions))
	}
	return m.Versions[index-1], nil
}

// SetCurrentVersion moves the current pointer to the given 1-based index.
// This is the explicit pointer-change operation, distinct from the
// read-only SelectVersion.
func SetCurrentVersion(m Matchup, index int) (Matchup, error) {
	if index < 1 || index > len(m.Versions) {
		return m, fmt.Errorf("%w: %d (have %d versions)", ErrVersionOutOfRange, index, len(m.Versions))
	}
	m.CurrentVersion = index
	return m, nil
}
