package main

import (
	"github.com/javiomaster211/matchup-helper/internal/matchup"
)

// UpdateResult is the outcome of saving a matchup edit. VersionCreated
// is false when the edit matched the active version exactly and history
// was left alone.
type UpdateResult struct {
	Matchup        matchup.Matchup `json:"matchup"`
	VersionCreated bool            `json:"version_created"`
}

// GetMatchups returns all matchups, optionally filtered
func (a *App) GetMatchups(filter *matchup.Filter) ([]matchup.Matchup, error) {
	return a.store.ListMatchups(filter)
}

// GetMatchup returns a single matchup by ID
func (a *App) GetMatchup(id string) (*matchup.Matchup, error) {
	return a.store.GetMatchup(id)
}

// CreateMatchup creates a new matchup with an empty initial version
func (a *App) CreateMatchup(n matchup.NewMatchup) (*matchup.Matchup, error) {
	return a.store.CreateMatchup(n)
}

// UpdateMatchup saves an edit to a matchup's active version. A new
// version is only recorded when something actually changed.
func (a *App) UpdateMatchup(id string, update matchup.Update) (*UpdateResult, error) {
	m, err := a.store.GetMatchup(id)
	if err != nil {
		return nil, err
	}

	updated, created := matchup.CommitEdit(*m, update)
	if created {
		if err := a.store.SaveMatchup(&updated); err != nil {
			return nil, err
		}
	}

	return &UpdateResult{Matchup: updated, VersionCreated: created}, nil
}

// DeleteMatchup removes a matchup
func (a *App) DeleteMatchup(id string) error {
	return a.store.DeleteMatchup(id)
}

// SearchMatchups returns matchups matching a free-text query
func (a *App) SearchMatchups(query string) ([]matchup.Matchup, error) {
	return a.store.ListMatchups(&matchup.Filter{Search: query})
}

// GetMatchupVersion returns one version for history browsing. This is a
// pure read; the stored current version pointer is not touched.
func (a *App) GetMatchupVersion(id string, index int) (*matchup.Version, error) {
	m, err := a.store.GetMatchup(id)
	if err != nil {
		return nil, err
	}

	v, err := matchup.SelectVersion(*m, index)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// SetMatchupVersion moves the persisted current version pointer
func (a *App) SetMatchupVersion(id string, index int) (*matchup.Matchup, error) {
	m, err := a.store.GetMatchup(id)
	if err != nil {
		return nil, err
	}

	updated, err := matchup.SetCurrentVersion(*m, index)
	if err != nil {
		return nil, err
	}

	if err := a.store.SaveMatchup(&updated); err != nil {
		return nil, err
	}

	return &updated, nil
}

// AddTag adds a normalized tag to an in-memory version being edited
func (a *App) AddTag(v matchup.Version, raw string) matchup.Version {
	return matchup.AddTag(v, raw)
}

// RemoveTag removes a tag from an in-memory version being edited
func (a *App) RemoveTag(v matchup.Version, tag string) matchup.Version {
	return matchup.RemoveTag(v, tag)
}

// ParseBuildList splits a comma-separated build field into components
func (a *App) ParseBuildList(raw string) []string {
	return matchup.ParseBuildList(raw)
}

// JoinBuildList renders a build list for display
func (a *App) JoinBuildList(list []string) string {
	return matchup.JoinBuildList(list)
}
