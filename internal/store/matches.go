package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/javiomaster211/matchup-helper/internal/matchup"
)

// InsertMatch stores an imported match.
func (s *Store) InsertMatch(m *matchup.Match) error {
	linked := sql.NullString{String: m.LinkedMatchup, Valid: m.LinkedMatchup != ""}
	gameID := sql.NullString{String: m.GameID, Valid: m.GameID != ""}

	_, err := s.db.Exec(
		"INSERT INTO matches (id, game_id, date, my_champion, enemy_champion, role, result, notes, linked_matchup) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)",
		m.ID, gameID, m.Date.UTC().Format(time.RFC3339Nano), m.MyChampion, m.EnemyChampion, m.Role, string(m.Result), m.Notes, linked,
	)
	if err != nil {
		return fmt.Errorf("failed to insert match: %w", err)
	}
	return nil
}

// ListMatches returns all matches, newest first.
func (s *Store) ListMatches() ([]matchup.Match, error) {
	rows, err := s.db.Query(
		"SELECT id, game_id, date, my_champion, enemy_champion, role, result, notes, linked_matchup FROM matches ORDER BY date DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}
	defer rows.Close()

	var matches []matchup.Match
	for rows.Next() {
		m, err := scanMatch(rows.Scan)
		if err != nil {
			return nil, err
		}
		matches = append(matches, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate matches: %w", err)
	}

	return matches, nil
}

// GetMatch loads a single match by id.
func (s *Store) GetMatch(id string) (*matchup.Match, error) {
	row := s.db.QueryRow(
		"SELECT id, game_id, date, my_champion, enemy_champion, role, result, notes, linked_matchup FROM matches WHERE id = ?",
		id,
	)
	m, err := scanMatch(row.Scan)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("match %s: %w", id, ErrNotFound)
	}
	return m, err
}

// UpdateMatch applies the given partial update. An empty linked_matchup
// value clears the link.
func (s *Store) UpdateMatch(id string, u matchup.MatchUpdate) (*matchup.Match, error) {
	m, err := s.GetMatch(id)
	if err != nil {
		return nil, err
	}

	if u.Notes != nil {
		m.Notes = *u.Notes
	}
	if u.LinkedMatchup != nil {
		m.LinkedMatchup = *u.LinkedMatchup
	}

	linked := sql.NullString{String: m.LinkedMatchup, Valid: m.LinkedMatchup != ""}
	_, err = s.db.Exec(
		"UPDATE matches SET notes = ?, linked_matchup = ? WHERE id = ?",
		m.Notes, linked, id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update match: %w", err)
	}

	return m, nil
}

// HasGameID reports whether a match with the given game id was already
// imported.
func (s *Store) HasGameID(gameID string) (bool, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM matches WHERE game_id = ?", gameID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check game id: %w", err)
	}
	return count > 0, nil
}

func scanMatch(scan func(dest ...any) error) (*matchup.Match, error) {
	var m matchup.Match
	var date, result string
	var gameID, linked sql.NullString
	if err := scan(&m.ID, &gameID, &date, &m.MyChampion, &m.EnemyChampion, &m.Role, &result, &m.Notes, &linked); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan match: %w", err)
	}

	var err error
	if m.Date, err = time.Parse(time.RFC3339Nano, date); err != nil {
		return nil, fmt.Errorf("failed to parse match date: %w", err)
	}
	m.GameID = gameID.String
	m.LinkedMatchup = linked.String
	m.Result = matchup.MatchResult(result)

	return &m, nil
}
