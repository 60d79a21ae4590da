package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/javiomaster211/matchup-helper/internal/matchup"
)

var (
	// ErrNotFound is returned when no record exists for the given id.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidMatchup is returned when a matchup is created without two
	// distinct, non-empty champions.
	ErrInvalidMatchup = errors.New("matchup requires two distinct champions")
)

const schema = `
	CREATE TABLE IF NOT EXISTS matchups (
		id TEXT PRIMARY KEY,
		my_champion TEXT NOT NULL,
		enemy_champion TEXT NOT NULL,
		role TEXT NOT NULL,
		current_version INTEGER NOT NULL DEFAULT 1
	);

	CREATE TABLE IF NOT EXISTS matchup_versions (
		matchup_id TEXT NOT NULL REFERENCES matchups(id) ON DELETE CASCADE,
		version INTEGER NOT NULL,
		date TEXT NOT NULL,
		notes TEXT NOT NULL DEFAULT '',
		tags TEXT NOT NULL DEFAULT '[]',
		runes TEXT NOT NULL DEFAULT '[]',
		summoner_spells TEXT NOT NULL DEFAULT '[]',
		items TEXT NOT NULL DEFAULT '[]',
		PRIMARY KEY (matchup_id, version)
	);

	CREATE TABLE IF NOT EXISTS matches (
		id TEXT PRIMARY KEY,
		game_id TEXT,
		date TEXT NOT NULL,
		my_champion TEXT NOT NULL,
		enemy_champion TEXT NOT NULL,
		role TEXT NOT NULL,
		result TEXT NOT NULL,
		notes TEXT NOT NULL DEFAULT '',
		linked_matchup TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_matches_game_id ON matches(game_id);
`

// Store persists matchups and imported matches in a local SQLite
// database.
type Store struct {
	db *sql.DB
}

// New opens (or creates) the database at dbPath and initializes the
// schema.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// CreateMatchup inserts a new matchup seeded with a single empty version
// and current_version = 1.
func (s *Store) CreateMatchup(n matchup.NewMatchup) (*matchup.Matchup, error) {
	my := strings.TrimSpace(n.MyChampion)
	enemy := strings.TrimSpace(n.EnemyChampion)
	if my == "" || enemy == "" || strings.EqualFold(my, enemy) {
		return nil, ErrInvalidMatchup
	}

	m := matchup.Matchup{
		ID:             uuid.New().String(),
		MyChampion:     my,
		EnemyChampion:  enemy,
		Role:           n.Role,
		Versions:       []matchup.Version{matchup.EmptyVersion(time.Now().UTC())},
		CurrentVersion: 1,
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"INSERT INTO matchups (id, my_champion, enemy_champion, role, current_version) VALUES (?, ?, ?, ?, ?)",
		m.ID, m.MyChampion, m.EnemyChampion, m.Role, m.CurrentVersion,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert matchup: %w", err)
	}

	if err := insertVersion(tx, m.ID, m.Versions[0]); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit: %w", err)
	}

	return &m, nil
}

// GetMatchup loads a matchup with its full version history.
func (s *Store) GetMatchup(id string) (*matchup.Matchup, error) {
	var m matchup.Matchup
	err := s.db.QueryRow(
		"SELECT id, my_champion, enemy_champion, role, current_version FROM matchups WHERE id = ?",
		id,
	).Scan(&m.ID, &m.MyChampion, &m.EnemyChampion, &m.Role, &m.CurrentVersion)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("matchup %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get matchup: %w", err)
	}

	versions, err := s.loadVersions(m.ID)
	if err != nil {
		return nil, err
	}
	m.Versions = versions

	return &m, nil
}

// ListMatchups returns all matchups, narrowed by the filter when one is
// given. Filtering happens in memory against the loaded records.
func (s *Store) ListMatchups(f *matchup.Filter) ([]matchup.Matchup, error) {
	rows, err := s.db.Query("SELECT id FROM matchups")
	if err != nil {
		return nil, fmt.Errorf("failed to list matchups: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan matchup id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate matchups: %w", err)
	}

	matchups := make([]matchup.Matchup, 0, len(ids))
	for _, id := range ids {
		m, err := s.GetMatchup(id)
		if err != nil {
			return nil, err
		}
		if m.MatchesFilter(f) {
			matchups = append(matchups, *m)
		}
	}

	return matchups, nil
}

// SaveMatchup persists the current pointer and any versions appended
// since the matchup was loaded. Existing version rows are never
// rewritten.
func (s *Store) SaveMatchup(m *matchup.Matchup) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec("UPDATE matchups SET current_version = ? WHERE id = ?", m.CurrentVersion, m.ID)
	if err != nil {
		return fmt.Errorf("failed to update matchup: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("matchup %s: %w", m.ID, ErrNotFound)
	}

	var stored int
	if err := tx.QueryRow(
		"SELECT COALESCE(MAX(version), 0) FROM matchup_versions WHERE matchup_id = ?", m.ID,
	).Scan(&stored); err != nil {
		return fmt.Errorf("failed to count versions: %w", err)
	}

	for _, v := range m.Versions {
		if v.Version <= stored {
			continue
		}
		if err := insertVersion(tx, m.ID, v); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	return nil
}

// DeleteMatchup removes a matchup and its versions.
func (s *Store) DeleteMatchup(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM matchup_versions WHERE matchup_id = ?", id); err != nil {
		return fmt.Errorf("failed to delete versions: %w", err)
	}

	res, err := tx.Exec("DELETE FROM matchups WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete matchup: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("matchup %s: %w", id, ErrNotFound)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

func (s *Store) loadVersions(matchupID string) ([]matchup.Version, error) {
	rows, err := s.db.Query(
		"SELECT version, date, notes, tags, runes, summoner_spells, items FROM matchup_versions WHERE matchup_id = ? ORDER BY version",
		matchupID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load versions: %w", err)
	}
	defer rows.Close()

	var versions []matchup.Version
	for rows.Next() {
		var v matchup.Version
		var date, tags, runes, spells, items string
		if err := rows.Scan(&v.Version, &date, &v.Notes, &tags, &runes, &spells, &items); err != nil {
			return nil, fmt.Errorf("failed to scan version: %w", err)
		}
		if v.Date, err = time.Parse(time.RFC3339Nano, date); err != nil {
			return nil, fmt.Errorf("failed to parse version date: %w", err)
		}
		if v.Tags, err = decodeList(tags); err != nil {
			return nil, err
		}
		if v.Runes, err = decodeList(runes); err != nil {
			return nil, err
		}
		if v.SummonerSpells, err = decodeList(spells); err != nil {
			return nil, err
		}
		if v.Items, err = decodeList(items); err != nil {
			return nil, err
		}
		versions = append(versions, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate versions: %w", err)
	}

	return versions, nil
}

func insertVersion(tx *sql.Tx, matchupID string, v matchup.Version) error {
	tags, err := encodeList(v.Tags)
	if err != nil {
		return err
	}
	runes, err := encodeList(v.Runes)
	if err != nil {
		return err
	}
	spells, err := encodeList(v.SummonerSpells)
	if err != nil {
		return err
	}
	items, err := encodeList(v.Items)
	if err != nil {
		return err
	}

	_, err = tx.Exec(
		"INSERT INTO matchup_versions (matchup_id, version, date, notes, tags, runes, summoner_spells, items) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		matchupID, v.Version, v.Date.UTC().Format(time.RFC3339Nano), v.Notes, tags, runes, spells, items,
	)
	if err != nil {
		return fmt.Errorf("failed to insert version %d: %w", v.Version, err)
	}
	return nil
}

func encodeList(list []string) (string, error) {
	if list == nil {
		list = []string{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return "", fmt.Errorf("failed to encode list: %w", err)
	}
	return string(b), nil
}

func decodeList(raw string) ([]string, error) {
	var list []string
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, fmt.Errorf("failed to decode list: %w", err)
	}
	if list == nil {
		list = []string{}
	}
	return list, nil
}
