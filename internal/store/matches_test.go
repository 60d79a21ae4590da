package store

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/javiomaster211/matchup-helper/internal/matchup"
)

func testMatch(gameID string, date time.Time) *matchup.Match {
	return &matchup.Match{
		ID:            uuid.New().String(),
		GameID:        gameID,
		Date:          date,
		MyChampion:    "Darius",
		EnemyChampion: "Garen",
		Role:          "top",
		Result:        matchup.ResultWin,
	}
}

func TestInsertAndListMatches(t *testing.T) {
	s := testStore(t)

	older := testMatch("1001", time.Date(2025, 3, 1, 18, 0, 0, 0, time.UTC))
	newer := testMatch("1002", time.Date(2025, 3, 2, 20, 0, 0, 0, time.UTC))

	if err := s.InsertMatch(older); err != nil {
		t.Fatalf("InsertMatch failed: %v", err)
	}
	if err := s.InsertMatch(newer); err != nil {
		t.Fatalf("InsertMatch failed: %v", err)
	}

	matches, err := s.ListMatches()
	if err != nil {
		t.Fatalf("ListMatches failed: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if matches[0].GameID != "1002" {
		t.Errorf("expected newest first, got game %s", matches[0].GameID)
	}
	if matches[0].Result != matchup.ResultWin {
		t.Errorf("result = %q", matches[0].Result)
	}
}

func TestHasGameID(t *testing.T) {
	s := testStore(t)

	if err := s.InsertMatch(testMatch("2001", time.Now().UTC())); err != nil {
		t.Fatalf("InsertMatch failed: %v", err)
	}

	exists, err := s.HasGameID("2001")
	if err != nil {
		t.Fatalf("HasGameID failed: %v", err)
	}
	if !exists {
		t.Error("expected game 2001 to exist")
	}

	exists, err = s.HasGameID("9999")
	if err != nil {
		t.Fatalf("HasGameID failed: %v", err)
	}
	if exists {
		t.Error("game 9999 should not exist")
	}
}

func TestUpdateMatch(t *testing.T) {
	s := testStore(t)

	m := testMatch("3001", time.Now().UTC())
	if err := s.InsertMatch(m); err != nil {
		t.Fatalf("InsertMatch failed: %v", err)
	}

	notes := "ganked at 6, lost lane"
	link := "some-matchup-id"
	got, err := s.UpdateMatch(m.ID, matchup.MatchUpdate{Notes: &notes, LinkedMatchup: &link})
	if err != nil {
		t.Fatalf("UpdateMatch failed: %v", err)
	}
	if got.Notes != notes || got.LinkedMatchup != link {
		t.Errorf("update not applied: %+v", got)
	}

	// Nil fields leave values alone
	got, err = s.UpdateMatch(m.ID, matchup.MatchUpdate{})
	if err != nil {
		t.Fatalf("UpdateMatch failed: %v", err)
	}
	if got.Notes != notes || got.LinkedMatchup != link {
		t.Errorf("no-op update changed fields: %+v", got)
	}

	// Empty link clears it
	empty := ""
	got, err = s.UpdateMatch(m.ID, matchup.MatchUpdate{LinkedMatchup: &empty})
	if err != nil {
		t.Fatalf("UpdateMatch failed: %v", err)
	}
	if got.LinkedMatchup != "" {
		t.Errorf("expected link cleared, got %q", got.LinkedMatchup)
	}

	loaded, err := s.GetMatch(m.ID)
	if err != nil {
		t.Fatalf("GetMatch failed: %v", err)
	}
	if loaded.LinkedMatchup != "" || loaded.Notes != notes {
		t.Errorf("persisted state wrong: %+v", loaded)
	}
}

func TestUpdateMatch_NotFound(t *testing.T) {
	s := testStore(t)
	if _, err := s.UpdateMatch("missing", matchup.MatchUpdate{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}
