package lcu

import (
	"fmt"
	"net/http"
	"testing"
	"time"
)

func fixtureGame() gameRecord {
	var g gameRecord
	g.GameID = 7001
	g.GameCreation = time.Date(2025, 4, 1, 19, 30, 0, 0, time.UTC).UnixMilli()
	g.QueueID = 420

	me := participant{ParticipantID: 1, ChampionID: 122, TeamID: 100}
	me.Stats.Win = true
	me.Timeline.Role = "SOLO"
	me.Timeline.Lane = "TOP"

	ally := participant{ParticipantID: 2, ChampionID: 64, TeamID: 100}
	ally.Timeline.Lane = "JUNGLE"

	enemyJungler := participant{ParticipantID: 6, ChampionID: 121, TeamID: 200}
	enemyJungler.Timeline.Lane = "JUNGLE"

	enemyLaner := participant{ParticipantID: 7, ChampionID: 86, TeamID: 200}
	enemyLaner.Timeline.Lane = "TOP"

	g.Participants = []participant{me, ally, enemyJungler, enemyLaner}

	var id1, id7 participantIdentity
	id1.ParticipantID = 1
	id1.Player.PUUID = "my-puuid"
	id7.ParticipantID = 7
	id7.Player.PUUID = "enemy-puuid"
	g.ParticipantIdentities = []participantIdentity{id1, id7}

	return g
}

func TestParseGame(t *testing.T) {
	data, ok := parseGame(fixtureGame(), "my-puuid")
	if !ok {
		t.Fatal("parseGame should find the player")
	}

	if data.GameID != 7001 {
		t.Errorf("game id = %d", data.GameID)
	}
	if data.MyChampionID != 122 {
		t.Errorf("my champion = %d, want 122", data.MyChampionID)
	}
	if data.EnemyChampionID != 86 {
		t.Errorf("enemy champion = %d, want 86 (same-lane opponent)", data.EnemyChampionID)
	}
	if !data.Win {
		t.Error("expected a win")
	}
	if data.Role != "top" {
		t.Errorf("role = %q, want top", data.Role)
	}
	if !data.GameCreation.Equal(time.Date(2025, 4, 1, 19, 30, 0, 0, time.UTC)) {
		t.Errorf("game creation = %v", data.GameCreation)
	}
}

func TestParseGame_PlayerNotInGame(t *testing.T) {
	if _, ok := parseGame(fixtureGame(), "someone-else"); ok {
		t.Error("parseGame should fail for an unknown puuid")
	}
}

func TestParseGame_UnknownLaneFallsBackToFirstOpponent(t *testing.T) {
	g := fixtureGame()
	g.Participants[0].Timeline.Lane = ""
	g.Participants[0].Timeline.Role = "NONE"

	data, ok := parseGame(g, "my-puuid")
	if !ok {
		t.Fatal("parseGame should still find the player")
	}
	if data.EnemyChampionID != 121 {
		t.Errorf("enemy champion = %d, want first opponent 121", data.EnemyChampionID)
	}
}

func TestGetMatchHistory(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/lol-summoner/v1/current-summoner", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"displayName":"TestSummoner","puuid":"my-puuid"}`)
	})
	mux.HandleFunc("/lol-match-history/v1/products/lol/current-summoner/matches", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"games": {
				"games": [{
					"gameId": 7001,
					"gameCreation": 1743535800000,
					"queueId": 420,
					"participants": [
						{"participantId": 1, "championId": 122, "teamId": 100,
						 "stats": {"win": false},
						 "timeline": {"role": "SOLO", "lane": "TOP"}},
						{"participantId": 6, "championId": 86, "teamId": 200,
						 "stats": {"win": true},
						 "timeline": {"role": "SOLO", "lane": "TOP"}}
					],
					"participantIdentities": [
						{"participantId": 1, "player": {"puuid": "my-puuid"}}
					]
				}]
			}
		}`)
	})

	c := fakeLCU(t, mux)
	if err := c.Connect(); err != nil {
		t.Fatalf("Connect failed: %v", err)
	}

	matches, err := c.GetMatchHistory("my-puuid", 20)
	if err != nil {
		t.Fatalf("GetMatchHistory failed: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}

	m := matches[0]
	if m.MyChampionID != 122 || m.EnemyChampionID != 86 {
		t.Errorf("champions = %d vs %d", m.MyChampionID, m.EnemyChampionID)
	}
	if m.Win {
		t.Error("expected a loss")
	}
	if m.Role != "top" {
		t.Errorf("role = %q", m.Role)
	}
}
