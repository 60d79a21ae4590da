package lcu

import (
	"encoding/json"
	"fmt"
	"time"
)

// MatchData is one game from the LCU match history, reduced to what the
// matchup notebook cares about.
type MatchData struct {
	GameID          int64
	GameCreation    time.Time
	MyChampionID    int
	EnemyChampionID int
	Role            string
	Lane            string
	Win             bool
	QueueID         int
}

type matchHistoryResponse struct {
	Games struct {
		Games []gameRecord `json:"games"`
	} `json:"games"`
}

type gameRecord struct {
	GameID                int64                 `json:"gameId"`
	GameCreation          int64                 `json:"gameCreation"`
	QueueID               int                   `json:"queueId"`
	Participants          []participant         `json:"participants"`
	ParticipantIdentities []participantIdentity `json:"participantIdentities"`
}

type participant struct {
	ParticipantID int `json:"participantId"`
	ChampionID    int `json:"championId"`
	TeamID        int `json:"teamId"`
	Stats         struct {
		Win bool `json:"win"`
	} `json:"stats"`
	Timeline struct {
		Role string `json:"role"`
		Lane string `json:"lane"`
	} `json:"timeline"`
}

type participantIdentity struct {
	ParticipantID int `json:"participantId"`
	Player        struct {
		PUUID string `json:"puuid"`
	} `json:"player"`
}

// GetMatchHistory fetches the current summoner's recent games. puuid
// identifies which participant is ours in each game.
func (c *Client) GetMatchHistory(puuid string, count int) ([]MatchData, error) {
	endpoint := fmt.Sprintf("/lol-match-history/v1/products/lol/current-summoner/matches?begIndex=0&endIndex=%d", count)
	resp, err := c.Get(endpoint)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var history matchHistoryResponse
	if err := json.NewDecoder(resp.Body).Decode(&history); err != nil {
		return nil, fmt.Errorf("failed to parse match history: %w", err)
	}

	var matches []MatchData
	for _, game := range history.Games.Games {
		if data, ok := parseGame(game, puuid); ok {
			matches = append(matches, data)
		}
	}

	return matches, nil
}

// parseGame extracts our participant and the enemy laner from one game.
// Returns false when the player can't be found in the game.
func parseGame(game gameRecord, puuid string) (MatchData, bool) {
	myParticipantID := 0
	for _, identity := range game.ParticipantIdentities {
		if identity.Player.PUUID == puuid {
			myParticipantID = identity.ParticipantID
			break
		}
	}
	if myParticipantID == 0 {
		return MatchData{}, false
	}

	var me *participant
	for i := range game.Participants {
		if game.Participants[i].ParticipantID == myParticipantID {
			me = &game.Participants[i]
			break
		}
	}
	if me == nil {
		return MatchData{}, false
	}

	lane := me.Timeline.Lane
	if lane == "" {
		lane = "NONE"
	}

	// Enemy laner: opposing team, same lane. Falls back to the first
	// opponent when the lane is unknown.
	enemyChampionID := 0
	for _, p := range game.Participants {
		if p.TeamID == me.TeamID {
			continue
		}
		if p.Timeline.Lane == lane || lane == "NONE" {
			enemyChampionID = p.ChampionID
			break
		}
	}

	return MatchData{
		GameID:          game.GameID,
		GameCreation:    time.UnixMilli(game.GameCreation).UTC(),
		MyChampionID:    me.ChampionID,
		EnemyChampionID: enemyChampionID,
		Role:            NormalizeRole(me.Timeline.Role, lane),
		Lane:            lane,
		Win:             me.Stats.Win,
		QueueID:         game.QueueID,
	}, true
}
