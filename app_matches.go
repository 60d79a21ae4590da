package main

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/wailsapp/wails/v2/pkg/runtime"

	"github.com/javiomaster211/matchup-helper/internal/matchup"
)

// GetMatches returns all imported matches, newest first
func (a *App) GetMatches() ([]matchup.Match, error) {
	return a.store.ListMatches()
}

// UpdateMatch edits a match's notes or its matchup link
func (a *App) UpdateMatch(id string, update matchup.MatchUpdate) (*matchup.Match, error) {
	return a.store.UpdateMatch(id, update)
}

// ImportMatches pulls recent games from the League client and stores the
// ones not seen before. Returns the newly imported matches.
func (a *App) ImportMatches(count int) ([]matchup.Match, error) {
	if !a.lcuClient.IsConnected() {
		return nil, fmt.Errorf("not connected to League client")
	}

	if count <= 0 {
		count = a.cfg.ImportCount
	}

	puuid := a.currentPUUID
	if puuid == "" {
		summoner, err := a.lcuClient.GetCurrentSummoner()
		if err != nil {
			return nil, fmt.Errorf("failed to get summoner: %w", err)
		}
		puuid = summoner.PUUID
		a.currentPUUID = puuid
	}

	history, err := a.lcuClient.GetMatchHistory(puuid, count)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch match history: %w", err)
	}

	imported := make([]matchup.Match, 0, len(history))
	for _, game := range history {
		gameID := strconv.FormatInt(game.GameID, 10)

		exists, err := a.store.HasGameID(gameID)
		if err != nil {
			return nil, err
		}
		if exists {
			continue
		}

		result := matchup.ResultLoss
		if game.Win {
			result = matchup.ResultWin
		}

		enemy := "Unknown"
		if game.EnemyChampionID > 0 {
			enemy = a.champions.GetName(game.EnemyChampionID)
		}

		m := matchup.Match{
			ID:            uuid.New().String(),
			GameID:        gameID,
			Date:          game.GameCreation,
			MyChampion:    a.champions.GetName(game.MyChampionID),
			EnemyChampion: enemy,
			Role:          game.Role,
			Result:        result,
		}

		if err := a.store.InsertMatch(&m); err != nil {
			return nil, err
		}
		imported = append(imported, m)
	}

	fmt.Printf("[Import] %d new matches (%d fetched)\n", len(imported), len(history))

	if a.ctx != nil && len(imported) > 0 {
		runtime.EventsEmit(a.ctx, "matches:imported", map[string]interface{}{
			"count": len(imported),
		})
	}

	return imported, nil
}
