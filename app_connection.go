package main

import (
	"fmt"
	"time"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// pollForLeagueClient continuously checks for the League Client
func (a *App) pollForLeagueClient() {
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	wasConnected := false

	// Try immediately on startup
	a.tryConnect()
	if a.lcuClient.IsConnected() {
		wasConnected = true
		a.connectWebSocket()
	}

	for {
		select {
		case <-a.stopPoll:
			return
		case <-ticker.C:
			isConnected := a.lcuClient.IsConnected()

			if isConnected && !wasConnected {
				// Just connected
				wasConnected = true
				a.connectWebSocket()
			} else if !isConnected {
				// If we were connected before, emit disconnect event
				if wasConnected {
					a.wsClient.Disconnect()
					runtime.EventsEmit(a.ctx, "lcu:status", map[string]interface{}{
						"connected": false,
						"message":   "League Disconnected. Waiting...",
					})
					fmt.Println("[LCU] League Disconnected. Waiting for reconnection...")
					wasConnected = false
				}
				// Try to reconnect
				a.tryConnect()
				if a.lcuClient.IsConnected() {
					wasConnected = true
					a.connectWebSocket()
				}
			} else if isConnected && !a.wsClient.IsConnected() {
				// HTTP connected but WebSocket disconnected, try to reconnect WS
				a.connectWebSocket()
			}
		}
	}
}

// connectWebSocket establishes the LCU event socket
func (a *App) connectWebSocket() {
	creds := a.lcuClient.GetCredentials()
	if creds == nil {
		return
	}

	if err := a.wsClient.Connect(creds); err != nil {
		fmt.Printf("[LCU] WebSocket connection failed: %v\n", err)
		return
	}

	fmt.Println("[LCU] WebSocket connected - watching gameflow")
}

// tryConnect attempts to connect to the League Client
func (a *App) tryConnect() {
	if err := a.lcuClient.Connect(); err != nil {
		runtime.EventsEmit(a.ctx, "lcu:status", map[string]interface{}{
			"connected": false,
			"message":   "Waiting for League...",
		})
		return
	}

	// Store the summoner identity for match imports
	if summoner, err := a.lcuClient.GetCurrentSummoner(); err == nil {
		a.currentPUUID = summoner.PUUID
		a.summonerName = summoner.Name()
	}

	runtime.EventsEmit(a.ctx, "lcu:status", map[string]interface{}{
		"connected":    true,
		"message":      "League Connected!",
		"summonerName": a.summonerName,
		"port":         a.lcuClient.GetPort(),
	})

	fmt.Printf("[LCU] League Connected! Port: %s\n", a.lcuClient.GetPort())
}

// onGameflowUpdate handles gameflow phase changes from the event socket.
// When a game ends the frontend is nudged to offer a match import.
func (a *App) onGameflowUpdate(phase string) {
	fmt.Printf("[LCU] Gameflow phase: %s\n", phase)

	runtime.EventsEmit(a.ctx, "gameflow:update", map[string]interface{}{
		"phase": phase,
	})

	if phase == "EndOfGame" {
		runtime.EventsEmit(a.ctx, "match:gameEnded", map[string]interface{}{
			"phase": phase,
		})
	}
}

// ConnectLCU connects to the League client on demand and reports status
func (a *App) ConnectLCU() map[string]interface{} {
	if !a.lcuClient.IsConnected() {
		a.tryConnect()
	}
	return a.GetConnectionStatus()
}

// GetConnectionStatus returns the current LCU connection status
func (a *App) GetConnectionStatus() map[string]interface{} {
	if a.lcuClient.IsConnected() {
		return map[string]interface{}{
			"connected":    true,
			"message":      "League Connected!",
			"summonerName": a.summonerName,
			"port":         a.lcuClient.GetPort(),
		}
	}
	return map[string]interface{}{
		"connected": false,
		"message":   "Waiting for League...",
	}
}
