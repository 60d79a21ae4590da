package main

import (
	"context"
	"fmt"

	"github.com/javiomaster211/matchup-helper/internal/config"
	"github.com/javiomaster211/matchup-helper/internal/lcu"
	"github.com/javiomaster211/matchup-helper/internal/store"
)

// App struct
type App struct {
	ctx          context.Context
	cfg          *config.Config
	store        *store.Store
	lcuClient    *lcu.Client
	wsClient     *lcu.WebSocketClient
	champions    *lcu.ChampionRegistry
	stopPoll     chan struct{}
	currentPUUID string
	summonerName string
}

// NewApp creates a new App application struct
func NewApp() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	dbPath, err := cfg.DBPath()
	if err != nil {
		return nil, err
	}

	st, err := store.New(dbPath)
	if err != nil {
		return nil, err
	}

	return &App{
		cfg:       cfg,
		store:     st,
		lcuClient: lcu.NewClient(cfg.LockfilePath),
		wsClient:  lcu.NewWebSocketClient(),
		champions: lcu.NewChampionRegistry(cfg.DataDragonURL),
		stopPoll:  make(chan struct{}),
	}, nil
}

// startup is called when the app starts
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx

	// Load champion names from Data Dragon in the background
	go func() {
		if err := a.champions.Load(); err != nil {
			fmt.Printf("[DDragon] Failed to load champions: %v\n", err)
		}
	}()

	// Watch for game state changes
	a.wsClient.SetPhaseHandler(a.onGameflowUpdate)

	// Start polling for the League Client
	go a.pollForLeagueClient()
}

// shutdown is called when the app is closing
func (a *App) shutdown(ctx context.Context) {
	close(a.stopPoll)
	a.wsClient.Disconnect()
	a.lcuClient.Disconnect()
	if err := a.store.Close(); err != nil {
		fmt.Printf("[Store] Failed to close: %v\n", err)
	}
}
