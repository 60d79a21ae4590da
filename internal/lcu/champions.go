package lcu

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// ChampionData holds one champion entry from Data Dragon
type ChampionData struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
}

// ChampionInfo holds champion name and icon ID
type ChampionInfo struct {
	Name   string // Display name (e.g., "Ahri")
	IconID string // Icon ID for Data Dragon (e.g., "Ahri")
}

// ChampionRegistry holds the champion ID to name mapping
type ChampionRegistry struct {
	baseURL   string
	champions map[int]ChampionInfo
	version   string
	mu        sync.RWMutex
	loaded    bool
}

// NewChampionRegistry creates a new champion registry fetching from the
// given Data Dragon base URL
func NewChampionRegistry(baseURL string) *ChampionRegistry {
	return &ChampionRegistry{
		baseURL:   baseURL,
		champions: make(map[int]ChampionInfo),
	}
}

// Load fetches champion data from Data Dragon
func (r *ChampionRegistry) Load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	client := &http.Client{Timeout: 10 * time.Second}

	// Get latest version
	versionsResp, err := client.Get(r.baseURL + "/api/versions.json")
	if err != nil {
		return fmt.Errorf("failed to fetch versions: %w", err)
	}
	defer versionsResp.Body.Close()

	var versions []string
	if err := json.NewDecoder(versionsResp.Body).Decode(&versions); err != nil {
		return fmt.Errorf("failed to parse versions: %w", err)
	}

	if len(versions) == 0 {
		return fmt.Errorf("no versions available")
	}

	latestVersion := versions[0]

	// Get champion data
	champURL := fmt.Sprintf("%s/cdn/%s/data/en_US/champion.json", r.baseURL, latestVersion)
	champResp, err := client.Get(champURL)
	if err != nil {
		return fmt.Errorf("failed to fetch champions: %w", err)
	}
	defer champResp.Body.Close()

	var champData struct {
		Data map[string]ChampionData `json:"data"`
	}
	if err := json.NewDecoder(champResp.Body).Decode(&champData); err != nil {
		return fmt.Errorf("failed to parse champions: %w", err)
	}

	// Build ID -> ChampionInfo map
	for id, champ := range champData.Data {
		key, err := strconv.Atoi(champ.Key)
		if err != nil {
			continue
		}
		r.champions[key] = ChampionInfo{
			Name:   champ.Name,
			IconID: id, // The map key is the icon ID (e.g., "Ahri", "MonkeyKing")
		}
	}

	r.version = latestVersion
	r.loaded = true
	fmt.Printf("[DDragon] Loaded %d champions (v%s)\n", len(r.champions), latestVersion)
	return nil
}

// GetName returns the champion name for a given ID
func (r *ChampionRegistry) GetName(id int) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if info, ok := r.champions[id]; ok {
		return info.Name
	}
	return fmt.Sprintf("Champion%d", id)
}

// GetIconURL returns the Data Dragon icon URL for a given champion ID
func (r *ChampionRegistry) GetIconURL(id int) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if info, ok := r.champions[id]; ok {
		return fmt.Sprintf("%s/cdn/%s/img/champion/%s.png", r.baseURL, r.version, info.IconID)
	}
	return ""
}

// IsLoaded returns whether the registry has been loaded
func (r *ChampionRegistry) IsLoaded() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loaded
}
