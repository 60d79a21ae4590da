package matchup

import "time"

// MatchResult is the outcome of an imported game.
type MatchResult string

const (
	ResultWin  MatchResult = "win"
	ResultLoss MatchResult = "loss"
)

// Match is a single game imported from the League client's match
// history. LinkedMatchup is an informational back-reference to a Matchup
// id; empty means unlinked.
type Match struct {
	ID            string      `json:"id"`
	GameID        string      `json:"game_id,omitempty"`
	Date          time.Time   `json:"date"`
	MyChampion    string      `json:"my_champion"`
	EnemyChampion string      `json:"enemy_champion"`
	Role          string      `json:"role"`
	Result        MatchResult `json:"result"`
	Notes         string      `json:"notes"`
	LinkedMatchup string      `json:"linked_matchup,omitempty"`
}

// MatchUpdate carries the editable match fields. Nil means leave the
// field alone; an empty LinkedMatchup clears the link.
type MatchUpdate struct {
	Notes         *string `json:"notes"`
	LinkedMatchup *string `json:"linked_matchup"`
}
