package manager

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// GameState is the game lifecycle state. Transitions out of StateInGame are
// one-way: once a terminal state is reached the simulation and input handling
// stop for good.
type GameState int

const (
	StateInGame GameState = iota
	// StateGameOver is entered on a wall or self collision.
	StateGameOver
	// StateWon is the stalemate terminal state: the snake covers the whole
	// board and no food can be placed.
	StateWon
)

func (s GameState) String() string {
	switch s {
	case StateGameOver:
		return "game over"
	case StateWon:
		return "won"
	default:
		return "in game"
	}
}

// Terminal reports whether the state admits no further simulation.
func (s GameState) Terminal() bool {
	return s != StateInGame
}

// SessionStats is the JSON document written when a session ends. HighScore and
// ScoreHistory carry over between runs; everything else describes the session
// that just finished.
type SessionStats struct {
	UUID         string    `json:"uuid"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Score        int       `json:"score"`
	EndCause     string    `json:"end_cause"`
	HighScore    int       `json:"high_score"`
	ScoreHistory []int     `json:"score_history"`
}

type StateManager struct {
	state        GameState
	sessionID    string
	startTime    time.Time
	statsPath    string
	highScore    int
	scoreHistory []int
}

// NewStateManager starts a session in StateInGame and loads high score and
// score history left behind by previous runs. A missing or unreadable stats
// file just means a fresh history.
func NewStateManager(statsPath string) *StateManager {
	sm := &StateManager{
		state:     StateInGame,
		sessionID: uuid.New().String(),
		startTime: time.Now(),
		statsPath: statsPath,
	}
	sm.loadStats()
	return sm
}

func (sm *StateManager) State() GameState {
	return sm.state
}

func (sm *StateManager) HighScore() int {
	return sm.highScore
}

func (sm *StateManager) ScoreHistory() []int {
	return sm.scoreHistory
}

// Transition moves the machine into a terminal state. It fires exactly once;
// later calls, and attempts to transition back to StateInGame, are ignored.
func (sm *StateManager) Transition(target GameState) {
	if sm.state != StateInGame || target == StateInGame {
		return
	}
	sm.state = target
}

// RecordScore folds a finished session's score into the running history.
func (sm *StateManager) RecordScore(score int) {
	if score > sm.highScore {
		sm.highScore = score
	}
	sm.scoreHistory = append(sm.scoreHistory, score)
}

// SaveStats writes the session document, creating the data directory on first
// use.
func (sm *StateManager) SaveStats(score int, endCause string) error {
	stats := SessionStats{
		UUID:         sm.sessionID,
		StartTime:    sm.startTime,
		EndTime:      time.Now(),
		Score:        score,
		EndCause:     endCause,
		HighScore:    sm.highScore,
		ScoreHistory: sm.scoreHistory,
	}

	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal stats: %w", err)
	}
	if dir := filepath.Dir(sm.statsPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create stats dir: %w", err)
		}
	}
	if err := os.WriteFile(sm.statsPath, data, 0644); err != nil {
		return fmt.Errorf("write stats: %w", err)
	}
	return nil
}

func (sm *StateManager) loadStats() {
	data, err := os.ReadFile(sm.statsPath)
	if err != nil {
		return
	}
	var stats SessionStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return
	}
	sm.highScore = stats.HighScore
	sm.scoreHistory = stats.ScoreHistory
}
