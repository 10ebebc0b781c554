package mcp

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/eternaldensity/scrapduel/internal/game"
	"github.com/eternaldensity/scrapduel/internal/log"
	scrapnet "github.com/eternaldensity/scrapduel/internal/net"
)

// ToolResponse is the JSON envelope returned by all MCP tools.
type ToolResponse struct {
	Events    []scrapnet.EventView `json:"events"`
	State     *scrapnet.StateView  `json:"state,omitempty"`
	EnemyTurn []scrapnet.StepView  `json:"enemy_turn,omitempty"`
	GameOver  bool                 `json:"game_over"`
	Result    string               `json:"result,omitempty"`
	Scrap     int                  `json:"scrap,omitempty"`
	Deck      []scrapnet.CardView  `json:"deck,omitempty"` // surviving deck export on victory
	RuleError *scrapnet.ErrorView  `json:"rule_error,omitempty"`
}

// CombatSession holds the state of a single MCP combat session.
type CombatSession struct {
	mu      sync.Mutex
	combat  *game.Combat
	logger  *log.MemoryLogger
	lastSeq int // events up to here have already been reported
}

// NewCombatSession starts a combat between the named loadouts.
func NewCombatSession(loadoutsFile, loadout, enemy string, tier int, seed int64) (*CombatSession, error) {
	playerCards, err := game.LoadoutByName(loadoutsFile, loadout, 0)
	if err != nil {
		return nil, fmt.Errorf("load player loadout: %w", err)
	}

	var enemyCards []*game.Card
	if enemy != "" {
		enemyCards, err = game.LoadoutByName(loadoutsFile, enemy, tier)
	} else {
		_, enemyCards, err = game.LoadoutByNumber(loadoutsFile, 2, tier)
	}
	if err != nil {
		return nil, fmt.Errorf("load enemy loadout: %w", err)
	}

	logger := log.NewMemoryLogger()
	c := game.NewCombat(uuid.New(), game.CombatConfig{
		PlayerCards: playerCards,
		EnemyCards:  enemyCards,
		Logger:      logger,
		Seed:        seed,
	})
	if err := c.Begin(); err != nil {
		return nil, fmt.Errorf("begin combat: %w", err)
	}
	return &CombatSession{combat: c, logger: logger}, nil
}

// drainEvents returns the events logged since the previous drain. Callers
// hold s.mu.
func (s *CombatSession) drainEvents() []scrapnet.EventView {
	events := []scrapnet.EventView{}
	for _, ev := range s.logger.Events() {
		if ev.Seq > s.lastSeq {
			events = append(events, scrapnet.BuildEventView(ev))
			s.lastSeq = ev.Seq
		}
	}
	return events
}

// respond builds the standard tool response for the current state: the
// events the command produced plus the fresh state view. On game over the
// response carries the result, banked scrap, and the surviving deck.
func (s *CombatSession) respond(steps []game.EnemyStep) *ToolResponse {
	resp := &ToolResponse{
		Events: s.drainEvents(),
		State:  scrapnet.BuildStateView(s.combat),
	}
	for i, step := range steps {
		resp.EnemyTurn = append(resp.EnemyTurn, scrapnet.BuildStepView(step, i == len(steps)-1))
	}
	if s.combat.Phase == game.PhaseEnded {
		resp.GameOver = true
		resp.Result = s.combat.Result.String()
		resp.Scrap = s.combat.Player().Resources[game.ResourceScrap]
		if s.combat.Result == game.ResultPlayerWins {
			for _, ci := range s.combat.Player().ExportDeck() {
				resp.Deck = append(resp.Deck, scrapnet.BuildCardView(ci))
			}
		}
	}
	return resp
}

// respondJSON marshals a ToolResponse to a JSON string.
func respondJSON(resp *ToolResponse) string {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Sprintf(`{"error": "marshal error: %v"}`, err)
	}
	return string(data)
}
