package net

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/eternaldensity/scrapduel/internal/game"
	"github.com/eternaldensity/scrapduel/internal/log"
)

// DefaultPlayerLoadout is used when a new_combat command names no loadout.
const DefaultPlayerLoadout = "Wanderer"

// Server hosts combats over WebSocket. Each connection drives one combat at
// a time through the JSON command protocol.
type Server struct {
	LoadoutFile string
	Logger      *logrus.Logger

	mux *http.ServeMux
}

// NewServer creates a combat server reading loadouts from the given file.
func NewServer(loadoutFile string, logger *logrus.Logger) *Server {
	if logger == nil {
		logger = logrus.New()
	}
	s := &Server{LoadoutFile: loadoutFile, Logger: logger, mux: http.NewServeMux()}
	s.mux.HandleFunc("GET /api/cards", s.handleCards)
	s.mux.HandleFunc("GET /api/loadouts", s.handleLoadouts)
	s.mux.HandleFunc("GET /ws", s.handleWebSocket)
	return s
}

// ListenAndServe blocks serving HTTP on addr until the context is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.mux}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	s.Logger.WithField("addr", addr).Info("combat server listening")

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// handleCards lists the component catalog.
func (s *Server) handleCards(w http.ResponseWriter, r *http.Request) {
	var cards []CardView
	for name, ctor := range game.CardRegistry {
		c := ctor()
		cv := CardView{
			Name:        name,
			Description: c.Description,
			Category:    c.Category.String(),
			MaxHP:       c.MaxHP,
		}
		for i, cond := range c.Slots {
			cv.Slots = append(cv.Slots, SlotView{ID: i, Cond: cond.String()})
		}
		cards = append(cards, cv)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cards)
}

// handleLoadouts lists the loadout file's entries with their card names.
func (s *Server) handleLoadouts(w http.ResponseWriter, r *http.Request) {
	loadouts, err := game.ParseLoadoutFile(s.LoadoutFile)
	if err != nil {
		http.Error(w, "could not read loadout file", http.StatusInternalServerError)
		return
	}

	type loadoutInfo struct {
		Name  string   `json:"name"`
		Cards []string `json:"cards"`
	}
	var out []loadoutInfo
	for name, cards := range loadouts {
		li := loadoutInfo{Name: name}
		seen := make(map[string]bool)
		for _, c := range cards {
			if !seen[c.Name] {
				li.Cards = append(li.Cards, c.Name)
				seen[c.Name] = true
			}
		}
		out = append(out, li)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(out)
}

// wsSession is one connection's combat and write lock. The replay scheduler
// writes concurrently with the command loop, so every write goes through
// send.
type wsSession struct {
	conn   *websocket.Conn
	logger *logrus.Entry

	mu     sync.Mutex // guards combat mutation and writes
	combat *game.Combat
}

func (ws *wsSession) send(ctx context.Context, msg ServerMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return ws.conn.Write(ctx, websocket.MessageText, data)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		InsecureSkipVerify: true,
	})
	if err != nil {
		s.Logger.WithError(err).Warn("websocket accept failed")
		return
	}
	defer conn.CloseNow()

	ctx := r.Context()
	ws := &wsSession{conn: conn, logger: s.Logger.WithField("remote", r.RemoteAddr)}
	ws.logger.Info("client connected")

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			ws.logger.WithError(err).Debug("client disconnected")
			return
		}
		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			_ = ws.send(ctx, errorMessage(fmt.Errorf("malformed command: %w", err)))
			continue
		}
		if err := s.dispatch(ctx, ws, msg); err != nil {
			return
		}
	}
}

// dispatch runs one command against the session's combat. Rule errors go
// back to the client; only transport errors end the connection.
func (s *Server) dispatch(ctx context.Context, ws *wsSession, msg ClientMessage) error {
	if msg.Cmd == "new_combat" {
		return s.newCombat(ctx, ws, msg)
	}

	ws.mu.Lock()
	defer ws.mu.Unlock()
	c := ws.combat
	if c == nil {
		return ws.send(ctx, errorMessage(errors.New("no combat running; send new_combat first")))
	}

	var err error
	switch msg.Cmd {
	case "get_state":
		// No mutation; fall through to the state reply below.
	case "install_card":
		err = c.InstallCard(game.SidePlayer, msg.CardID)
	case "activate_battery":
		err = c.ActivateBattery(game.SidePlayer, msg.CardID)
	case "activate_capacitor":
		err = c.ActivateCapacitor(game.SidePlayer, msg.CardID, msg.SlotID)
	case "activate_cpu":
		err = c.ActivateCPU(game.SidePlayer, msg.CardID)
	case "toggle_cpu_discard":
		err = c.ToggleCPUDiscard(game.SidePlayer, msg.CardID)
	case "select_cpu_target_card":
		err = c.SelectCPUTarget(game.SidePlayer, msg.CardID)
	case "confirm_cpu_ability":
		err = c.ConfirmCPUAbility(game.SidePlayer)
	case "cancel_cpu_ability":
		err = c.CancelCPUAbility(game.SidePlayer)
	case "allocate_die":
		err = c.AllocateDie(game.SidePlayer, msg.DieIndex, msg.CardID, msg.SlotID)
	case "unallocate_die":
		err = c.UnallocateDie(game.SidePlayer, msg.CardID, msg.SlotID)
	case "toggle_scavenge_card":
		err = c.ToggleScavengeCard(msg.CardID)
	case "confirm_scavenge":
		err = c.ConfirmScavenge()
	case "end_turn":
		return s.endTurn(ctx, ws)
	default:
		err = fmt.Errorf("unknown command %q", msg.Cmd)
	}

	if err != nil {
		ws.logger.WithFields(logrus.Fields{"cmd": msg.Cmd, "err": err}).Debug("command rejected")
		return ws.send(ctx, errorMessage(err))
	}
	return s.sendState(ctx, ws)
}

func (s *Server) newCombat(ctx context.Context, ws *wsSession, msg ClientMessage) error {
	loadout := msg.Loadout
	if loadout == "" {
		loadout = DefaultPlayerLoadout
	}
	playerCards, err := game.LoadoutByName(s.LoadoutFile, loadout, 0)
	if err != nil {
		return ws.send(ctx, errorMessage(err))
	}

	var enemyCards []*game.Card
	if msg.Enemy != "" {
		enemyCards, err = game.LoadoutByName(s.LoadoutFile, msg.Enemy, msg.Tier)
	} else {
		_, enemyCards, err = game.LoadoutByNumber(s.LoadoutFile, 2, msg.Tier)
	}
	if err != nil {
		return ws.send(ctx, errorMessage(err))
	}

	c := game.NewCombat(uuid.New(), game.CombatConfig{
		PlayerCards: playerCards,
		EnemyCards:  enemyCards,
		Logger:      log.NewMemoryLogger(),
		Seed:        msg.Seed,
	})
	if err := c.Begin(); err != nil {
		return ws.send(ctx, errorMessage(err))
	}

	ws.logger.WithFields(logrus.Fields{
		"combat":  c.ID,
		"loadout": loadout,
		"tier":    msg.Tier,
	}).Info("combat started")

	ws.mu.Lock()
	defer ws.mu.Unlock()
	ws.combat = c
	return s.sendState(ctx, ws)
}

// endTurn resolves the whole enemy turn atomically, then replays it to the
// client step by step on the engine's pacing before the final state.
func (s *Server) endTurn(ctx context.Context, ws *wsSession) error {
	steps, err := ws.combat.EndTurn()
	if err != nil {
		return ws.send(ctx, errorMessage(err))
	}

	for i, step := range steps {
		if err := ws.send(ctx, ServerMessage{
			Type: "enemy_step",
			Step: ptr(BuildStepView(step, i == len(steps)-1)),
		}); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(step.Delay):
		}
	}
	return s.sendState(ctx, ws)
}

// sendState pushes the current state, or the game-over envelope with the
// surviving deck export once the fight is decided. Callers hold ws.mu.
func (s *Server) sendState(ctx context.Context, ws *wsSession) error {
	c := ws.combat
	if c.Phase == game.PhaseEnded {
		msg := ServerMessage{
			Type:   "game_over",
			State:  BuildStateView(c),
			Result: c.Result.String(),
			Scrap:  c.Player().Resources[game.ResourceScrap],
		}
		if c.Result == game.ResultPlayerWins {
			for _, ci := range c.Player().ExportDeck() {
				msg.Deck = append(msg.Deck, buildCardView(ci, true))
			}
		}
		ws.logger.WithField("result", c.Result).Info("combat over")
		return ws.send(ctx, msg)
	}
	return ws.send(ctx, ServerMessage{Type: "state", State: BuildStateView(c)})
}

func errorMessage(err error) ServerMessage {
	return ServerMessage{Type: "error", Error: BuildErrorView(err)}
}

func ptr[T any](v T) *T { return &v }
