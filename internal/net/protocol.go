package net

import (
	"errors"

	"github.com/eternaldensity/scrapduel/internal/game"
	"github.com/eternaldensity/scrapduel/internal/log"
)

// Message types for the JSON protocol over WebSocket.

// --- Client → Server messages ---

// ClientMessage is the envelope for all client-to-server commands.
type ClientMessage struct {
	Cmd string `json:"cmd"`

	// For "new_combat"
	Loadout string `json:"loadout,omitempty"`
	Enemy   string `json:"enemy,omitempty"`
	Tier    int    `json:"tier,omitempty"`
	Seed    int64  `json:"seed,omitempty"`

	// Card/slot/die arguments, shared across commands.
	CardID   int `json:"card_id,omitempty"`
	SlotID   int `json:"slot_id,omitempty"`
	DieIndex int `json:"die_index,omitempty"`
}

// --- Server → Client messages ---

// ServerMessage is the envelope for all server-to-client messages.
type ServerMessage struct {
	Type string `json:"type"` // "state", "enemy_step", "error", "game_over"

	State *StateView `json:"state,omitempty"`

	// For "enemy_step"
	Step *StepView `json:"step,omitempty"`

	// For "error"
	Error *ErrorView `json:"error,omitempty"`

	// For "game_over"
	Result string     `json:"result,omitempty"`
	Deck   []CardView `json:"deck,omitempty"` // surviving deck export
	Scrap  int        `json:"scrap,omitempty"`
}

// ErrorView carries a rejected command's rule error. The combat state is
// unchanged whenever one of these is sent.
type ErrorView struct {
	Kind   string `json:"kind"`
	Code   string `json:"code"`
	Reason string `json:"reason"`
}

// BuildErrorView maps an error to its wire form. Rule errors keep their
// kind and code; anything else reports as a generic validation error.
func BuildErrorView(err error) *ErrorView {
	view := &ErrorView{Kind: "validation", Code: "Unknown", Reason: err.Error()}
	var re *game.RuleError
	if errors.As(err, &re) {
		view.Kind = re.Kind.String()
		view.Code = re.Code.String()
		view.Reason = re.Reason
	}
	return view
}

// StepView is one paced slice of the enemy turn replay.
type StepView struct {
	Description string      `json:"description"`
	Events      []EventView `json:"events"`
	Final       bool        `json:"final"` // last step; the next "state" is authoritative
}

// EventView is a combat event for the client.
type EventView struct {
	Turn    int    `json:"turn"`
	Phase   string `json:"phase"`
	Side    int    `json:"side"`
	Type    string `json:"type"`
	Card    string `json:"card,omitempty"`
	Details string `json:"details"`
}

// StateView is the full combat state from the player's perspective. The
// enemy's hand and deck contents are hidden; the player's own Hidden dice
// are masked.
type StateView struct {
	CombatID string        `json:"combat_id"`
	Turn     int           `json:"turn"`
	Phase    string        `json:"phase"`
	Result   string        `json:"result"`
	You      RobotView     `json:"you"`
	Enemy    RobotView     `json:"enemy"`
	Pending  *AbilityView  `json:"pending,omitempty"`
	Scavenge *ScavengeView `json:"scavenge,omitempty"`
	Attack   *AttackView   `json:"last_attack,omitempty"`
}

// RobotView shows one side of the fight.
type RobotView struct {
	TotalHP   int            `json:"total_hp"`
	MaxHP     int            `json:"max_hp"`
	Plating   int            `json:"plating"`
	Shield    int            `json:"shield"`
	Scrap     int            `json:"scrap"`
	Statuses  map[string]int `json:"statuses,omitempty"`
	HandCount int            `json:"hand_count"`
	Hand      []CardView     `json:"hand,omitempty"` // only for "you"
	Installed []CardView     `json:"installed"`
	Pool      []DieView      `json:"pool,omitempty"`
	DeckCount int            `json:"deck_count"`
	Discard   int            `json:"discard_count"`
	Destroyed int            `json:"destroyed_count"`
}

// CardView describes one card instance.
type CardView struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Category    string     `json:"category"`
	HP          int        `json:"hp,omitempty"`
	MaxHP       int        `json:"max_hp,omitempty"`
	State       string     `json:"state"`
	Charges     int        `json:"charges,omitempty"`
	Slots       []SlotView `json:"slots,omitempty"`
	LastResult  string     `json:"last_result,omitempty"`
}

// SlotView describes a dice slot on an installed card.
type SlotView struct {
	ID     int      `json:"id"`
	Cond   string   `json:"cond,omitempty"`
	Locked bool     `json:"locked,omitempty"`
	Die    *DieView `json:"die,omitempty"`
}

// DieView is a die as shown to the player. A Hidden die belonging to the
// player reports value 0.
type DieView struct {
	Sides  int  `json:"sides"`
	Value  int  `json:"value"`
	Hidden bool `json:"hidden,omitempty"`
}

// AbilityView is the pending CPU targeting sub-state.
type AbilityView struct {
	CPU       string `json:"cpu"`
	Ability   string `json:"ability"`
	Selection []int  `json:"selection,omitempty"`
	Target    int    `json:"target,omitempty"`
}

// ScavengeView is the post-victory loot screen.
type ScavengeView struct {
	Pool     []CardView `json:"pool"`
	Selected []int      `json:"selected,omitempty"`
	Limit    int        `json:"limit"`
	Scrap    int        `json:"scrap"`
}

// AttackView summarizes the most recent weapon hit.
type AttackView struct {
	Weapon     string `json:"weapon"`
	Target     string `json:"target,omitempty"`
	TargetSide int    `json:"target_side"`
	DamageType string `json:"damage_type"`
	Raw        int    `json:"raw"`
	Absorbed   int    `json:"absorbed"`
	Dealt      int    `json:"dealt"`
	Bypassed   bool   `json:"bypassed,omitempty"`
}

// BuildStateView renders the combat for the player's screen. The values of
// the player's own Hidden dice are masked here; the enemy decision logic
// sees everything, so only the display layer masks.
func BuildStateView(c *game.Combat) *StateView {
	sv := &StateView{
		CombatID: c.ID.String(),
		Turn:     c.Turn,
		Phase:    c.Phase.String(),
		Result:   c.Result.String(),
		You:      buildRobotView(c.Player(), true),
		Enemy:    buildRobotView(c.Enemy(), false),
	}

	if p := c.Pending; p != nil {
		sv.Pending = &AbilityView{
			CPU:       p.Card.Card.Name,
			Ability:   p.Ability.Kind.String(),
			Selection: p.HandSelection,
			Target:    p.InstalledTarget,
		}
	}
	if s := c.Scavenge; s != nil {
		view := &ScavengeView{Limit: s.Limit, Scrap: s.Scrap, Selected: s.Selected}
		for _, ci := range s.Pool {
			view.Pool = append(view.Pool, buildCardView(ci, false))
		}
		sv.Scavenge = view
	}
	if a := c.LastAttack; a != nil {
		sv.Attack = &AttackView{
			Weapon:     a.Weapon,
			Target:     a.Target,
			TargetSide: int(a.TargetSide),
			DamageType: a.DamageType.String(),
			Raw:        a.Raw,
			Absorbed:   a.Absorbed,
			Dealt:      a.Dealt,
			Bypassed:   a.Bypassed,
		}
	}
	return sv
}

func buildRobotView(r *game.Robot, owned bool) RobotView {
	rv := RobotView{
		TotalHP:   r.TotalHP(),
		MaxHP:     r.MaxHP(),
		Plating:   r.Plating,
		Shield:    r.Shield,
		Scrap:     r.Resources[game.ResourceScrap],
		HandCount: len(r.Hand),
		DeckCount: len(r.Deck),
		Discard:   len(r.Discard),
		Destroyed: len(r.Destroyed),
	}
	if len(r.Statuses) > 0 {
		rv.Statuses = make(map[string]int, len(r.Statuses))
		for e, n := range r.Statuses {
			rv.Statuses[e.String()] = n
		}
	}
	for _, ci := range r.Installed {
		rv.Installed = append(rv.Installed, buildCardView(ci, owned))
	}
	if owned {
		for _, ci := range r.Hand {
			rv.Hand = append(rv.Hand, buildCardView(ci, owned))
		}
		for _, d := range r.Pool {
			rv.Pool = append(rv.Pool, buildDieView(d, owned))
		}
	}
	return rv
}

// BuildCardView renders a card instance with nothing masked, for surfaces
// where the viewer owns the card.
func BuildCardView(ci *game.CardInstance) CardView {
	return buildCardView(ci, true)
}

func buildCardView(ci *game.CardInstance, owned bool) CardView {
	cv := CardView{
		ID:          ci.ID,
		Name:        ci.Card.Name,
		Description: ci.Card.Description,
		Category:    ci.Card.Category.String(),
		HP:          ci.HP,
		MaxHP:       ci.Card.MaxHP,
		State:       ci.State.String(),
		Charges:     ci.Charges,
		LastResult:  ci.LastResult,
	}
	for _, s := range ci.Slots {
		slotView := SlotView{ID: s.ID, Cond: s.Cond.String(), Locked: s.Locked}
		if s.Die != nil {
			dv := buildDieView(*s.Die, owned)
			slotView.Die = &dv
		}
		cv.Slots = append(cv.Slots, slotView)
	}
	return cv
}

// buildDieView masks the value of a Hidden die on the owning side's screen.
func buildDieView(d game.Die, owned bool) DieView {
	dv := DieView{Sides: d.Sides, Value: d.Value, Hidden: d.Hidden}
	if d.Hidden && owned {
		dv.Value = 0
	}
	return dv
}

// BuildEventView converts a logged event for the wire. Enemy draws are
// redacted so replay streams don't reveal the enemy's hand.
func BuildEventView(ev log.GameEvent) EventView {
	v := EventView{
		Turn:    ev.Turn,
		Phase:   ev.Phase,
		Side:    ev.Side,
		Type:    ev.Type.String(),
		Card:    ev.Card,
		Details: ev.Details,
	}
	if ev.Type == log.EventDraw && ev.Side == int(game.SideEnemy) {
		v.Card = ""
		v.Details = "Enemy draws a card"
	}
	return v
}

// BuildStepView converts an enemy replay step for the wire.
func BuildStepView(step game.EnemyStep, final bool) StepView {
	sv := StepView{Description: step.Description, Final: final, Events: []EventView{}}
	for _, ev := range step.Events {
		sv.Events = append(sv.Events, BuildEventView(ev))
	}
	return sv
}
