package log

import (
	"fmt"
	"io"
	"strings"
)

// EventLogger is the interface for logging combat events.
type EventLogger interface {
	Log(event GameEvent)
	Events() []GameEvent
}

// --- MemoryLogger: stores events in memory for test assertions ---

type MemoryLogger struct {
	events []GameEvent
	seq    int
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(event GameEvent) {
	l.seq++
	event.Seq = l.seq
	l.events = append(l.events, event)
}

func (l *MemoryLogger) Events() []GameEvent {
	return l.events
}

// EventsOfType returns all events matching the given type.
func (l *MemoryLogger) EventsOfType(t EventType) []GameEvent {
	var result []GameEvent
	for _, e := range l.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// LastEvent returns the most recent event, or a zero event if none.
func (l *MemoryLogger) LastEvent() GameEvent {
	if len(l.events) == 0 {
		return GameEvent{}
	}
	return l.events[len(l.events)-1]
}

// --- TextLogger: writes human-readable lines to an io.Writer ---

type TextLogger struct {
	MemoryLogger
	w io.Writer
}

func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w}
}

func (l *TextLogger) Log(event GameEvent) {
	l.MemoryLogger.Log(event)
	fmt.Fprintln(l.w, FormatEvent(event))
}

// --- Formatting ---

// sideName returns "Player" or "Enemy" for display.
func sideName(s int) string {
	if s == 0 {
		return "Player"
	}
	return "Enemy"
}

// FormatEvent formats a single event as a human-readable line.
func FormatEvent(e GameEvent) string {
	phase := e.Phase
	// Pad phase to 16 chars for alignment
	for len(phase) < 16 {
		phase += " "
	}
	return fmt.Sprintf("T%-2d %s| %s", e.Turn, phase, e.Details)
}

// FormatAll formats all events as a multi-line string.
func FormatAll(events []GameEvent) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(FormatEvent(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// --- Helper constructors for common events ---

func NewTurnEvent(turn, side int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "Draw Phase",
		Side:    side,
		Type:    EventNewTurn,
		Details: fmt.Sprintf("=== Turn %d ===", turn),
	}
}

func NewPhaseChangeEvent(turn int, phase string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Type:    EventPhaseChange,
		Details: fmt.Sprintf("Phase → %s", phase),
	}
}

func NewDrawEvent(turn int, phase string, side int, cardName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Side:    side,
		Type:    EventDraw,
		Card:    cardName,
		Details: fmt.Sprintf("%s draws %s", sideName(side), cardName),
	}
}

func NewRollEvent(turn int, phase string, side int, cardName, rolled string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Side:    side,
		Type:    EventRoll,
		Card:    cardName,
		Details: fmt.Sprintf("%s rolls %s from %s", sideName(side), rolled, cardName),
	}
}

func NewAllocateEvent(turn int, phase string, side, value int, cardName string, slot int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Side:    side,
		Type:    EventAllocate,
		Card:    cardName,
		Details: fmt.Sprintf("%s slots a %d into %s (slot %d)", sideName(side), value, cardName, slot+1),
	}
}

func NewUnallocateEvent(turn int, phase string, side int, cardName string, slot int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Side:    side,
		Type:    EventUnallocate,
		Card:    cardName,
		Details: fmt.Sprintf("%s takes back the die from %s (slot %d)", sideName(side), cardName, slot+1),
	}
}

func NewActivateEvent(turn int, phase string, side int, cardName, result string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Side:    side,
		Type:    EventActivate,
		Card:    cardName,
		Details: fmt.Sprintf("%s activates %s: %s", sideName(side), cardName, result),
	}
}

func NewDamageEvent(turn int, phase string, side int, targetCard string, amount int, dmgType string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Side:    side,
		Type:    EventDamage,
		Card:    targetCard,
		Details: fmt.Sprintf("%d %s damage hits %s", amount, dmgType, targetCard),
	}
}

func NewDefenseEvent(turn int, phase string, side int, cardName string, amount int, pool string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Side:    side,
		Type:    EventDefense,
		Card:    cardName,
		Details: fmt.Sprintf("%s gains %d %s from %s", sideName(side), amount, pool, cardName),
	}
}

func NewStatusAppliedEvent(turn int, phase string, side int, status string, stacks int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Side:    side,
		Type:    EventStatusApplied,
		Details: fmt.Sprintf("%s is %s %d", sideName(side), status, stacks),
	}
}

func NewStatusDecayEvent(turn int, phase string, side int, status string, remaining int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Side:    side,
		Type:    EventStatusDecay,
		Details: fmt.Sprintf("%s %s fades (%d left)", sideName(side), status, remaining),
	}
}

func NewCardDamagedEvent(turn int, phase string, side int, cardName string, hp, maxHP int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Side:    side,
		Type:    EventCardDamaged,
		Card:    cardName,
		Details: fmt.Sprintf("%s is damaged (%d/%d HP)", cardName, hp, maxHP),
	}
}

func NewDestroyEvent(turn int, phase string, side int, cardName, reason string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Side:    side,
		Type:    EventDestroy,
		Card:    cardName,
		Details: fmt.Sprintf("%s is destroyed (%s)", cardName, reason),
	}
}

func NewMalfunctionEvent(turn int, phase string, side int, cardName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Side:    side,
		Type:    EventMalfunction,
		Card:    cardName,
		Details: fmt.Sprintf("%s sparks and fizzles (malfunction)", cardName),
	}
}

func NewRustDamageEvent(turn int, phase string, side int, cardName string, amount int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Side:    side,
		Type:    EventRustDamage,
		Card:    cardName,
		Details: fmt.Sprintf("rust eats %d HP from %s", amount, cardName),
	}
}

func NewBlazingBurnEvent(turn int, phase string, side int, cardName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Side:    side,
		Type:    EventBlazingBurn,
		Card:    cardName,
		Details: fmt.Sprintf("a blazing die scorches %s for 1", cardName),
	}
}

func NewFusedLockEvent(turn int, phase string, side int, cardName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Side:    side,
		Type:    EventFusedLock,
		Card:    cardName,
		Details: fmt.Sprintf("%s is drawn with fused slots", cardName),
	}
}

func NewFusedChargeEvent(turn int, phase string, side int, cardName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Side:    side,
		Type:    EventFusedCharge,
		Card:    cardName,
		Details: fmt.Sprintf("%s absorbs the fuse as a free charge", cardName),
	}
}

func NewAbilitySelectedEvent(turn int, phase string, side int, cardName, ability string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Side:    side,
		Type:    EventAbilitySelected,
		Card:    cardName,
		Details: fmt.Sprintf("%s primes %s (%s)", sideName(side), cardName, ability),
	}
}

func NewAbilityConfirmedEvent(turn int, phase string, side int, cardName, result string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Side:    side,
		Type:    EventAbilityConfirmed,
		Card:    cardName,
		Details: fmt.Sprintf("%s resolves %s: %s", sideName(side), cardName, result),
	}
}

func NewAbilityCancelledEvent(turn int, phase string, side int, cardName string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Side:    side,
		Type:    EventAbilityCancelled,
		Card:    cardName,
		Details: fmt.Sprintf("%s cancels %s", sideName(side), cardName),
	}
}

func NewScavengeToggleEvent(turn int, side int, cardName string, selected bool) GameEvent {
	verb := "marks"
	if !selected {
		verb = "unmarks"
	}
	return GameEvent{
		Turn:    turn,
		Phase:   "Scavenging",
		Side:    side,
		Type:    EventScavengeToggle,
		Card:    cardName,
		Details: fmt.Sprintf("%s %s %s for scavenge", sideName(side), verb, cardName),
	}
}

func NewScavengeConfirmEvent(turn, side, cards, scrap int) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   "Scavenging",
		Side:    side,
		Type:    EventScavengeConfirm,
		Details: fmt.Sprintf("%s scavenges %d card(s) and %d scrap", sideName(side), cards, scrap),
	}
}

func NewWinEvent(turn int, phase string, winner int, reason string) GameEvent {
	return GameEvent{
		Turn:    turn,
		Phase:   phase,
		Side:    winner,
		Type:    EventWin,
		Details: fmt.Sprintf("%s wins! (%s)", sideName(winner), reason),
	}
}
