package game

import (
	"testing"

	"github.com/google/uuid"

	"github.com/eternaldensity/scrapduel/internal/log"
)

// newTestCombat builds a deterministic fight and runs the opening draw phase.
// Decks are dealt in order with no shuffle: the LAST card of each slice sits
// on top of the deck and is drawn first.
func newTestCombat(t *testing.T, playerCards, enemyCards []*Card) *Combat {
	t.Helper()
	c := NewCombat(uuid.New(), CombatConfig{
		PlayerCards: playerCards,
		EnemyCards:  enemyCards,
		Logger:      log.NewMemoryLogger(),
		Seed:        7,
		NoShuffle:   true,
	})
	if err := c.Begin(); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	return c
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func mustCode(t *testing.T, err error, code Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with code %v, got nil", code)
	}
	if ErrCode(err) != code {
		t.Fatalf("expected code %v, got %v (%v)", code, ErrCode(err), err)
	}
}

// findHand locates a hand card by name.
func findHand(t *testing.T, r *Robot, name string) *CardInstance {
	t.Helper()
	for _, ci := range r.Hand {
		if ci.Card.Name == name {
			return ci
		}
	}
	t.Fatalf("%s not in %s hand", name, r.Side)
	return nil
}

// findInstalled locates an installed card by name.
func findInstalled(t *testing.T, r *Robot, name string) *CardInstance {
	t.Helper()
	for _, ci := range r.Installed {
		if ci.Card.Name == name {
			return ci
		}
	}
	t.Fatalf("%s not installed on %s", name, r.Side)
	return nil
}

// install moves a named card from the side's hand into play.
func install(t *testing.T, c *Combat, side Side, name string) *CardInstance {
	t.Helper()
	card := findHand(t, c.Robots[side], name)
	must(t, c.InstallCard(side, card.ID))
	return card
}

// givePool replaces the robot's dice pool with fixed d6 values, sidestepping
// the RNG for allocation tests.
func givePool(r *Robot, values ...int) {
	r.Pool = r.Pool[:0]
	for _, v := range values {
		r.Pool = append(r.Pool, Die{Sides: 6, Value: v})
	}
}

// memLog exposes the combat's in-memory event log.
func memLog(t *testing.T, c *Combat) *log.MemoryLogger {
	t.Helper()
	ml, ok := c.Logger.(*log.MemoryLogger)
	if !ok {
		t.Fatalf("combat logger is not a MemoryLogger")
	}
	return ml
}

// checkZoneCompleteness verifies every card a robot owns sits in exactly the
// zone that holds it.
func checkZoneCompleteness(t *testing.T, r *Robot) {
	t.Helper()
	zones := map[ZoneType][]*CardInstance{
		ZoneDeck:      r.Deck,
		ZoneHand:      r.Hand,
		ZoneInstalled: r.Installed,
		ZoneDiscard:   r.Discard,
		ZoneDestroyed: r.Destroyed,
	}
	seen := make(map[int]ZoneType)
	for zone, cards := range zones {
		for _, ci := range cards {
			if prev, dup := seen[ci.ID]; dup {
				t.Fatalf("%s card %d (%s) in both %v and %v", r.Side, ci.ID, ci.Card.Name, prev, zone)
			}
			seen[ci.ID] = zone
			if ci.Zone != zone {
				t.Fatalf("%s card %d (%s) in %v list but tagged %v", r.Side, ci.ID, ci.Card.Name, zone, ci.Zone)
			}
		}
	}
}
