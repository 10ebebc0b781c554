package game

import "testing"

// winFight drives the player to victory over a one-chassis enemy.
func winFight(t *testing.T, c *Combat) {
	t.Helper()
	driver := install(t, c, SidePlayer, "Nail Driver")
	chassis := findInstalled(t, c.Enemy(), "Scrap Chassis")
	chassis.HP = 1
	c.Enemy().Plating = 0
	givePool(c.Player(), 6)
	must(t, c.AllocateDie(SidePlayer, 0, driver.ID, 0))
	if c.Result != ResultPlayerWins || c.Phase != PhaseScavenging {
		t.Fatalf("result %v phase %v, want player win in scavenging", c.Result, c.Phase)
	}
}

// TestScavengePoolAndAutoScrap: the wreckage offers the loser's surviving
// cards; destroyed cards dissolve into scrap automatically.
func TestScavengePoolAndAutoScrap(t *testing.T) {
	c := newTestCombat(t, []*Card{NailDriver()}, []*Card{ScrapChassis(), TwinCore(), BoltOnPlates()})
	winFight(t, c)

	s := c.Scavenge
	// Chassis (scrap 4) was destroyed; Twin Core and Bolt-On Plates survive
	// in the undrawn deck.
	if s.Scrap != 4 {
		t.Errorf("auto scrap = %d, want 4", s.Scrap)
	}
	if len(s.Pool) != 2 {
		t.Fatalf("pool = %d cards, want 2", len(s.Pool))
	}
}

// TestScavengeLimitEnforcedBeforeConfirm: over-limit toggles are rejected at
// selection time.
func TestScavengeLimitEnforcedBeforeConfirm(t *testing.T) {
	enemyCards := []*Card{ScrapChassis(), TwinCore(), BoltOnPlates(), JunkCell(), ArcWelder()}
	c := newTestCombat(t, []*Card{NailDriver()}, enemyCards)
	winFight(t, c)

	s := c.Scavenge
	if s.Limit != 2 {
		t.Fatalf("limit = %d, want 2 without locomotion", s.Limit)
	}
	must(t, c.ToggleScavengeCard(s.Pool[0].ID))
	must(t, c.ToggleScavengeCard(s.Pool[1].ID))
	mustCode(t, c.ToggleScavengeCard(s.Pool[2].ID), CodeScavengeLimit)

	// Untoggling frees the slot.
	must(t, c.ToggleScavengeCard(s.Pool[0].ID))
	must(t, c.ToggleScavengeCard(s.Pool[2].ID))
}

// TestLocomotionRaisesScavengeLimit.
func TestLocomotionRaisesScavengeLimit(t *testing.T) {
	c := newTestCombat(t, []*Card{SalvageTreads(), NailDriver()}, []*Card{ScrapChassis()})
	install(t, c, SidePlayer, "Salvage Treads")
	winFight(t, c)
	if c.Scavenge.Limit != 3 {
		t.Errorf("limit = %d, want 3 with Salvage Treads", c.Scavenge.Limit)
	}
}

// TestConfirmScavengeMovesCards: confirmed picks join the player's deck
// repaired, scrap is banked, and every card ends in exactly one zone.
func TestConfirmScavengeMovesCards(t *testing.T) {
	c := newTestCombat(t, []*Card{NailDriver()}, []*Card{ScrapChassis(), TwinCore(), BoltOnPlates()})
	winFight(t, c)

	s := c.Scavenge
	pick := s.Pool[0]
	must(t, c.ToggleScavengeCard(pick.ID))
	must(t, c.ConfirmScavenge())

	if c.Phase != PhaseEnded {
		t.Fatalf("phase = %v, want ended", c.Phase)
	}
	if c.Player().Resources[ResourceScrap] != 4 {
		t.Errorf("scrap = %d, want 4", c.Player().Resources[ResourceScrap])
	}

	found := false
	for _, ci := range c.Player().Deck {
		if ci.ID == pick.ID {
			found = true
			if ci.Owner != SidePlayer || ci.HP != ci.Card.MaxHP {
				t.Errorf("scavenged card not repaired and reowned: %+v", ci)
			}
		}
	}
	if !found {
		t.Fatal("scavenged card missing from player deck")
	}

	checkZoneCompleteness(t, c.Player())
	checkZoneCompleteness(t, c.Enemy())

	// The wreck keeps what was not taken.
	if enemyHas := c.Enemy().CardByID(pick.ID); enemyHas != nil {
		t.Error("scavenged card still reachable on the enemy")
	}
}

// TestConfirmScavengeWithNothingSelected: confirming empty-handed still
// collects the automatic scrap.
func TestConfirmScavengeWithNothingSelected(t *testing.T) {
	c := newTestCombat(t, []*Card{NailDriver()}, []*Card{ScrapChassis()})
	winFight(t, c)

	must(t, c.ConfirmScavenge())
	if c.Phase != PhaseEnded {
		t.Fatalf("phase = %v, want ended", c.Phase)
	}
	if c.Player().Resources[ResourceScrap] != 4 {
		t.Errorf("scrap = %d, want 4", c.Player().Resources[ResourceScrap])
	}
}

// TestScavengeCommandsNeedScavengePhase.
func TestScavengeCommandsNeedScavengePhase(t *testing.T) {
	c := newTestCombat(t, []*Card{NailDriver()}, []*Card{ScrapChassis()})
	mustCode(t, c.ToggleScavengeCard(1), CodeWrongPhase)
	mustCode(t, c.ConfirmScavenge(), CodeWrongPhase)
}
