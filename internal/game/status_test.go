package game

import "testing"

// TestSubzeroForcesRollsToOne: with Subzero 2, the first two dice rolled this
// turn come up 1; the third rolls normally.
func TestSubzeroForcesRollsToOne(t *testing.T) {
	c := newTestCombat(t, []*Card{TwinCore(), JunkCell()}, []*Card{ScrapChassis()})
	twin := install(t, c, SidePlayer, "Twin Core")
	cell := install(t, c, SidePlayer, "Junk Cell")
	c.Player().Statuses[ElementSubzero] = 2

	must(t, c.ActivateBattery(SidePlayer, twin.ID))
	pool := c.Player().Pool
	if len(pool) != 2 {
		t.Fatalf("pool size = %d, want 2", len(pool))
	}
	for i, d := range pool {
		if d.Value != 1 || !d.ForcedOne {
			t.Errorf("die %d = %v, want a forced 1", i, d)
		}
	}

	must(t, c.ActivateBattery(SidePlayer, cell.ID))
	if third := c.Player().Pool[2]; third.ForcedOne {
		t.Errorf("third die forced to 1 with only 2 Subzero stacks")
	}
}

// TestOverheatedTagsBlazing: Overheated marks that many dice Blazing per
// turn.
func TestOverheatedTagsBlazing(t *testing.T) {
	c := newTestCombat(t, []*Card{TwinCore()}, []*Card{ScrapChassis()})
	twin := install(t, c, SidePlayer, "Twin Core")
	c.Player().Statuses[ElementOverheated] = 1

	must(t, c.ActivateBattery(SidePlayer, twin.ID))
	pool := c.Player().Pool
	if !pool[0].Blazing {
		t.Error("first die should be Blazing")
	}
	if pool[1].Blazing {
		t.Error("second die should not be Blazing with 1 stack")
	}
}

// TestHiddenMasksDice: Hidden dice keep their value internally but display
// as unknown.
func TestHiddenMasksDice(t *testing.T) {
	c := newTestCombat(t, []*Card{JunkCell()}, []*Card{ScrapChassis()})
	cell := install(t, c, SidePlayer, "Junk Cell")
	c.Player().Statuses[ElementHidden] = 1

	must(t, c.ActivateBattery(SidePlayer, cell.ID))
	die := c.Player().Pool[0]
	if !die.Hidden {
		t.Fatal("die should be Hidden")
	}
	if die.Value < 1 || die.Value > 6 {
		t.Errorf("hidden die lost its real value: %v", die)
	}
	if got := formatDie(die); got != "?" {
		t.Errorf("formatDie = %q, want %q", got, "?")
	}
}

// TestStatusStacking: reapplying an element adds to the existing stack.
func TestStatusStacking(t *testing.T) {
	c := newTestCombat(t, []*Card{ScrapChassis()}, []*Card{ScrapChassis()})
	c.applyStatus(c.Enemy(), ElementOverheated, 2)
	c.applyStatus(c.Enemy(), ElementOverheated, 3)
	if got := c.Enemy().Status(ElementOverheated); got != 5 {
		t.Errorf("Overheated = %d, want 5", got)
	}
}

// TestRustTicksAndDecays: Rust damages one eligible component at end of turn
// for the stack size, then decays by exactly 1. Other statuses clear
// entirely.
func TestRustTicksAndDecays(t *testing.T) {
	c := newTestCombat(t, []*Card{ScrapChassis(), BoltOnPlates()}, []*Card{ScrapChassis()})
	plates := install(t, c, SidePlayer, "Bolt-On Plates")
	c.Player().Statuses[ElementRust] = 2
	c.Player().Statuses[ElementSubzero] = 3

	before := plates.HP + findInstalled(t, c.Player(), "Scrap Chassis").HP
	_, err := c.EndTurn()
	must(t, err)

	after := plates.HP + findInstalled(t, c.Player(), "Scrap Chassis").HP
	if before-after != 2 {
		t.Errorf("rust dealt %d damage, want 2", before-after)
	}
	if got := c.Player().Status(ElementRust); got != 1 {
		t.Errorf("Rust after decay = %d, want 1", got)
	}
	if got := c.Player().Status(ElementSubzero); got != 0 {
		t.Errorf("Subzero after decay = %d, want 0", got)
	}
}

// TestRustWithNoEligibleTarget: rust damage is dropped when only CPUs and
// batteries remain.
func TestRustWithNoEligibleTarget(t *testing.T) {
	c := newTestCombat(t, []*Card{JunkCell()}, []*Card{ScrapChassis()})
	cell := install(t, c, SidePlayer, "Junk Cell")
	c.Player().Statuses[ElementRust] = 3

	c.applyRust(c.Player())
	if cell.HP != 6 {
		t.Errorf("battery took rust damage: HP %d", cell.HP)
	}
}

// TestFusedInterceptsDraws: each Fused stack seizes one drawn card. Slotted
// cards come up with every slot fused shut; batteries absorb the fuse as a
// bonus charge instead.
func TestFusedInterceptsDraws(t *testing.T) {
	deck := []*Card{GyroTumbler(), NailDriver(), JunkCell(),
		BoltOnPlates(), DeflectorCoil(), ArcWelder(), CardFeeder(), SparkBank(), ScrapChassis()}
	c := newTestCombat(t, deck, []*Card{ScrapChassis()})
	p := c.Player()
	p.Statuses[ElementFused] = 2

	junk := c.drawOne(p)
	if junk.Card.Name != "Junk Cell" || junk.Charges != 3 {
		t.Fatalf("drew %s with %d charges, want Junk Cell with 3", junk.Card.Name, junk.Charges)
	}

	nail := c.drawOne(p)
	if nail.Card.Name != "Nail Driver" {
		t.Fatalf("drew %s, want Nail Driver", nail.Card.Name)
	}
	if !nail.Slots[0].Locked {
		t.Error("fused draw left the weapon's slot unlocked")
	}

	// Both stacks are spent; the next draw comes through clean.
	gyro := c.drawOne(p)
	if gyro.Card.Name != "Gyro Tumbler" {
		t.Fatalf("drew %s, want Gyro Tumbler", gyro.Card.Name)
	}
	if gyro.Slots[0].Locked {
		t.Error("a drained Fused stack locked a later draw")
	}
	if p.Counters.FusedLocked != 2 {
		t.Errorf("FusedLocked = %d, want 2", p.Counters.FusedLocked)
	}
}
