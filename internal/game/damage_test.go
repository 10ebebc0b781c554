package game

import "testing"

// TestKineticVersusPlating: plating soaks kinetic one-for-one and is
// depleted by what it absorbs.
func TestKineticVersusPlating(t *testing.T) {
	c := newTestCombat(t, []*Card{ScrapCannon()}, []*Card{ScrapChassis()})
	cannon := install(t, c, SidePlayer, "Scrap Cannon")
	givePool(c.Player(), 4, 4)

	must(t, c.AllocateDie(SidePlayer, 0, cannon.ID, 0))
	must(t, c.AllocateDie(SidePlayer, 0, cannon.ID, 1))

	// 4+4+2 base = 10 raw, 2 plating soaks, 8 dealt.
	if c.LastAttack.Raw != 10 || c.LastAttack.Absorbed != 2 || c.LastAttack.Dealt != 8 {
		t.Fatalf("attack = %+v, want raw 10 absorbed 2 dealt 8", c.LastAttack)
	}
	if c.Enemy().Plating != 0 {
		t.Errorf("enemy plating = %d, want 0", c.Enemy().Plating)
	}
}

// TestCrossPoolQuarterRate: the off-type pool soaks a quarter of what gets
// past the matching pool.
func TestCrossPoolQuarterRate(t *testing.T) {
	c := newTestCombat(t, []*Card{ArcWelder()}, []*Card{ScrapChassis()})
	welder := install(t, c, SidePlayer, "Arc Welder")
	c.Enemy().Shield = 4
	c.Enemy().Plating = 4
	givePool(c.Player(), 5)

	// 5 odd x2 = 10 energy. Shield soaks 4, plating soaks (10-4)/4 = 1.
	must(t, c.AllocateDie(SidePlayer, 0, welder.ID, 0))
	if c.LastAttack.Absorbed != 5 || c.LastAttack.Dealt != 5 {
		t.Fatalf("attack = %+v, want absorbed 5 dealt 5", c.LastAttack)
	}
	if c.Enemy().Shield != 0 || c.Enemy().Plating != 3 {
		t.Errorf("pools = shield %d plating %d, want 0 and 3", c.Enemy().Shield, c.Enemy().Plating)
	}
}

// TestPlasmaBypassesDefenses: plasma ignores both pools and leaves them
// intact.
func TestPlasmaBypassesDefenses(t *testing.T) {
	c := newTestCombat(t, []*Card{PlasmaLance()}, []*Card{ScrapChassis()})
	lance := install(t, c, SidePlayer, "Plasma Lance")
	c.Enemy().Shield = 10
	givePool(c.Player(), 4, 5)

	must(t, c.AllocateDie(SidePlayer, 0, lance.ID, 0))
	must(t, c.AllocateDie(SidePlayer, 0, lance.ID, 1))
	if !c.LastAttack.Bypassed || c.LastAttack.Dealt != 9 {
		t.Fatalf("attack = %+v, want bypassed dealt 9", c.LastAttack)
	}
	if c.Enemy().Shield != 10 || c.Enemy().Plating != 2 {
		t.Errorf("pools touched by plasma: shield %d plating %d", c.Enemy().Shield, c.Enemy().Plating)
	}
}

// TestWeaponTargetPriority: hits land on the front-most HP-bearing
// non-chassis component, then fall through to the chassis.
func TestWeaponTargetPriority(t *testing.T) {
	c := newTestCombat(t, []*Card{NailDriver()}, []*Card{ScrapChassis(), BoltOnPlates()})
	driver := install(t, c, SidePlayer, "Nail Driver")

	// Put the armor in front of the enemy chassis. Begin only draws the
	// player's hand, so with NoShuffle the plates sit on top of the deck.
	enemy := c.Enemy()
	plates := enemy.Deck[len(enemy.Deck)-1]
	enemy.Deck = enemy.Deck[:len(enemy.Deck)-1]
	plates.Zone = ZoneInstalled
	enemy.Installed = append(enemy.Installed, plates)

	givePool(c.Player(), 6)
	must(t, c.AllocateDie(SidePlayer, 0, driver.ID, 0))
	if c.LastAttack.Target != "Bolt-On Plates" {
		t.Fatalf("hit %q, want the armor in front", c.LastAttack.Target)
	}

	plates.takeDamage(plates.HP)
	enemy.removeInstalled(plates)
	enemy.sendToDestroyed(plates)

	_, err := c.EndTurn()
	must(t, err)
	driver = findInstalled(t, c.Player(), "Nail Driver")
	givePool(c.Player(), 6)
	must(t, c.AllocateDie(SidePlayer, 0, driver.ID, 0))
	if c.LastAttack.Target != "Scrap Chassis" {
		t.Errorf("hit %q, want the chassis fallback", c.LastAttack.Target)
	}
}

// TestDamagedWeaponHalves: a damaged weapon deals half damage, rounded down.
func TestDamagedWeaponHalves(t *testing.T) {
	c := newTestCombat(t, []*Card{NailDriver()}, []*Card{ScrapChassis()})
	driver := install(t, c, SidePlayer, "Nail Driver")
	driver.takeDamage(3) // 6 -> 3, damaged
	givePool(c.Player(), 6)

	// (6+1)/2 = 3 raw.
	must(t, c.AllocateDie(SidePlayer, 0, driver.ID, 0))
	if c.LastAttack.Raw != 3 {
		t.Errorf("raw = %d, want 3", c.LastAttack.Raw)
	}
}

// TestEscalatingWeapon: each weapon already fired this turn adds 1.
func TestEscalatingWeapon(t *testing.T) {
	c := newTestCombat(t, []*Card{NailDriver(), OverdriveBlade()}, []*Card{ScrapChassis()})
	driver := install(t, c, SidePlayer, "Nail Driver")
	blade := install(t, c, SidePlayer, "Overdrive Blade")
	givePool(c.Player(), 3, 3)

	must(t, c.AllocateDie(SidePlayer, 0, driver.ID, 0))
	must(t, c.AllocateDie(SidePlayer, 0, blade.ID, 0))
	// 3 + 1 for the driver having fired first.
	if c.LastAttack.Raw != 4 {
		t.Errorf("escalating raw = %d, want 4", c.LastAttack.Raw)
	}
}

// TestElementalStacksOnDamagingHitOnly: statuses land only when the hit
// deals damage.
func TestElementalStacksOnDamagingHitOnly(t *testing.T) {
	c := newTestCombat(t, []*Card{CryoSprayer(), CryoSprayer()}, []*Card{ScrapChassis()})
	first := install(t, c, SidePlayer, "Cryo Sprayer")
	c.Enemy().Shield = 50
	givePool(c.Player(), 3)
	must(t, c.AllocateDie(SidePlayer, 0, first.ID, 0))
	if got := c.Enemy().Status(ElementSubzero); got != 0 {
		t.Fatalf("Subzero applied on a fully absorbed hit: %d", got)
	}

	c.Enemy().Shield = 0
	second := install(t, c, SidePlayer, "Cryo Sprayer")
	givePool(c.Player(), 3)
	must(t, c.AllocateDie(SidePlayer, 0, second.ID, 0))
	if got := c.Enemy().Status(ElementSubzero); got != 1 {
		t.Errorf("Subzero = %d, want 1", got)
	}
}

// TestAutoFireWeaponWaitsForEndOfTurn: a loaded Junk Mortar holds its shot
// until the turn ends, then takes recoil.
func TestAutoFireWeaponWaitsForEndOfTurn(t *testing.T) {
	c := newTestCombat(t, []*Card{JunkMortar()}, []*Card{ScrapChassis()})
	mortar := install(t, c, SidePlayer, "Junk Mortar")
	givePool(c.Player(), 2, 3)
	must(t, c.AllocateDie(SidePlayer, 0, mortar.ID, 0))
	must(t, c.AllocateDie(SidePlayer, 0, mortar.ID, 1))

	if c.LastAttack != nil {
		t.Fatal("mortar fired before end of turn")
	}

	_, err := c.EndTurn()
	must(t, err)
	// 2+3+3 base = 8 raw, 2 plating soaks, 6 dealt. Recoil chips the mortar.
	if c.LastAttack == nil || c.LastAttack.Weapon != "Junk Mortar" || c.LastAttack.Dealt != 6 {
		t.Fatalf("attack = %+v, want the mortar dealing 6", c.LastAttack)
	}
	if mortar.HP != 8 {
		t.Errorf("mortar HP = %d, want 8 after recoil", mortar.HP)
	}
}

// TestVictoryMidTurn: destroying the last HP-bearing component ends the
// fight immediately, even with actions notionally remaining.
func TestVictoryMidTurn(t *testing.T) {
	c := newTestCombat(t, []*Card{NailDriver()}, []*Card{ScrapChassis()})
	driver := install(t, c, SidePlayer, "Nail Driver")
	chassis := findInstalled(t, c.Enemy(), "Scrap Chassis")
	chassis.HP = 2
	c.Enemy().Plating = 0

	givePool(c.Player(), 4)
	must(t, c.AllocateDie(SidePlayer, 0, driver.ID, 0))

	if c.Result != ResultPlayerWins {
		t.Fatalf("result = %v, want player win", c.Result)
	}
	if c.Phase != PhaseScavenging {
		t.Fatalf("phase = %v, want scavenging", c.Phase)
	}
	mustCode(t, c.ActivateBattery(SidePlayer, driver.ID), CodeWrongPhase)
}
