package game

// The component catalog. One constructor per card, registered by name in
// CardRegistry. Every component carries HP and degrades through the damaged
// state before it is wrecked.

// --- Chassis ---

// ScrapChassis — Chassis. The standard wanderer frame.
func ScrapChassis() *Card {
	return &Card{
		Name:        "Scrap Chassis",
		Description: "A patchwork frame welded from salvage. 2 base plating.",
		Category:    CategoryChassis,
		MaxHP:       20,
		ScrapValue:  4,
		Chassis:     &ChassisProps{BasePlating: 2},
	}
}

// HaulerFrame — Chassis. Slow, heavy, hard to crack.
func HaulerFrame() *Card {
	return &Card{
		Name:        "Hauler Frame",
		Description: "A repurposed cargo hauler chassis. 4 base plating.",
		Category:    CategoryChassis,
		MaxHP:       26,
		ScrapValue:  6,
		Chassis:     &ChassisProps{BasePlating: 4},
	}
}

// ReconShell — Chassis. Light and fragile.
func ReconShell() *Card {
	return &Card{
		Name:        "Recon Shell",
		Description: "A stripped scout shell. 1 base plating.",
		Category:    CategoryChassis,
		MaxHP:       16,
		ScrapValue:  3,
		Chassis:     &ChassisProps{BasePlating: 1},
	}
}

// --- Batteries ---

// JunkCell — Battery. 1d6, 2 charges.
func JunkCell() *Card {
	return &Card{
		Name:        "Junk Cell",
		Description: "Rolls 1d6. 2 charges.",
		Category:    CategoryBattery,
		MaxHP:       6,
		ScrapValue:  1,
		Battery:     &BatteryProps{DiceCount: 1, DieSides: 6, MaxActivations: 2},
	}
}

// TwinCore — Battery. 2d6, 2 charges.
func TwinCore() *Card {
	return &Card{
		Name:        "Twin Core",
		Description: "Rolls 2d6. 2 charges.",
		Category:    CategoryBattery,
		MaxHP:       8,
		ScrapValue:  2,
		Battery:     &BatteryProps{DiceCount: 2, DieSides: 6, MaxActivations: 2},
	}
}

// HeavyDynamo — Battery. 2d8, 1 charge.
func HeavyDynamo() *Card {
	return &Card{
		Name:        "Heavy Dynamo",
		Description: "Rolls 2d8. 1 charge.",
		Category:    CategoryBattery,
		MaxHP:       10,
		ScrapValue:  3,
		Battery:     &BatteryProps{DiceCount: 2, DieSides: 8, MaxActivations: 1},
	}
}

// SparkBank — Battery. 1d10, 3 charges.
func SparkBank() *Card {
	return &Card{
		Name:        "Spark Bank",
		Description: "Rolls 1d10. 3 charges.",
		Category:    CategoryBattery,
		MaxHP:       7,
		ScrapValue:  2,
		Battery:     &BatteryProps{DiceCount: 1, DieSides: 10, MaxActivations: 3},
	}
}

// --- Weapons ---

// NailDriver — Weapon. Any die; kinetic damage equal to the die plus 1.
func NailDriver() *Card {
	return &Card{
		Name:        "Nail Driver",
		Description: "Slot any die. Deals die+1 kinetic damage.",
		Category:    CategoryWeapon,
		MaxHP:       6,
		ScrapValue:  2,
		Slots:       []SlotCondition{{}},
		Weapon:      &WeaponProps{DamageType: DamageKinetic, DamageBase: 1},
	}
}

// ScrapCannon — Weapon. Two dice, one of them 3+; heavy kinetic hit.
func ScrapCannon() *Card {
	return &Card{
		Name:        "Scrap Cannon",
		Description: "Slot a 3+ and any die. Deals sum+2 kinetic damage.",
		Category:    CategoryWeapon,
		MaxHP:       8,
		ScrapValue:  3,
		Slots:       []SlotCondition{{Kind: CondMin, N: 3}, {}},
		Weapon:      &WeaponProps{DamageType: DamageKinetic, DamageBase: 2},
	}
}

// ArcWelder — Weapon. Odd die doubled as energy damage.
func ArcWelder() *Card {
	return &Card{
		Name:        "Arc Welder",
		Description: "Slot an odd die. Deals die x2 energy damage.",
		Category:    CategoryWeapon,
		MaxHP:       6,
		ScrapValue:  2,
		Slots:       []SlotCondition{{Kind: CondOdd}},
		Weapon:      &WeaponProps{DamageType: DamageEnergy, Multiplier: 2},
	}
}

// PlasmaLance — Weapon. Two 4+ dice; plasma ignores plating and shield.
func PlasmaLance() *Card {
	return &Card{
		Name:        "Plasma Lance",
		Description: "Slot two 4+ dice. Deals the sum as plasma damage, ignoring defenses.",
		Category:    CategoryWeapon,
		MaxHP:       7,
		ScrapValue:  4,
		Slots:       []SlotCondition{{Kind: CondMin, N: 4}, {Kind: CondMin, N: 4}},
		Weapon:      &WeaponProps{DamageType: DamagePlasma},
	}
}

// Flamethrower — Weapon. Even die; burns in Overheated stacks.
func Flamethrower() *Card {
	return &Card{
		Name:        "Flamethrower",
		Description: "Slot an even die. Deals die energy damage and applies 2 Overheated.",
		Category:    CategoryWeapon,
		MaxHP:       6,
		ScrapValue:  2,
		Slots:       []SlotCondition{{Kind: CondEven}},
		Weapon:      &WeaponProps{DamageType: DamageEnergy, Element: ElementOverheated, Stacks: 2},
	}
}

// CryoSprayer — Weapon. Low die; chills the target's next rolls.
func CryoSprayer() *Card {
	return &Card{
		Name:        "Cryo Sprayer",
		Description: "Slot a die of 3 or less. Deals die energy damage and applies 1 Subzero.",
		Category:    CategoryWeapon,
		MaxHP:       6,
		ScrapValue:  2,
		Slots:       []SlotCondition{{Kind: CondMax, N: 3}},
		Weapon:      &WeaponProps{DamageType: DamageEnergy, Element: ElementSubzero, Stacks: 1},
	}
}

// RustThrower — Weapon. Any die; corrodes installed components over time.
func RustThrower() *Card {
	return &Card{
		Name:        "Rust Thrower",
		Description: "Slot any die. Deals die kinetic damage and applies 2 Rust.",
		Category:    CategoryWeapon,
		MaxHP:       6,
		ScrapValue:  2,
		Slots:       []SlotCondition{{}},
		Weapon:      &WeaponProps{DamageType: DamageKinetic, Element: ElementRust, Stacks: 2},
	}
}

// JunkMortar — Weapon. Auto-fires at end of turn; the recoil chips it.
func JunkMortar() *Card {
	return &Card{
		Name:        "Junk Mortar",
		Description: "Slot any two dice. Fires itself at end of turn for sum+3 kinetic damage; takes 1 recoil damage.",
		Category:    CategoryWeapon,
		MaxHP:       9,
		ScrapValue:  3,
		Slots:       []SlotCondition{{}, {}},
		Weapon:      &WeaponProps{DamageType: DamageKinetic, DamageBase: 3, SelfDamage: 1, AutoFire: true},
	}
}

// OverdriveBlade — Weapon. Hits harder for every weapon fired before it.
func OverdriveBlade() *Card {
	return &Card{
		Name:        "Overdrive Blade",
		Description: "Slot a 2+ die. Deals die kinetic damage, +1 per weapon already fired this turn.",
		Category:    CategoryWeapon,
		MaxHP:       7,
		ScrapValue:  3,
		Slots:       []SlotCondition{{Kind: CondMin, N: 2}},
		Weapon:      &WeaponProps{DamageType: DamageKinetic, Escalating: true},
	}
}

// GhostProjector — Weapon. Cheap hit that slips future dice out of sight.
func GhostProjector() *Card {
	return &Card{
		Name:        "Ghost Projector",
		Description: "Slot any die. Deals die energy damage and applies 1 Hidden.",
		Category:    CategoryWeapon,
		MaxHP:       5,
		ScrapValue:  2,
		Slots:       []SlotCondition{{}},
		Weapon:      &WeaponProps{DamageType: DamageEnergy, Element: ElementHidden, Stacks: 1},
	}
}

// SlagFuser — Weapon. Welds the target's next draws shut.
func SlagFuser() *Card {
	return &Card{
		Name:        "Slag Fuser",
		Description: "Slot a 5+ die. Deals die energy damage and applies 1 Fused.",
		Category:    CategoryWeapon,
		MaxHP:       7,
		ScrapValue:  3,
		Slots:       []SlotCondition{{Kind: CondMin, N: 5}},
		Weapon:      &WeaponProps{DamageType: DamageEnergy, Element: ElementFused, Stacks: 1},
	}
}

// --- Armor ---

// BoltOnPlates — Armor. Permanent plating.
func BoltOnPlates() *Card {
	return &Card{
		Name:        "Bolt-On Plates",
		Description: "Slot any die. Gain that much plating.",
		Category:    CategoryArmor,
		MaxHP:       8,
		ScrapValue:  2,
		Slots:       []SlotCondition{{}},
		Armor:       &ArmorProps{Mode: ArmorPlating},
	}
}

// DeflectorCoil — Armor. Shield until the next turn.
func DeflectorCoil() *Card {
	return &Card{
		Name:        "Deflector Coil",
		Description: "Slot any die. Gain die+2 shield until your next turn.",
		Category:    CategoryArmor,
		MaxHP:       6,
		ScrapValue:  2,
		Slots:       []SlotCondition{{}},
		Armor:       &ArmorProps{Mode: ArmorShield, ShieldBase: 2},
	}
}

// AdaptiveCarapace — Armor. Dual mode decided by the dice.
func AdaptiveCarapace() *Card {
	return &Card{
		Name:        "Adaptive Carapace",
		Description: "Slot any two dice. 5+ total becomes shield, anything less becomes plating.",
		Category:    CategoryArmor,
		MaxHP:       9,
		ScrapValue:  3,
		Slots:       []SlotCondition{{}, {}},
		Armor:       &ArmorProps{Mode: ArmorDual, DualCond: SlotCondition{Kind: CondMin, N: 5}},
	}
}

// MirrorHull — Armor. Picky about its dice, generous with shield.
func MirrorHull() *Card {
	return &Card{
		Name:        "Mirror Hull",
		Description: "Slot an even die. Gain die+1 shield until your next turn.",
		Category:    CategoryArmor,
		MaxHP:       6,
		ScrapValue:  2,
		Slots:       []SlotCondition{{Kind: CondEven}},
		Armor:       &ArmorProps{Mode: ArmorShield, ShieldBase: 1},
	}
}

// --- CPUs ---

// SalvagePlanner — CPU. Cycles dead cards out of the hand.
func SalvagePlanner() *Card {
	return &Card{
		Name:        "Salvage Planner",
		Description: "Discard 2 cards, then draw 2 cards.",
		Category:    CategoryCPU,
		MaxHP:       5,
		ScrapValue:  2,
		CPU:         &CPUProps{Ability: CPUAbility{Kind: AbilityDiscardDraw, DiscardCount: 2, DrawCount: 2}},
	}
}

// ReflexCore — CPU. Snap-raises an armor's shield without dice.
func ReflexCore() *Card {
	return &Card{
		Name:        "Reflex Core",
		Description: "Target an armor component. Gain shield equal to its shield bonus.",
		Category:    CategoryCPU,
		MaxHP:       5,
		ScrapValue:  2,
		CPU:         &CPUProps{Ability: CPUAbility{Kind: AbilityReflexBlock}},
	}
}

// SiphonMatrix — CPU. Trickle-charges a drained battery.
func SiphonMatrix() *Card {
	return &Card{
		Name:        "Siphon Matrix",
		Description: "Target a battery that is not fully charged. It regains 1 charge.",
		Category:    CategoryCPU,
		MaxHP:       5,
		ScrapValue:  2,
		CPU:         &CPUProps{Ability: CPUAbility{Kind: AbilitySiphonPower, SiphonCharge: 1}},
	}
}

// OverclockDaemon — CPU. Lets a spent component go again.
func OverclockDaemon() *Card {
	return &Card{
		Name:        "Overclock Daemon",
		Description: "Target a weapon, armor, or utility that already activated. It may activate again this turn.",
		Category:    CategoryCPU,
		MaxHP:       6,
		ScrapValue:  3,
		CPU:         &CPUProps{Ability: CPUAbility{Kind: AbilityExtraActivation}},
	}
}

// LockOnModule — CPU. Paints a weapon's next shot straight through defenses.
func LockOnModule() *Card {
	return &Card{
		Name:        "Lock-On Module",
		Description: "Target one of your weapons. Its next hit this turn ignores plating and shield.",
		Category:    CategoryCPU,
		MaxHP:       6,
		ScrapValue:  3,
		CPU:         &CPUProps{Ability: CPUAbility{Kind: AbilityTargetLock}},
	}
}

// --- Capacitors ---

// SurgeBank — Capacitor. Stores two dice across turns.
func SurgeBank() *Card {
	return &Card{
		Name:        "Surge Bank",
		Description: "Store up to two dice for later turns. Dynamo: boost one stored die by 1 per turn.",
		Category:    CategoryCapacitor,
		MaxHP:       6,
		ScrapValue:  2,
		Slots:       []SlotCondition{{}, {}},
		Capacitor:   &CapacitorProps{DynamoBoost: 1},
	}
}

// FluxJar — Capacitor. Small dice in, bigger dice out.
func FluxJar() *Card {
	return &Card{
		Name:        "Flux Jar",
		Description: "Store one die of 4 or less. Dynamo: boost it by 2 per turn.",
		Category:    CategoryCapacitor,
		MaxHP:       5,
		ScrapValue:  2,
		Slots:       []SlotCondition{{Kind: CondMax, N: 4}},
		Capacitor:   &CapacitorProps{DynamoBoost: 2},
	}
}

// --- Utilities ---

// DieSplitter — Utility. Trades one big die for two halves.
func DieSplitter() *Card {
	return &Card{
		Name:        "Die Splitter",
		Description: "Slot a 4+ die. Split it into two dice of half its value.",
		Category:    CategoryUtility,
		MaxHP:       4,
		ScrapValue:  1,
		Slots:       []SlotCondition{{Kind: CondMin, N: 4}},
		Utility:     &UtilityProps{Kind: UtilitySplitDie},
	}
}

// OverchargeRig — Utility. Burns a perfect roll for raw damage.
func OverchargeRig() *Card {
	return &Card{
		Name:        "Overcharge Rig",
		Description: "Slot a die showing exactly 6. All weapons deal +1 damage this turn.",
		Category:    CategoryUtility,
		MaxHP:       5,
		ScrapValue:  2,
		Slots:       []SlotCondition{{Kind: CondExact, N: 6}},
		Utility:     &UtilityProps{Kind: UtilityOvercharge},
	}
}

// GyroTumbler — Utility. A second chance for a bad roll.
func GyroTumbler() *Card {
	return &Card{
		Name:        "Gyro Tumbler",
		Description: "Slot any die. Reroll it.",
		Category:    CategoryUtility,
		MaxHP:       4,
		ScrapValue:  1,
		Slots:       []SlotCondition{{}},
		Utility:     &UtilityProps{Kind: UtilityReroll},
	}
}

// CardFeeder — Utility. Converts a low die into card draw.
func CardFeeder() *Card {
	return &Card{
		Name:        "Card Feeder",
		Description: "Slot a die of 3 or less. Draw that many cards plus one.",
		Category:    CategoryUtility,
		MaxHP:       4,
		ScrapValue:  1,
		Slots:       []SlotCondition{{Kind: CondMax, N: 3}},
		Utility:     &UtilityProps{Kind: UtilityDrawCards},
	}
}

// --- Locomotion ---

// SalvageTreads — Locomotion. More room in the cargo bed.
func SalvageTreads() *Card {
	return &Card{
		Name:        "Salvage Treads",
		Description: "Scavenge 1 additional card after a won fight.",
		Category:    CategoryLocomotion,
		MaxHP:       8,
		ScrapValue:  3,
		Locomotion:  &LocomotionProps{ScavengeBonus: 1},
	}
}

// MagnetCrawler — Locomotion. Fragile, but it drags home everything.
func MagnetCrawler() *Card {
	return &Card{
		Name:        "Magnet Crawler",
		Description: "Scavenge 2 additional cards after a won fight.",
		Category:    CategoryLocomotion,
		MaxHP:       6,
		ScrapValue:  3,
		Locomotion:  &LocomotionProps{ScavengeBonus: 2},
	}
}
