package game

import "strconv"

// --- Enums ---

type Phase int

const (
	PhaseNone Phase = iota
	PhaseDraw
	PhasePowerUp
	PhaseEnemyTurn
	PhaseScavenging
	PhaseEnded
)

func (p Phase) String() string {
	switch p {
	case PhaseDraw:
		return "Draw Phase"
	case PhasePowerUp:
		return "Power-Up Phase"
	case PhaseEnemyTurn:
		return "Enemy Turn"
	case PhaseScavenging:
		return "Scavenging"
	case PhaseEnded:
		return "Ended"
	default:
		return "None"
	}
}

// Side identifies which robot a card or command belongs to.
type Side int

const (
	SidePlayer Side = iota
	SideEnemy
)

func (s Side) String() string {
	if s == SidePlayer {
		return "player"
	}
	return "enemy"
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	return 1 - s
}

type Category int

const (
	CategoryBattery Category = iota
	CategoryWeapon
	CategoryArmor
	CategoryCPU
	CategoryChassis
	CategoryCapacitor
	CategoryUtility
	CategoryLocomotion
)

func (c Category) String() string {
	switch c {
	case CategoryBattery:
		return "Battery"
	case CategoryWeapon:
		return "Weapon"
	case CategoryArmor:
		return "Armor"
	case CategoryCPU:
		return "CPU"
	case CategoryChassis:
		return "Chassis"
	case CategoryCapacitor:
		return "Capacitor"
	case CategoryUtility:
		return "Utility"
	case CategoryLocomotion:
		return "Locomotion"
	default:
		return "Unknown"
	}
}

type DamageType int

const (
	DamageKinetic DamageType = iota
	DamageEnergy
	DamagePlasma
)

func (d DamageType) String() string {
	switch d {
	case DamageKinetic:
		return "kinetic"
	case DamageEnergy:
		return "energy"
	case DamagePlasma:
		return "plasma"
	default:
		return "unknown"
	}
}

// Element is an elemental status effect applied by weapon hits.
type Element int

const (
	ElementNone Element = iota
	ElementOverheated
	ElementSubzero
	ElementFused
	ElementHidden
	ElementRust
)

func (e Element) String() string {
	switch e {
	case ElementOverheated:
		return "Overheated"
	case ElementSubzero:
		return "Subzero"
	case ElementFused:
		return "Fused"
	case ElementHidden:
		return "Hidden"
	case ElementRust:
		return "Rust"
	default:
		return ""
	}
}

type DamageState int

const (
	StateIntact DamageState = iota
	StateDamaged
	StateDestroyed
)

func (s DamageState) String() string {
	switch s {
	case StateIntact:
		return "intact"
	case StateDamaged:
		return "damaged"
	case StateDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

// ZoneType identifies which of a robot's zones a card currently occupies.
type ZoneType int

const (
	ZoneDeck ZoneType = iota
	ZoneHand
	ZoneInstalled
	ZoneDiscard
	ZoneDestroyed
)

func (z ZoneType) String() string {
	switch z {
	case ZoneDeck:
		return "Deck"
	case ZoneHand:
		return "Hand"
	case ZoneInstalled:
		return "Installed"
	case ZoneDiscard:
		return "Discard"
	case ZoneDestroyed:
		return "Destroyed"
	default:
		return "Unknown"
	}
}

// --- Dice slot conditions ---

type CondKind int

const (
	CondNone CondKind = iota
	CondMin
	CondMax
	CondExact
	CondEven
	CondOdd
)

// SlotCondition restricts which die values a slot accepts.
type SlotCondition struct {
	Kind CondKind
	N    int // threshold for Min/Max/Exact
}

// Satisfied reports whether a die value passes the condition.
func (c SlotCondition) Satisfied(value int) bool {
	switch c.Kind {
	case CondMin:
		return value >= c.N
	case CondMax:
		return value <= c.N
	case CondExact:
		return value == c.N
	case CondEven:
		return value%2 == 0
	case CondOdd:
		return value%2 == 1
	default:
		return true
	}
}

func (c SlotCondition) String() string {
	switch c.Kind {
	case CondMin:
		return "min " + strconv.Itoa(c.N)
	case CondMax:
		return "max " + strconv.Itoa(c.N)
	case CondExact:
		return "exactly " + strconv.Itoa(c.N)
	case CondEven:
		return "even"
	case CondOdd:
		return "odd"
	default:
		return "any"
	}
}

// --- Armor ---

type ArmorMode int

const (
	ArmorPlating ArmorMode = iota
	ArmorShield
	ArmorDual // picks plating or shield per activation based on the dice used
)

func (m ArmorMode) String() string {
	switch m {
	case ArmorPlating:
		return "plating"
	case ArmorShield:
		return "shield"
	case ArmorDual:
		return "dual"
	default:
		return ""
	}
}

// --- Utility effects ---

type UtilityKind int

const (
	UtilitySplitDie UtilityKind = iota
	UtilityOvercharge
	UtilityReroll
	UtilityDrawCards
)

func (u UtilityKind) String() string {
	switch u {
	case UtilitySplitDie:
		return "split die"
	case UtilityOvercharge:
		return "overcharge"
	case UtilityReroll:
		return "reroll"
	case UtilityDrawCards:
		return "draw cards"
	default:
		return ""
	}
}

// --- CPU abilities (tagged union) ---

type CPUAbilityKind int

const (
	AbilityDiscardDraw CPUAbilityKind = iota
	AbilityReflexBlock
	AbilitySiphonPower
	AbilityExtraActivation
	AbilityTargetLock
)

func (k CPUAbilityKind) String() string {
	switch k {
	case AbilityDiscardDraw:
		return "discard/draw"
	case AbilityReflexBlock:
		return "reflex block"
	case AbilitySiphonPower:
		return "siphon power"
	case AbilityExtraActivation:
		return "extra activation"
	case AbilityTargetLock:
		return "target lock"
	default:
		return ""
	}
}

// CPUAbility is the closed set of CPU special abilities. Payload fields are
// meaningful only for the kinds that use them.
type CPUAbility struct {
	Kind         CPUAbilityKind
	DiscardCount int // DiscardDraw: hand cards that must be discarded
	DrawCount    int // DiscardDraw: cards drawn after the discard
	SiphonCharge int // SiphonPower: charges restored to the target battery
}

// SelectionMode describes what the ability needs selected before confirm.
type SelectionMode int

const (
	SelectHandCards SelectionMode = iota
	SelectInstalledCard
)

// SelectionMode returns the targeting mode the ability's protocol requires.
func (a CPUAbility) SelectionMode() SelectionMode {
	switch a.Kind {
	case AbilityDiscardDraw:
		return SelectHandCards
	default:
		return SelectInstalledCard
	}
}

// --- Resources ---

type Resource int

const (
	ResourceScrap Resource = iota
	ResourceWiring
	ResourceCore
)

func (r Resource) String() string {
	switch r {
	case ResourceScrap:
		return "scrap"
	case ResourceWiring:
		return "wiring"
	case ResourceCore:
		return "core"
	default:
		return ""
	}
}

// --- Combat result ---

type Result int

const (
	ResultOngoing Result = iota
	ResultPlayerWins
	ResultEnemyWins
)

func (r Result) String() string {
	switch r {
	case ResultPlayerWins:
		return "player wins"
	case ResultEnemyWins:
		return "enemy wins"
	default:
		return "ongoing"
	}
}
