package game

import "fmt"

// --- Card definition (static, from the catalog) ---

// Card is the immutable definition of a component. Exactly one of the
// per-category property structs is non-nil, matching Category.
type Card struct {
	Name        string
	Description string
	Category    Category
	MaxHP       int // a card with 0 max HP is wrecked by any hit
	ScrapValue  int // scrap collected automatically when this card is destroyed
	MaxPerTurn  int // activations allowed per turn (0 means 1)
	Slots       []SlotCondition

	Battery    *BatteryProps
	Weapon     *WeaponProps
	Armor      *ArmorProps
	CPU        *CPUProps
	Chassis    *ChassisProps
	Capacitor  *CapacitorProps
	Utility    *UtilityProps
	Locomotion *LocomotionProps
}

type BatteryProps struct {
	DiceCount      int
	DieSides       int
	MaxActivations int // total charges for the whole fight
}

type WeaponProps struct {
	DamageType DamageType
	DamageBase int
	Multiplier int // 0: damage is the sum of assigned dice; >0: single die × multiplier
	Escalating bool
	SelfDamage int // damage applied to this card after it resolves
	AutoFire   bool // fires automatically at end of turn if its slots are full
	Element    Element
	Stacks     int // elemental stacks applied on a damaging hit
}

type ArmorProps struct {
	Mode       ArmorMode
	ShieldBase int
	// DualCond decides dual-mode armor: if the assigned dice satisfy it the
	// activation generates shield, otherwise plating.
	DualCond SlotCondition
}

type CPUProps struct {
	Ability CPUAbility
}

type ChassisProps struct {
	BasePlating int
}

type CapacitorProps struct {
	DynamoBoost int // 0: no Dynamo; >0: may boost one stored die by this once per turn
}

type UtilityProps struct {
	Kind UtilityKind
}

type LocomotionProps struct {
	ScavengeBonus int // extra picks granted during scavenging
}

func (c *Card) String() string {
	return c.Name
}

func (c *Card) maxPerTurn() int {
	if c.MaxPerTurn <= 0 {
		return 1
	}
	return c.MaxPerTurn
}

// --- Slot (runtime) ---

// Slot is a dice slot on an installed card. A slot holds at most one die.
type Slot struct {
	ID     int
	Cond   SlotCondition
	Die    *Die
	Locked bool // Fused mechanic: must be unlocked by placing a die into it
}

// --- CardInstance (runtime card in a robot's zones) ---

type CardInstance struct {
	Card  *Card
	ID    int // unique within a combat
	Owner Side
	Zone  ZoneType

	HP    int // meaningful only when Card.MaxHP > 0
	State DamageState
	Slots []*Slot

	Activations  int    // this turn
	Charges      int    // battery charges remaining for the fight
	DynamoUsed   bool   // capacitor Dynamo boost spent this turn
	TargetLocked bool   // weapon: the next hit bypasses plating and shield
	LastResult   string // summary of the most recent activation, for UI feedback
}

func (ci *CardInstance) String() string {
	if ci == nil {
		return "(empty)"
	}
	if ci.Card.MaxHP > 0 {
		return fmt.Sprintf("%s (%d/%d HP, %s)", ci.Card.Name, ci.HP, ci.Card.MaxHP, ci.State)
	}
	return fmt.Sprintf("%s (%s)", ci.Card.Name, ci.State)
}

// Destroyed reports whether the card is out of the fight.
func (ci *CardInstance) Destroyed() bool {
	return ci.State == StateDestroyed
}

// CanActivate reports whether the card has an activation left this turn.
func (ci *CardInstance) CanActivate() bool {
	return !ci.Destroyed() && ci.Activations < ci.Card.maxPerTurn()
}

// AssignedDice returns the dice currently sitting in the card's slots.
func (ci *CardInstance) AssignedDice() []*Die {
	var dice []*Die
	for _, s := range ci.Slots {
		if s.Die != nil {
			dice = append(dice, s.Die)
		}
	}
	return dice
}

// SlotByID finds a slot on the card, or nil.
func (ci *CardInstance) SlotByID(slotID int) *Slot {
	for _, s := range ci.Slots {
		if s.ID == slotID {
			return s
		}
	}
	return nil
}

// clearSlots empties every slot without any side effects.
func (ci *CardInstance) clearSlots() {
	for _, s := range ci.Slots {
		s.Die = nil
	}
}

// takeDamage reduces the card's HP, updating its damage state. A card at or
// below half its max HP counts as Damaged; HP <= 0 forces Destroyed. Cards
// without HP are destroyed by any damage. Returns true if the card was
// destroyed by this hit.
func (ci *CardInstance) takeDamage(amount int) bool {
	if amount <= 0 || ci.Destroyed() {
		return false
	}
	if ci.Card.MaxHP == 0 {
		ci.State = StateDestroyed
		return true
	}
	ci.HP -= amount
	if ci.HP <= 0 {
		ci.HP = 0
		ci.State = StateDestroyed
		return true
	}
	if ci.HP*2 <= ci.Card.MaxHP {
		ci.State = StateDamaged
	}
	return false
}

// repairTo restores HP, clamped to max, and recomputes the damage state.
func (ci *CardInstance) repairTo(hp int) {
	if ci.Card.MaxHP == 0 {
		return
	}
	ci.HP = hp
	if ci.HP > ci.Card.MaxHP {
		ci.HP = ci.Card.MaxHP
	}
	switch {
	case ci.HP <= 0:
		ci.HP = 0
		ci.State = StateDestroyed
	case ci.HP*2 <= ci.Card.MaxHP:
		ci.State = StateDamaged
	default:
		ci.State = StateIntact
	}
}

// newInstance builds the runtime form of a card definition.
func newInstance(card *Card, id int, owner Side) *CardInstance {
	ci := &CardInstance{
		Card:  card,
		ID:    id,
		Owner: owner,
		Zone:  ZoneDeck,
		HP:    card.MaxHP,
	}
	for i, cond := range card.Slots {
		ci.Slots = append(ci.Slots, &Slot{ID: i, Cond: cond})
	}
	if card.Battery != nil {
		ci.Charges = card.Battery.MaxActivations
	}
	return ci
}
