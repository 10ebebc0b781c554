package game

// TurnCounters tracks per-turn consumption of status effects and per-turn
// totals. Reset at the start of each robot's acting segment and threaded
// through every roll and draw.
type TurnCounters struct {
	DiceRolled int
	CardsDrawn int

	SubzeroForced  int // rolls forced to 1 so far this turn
	OverheatTagged int // dice marked Blazing so far this turn
	HiddenMasked   int // dice hidden so far this turn
	FusedLocked    int // drawn cards slot-locked so far this turn
}

// Robot is one side's entire state.
type Robot struct {
	Side Side

	Deck      []*CardInstance // top of deck is last element (pop from end)
	Hand      []*CardInstance
	Installed []*CardInstance
	Discard   []*CardInstance
	Destroyed []*CardInstance

	Plating int
	Shield  int

	Resources map[Resource]int
	Statuses  map[Element]int

	Pool []Die // available dice, consumed by slot assignment

	Counters     TurnCounters
	Overcharge   int // bonus weapon damage granted by utilities this turn
	WeaponsFired int // weapons activated this turn, for escalating weapons
}

func newRobot(side Side) *Robot {
	return &Robot{
		Side:      side,
		Resources: make(map[Resource]int),
		Statuses:  make(map[Element]int),
	}
}

// TotalHP is the sum of current HP across HP-bearing installed cards.
func (r *Robot) TotalHP() int {
	total := 0
	for _, ci := range r.Installed {
		if ci.Card.MaxHP > 0 && !ci.Destroyed() {
			total += ci.HP
		}
	}
	return total
}

// MaxHP is the sum of max HP across HP-bearing installed cards, destroyed or not.
func (r *Robot) MaxHP() int {
	total := 0
	for _, ci := range r.Installed {
		total += ci.Card.MaxHP
	}
	return total
}

// HandSize is how many cards the robot refills to each draw phase.
func (r *Robot) HandSize() int {
	return 5
}

// drawTop pops the top deck card into the hand. Returns nil when the deck is
// empty (no deck-out penalty; the robot simply draws fewer cards).
func (r *Robot) drawTop() *CardInstance {
	if len(r.Deck) == 0 {
		return nil
	}
	card := r.Deck[len(r.Deck)-1]
	r.Deck = r.Deck[:len(r.Deck)-1]
	card.Zone = ZoneHand
	r.Hand = append(r.Hand, card)
	return card
}

// RemoveFromHand removes a card from the hand by instance ID.
func (r *Robot) RemoveFromHand(card *CardInstance) {
	for i, c := range r.Hand {
		if c.ID == card.ID {
			r.Hand = append(r.Hand[:i], r.Hand[i+1:]...)
			return
		}
	}
}

// removeInstalled removes a card from the installed zone by instance ID.
func (r *Robot) removeInstalled(card *CardInstance) {
	for i, c := range r.Installed {
		if c.ID == card.ID {
			r.Installed = append(r.Installed[:i], r.Installed[i+1:]...)
			return
		}
	}
}

// sendToDiscard moves a card into the discard pile.
func (r *Robot) sendToDiscard(card *CardInstance) {
	card.Zone = ZoneDiscard
	card.clearSlots()
	r.Discard = append(r.Discard, card)
}

// sendToDestroyed moves a card into the destroyed pile.
func (r *Robot) sendToDestroyed(card *CardInstance) {
	card.Zone = ZoneDestroyed
	card.clearSlots()
	r.Destroyed = append(r.Destroyed, card)
}

// InstalledByID finds an installed card by instance ID, or nil.
func (r *Robot) InstalledByID(id int) *CardInstance {
	for _, ci := range r.Installed {
		if ci.ID == id {
			return ci
		}
	}
	return nil
}

// HandByID finds a hand card by instance ID, or nil.
func (r *Robot) HandByID(id int) *CardInstance {
	for _, ci := range r.Hand {
		if ci.ID == id {
			return ci
		}
	}
	return nil
}

// CardByID searches every zone for the card, or nil.
func (r *Robot) CardByID(id int) *CardInstance {
	for _, zone := range [][]*CardInstance{r.Deck, r.Hand, r.Installed, r.Discard, r.Destroyed} {
		for _, ci := range zone {
			if ci.ID == id {
				return ci
			}
		}
	}
	return nil
}

// InstalledOfCategory returns non-destroyed installed cards of the category,
// in installation order.
func (r *Robot) InstalledOfCategory(cat Category) []*CardInstance {
	var result []*CardInstance
	for _, ci := range r.Installed {
		if ci.Card.Category == cat && !ci.Destroyed() {
			result = append(result, ci)
		}
	}
	return result
}

// Status returns the current stack count for the element.
func (r *Robot) Status(e Element) int {
	return r.Statuses[e]
}

// AllCards returns every card the robot owns across all zones. Used for the
// zone-completeness invariant and end-of-fight export.
func (r *Robot) AllCards() []*CardInstance {
	var all []*CardInstance
	all = append(all, r.Deck...)
	all = append(all, r.Hand...)
	all = append(all, r.Installed...)
	all = append(all, r.Discard...)
	all = append(all, r.Destroyed...)
	return all
}

// ExportDeck is the canonical surviving-deck list handed back to the campaign
// layer when a fight ends: installed ++ deck ++ hand ++ discard. Destroyed
// cards stay behind as wreckage.
func (r *Robot) ExportDeck() []*CardInstance {
	var out []*CardInstance
	out = append(out, r.Installed...)
	out = append(out, r.Deck...)
	out = append(out, r.Hand...)
	out = append(out, r.Discard...)
	return out
}

// resetSegment clears per-turn state at the start of the robot's acting
// segment: counters, shield pool, activation flags, dynamo and target-lock
// markers, and the leftover dice pool.
func (r *Robot) resetSegment() {
	r.Counters = TurnCounters{}
	r.Shield = 0
	r.Overcharge = 0
	r.WeaponsFired = 0
	r.Pool = r.Pool[:0]
	for _, ci := range r.Installed {
		ci.Activations = 0
		ci.DynamoUsed = false
		ci.TargetLocked = false
	}
}

// ScavengeLimit is how many wreckage cards the robot may take after a win.
// Locomotion components grant bonus picks.
func (r *Robot) ScavengeLimit() int {
	limit := 2
	for _, ci := range r.Installed {
		if ci.Card.Locomotion != nil && !ci.Destroyed() {
			limit += ci.Card.Locomotion.ScavengeBonus
		}
	}
	return limit
}
