package game

import "github.com/eternaldensity/scrapduel/internal/log"

// ScavengeState is the post-victory loot sub-state: the defeated robot's
// surviving cards as a selectable pool, a pick limit, and the scrap collected
// automatically from its destroyed cards.
type ScavengeState struct {
	Pool     []*CardInstance
	Selected []int // instance IDs, at most Limit
	Limit    int
	Scrap    int
}

func (s *ScavengeState) selected(id int) bool {
	for _, sel := range s.Selected {
		if sel == id {
			return true
		}
	}
	return false
}

func (s *ScavengeState) poolCard(id int) *CardInstance {
	for _, ci := range s.Pool {
		if ci.ID == id {
			return ci
		}
	}
	return nil
}

// enterScavenging opens the scavenge phase after a player win.
func (c *Combat) enterScavenging() {
	enemy := c.Enemy()

	s := &ScavengeState{Limit: c.Player().ScavengeLimit()}
	for _, ci := range enemy.AllCards() {
		if ci.Destroyed() {
			s.Scrap += ci.Card.ScrapValue
		} else {
			s.Pool = append(s.Pool, ci)
		}
	}

	c.Scavenge = s
	c.Phase = PhaseScavenging
	c.log(log.NewPhaseChangeEvent(c.Turn, c.Phase.String()))
}

// ToggleScavengeCard marks or unmarks a wreckage card for collection.
// Selections beyond the scavenge limit are rejected here, before confirm.
func (c *Combat) ToggleScavengeCard(cardID int) error {
	s := c.Scavenge
	if c.Phase != PhaseScavenging || s == nil {
		return validationErr(CodeWrongPhase, "not scavenging")
	}
	card := s.poolCard(cardID)
	if card == nil {
		return notFoundErr(CodeCardNotFound, "card %d is not in the wreckage", cardID)
	}

	if s.selected(cardID) {
		for i, sel := range s.Selected {
			if sel == cardID {
				s.Selected = append(s.Selected[:i], s.Selected[i+1:]...)
				break
			}
		}
	} else {
		if len(s.Selected) >= s.Limit {
			return validationErr(CodeScavengeLimit, "scavenge limit is %d card(s)", s.Limit)
		}
		s.Selected = append(s.Selected, cardID)
	}
	c.log(log.NewScavengeToggleEvent(c.Turn, int(SidePlayer), card.Card.Name, s.selected(cardID)))
	return nil
}

// ConfirmScavenge moves the selected cards into the player's deck, banks the
// automatically gathered scrap, and ends the combat. Confirming with nothing
// selected still collects the scrap.
func (c *Combat) ConfirmScavenge() error {
	s := c.Scavenge
	if c.Phase != PhaseScavenging || s == nil {
		return validationErr(CodeWrongPhase, "not scavenging")
	}

	player, enemy := c.Player(), c.Enemy()

	for _, id := range s.Selected {
		card := s.poolCard(id)
		if card == nil {
			continue
		}
		// Pull the card out of whichever enemy zone holds it so it ends up
		// in exactly one zone afterwards.
		switch card.Zone {
		case ZoneInstalled:
			enemy.removeInstalled(card)
		case ZoneHand:
			enemy.RemoveFromHand(card)
		case ZoneDeck:
			for i, ci := range enemy.Deck {
				if ci.ID == id {
					enemy.Deck = append(enemy.Deck[:i], enemy.Deck[i+1:]...)
					break
				}
			}
		case ZoneDiscard:
			for i, ci := range enemy.Discard {
				if ci.ID == id {
					enemy.Discard = append(enemy.Discard[:i], enemy.Discard[i+1:]...)
					break
				}
			}
		}
		card.Owner = SidePlayer
		card.Zone = ZoneDeck
		card.clearSlots()
		card.repairTo(card.Card.MaxHP)
		player.Deck = append(player.Deck, card)
	}

	player.Resources[ResourceScrap] += s.Scrap
	c.log(log.NewScavengeConfirmEvent(c.Turn, int(SidePlayer), len(s.Selected), s.Scrap))

	c.Scavenge = nil
	c.Phase = PhaseEnded
	c.log(log.NewPhaseChangeEvent(c.Turn, c.Phase.String()))
	return nil
}
