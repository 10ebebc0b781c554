package game

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/eternaldensity/scrapduel/internal/log"
)

// CombatConfig holds everything needed to set up a fight.
type CombatConfig struct {
	PlayerCards     []*Card
	EnemyCards      []*Card
	PlayerResources map[Resource]int
	Logger          log.EventLogger
	Seed            int64 // RNG seed (0 for random)
	NoShuffle       bool  // skip deck shuffles (for deterministic tests)
}

// AttackResult summarizes the most recent weapon hit, for UI highlight.
type AttackResult struct {
	Weapon     string
	WeaponID   int
	Target     string
	TargetID   int
	TargetSide Side
	DamageType DamageType
	Raw        int // damage before absorption
	Absorbed   int
	Dealt      int
	Bypassed   bool // Target Lock or plasma skipped both pools
}

// Combat is the complete state of one fight. It is mutated exclusively
// through its exported command methods; the caller owns serialization per
// combat id.
type Combat struct {
	ID     uuid.UUID
	Robots [2]*Robot
	Phase  Phase
	Turn   int
	Result Result

	Pending    *PendingAbility // CPU targeting sub-state, nil when idle
	Scavenge   *ScavengeState  // non-nil only during PhaseScavenging
	LastAttack *AttackResult

	Logger log.EventLogger
	rng    *rand.Rand
	nextID int
}

// NewCombat builds a fight. Chassis cards start installed; everything else is
// shuffled into each robot's deck. Call Begin to run the first draw phase.
func NewCombat(id uuid.UUID, cfg CombatConfig) *Combat {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewMemoryLogger()
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}

	c := &Combat{
		ID:     id,
		Robots: [2]*Robot{newRobot(SidePlayer), newRobot(SideEnemy)},
		Phase:  PhaseNone,
		Result: ResultOngoing,
		Logger: logger,
		rng:    rand.New(rand.NewSource(seed)),
	}

	for res, n := range cfg.PlayerResources {
		c.Robots[SidePlayer].Resources[res] = n
	}

	c.dealCards(c.Robots[SidePlayer], cfg.PlayerCards)
	c.dealCards(c.Robots[SideEnemy], cfg.EnemyCards)

	if !cfg.NoShuffle {
		for _, r := range c.Robots {
			c.rng.Shuffle(len(r.Deck), func(i, j int) {
				r.Deck[i], r.Deck[j] = r.Deck[j], r.Deck[i]
			})
		}
	}

	return c
}

func (c *Combat) dealCards(r *Robot, cards []*Card) {
	for _, card := range cards {
		c.nextID++
		ci := newInstance(card, c.nextID, r.Side)
		if card.Category == CategoryChassis {
			ci.Zone = ZoneInstalled
			r.Installed = append(r.Installed, ci)
			r.Plating += card.Chassis.BasePlating
		} else {
			r.Deck = append(r.Deck, ci)
		}
	}
}

// Player and Enemy return the two robots.
func (c *Combat) Player() *Robot { return c.Robots[SidePlayer] }
func (c *Combat) Enemy() *Robot  { return c.Robots[SideEnemy] }

// Begin runs the initial draw phase and opens the first power-up phase.
func (c *Combat) Begin() error {
	if c.Phase != PhaseNone {
		return validationErr(CodeWrongPhase, "combat already started")
	}
	c.Turn = 1
	c.log(log.NewTurnEvent(c.Turn, int(SidePlayer)))
	c.startSegment(c.Player())
	c.Phase = PhasePowerUp
	c.log(log.NewPhaseChangeEvent(c.Turn, c.Phase.String()))
	return nil
}

// actingRobot validates that the side may issue commands right now.
func (c *Combat) actingRobot(side Side) (*Robot, error) {
	switch c.Phase {
	case PhasePowerUp:
		if side != SidePlayer {
			return nil, validationErr(CodeWrongPhase, "only the player acts during the power-up phase")
		}
	case PhaseEnemyTurn:
		if side != SideEnemy {
			return nil, validationErr(CodeWrongPhase, "it is the enemy's turn")
		}
	default:
		return nil, validationErr(CodeWrongPhase, "no commands accepted during %s", c.Phase)
	}
	return c.Robots[side], nil
}

// startSegment opens a robot's acting segment: reset per-turn state, then
// refill the hand applying any Fused stacks to the drawn cards.
func (c *Combat) startSegment(r *Robot) {
	r.resetSegment()
	c.log(log.NewPhaseChangeEvent(c.Turn, PhaseDraw.String()))
	c.Phase = PhaseDraw
	c.drawUpTo(r, r.HandSize())
}

// drawUpTo refills the robot's hand, applying Fused to newly drawn cards.
func (c *Combat) drawUpTo(r *Robot, n int) {
	for len(r.Hand) < n {
		card := c.drawOne(r)
		if card == nil {
			return
		}
	}
}

// drawOne draws a single card, honoring the Fused stack: a locked draw has
// every slot fused shut, except batteries, which absorb the fuse as a charge.
func (c *Combat) drawOne(r *Robot) *CardInstance {
	card := r.drawTop()
	if card == nil {
		return nil
	}
	c.log(log.NewDrawEvent(c.Turn, c.Phase.String(), int(r.Side), card.Card.Name))
	r.Counters.CardsDrawn++

	if r.Counters.FusedLocked < r.Status(ElementFused) {
		r.Counters.FusedLocked++
		if card.Card.Category == CategoryBattery {
			card.Charges++
			c.log(log.NewFusedChargeEvent(c.Turn, c.Phase.String(), int(r.Side), card.Card.Name))
		} else {
			for _, s := range card.Slots {
				s.Locked = true
			}
			if len(card.Slots) > 0 {
				c.log(log.NewFusedLockEvent(c.Turn, c.Phase.String(), int(r.Side), card.Card.Name))
			}
		}
	}
	return card
}

// InstallCard moves a card from the acting robot's hand into its installed
// zone, making it a live component.
func (c *Combat) InstallCard(side Side, cardID int) error {
	r, err := c.actingRobot(side)
	if err != nil {
		return err
	}
	card := r.HandByID(cardID)
	if card == nil {
		return notFoundErr(CodeCardNotFound, "no hand card %d", cardID)
	}
	r.RemoveFromHand(card)
	card.Zone = ZoneInstalled
	r.Installed = append(r.Installed, card)
	if card.Card.Chassis != nil {
		r.Plating += card.Card.Chassis.BasePlating
	}
	c.log(log.GameEvent{
		Turn: c.Turn, Phase: c.Phase.String(), Side: int(side),
		Type: log.EventActivate, Card: card.Card.Name,
		Details: fmt.Sprintf("%s installs %s", side, card.Card.Name),
	})
	return nil
}

// EndTurn closes the player's power-up phase, runs the enemy's whole turn,
// and either opens the next draw phase or ends the fight. The returned steps
// replay the enemy turn for presentation; the end state is already final.
func (c *Combat) EndTurn() ([]EnemyStep, error) {
	if c.Phase != PhasePowerUp {
		return nil, validationErr(CodeWrongPhase, "end_turn only valid during the power-up phase")
	}
	if c.Pending != nil {
		c.cancelPending(SidePlayer)
	}

	c.endSegment(c.Player())
	if c.Result != ResultOngoing {
		return nil, nil
	}

	c.Phase = PhaseEnemyTurn
	c.log(log.NewPhaseChangeEvent(c.Turn, c.Phase.String()))

	steps := c.runEnemyTurn()
	if c.Result != ResultOngoing {
		return steps, nil
	}

	c.Turn++
	c.log(log.NewTurnEvent(c.Turn, int(SidePlayer)))
	c.startSegment(c.Player())
	c.Phase = PhasePowerUp
	c.log(log.NewPhaseChangeEvent(c.Turn, c.Phase.String()))
	return steps, nil
}

// endSegment runs the end-of-turn sequence for one robot: auto-firing
// weapons, Rust damage, status decay, fused-slot release. Victory is checked
// by every damage application along the way.
func (c *Combat) endSegment(r *Robot) {
	// Auto-fire weapons discharge if they are ready.
	for _, ci := range r.Installed {
		if ci.Card.Weapon != nil && ci.Card.Weapon.AutoFire && fullySlotted(ci) && ci.CanActivate() {
			_ = c.resolveWeapon(r, ci)
			if c.Result != ResultOngoing {
				return
			}
		}
	}

	c.applyRust(r)
	if c.Result != ResultOngoing {
		return
	}
	c.decayStatuses(r)

	for _, ci := range r.Installed {
		for _, s := range ci.Slots {
			s.Locked = false
		}
	}
}

// damageCard applies damage to an installed card, relocating it to the
// destroyed pile and re-checking victory when it dies.
func (c *Combat) damageCard(r *Robot, card *CardInstance, amount int, reason string) {
	if amount <= 0 {
		return
	}
	destroyed := card.takeDamage(amount)
	if destroyed {
		c.log(log.NewDestroyEvent(c.Turn, c.Phase.String(), int(r.Side), card.Card.Name, reason))
		if card.Zone == ZoneInstalled {
			r.removeInstalled(card)
			r.sendToDestroyed(card)
		}
		c.checkVictory()
		return
	}
	if card.State == StateDamaged {
		c.log(log.NewCardDamagedEvent(c.Turn, c.Phase.String(), int(r.Side), card.Card.Name, card.HP, card.Card.MaxHP))
		if card.Card.Capacitor != nil {
			// A damaged capacitor caps the dice it stores.
			for _, s := range card.Slots {
				if s.Die != nil && s.Die.Value > s.Die.Sides-2 {
					s.Die.Value = s.Die.Sides - 2
				}
			}
		}
	}
}

// checkVictory ends the fight the moment either robot's total HP reaches 0.
// A player win opens scavenging instead of ending outright.
func (c *Combat) checkVictory() {
	if c.Result != ResultOngoing {
		return
	}
	playerDead := c.Player().TotalHP() <= 0
	enemyDead := c.Enemy().TotalHP() <= 0

	switch {
	case playerDead:
		c.Result = ResultEnemyWins
		c.Phase = PhaseEnded
		c.log(log.NewWinEvent(c.Turn, c.Phase.String(), int(SideEnemy), "player robot disabled"))
	case enemyDead:
		c.Result = ResultPlayerWins
		c.enterScavenging()
		c.log(log.NewWinEvent(c.Turn, c.Phase.String(), int(SidePlayer), "enemy robot disabled"))
	}
}

func (c *Combat) log(event log.GameEvent) {
	c.Logger.Log(event)
}
